package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barbeariamb/admin-api/internal/models"
)

type Repository interface {
	// -------- Referenced entities --------
	GetClient(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Client, error)

	GetBarber(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Service, error)

	// -------- Appointment (create) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// CreateAppointmentWithDiscount persists the appointment, the usage row
	// and the code's used_at stamp in one transaction. Returns the
	// discount_already_used business error (rolling everything back) when the
	// code was redeemed concurrently.
	CreateAppointmentWithDiscount(
		ctx context.Context,
		ap *models.Appointment,
		discountID uuid.UUID,
		usedAt time.Time,
	) error

	// -------- Appointment (read / state change) --------
	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	GetAppointmentDetailed(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListActiveForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
