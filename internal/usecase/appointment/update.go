package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barbeariamb/admin-api/internal/audit"
	domain "github.com/barbeariamb/admin-api/internal/domain/appointment"
	"github.com/barbeariamb/admin-api/internal/httperr"
	"github.com/barbeariamb/admin-api/internal/models"
)

// UpdateAppointmentInput is an explicit patch: nil fields are untouched.
type UpdateAppointmentInput struct {
	Date      *string
	ClientID  *string
	BarberID  *string
	ServiceID *string
	Notes     *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewUpdateAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	now func() time.Time,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: auditDispatcher,
		now:   now,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uuid.UUID,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if err != nil {
		return nil, err
	}

	if in.Date != nil {
		date, err := ParseDate(*in.Date, uc.now().Location())
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		ap.Date = date
	}

	if in.ClientID != nil {
		clientID, err := uuid.Parse(*in.ClientID)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_client_id")
		}
		if _, err := uc.repo.GetClient(ctx, clientID); err != nil {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		ap.ClientID = clientID
	}

	if in.BarberID != nil {
		barberID, err := uuid.Parse(*in.BarberID)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_barber_id")
		}
		if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		ap.BarberID = barberID
	}

	if in.ServiceID != nil {
		serviceID, err := uuid.Parse(*in.ServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_service_id")
		}
		if _, err := uc.repo.GetService(ctx, serviceID); err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		ap.ServiceID = serviceID
	}

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	detailed, err := uc.repo.GetAppointmentDetailed(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return detailed, nil
}
