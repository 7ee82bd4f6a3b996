package appointment

import (
	"context"
	"time"

	domain "github.com/barbeariamb/admin-api/internal/domain/appointment"
	"github.com/barbeariamb/admin-api/internal/models"
)

// ListTodayAppointments returns the day's non-cancelled appointments in
// shop-local time, ordered by date ascending.
type ListTodayAppointments struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListTodayAppointments(
	repo domain.Repository,
	now func() time.Time,
) *ListTodayAppointments {
	return &ListTodayAppointments{
		repo: repo,
		now:  now,
	}
}

func (uc *ListTodayAppointments) Execute(
	ctx context.Context,
) ([]models.Appointment, error) {

	now := uc.now()

	start := time.Date(
		now.Year(),
		now.Month(),
		now.Day(),
		0, 0, 0, 0,
		now.Location(),
	)
	end := start.Add(24 * time.Hour)

	return uc.repo.ListActiveForPeriod(ctx, start, end)
}
