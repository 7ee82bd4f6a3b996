package appointment

import (
	"context"
	"testing"

	domain "github.com/barbeariamb/admin-api/internal/domain/appointment"
	"github.com/barbeariamb/admin-api/internal/httperr"
	"github.com/barbeariamb/admin-api/internal/models"
)

func TestCancelAppointment(t *testing.T) {
	repo := newFakeRepo()
	client, barber, service := repo.seedRefs()

	ap := &models.Appointment{
		Date:      testNow.AddDate(0, 0, 1),
		ClientID:  client,
		BarberID:  barber,
		ServiceID: service,
		Status:    string(domain.StatusScheduled),
	}
	if err := repo.CreateAppointment(context.Background(), ap); err != nil {
		t.Fatal(err)
	}

	uc := NewCancelAppointment(repo, nil, fixedClock(testNow))

	got, err := uc.Execute(context.Background(), ap.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != string(domain.StatusCancelled) {
		t.Fatalf("status = %q, want %q", got.Status, domain.StatusCancelled)
	}
	if got.CancelledAt == nil || !got.CancelledAt.Equal(testNow) {
		t.Fatalf("cancelled_at = %v, want %v", got.CancelledAt, testNow)
	}

	stored, err := repo.GetAppointment(context.Background(), ap.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Status != string(domain.StatusCancelled) {
		t.Fatal("cancellation was not persisted")
	}
}

func TestCancelAppointmentTwice(t *testing.T) {
	repo := newFakeRepo()
	client, barber, service := repo.seedRefs()

	ap := &models.Appointment{
		Date:      testNow.AddDate(0, 0, 1),
		ClientID:  client,
		BarberID:  barber,
		ServiceID: service,
		Status:    string(domain.StatusScheduled),
	}
	if err := repo.CreateAppointment(context.Background(), ap); err != nil {
		t.Fatal(err)
	}

	uc := NewCancelAppointment(repo, nil, fixedClock(testNow))

	if _, err := uc.Execute(context.Background(), ap.ID); err != nil {
		t.Fatalf("first cancel: %v", err)
	}
	_, err := uc.Execute(context.Background(), ap.ID)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("second cancel: expected invalid_state, got %v", err)
	}
}

func TestCancelAppointmentNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCancelAppointment(repo, nil, fixedClock(testNow))

	_, err := uc.Execute(context.Background(), mustUUID(t))
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestCancelCompletedAppointment(t *testing.T) {
	repo := newFakeRepo()
	client, barber, service := repo.seedRefs()

	ap := &models.Appointment{
		Date:      testNow.AddDate(0, 0, -1),
		ClientID:  client,
		BarberID:  barber,
		ServiceID: service,
		Status:    string(domain.StatusCompleted),
	}
	if err := repo.CreateAppointment(context.Background(), ap); err != nil {
		t.Fatal(err)
	}

	uc := NewCancelAppointment(repo, nil, fixedClock(testNow))

	_, err := uc.Execute(context.Background(), ap.ID)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}
