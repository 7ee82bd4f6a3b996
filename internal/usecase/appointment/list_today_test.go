package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/barbeariamb/admin-api/internal/models"
)

func TestListTodayUsesLocalDayWindow(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, time.August, 30, 22, 45, 0, 0, loc)

	repo := newFakeRepo()
	repo.listOut = []models.Appointment{{Notes: "corte"}, {Notes: "barba"}}

	uc := NewListTodayAppointments(repo, fixedClock(now))

	got, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d appointments, want 2", len(got))
	}

	wantStart := time.Date(2026, time.August, 30, 0, 0, 0, 0, loc)
	if !repo.listStart.Equal(wantStart) {
		t.Fatalf("window start = %v, want %v", repo.listStart, wantStart)
	}
	if !repo.listEnd.Equal(wantStart.Add(24 * time.Hour)) {
		t.Fatalf("window end = %v, want %v", repo.listEnd, wantStart.Add(24*time.Hour))
	}
}
