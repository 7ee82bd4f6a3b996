package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	discountdomain "github.com/barbeariamb/admin-api/internal/domain/discount"
	"github.com/barbeariamb/admin-api/internal/httperr"
	"github.com/barbeariamb/admin-api/internal/models"
)

type fakeRepo struct {
	clients  map[uuid.UUID]*models.Client
	barbers  map[uuid.UUID]*models.Barber
	services map[uuid.UUID]*models.Service

	appointments map[uuid.UUID]*models.Appointment
	usages       map[uuid.UUID]uuid.UUID // appointment -> discount
	redeemed     map[uuid.UUID]bool

	listStart time.Time
	listEnd   time.Time
	listOut   []models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:      map[uuid.UUID]*models.Client{},
		barbers:      map[uuid.UUID]*models.Barber{},
		services:     map[uuid.UUID]*models.Service{},
		appointments: map[uuid.UUID]*models.Appointment{},
		usages:       map[uuid.UUID]uuid.UUID{},
		redeemed:     map[uuid.UUID]bool{},
	}
}

func (r *fakeRepo) seedRefs() (client, barber, service uuid.UUID) {
	client = uuid.New()
	barber = uuid.New()
	service = uuid.New()
	r.clients[client] = &models.Client{ID: client, Name: "João", Phone: "11999990000"}
	r.barbers[barber] = &models.Barber{ID: barber, Name: "Carlos"}
	r.services[service] = &models.Service{ID: service, Name: "Corte", Price: 50, DurationMin: 30}
	return client, barber, service
}

func (r *fakeRepo) GetClient(_ context.Context, id uuid.UUID) (*models.Client, error) {
	if c, ok := r.clients[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetBarber(_ context.Context, id uuid.UUID) (*models.Barber, error) {
	if b, ok := r.barbers[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetService(_ context.Context, id uuid.UUID) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) CreateAppointmentWithDiscount(
	ctx context.Context,
	ap *models.Appointment,
	discountID uuid.UUID,
	_ time.Time,
) error {
	if r.redeemed[discountID] {
		// rollback: nothing persisted
		return httperr.ErrBusiness("discount_already_used")
	}
	if err := r.CreateAppointment(ctx, ap); err != nil {
		return err
	}
	r.usages[ap.ID] = discountID
	r.redeemed[discountID] = true
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	if ap, ok := r.appointments[id]; ok {
		copied := *ap
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetAppointmentDetailed(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	return r.GetAppointment(ctx, id)
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) ListActiveForPeriod(
	_ context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	r.listStart = start
	r.listEnd = end
	return r.listOut, nil
}

type stubValidator struct {
	verdict discountdomain.Verdict
	err     error
}

func (s stubValidator) Execute(_ context.Context, _ string) (discountdomain.Verdict, error) {
	return s.verdict, s.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func mustUUID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewRandom()
	if err != nil {
		t.Fatalf("uuid: %v", err)
	}
	return id
}
