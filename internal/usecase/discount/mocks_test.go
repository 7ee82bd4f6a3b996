package discount

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barbeariamb/admin-api/internal/mail"
	"github.com/barbeariamb/admin-api/internal/models"
)

type fakeDiscountRepo struct {
	byCode     map[string]*models.DiscountCode
	candidates []models.Client

	createCalls int
	dupUntil    int // return ErrDuplicatedKey for the first N creates
	createErr   error
}

func newFakeDiscountRepo() *fakeDiscountRepo {
	return &fakeDiscountRepo{byCode: map[string]*models.DiscountCode{}}
}

func (r *fakeDiscountRepo) CreateDiscount(_ context.Context, d *models.DiscountCode) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	if r.createCalls <= r.dupUntil {
		return gorm.ErrDuplicatedKey
	}
	if _, exists := r.byCode[d.Code]; exists {
		return gorm.ErrDuplicatedKey
	}
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	stored := *d
	r.byCode[d.Code] = &stored
	return nil
}

func (r *fakeDiscountRepo) GetDiscountByCode(_ context.Context, code string) (*models.DiscountCode, error) {
	if d, ok := r.byCode[code]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeDiscountRepo) ListBirthdayCandidates(_ context.Context) ([]models.Client, error) {
	return r.candidates, nil
}

type fakeMailer struct {
	sent    []mail.Message
	failFor string // fail sends addressed to this recipient
}

func (m *fakeMailer) Send(msg mail.Message) error {
	if m.failFor != "" && msg.To == m.failFor {
		return errors.New("smtp: mailbox unavailable")
	}
	m.sent = append(m.sent, msg)
	return nil
}

type stubMessages struct {
	subject string
	body    string
	err     error
}

func (s stubMessages) BirthdayMessage(_ context.Context) (string, string, error) {
	return s.subject, s.body, s.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
