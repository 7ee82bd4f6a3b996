package discount

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/barbeariamb/admin-api/internal/domain/discount"
	"github.com/barbeariamb/admin-api/internal/models"
)

const codeRetries = 3

// CreateBirthdayDiscount mints a single-use percentage code for a client,
// valid for 30 days from now.
type CreateBirthdayDiscount struct {
	repo domain.Repository
	now  func() time.Time
}

func NewCreateBirthdayDiscount(
	repo domain.Repository,
	now func() time.Time,
) *CreateBirthdayDiscount {
	return &CreateBirthdayDiscount{
		repo: repo,
		now:  now,
	}
}

func ClampPercent(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

func (uc *CreateBirthdayDiscount) Execute(
	ctx context.Context,
	clientID uuid.UUID,
	percent int,
) (*models.DiscountCode, error) {

	now := uc.now()
	expiresAt := now.AddDate(0, 0, domain.DefaultValidityDays)

	var lastErr error
	for attempt := 0; attempt < codeRetries; attempt++ {

		code, err := domain.GenerateCode()
		if err != nil {
			return nil, err
		}

		d := &models.DiscountCode{
			Code:      code,
			Percent:   ClampPercent(percent),
			ClientID:  clientID,
			ExpiresAt: expiresAt,
		}

		err = uc.repo.CreateDiscount(ctx, d)
		if err == nil {
			return d, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}
