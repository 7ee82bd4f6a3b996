package discount

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/barbeariamb/admin-api/internal/domain/discount"
)

// ValidateDiscountCode is a pure read: it never mutates the code.
type ValidateDiscountCode struct {
	repo domain.Repository
	now  func() time.Time
}

func NewValidateDiscountCode(
	repo domain.Repository,
	now func() time.Time,
) *ValidateDiscountCode {
	return &ValidateDiscountCode{
		repo: repo,
		now:  now,
	}
}

func (uc *ValidateDiscountCode) Execute(
	ctx context.Context,
	code string,
) (domain.Verdict, error) {

	d, err := uc.repo.GetDiscountByCode(ctx, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFound(), nil
	}
	if err != nil {
		return domain.Verdict{}, err
	}

	return domain.Validate(d, uc.now()), nil
}
