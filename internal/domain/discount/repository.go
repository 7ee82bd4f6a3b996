package discount

import (
	"context"

	"github.com/barbeariamb/admin-api/internal/models"
)

type Repository interface {
	CreateDiscount(
		ctx context.Context,
		d *models.DiscountCode,
	) error

	// GetDiscountByCode returns gorm.ErrRecordNotFound when absent.
	GetDiscountByCode(
		ctx context.Context,
		code string,
	) (*models.DiscountCode, error)

	// ListBirthdayCandidates loads clients with both an email and a birth
	// date; month/day matching happens in the sweep, in shop-local time.
	ListBirthdayCandidates(
		ctx context.Context,
	) ([]models.Client, error)
}
