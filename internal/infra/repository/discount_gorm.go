package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/barbeariamb/admin-api/internal/domain/discount"
	"github.com/barbeariamb/admin-api/internal/models"
)

type DiscountGormRepository struct {
	db *gorm.DB
}

func NewDiscountGormRepository(db *gorm.DB) *DiscountGormRepository {
	return &DiscountGormRepository{db: db}
}

func (r *DiscountGormRepository) CreateDiscount(
	ctx context.Context,
	d *models.DiscountCode,
) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DiscountGormRepository) GetDiscountByCode(
	ctx context.Context,
	code string,
) (*models.DiscountCode, error) {

	var d models.DiscountCode
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DiscountGormRepository) ListBirthdayCandidates(
	ctx context.Context,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Where("email <> '' AND birth_date IS NOT NULL").
		Order("name ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Compile-time check
var _ domain.Repository = (*DiscountGormRepository)(nil)
