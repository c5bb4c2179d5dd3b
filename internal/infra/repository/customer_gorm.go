package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/agenda-hub/internal/domain/customer"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) BusinessIDsForOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]uuid.UUID, error) {

	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.Business{}).
		Where("user_id = ?", ownerID).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("business ids: %w", err)
	}
	return ids, nil
}

func (r *CustomerGormRepository) CustomerIDsForBusinesses(
	ctx context.Context,
	businessIDs []uuid.UUID,
) ([]uuid.UUID, error) {

	if len(businessIDs) == 0 {
		return nil, nil
	}

	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Distinct("customer_id").
		Where("business_id IN ?", businessIDs).
		Pluck("customer_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("customer ids: %w", err)
	}
	return ids, nil
}

func (r *CustomerGormRepository) ListByIDs(
	ctx context.Context,
	ids []uuid.UUID,
) ([]models.Customer, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	var out []models.Customer
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*CustomerGormRepository)(nil)
