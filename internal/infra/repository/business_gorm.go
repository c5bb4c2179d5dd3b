package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/agenda-hub/internal/domain/business"
	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

type BusinessGormRepository struct {
	db *gorm.DB
}

func NewBusinessGormRepository(db *gorm.DB) *BusinessGormRepository {
	return &BusinessGormRepository{db: db}
}

// --------------------------------------------------
// Owner
// --------------------------------------------------

func (r *BusinessGormRepository) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]models.Business, error) {

	var out []models.Business
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	return out, nil
}

func (r *BusinessGormRepository) GetForOwner(
	ctx context.Context,
	id uuid.UUID,
	ownerID uuid.UUID,
) (*models.Business, error) {

	var b models.Business
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&b).Error; err != nil {
		return nil, notFound(err, "business_not_found")
	}
	return &b, nil
}

func (r *BusinessGormRepository) UpdateForOwner(
	ctx context.Context,
	id uuid.UUID,
	ownerID uuid.UUID,
	in domain.SettingsUpdate,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Business{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(map[string]any{
			"name":           in.Name,
			"description":    in.Description,
			"email":          in.Email,
			"phone":          in.Phone,
			"address":        in.Address,
			"timezone":       in.Timezone,
			"business_hours": in.BusinessHours,
		})
	if res.Error != nil {
		return fmt.Errorf("update business: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("business_not_found")
	}
	return nil
}

func (r *BusinessGormRepository) UpdateLogo(
	ctx context.Context,
	id uuid.UUID,
	ownerID uuid.UUID,
	logoURL string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Business{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Update("logo_url", logoURL)
	if res.Error != nil {
		return fmt.Errorf("update logo: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("business_not_found")
	}
	return nil
}

func (r *BusinessGormRepository) Create(
	ctx context.Context,
	b *models.Business,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// --------------------------------------------------
// Public
// --------------------------------------------------

func (r *BusinessGormRepository) ListDirectory(
	ctx context.Context,
	query string,
) ([]models.Business, error) {

	q := r.db.WithContext(ctx).
		Preload("Services", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("name ASC")
		})

	if term := strings.TrimSpace(query); term != "" {
		like := containsPattern(term)
		q = q.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	var out []models.Business
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list directory: %w", err)
	}
	return out, nil
}

func (r *BusinessGormRepository) GetPublic(
	ctx context.Context,
	id uuid.UUID,
) (*models.Business, error) {

	var b models.Business
	if err := r.db.WithContext(ctx).
		Preload("Services", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_active = ?", true).Order("name ASC")
		}).
		First(&b, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "business_not_found")
	}
	return &b, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BusinessGormRepository) ListServices(
	ctx context.Context,
	businessID uuid.UUID,
) ([]models.Service, error) {

	var out []models.Service
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return out, nil
}

func (r *BusinessGormRepository) CreateService(
	ctx context.Context,
	s *models.Service,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *BusinessGormRepository) GetServiceForOwner(
	ctx context.Context,
	serviceID uuid.UUID,
	ownerID uuid.UUID,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).
		Joins("JOIN businesses ON businesses.id = services.business_id").
		Where("services.id = ? AND businesses.user_id = ?", serviceID, ownerID).
		First(&s).Error; err != nil {
		return nil, notFound(err, "service_not_found")
	}
	return &s, nil
}

func (r *BusinessGormRepository) SaveService(
	ctx context.Context,
	s *models.Service,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Compile-time check
var _ domain.Repository = (*BusinessGormRepository)(nil)
