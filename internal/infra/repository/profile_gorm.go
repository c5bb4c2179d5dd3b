package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

func (r *ProfileGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.Profile, error) {

	var p models.Profile
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&p).Error; err != nil {
		return nil, notFound(err, "profile_not_found")
	}
	return &p, nil
}

func (r *ProfileGormRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Profile, error) {

	var p models.Profile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "profile_not_found")
	}
	return &p, nil
}

func (r *ProfileGormRepository) IsAdmin(
	ctx context.Context,
	id uuid.UUID,
) (bool, error) {

	var p models.Profile
	if err := r.db.WithContext(ctx).Select("is_admin").First(&p, "id = ?", id).Error; err != nil {
		return false, notFound(err, "profile_not_found")
	}
	return p.IsAdmin, nil
}

func (r *ProfileGormRepository) Create(
	ctx context.Context,
	p *models.Profile,
) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("email_already_exists")
		}
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}
