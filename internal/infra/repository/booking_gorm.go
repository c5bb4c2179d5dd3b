package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/agenda-hub/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// ownedBusinesses is the ownership filter applied to every owner query.
func ownedBusinesses(db *gorm.DB, ownerID uuid.UUID) *gorm.DB {
	return db.Model(&models.Business{}).Select("id").Where("user_id = ?", ownerID)
}

// --------------------------------------------------
// Owner views
// --------------------------------------------------

func (r *BookingGormRepository) ListForOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]models.Booking, error) {

	db := r.db.WithContext(ctx)

	var out []models.Booking
	if err := db.
		Preload("Business").
		Preload("Service").
		Preload("Customer").
		Where("business_id IN (?)", ownedBusinesses(db, ownerID)).
		Order("booking_date DESC").
		Order("start_time DESC").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

func (r *BookingGormRepository) CountForBusinessesOnDate(
	ctx context.Context,
	businessIDs []uuid.UUID,
	date time.Time,
) (int64, error) {

	if len(businessIDs) == 0 {
		return 0, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("business_id IN ? AND booking_date = ?", businessIDs, date.Format("2006-01-02")).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *BookingGormRepository) GetForOwner(
	ctx context.Context,
	bookingID uuid.UUID,
	ownerID uuid.UUID,
) (*models.Booking, error) {

	db := r.db.WithContext(ctx)

	var b models.Booking
	if err := db.
		Where("id = ? AND business_id IN (?)", bookingID, ownedBusinesses(db, ownerID)).
		First(&b).Error; err != nil {
		return nil, notFound(err, "booking_not_found")
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateStatus(
	ctx context.Context,
	b *models.Booking,
	from string,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", b.ID, from).
		Update("status", b.Status)
	if res.Error != nil {
		return fmt.Errorf("update booking status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// --------------------------------------------------
// Public booking
// --------------------------------------------------

func (r *BookingGormRepository) GetActiveService(
	ctx context.Context,
	businessID uuid.UUID,
	serviceID uuid.UUID,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ? AND is_active = ?", serviceID, businessID, true).
		First(&s).Error; err != nil {
		return nil, notFound(err, "service_not_found")
	}
	return &s, nil
}

func (r *BookingGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	name string,
	email string,
	phone string,
) (*models.Customer, error) {

	var c models.Customer
	err := r.db.WithContext(ctx).
		Where("email = ? AND phone = ?", email, phone).
		First(&c).Error

	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find customer: %w", err)
	}

	c = models.Customer{
		Name:  name,
		Email: email,
		Phone: phone,
	}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return &c, nil
}

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Omit("Business", "Service", "Customer").Create(b).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
