package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

type Repository interface {
	// -------- Owner views --------
	// ListForOwner returns bookings of the owner's businesses with
	// Business, Service and Customer resolved, newest date first.
	ListForOwner(
		ctx context.Context,
		ownerID uuid.UUID,
	) ([]models.Booking, error)

	CountForBusinessesOnDate(
		ctx context.Context,
		businessIDs []uuid.UUID,
		date time.Time,
	) (int64, error)

	// -------- State change --------
	GetForOwner(
		ctx context.Context,
		bookingID uuid.UUID,
		ownerID uuid.UUID,
	) (*models.Booking, error)

	// UpdateStatus writes b.Status only while the stored status is still
	// from; a lost race reports invalid_state.
	UpdateStatus(
		ctx context.Context,
		b *models.Booking,
		from string,
	) error

	// -------- Public booking --------
	GetActiveService(
		ctx context.Context,
		businessID uuid.UUID,
		serviceID uuid.UUID,
	) (*models.Service, error)

	GetOrCreateCustomer(
		ctx context.Context,
		name string,
		email string,
		phone string,
	) (*models.Customer, error)

	Create(
		ctx context.Context,
		b *models.Booking,
	) error
}
