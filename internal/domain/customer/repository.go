package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

// Repository exposes the three reads behind the ownership-filtered
// customer list: owner -> businesses -> bookings -> customers.
type Repository interface {
	BusinessIDsForOwner(
		ctx context.Context,
		ownerID uuid.UUID,
	) ([]uuid.UUID, error)

	// CustomerIDsForBusinesses returns distinct customer ids.
	CustomerIDsForBusinesses(
		ctx context.Context,
		businessIDs []uuid.UUID,
	) ([]uuid.UUID, error)

	ListByIDs(
		ctx context.Context,
		ids []uuid.UUID,
	) ([]models.Customer, error)
}
