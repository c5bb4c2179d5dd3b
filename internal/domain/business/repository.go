package business

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

// SettingsUpdate is the full set of columns the settings form writes.
type SettingsUpdate struct {
	Name          string
	Description   *string
	Email         string
	Phone         string
	Address       string
	Timezone      string
	BusinessHours models.WeeklySchedule
}

type Repository interface {
	// -------- Owner --------
	ListByOwner(
		ctx context.Context,
		ownerID uuid.UUID,
	) ([]models.Business, error)

	GetForOwner(
		ctx context.Context,
		id uuid.UUID,
		ownerID uuid.UUID,
	) (*models.Business, error)

	// UpdateForOwner fails with business_not_found when no row matches
	// both id and owner.
	UpdateForOwner(
		ctx context.Context,
		id uuid.UUID,
		ownerID uuid.UUID,
		in SettingsUpdate,
	) error

	UpdateLogo(
		ctx context.Context,
		id uuid.UUID,
		ownerID uuid.UUID,
		logoURL string,
	) error

	Create(
		ctx context.Context,
		b *models.Business,
	) error

	// -------- Public --------
	// ListDirectory returns every business with its services, ordered by
	// name. A non-empty query matches name or description, case-insensitive.
	ListDirectory(
		ctx context.Context,
		query string,
	) ([]models.Business, error)

	GetPublic(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Business, error)

	// -------- Services --------
	ListServices(
		ctx context.Context,
		businessID uuid.UUID,
	) ([]models.Service, error)

	CreateService(
		ctx context.Context,
		s *models.Service,
	) error

	GetServiceForOwner(
		ctx context.Context,
		serviceID uuid.UUID,
		ownerID uuid.UUID,
	) (*models.Service, error)

	SaveService(
		ctx context.Context,
		s *models.Service,
	) error
}
