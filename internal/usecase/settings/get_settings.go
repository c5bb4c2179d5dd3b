package settings

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/agenda-hub/internal/domain/business"
	"github.com/BruksfildServices01/agenda-hub/internal/dto"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
	"github.com/BruksfildServices01/agenda-hub/internal/session"
	"github.com/BruksfildServices01/agenda-hub/internal/timezone"
)

type Repository interface {
	GetForOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.Business, error)
	UpdateForOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, in domain.SettingsUpdate) error
}

type GetSettings struct {
	repo Repository
}

func NewGetSettings(repo Repository) *GetSettings {
	return &GetSettings{repo: repo}
}

// Execute fails with business_not_found both for a missing business and
// for one owned by somebody else.
func (uc *GetSettings) Execute(
	ctx context.Context,
	sess session.Session,
	id uuid.UUID,
) (*dto.SettingsDTO, error) {

	b, err := uc.repo.GetForOwner(ctx, id, sess.UserID)
	if err != nil {
		return nil, err
	}

	return &dto.SettingsDTO{
		Business: *b,
		Form:     FormFor(b),
	}, nil
}

// FormFor seeds the edit form from stored values.
func FormFor(b *models.Business) dto.SettingsFormDTO {
	hours := domain.ScheduleOrDefault(b.BusinessHours)

	tz := b.Timezone
	if tz == "" {
		tz = timezone.DefaultTimezone
	}

	return dto.SettingsFormDTO{
		Name:          b.Name,
		Description:   dto.StringOrEmpty(b.Description),
		Email:         b.Email,
		Phone:         b.Phone,
		Address:       b.Address,
		Timezone:      tz,
		BusinessHours: hours,
		Days:          dto.ScheduleRows(hours),
	}
}
