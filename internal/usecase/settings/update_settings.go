package settings

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/agenda-hub/internal/audit"
	domain "github.com/BruksfildServices01/agenda-hub/internal/domain/business"
	"github.com/BruksfildServices01/agenda-hub/internal/dto"
	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/httpresp"
	"github.com/BruksfildServices01/agenda-hub/internal/session"
)

const (
	SavedMessage  = "El negocio se ha actualizado correctamente."
	FailedMessage = "No se pudo actualizar el negocio. Inténtalo de nuevo."
)

// Invalidator drops cached public listings after a write.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// ======================================================
// USE CASE
// ======================================================

type UpdateSettings struct {
	repo  Repository
	cache Invalidator
	audit audit.Recorder
	log   logrus.FieldLogger
}

func NewUpdateSettings(
	repo Repository,
	cache Invalidator,
	audit audit.Recorder,
	log logrus.FieldLogger,
) *UpdateSettings {
	return &UpdateSettings{
		repo:  repo,
		cache: cache,
		audit: audit,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute validates the form, writes it in one update scoped by id and
// owner, and returns the merged business. On any error the stored row is
// left as it was.
func (uc *UpdateSettings) Execute(
	ctx context.Context,
	sess session.Session,
	id uuid.UUID,
	in domain.Form,
) (*dto.SettingsSavedDTO, error) {

	// --------------------------------------------------
	// 1. Ownership
	// --------------------------------------------------
	current, err := uc.repo.GetForOwner(ctx, id, sess.UserID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Form validation
	// --------------------------------------------------
	upd, fields := in.Validate()
	if len(fields) > 0 {
		return nil, httperr.ValidationError{Fields: fields}
	}

	// --------------------------------------------------
	// 3. Write
	// --------------------------------------------------
	if err := uc.repo.UpdateForOwner(ctx, id, sess.UserID, upd); err != nil {
		return nil, err
	}

	merged := *current
	merged.Name = upd.Name
	merged.Description = upd.Description
	merged.Email = upd.Email
	merged.Phone = upd.Phone
	merged.Address = upd.Address
	merged.Timezone = upd.Timezone
	merged.BusinessHours = upd.BusinessHours

	// --------------------------------------------------
	// 4. Side effects
	// --------------------------------------------------
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			uc.log.WithError(err).Warn("directory cache invalidate failed")
		}
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: &merged.ID,
		UserID:     &sess.UserID,
		Action:     "business_settings_updated",
		Entity:     "business",
		EntityID:   &merged.ID,
	})

	return &dto.SettingsSavedDTO{
		Business:     merged,
		Notification: httpresp.Success(SavedMessage),
	}, nil
}
