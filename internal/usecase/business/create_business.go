package business

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/agenda-hub/internal/audit"
	domain "github.com/BruksfildServices01/agenda-hub/internal/domain/business"
	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
	"github.com/BruksfildServices01/agenda-hub/internal/session"
)

// Invalidator drops cached public listings after a write.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// writeEffects are the follow-ups shared by every business write.
type writeEffects struct {
	cache Invalidator
	audit audit.Recorder
	log   logrus.FieldLogger
}

func (w writeEffects) after(ctx context.Context, ev audit.Event) {
	if w.cache != nil {
		if err := w.cache.Invalidate(ctx); err != nil {
			w.log.WithError(err).Warn("directory cache invalidate failed")
		}
	}
	w.audit.Dispatch(ev)
}

type CreateBusiness struct {
	repo domain.Repository
	writeEffects
}

func NewCreateBusiness(
	repo domain.Repository,
	cache Invalidator,
	audit audit.Recorder,
	log logrus.FieldLogger,
) *CreateBusiness {
	return &CreateBusiness{
		repo:         repo,
		writeEffects: writeEffects{cache: cache, audit: audit, log: log},
	}
}

func (uc *CreateBusiness) Execute(
	ctx context.Context,
	sess session.Session,
	form domain.Form,
) (*models.Business, error) {

	upd, fields := form.Validate()
	if len(fields) > 0 {
		return nil, httperr.ValidationError{Fields: fields}
	}

	b := &models.Business{
		UserID:        sess.UserID,
		Name:          upd.Name,
		Description:   upd.Description,
		Email:         upd.Email,
		Phone:         upd.Phone,
		Address:       upd.Address,
		Timezone:      upd.Timezone,
		BusinessHours: upd.BusinessHours,
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.after(ctx, audit.Event{
		BusinessID: &b.ID,
		UserID:     &sess.UserID,
		Action:     "business_created",
		Entity:     "business",
		EntityID:   &b.ID,
	})

	return b, nil
}
