package business

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/agenda-hub/internal/audit"
	domain "github.com/BruksfildServices01/agenda-hub/internal/domain/business"
	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/imaging"
	"github.com/BruksfildServices01/agenda-hub/internal/infra/storage"
	"github.com/BruksfildServices01/agenda-hub/internal/session"
)

type UploadLogo struct {
	repo  domain.Repository
	store storage.ObjectStore
	writeEffects
}

// NewUploadLogo accepts a nil store; uploads then fail with
// storage_disabled.
func NewUploadLogo(
	repo domain.Repository,
	store storage.ObjectStore,
	cache Invalidator,
	audit audit.Recorder,
	log logrus.FieldLogger,
) *UploadLogo {
	return &UploadLogo{
		repo:         repo,
		store:        store,
		writeEffects: writeEffects{cache: cache, audit: audit, log: log},
	}
}

// Execute returns the new public logo URL.
func (uc *UploadLogo) Execute(
	ctx context.Context,
	sess session.Session,
	businessID uuid.UUID,
	raw []byte,
) (string, error) {

	if uc.store == nil {
		return "", httperr.ErrBusiness("storage_disabled")
	}

	if _, err := uc.repo.GetForOwner(ctx, businessID, sess.UserID); err != nil {
		return "", err
	}

	encoded, err := imaging.Logo(raw)
	switch {
	case errors.Is(err, imaging.ErrImageTooLarge):
		return "", httperr.ErrBusiness("image_too_large")
	case err != nil:
		return "", httperr.ErrBusiness("invalid_image")
	}

	key := fmt.Sprintf("businesses/%s/logo-%s.webp", businessID, uuid.NewString())
	url, err := uc.store.Put(ctx, key, "image/webp", encoded)
	if err != nil {
		return "", err
	}

	if err := uc.repo.UpdateLogo(ctx, businessID, sess.UserID, url); err != nil {
		return "", err
	}

	uc.after(ctx, audit.Event{
		BusinessID: &businessID,
		UserID:     &sess.UserID,
		Action:     "business_logo_updated",
		Entity:     "business",
		EntityID:   &businessID,
		Metadata:   map[string]string{"logo_url": url},
	})

	return url, nil
}
