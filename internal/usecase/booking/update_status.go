package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-hub/internal/audit"
	domain "github.com/BruksfildServices01/agenda-hub/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
	"github.com/BruksfildServices01/agenda-hub/internal/session"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateStatus(
	repo domain.Repository,
	audit audit.Recorder,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	sess session.Session,
	bookingID uuid.UUID,
	action domain.Action,
) (*models.Booking, error) {

	b, err := uc.repo.GetForOwner(ctx, bookingID, sess.UserID)
	if err != nil {
		return nil, err
	}

	from := b.Status
	if err := domain.Apply(b, action); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateStatus(ctx, b, from); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: &b.BusinessID,
		UserID:     &sess.UserID,
		Action:     "booking_" + string(action),
		Entity:     "booking",
		EntityID:   &b.ID,
		Metadata: map[string]string{
			"from": from,
			"to":   b.Status,
		},
	})

	return b, nil
}
