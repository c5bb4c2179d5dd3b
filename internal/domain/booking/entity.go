package booking

import (
	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

// ===============================
// Domain Actions
// ===============================

type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

// Apply runs a status transition on b. The stored status is read through
// Normalize, so a garbage value behaves like pending.
func Apply(b *models.Booking, action Action) error {
	current := Normalize(b.Status)

	var (
		next Status
		err  error
	)
	switch action {
	case ActionConfirm:
		next, err = StatusConfirmed, CanConfirm(current)
	case ActionCancel:
		next, err = StatusCancelled, CanCancel(current)
	case ActionComplete:
		next, err = StatusCompleted, CanComplete(current)
	default:
		return httperr.ErrBusiness("invalid_action")
	}
	if err != nil {
		return err
	}

	b.Status = string(next)
	return nil
}
