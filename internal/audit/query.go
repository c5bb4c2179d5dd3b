package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

// Filter narrows the audit trail listing. Zero values mean "any".
type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Normalize clamps paging to sane values.
func (f Filter) Normalize() Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > MaxLimit {
		f.Limit = DefaultLimit
	}
	return f
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Reader lists an owner's audit trail: entries written by the owner or
// about one of the owner's businesses.
type Reader interface {
	ListForOwner(ctx context.Context, ownerID uuid.UUID, f Filter) ([]models.AuditLog, int64, error)
}
