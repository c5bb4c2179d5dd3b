// Package session holds the signed-in user's identity. A Session is built
// once per request by the auth middleware and passed by value to every
// use case; nothing reads identity from globals.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Session struct {
	UserID    uuid.UUID
	Email     string
	FullName  string
	IsAdmin   bool
	TokenID   string
	ExpiresAt time.Time
}

// DisplayName is the greeting shown on the dashboard.
func (s Session) DisplayName() string {
	if s.FullName != "" {
		return s.FullName
	}
	return s.Email
}

// Revoker tracks signed-out tokens until they would have expired anyway.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
