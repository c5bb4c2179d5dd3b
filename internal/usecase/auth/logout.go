package auth

import (
	"context"

	"github.com/BruksfildServices01/agenda-hub/internal/session"
)

// Logout clears the session: the token id stays revoked until the token
// would have expired.
type Logout struct {
	revoker session.Revoker
}

func NewLogout(revoker session.Revoker) *Logout {
	return &Logout{revoker: revoker}
}

func (uc *Logout) Execute(ctx context.Context, sess session.Session) error {
	return uc.revoker.Revoke(ctx, sess.TokenID, sess.ExpiresAt)
}
