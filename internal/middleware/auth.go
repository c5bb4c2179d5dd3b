package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/session"
)

const ContextSession = "session"

// AuthMiddleware resolves the bearer token into a session. Revoked tokens
// are rejected; a revocation store outage fails closed.
func AuthMiddleware(
	tokens *session.Tokens,
	revoker session.Revoker,
	log logrus.FieldLogger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header")
			return
		}

		sess, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			abortUnauthorized(c, "invalid_token")
			return
		}

		if revoker != nil {
			revoked, err := revoker.IsRevoked(c.Request.Context(), sess.TokenID)
			if err != nil {
				log.WithError(err).Error("revocation check failed")
				abortUnauthorized(c, "session_unavailable")
				return
			}
			if revoked {
				abortUnauthorized(c, "session_revoked")
				return
			}
		}

		c.Set(ContextSession, sess)
		c.Next()
	}
}

// AdminLookup reads the stored admin flag of a profile.
type AdminLookup interface {
	IsAdmin(ctx context.Context, profileID uuid.UUID) (bool, error)
}

// RequireAdmin must run after AuthMiddleware. The token claim is not
// trusted: a profile demoted after sign-in is refused right away.
func RequireAdmin(profiles AdminLookup, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		if !ok {
			abortForbidden(c)
			return
		}

		isAdmin, err := profiles.IsAdmin(c.Request.Context(), sess.UserID)
		if err != nil && !httperr.IsBusiness(err, "profile_not_found") {
			log.WithError(err).Error("admin check failed")
			httperr.Internal(c, "admin_check_failed", "No se pudo verificar el acceso.")
			c.Abort()
			return
		}
		if !isAdmin {
			abortForbidden(c)
			return
		}

		sess.IsAdmin = true
		c.Set(ContextSession, sess)
		c.Next()
	}
}

func abortForbidden(c *gin.Context) {
	httperr.Forbidden(c, "forbidden", "Acceso restringido a administradores.")
	c.Abort()
}

// CurrentSession returns the session stored by AuthMiddleware.
func CurrentSession(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}

func abortUnauthorized(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "Inicia sesión para continuar.")
	c.Abort()
}
