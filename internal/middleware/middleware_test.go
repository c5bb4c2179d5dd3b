package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
	"github.com/BruksfildServices01/agenda-hub/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubRevoker struct {
	revoked map[string]bool
	err     error
}

func (s stubRevoker) Revoke(context.Context, string, time.Time) error { return nil }

func (s stubRevoker) IsRevoked(_ context.Context, id string) (bool, error) {
	return s.revoked[id], s.err
}

func protectedRouter(tokens *session.Tokens, rev session.Revoker, extra ...gin.HandlerFunc) *gin.Engine {
	log, _ := test.NewNullLogger()
	r := gin.New()
	chain := append([]gin.HandlerFunc{AuthMiddleware(tokens, rev, log)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		sess, _ := CurrentSession(c)
		c.String(http.StatusOK, sess.Email)
	})
	r.GET("/p", chain...)
	return r
}

func get(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ======================================================
// AUTH
// ======================================================

func TestAuthMiddleware(t *testing.T) {
	tokens := session.NewTokens("secret", time.Hour)
	token, sess, err := tokens.Issue(&models.Profile{ID: uuid.New(), Email: "owner@shop.com"})
	require.NoError(t, err)

	r := protectedRouter(tokens, stubRevoker{})

	w := get(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "owner@shop.com", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "garbage").Code)

	revoked := protectedRouter(tokens, stubRevoker{revoked: map[string]bool{sess.TokenID: true}})
	w = get(revoked, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "session_revoked")

	down := protectedRouter(tokens, stubRevoker{err: errors.New("redis down")})
	assert.Equal(t, http.StatusUnauthorized, get(down, token).Code)
}

type adminFlags struct {
	flags map[uuid.UUID]bool
	err   error
}

func (a adminFlags) IsAdmin(_ context.Context, id uuid.UUID) (bool, error) {
	if a.err != nil {
		return false, a.err
	}
	v, ok := a.flags[id]
	if !ok {
		return false, httperr.ErrBusiness("profile_not_found")
	}
	return v, nil
}

func TestRequireAdmin(t *testing.T) {
	log, _ := test.NewNullLogger()
	tokens := session.NewTokens("secret", time.Hour)
	ownerID, adminID, demotedID := uuid.New(), uuid.New(), uuid.New()
	owner, _, _ := tokens.Issue(&models.Profile{ID: ownerID, Email: "owner@shop.com"})
	admin, _, _ := tokens.Issue(&models.Profile{ID: adminID, Email: "root@shop.com", IsAdmin: true})
	demoted, _, _ := tokens.Issue(&models.Profile{ID: demotedID, Email: "ex@shop.com", IsAdmin: true})
	gone, _, _ := tokens.Issue(&models.Profile{ID: uuid.New(), Email: "gone@shop.com", IsAdmin: true})

	flags := adminFlags{flags: map[uuid.UUID]bool{ownerID: false, adminID: true, demotedID: false}}
	r := protectedRouter(tokens, nil, RequireAdmin(flags, log))

	assert.Equal(t, http.StatusForbidden, get(r, owner).Code)
	assert.Equal(t, http.StatusOK, get(r, admin).Code)
	assert.Equal(t, http.StatusForbidden, get(r, demoted).Code)
	assert.Equal(t, http.StatusForbidden, get(r, gone).Code)

	down := protectedRouter(tokens, nil, RequireAdmin(adminFlags{err: errors.New("db down")}, log))
	assert.Equal(t, http.StatusInternalServerError, get(down, admin).Code)
}

// ======================================================
// RATE LIMIT
// ======================================================

func TestRateLimiterPerIP(t *testing.T) {
	rl := NewIPRateLimiter(0.001, 2)
	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2"))
}

func TestRateLimiterSweep(t *testing.T) {
	now := time.Now()
	rl := NewIPRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	rl.getLimiter("a")
	now = now.Add(11 * time.Minute)
	rl.getLimiter("b")
	rl.sweep()

	assert.NotContains(t, rl.visitors, "a")
	assert.Contains(t, rl.visitors, "b")
}

// ======================================================
// CORS / REQUEST ID / TIMEOUT
// ======================================================

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.agenda.dev"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.agenda.dev")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.agenda.dev", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDAndLogger(t *testing.T) {
	log, hook := test.NewNullLogger()
	r := gin.New()
	r.Use(RequestID(), RequestLogger(log))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "req-42", hook.LastEntry().Data["request_id"])
	assert.Equal(t, http.StatusNotFound, hook.LastEntry().Data["status"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestTimeoutSetsDeadline(t *testing.T) {
	r := gin.New()
	r.Use(RequestTimeout(time.Second))
	r.GET("/x", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		c.JSON(http.StatusOK, gin.H{"deadline": ok})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.JSONEq(t, `{"deadline":true}`, w.Body.String())
}
