package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

func profile() *models.Profile {
	return &models.Profile{
		ID:       uuid.New(),
		Email:    "owner@shop.com",
		FullName: "Marta",
		IsAdmin:  true,
	}
}

func TestIssueParseRoundTrip(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	p := profile()

	raw, issued, err := tokens.Issue(p)
	require.NoError(t, err)

	parsed, err := tokens.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, p.ID, parsed.UserID)
	assert.Equal(t, "owner@shop.com", parsed.Email)
	assert.Equal(t, "Marta", parsed.FullName)
	assert.True(t, parsed.IsAdmin)
	assert.Equal(t, issued.TokenID, parsed.TokenID)
	assert.NotEmpty(t, parsed.TokenID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	raw, _, err := NewTokens("secret", time.Hour).Issue(profile())
	require.NoError(t, err)

	_, err = NewTokens("other", time.Hour).Parse(raw)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	tokens := NewTokens("secret", time.Minute)
	tokens.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	raw, _, err := tokens.Issue(profile())
	require.NoError(t, err)

	tokens.now = time.Now
	_, err = tokens.Parse(raw)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewTokens("secret", time.Hour).Parse("not.a.token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Marta", Session{FullName: "Marta", Email: "m@x.com"}.DisplayName())
	assert.Equal(t, "m@x.com", Session{Email: "m@x.com"}.DisplayName())
}
