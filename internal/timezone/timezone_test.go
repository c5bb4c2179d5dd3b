package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("Europe/Madrid"))
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
}

func TestLocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Location("nope"))
	assert.Equal(t, "America/Mexico_City", Location("America/Mexico_City").String())
}

func TestDateIn(t *testing.T) {
	// 23:30 UTC on the 1st is already the 2nd in Madrid.
	at := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), DateIn(at, "Europe/Madrid"))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), DateIn(at, "UTC"))
}
