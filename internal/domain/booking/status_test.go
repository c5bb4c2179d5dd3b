package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

func TestBadgeFor(t *testing.T) {
	cases := map[string]Badge{
		"pending":   {Label: "Pendiente", Variant: "secondary"},
		"confirmed": {Label: "Confirmada", Variant: "default"},
		"cancelled": {Label: "Cancelada", Variant: "destructive"},
		"completed": {Label: "Completada", Variant: "outline"},
	}
	for status, want := range cases {
		assert.Equal(t, want, BadgeFor(status), status)
	}
}

func TestBadgeForUnknownFallsBackToPending(t *testing.T) {
	pending := BadgeFor("pending")

	for _, raw := range []string{"", "CONFIRMED", "no_show", "rescheduled", " pending"} {
		assert.Equal(t, pending, BadgeFor(raw), "status %q", raw)
	}
}

func TestApplyTransitions(t *testing.T) {
	cases := []struct {
		from   string
		action Action
		want   string
		ok     bool
	}{
		{"pending", ActionConfirm, "confirmed", true},
		{"pending", ActionCancel, "cancelled", true},
		{"pending", ActionComplete, "pending", false},
		{"confirmed", ActionComplete, "completed", true},
		{"confirmed", ActionCancel, "cancelled", true},
		{"confirmed", ActionConfirm, "confirmed", false},
		{"cancelled", ActionConfirm, "cancelled", false},
		{"completed", ActionCancel, "completed", false},
		{"weird", ActionConfirm, "confirmed", true},
	}

	for _, tc := range cases {
		b := &models.Booking{Status: tc.from}
		err := Apply(b, tc.action)
		if tc.ok {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.action)
		} else {
			assert.True(t, httperr.IsBusiness(err, "invalid_state"), "%s -> %s", tc.from, tc.action)
		}
		assert.Equal(t, tc.want, b.Status, "%s -> %s", tc.from, tc.action)
	}
}

func TestApplyUnknownAction(t *testing.T) {
	b := &models.Booking{Status: "pending"}

	err := Apply(b, Action("archive"))

	assert.True(t, httperr.IsBusiness(err, "invalid_action"))
	assert.Equal(t, "pending", b.Status)
}
