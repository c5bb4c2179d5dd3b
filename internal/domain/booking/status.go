package booking

import "github.com/BruksfildServices01/agenda-hub/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Normalize maps unknown stored values to pending.
func Normalize(raw string) Status {
	switch s := Status(raw); s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return s
	}
	return StatusPending
}

// ===============================
// Badge
// ===============================

type Badge struct {
	Label   string `json:"label"`
	Variant string `json:"variant"`
}

var badges = map[Status]Badge{
	StatusPending:   {Label: "Pendiente", Variant: "secondary"},
	StatusConfirmed: {Label: "Confirmada", Variant: "default"},
	StatusCancelled: {Label: "Cancelada", Variant: "destructive"},
	StatusCompleted: {Label: "Completada", Variant: "outline"},
}

func BadgeFor(raw string) Badge {
	return badges[Normalize(raw)]
}

// ===============================
// Validations
// ===============================

// CanConfirm define se uma reserva pode ser confirmada
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
