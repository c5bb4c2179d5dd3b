package dto

import (
	"time"

	"github.com/google/uuid"
)

type CustomerListItemDTO struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
	MessageURL string    `json:"message_url"`
	CallURL    string    `json:"call_url"`
}

// CustomerListDTO carries the filtered rows plus the unfiltered count so
// the client can tell "no customers yet" from "no matches".
type CustomerListDTO struct {
	Data  []CustomerListItemDTO `json:"data"`
	Shown int                   `json:"shown"`
	Total int                   `json:"total"`
	Query string                `json:"query"`
}
