package dto

import (
	"github.com/google/uuid"
)

type BadgeDTO struct {
	Label   string `json:"label"`
	Variant string `json:"variant"`
}

type BookingCustomerDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

type BookingServiceDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

type BookingBusinessDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingListDTO struct {
	ID          uuid.UUID          `json:"id"`
	BookingDate string             `json:"booking_date"`
	DateLabel   string             `json:"date_label"`
	StartTime   string             `json:"start_time"`
	EndTime     string             `json:"end_time"`
	Status      string             `json:"status"`
	Badge       BadgeDTO           `json:"badge"`
	Notes       string             `json:"notes,omitempty"`
	Customer    BookingCustomerDTO `json:"customer"`
	Service     BookingServiceDTO  `json:"service"`
	Business    BookingBusinessDTO `json:"business"`
	ReminderURL string             `json:"reminder_url"`
}
