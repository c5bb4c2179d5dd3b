package dto

import (
	"time"

	"github.com/google/uuid"
)

type BusinessSummaryDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	LogoURL     string    `json:"logo_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type DashboardStatsDTO struct {
	Businesses    int   `json:"businesses"`
	BookingsToday int64 `json:"bookings_today"`
	Customers     int   `json:"customers"`
}

type ShortcutDTO struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

type DashboardDTO struct {
	GreetingName string               `json:"greeting_name"`
	IsAdmin      bool                 `json:"is_admin"`
	Businesses   []BusinessSummaryDTO `json:"businesses"`
	Stats        DashboardStatsDTO    `json:"stats"`
	Shortcuts    []ShortcutDTO        `json:"shortcuts"`
}
