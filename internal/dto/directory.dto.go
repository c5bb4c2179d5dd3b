package dto

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-hub/internal/domain/business"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

type ServiceDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Duration      int       `json:"duration"`
	DurationLabel string    `json:"duration_label"`
	IsActive      bool      `json:"is_active"`
}

type DirectoryCardDTO struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Address      string       `json:"address"`
	LogoURL      string       `json:"logo_url"`
	Services     []ServiceDTO `json:"services"`
	MoreServices int          `json:"more_services"`
}

type DirectoryDTO struct {
	Data  []DirectoryCardDTO `json:"data"`
	Total int                `json:"total"`
	Query string             `json:"query"`
}

type ScheduleDayDTO struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

type BusinessDetailDTO struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	Address     string           `json:"address"`
	Timezone    string           `json:"timezone"`
	LogoURL     string           `json:"logo_url"`
	Hours       []ScheduleDayDTO `json:"hours"`
	Services    []ServiceDTO     `json:"services"`
	CallURL     string           `json:"call_url"`
}

// StringOrEmpty dereferences nullable text columns.
func StringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func NewServiceDTO(s models.Service, label string) ServiceDTO {
	return ServiceDTO{
		ID:            s.ID,
		Name:          s.Name,
		Description:   StringOrEmpty(s.Description),
		Price:         s.Price,
		Duration:      s.Duration,
		DurationLabel: label,
		IsActive:      s.IsActive,
	}
}

// ScheduleRows lists s in Monday-first order with display labels.
func ScheduleRows(s models.WeeklySchedule) []ScheduleDayDTO {
	rows := make([]ScheduleDayDTO, 0, len(business.Days))
	for _, day := range business.Days {
		h := s[day]
		rows = append(rows, ScheduleDayDTO{
			Key:    day,
			Label:  business.DayLabels[day],
			Open:   h.Open,
			Close:  h.Close,
			Closed: h.Closed,
		})
	}
	return rows
}
