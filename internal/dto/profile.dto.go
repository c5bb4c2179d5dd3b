package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

type ProfileDTO struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone"`
	IsAdmin  bool      `json:"is_admin"`
}

func NewProfileDTO(p *models.Profile) ProfileDTO {
	return ProfileDTO{
		ID:       p.ID,
		Email:    p.Email,
		FullName: p.FullName,
		Phone:    p.Phone,
		IsAdmin:  p.IsAdmin,
	}
}

type AuthDTO struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	Profile   ProfileDTO `json:"profile"`
}
