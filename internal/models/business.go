package models

import (
	"time"

	"github.com/google/uuid"
)

type Business struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	Email       string  `gorm:"size:100" json:"email"`
	Phone       string  `gorm:"size:30" json:"phone"`
	Address     string  `gorm:"size:255" json:"address"`
	Timezone    string  `gorm:"size:64;default:'UTC'" json:"timezone"`
	LogoURL     string  `gorm:"size:512" json:"logo_url"`

	BusinessHours WeeklySchedule `gorm:"type:jsonb" json:"business_hours"`

	Services []Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
