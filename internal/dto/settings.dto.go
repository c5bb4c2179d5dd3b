package dto

import (
	"github.com/BruksfildServices01/agenda-hub/internal/httpresp"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

// SettingsFormDTO is the editable copy of a business. Nullable columns
// arrive as empty strings and missing hours as the default template.
type SettingsFormDTO struct {
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Email         string                `json:"email"`
	Phone         string                `json:"phone"`
	Address       string                `json:"address"`
	Timezone      string                `json:"timezone"`
	BusinessHours models.WeeklySchedule `json:"business_hours"`
	Days          []ScheduleDayDTO      `json:"days"`
}

type SettingsDTO struct {
	Business models.Business `json:"business"`
	Form     SettingsFormDTO `json:"form"`
}

type SettingsSavedDTO struct {
	Business     models.Business       `json:"business"`
	Notification httpresp.Notification `json:"notification"`
}
