package business

import (
	"strings"

	"github.com/BruksfildServices01/agenda-hub/internal/models"
	"github.com/BruksfildServices01/agenda-hub/internal/timezone"
	"github.com/BruksfildServices01/agenda-hub/internal/validators"
)

// Form is the business edit form, shared by creation and settings.
type Form struct {
	Name          string
	Description   string
	Email         string
	Phone         string
	Address       string
	Timezone      string
	BusinessHours models.WeeklySchedule
}

// Validate trims the form and returns the column update plus per-field
// messages. An empty description is stored as NULL and an empty timezone
// as UTC.
func (in Form) Validate() (SettingsUpdate, map[string]string) {
	upd := SettingsUpdate{
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.TrimSpace(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		Address:       strings.TrimSpace(in.Address),
		Timezone:      strings.TrimSpace(in.Timezone),
		BusinessHours: in.BusinessHours,
	}
	if desc := strings.TrimSpace(in.Description); desc != "" {
		upd.Description = &desc
	}

	fields := map[string]string{}

	if upd.Name == "" {
		fields["name"] = "El nombre es obligatorio"
	}
	switch {
	case upd.Email == "":
		fields["email"] = "El email es obligatorio"
	case !validators.IsEmailFormatValid(upd.Email):
		fields["email"] = "Email inválido"
	}
	if upd.Phone == "" {
		fields["phone"] = "El teléfono es obligatorio"
	}
	if upd.Address == "" {
		fields["address"] = "La dirección es obligatoria"
	}

	if upd.Timezone == "" {
		upd.Timezone = timezone.DefaultTimezone
	} else if !timezone.IsValid(upd.Timezone) {
		fields["timezone"] = "Zona horaria inválida"
	}

	if len(upd.BusinessHours) == 0 {
		upd.BusinessHours = DefaultSchedule()
	}
	for k, v := range ValidateSchedule(upd.BusinessHours) {
		fields[k] = v
	}

	return upd, fields
}
