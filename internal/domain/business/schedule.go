package business

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

// Days lists schedule keys in display order.
var Days = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// DayLabels are the display names shown next to each day.
var DayLabels = map[string]string{
	"monday":    "Lunes",
	"tuesday":   "Martes",
	"wednesday": "Miércoles",
	"thursday":  "Jueves",
	"friday":    "Viernes",
	"saturday":  "Sábado",
	"sunday":    "Domingo",
}

// DefaultSchedule is the template used when a business has no hours stored:
// weekdays 09:00-18:00, Saturday 09:00-14:00, Sunday closed.
func DefaultSchedule() models.WeeklySchedule {
	weekday := models.DayHours{Open: "09:00", Close: "18:00"}

	return models.WeeklySchedule{
		"monday":    weekday,
		"tuesday":   weekday,
		"wednesday": weekday,
		"thursday":  weekday,
		"friday":    weekday,
		"saturday":  {Open: "09:00", Close: "14:00"},
		"sunday":    {Open: "09:00", Close: "14:00", Closed: true},
	}
}

// ScheduleOrDefault returns s, or the default template when s is empty.
func ScheduleOrDefault(s models.WeeklySchedule) models.WeeklySchedule {
	if len(s) == 0 {
		return DefaultSchedule()
	}
	return s
}

// ValidateSchedule returns field errors keyed "business_hours.<day>".
// Every day must be present; open days need HH:MM times with open < close.
func ValidateSchedule(s models.WeeklySchedule) map[string]string {
	errs := map[string]string{}

	for _, day := range Days {
		key := "business_hours." + day

		h, ok := s[day]
		if !ok {
			errs[key] = "Falta el horario de " + DayLabels[day]
			continue
		}
		if h.Closed {
			continue
		}

		open, err1 := time.Parse("15:04", h.Open)
		closeAt, err2 := time.Parse("15:04", h.Close)
		if err1 != nil || err2 != nil {
			errs[key] = "Formato de hora inválido (HH:MM)"
			continue
		}
		if !open.Before(closeAt) {
			errs[key] = fmt.Sprintf("La apertura (%s) debe ser anterior al cierre (%s)", h.Open, h.Close)
		}
	}

	for day := range s {
		if _, known := DayLabels[day]; !known {
			errs["business_hours."+day] = "Día desconocido"
		}
	}

	return errs
}
