package customer

import (
	"strings"

	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

// Matches reports whether c matches a search term: name and email are
// compared case-insensitively, phone literally. An empty term matches all.
func Matches(c models.Customer, term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)

	return strings.Contains(strings.ToLower(c.Name), lower) ||
		strings.Contains(strings.ToLower(c.Email), lower) ||
		strings.Contains(c.Phone, term)
}

// Filter keeps the customers matching term, preserving order.
func Filter(customers []models.Customer, term string) []models.Customer {
	out := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if Matches(c, term) {
			out = append(out, c)
		}
	}
	return out
}
