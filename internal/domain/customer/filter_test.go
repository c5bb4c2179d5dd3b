package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

var sample = []models.Customer{
	{Name: "Juan Pérez", Email: "juan@example.com", Phone: "+34 600 111 222"},
	{Name: "Ana López", Email: "ANA@Correo.ES", Phone: "+34 611 999 000"},
	{Name: "Luis", Email: "luis@example.com", Phone: "612345678"},
}

func names(cs []models.Customer) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Name)
	}
	return out
}

func TestFilterEmptyKeepsAll(t *testing.T) {
	assert.Equal(t, sample, Filter(sample, ""))
}

func TestFilterByNameCaseInsensitive(t *testing.T) {
	assert.Equal(t, []string{"Juan Pérez"}, names(Filter(sample, "JUAN")))
}

func TestFilterByEmailCaseInsensitive(t *testing.T) {
	assert.Equal(t, []string{"Ana López"}, names(Filter(sample, "correo.es")))
	assert.Equal(t, []string{"Juan Pérez", "Luis"}, names(Filter(sample, "EXAMPLE")))
}

func TestFilterByPhoneLiteral(t *testing.T) {
	assert.Equal(t, []string{"Juan Pérez", "Ana López"}, names(Filter(sample, "+34")))
	assert.Equal(t, []string{"Luis"}, names(Filter(sample, "2345")))
}

// The filtered set is exactly the subset matching any of the three fields.
func TestFilterEqualsMatchingSubset(t *testing.T) {
	for _, term := range []string{"a", "L", "6", "@", "zz", "600 111", "ÉREZ"} {
		var want []models.Customer
		for _, c := range sample {
			if Matches(c, term) {
				want = append(want, c)
			}
		}
		got := Filter(sample, term)
		assert.Len(t, got, len(want), term)
		if len(want) > 0 {
			assert.Equal(t, want, got, term)
		}
	}
}

func TestFilterNoMatch(t *testing.T) {
	assert.Empty(t, Filter(sample, "nobody"))
}
