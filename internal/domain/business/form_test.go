package business

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValidateKeepsDescription(t *testing.T) {
	f := Form{
		Name:        " Spa Marina ",
		Description: "  Masajes  ",
		Email:       "spa@marina.es",
		Phone:       "600",
		Address:     "Paseo 3",
	}

	upd, fields := f.Validate()

	assert.Empty(t, fields)
	assert.Equal(t, "Spa Marina", upd.Name)
	require.NotNil(t, upd.Description)
	assert.Equal(t, "Masajes", *upd.Description)
	assert.Equal(t, "UTC", upd.Timezone)
	assert.Equal(t, DefaultSchedule(), upd.BusinessHours)
}

func TestFormValidateRequiredFields(t *testing.T) {
	_, fields := Form{Description: "x"}.Validate()

	assert.Equal(t, map[string]string{
		"name":    "El nombre es obligatorio",
		"email":   "El email es obligatorio",
		"phone":   "El teléfono es obligatorio",
		"address": "La dirección es obligatoria",
	}, fields)
}

func TestFormValidateEmptyDescriptionIsNull(t *testing.T) {
	upd, _ := Form{Description: "   "}.Validate()

	assert.Nil(t, upd.Description)
}
