package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-hub/internal/audit"
	domain "github.com/BruksfildServices01/agenda-hub/internal/domain/business"
	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
	"github.com/BruksfildServices01/agenda-hub/internal/session"
)

// ======================================================
// FAKES
// ======================================================

type memRepo struct {
	rows      map[uuid.UUID]*models.Business
	failWrite error
	writes    int
}

func (m *memRepo) GetForOwner(_ context.Context, id, owner uuid.UUID) (*models.Business, error) {
	b, ok := m.rows[id]
	if !ok || b.UserID != owner {
		return nil, httperr.ErrBusiness("business_not_found")
	}
	cp := *b
	return &cp, nil
}

func (m *memRepo) UpdateForOwner(_ context.Context, id, owner uuid.UUID, in domain.SettingsUpdate) error {
	m.writes++
	if m.failWrite != nil {
		return m.failWrite
	}
	b, ok := m.rows[id]
	if !ok || b.UserID != owner {
		return httperr.ErrBusiness("business_not_found")
	}
	b.Name, b.Description, b.Email = in.Name, in.Description, in.Email
	b.Phone, b.Address, b.Timezone, b.BusinessHours = in.Phone, in.Address, in.Timezone, in.BusinessHours
	return nil
}

type invalidator struct{ calls int }

func (i *invalidator) Invalidate(context.Context) error {
	i.calls++
	return nil
}

type recorder struct{ events []audit.Event }

func (r *recorder) Dispatch(ev audit.Event) { r.events = append(r.events, ev) }

func seed() (*memRepo, *models.Business) {
	desc := "Cortes clásicos"
	b := &models.Business{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Name:        "Barbería Sol",
		Description: &desc,
		Email:       "sol@shop.com",
		Phone:       "+34 600",
		Address:     "Calle Mayor 1",
		Timezone:    "Europe/Madrid",
		LogoURL:     "https://cdn/logo.webp",
	}
	return &memRepo{rows: map[uuid.UUID]*models.Business{b.ID: b}}, b
}

func validInput() domain.Form {
	return domain.Form{
		Name:          "Barbería Luna",
		Description:   "",
		Email:         "luna@shop.com",
		Phone:         "+34 611",
		Address:       "Calle Menor 2",
		Timezone:      "",
		BusinessHours: domain.DefaultSchedule(),
	}
}

// ======================================================
// GET
// ======================================================

func TestGetSettingsSeedsDefaults(t *testing.T) {
	repo, b := seed()
	b.Description = nil
	b.BusinessHours = nil

	out, err := NewGetSettings(repo).Execute(context.Background(), session.Session{UserID: b.UserID}, b.ID)

	require.NoError(t, err)
	assert.Equal(t, "", out.Form.Description)
	assert.Equal(t, domain.DefaultSchedule(), out.Form.BusinessHours)
	assert.Equal(t, models.DayHours{Open: "09:00", Close: "14:00", Closed: true}, out.Form.BusinessHours["sunday"])
	assert.Len(t, out.Form.Days, 7)
}

func TestGetSettingsOtherOwnerIsNotFound(t *testing.T) {
	repo, b := seed()

	_, err := NewGetSettings(repo).Execute(context.Background(), session.Session{UserID: uuid.New()}, b.ID)

	assert.True(t, httperr.IsBusiness(err, "business_not_found"))
}

// ======================================================
// UPDATE
// ======================================================

func TestUpdateSettingsSuccess(t *testing.T) {
	repo, b := seed()
	cache := &invalidator{}
	rec := &recorder{}
	log, _ := test.NewNullLogger()

	out, err := NewUpdateSettings(repo, cache, rec, log).
		Execute(context.Background(), session.Session{UserID: b.UserID}, b.ID, validInput())

	require.NoError(t, err)
	assert.Equal(t, "Barbería Luna", out.Business.Name)
	assert.Nil(t, out.Business.Description)
	assert.Equal(t, "UTC", out.Business.Timezone)
	assert.Equal(t, "https://cdn/logo.webp", out.Business.LogoURL)
	assert.Equal(t, "Éxito", out.Notification.Title)
	assert.Equal(t, SavedMessage, out.Notification.Description)

	assert.Equal(t, "Barbería Luna", repo.rows[b.ID].Name)
	assert.Equal(t, 1, cache.calls)
	require.Len(t, rec.events, 1)
	assert.Equal(t, "business_settings_updated", rec.events[0].Action)
}

func TestUpdateSettingsValidationLeavesRowUnchanged(t *testing.T) {
	repo, b := seed()
	log, _ := test.NewNullLogger()

	in := validInput()
	in.Name = "   "
	in.Email = "not-an-email"
	in.Phone = ""
	in.Address = ""
	in.Timezone = "Mars/Olympus"
	in.BusinessHours["monday"] = models.DayHours{Open: "18:00", Close: "09:00"}

	_, err := NewUpdateSettings(repo, nil, &recorder{}, log).
		Execute(context.Background(), session.Session{UserID: b.UserID}, b.ID, in)

	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "El nombre es obligatorio", ve.Fields["name"])
	assert.Equal(t, "Email inválido", ve.Fields["email"])
	assert.Contains(t, ve.Fields, "phone")
	assert.Contains(t, ve.Fields, "address")
	assert.Contains(t, ve.Fields, "timezone")
	assert.Contains(t, ve.Fields, "business_hours.monday")

	assert.Zero(t, repo.writes)
	assert.Equal(t, "Barbería Sol", repo.rows[b.ID].Name)
}

func TestUpdateSettingsStoreFailure(t *testing.T) {
	repo, b := seed()
	boom := errors.New("connection refused")
	repo.failWrite = boom
	rec := &recorder{}
	log, _ := test.NewNullLogger()

	_, err := NewUpdateSettings(repo, &invalidator{}, rec, log).
		Execute(context.Background(), session.Session{UserID: b.UserID}, b.ID, validInput())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "Barbería Sol", repo.rows[b.ID].Name)
	assert.Empty(t, rec.events)
}

func TestUpdateSettingsNotOwned(t *testing.T) {
	repo, b := seed()
	log, _ := test.NewNullLogger()

	_, err := NewUpdateSettings(repo, nil, &recorder{}, log).
		Execute(context.Background(), session.Session{UserID: uuid.New()}, b.ID, validInput())

	assert.True(t, httperr.IsBusiness(err, "business_not_found"))
	assert.Zero(t, repo.writes)
}
