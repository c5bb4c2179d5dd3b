package business

import (
	"bytes"
	"context"
	"image"
	"image/png"
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
	businesses map[uuid.UUID]*models.Business
	services   map[uuid.UUID]*models.Service
}

func newMemRepo() *memRepo {
	return &memRepo{
		businesses: map[uuid.UUID]*models.Business{},
		services:   map[uuid.UUID]*models.Service{},
	}
}

func (m *memRepo) ListByOwner(_ context.Context, owner uuid.UUID) ([]models.Business, error) {
	var out []models.Business
	for _, b := range m.businesses {
		if b.UserID == owner {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memRepo) GetForOwner(_ context.Context, id, owner uuid.UUID) (*models.Business, error) {
	b, ok := m.businesses[id]
	if !ok || b.UserID != owner {
		return nil, httperr.ErrBusiness("business_not_found")
	}
	cp := *b
	return &cp, nil
}

func (m *memRepo) UpdateForOwner(context.Context, uuid.UUID, uuid.UUID, domain.SettingsUpdate) error {
	return nil
}

func (m *memRepo) UpdateLogo(_ context.Context, id, owner uuid.UUID, url string) error {
	b, ok := m.businesses[id]
	if !ok || b.UserID != owner {
		return httperr.ErrBusiness("business_not_found")
	}
	b.LogoURL = url
	return nil
}

func (m *memRepo) Create(_ context.Context, b *models.Business) error {
	b.ID = uuid.New()
	m.businesses[b.ID] = b
	return nil
}

func (m *memRepo) ListDirectory(context.Context, string) ([]models.Business, error) { return nil, nil }

func (m *memRepo) GetPublic(context.Context, uuid.UUID) (*models.Business, error) { return nil, nil }

func (m *memRepo) ListServices(_ context.Context, businessID uuid.UUID) ([]models.Service, error) {
	var out []models.Service
	for _, s := range m.services {
		if s.BusinessID == businessID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memRepo) CreateService(_ context.Context, s *models.Service) error {
	s.ID = uuid.New()
	cp := *s
	m.services[s.ID] = &cp
	return nil
}

func (m *memRepo) GetServiceForOwner(_ context.Context, id, owner uuid.UUID) (*models.Service, error) {
	s, ok := m.services[id]
	if !ok || m.businesses[s.BusinessID] == nil || m.businesses[s.BusinessID].UserID != owner {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	cp := *s
	return &cp, nil
}

func (m *memRepo) SaveService(_ context.Context, s *models.Service) error {
	cp := *s
	m.services[s.ID] = &cp
	return nil
}

type recorder struct{ events []audit.Event }

func (r *recorder) Dispatch(ev audit.Event) { r.events = append(r.events, ev) }

type invalidator struct{ calls int }

func (i *invalidator) Invalidate(context.Context) error {
	i.calls++
	return nil
}

type memStore struct {
	keys []string
}

func (m *memStore) Put(_ context.Context, key, _ string, _ []byte) (string, error) {
	m.keys = append(m.keys, key)
	return "https://cdn.test/" + key, nil
}

func ptr[T any](v T) *T { return &v }

// ======================================================
// TESTS
// ======================================================

func TestCreateBusinessDefaults(t *testing.T) {
	repo := newMemRepo()
	cache := &invalidator{}
	rec := &recorder{}
	log, _ := test.NewNullLogger()
	owner := uuid.New()

	b, err := NewCreateBusiness(repo, cache, rec, log).Execute(context.Background(), session.Session{UserID: owner}, domain.Form{
		Name: "Spa Marina", Email: "spa@marina.es", Phone: "600", Address: "Paseo 3",
	})

	require.NoError(t, err)
	assert.Equal(t, owner, b.UserID)
	assert.Equal(t, "UTC", b.Timezone)
	assert.Equal(t, domain.DefaultSchedule(), b.BusinessHours)
	assert.Nil(t, b.Description)
	assert.Equal(t, 1, cache.calls)
	assert.Equal(t, "business_created", rec.events[0].Action)
}

func TestCreateBusinessValidation(t *testing.T) {
	log, _ := test.NewNullLogger()

	_, err := NewCreateBusiness(newMemRepo(), nil, &recorder{}, log).
		Execute(context.Background(), session.Session{UserID: uuid.New()}, domain.Form{Name: "x"})

	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "email")
}

func TestServiceLifecycle(t *testing.T) {
	repo := newMemRepo()
	log, _ := test.NewNullLogger()
	owner := uuid.New()
	sess := session.Session{UserID: owner}
	biz := &models.Business{UserID: owner, Name: "Spa"}
	require.NoError(t, repo.Create(context.Background(), biz))

	created, err := NewCreateService(repo, nil, &recorder{}, log).Execute(context.Background(), sess, biz.ID, ServicePatch{
		Name: ptr(" Masaje "), Price: ptr(40.0), Duration: ptr(90),
	})
	require.NoError(t, err)
	assert.Equal(t, "Masaje", created.Name)
	assert.Equal(t, "1h 30min", created.DurationLabel)
	assert.True(t, created.IsActive)

	updated, err := NewUpdateService(repo, nil, &recorder{}, log).Execute(context.Background(), sess, created.ID, ServicePatch{
		IsActive: ptr(false), Description: ptr("Relajante"),
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Relajante", updated.Description)
	assert.Equal(t, 90, updated.Duration)

	list, err := NewListServices(repo).Execute(context.Background(), sess, biz.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestServiceValidationAndOwnership(t *testing.T) {
	repo := newMemRepo()
	log, _ := test.NewNullLogger()
	owner := uuid.New()
	biz := &models.Business{UserID: owner}
	require.NoError(t, repo.Create(context.Background(), biz))

	create := NewCreateService(repo, nil, &recorder{}, log)

	_, err := create.Execute(context.Background(), session.Session{UserID: owner}, biz.ID, ServicePatch{
		Name: ptr(""), Price: ptr(-1.0), Duration: ptr(0),
	})
	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Fields, 3)

	_, err = create.Execute(context.Background(), session.Session{UserID: uuid.New()}, biz.ID, ServicePatch{
		Name: ptr("Corte"), Duration: ptr(30),
	})
	assert.True(t, httperr.IsBusiness(err, "business_not_found"))

	_, err = NewListServices(repo).Execute(context.Background(), session.Session{UserID: uuid.New()}, biz.ID)
	assert.True(t, httperr.IsBusiness(err, "business_not_found"))
}

func TestUploadLogo(t *testing.T) {
	repo := newMemRepo()
	log, _ := test.NewNullLogger()
	owner := uuid.New()
	biz := &models.Business{UserID: owner}
	require.NoError(t, repo.Create(context.Background(), biz))
	store := &memStore{}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 40, 40))))

	url, err := NewUploadLogo(repo, store, nil, &recorder{}, log).
		Execute(context.Background(), session.Session{UserID: owner}, biz.ID, buf.Bytes())

	require.NoError(t, err)
	require.Len(t, store.keys, 1)
	assert.Equal(t, "https://cdn.test/"+store.keys[0], url)
	assert.Equal(t, url, repo.businesses[biz.ID].LogoURL)

	_, err = NewUploadLogo(repo, store, nil, &recorder{}, log).
		Execute(context.Background(), session.Session{UserID: owner}, biz.ID, []byte("gif?"))
	assert.True(t, httperr.IsBusiness(err, "invalid_image"))

	_, err = NewUploadLogo(repo, nil, nil, &recorder{}, log).
		Execute(context.Background(), session.Session{UserID: owner}, biz.ID, buf.Bytes())
	assert.True(t, httperr.IsBusiness(err, "storage_disabled"))
}
