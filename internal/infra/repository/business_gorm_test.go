package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/agenda-hub/internal/domain/business"
	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
)

func TestUpdateForOwnerScopesByIDAndOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBusinessGormRepository(db)

	id, owner := uuid.New(), uuid.New()

	mock.ExpectExec(`UPDATE "businesses" SET .* WHERE id = \$\d+ AND user_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateForOwner(context.Background(), id, owner, domain.SettingsUpdate{
		Name:          "Peluquería Sol",
		Email:         "sol@shop.com",
		BusinessHours: domain.DefaultSchedule(),
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateForOwnerNoRowIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBusinessGormRepository(db)

	mock.ExpectExec(`UPDATE "businesses" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateForOwner(context.Background(), uuid.New(), uuid.New(), domain.SettingsUpdate{Name: "x"})

	assert.True(t, httperr.IsBusiness(err, "business_not_found"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateForOwnerStoreFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBusinessGormRepository(db)

	boom := errors.New("connection reset")
	mock.ExpectExec(`UPDATE "businesses" SET`).WillReturnError(boom)

	err := repo.UpdateForOwner(context.Background(), uuid.New(), uuid.New(), domain.SettingsUpdate{Name: "x"})

	assert.ErrorIs(t, err, boom)
	assert.False(t, httperr.IsBusiness(err, "business_not_found"))
}

func TestListDirectoryEscapesSearchTerm(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBusinessGormRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "businesses" WHERE name ILIKE \$1 OR description ILIKE \$2 ORDER BY name ASC`).
		WithArgs(`%50\%\_off%`, `%50\%\_off%`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := repo.ListDirectory(context.Background(), "  50%_off ")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDirectoryPreloadsServices(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBusinessGormRepository(db)

	bizID := uuid.New()
	svcID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "businesses" ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(bizID.String(), "Barbería Norte"))
	mock.ExpectQuery(`SELECT \* FROM "services" WHERE "services"."business_id" = \$1 ORDER BY name ASC`).
		WithArgs(bizID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "business_id", "name", "duration"}).
			AddRow(svcID.String(), bizID.String(), "Corte", 30))

	out, err := repo.ListDirectory(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Services, 1)
	assert.Equal(t, "Corte", out[0].Services[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
