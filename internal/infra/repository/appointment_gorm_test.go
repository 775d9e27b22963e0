package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/hairlookapp/hairlook-api/internal/infra/repository"
)

func TestListForCallerScopesToOwner(t *testing.T) {
	db, mock := newMockDB(t)
	r := repository.NewAppointmentGormRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "appointments" WHERE user_id = \$1`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	aps, err := r.ListForCaller(context.Background(), 7, false)
	require.NoError(t, err)
	require.Empty(t, aps)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListForCallerStaffSeesAll(t *testing.T) {
	db, mock := newMockDB(t)
	r := repository.NewAppointmentGormRepository(db)

	// no WHERE clause for staff, just the natural ordering
	mock.ExpectQuery(`SELECT \* FROM "appointments" ORDER BY date ASC, time ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	aps, err := r.ListForCaller(context.Background(), 7, true)
	require.NoError(t, err)
	require.Empty(t, aps)
	require.NoError(t, mock.ExpectationsWereMet())
}
