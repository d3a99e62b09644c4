package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_AppliesUpMigrations(t *testing.T) {
	db, mock := newMockDB(t)

	names, err := upMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for range names {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS route_plans").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, db.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpMigrations_SkipsDown(t *testing.T) {
	names, err := upMigrations()
	require.NoError(t, err)

	for _, n := range names {
		assert.NotContains(t, n, ".down.")
	}
}
