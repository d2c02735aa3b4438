package repository

import (
	"context"
	"database/sql"
	"testing"

	"daily-quiz/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStateStore(t *testing.T) (domain.StateStore, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewSQLXStateStore(db), mock
}

func TestSQLXStateStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		store, mock := newMockStateStore(t)

		rows := sqlmock.NewRows([]string{"value"}).AddRow("5")
		mock.ExpectQuery(`SELECT value FROM app_state WHERE key = \?`).
			WithArgs("currentStreak").
			WillReturnRows(rows)

		value, err := store.Get(ctx, "currentStreak")
		require.NoError(t, err)
		assert.Equal(t, "5", value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		store, mock := newMockStateStore(t)

		mock.ExpectQuery(`SELECT value FROM app_state WHERE key = \?`).
			WithArgs("lastQuizDate").
			WillReturnError(sql.ErrNoRows)

		_, err := store.Get(ctx, "lastQuizDate")
		assert.ErrorIs(t, err, domain.ErrStateKeyNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLXStateStore_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("Upsert", func(t *testing.T) {
		store, mock := newMockStateStore(t)

		mock.ExpectExec(`INSERT INTO app_state`).
			WithArgs("highestInsights", "30", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := store.Set(ctx, "highestInsights", "30")
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
