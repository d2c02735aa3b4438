package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"daily-quiz/internal/domain"

	"github.com/jmoiron/sqlx"
)

// sqlxStateStore implements domain.StateStore on a single key-value table.
// This is the server-side stand-in for the browser's local storage: a small
// synchronous string store with no transactions.
type sqlxStateStore struct {
	db *sqlx.DB
}

// NewSQLXStateStore creates a new instance of sqlxStateStore.
func NewSQLXStateStore(db *sqlx.DB) domain.StateStore {
	return &sqlxStateStore{db: db}
}

// Get returns the stored value for key, or ErrStateKeyNotFound.
func (s *sqlxStateStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	query := `SELECT value FROM app_state WHERE key = ?`
	err := s.db.GetContext(ctx, &value, query, key)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", domain.ErrStateKeyNotFound
		}
		return "", fmt.Errorf("failed to get state key %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, overwriting any existing value.
func (s *sqlxStateStore) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
	          ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	_, err := s.db.ExecContext(ctx, query, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set state key %q: %w", key, err)
	}
	return nil
}
