package domain

import "context"

// QuestionSource is the read-only port for the daily question documents,
// keyed by ISO calendar date (YYYY-MM-DD). A date with no data returns an
// empty slice and a nil error; callers decide how to degrade.
type QuestionSource interface {
	QuestionsForDate(ctx context.Context, date string) ([]Question, error)
}

// StateStore is the injected capability for the persistent string key-value
// store holding the progress counters. Get returns ErrStateKeyNotFound when
// the key has never been written.
type StateStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// StateError represents an error originating from the state store.
type StateError string

func (e StateError) Error() string {
	return string(e)
}

// ErrStateKeyNotFound is returned when a state key has no stored value.
const ErrStateKeyNotFound = StateError("state: key not found")

// ProgressStore persists the progress record behind the StateStore keys.
type ProgressStore interface {
	Load(ctx context.Context) (*ProgressRecord, error)
	Save(ctx context.Context, record *ProgressRecord) error
}
