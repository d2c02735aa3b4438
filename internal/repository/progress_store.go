package repository

import (
	"context"
	"encoding/json"
	"strconv"

	"daily-quiz/internal/domain"
	"daily-quiz/internal/logger"
	"daily-quiz/internal/util"

	"go.uber.org/zap"
)

// Legacy state keys carried over from the original widget's local storage.
const (
	KeyInsightHistory  = "insightHistory"
	KeyHighestInsights = "highestInsights"
	KeyCurrentStreak   = "currentStreak"
	KeyLastQuizDate    = "lastQuizDate"
)

// stateProgressStore maps a domain.ProgressRecord onto the four legacy
// key-value entries. Malformed stored values parse to zero values so a
// corrupted store degrades to defaults instead of failing.
type stateProgressStore struct {
	store domain.StateStore
}

// NewStateProgressStore creates a new instance of stateProgressStore.
func NewStateProgressStore(store domain.StateStore) domain.ProgressStore {
	return &stateProgressStore{store: store}
}

// Load reads the progress record. Missing keys yield zero values.
func (p *stateProgressStore) Load(ctx context.Context) (*domain.ProgressRecord, error) {
	record := domain.NewProgressRecord()

	historyJSON, err := p.getOrEmpty(ctx, KeyInsightHistory)
	if err != nil {
		return nil, err
	}
	if historyJSON != "" {
		if err := json.Unmarshal([]byte(historyJSON), &record.History); err != nil {
			logger.Get().Warn("Malformed insight history in state store, resetting",
				zap.Error(err))
			record.History = make(map[string]int)
		}
	}

	highest, err := p.getOrEmpty(ctx, KeyHighestInsights)
	if err != nil {
		return nil, err
	}
	record.HighestInsights = util.ParseIntOrZero(highest)

	streak, err := p.getOrEmpty(ctx, KeyCurrentStreak)
	if err != nil {
		return nil, err
	}
	record.CurrentStreak = util.ParseIntOrZero(streak)

	lastDate, err := p.getOrEmpty(ctx, KeyLastQuizDate)
	if err != nil {
		return nil, err
	}
	record.LastQuizDate = lastDate

	return record, nil
}

// Save writes the progress record back to the four state keys.
func (p *stateProgressStore) Save(ctx context.Context, record *domain.ProgressRecord) error {
	historyJSON, err := json.Marshal(record.History)
	if err != nil {
		return domain.NewInternalError("failed to marshal insight history", err)
	}
	if err := p.store.Set(ctx, KeyInsightHistory, string(historyJSON)); err != nil {
		return domain.NewInternalError("failed to save insight history", err)
	}
	if err := p.store.Set(ctx, KeyHighestInsights, strconv.Itoa(record.HighestInsights)); err != nil {
		return domain.NewInternalError("failed to save highest insights", err)
	}
	if err := p.store.Set(ctx, KeyCurrentStreak, strconv.Itoa(record.CurrentStreak)); err != nil {
		return domain.NewInternalError("failed to save current streak", err)
	}
	if err := p.store.Set(ctx, KeyLastQuizDate, record.LastQuizDate); err != nil {
		return domain.NewInternalError("failed to save last quiz date", err)
	}
	return nil
}

func (p *stateProgressStore) getOrEmpty(ctx context.Context, key string) (string, error) {
	value, err := p.store.Get(ctx, key)
	if err != nil {
		if err == domain.ErrStateKeyNotFound {
			return "", nil
		}
		return "", domain.NewInternalError("failed to read state key "+key, err)
	}
	return value, nil
}
