package service

import (
	"context"

	"daily-quiz/internal/domain"
	"daily-quiz/internal/dto"
	"daily-quiz/internal/logger"

	"go.uber.org/zap"
)

// ProgressService defines the interface for progress tracking operations
type ProgressService interface {
	// RecordCompletion applies one completed session to the persisted counters
	// and returns the insights earned.
	RecordCompletion(ctx context.Context, correctCount int, completionDate string) (int, error)
	GetProgress(ctx context.Context) (*dto.ProgressResponse, error)
}

// progressService implements ProgressService
type progressService struct {
	store domain.ProgressStore
}

// NewProgressService creates a new instance of progressService
func NewProgressService(store domain.ProgressStore) ProgressService {
	return &progressService{store: store}
}

// RecordCompletion implements ProgressService. The transition itself is a pure
// function on the record; this method only wraps it in load/save.
func (s *progressService) RecordCompletion(ctx context.Context, correctCount int, completionDate string) (int, error) {
	record, err := s.store.Load(ctx)
	if err != nil {
		return 0, domain.NewInternalError("failed to load progress record", err)
	}

	insights := record.RecordCompletion(correctCount, completionDate)

	if err := s.store.Save(ctx, record); err != nil {
		return 0, domain.NewInternalError("failed to save progress record", err)
	}

	logger.Get().Info("Recorded session completion",
		zap.String("date", completionDate),
		zap.Int("correct_count", correctCount),
		zap.Int("insights", insights),
		zap.Int("streak", record.CurrentStreak))

	return insights, nil
}

// GetProgress implements ProgressService
func (s *progressService) GetProgress(ctx context.Context) (*dto.ProgressResponse, error) {
	record, err := s.store.Load(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to load progress record", err)
	}

	return &dto.ProgressResponse{
		CurrentStreak:   record.CurrentStreak,
		HighestInsights: record.HighestInsights,
		History:         record.History,
		LastQuizDate:    record.LastQuizDate,
	}, nil
}
