package repository

import (
	"context"
	"encoding/json"
	"sort"

	"daily-quiz/internal/cache"
	"daily-quiz/internal/domain"
	"daily-quiz/internal/logger"
	"daily-quiz/internal/repository/models"

	"go.uber.org/zap"
)

// redisQuestionSource implements domain.QuestionSource over the cache port.
// Each day's questions live in one hash keyed by ISO date; every hash field
// holds one question document as JSON.
type redisQuestionSource struct {
	cache domain.Cache
}

// NewRedisQuestionSource creates a new instance of redisQuestionSource.
func NewRedisQuestionSource(c domain.Cache) domain.QuestionSource {
	return &redisQuestionSource{cache: c}
}

// QuestionsForDate fetches and flattens the question documents for a date.
// The hash is an unordered field->document mapping, so fields are sorted
// lexicographically before flattening; seeded field keys use zero-padded
// ordinals (q01, q02, ...) which makes that sort the presentation order.
// A date with no data yields an empty slice, not an error.
func (s *redisQuestionSource) QuestionsForDate(ctx context.Context, date string) ([]domain.Question, error) {
	key := cache.QuestionsKey(date)
	docs, err := s.cache.HGetAll(ctx, key)
	if err != nil {
		if err == domain.ErrCacheMiss {
			return nil, nil
		}
		return nil, domain.NewInternalError("failed to fetch questions for date "+date, err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	questions := make([]domain.Question, 0, len(ids))
	for _, id := range ids {
		var doc models.QuestionDocument
		if err := json.Unmarshal([]byte(docs[id]), &doc); err != nil {
			logger.Get().Warn("Skipping malformed question document",
				zap.String("date", date),
				zap.String("id", id),
				zap.Error(err))
			continue
		}
		q, err := doc.ToDomain(id)
		if err != nil {
			logger.Get().Warn("Skipping invalid question document",
				zap.String("date", date),
				zap.String("id", id),
				zap.Error(err))
			continue
		}
		questions = append(questions, *q)
	}

	return questions, nil
}
