package service

import (
	"context"
	"encoding/json"
	"time"

	"daily-quiz/internal/cache"
	"daily-quiz/internal/domain"
	"daily-quiz/internal/logger"

	"go.uber.org/zap"
)

// DefaultSessionTTL bounds how long an abandoned session stays in the cache.
// Sessions are daily, so a day is plenty.
const DefaultSessionTTL = 24 * time.Hour

// SessionStore persists session state between user actions.
type SessionStore interface {
	SaveSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
}

// cacheSessionStore implements SessionStore as JSON blobs behind the cache port.
type cacheSessionStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewCacheSessionStore creates a new instance of cacheSessionStore.
// A non-positive ttl falls back to DefaultSessionTTL.
func NewCacheSessionStore(c domain.Cache, ttl time.Duration) SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &cacheSessionStore{cache: c, ttl: ttl}
}

// SaveSession serializes the session and stores it under its ID.
func (s *cacheSessionStore) SaveSession(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return domain.NewInternalError("failed to marshal session", err)
	}

	key := cache.SessionKey(session.ID)
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("SessionStore: failed to save session",
			zap.String("sessionID", session.ID),
			zap.Error(err))
		return domain.NewInternalError("failed to save session", err)
	}
	return nil
}

// GetSession loads and deserializes a session by ID.
func (s *cacheSessionStore) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	key := cache.SessionKey(sessionID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if err == domain.ErrCacheMiss {
			return nil, domain.NewSessionNotFoundError(sessionID)
		}
		logger.Get().Error("SessionStore: failed to load session",
			zap.String("sessionID", sessionID),
			zap.Error(err))
		return nil, domain.NewInternalError("failed to load session", err)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, domain.NewInternalError("failed to unmarshal session", err)
	}
	return &session, nil
}
