package service

import (
	"context"

	"daily-quiz/internal/domain"
	"daily-quiz/internal/dto"
	"daily-quiz/internal/logger"
	"daily-quiz/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// SessionService defines the interface for quiz session operations
type SessionService interface {
	StartSession(ctx context.Context, date string) (*dto.SessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	Submit(ctx context.Context, sessionID string, req *dto.SubmitRequest) (*dto.SubmitResponse, error)
	Advance(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	RevealHint(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
}

// sessionService implements SessionService
type sessionService struct {
	source   domain.QuestionSource
	sessions SessionStore
	progress ProgressService
	fetch    singleflight.Group
}

// NewSessionService creates a new instance of sessionService
func NewSessionService(source domain.QuestionSource, sessions SessionStore, progress ProgressService) SessionService {
	return &sessionService{
		source:   source,
		sessions: sessions,
		progress: progress,
	}
}

// StartSession fetches the day's questions and opens a new session positioned
// at the first one. Concurrent starts for the same date share one fetch.
// A failed or empty fetch degrades to a NO_QUESTIONS error; there is no retry.
func (s *sessionService) StartSession(ctx context.Context, date string) (*dto.SessionResponse, error) {
	result, err, _ := s.fetch.Do(date, func() (interface{}, error) {
		return s.source.QuestionsForDate(ctx, date)
	})
	if err != nil {
		logger.Get().Error("SessionService: failed to fetch questions",
			zap.String("date", date),
			zap.Error(err))
		return nil, domain.NewNoQuestionsError(date)
	}

	questions := result.([]domain.Question)
	if len(questions) == 0 {
		logger.Get().Info("SessionService: no questions available",
			zap.String("date", date))
		return nil, domain.NewNoQuestionsError(date)
	}

	session := domain.NewSession(util.NewULID(), date, questions)
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	logger.Get().Info("SessionService: session started",
		zap.String("sessionID", session.ID),
		zap.String("date", date),
		zap.Int("questions", len(questions)))

	return toSessionResponse(session), nil
}

// GetSession implements SessionService
func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// Submit evaluates the pending answer for the session's current question.
// Submitting the final question finalizes the correct count and records the
// completion against the persisted progress counters.
func (s *sessionService) Submit(ctx context.Context, sessionID string, req *dto.SubmitRequest) (*dto.SubmitResponse, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	question := session.CurrentQuestion()
	if question == nil {
		return nil, domain.NewSessionCompleteError()
	}

	answer, err := answerForKind(question.Kind, req)
	if err != nil {
		return nil, err
	}

	correct, completed, err := session.Submit(answer)
	if err != nil {
		return nil, err
	}

	var insights int
	if completed {
		insights, err = s.progress.RecordCompletion(ctx, session.CorrectCount, session.Date)
		if err != nil {
			// The submission itself succeeded; surface the counter failure.
			return nil, err
		}
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	return &dto.SubmitResponse{
		Correct:        correct,
		ExpectedAnswer: question.Expected,
		Explanation:    question.Explanation,
		CorrectCount:   session.CorrectCount,
		Completed:      completed,
		InsightsEarned: insights,
	}, nil
}

// Advance implements SessionService
func (s *sessionService) Advance(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.Advance(); err != nil {
		return nil, err
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	return toSessionResponse(session), nil
}

// RevealHint implements SessionService
func (s *sessionService) RevealHint(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.RevealHint(); err != nil {
		return nil, err
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	return toSessionResponse(session), nil
}

// answerForKind maps the request payload to a domain answer, enforcing that
// multi-choice questions receive a selection set and all other kinds a single
// value.
func answerForKind(kind domain.QuestionKind, req *dto.SubmitRequest) (domain.Answer, error) {
	if kind == domain.MultiChoice {
		if len(req.Answers) == 0 {
			return domain.Answer{}, domain.NewInvalidInputError("multi-choice question requires a selection set")
		}
		return domain.Answer{Values: req.Answers}, nil
	}
	if req.Answer == "" {
		return domain.Answer{}, domain.NewInvalidInputError("answer is required")
	}
	return domain.Answer{Value: req.Answer}, nil
}

// toSessionResponse builds the read-only view of a session. Hints appear only
// after being revealed; expected answers never appear here.
func toSessionResponse(session *domain.Session) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		SessionID:      session.ID,
		Date:           session.Date,
		QuestionNumber: session.CurrentIndex + 1,
		TotalQuestions: len(session.Questions),
		Submitted:      session.State.Submitted(),
		Correct:        session.State == domain.SubmittedCorrect,
		CorrectCount:   session.CorrectCount,
		Completed:      session.IsLastQuestion() && session.State.Submitted(),
	}

	if q := session.CurrentQuestion(); q != nil {
		view := &dto.QuestionView{
			ID:      q.ID,
			Context: q.Context,
			Prompt:  q.Prompt,
			Kind:    string(q.Kind),
			Options: q.Options,
			HasHint: q.Hint != "",
		}
		if session.HintRevealed {
			view.Hint = q.Hint
		}
		resp.Question = view
	}

	return resp
}
