package service

import (
	"context"
	"errors"
	"testing"

	"daily-quiz/internal/domain"
	"daily-quiz/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []domain.Question {
	return []domain.Question{
		{ID: "q01", Prompt: "first", Kind: domain.FreeText, Expected: []string{"one"}, Explanation: "e1", Hint: "h1"},
		{ID: "q02", Prompt: "second", Kind: domain.MultiChoice, Options: []string{"a", "b", "c"}, Expected: []string{"a", "b"}, Explanation: "e2"},
	}
}

func TestSessionService_StartSession(t *testing.T) {
	ctx := context.Background()
	date := "2024-05-01"

	t.Run("Success", func(t *testing.T) {
		source := &MockQuestionSource{}
		store := &MockSessionStore{}
		progress := &MockProgressService{}
		svc := NewSessionService(source, store, progress)

		source.On("QuestionsForDate", ctx, date).Return(sampleQuestions(), nil)
		store.On("SaveSession", ctx, mock.AnythingOfType("*domain.Session")).Return(nil)

		resp, err := svc.StartSession(ctx, date)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.SessionID)
		assert.Equal(t, date, resp.Date)
		assert.Equal(t, 1, resp.QuestionNumber)
		assert.Equal(t, 2, resp.TotalQuestions)
		assert.False(t, resp.Submitted)
		require.NotNil(t, resp.Question)
		assert.Equal(t, "q01", resp.Question.ID)
		assert.True(t, resp.Question.HasHint)
		// Hint stays hidden until revealed.
		assert.Empty(t, resp.Question.Hint)
		source.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("NoQuestionsForDate", func(t *testing.T) {
		source := &MockQuestionSource{}
		store := &MockSessionStore{}
		progress := &MockProgressService{}
		svc := NewSessionService(source, store, progress)

		source.On("QuestionsForDate", ctx, date).Return([]domain.Question{}, nil)

		_, err := svc.StartSession(ctx, date)
		require.Error(t, err)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeNoQuestions, domainErr.Code)
		store.AssertNotCalled(t, "SaveSession", mock.Anything, mock.Anything)
	})

	t.Run("FetchFailureDegradesToNoQuestions", func(t *testing.T) {
		source := &MockQuestionSource{}
		store := &MockSessionStore{}
		progress := &MockProgressService{}
		svc := NewSessionService(source, store, progress)

		source.On("QuestionsForDate", ctx, date).Return(nil, errors.New("connection refused"))

		_, err := svc.StartSession(ctx, date)
		require.Error(t, err)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeNoQuestions, domainErr.Code)
	})
}

func TestSessionService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("CorrectAnswer", func(t *testing.T) {
		source := &MockQuestionSource{}
		store := &MockSessionStore{}
		progress := &MockProgressService{}
		svc := NewSessionService(source, store, progress)

		session := domain.NewSession("sess1", "2024-05-01", sampleQuestions())
		store.On("GetSession", ctx, "sess1").Return(session, nil)
		store.On("SaveSession", ctx, session).Return(nil)

		resp, err := svc.Submit(ctx, "sess1", &dto.SubmitRequest{Answer: " One "})
		require.NoError(t, err)
		assert.True(t, resp.Correct)
		assert.False(t, resp.Completed)
		assert.Equal(t, 1, resp.CorrectCount)
		assert.Equal(t, "e1", resp.Explanation)
		assert.Equal(t, []string{"one"}, resp.ExpectedAnswer)
		// Progress is only touched by the final submission.
		progress.AssertNotCalled(t, "RecordCompletion", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("FinalSubmissionRecordsCompletion", func(t *testing.T) {
		source := &MockQuestionSource{}
		store := &MockSessionStore{}
		progress := &MockProgressService{}
		svc := NewSessionService(source, store, progress)

		session := domain.NewSession("sess1", "2024-05-01", sampleQuestions())
		_, _, err := session.Submit(domain.Answer{Value: "one"})
		require.NoError(t, err)
		require.NoError(t, session.Advance())

		store.On("GetSession", ctx, "sess1").Return(session, nil)
		store.On("SaveSession", ctx, session).Return(nil)
		progress.On("RecordCompletion", ctx, 2, "2024-05-01").Return(20, nil)

		resp, err := svc.Submit(ctx, "sess1", &dto.SubmitRequest{Answers: []string{"b", "a"}})
		require.NoError(t, err)
		assert.True(t, resp.Correct)
		assert.True(t, resp.Completed)
		assert.Equal(t, 2, resp.CorrectCount)
		assert.Equal(t, 20, resp.InsightsEarned)
		progress.AssertExpectations(t)
	})

	t.Run("MultiChoiceRequiresSelectionSet", func(t *testing.T) {
		source := &MockQuestionSource{}
		store := &MockSessionStore{}
		progress := &MockProgressService{}
		svc := NewSessionService(source, store, progress)

		session := domain.NewSession("sess1", "2024-05-01", sampleQuestions())
		_, _, err := session.Submit(domain.Answer{Value: "one"})
		require.NoError(t, err)
		require.NoError(t, session.Advance())

		store.On("GetSession", ctx, "sess1").Return(session, nil)

		_, err = svc.Submit(ctx, "sess1", &dto.SubmitRequest{Answer: "a"})
		require.Error(t, err)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
	})

	t.Run("ResubmissionRejected", func(t *testing.T) {
		source := &MockQuestionSource{}
		store := &MockSessionStore{}
		progress := &MockProgressService{}
		svc := NewSessionService(source, store, progress)

		session := domain.NewSession("sess1", "2024-05-01", sampleQuestions())
		_, _, err := session.Submit(domain.Answer{Value: "wrong"})
		require.NoError(t, err)

		store.On("GetSession", ctx, "sess1").Return(session, nil)

		_, err = svc.Submit(ctx, "sess1", &dto.SubmitRequest{Answer: "one"})
		require.Error(t, err)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeAlreadySubmitted, domainErr.Code)
	})

	t.Run("SessionNotFound", func(t *testing.T) {
		source := &MockQuestionSource{}
		store := &MockSessionStore{}
		progress := &MockProgressService{}
		svc := NewSessionService(source, store, progress)

		store.On("GetSession", ctx, "missing").Return(nil, domain.NewSessionNotFoundError("missing"))

		_, err := svc.Submit(ctx, "missing", &dto.SubmitRequest{Answer: "one"})
		require.Error(t, err)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeSessionNotFound, domainErr.Code)
	})
}

func TestSessionService_Advance(t *testing.T) {
	ctx := context.Background()

	t.Run("MovesToNextQuestion", func(t *testing.T) {
		source := &MockQuestionSource{}
		store := &MockSessionStore{}
		progress := &MockProgressService{}
		svc := NewSessionService(source, store, progress)

		session := domain.NewSession("sess1", "2024-05-01", sampleQuestions())
		_, _, err := session.Submit(domain.Answer{Value: "one"})
		require.NoError(t, err)

		store.On("GetSession", ctx, "sess1").Return(session, nil)
		store.On("SaveSession", ctx, session).Return(nil)

		resp, err := svc.Advance(ctx, "sess1")
		require.NoError(t, err)
		assert.Equal(t, 2, resp.QuestionNumber)
		assert.False(t, resp.Submitted)
		require.NotNil(t, resp.Question)
		assert.Equal(t, "q02", resp.Question.ID)
	})

	t.Run("WithoutSubmission", func(t *testing.T) {
		source := &MockQuestionSource{}
		store := &MockSessionStore{}
		progress := &MockProgressService{}
		svc := NewSessionService(source, store, progress)

		session := domain.NewSession("sess1", "2024-05-01", sampleQuestions())
		store.On("GetSession", ctx, "sess1").Return(session, nil)

		_, err := svc.Advance(ctx, "sess1")
		require.Error(t, err)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeNotSubmitted, domainErr.Code)
	})
}

func TestSessionService_RevealHint(t *testing.T) {
	ctx := context.Background()

	source := &MockQuestionSource{}
	store := &MockSessionStore{}
	progress := &MockProgressService{}
	svc := NewSessionService(source, store, progress)

	session := domain.NewSession("sess1", "2024-05-01", sampleQuestions())
	store.On("GetSession", ctx, "sess1").Return(session, nil)
	store.On("SaveSession", ctx, session).Return(nil)

	resp, err := svc.RevealHint(ctx, "sess1")
	require.NoError(t, err)
	require.NotNil(t, resp.Question)
	assert.Equal(t, "h1", resp.Question.Hint)
}
