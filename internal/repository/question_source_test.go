package repository

import (
	"context"
	"testing"

	"daily-quiz/internal/adapter"
	"daily-quiz/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisQuestionSource_QuestionsForDate(t *testing.T) {
	ctx := context.Background()
	date := "2024-05-01"
	key := "dailyquiz:questions:" + date

	t.Run("FlattensInFieldOrder", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		source := NewRedisQuestionSource(adapter.NewRedisCacheAdapter(db))

		// Hash iteration order is not guaranteed; field keys are sorted.
		mock.ExpectHGetAll(key).SetVal(map[string]string{
			"q02": `{"question":"Second","type":"text","answer":"two","solution":"because"}`,
			"q01": `{"question":"First","type":"mcq","options":["a","b"],"answer":"a","solution":"why"}`,
			"q03": `{"question":"Third","type":"multi","options":["x","y","z"],"answer":["x","z"],"solution":"both"}`,
		})

		questions, err := source.QuestionsForDate(ctx, date)
		require.NoError(t, err)
		require.Len(t, questions, 3)

		assert.Equal(t, "q01", questions[0].ID)
		assert.Equal(t, domain.SingleChoice, questions[0].Kind)
		assert.Equal(t, []string{"a"}, questions[0].Expected)

		assert.Equal(t, "q02", questions[1].ID)
		assert.Equal(t, domain.FreeText, questions[1].Kind)

		assert.Equal(t, "q03", questions[2].ID)
		assert.Equal(t, domain.MultiChoice, questions[2].Kind)
		assert.ElementsMatch(t, []string{"x", "z"}, questions[2].Expected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoDataForDate", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		source := NewRedisQuestionSource(adapter.NewRedisCacheAdapter(db))

		mock.ExpectHGetAll(key).SetVal(map[string]string{})

		questions, err := source.QuestionsForDate(ctx, date)
		require.NoError(t, err)
		assert.Empty(t, questions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SkipsMalformedDocuments", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		source := NewRedisQuestionSource(adapter.NewRedisCacheAdapter(db))

		mock.ExpectHGetAll(key).SetVal(map[string]string{
			"q01": `not-json`,
			"q02": `{"question":"Valid","type":"text","answer":"yes","solution":"s"}`,
			"q03": `{"question":"BadKind","type":"essay","answer":"x","solution":"s"}`,
		})

		questions, err := source.QuestionsForDate(ctx, date)
		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, "q02", questions[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
