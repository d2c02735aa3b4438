package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressRecord_RecordCompletion_Insights(t *testing.T) {
	r := NewProgressRecord()

	// 3 questions, 2 answered correctly.
	insights := r.RecordCompletion(2, "2024-05-01")

	assert.Equal(t, 20, insights)
	assert.Equal(t, 20, r.History["2024-05-01"])
	assert.Equal(t, 20, r.HighestInsights)
	assert.Equal(t, 1, r.CurrentStreak)
	assert.Equal(t, "2024-05-01", r.LastQuizDate)
}

func TestProgressRecord_RecordCompletion_StreakIncrement(t *testing.T) {
	r := &ProgressRecord{
		History:       map[string]int{"2024-05-01": 30},
		CurrentStreak: 3,
		LastQuizDate:  "2024-05-01",
	}

	r.RecordCompletion(1, "2024-05-02")

	assert.Equal(t, 4, r.CurrentStreak)
	assert.Equal(t, "2024-05-02", r.LastQuizDate)
}

func TestProgressRecord_RecordCompletion_StreakReset(t *testing.T) {
	r := &ProgressRecord{
		History:       map[string]int{"2024-05-01": 30},
		CurrentStreak: 3,
		LastQuizDate:  "2024-05-01",
	}

	// Gap of more than one day resets the streak.
	r.RecordCompletion(2, "2024-05-05")

	assert.Equal(t, 1, r.CurrentStreak)
	assert.Equal(t, "2024-05-05", r.LastQuizDate)
}

func TestProgressRecord_RecordCompletion_SameDayIdempotent(t *testing.T) {
	r := &ProgressRecord{
		History:         map[string]int{"2024-04-30": 10},
		HighestInsights: 10,
		CurrentStreak:   1,
		LastQuizDate:    "2024-04-30",
	}

	r.RecordCompletion(3, "2024-05-01")
	first := *r

	// Re-running the same session on the same day changes nothing.
	r.RecordCompletion(3, "2024-05-01")

	assert.Equal(t, first.History["2024-05-01"], r.History["2024-05-01"])
	assert.Equal(t, first.HighestInsights, r.HighestInsights)
	assert.Equal(t, first.CurrentStreak, r.CurrentStreak)
	assert.Equal(t, first.LastQuizDate, r.LastQuizDate)
}

func TestProgressRecord_RecordCompletion_SameDayOverwrites(t *testing.T) {
	r := NewProgressRecord()

	r.RecordCompletion(3, "2024-05-01")
	assert.Equal(t, 30, r.History["2024-05-01"])

	// A worse re-run overwrites the history entry, not accumulates.
	r.RecordCompletion(1, "2024-05-01")

	assert.Equal(t, 10, r.History["2024-05-01"])
	// Highest only ever increases.
	assert.Equal(t, 30, r.HighestInsights)
	assert.Equal(t, 1, r.CurrentStreak)
}

func TestProgressRecord_RecordCompletion_ConsecutiveDays(t *testing.T) {
	r := NewProgressRecord()

	dates := []string{"2024-04-28", "2024-04-29", "2024-04-30", "2024-05-01", "2024-05-02"}
	counts := []int{0, 3, 1, 2, 0}

	for i, date := range dates {
		r.RecordCompletion(counts[i], date)
		assert.Equal(t, i+1, r.CurrentStreak, "streak after %s", date)
	}

	// Month boundary crossed without a reset.
	assert.Equal(t, 5, r.CurrentStreak)
	assert.Equal(t, 30, r.HighestInsights)
}

func TestProgressRecord_RecordCompletion_HighestMonotone(t *testing.T) {
	r := &ProgressRecord{History: map[string]int{}, HighestInsights: 50}

	r.RecordCompletion(2, "2024-05-01")

	assert.Equal(t, 50, r.HighestInsights)
	assert.Equal(t, 20, r.History["2024-05-01"])
}

func TestProgressRecord_RecordCompletion_NilHistory(t *testing.T) {
	r := &ProgressRecord{}

	r.RecordCompletion(1, "2024-05-01")

	assert.Equal(t, 10, r.History["2024-05-01"])
	assert.Equal(t, 1, r.CurrentStreak)
}
