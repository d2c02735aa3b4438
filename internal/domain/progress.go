package domain

import (
	"time"
)

// InsightsPerCorrect is the scalar score awarded per correct answer.
const InsightsPerCorrect = 10

// DateLayout is the ISO calendar day format used throughout the service.
const DateLayout = "2006-01-02"

// ProgressRecord holds the persisted per-user counters: a day-indexed insight
// history, the running maximum, the consecutive-day streak, and the day the
// last session was completed.
type ProgressRecord struct {
	History         map[string]int
	HighestInsights int
	CurrentStreak   int
	LastQuizDate    string
}

// NewProgressRecord returns an empty record.
func NewProgressRecord() *ProgressRecord {
	return &ProgressRecord{History: make(map[string]int)}
}

// RecordCompletion applies one completed session to the record and returns the
// insights earned. Re-running a session on the same day overwrites that day's
// history entry rather than accumulating. HighestInsights only ever increases.
// The streak increments only when the previous completion was exactly the day
// before; a same-day re-run leaves it unchanged; any gap resets it to 1.
func (r *ProgressRecord) RecordCompletion(correctCount int, completionDate string) int {
	insights := correctCount * InsightsPerCorrect

	if r.History == nil {
		r.History = make(map[string]int)
	}
	r.History[completionDate] = insights

	if insights > r.HighestInsights {
		r.HighestInsights = insights
	}

	switch {
	case r.LastQuizDate != "" && r.LastQuizDate == previousDay(completionDate):
		r.CurrentStreak++
	case r.LastQuizDate == completionDate:
		// Same-day re-run, streak unchanged.
	default:
		r.CurrentStreak = 1
	}

	r.LastQuizDate = completionDate
	return insights
}

// previousDay returns the ISO day string one calendar day before date.
// An unparseable date yields an empty string, which never matches a stored
// LastQuizDate and therefore falls through to a streak reset.
func previousDay(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(DateLayout)
}
