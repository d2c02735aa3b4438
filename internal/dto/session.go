package dto

// QuestionView is the read-only presentation model for the current question.
// The expected answer never appears here; it is only revealed in the
// SubmitResponse after a submission.
type QuestionView struct {
	ID       string   `json:"id"`
	Context  string   `json:"context,omitempty"`
	Prompt   string   `json:"prompt"`
	Kind     string   `json:"kind"`
	Options  []string `json:"options,omitempty"`
	HasHint  bool     `json:"has_hint"`
	Hint     string   `json:"hint,omitempty"`
}

// SessionResponse represents the session state consumed by the view layer
type SessionResponse struct {
	SessionID      string        `json:"session_id"`
	Date           string        `json:"date"`
	QuestionNumber int           `json:"question_number"`
	TotalQuestions int           `json:"total_questions"`
	Question       *QuestionView `json:"question,omitempty"`
	Submitted      bool          `json:"submitted"`
	Correct        bool          `json:"correct"`
	CorrectCount   int           `json:"correct_count"`
	Completed      bool          `json:"completed"`
}

// SubmitRequest carries the user's answer for the current question.
// Answer is used for single-choice and free-text questions, Answers for
// multi-choice; exactly one of the two must be set.
type SubmitRequest struct {
	Answer  string   `json:"answer,omitempty"`
	Answers []string `json:"answers,omitempty"`
}

// SubmitResponse represents the evaluation result in the API response
type SubmitResponse struct {
	Correct        bool     `json:"correct"`
	ExpectedAnswer []string `json:"expected_answer"`
	Explanation    string   `json:"explanation"`
	CorrectCount   int      `json:"correct_count"`
	Completed      bool     `json:"completed"`
	InsightsEarned int      `json:"insights_earned,omitempty"`
}

// ProgressResponse represents the persisted progress counters for display
type ProgressResponse struct {
	CurrentStreak   int            `json:"current_streak"`
	HighestInsights int            `json:"highest_insights"`
	History         map[string]int `json:"history"`
	LastQuizDate    string         `json:"last_quiz_date,omitempty"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
