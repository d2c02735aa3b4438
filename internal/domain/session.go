package domain

// SubmissionState is the tagged per-question state. Modeling submitted and
// correct as one value rules out combinations like "correct but not submitted".
type SubmissionState string

const (
	Unanswered         SubmissionState = "unanswered"
	SubmittedCorrect   SubmissionState = "submitted_correct"
	SubmittedIncorrect SubmissionState = "submitted_incorrect"
)

// Submitted reports whether the state represents a submitted answer.
func (s SubmissionState) Submitted() bool {
	return s == SubmittedCorrect || s == SubmittedIncorrect
}

// Session is one run through a day's ordered question sequence. The question
// list is fixed once the session is created; only the cursor and the
// per-question state advance.
type Session struct {
	ID           string     `json:"id"`
	Date         string     `json:"date"`
	Questions    []Question `json:"questions"`
	CurrentIndex int        `json:"current_index"`
	State        SubmissionState `json:"state"`
	Pending      Answer     `json:"pending"`
	HintRevealed bool       `json:"hint_revealed"`
	CorrectCount int        `json:"correct_count"`
}

// NewSession creates a session positioned at the first question.
func NewSession(id, date string, questions []Question) *Session {
	return &Session{
		ID:        id,
		Date:      date,
		Questions: questions,
		State:     Unanswered,
	}
}

// CurrentQuestion returns the question at the cursor, or nil when the session
// holds no questions.
func (s *Session) CurrentQuestion() *Question {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// IsLastQuestion reports whether the cursor is at the final question.
func (s *Session) IsLastQuestion() bool {
	return len(s.Questions) > 0 && s.CurrentIndex == len(s.Questions)-1
}

// Submit evaluates the answer against the current question and records the
// result. It returns the correctness and whether this submission completed the
// session (i.e. it was the last question). Once submitted, the question is
// immutable until Advance is called.
func (s *Session) Submit(a Answer) (correct bool, completed bool, err error) {
	q := s.CurrentQuestion()
	if q == nil {
		return false, false, NewSessionCompleteError()
	}
	if s.State.Submitted() {
		return false, false, NewAlreadySubmittedError()
	}

	correct = q.Evaluate(a)
	s.Pending = a
	if correct {
		s.State = SubmittedCorrect
		s.CorrectCount++
	} else {
		s.State = SubmittedIncorrect
	}

	return correct, s.IsLastQuestion(), nil
}

// Advance moves the cursor to the next question and clears the per-question
// state. It is only valid after a submission and never past the last question.
func (s *Session) Advance() error {
	if !s.State.Submitted() {
		return NewNotSubmittedError()
	}
	if s.IsLastQuestion() {
		return NewSessionCompleteError()
	}
	s.CurrentIndex++
	s.State = Unanswered
	s.Pending = Answer{}
	s.HintRevealed = false
	return nil
}

// RevealHint marks the current question's hint as visible.
func (s *Session) RevealHint() error {
	q := s.CurrentQuestion()
	if q == nil {
		return NewSessionCompleteError()
	}
	s.HintRevealed = true
	return nil
}
