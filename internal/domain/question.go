package domain

import (
	"strings"
)

// QuestionKind determines how a question is presented and how answers are compared.
type QuestionKind string

const (
	SingleChoice QuestionKind = "single-choice"
	MultiChoice  QuestionKind = "multi-choice"
	FreeText     QuestionKind = "free-text"
)

// IsValid reports whether the kind is one of the known question kinds.
func (k QuestionKind) IsValid() bool {
	switch k {
	case SingleChoice, MultiChoice, FreeText:
		return true
	}
	return false
}

// Question represents a single quiz question for one day.
// Expected holds one entry for single-choice and free-text questions and the
// full expected set for multi-choice questions.
type Question struct {
	ID          string
	Context     string
	Prompt      string
	Kind        QuestionKind
	Options     []string
	Expected    []string
	Hint        string
	Explanation string
}

// Answer represents a user's pending input for one question.
// Value is used for single-choice and free-text questions, Values for multi-choice.
type Answer struct {
	Value  string
	Values []string
}

// normalize applies the comparison rules shared by all question kinds:
// surrounding whitespace is ignored and comparison is case-insensitive.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Validate checks the structural invariants of a question.
func (q *Question) Validate() error {
	if q.Prompt == "" {
		return NewInvalidInputError("question prompt is required")
	}
	if !q.Kind.IsValid() {
		return NewInvalidInputError("unknown question kind: " + string(q.Kind))
	}
	if len(q.Expected) == 0 {
		return NewInvalidInputError("expected answer is required")
	}
	if q.Kind == SingleChoice || q.Kind == FreeText {
		if len(q.Expected) != 1 {
			return NewInvalidInputError("single-answer question must have exactly one expected answer")
		}
	}
	if q.Kind == SingleChoice || q.Kind == MultiChoice {
		if len(q.Options) == 0 {
			return NewInvalidInputError("choice question requires options")
		}
		// Every expected answer must appear among the options, case-insensitively.
		options := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			options[normalize(opt)] = true
		}
		for _, exp := range q.Expected {
			if !options[normalize(exp)] {
				return NewInvalidInputError("expected answer is not among the options: " + exp)
			}
		}
	}
	return nil
}

// Evaluate reports whether the given answer is correct for this question.
//
// Single-choice and free-text questions use trimmed, case-insensitive string
// equality. Multi-choice questions require the selected set and the expected
// set to have equal size with every expected element present in the selection,
// which under the size precondition is a set-equality test. There is no
// partial credit.
func (q *Question) Evaluate(a Answer) bool {
	switch q.Kind {
	case MultiChoice:
		if len(a.Values) != len(q.Expected) {
			return false
		}
		selected := make(map[string]bool, len(a.Values))
		for _, v := range a.Values {
			selected[normalize(v)] = true
		}
		for _, exp := range q.Expected {
			if !selected[normalize(exp)] {
				return false
			}
		}
		return true
	case SingleChoice, FreeText:
		return normalize(a.Value) == normalize(q.Expected[0])
	default:
		return false
	}
}
