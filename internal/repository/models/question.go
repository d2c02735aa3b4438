package models

import (
	"encoding/json"
	"fmt"

	"daily-quiz/internal/domain"
)

// QuestionDocument is the wire shape of one question record in the document
// store. Field names follow the legacy documents: "type" carries the short
// kind names and "solution" carries the explanation text.
type QuestionDocument struct {
	Context  string       `json:"context,omitempty"`
	Question string       `json:"question"`
	Type     string       `json:"type"`
	Options  []string     `json:"options,omitempty"`
	Answer   AnswerValues `json:"answer"`
	Hint     string       `json:"hint,omitempty"`
	Solution string       `json:"solution"`
}

// AnswerValues accepts either a single JSON string or an array of strings,
// which is how the legacy documents encode single- and multi-answer questions.
type AnswerValues []string

// UnmarshalJSON implements json.Unmarshaler.
func (a *AnswerValues) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = AnswerValues{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("answer must be a string or an array of strings: %w", err)
	}
	*a = AnswerValues(many)
	return nil
}

// MarshalJSON implements json.Marshaler. Single-answer values round-trip back
// to a plain string to keep stored documents in the legacy shape.
func (a AnswerValues) MarshalJSON() ([]byte, error) {
	if len(a) == 1 {
		return json.Marshal(a[0])
	}
	return json.Marshal([]string(a))
}

// Legacy kind names used in the document store.
const (
	TypeMCQ   = "mcq"
	TypeText  = "text"
	TypeMulti = "multi"
)

// KindFromType maps a document type string to the domain question kind.
func KindFromType(t string) (domain.QuestionKind, error) {
	switch t {
	case TypeMCQ:
		return domain.SingleChoice, nil
	case TypeText:
		return domain.FreeText, nil
	case TypeMulti:
		return domain.MultiChoice, nil
	default:
		return "", fmt.Errorf("unknown question type: %q", t)
	}
}

// ToDomain converts the document to a validated domain question, using the
// document's field key within the date hash as the question ID.
func (d *QuestionDocument) ToDomain(id string) (*domain.Question, error) {
	kind, err := KindFromType(d.Type)
	if err != nil {
		return nil, err
	}
	q := &domain.Question{
		ID:          id,
		Context:     d.Context,
		Prompt:      d.Question,
		Kind:        kind,
		Options:     d.Options,
		Expected:    []string(d.Answer),
		Hint:        d.Hint,
		Explanation: d.Solution,
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}
