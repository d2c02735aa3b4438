package validation

import (
	"regexp"
	"strings"

	"daily-quiz/internal/domain"
	"daily-quiz/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSessionID validates a session identifier path parameter
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(sessionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
	} else if !isValidULID(sessionID) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", sessionID))
	}

	return errors
}

// ValidateDate validates an optional ISO calendar date parameter
func (v *Validator) ValidateDate(date string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if date != "" && !isValidISODate(date) {
		errors = append(errors, domain.NewInvalidFormatError("date", date))
	}

	return errors
}

// ValidateSubmitRequest validates the submit payload. Exactly one of answer
// and answers must be present; which one fits the question kind is checked by
// the service.
func (v *Validator) ValidateSubmitRequest(req *dto.SubmitRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	hasSingle := strings.TrimSpace(req.Answer) != ""
	hasMulti := len(req.Answers) > 0

	if !hasSingle && !hasMulti {
		errors = append(errors, domain.NewMissingFieldError("answer"))
		return errors
	}
	if hasSingle && hasMulti {
		errors = append(errors, domain.NewInvalidFormatError("answer", "provide either answer or answers, not both"))
	}

	if len(req.Answer) > 2000 {
		errors = append(errors, domain.NewOutOfRangeError("answer", len(req.Answer), 1, 2000))
	}
	for _, a := range req.Answers {
		if len(a) > 2000 {
			errors = append(errors, domain.NewOutOfRangeError("answers", len(a), 1, 2000))
			break
		}
	}

	return errors
}

// Helper functions for validation

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	// Check if all characters are valid base32 (Crockford's Base32)
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

// isValidISODate checks if the string is a YYYY-MM-DD calendar date
func isValidISODate(s string) bool {
	validDate := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	return validDate.MatchString(s)
}
