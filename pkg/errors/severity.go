// Package errors provides severity-aware error types for validation and
// intake failures.
package errors

import "fmt"

// Severity indicates how a rule failure affects step progression.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Blocking reports whether a failure at this severity refuses progression.
// Warnings are surfaced but never block.
func (s Severity) Blocking() bool {
	return s >= SeverityError
}

// RuleError is a structured validation or extraction failure.
type RuleError struct {
	Code     string   `json:"code"`
	Field    string   `json:"field,omitempty"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

func (e *RuleError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s: %s (field: %s)", e.Severity, e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Code, e.Message)
}

// Error codes
const (
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeOutOfRange       = "OUT_OF_RANGE"
	ErrCodeBadFormat        = "BAD_FORMAT"
	ErrCodeTermsNotAccepted = "TERMS_NOT_ACCEPTED"
	ErrCodeEmptySelection   = "EMPTY_SELECTION"
)

// NewMissingField creates a blocking error for an unanswered required field.
func NewMissingField(field, message string) *RuleError {
	return &RuleError{
		Code:     ErrCodeMissingField,
		Field:    field,
		Message:  message,
		Severity: SeverityError,
	}
}

// NewOutOfRange creates a blocking error for a numeric answer outside its
// allowed interval.
func NewOutOfRange(field, message string) *RuleError {
	return &RuleError{
		Code:     ErrCodeOutOfRange,
		Field:    field,
		Message:  message,
		Severity: SeverityError,
	}
}

// NewBadFormat creates an error for a malformed answer (email, phone).
func NewBadFormat(field, message string, sev Severity) *RuleError {
	return &RuleError{
		Code:     ErrCodeBadFormat,
		Field:    field,
		Message:  message,
		Severity: sev,
	}
}
