package flow

import (
	"regexp"
	"strings"

	builderr "bati-cost/pkg/errors"

	"bati-cost/decision/record"
)

// Rule is one per-step answer check. Failed reports a violation; warning
// severity is surfaced but does not block progression.
type Rule struct {
	Code     string
	Field    string
	Message  string
	Severity builderr.Severity
	Failed   func(r *record.AnswerRecord) bool
}

// ValidationResult aggregates every violated rule of a step, not just the
// first, so the caller can display a combined message.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

// ValidateStep checks the step at the given position in the visible list.
// An out-of-range index validates trivially. The record is never mutated.
func ValidateStep(index int, r *record.AnswerRecord) ValidationResult {
	steps := ResolveVisibleSteps(r)
	if index < 0 || index >= len(steps) {
		return ValidationResult{IsValid: true, Errors: []string{}}
	}
	return validateStep(steps[index], r)
}

func validateStep(step Step, r *record.AnswerRecord) ValidationResult {
	res := ValidationResult{IsValid: true, Errors: []string{}}
	for _, rule := range step.Rules {
		if !rule.Failed(r) {
			continue
		}
		e := builderr.RuleError{
			Code:     rule.Code,
			Field:    rule.Field,
			Message:  rule.Message,
			Severity: rule.Severity,
		}
		if e.Severity.Blocking() {
			res.IsValid = false
			res.Errors = append(res.Errors, e.Message)
		} else {
			res.Warnings = append(res.Warnings, e.Message)
		}
	}
	return res
}

var (
	emailRe = regexp.MustCompile(`^[\w.+-]+@[\w-]+(?:\.[\w-]+)+$`)
	phoneRe = regexp.MustCompile(`^(?:\+33\s?|0)[1-9](?:[\s.-]?\d{2}){4}$`)
)

// ruleFrom binds a structured error to its failure predicate.
func ruleFrom(e *builderr.RuleError, failed func(r *record.AnswerRecord) bool) Rule {
	return Rule{
		Code:     e.Code,
		Field:    e.Field,
		Message:  e.Message,
		Severity: e.Severity,
		Failed:   failed,
	}
}

// requireString builds a blocking rule for an unanswered text field.
func requireString(field, message string, get func(r *record.AnswerRecord) *string) Rule {
	return ruleFrom(builderr.NewMissingField(field, message),
		func(r *record.AnswerRecord) bool {
			v := get(r)
			return v == nil || strings.TrimSpace(*v) == ""
		})
}

// requireNumberIn builds a blocking rule for a numeric field that must be
// present and inside [lo, hi].
func requireNumberIn(field, message string, lo, hi float64, get func(r *record.AnswerRecord) *record.Number) Rule {
	return ruleFrom(builderr.NewOutOfRange(field, message),
		func(r *record.AnswerRecord) bool {
			v := get(r)
			if v == nil {
				return true
			}
			f := v.Float64()
			return f < lo || f > hi
		})
}
