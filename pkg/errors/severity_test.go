package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityBlocking(t *testing.T) {
	assert.False(t, SeverityInfo.Blocking())
	assert.False(t, SeverityWarning.Blocking())
	assert.True(t, SeverityError.Blocking())
}

func TestConstructors(t *testing.T) {
	missing := NewMissingField("city", "Indiquez la commune.")
	assert.Equal(t, ErrCodeMissingField, missing.Code)
	assert.True(t, missing.Severity.Blocking())

	rangeErr := NewOutOfRange("surface", "Surface hors limites.")
	assert.Equal(t, ErrCodeOutOfRange, rangeErr.Code)
	assert.True(t, rangeErr.Severity.Blocking())

	phone := NewBadFormat("phone", "Numéro douteux.", SeverityWarning)
	assert.Equal(t, ErrCodeBadFormat, phone.Code)
	assert.False(t, phone.Severity.Blocking(), "format doubts can stay non-blocking")
}

func TestRuleErrorString(t *testing.T) {
	e := NewMissingField("email", "Indiquez votre adresse email.")
	assert.Contains(t, e.Error(), "MISSING_FIELD")
	assert.Contains(t, e.Error(), "email")

	bare := &RuleError{Code: ErrCodeBadFormat, Message: "m", Severity: SeverityInfo}
	assert.NotContains(t, bare.Error(), "field:")
}
