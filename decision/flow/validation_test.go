package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bati-cost/decision/record"
)

func TestValidateStepCollectsAllErrors(t *testing.T) {
	rec := &record.AnswerRecord{}
	idx := indexOfID(t, rec, StepContact)

	res := ValidateStep(idx, rec)
	require.False(t, res.IsValid)
	// Missing name, missing email, terms not accepted.
	assert.Len(t, res.Errors, 3, "every violated rule is reported, not just the first")
}

func TestValidateStepEmailFormat(t *testing.T) {
	rec := &record.AnswerRecord{
		Name:          record.Str("Jean Dupont"),
		Email:         record.Str("pas-un-email"),
		TermsAccepted: record.Bool(true),
	}
	idx := indexOfID(t, rec, StepContact)

	res := ValidateStep(idx, rec)
	assert.False(t, res.IsValid)
	assert.Len(t, res.Errors, 1)

	rec.Email = record.Str("jean@example.fr")
	assert.True(t, ValidateStep(idx, rec).IsValid)
}

func TestValidateStepPhoneIsOnlyAWarning(t *testing.T) {
	rec := &record.AnswerRecord{
		Name:          record.Str("Jean Dupont"),
		Email:         record.Str("jean@example.fr"),
		Phone:         record.Str("123"),
		TermsAccepted: record.Bool(true),
	}
	idx := indexOfID(t, rec, StepContact)

	res := ValidateStep(idx, rec)
	assert.True(t, res.IsValid, "a doubtful phone number never blocks")
	assert.Len(t, res.Warnings, 1)

	rec.Phone = record.Str("06 12 34 56 78")
	res = ValidateStep(idx, rec)
	assert.Empty(t, res.Warnings)
}

func TestValidateStepSurfaceRange(t *testing.T) {
	rec := &record.AnswerRecord{}
	idx := indexOfID(t, rec, StepSurface)

	assert.False(t, ValidateStep(idx, rec).IsValid, "surface is required")

	rec.Surface = record.Num(5)
	assert.False(t, ValidateStep(idx, rec).IsValid, "below the 10 m² floor")

	rec.Surface = record.Num(2000)
	assert.False(t, ValidateStep(idx, rec).IsValid, "above the 1500 m² ceiling")

	rec.Surface = record.Num(120)
	assert.True(t, ValidateStep(idx, rec).IsValid)
}

func TestValidateStepBathroomCountOptionalButBounded(t *testing.T) {
	rec := &record.AnswerRecord{}
	idx := indexOfID(t, rec, StepBathroom)

	assert.True(t, ValidateStep(idx, rec).IsValid, "an unanswered count is fine")

	rec.BathroomCount = record.Num(0)
	assert.False(t, ValidateStep(idx, rec).IsValid)

	rec.BathroomCount = record.Num(11)
	assert.False(t, ValidateStep(idx, rec).IsValid)

	rec.BathroomCount = record.Num(2)
	assert.True(t, ValidateStep(idx, rec).IsValid)
}

func TestValidateStepRenovationAreasRequired(t *testing.T) {
	rec := &record.AnswerRecord{ProjectType: record.Str("Rénovation")}
	idx := indexOfID(t, rec, StepRenovationAreas)

	assert.False(t, ValidateStep(idx, rec).IsValid)

	rec.RenovationAreas = []string{"Cuisine"}
	assert.True(t, ValidateStep(idx, rec).IsValid)
}

func TestValidateStepOutOfRangeIndex(t *testing.T) {
	rec := &record.AnswerRecord{}
	assert.True(t, ValidateStep(-1, rec).IsValid)
	assert.True(t, ValidateStep(999, rec).IsValid)
}

func TestValidateStepLandFinancing(t *testing.T) {
	rec := &record.AnswerRecord{
		ProjectType:    record.Str("Construction neuve"),
		EstimationMode: record.Str("Précise"),
	}
	idx := indexOfID(t, rec, StepLand)

	assert.False(t, ValidateStep(idx, rec).IsValid, "land ownership must be answered")

	rec.OwnsLand = record.Bool(false)
	assert.False(t, ValidateStep(idx, rec).IsValid, "a land buyer needs a land budget")

	rec.LandPrice = record.Num(90000)
	assert.True(t, ValidateStep(idx, rec).IsValid)

	rec.OwnsLand = record.Bool(true)
	rec.LandPrice = nil
	assert.True(t, ValidateStep(idx, rec).IsValid, "an owner needs no land budget")
}
