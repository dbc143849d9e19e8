package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bati-cost/decision/record"
)

// completeRecord answers every blocking rule of the precise individual
// new-build path.
func completeRecord() *record.AnswerRecord {
	return &record.AnswerRecord{
		ClientType:     record.Str("Particulier"),
		ProjectType:    record.Str("Construction neuve"),
		EstimationMode: record.Str("Précise"),
		City:           record.Str("Nantes"),
		TerrainType:    record.Str("Plat"),
		OwnsLand:       record.Bool(true),
		Surface:        record.Num(120),
		WallMaterial:   record.Str("Brique"),
		RoofStructure:  record.Str("Traditionnelle"),
		Name:           record.Str("Jean Dupont"),
		Email:          record.Str("jean.dupont@example.fr"),
		TermsAccepted:  record.Bool(true),
	}
}

func TestGoNextProfessionalBranch(t *testing.T) {
	rec := &record.AnswerRecord{ClientType: record.Str("Professionnel")}

	next, res := GoNext(0, rec)
	require.True(t, res.IsValid)

	step, ok := StepAt(next, rec)
	require.True(t, ok)
	assert.Equal(t, StepProjectTypeProfessional, step.ID)
}

func TestGoNextBlockedByValidation(t *testing.T) {
	rec := &record.AnswerRecord{}

	next, res := GoNext(0, rec)
	assert.Equal(t, 0, next, "an invalid step refuses progression")
	assert.False(t, res.IsValid)
	assert.NotEmpty(t, res.Errors)
}

func TestGoNextDesignJumpsToContact(t *testing.T) {
	rec := &record.AnswerRecord{
		ClientType:  record.Str("Particulier"),
		ProjectType: record.Str("Aménagement intérieur"),
	}
	from := indexOfID(t, rec, StepProjectTypeIndividual)

	next, res := GoNext(from, rec)
	require.True(t, res.IsValid)
	step, _ := StepAt(next, rec)
	assert.Equal(t, StepContact, step.ID)

	// And back again.
	prev := GoPrevious(next, rec)
	step, _ = StepAt(prev, rec)
	assert.Equal(t, StepProjectTypeIndividual, step.ID)
}

func TestGoNextQuickModeJumpsToSurface(t *testing.T) {
	rec := &record.AnswerRecord{
		ClientType:     record.Str("Particulier"),
		ProjectType:    record.Str("Construction neuve"),
		EstimationMode: record.Str("Rapide"),
	}
	from := indexOfID(t, rec, StepEstimationMode)

	next, res := GoNext(from, rec)
	require.True(t, res.IsValid)
	step, _ := StepAt(next, rec)
	assert.Equal(t, StepSurface, step.ID)

	prev := GoPrevious(next, rec)
	step, _ = StepAt(prev, rec)
	assert.Equal(t, StepEstimationMode, step.ID)
}

// TestGoNextWalksToSummary drives a fully answered record from the first
// step to the summary and checks the index never leaves the visible range.
func TestGoNextWalksToSummary(t *testing.T) {
	rec := completeRecord()
	last := len(ResolveVisibleSteps(rec)) - 1

	current := 0
	for i := 0; i < 100; i++ {
		next, res := GoNext(current, rec)
		require.True(t, res.IsValid, "step %d should validate: %v", current, res.Errors)
		require.GreaterOrEqual(t, next, 0)
		require.LessOrEqual(t, next, last)
		if next == current {
			break
		}
		current = next
	}

	step, _ := StepAt(current, rec)
	assert.Equal(t, StepSummary, step.ID, "a complete record walks through to the summary")
}

func TestGoPreviousFloorsAtZero(t *testing.T) {
	rec := completeRecord()
	assert.Equal(t, 0, GoPrevious(0, rec))
	assert.Equal(t, 0, GoPrevious(-4, rec))
}

func TestGoPreviousNeverValidates(t *testing.T) {
	rec := &record.AnswerRecord{ClientType: record.Str("Particulier")}
	idx := indexOfID(t, rec, StepCity)
	assert.Equal(t, idx-1, GoPrevious(idx, rec), "going back ignores unanswered steps")
}

// TestClampIndexAfterListShrinks reproduces a record change that hides
// later steps while the user stands on one of them.
func TestClampIndexAfterListShrinks(t *testing.T) {
	rec := completeRecord()
	idx := indexOfID(t, rec, StepOptions)

	// Switching to quick mode removes the detail steps.
	rec.EstimationMode = record.Str("Rapide")
	clamped := ClampIndex(idx, rec)
	n := len(ResolveVisibleSteps(rec))
	assert.Less(t, clamped, n)
	assert.Equal(t, n-1, clamped, "the position snaps to the last visible step")
}

func TestGoNextOutOfRangeCurrentIsClamped(t *testing.T) {
	rec := completeRecord()
	last := len(ResolveVisibleSteps(rec)) - 1

	next, res := GoNext(9999, rec)
	require.True(t, res.IsValid)
	assert.Equal(t, last, next, "an overshoot clamps to the summary")
}
