package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bati-cost/decision/record"
)

func stepIDs(r *record.AnswerRecord) []string {
	steps := ResolveVisibleSteps(r)
	ids := make([]string, len(steps))
	for i, s := range steps {
		ids[i] = s.ID
	}
	return ids
}

func indexOfID(t *testing.T, r *record.AnswerRecord, id string) int {
	t.Helper()
	idx := indexOf(ResolveVisibleSteps(r), id)
	require.GreaterOrEqual(t, idx, 0, "step %s should be visible", id)
	return idx
}

func TestResolveVisibleStepsDeterministic(t *testing.T) {
	rec := &record.AnswerRecord{
		ClientType:  record.Str("Particulier"),
		ProjectType: record.Str("Rénovation"),
	}
	assert.Equal(t, stepIDs(rec), stepIDs(rec), "same record resolves to the same list")
}

func TestResolveVisibleStepsEmptyRecord(t *testing.T) {
	ids := stepIDs(&record.AnswerRecord{})

	// An unanswered client type shows the individual variant only.
	assert.Contains(t, ids, StepProjectTypeIndividual)
	assert.NotContains(t, ids, StepProjectTypeProfessional)

	// Unanswered fields never hide generic build steps.
	assert.Contains(t, ids, StepTerrain)
	assert.Contains(t, ids, StepWalls)
	assert.Contains(t, ids, StepRoof)

	// Land financing only applies to an explicit new build.
	assert.NotContains(t, ids, StepLand)

	assert.Equal(t, StepClientType, ids[0])
	assert.Equal(t, StepSummary, ids[len(ids)-1])

	assert.Equal(t, ids, stepIDs(nil), "nil record behaves as empty")
}

func TestResolveVisibleStepsProfessional(t *testing.T) {
	ids := stepIDs(&record.AnswerRecord{ClientType: record.Str("Professionnel")})
	assert.Contains(t, ids, StepProjectTypeProfessional)
	assert.NotContains(t, ids, StepProjectTypeIndividual)
}

func TestResolveVisibleStepsDesignProject(t *testing.T) {
	ids := stepIDs(&record.AnswerRecord{ProjectType: record.Str("Aménagement intérieur")})

	for _, hidden := range []string{
		StepTerrain, StepLand, StepWalls, StepRoof, StepRoofDetails,
		StepCladding, StepInsulation, StepWindows, StepExterior, StepOptions,
	} {
		assert.NotContains(t, ids, hidden, "a design project asks no shell question")
	}
	assert.Contains(t, ids, StepSurface)
	assert.Contains(t, ids, StepFinish)
	assert.Contains(t, ids, StepContact)
}

func TestResolveVisibleStepsQuickMode(t *testing.T) {
	ids := stepIDs(&record.AnswerRecord{
		ProjectType:    record.Str("Construction neuve"),
		EstimationMode: record.Str("Rapide"),
	})

	for _, hidden := range []string{
		StepTerrain, StepLand, StepRoofDetails, StepCladding,
		StepFlooringPaint, StepRooms, StepLivingRoom, StepOptions,
	} {
		assert.NotContains(t, ids, hidden, "quick mode skips detail questions")
	}
	assert.Contains(t, ids, StepSurface)
	assert.Contains(t, ids, StepWalls)
}

func TestResolveVisibleStepsRenovation(t *testing.T) {
	rec := &record.AnswerRecord{ProjectType: record.Str("Rénovation")}
	ids := stepIDs(rec)

	areas := indexOfID(t, rec, StepRenovationAreas)
	condition := indexOfID(t, rec, StepBuildingCondition)
	demolition := indexOfID(t, rec, StepDemolition)
	city := indexOfID(t, rec, StepCity)

	assert.Greater(t, areas, city, "renovation scopes come after localisation")
	assert.Equal(t, areas+1, condition)
	assert.Equal(t, condition+1, demolition)

	// Scope-gated steps appear only once their area is selected.
	assert.NotContains(t, ids, StepWalls)
	assert.NotContains(t, ids, StepRoof)
	assert.NotContains(t, ids, StepInsulation)

	rec.RenovationAreas = []string{"Toiture", "Isolation"}
	ids = stepIDs(rec)
	assert.Contains(t, ids, StepRoof)
	assert.Contains(t, ids, StepInsulation)
	assert.NotContains(t, ids, StepWalls, "façade scope is still unselected")
}

func TestStepAt(t *testing.T) {
	rec := &record.AnswerRecord{}
	step, ok := StepAt(0, rec)
	require.True(t, ok)
	assert.Equal(t, StepClientType, step.ID)

	_, ok = StepAt(-1, rec)
	assert.False(t, ok)
	_, ok = StepAt(len(ResolveVisibleSteps(rec)), rec)
	assert.False(t, ok)
}
