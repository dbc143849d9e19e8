package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bati-cost/decision/record"
)

func TestAnalyzeConstructionSentence(t *testing.T) {
	a := AnalyzeInput("Je veux construire une maison de 120m² à Marseille")

	assert.Contains(t, []string{IntentProjectType, IntentDimensions, IntentLocation}, a.Intent)
	assert.GreaterOrEqual(t, a.Confidence, 0.3)
	assert.LessOrEqual(t, a.Confidence, 0.9)

	assert.Equal(t, "Construction neuve", a.Entities.ProjectType)
	require.NotNil(t, a.Entities.Surface)
	assert.Equal(t, 120.0, *a.Entities.Surface)
	assert.Equal(t, "Marseille", a.Entities.Location)
}

func TestAnalyzeUnknownInput(t *testing.T) {
	for _, in := range []string{"", "   ", "xyzzy blorp"} {
		a := AnalyzeInput(in)
		assert.Equal(t, IntentUnknown, a.Intent, "input %q", in)
		assert.Zero(t, a.Confidence)
	}
}

func TestAnalyzeBudget(t *testing.T) {
	a := AnalyzeInput("Mon budget est de 250 000 €")
	assert.Equal(t, IntentBudget, a.Intent)
	require.NotNil(t, a.Entities.Budget)
	assert.Equal(t, 250000.0, *a.Entities.Budget)
}

func TestAnalyzeRenovation(t *testing.T) {
	a := AnalyzeInput("Je souhaite rénover un appartement")
	assert.Equal(t, IntentProjectType, a.Intent)
	assert.Equal(t, "Rénovation", a.Entities.ProjectType)
}

// TestEntityExtractionIsIntentIndependent checks that a sentence dominated
// by one intent still yields every other recognizable entity.
func TestEntityExtractionIsIntentIndependent(t *testing.T) {
	a := AnalyzeInput("Rénover 80 m² à Lille avec un budget de 120k€ en haut de gamme")

	assert.Equal(t, "Rénovation", a.Entities.ProjectType)
	require.NotNil(t, a.Entities.Surface)
	assert.Equal(t, 80.0, *a.Entities.Surface)
	assert.Equal(t, "Lille", a.Entities.Location)
	require.NotNil(t, a.Entities.Budget)
	assert.Equal(t, 120000.0, *a.Entities.Budget)
	assert.Equal(t, string(record.FinishPremium), a.Entities.Quality)
}

func TestExtractEntitiesContactAndTimeline(t *testing.T) {
	e := ExtractEntities("Contactez-moi sur jean.dupont@example.fr ou au 06 12 34 56 78, on démarre dans 2 ans")

	assert.Equal(t, "jean.dupont@example.fr", e.Email)
	assert.Equal(t, "06 12 34 56 78", e.Phone)
	require.NotNil(t, e.TimelineYears)
	assert.Equal(t, 2.0, *e.TimelineYears)
}

func TestExtractEntitiesLandOwnership(t *testing.T) {
	owns := ExtractEntities("J'ai déjà un terrain viabilisé")
	require.NotNil(t, owns.OwnsLand)
	assert.True(t, *owns.OwnsLand)

	searching := ExtractEntities("Je suis en recherche de terrain")
	require.NotNil(t, searching.OwnsLand)
	assert.False(t, *searching.OwnsLand)

	silent := ExtractEntities("Je veux construire une maison")
	assert.Nil(t, silent.OwnsLand)
}

func TestEntitiesPatch(t *testing.T) {
	a := AnalyzeInput("Je veux construire 120 m² à Marseille pour 300 000 € en ossature bois")
	patch := a.Entities.Patch()

	require.NotNil(t, patch.ProjectType)
	assert.Equal(t, "Construction neuve", *patch.ProjectType)
	require.NotNil(t, patch.Surface)
	assert.Equal(t, 120.0, patch.Surface.Float64())
	require.NotNil(t, patch.City)
	assert.Equal(t, "Marseille", *patch.City)
	require.NotNil(t, patch.RunningTotal)
	assert.Equal(t, 300000.0, patch.RunningTotal.Float64())
	require.NotNil(t, patch.WallMaterial)
	assert.Equal(t, string(record.WallWoodFrame), *patch.WallMaterial)

	// An empty analysis produces an empty patch that merges as a no-op.
	empty := ExtractEntities("bonjour").Patch()
	rec := &record.AnswerRecord{City: record.Str("Lyon")}
	rec.Merge(empty)
	assert.Equal(t, "Lyon", *rec.City)
	assert.Nil(t, rec.ProjectType)
}

func TestGenerateSuggestionsPriority(t *testing.T) {
	rec := &record.AnswerRecord{}

	first := GenerateSuggestions(rec)
	require.NotEmpty(t, first)
	assert.LessOrEqual(t, len(first), 3)
	assert.Contains(t, first[0], "construire", "the project type gap is probed first")

	rec.ProjectType = record.Str("Construction neuve")
	second := GenerateSuggestions(rec)
	assert.Contains(t, second[0], "se situe à", "then the location gap")

	rec.City = record.Str("Lyon")
	third := GenerateSuggestions(rec)
	assert.Contains(t, third[0], "surface", "then the surface gap")
}

func TestGenerateSuggestionsClosingPrompts(t *testing.T) {
	rec := &record.AnswerRecord{
		ProjectType: record.Str("Construction neuve"),
		City:        record.Str("Lyon"),
		Surface:     record.Num(120),
		FinishTier:  record.Str("standard"),
		OwnsLand:    record.Bool(true),
		Email:       record.Str("jean@example.fr"),
	}
	s := GenerateSuggestions(rec)
	require.NotEmpty(t, s)
	assert.Contains(t, s, "Calculer mon estimation")
	assert.LessOrEqual(t, len(s), 3)

	assert.Equal(t, GenerateSuggestions(nil), GenerateSuggestions(&record.AnswerRecord{}))
}
