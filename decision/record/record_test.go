package record

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberAcceptsNumbersAndStrings(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"json number", `{"surface": 120}`, 120},
		{"decimal number", `{"surface": 120.5}`, 120.5},
		{"plain string", `{"surface": "120"}`, 120},
		{"string with unit", `{"surface": "120 m²"}`, 120},
		{"french thousands", `{"surface": "1 200,50"}`, 1200.50},
		{"k suffix", `{"surface": "250k"}`, 250000},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var rec AnswerRecord
			require.NoError(t, json.Unmarshal([]byte(c.in), &rec))
			require.NotNil(t, rec.Surface)
			assert.Equal(t, c.want, rec.Surface.Float64())
		})
	}
}

func TestNumberRejectsGarbage(t *testing.T) {
	var rec AnswerRecord
	err := json.Unmarshal([]byte(`{"surface": "beaucoup"}`), &rec)
	assert.Error(t, err)
}

func TestNumberNilFloat64(t *testing.T) {
	var n *Number
	assert.Equal(t, 0.0, n.Float64())
}

func TestMergeOverwritesOnlySetFields(t *testing.T) {
	rec := &AnswerRecord{
		City:    Str("Lyon"),
		Surface: Num(100),
	}

	rec.Merge(&AnswerRecord{
		Surface:     Num(140),
		ProjectType: Str("Extension"),
	})

	assert.Equal(t, "Lyon", *rec.City, "unset patch fields leave answers untouched")
	assert.Equal(t, 140.0, rec.Surface.Float64())
	assert.Equal(t, "Extension", *rec.ProjectType)

	rec.Merge(nil)
	assert.Equal(t, "Lyon", *rec.City)
}

func TestMergeReplacesSlicesWholesale(t *testing.T) {
	rec := &AnswerRecord{RenovationAreas: []string{"Cuisine", "Toiture"}}
	rec.Merge(&AnswerRecord{RenovationAreas: []string{"Façade"}})
	assert.Equal(t, []string{"Façade"}, rec.RenovationAreas)

	rec.Merge(&AnswerRecord{})
	assert.Equal(t, []string{"Façade"}, rec.RenovationAreas, "a nil slice is an unset field")
}

func TestCloneIsolatesSlices(t *testing.T) {
	rec := &AnswerRecord{
		City:             Str("Nice"),
		ExteriorFeatures: []string{"Terrasse"},
	}
	c := rec.Clone()
	c.ExteriorFeatures[0] = "Piscine"
	assert.Equal(t, "Terrasse", rec.ExteriorFeatures[0])

	var nilRec *AnswerRecord
	assert.Nil(t, nilRec.Clone())
}

func TestExplicitAccessors(t *testing.T) {
	rec := &AnswerRecord{}

	_, ok := rec.ExplicitProjectType()
	assert.False(t, ok, "absence is not an answer")

	rec.ProjectType = Str("Rénovation")
	pt, ok := rec.ExplicitProjectType()
	require.True(t, ok)
	assert.Equal(t, ProjectRenovation, pt)

	rec.ProjectType = Str("")
	_, ok = rec.ExplicitProjectType()
	assert.False(t, ok, "an empty string is not an answer either")
}

func TestParseDefaultsAreClosed(t *testing.T) {
	assert.Equal(t, ProjectConstruction, ParseProjectType("n'importe quoi"))
	assert.Equal(t, ClientIndividual, ParseClientType(""))
	assert.Equal(t, WallBrick, ParseWallMaterial("???"))
	assert.Equal(t, AreaUnknown, ParseRenovationArea("???"))
	assert.Equal(t, FeatureUnknown, ParseExteriorFeature("???"))
	assert.Equal(t, FeatureNone, ParseExteriorFeature("Aucun"))
}

func TestProjectTypeLabelRoundTrip(t *testing.T) {
	for _, pt := range []ProjectType{
		ProjectConstruction, ProjectRenovation, ProjectExtension,
		ProjectElevation, ProjectOptimization, ProjectDivision, ProjectDesign,
	} {
		assert.Equal(t, pt, ParseProjectType(pt.Label()), "label %q must parse back", pt.Label())
	}
}
