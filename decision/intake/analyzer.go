// Package intake turns conversational free text into intents and partial
// answer records, and suggests what to ask for next. Recognition is
// keyword and pattern based with a confidence score; anything below the
// floor degrades to an unknown intent rather than an error.
package intake

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"bati-cost/pkg/confidence"
)

// Intent categories.
const (
	IntentProjectType = "project_type"
	IntentLocation    = "location"
	IntentDimensions  = "dimensions"
	IntentBudget      = "budget"
	IntentQuality     = "quality"
	IntentTerrain     = "terrain"
	IntentMaterials   = "materials"
	IntentTimeline    = "timeline"
	IntentFeatures    = "features"
	IntentContact     = "contact"
	IntentHelp        = "help"
	IntentUnknown     = "unknown"
)

// Analysis is the outcome of one free-text input.
type Analysis struct {
	Intent     string   `json:"intent"`
	Confidence float64  `json:"confidence"`
	Entities   Entities `json:"entities"`
}

type intentRecognizer struct {
	intent   string
	patterns []*regexp.Regexp
}

func patterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// Recognizers are scored independently; declaration order only breaks ties.
var recognizers = []intentRecognizer{
	{IntentProjectType, patterns(
		`construire|construction|bâtir|batir|faire bâtir|maison neuve`,
		`rénov\w*|renov\w*`,
		`agrandi\w*|extension`,
		`surél\w*|surel\w*`,
		`aménag\w*|amenag\w*|décorat\w*|decorat\w*`,
		`divis\w*|optimis\w*`,
	)},
	{IntentLocation, patterns(
		// \b cannot sit next to accented letters in RE2, hence the
		// explicit start-or-space anchor.
		`(?:^|\s)à\s+[a-zà-ÿ'\-]+`,
		`ville|commune|habite|situ[ée]|localis\w*|région|region|département|departement`,
	)},
	{IntentDimensions, patterns(
		`\d+\s*(?:m2|m²|mètres?\s*carrés?|metres?\s*carres?)`,
		`surface|superficie|taille|grandeur|agrandir de`,
	)},
	{IntentBudget, patterns(
		`\d[\d\s.,]*\s*(?:€|euros?|k€)|\d+\s*k\b`,
		`budget|financ\w*|coût|cout|prix|enveloppe`,
	)},
	{IntentQuality, patterns(
		`haut de gamme|premium|luxe|standing`,
		`économique|economique|entrée de gamme|entree de gamme|pas cher`,
		`standard|qualité|qualite|finition\w*`,
	)},
	{IntentTerrain, patterns(
		`terrain|parcelle|viabilis[ée]\w*|constructible`,
		`pente|rocheux|accès|acces`,
	)},
	{IntentMaterials, patterns(
		`brique|parpaing|pierre|béton|beton|acier|métallique|metallique|ossature`,
		`matériau\w*|materiau\w*|\bbois\b`,
	)},
	{IntentTimeline, patterns(
		`dans\s+\d+\s+(?:ans?|mois)|l'année prochaine|cette année`,
		`délai|delai|planning|démarr\w*|demarr\w*|commencer|quand`,
	)},
	{IntentFeatures, patterns(
		`piscine|terrasse|garage|jardin|clôture|cloture|portail|véranda|veranda`,
		`domotique|panneaux\s+solaires|options?`,
	)},
	{IntentContact, patterns(
		`[\w.+-]+@[\w-]+(?:\.[\w-]+)+`,
		`téléphone|telephone|rappel\w*|contact\w*|rendez-vous|joindre`,
	)},
	{IntentHelp, patterns(
		`\baide\b|aidez|comment\s+ça|comment\s+ca|\bhelp\b|que puis-je|expliqu\w*`,
	)},
}

// AnalyzeInput scores every intent category against the input and returns
// the winner together with all entities recognizable in the text. Entity
// extraction is independent of the winning intent. Unparseable input
// yields IntentUnknown with zero confidence.
func AnalyzeInput(text string) Analysis {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Analysis{Intent: IntentUnknown}
	}
	lower := strings.ToLower(trimmed)
	inputLen := utf8.RuneCountInString(lower)

	best := IntentUnknown
	bestScore := 0.0
	for _, rec := range recognizers {
		matched := 0
		segments := 0
		for _, p := range rec.patterns {
			if m := p.FindString(lower); m != "" {
				matched += utf8.RuneCountInString(m)
				segments++
			}
		}
		if matched == 0 {
			continue
		}
		score := confidence.Coverage(matched, inputLen)
		if segments > 1 {
			score = confidence.Bonus(score)
		}
		if !confidence.AboveFloor(score) {
			continue
		}
		if score > bestScore {
			best = rec.intent
			bestScore = score
		}
	}

	return Analysis{
		Intent:     best,
		Confidence: confidence.Clamp(bestScore),
		Entities:   ExtractEntities(trimmed),
	}
}
