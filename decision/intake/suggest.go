package intake

import (
	"strings"

	"bati-cost/decision/record"
)

// suggestionLimit caps how many phrases one call returns.
const suggestionLimit = 3

type gap struct {
	missing func(r *record.AnswerRecord) bool
	phrases []string
}

// Gaps are probed in order of usefulness to the pricing engines; the
// first unanswered one supplies the suggestions.
var gaps = []gap{
	{
		missing: func(r *record.AnswerRecord) bool { return r.ProjectType == nil || strings.TrimSpace(*r.ProjectType) == "" },
		phrases: []string{
			"Je veux construire une maison neuve",
			"Je veux rénover ma maison",
			"Je veux agrandir ma maison",
		},
	},
	{
		missing: func(r *record.AnswerRecord) bool { return r.City == nil || strings.TrimSpace(*r.City) == "" },
		phrases: []string{
			"Mon projet se situe à Lyon",
			"Mon projet se situe à Bordeaux",
			"Mon projet se situe à Nantes",
		},
	},
	{
		missing: func(r *record.AnswerRecord) bool { return r.Surface == nil },
		phrases: []string{
			"Une surface de 100 m²",
			"Une surface de 150 m²",
			"Je ne connais pas encore la surface",
		},
	},
	{
		missing: func(r *record.AnswerRecord) bool { return r.FinishTier == nil || strings.TrimSpace(*r.FinishTier) == "" },
		phrases: []string{
			"Des finitions standard",
			"Des finitions haut de gamme",
			"Des finitions économiques",
		},
	},
	{
		missing: func(r *record.AnswerRecord) bool { return r.OwnsLand == nil },
		phrases: []string{
			"J'ai déjà un terrain",
			"Je cherche encore un terrain",
		},
	},
	{
		missing: func(r *record.AnswerRecord) bool { return r.Email == nil || strings.TrimSpace(*r.Email) == "" },
		phrases: []string{
			"Recevoir mon estimation par email",
		},
	},
}

// Closing prompts shown once every probed gap is filled.
var closingPhrases = []string{
	"Calculer mon estimation",
	"Être rappelé par un conseiller",
	"Modifier mes réponses",
}

// GenerateSuggestions proposes what the user could say next. It targets
// the first unanswered gap in priority order and falls back to closing
// prompts when the record covers them all.
func GenerateSuggestions(r *record.AnswerRecord) []string {
	if r == nil {
		r = &record.AnswerRecord{}
	}
	for _, g := range gaps {
		if g.missing(r) {
			return clip(g.phrases)
		}
	}
	return clip(closingPhrases)
}

func clip(phrases []string) []string {
	if len(phrases) > suggestionLimit {
		phrases = phrases[:suggestionLimit]
	}
	return append([]string(nil), phrases...)
}
