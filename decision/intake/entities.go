package intake

import (
	"regexp"
	"strings"

	"bati-cost/decision/record"
	"bati-cost/pkg/util"
)

// Entities carries every value recognized in a free-text input. Extraction
// runs all recognizers regardless of the winning intent, so one sentence
// can fill several record fields at once.
type Entities struct {
	ProjectType   string   `json:"project_type,omitempty"`
	Surface       *float64 `json:"surface,omitempty"`
	Location      string   `json:"location,omitempty"`
	Budget        *float64 `json:"budget,omitempty"`
	Quality       string   `json:"quality,omitempty"`
	Materials     string   `json:"materials,omitempty"`
	Email         string   `json:"email,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	OwnsLand      *bool    `json:"owns_land,omitempty"`
	TimelineYears *float64 `json:"timeline_years,omitempty"`
}

var (
	surfaceRe  = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:m2|m²|mètres?\s*carrés?|metres?\s*carres?)`)
	budgetRe   = regexp.MustCompile(`(\d[\d\s.,]*\s*(?:k€|k\b|€|euros?))`)
	emailRe    = regexp.MustCompile(`[\w.+-]+@[\w-]+(?:\.[\w-]+)+`)
	phoneRe    = regexp.MustCompile(`(?:\+33\s?|0)[1-9](?:[\s.-]?\d{2}){4}`)
	cityRe     = regexp.MustCompile(`(?:^|\s)(?:à|a|sur|près de|pres de|proche de)\s+([A-ZÀ-Ý][a-zà-ÿ'\-]+(?:[\s-][A-ZÀ-Ý][a-zà-ÿ'\-]+)*)`)
	yearsRe    = regexp.MustCompile(`dans\s+(\d+)\s+ans?\b`)
	monthsRe   = regexp.MustCompile(`dans\s+(\d+)\s+mois\b`)
	projTypeRe = regexp.MustCompile(`construire|construction|bâtir|batir|maison neuve|rénov\w*|renov\w*|agrandi\w*|extension|surél\w*|surel\w*|aménag\w*|amenag\w*|divis\w*|optimis\w*`)
	qualityRe  = regexp.MustCompile(`haut de gamme|premium|luxe|standing|économique|economique|entrée de gamme|entree de gamme|pas cher|standard`)
	materialRe = regexp.MustCompile(`brique|parpaing|pierre|béton cellulaire|beton cellulaire|acier|métallique|metallique|ossature bois|\bbois\b`)
)

// ExtractEntities pulls every recognizable value out of the text. City
// matching runs on the original casing so proper nouns stay intact; all
// other recognizers work on the lowered form.
func ExtractEntities(text string) Entities {
	var e Entities
	lower := strings.ToLower(text)

	if m := projTypeRe.FindString(lower); m != "" {
		e.ProjectType = record.ParseProjectType(m).Label()
	}
	if m := surfaceRe.FindStringSubmatch(lower); m != nil {
		if v, ok := util.ParseAmount(m[1]); ok {
			e.Surface = &v
		}
	}
	if m := cityRe.FindStringSubmatch(text); m != nil {
		e.Location = m[1]
	}
	if m := budgetRe.FindStringSubmatch(lower); m != nil {
		if v, ok := util.ParseAmount(m[1]); ok {
			e.Budget = &v
		}
	}
	if m := qualityRe.FindString(lower); m != "" {
		e.Quality = string(record.ParseFinishTier(m))
	}
	if m := materialRe.FindString(lower); m != "" {
		e.Materials = string(record.ParseWallMaterial(m))
	}
	if m := emailRe.FindString(text); m != "" {
		e.Email = m
	}
	if m := phoneRe.FindString(text); m != "" {
		e.Phone = m
	}
	e.OwnsLand = detectLandOwnership(lower)
	if m := yearsRe.FindStringSubmatch(lower); m != nil {
		if v, ok := util.ParseAmount(m[1]); ok {
			e.TimelineYears = &v
		}
	} else if monthsRe.MatchString(lower) || strings.Contains(lower, "l'année prochaine") {
		one := 1.0
		e.TimelineYears = &one
	}
	return e
}

func detectLandOwnership(lower string) *bool {
	if !strings.Contains(lower, "terrain") {
		return nil
	}
	switch {
	case containsAny(lower, "pas de terrain", "pas encore de terrain", "cherche un terrain", "recherche de terrain", "sans terrain"):
		return record.Bool(false)
	case containsAny(lower, "j'ai un terrain", "j'ai déjà", "j'ai deja", "mon terrain", "notre terrain", "terrain déjà", "terrain deja", "possède un terrain", "possede un terrain"):
		return record.Bool(true)
	default:
		return nil
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Patch converts the recognized entities into a sparse record patch the
// flow owner can merge. Unrecognized entities stay nil and never clobber
// existing answers.
func (e Entities) Patch() *record.AnswerRecord {
	p := &record.AnswerRecord{}
	if e.ProjectType != "" {
		p.ProjectType = record.Str(e.ProjectType)
	}
	if e.Surface != nil {
		p.Surface = record.Num(*e.Surface)
	}
	if e.Location != "" {
		p.City = record.Str(e.Location)
	}
	if e.Budget != nil {
		p.RunningTotal = record.Num(*e.Budget)
	}
	if e.Quality != "" {
		p.FinishTier = record.Str(e.Quality)
	}
	if e.Materials != "" {
		p.WallMaterial = record.Str(e.Materials)
	}
	if e.Email != "" {
		p.Email = record.Str(e.Email)
	}
	if e.Phone != "" {
		p.Phone = record.Str(e.Phone)
	}
	if e.OwnsLand != nil {
		p.OwnsLand = record.Bool(*e.OwnsLand)
	}
	if e.TimelineYears != nil {
		p.TimelineYears = record.Num(*e.TimelineYears)
	}
	return p
}
