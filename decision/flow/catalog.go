// Package flow implements the adaptive questionnaire: the static step
// catalog, the visibility resolver, the step navigator and the per-step
// validation layer. Everything here is a pure function of a record
// snapshot; the caller owns the record and the current index.
package flow

import (
	builderr "bati-cost/pkg/errors"

	"bati-cost/decision/record"
)

// Step IDs. Stable identifiers, independent of position in the visible list.
const (
	StepClientType              = "client_type"
	StepProjectTypeIndividual   = "project_type_individual"
	StepProjectTypeProfessional = "project_type_professional"
	StepEstimationMode          = "estimation_mode"
	StepCity                    = "city"
	StepRenovationAreas         = "renovation_areas"
	StepBuildingCondition       = "building_condition"
	StepDemolition              = "demolition"
	StepTerrain                 = "terrain"
	StepLand                    = "land"
	StepSurface                 = "surface"
	StepWalls                   = "walls"
	StepRoof                    = "roof"
	StepRoofDetails             = "roof_details"
	StepCladding                = "cladding"
	StepInsulation              = "insulation"
	StepWindows                 = "windows"
	StepElectrical              = "electrical"
	StepHeating                 = "heating"
	StepFinish                  = "finish"
	StepKitchen                 = "kitchen"
	StepBathroom                = "bathroom"
	StepFlooringPaint           = "flooring_paint"
	StepRooms                   = "rooms"
	StepLivingRoom              = "living_room"
	StepExterior                = "exterior"
	StepOptions                 = "options"
	StepContact                 = "contact"
	StepSummary                 = "summary"
)

// Step is one question of the wizard. Skip decides applicability against
// the current record; a nil Skip means always visible. Skip predicates
// read only explicit answers: an unanswered field never hides a step.
type Step struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
	Skip  func(r *record.AnswerRecord) bool `json:"-"`
	Rules []Rule                            `json:"-"`
}

// Explicit-answer predicates shared by skip rules and navigator overrides.

func isProfessional(r *record.AnswerRecord) bool {
	ct, ok := r.ExplicitClientType()
	return ok && ct == record.ClientProfessional
}

func isIndividual(r *record.AnswerRecord) bool {
	ct, ok := r.ExplicitClientType()
	return ok && ct == record.ClientIndividual
}

func isRenovation(r *record.AnswerRecord) bool {
	pt, ok := r.ExplicitProjectType()
	return ok && pt == record.ProjectRenovation
}

func isDesign(r *record.AnswerRecord) bool {
	pt, ok := r.ExplicitProjectType()
	return ok && pt == record.ProjectDesign
}

func isQuickMode(r *record.AnswerRecord) bool {
	m, ok := r.ExplicitMode()
	return ok && m == record.ModeQuick
}

// projectIs reports whether the explicit project type is one of the given
// variants; false when the project type is still unanswered.
func projectIs(r *record.AnswerRecord, types ...record.ProjectType) bool {
	pt, ok := r.ExplicitProjectType()
	if !ok {
		return false
	}
	for _, t := range types {
		if pt == t {
			return true
		}
	}
	return false
}

// skipForGroundwork hides site/structure questions for projects that touch
// neither the ground nor the shell.
func skipForGroundwork(r *record.AnswerRecord) bool {
	return projectIs(r, record.ProjectDesign, record.ProjectOptimization, record.ProjectDivision)
}

var baseCatalog = []Step{
	{
		ID: StepClientType, Title: "Vous êtes", Order: 0,
		Rules: []Rule{
			requireString("client_type", "Indiquez si vous êtes un particulier ou un professionnel.",
				func(r *record.AnswerRecord) *string { return r.ClientType }),
		},
	},
	{
		ID: StepProjectTypeIndividual, Title: "Votre projet", Order: 20,
		Skip: isProfessional,
		Rules: []Rule{
			requireString("project_type", "Sélectionnez la nature de votre projet.",
				func(r *record.AnswerRecord) *string { return r.ProjectType }),
		},
	},
	{
		ID: StepProjectTypeProfessional, Title: "Votre projet professionnel", Order: 21,
		Skip: func(r *record.AnswerRecord) bool { return !isProfessional(r) },
		Rules: []Rule{
			requireString("project_type", "Sélectionnez la nature de votre projet.",
				func(r *record.AnswerRecord) *string { return r.ProjectType }),
			requireString("activity", "Précisez votre secteur d'activité.",
				func(r *record.AnswerRecord) *string { return r.Activity }),
		},
	},
	{
		ID: StepEstimationMode, Title: "Mode d'estimation", Order: 30,
		Rules: []Rule{
			requireString("estimation_mode", "Choisissez entre estimation rapide et estimation précise.",
				func(r *record.AnswerRecord) *string { return r.EstimationMode }),
		},
	},
	{
		ID: StepCity, Title: "Localisation", Order: 40,
		Rules: []Rule{
			requireString("city", "Indiquez la commune du projet.",
				func(r *record.AnswerRecord) *string { return r.City }),
		},
	},
	{
		ID: StepTerrain, Title: "Terrain", Order: 50,
		Skip: func(r *record.AnswerRecord) bool {
			if isQuickMode(r) {
				return true
			}
			pt, ok := r.ExplicitProjectType()
			if !ok {
				return false
			}
			switch pt {
			case record.ProjectConstruction, record.ProjectExtension, record.ProjectElevation:
				return false
			}
			return true
		},
		Rules: []Rule{
			requireString("terrain_type", "Décrivez la nature du terrain.",
				func(r *record.AnswerRecord) *string { return r.TerrainType }),
		},
	},
	{
		ID: StepLand, Title: "Foncier", Order: 60,
		Skip: func(r *record.AnswerRecord) bool {
			return isQuickMode(r) || !projectIs(r, record.ProjectConstruction)
		},
		Rules: []Rule{
			ruleFrom(builderr.NewMissingField("owns_land", "Indiquez si vous possédez déjà le terrain."),
				func(r *record.AnswerRecord) bool { return r.OwnsLand == nil }),
			ruleFrom(builderr.NewMissingField("land_price", "Renseignez le budget d'achat du terrain."),
				func(r *record.AnswerRecord) bool {
					if r.OwnsLand == nil || *r.OwnsLand {
						return false
					}
					return r.LandPrice == nil || r.LandPrice.Float64() <= 0
				}),
		},
	},
	{
		ID: StepSurface, Title: "Surface du projet", Order: 70,
		Rules: []Rule{
			requireNumberIn("surface", "La surface doit être comprise entre 10 et 1500 m².", 10, 1500,
				func(r *record.AnswerRecord) *record.Number { return r.Surface }),
		},
	},
	{
		ID: StepWalls, Title: "Murs porteurs", Order: 80,
		Skip: func(r *record.AnswerRecord) bool {
			if skipForGroundwork(r) {
				return true
			}
			return isRenovation(r) && !r.HasRenovationArea(record.AreaFacade)
		},
		Rules: []Rule{
			requireString("wall_material", "Choisissez le matériau des murs.",
				func(r *record.AnswerRecord) *string { return r.WallMaterial }),
		},
	},
	{
		ID: StepRoof, Title: "Charpente", Order: 90,
		Skip: func(r *record.AnswerRecord) bool {
			if skipForGroundwork(r) {
				return true
			}
			return isRenovation(r) && !r.HasRenovationArea(record.AreaRoof)
		},
		Rules: []Rule{
			requireString("roof_structure", "Choisissez le type de charpente.",
				func(r *record.AnswerRecord) *string { return r.RoofStructure }),
		},
	},
	{
		ID: StepRoofDetails, Title: "Combles et couverture", Order: 95,
		Skip: func(r *record.AnswerRecord) bool {
			if isQuickMode(r) || skipForGroundwork(r) {
				return true
			}
			return isRenovation(r) && !r.HasRenovationArea(record.AreaRoof)
		},
	},
	{
		ID: StepCladding, Title: "Façades", Order: 100,
		Skip: func(r *record.AnswerRecord) bool {
			if isQuickMode(r) || skipForGroundwork(r) {
				return true
			}
			return isRenovation(r) && !r.HasRenovationArea(record.AreaFacade)
		},
	},
	{
		ID: StepInsulation, Title: "Isolation", Order: 110,
		Skip: func(r *record.AnswerRecord) bool {
			if isDesign(r) {
				return true
			}
			return isRenovation(r) && !r.HasRenovationArea(record.AreaInsulation)
		},
	},
	{
		ID: StepWindows, Title: "Menuiseries", Order: 120,
		Skip: isDesign,
	},
	{
		ID: StepElectrical, Title: "Électricité", Order: 130,
	},
	{
		ID: StepHeating, Title: "Chauffage et climatisation", Order: 140,
	},
	{
		ID: StepFinish, Title: "Niveau de finition", Order: 150,
	},
	{
		ID: StepKitchen, Title: "Cuisine", Order: 160,
	},
	{
		ID: StepBathroom, Title: "Salles de bain", Order: 170,
		Rules: []Rule{
			{
				Code: builderr.ErrCodeOutOfRange, Field: "bathroom_count",
				Message:  "Le nombre de salles de bain doit être compris entre 1 et 10.",
				Severity: builderr.SeverityError,
				Failed: func(r *record.AnswerRecord) bool {
					if r.BathroomCount == nil {
						return false
					}
					n := r.BathroomCount.Float64()
					return n < 1 || n > 10
				},
			},
		},
	},
	{
		ID: StepFlooringPaint, Title: "Sols et peintures", Order: 180,
		Skip: isQuickMode,
	},
	{
		ID: StepRooms, Title: "Pièces", Order: 190,
		Skip: isQuickMode,
	},
	{
		ID: StepLivingRoom, Title: "Pièce de vie", Order: 200,
		Skip: isQuickMode,
	},
	{
		ID: StepExterior, Title: "Aménagements extérieurs", Order: 210,
		Skip: isDesign,
	},
	{
		ID: StepOptions, Title: "Énergies et domotique", Order: 220,
		Skip: func(r *record.AnswerRecord) bool { return isQuickMode(r) || isDesign(r) },
	},
	{
		ID: StepContact, Title: "Vos coordonnées", Order: 230,
		Rules: []Rule{
			requireString("name", "Indiquez votre nom.",
				func(r *record.AnswerRecord) *string { return r.Name }),
			requireString("email", "Indiquez votre adresse email.",
				func(r *record.AnswerRecord) *string { return r.Email }),
			ruleFrom(builderr.NewBadFormat("email", "L'adresse email est invalide.", builderr.SeverityError),
				func(r *record.AnswerRecord) bool {
					return r.Email != nil && *r.Email != "" && !emailRe.MatchString(*r.Email)
				}),
			ruleFrom(builderr.NewBadFormat("phone", "Le numéro de téléphone semble invalide.", builderr.SeverityWarning),
				func(r *record.AnswerRecord) bool {
					return r.Phone != nil && *r.Phone != "" && !phoneRe.MatchString(*r.Phone)
				}),
			{
				Code: builderr.ErrCodeTermsNotAccepted, Field: "terms_accepted",
				Message:  "Vous devez accepter les conditions d'utilisation.",
				Severity: builderr.SeverityError,
				Failed: func(r *record.AnswerRecord) bool {
					return r.TermsAccepted == nil || !*r.TermsAccepted
				},
			},
		},
	},
	{
		ID: StepSummary, Title: "Votre estimation", Order: 240,
	},
}

// renovationCatalog is appended to the base catalog when the project is
// explicitly a renovation, before visibility filtering. Orders slot the
// steps between localisation and terrain so area selections exist before
// the predicates that read them.
var renovationCatalog = []Step{
	{
		ID: StepRenovationAreas, Title: "Postes à rénover", Order: 42,
		Rules: []Rule{
			{
				Code: builderr.ErrCodeEmptySelection, Field: "renovation_areas",
				Message:  "Sélectionnez au moins un poste à rénover.",
				Severity: builderr.SeverityError,
				Failed:   func(r *record.AnswerRecord) bool { return len(r.RenovationAreas) == 0 },
			},
		},
	},
	{
		ID: StepBuildingCondition, Title: "État du bâti", Order: 44,
		Rules: []Rule{
			requireString("building_condition", "Décrivez l'état général du bâtiment.",
				func(r *record.AnswerRecord) *string { return r.BuildingCondition }),
		},
	},
	{
		ID: StepDemolition, Title: "Démolition", Order: 46,
	},
}
