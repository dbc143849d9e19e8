package record

import "strings"

// Every string-tagged answer category is a closed variant set. Raw answers
// stay in the record as typed-in; the ParseX functions map them to their
// variant at computation time, falling back to a named default so an
// unrecognized answer is a checked default path, never a silent miss.

// ClientType distinguishes individual and professional clients.
type ClientType string

const (
	ClientIndividual   ClientType = "individual"
	ClientProfessional ClientType = "professional"
)

// ParseClientType defaults to ClientIndividual.
func ParseClientType(raw string) ClientType {
	n := normalize(raw)
	if containsAny(n, "profession", "entreprise", "societe", "société", "b2b", "pro") {
		return ClientProfessional
	}
	return ClientIndividual
}

// ProjectType is the closed set of project natures.
type ProjectType string

const (
	ProjectConstruction ProjectType = "construction"
	ProjectRenovation   ProjectType = "renovation"
	ProjectExtension    ProjectType = "extension"
	ProjectElevation    ProjectType = "elevation"
	ProjectOptimization ProjectType = "optimization"
	ProjectDivision     ProjectType = "division"
	ProjectDesign       ProjectType = "design"
)

// ParseProjectType defaults to ProjectConstruction.
func ParseProjectType(raw string) ProjectType {
	n := normalize(raw)
	switch {
	case containsAny(n, "renov", "réno"):
		return ProjectRenovation
	case containsAny(n, "extension", "agrandi"):
		return ProjectExtension
	case containsAny(n, "surelev", "surélév", "suréle", "elevation", "élévation"):
		return ProjectElevation
	case containsAny(n, "optimis"):
		return ProjectOptimization
	case containsAny(n, "divis"):
		return ProjectDivision
	case containsAny(n, "amenagement", "aménagement", "design", "interieur", "intérieur", "deco", "déco"):
		return ProjectDesign
	default:
		return ProjectConstruction
	}
}

// Label renders the variant as the French display string used in answers.
func (p ProjectType) Label() string {
	switch p {
	case ProjectRenovation:
		return "Rénovation"
	case ProjectExtension:
		return "Extension"
	case ProjectElevation:
		return "Surélévation"
	case ProjectOptimization:
		return "Optimisation"
	case ProjectDivision:
		return "Division"
	case ProjectDesign:
		return "Aménagement intérieur"
	default:
		return "Construction neuve"
	}
}

// EstimationMode selects the pricing path.
type EstimationMode string

const (
	ModeQuick   EstimationMode = "quick"
	ModePrecise EstimationMode = "precise"
)

// ParseEstimationMode defaults to ModeQuick.
func ParseEstimationMode(raw string) EstimationMode {
	n := normalize(raw)
	if containsAny(n, "precis", "précis", "detail", "détail", "complet") {
		return ModePrecise
	}
	return ModeQuick
}

// TerrainType classifies the building plot.
type TerrainType string

const (
	TerrainFlat          TerrainType = "flat"
	TerrainGentleSlope   TerrainType = "gentle-slope"
	TerrainSteepSlope    TerrainType = "steep-slope"
	TerrainRocky         TerrainType = "rocky"
	TerrainComplexAccess TerrainType = "complex-access"
)

// ParseTerrainType defaults to TerrainFlat.
func ParseTerrainType(raw string) TerrainType {
	n := normalize(raw)
	switch {
	case containsAny(n, "acces", "accès", "difficile", "complexe", "enclave"):
		return TerrainComplexAccess
	case containsAny(n, "roch", "rocaill"):
		return TerrainRocky
	case strings.Contains(n, "pente") && containsAny(n, "forte", "raide", "abrupt"):
		return TerrainSteepSlope
	case containsAny(n, "pente", "inclin", "devers", "dévers"):
		return TerrainGentleSlope
	default:
		return TerrainFlat
	}
}

// WallMaterial is the structural wall material.
type WallMaterial string

const (
	WallBrick           WallMaterial = "brick"
	WallConcreteBlock   WallMaterial = "concrete-block"
	WallCellularConcrete WallMaterial = "cellular-concrete"
	WallWoodFrame       WallMaterial = "wood-frame"
	WallSteelFrame      WallMaterial = "steel-frame"
	WallStone           WallMaterial = "stone"
)

// ParseWallMaterial defaults to WallBrick.
func ParseWallMaterial(raw string) WallMaterial {
	n := normalize(raw)
	switch {
	case containsAny(n, "parpaing", "agglo"):
		return WallConcreteBlock
	case containsAny(n, "cellulaire"):
		return WallCellularConcrete
	case containsAny(n, "bois", "ossature", "wood"):
		return WallWoodFrame
	case containsAny(n, "metal", "métal", "acier", "steel"):
		return WallSteelFrame
	case containsAny(n, "pierre", "stone"):
		return WallStone
	default:
		return WallBrick
	}
}

// RoofStructure is the framing type.
type RoofStructure string

const (
	RoofTraditional RoofStructure = "traditional"
	RoofTruss       RoofStructure = "truss"
	RoofSingleSlope RoofStructure = "single-slope"
	RoofFlat        RoofStructure = "flat-roof"
)

// ParseRoofStructure defaults to RoofTraditional.
func ParseRoofStructure(raw string) RoofStructure {
	n := normalize(raw)
	switch {
	case containsAny(n, "fermette", "industrielle"):
		return RoofTruss
	case containsAny(n, "monopente", "mono-pente"):
		return RoofSingleSlope
	case containsAny(n, "terrasse", "plat"):
		return RoofFlat
	default:
		return RoofTraditional
	}
}

// InsulationTier grades the insulation package.
type InsulationTier string

const (
	InsulationBasic      InsulationTier = "basic"
	InsulationStandard   InsulationTier = "standard"
	InsulationReinforced InsulationTier = "reinforced"
)

// ParseInsulationTier defaults to InsulationStandard.
func ParseInsulationTier(raw string) InsulationTier {
	n := normalize(raw)
	switch {
	case containsAny(n, "basique", "basic", "minimal", "base"):
		return InsulationBasic
	case containsAny(n, "renforc", "ultra", "performant", "rt2012", "re2020"):
		return InsulationReinforced
	default:
		return InsulationStandard
	}
}

// WindowMaterial is the exterior joinery material.
type WindowMaterial string

const (
	WindowPVC          WindowMaterial = "pvc"
	WindowAluminum     WindowMaterial = "aluminum"
	WindowWood         WindowMaterial = "wood"
	WindowWoodAluminum WindowMaterial = "wood-aluminum"
)

// ParseWindowMaterial defaults to WindowPVC.
func ParseWindowMaterial(raw string) WindowMaterial {
	n := normalize(raw)
	switch {
	case containsAny(n, "mixte", "bois-alu", "bois alu"):
		return WindowWoodAluminum
	case containsAny(n, "alu"):
		return WindowAluminum
	case containsAny(n, "bois", "wood"):
		return WindowWood
	default:
		return WindowPVC
	}
}

// HeatingType is the heat production system.
type HeatingType string

const (
	HeatingNone       HeatingType = "none"
	HeatingElectric   HeatingType = "electric"
	HeatingGas        HeatingType = "gas"
	HeatingHeatPump   HeatingType = "heat-pump"
	HeatingGeothermal HeatingType = "geothermal"
	HeatingWoodStove  HeatingType = "wood-stove"
	HeatingSolar      HeatingType = "solar"
)

// ParseHeatingType defaults to HeatingNone.
func ParseHeatingType(raw string) HeatingType {
	n := normalize(raw)
	switch {
	case containsAny(n, "geotherm", "géotherm"):
		return HeatingGeothermal
	case containsAny(n, "pompe", "pac", "heat pump", "aerotherm", "aérotherm"):
		return HeatingHeatPump
	case containsAny(n, "solaire", "solar"):
		return HeatingSolar
	case containsAny(n, "poele", "poêle", "bois", "granul", "pellet"):
		return HeatingWoodStove
	case containsAny(n, "gaz", "gas"):
		return HeatingGas
	case containsAny(n, "elec", "élec"):
		return HeatingElectric
	default:
		return HeatingNone
	}
}

// KitchenTier grades the fitted kitchen.
type KitchenTier string

const (
	KitchenNone     KitchenTier = "none"
	KitchenBasic    KitchenTier = "basic"
	KitchenStandard KitchenTier = "standard"
	KitchenPremium  KitchenTier = "premium"
)

// ParseKitchenTier defaults to KitchenNone.
func ParseKitchenTier(raw string) KitchenTier {
	n := normalize(raw)
	switch {
	case containsAny(n, "premium", "haut"):
		return KitchenPremium
	case containsAny(n, "standard", "equipee", "équipée"):
		return KitchenStandard
	case containsAny(n, "basique", "basic", "simple", "kitchenette"):
		return KitchenBasic
	default:
		return KitchenNone
	}
}

// FinishTier is the interior finish level, also the quick estimator's
// level/economy multiplier.
type FinishTier string

const (
	FinishEconomic FinishTier = "economic"
	FinishStandard FinishTier = "standard"
	FinishPremium  FinishTier = "premium"
)

// ParseFinishTier defaults to FinishStandard.
func ParseFinishTier(raw string) FinishTier {
	n := normalize(raw)
	switch {
	case containsAny(n, "econom", "éco", "eco", "entree", "entrée"):
		return FinishEconomic
	case containsAny(n, "premium", "haut", "luxe", "standing"):
		return FinishPremium
	default:
		return FinishStandard
	}
}

// Activity is a professional client's business activity.
type Activity string

const (
	ActivityNone       Activity = "none"
	ActivityOffice     Activity = "office"
	ActivityRetail     Activity = "retail"
	ActivityRestaurant Activity = "restaurant"
	ActivityIndustry   Activity = "industry"
	ActivityHealth     Activity = "health"
)

// ParseActivity defaults to ActivityNone.
func ParseActivity(raw string) Activity {
	n := normalize(raw)
	switch {
	case containsAny(n, "bureau", "office", "tertiaire"):
		return ActivityOffice
	case containsAny(n, "commerce", "retail", "boutique", "magasin"):
		return ActivityRetail
	case containsAny(n, "restau", "hotel", "hôtel", "cafe", "café"):
		return ActivityRestaurant
	case containsAny(n, "industrie", "usine", "atelier", "entrepot", "entrepôt"):
		return ActivityIndustry
	case containsAny(n, "sante", "santé", "medical", "médical", "cabinet"):
		return ActivityHealth
	default:
		return ActivityNone
	}
}

// RenovationArea is one selectable renovation scope.
type RenovationArea string

const (
	AreaFacade     RenovationArea = "facade"
	AreaRoof       RenovationArea = "roof"
	AreaInsulation RenovationArea = "insulation"
	AreaElectrical RenovationArea = "electrical"
	AreaPlumbing   RenovationArea = "plumbing"
	AreaKitchen    RenovationArea = "kitchen"
	AreaBathroom   RenovationArea = "bathroom"
	AreaFlooring   RenovationArea = "flooring"
	AreaPainting   RenovationArea = "painting"
	AreaUnknown    RenovationArea = ""
)

// ParseRenovationArea returns AreaUnknown for unrecognized selections,
// which the engines ignore.
func ParseRenovationArea(raw string) RenovationArea {
	n := normalize(raw)
	switch {
	case containsAny(n, "facade", "façade", "ravalement", "gros oeuvre", "gros œuvre"):
		return AreaFacade
	case containsAny(n, "toit", "couverture", "charpente", "roof"):
		return AreaRoof
	case containsAny(n, "isolation", "thermique"):
		return AreaInsulation
	case containsAny(n, "elec", "élec"):
		return AreaElectrical
	case containsAny(n, "plomberie", "sanitaire"):
		return AreaPlumbing
	case containsAny(n, "cuisine"):
		return AreaKitchen
	case containsAny(n, "bain", "sdb", "douche"):
		return AreaBathroom
	case containsAny(n, "sol", "parquet", "carrelage"):
		return AreaFlooring
	case containsAny(n, "peinture", "mur"):
		return AreaPainting
	default:
		return AreaUnknown
	}
}

// ExteriorFeature is one selectable exterior amenity.
type ExteriorFeature string

const (
	FeatureNone    ExteriorFeature = "none"
	FeatureTerrace ExteriorFeature = "terrace"
	FeaturePool    ExteriorFeature = "pool"
	FeatureGarden  ExteriorFeature = "garden"
	FeatureFence   ExteriorFeature = "fence"
	FeatureGarage  ExteriorFeature = "garage"
	FeatureUnknown ExteriorFeature = ""
)

// ParseExteriorFeature returns FeatureUnknown for unrecognized selections,
// which the engines ignore. FeatureNone is only the explicit "none" answer.
func ParseExteriorFeature(raw string) ExteriorFeature {
	n := normalize(raw)
	switch {
	case containsAny(n, "aucun", "none", "rien"):
		return FeatureNone
	case containsAny(n, "terrasse"):
		return FeatureTerrace
	case containsAny(n, "piscine", "pool"):
		return FeaturePool
	case containsAny(n, "jardin", "paysag"):
		return FeatureGarden
	case containsAny(n, "cloture", "clôture", "portail", "fence"):
		return FeatureFence
	case containsAny(n, "garage", "abri", "carport"):
		return FeatureGarage
	default:
		return FeatureUnknown
	}
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
