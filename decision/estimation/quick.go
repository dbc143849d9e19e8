package estimation

import (
	"math"

	"bati-cost/decision/record"
)

// ComputeQuickEstimation runs the quick estimator with the default rates.
func ComputeQuickEstimation(r *record.AnswerRecord) float64 {
	return defaultEngine.ComputeQuick(r)
}

// ComputeQuick is the coarse estimator used in summary and chat contexts.
// It is a deliberately looser approximation than Compute and is kept as a
// distinct entry point: a base €/m² price scaled by client, activity,
// finish-level and mode multipliers, then layered with upgrade surcharges
// for the answers that were explicitly given, then inflated to the planned
// start date. Unanswered fields contribute nothing beyond the base price.
func (e *Engine) ComputeQuick(r *record.AnswerRecord) float64 {
	if r == nil {
		r = &record.AnswerRecord{}
	}
	b := e.rates
	q := b.Quick

	surface := b.DefaultSurface
	if r.Surface != nil && r.Surface.Float64() > 0 {
		surface = r.Surface.Float64()
	}

	projectType := record.ParseProjectType(deref(r.ProjectType))
	clientType := record.ParseClientType(deref(r.ClientType))

	total := q.BasePrice[projectType] * surface
	total *= q.ClientMultiplier[clientType]
	if clientType == record.ClientProfessional {
		total *= q.ActivityMultiplier[record.ParseActivity(deref(r.Activity))]
	}
	total *= q.LevelMultiplier[record.ParseFinishTier(deref(r.FinishTier))]
	total *= q.ModeMultiplier[record.ParseEstimationMode(deref(r.EstimationMode))]

	// Upgrade surcharges, same unit rates as the detailed engine, applied
	// only to explicit answers.
	structuralBase := b.StructuralBase[projectType]
	if r.TerrainType != nil {
		coef := b.TerrainCoefficient[record.ParseTerrainType(*r.TerrainType)]
		total += surface * structuralBase * (coef - 1)
	}
	if r.WallMaterial != nil {
		coef := b.WallCoefficient[record.ParseWallMaterial(*r.WallMaterial)]
		total += surface * structuralBase * (coef - 1)
	}
	if r.RoofStructure != nil {
		coef := b.RoofCoefficient[record.ParseRoofStructure(*r.RoofStructure)]
		total += surface * b.RoofRate * (coef - 1)
	}
	if r.InsulationTier != nil {
		coef := b.InsulationCoefficient[record.ParseInsulationTier(*r.InsulationTier)]
		total += surface * b.InsulationRate * (coef - 1)
	}
	if r.WindowMaterial != nil {
		coef := b.WindowCoefficient[record.ParseWindowMaterial(*r.WindowMaterial)]
		total += surface * b.WindowAreaRatio * b.WindowRate * (coef - 1)
	}
	if r.AirConditioning != nil && *r.AirConditioning {
		total += surface * b.AirConditioningRate
	}
	if r.HeatingType != nil {
		total += surface * b.HeatingSurcharge[record.ParseHeatingType(*r.HeatingType)]
	}
	if r.KitchenTier != nil {
		total += b.KitchenPrice[record.ParseKitchenTier(*r.KitchenTier)]
	}
	if r.BathroomCount != nil && r.BathroomCount.Float64() > 0 {
		total += r.BathroomCount.Float64() * b.BathroomPrice
	}

	// Time value: inflate to the planned start date.
	if years := r.TimelineYears.Float64(); years > 0 {
		total *= math.Pow(1+q.InflationRate, years)
	}

	return total
}
