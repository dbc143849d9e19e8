// Package estimation provides the pricing rule engines: the detailed
// multi-trade estimator and the deliberately coarser quick estimator.
// Both are pure, total and deterministic: any missing or malformed answer
// is replaced by its documented default so a complete estimate is always
// producible.
package estimation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"bati-cost/decision/record"
)

// Trade names, in computation order.
const (
	TradeStructural = "Gros œuvre"
	TradeRoof       = "Charpente / Couverture"
	TradeInsulation = "Isolation"
	TradeWindows    = "Menuiseries extérieures"
	TradeElectrical = "Électricité"
	TradePlumbing   = "Plomberie / Chauffage"
	TradePartition  = "Cloisons / Plâtrerie"
	TradeFinishes   = "Revêtements / Finitions"
	TradeKitchen    = "Cuisine / Salles de bain"
	TradeExterior   = "Aménagements extérieurs"
)

// TradeCost is one priced construction discipline.
type TradeCost struct {
	Name     string          `json:"name"`
	AmountHT decimal.Decimal `json:"amount_ht"`
	Details  []string        `json:"details,omitempty"`
}

// EstimationResult is the itemized output of the detailed engine. Created
// fresh on every computation and never mutated in place; the land addendum
// annotates a copy (see WithLand).
type EstimationResult struct {
	TotalHT  decimal.Decimal `json:"total_ht"`
	VAT      decimal.Decimal `json:"vat"`
	TotalTTC decimal.Decimal `json:"total_ttc"`

	// Trades holds the per-trade breakdown in the fixed computation
	// order. Trade order is part of the result's identity, so this is a
	// slice rather than a map.
	Trades []TradeCost `json:"trades"`

	FeeRate decimal.Decimal `json:"fee_rate"`
	FeesHT  decimal.Decimal `json:"fees_ht"`
	FeesTTC decimal.Decimal `json:"fees_ttc"`

	DevelopmentTax     decimal.Decimal `json:"development_tax"`
	GeotechnicalStudy  decimal.Decimal `json:"geotechnical_study"`
	ThermalStudy       decimal.Decimal `json:"thermal_study"`
	DecennialGuarantee decimal.Decimal `json:"decennial_guarantee"`

	GlobalCostHT  decimal.Decimal `json:"global_cost_ht"`
	GlobalCostTTC decimal.Decimal `json:"global_cost_ttc"`

	// Land addendum, set only by WithLand.
	LandPrice          *decimal.Decimal `json:"land_price,omitempty"`
	NotaryFee          *decimal.Decimal `json:"notary_fee,omitempty"`
	GlobalCostWithLand *decimal.Decimal `json:"global_cost_with_land,omitempty"`

	// Assumptions records every default the engine substituted for a
	// missing answer. Deterministic for a given record snapshot.
	Assumptions []string `json:"assumptions,omitempty"`
}

// TradesByName gives keyed access to the ordered breakdown.
func (r EstimationResult) TradesByName() map[string]TradeCost {
	m := make(map[string]TradeCost, len(r.Trades))
	for _, t := range r.Trades {
		m[t.Name] = t
	}
	return m
}

// WithLand returns a copy annotated with the land purchase addendum:
// notary fee at the statutory rate, and the all-in cost including land.
func (r EstimationResult) WithLand(landPrice, notaryRate decimal.Decimal) EstimationResult {
	out := r
	notary := landPrice.Mul(notaryRate)
	withLand := r.GlobalCostTTC.Add(landPrice).Add(notary)
	out.LandPrice = &landPrice
	out.NotaryFee = &notary
	out.GlobalCostWithLand = &withLand
	return out
}

// Engine prices answer records against a rate book.
type Engine struct {
	rates *RateBook
}

// NewEngine creates an engine; a nil book selects the compiled-in rates.
func NewEngine(rates *RateBook) *Engine {
	if rates == nil {
		rates = DefaultRateBook()
	}
	return &Engine{rates: rates}
}

// Rates exposes the active rate book.
func (e *Engine) Rates() *RateBook { return e.rates }

var defaultEngine = NewEngine(nil)

// ComputeEstimation runs the detailed engine with the default rate book.
func ComputeEstimation(r *record.AnswerRecord) EstimationResult {
	return defaultEngine.Compute(r)
}

// Compute produces the itemized estimate for a record snapshot. It never
// fails: missing fields take their documented defaults, and every default
// taken is reported in Assumptions.
func (e *Engine) Compute(r *record.AnswerRecord) EstimationResult {
	if r == nil {
		r = &record.AnswerRecord{}
	}
	b := e.rates
	res := EstimationResult{}

	surface, assumed := e.surface(r)
	if assumed {
		res.Assumptions = append(res.Assumptions,
			fmt.Sprintf("surface non renseignée : %.0f m² par défaut", surface))
	}
	s := decimal.NewFromFloat(surface)

	projectType := record.ProjectConstruction
	if pt, ok := r.ExplicitProjectType(); ok {
		projectType = pt
	} else {
		res.Assumptions = append(res.Assumptions, "type de projet non renseigné : construction neuve par défaut")
	}
	isRenovation := projectType == record.ProjectRenovation

	// 1. Structural work
	if amount, details := e.structural(r, projectType, s); amount.IsPositive() {
		res.Trades = append(res.Trades, TradeCost{Name: TradeStructural, AmountHT: amount, Details: details})
	}

	// 2. Roof / framing
	if !isRenovation || r.HasRenovationArea(record.AreaRoof) {
		rate := b.RoofRate
		if isRenovation {
			rate = b.RoofRenovationRate
		}
		coef := b.RoofCoefficient[record.ParseRoofStructure(deref(r.RoofStructure))]
		amount := s.Mul(decimal.NewFromFloat(rate)).Mul(decimal.NewFromFloat(coef))
		res.Trades = append(res.Trades, TradeCost{
			Name:     TradeRoof,
			AmountHT: amount,
			Details:  []string{fmt.Sprintf("%s m² × %.0f €/m² × %.2f (charpente)", s, rate, coef)},
		})
	}

	// 3. Insulation
	if !isRenovation || r.HasRenovationArea(record.AreaInsulation) {
		coef := b.InsulationCoefficient[record.ParseInsulationTier(deref(r.InsulationTier))]
		amount := s.Mul(decimal.NewFromFloat(b.InsulationRate)).Mul(decimal.NewFromFloat(coef))
		res.Trades = append(res.Trades, TradeCost{
			Name:     TradeInsulation,
			AmountHT: amount,
			Details:  []string{fmt.Sprintf("%s m² × %.0f €/m² × %.2f (niveau)", s, b.InsulationRate, coef)},
		})
	}

	// 4. Exterior joinery, with window area modeled as a fraction of floor area
	{
		coef := b.WindowCoefficient[record.ParseWindowMaterial(deref(r.WindowMaterial))]
		windowArea := s.Mul(decimal.NewFromFloat(b.WindowAreaRatio))
		amount := windowArea.Mul(decimal.NewFromFloat(b.WindowRate)).Mul(decimal.NewFromFloat(coef))
		res.Trades = append(res.Trades, TradeCost{
			Name:     TradeWindows,
			AmountHT: amount,
			Details:  []string{fmt.Sprintf("%s m² de vitrage × %.0f €/m² × %.2f (matériau)", windowArea, b.WindowRate, coef)},
		})
	}

	// 5. Electrical
	{
		amount := s.Mul(decimal.NewFromFloat(b.ElectricalRate))
		details := []string{fmt.Sprintf("%s m² × %.0f €/m²", s, b.ElectricalRate)}
		if r.AirConditioning != nil && *r.AirConditioning {
			ac := s.Mul(decimal.NewFromFloat(b.AirConditioningRate))
			amount = amount.Add(ac)
			details = append(details, fmt.Sprintf("climatisation : %s m² × %.0f €/m²", s, b.AirConditioningRate))
		}
		res.Trades = append(res.Trades, TradeCost{Name: TradeElectrical, AmountHT: amount, Details: details})
	}

	// 6. Plumbing & heating
	{
		amount := s.Mul(decimal.NewFromFloat(b.PlumbingRate))
		details := []string{fmt.Sprintf("%s m² × %.0f €/m²", s, b.PlumbingRate)}
		heating := record.ParseHeatingType(deref(r.HeatingType))
		if surcharge := b.HeatingSurcharge[heating]; surcharge > 0 {
			h := s.Mul(decimal.NewFromFloat(surcharge))
			amount = amount.Add(h)
			details = append(details, fmt.Sprintf("chauffage %s : %s m² × %.0f €/m²", heating, s, surcharge))
		}
		res.Trades = append(res.Trades, TradeCost{Name: TradePlumbing, AmountHT: amount, Details: details})
	}

	// 7. Interior partitions / plaster
	res.Trades = append(res.Trades, TradeCost{
		Name:     TradePartition,
		AmountHT: s.Mul(decimal.NewFromFloat(b.PartitionRate)),
		Details:  []string{fmt.Sprintf("%s m² × %.0f €/m²", s, b.PartitionRate)},
	})

	// 8. Finishes / coverings
	res.Trades = append(res.Trades, TradeCost{
		Name:     TradeFinishes,
		AmountHT: s.Mul(decimal.NewFromFloat(b.FinishRate)),
		Details:  []string{fmt.Sprintf("%s m² × %.0f €/m²", s, b.FinishRate)},
	})

	// 9. Kitchen & bathrooms
	{
		kitchen := record.ParseKitchenTier(deref(r.KitchenTier))
		amount := decimal.NewFromFloat(b.KitchenPrice[kitchen])
		var details []string
		if amount.IsPositive() {
			details = append(details, fmt.Sprintf("cuisine %s : %s", kitchen, amount))
		}
		baths := 1.0
		if r.BathroomCount != nil && r.BathroomCount.Float64() > 0 {
			baths = r.BathroomCount.Float64()
		}
		bathAmount := decimal.NewFromFloat(baths).Mul(decimal.NewFromFloat(b.BathroomPrice))
		amount = amount.Add(bathAmount)
		details = append(details, fmt.Sprintf("%.0f salle(s) de bain × %.0f €", baths, b.BathroomPrice))
		res.Trades = append(res.Trades, TradeCost{Name: TradeKitchen, AmountHT: amount, Details: details})
	}

	// 10. Exterior amenities
	if len(r.ExteriorFeatures) > 0 && !r.HasExteriorFeature(record.FeatureNone) {
		amount := decimal.Zero
		var details []string
		if r.HasExteriorFeature(record.FeatureTerrace) {
			area := minf(surface*b.TerraceAreaRatio, b.TerraceAreaCap)
			t := decimal.NewFromFloat(b.TerraceRate).Mul(decimal.NewFromFloat(area))
			amount = amount.Add(t)
			details = append(details, fmt.Sprintf("terrasse %.0f m² × %.0f €/m²", area, b.TerraceRate))
		}
		for _, opt := range []struct {
			feature record.ExteriorFeature
			price   float64
			label   string
		}{
			{record.FeaturePool, b.PoolPrice, "piscine"},
			{record.FeatureGarden, b.GardenPrice, "jardin paysager"},
			{record.FeatureFence, b.FencePrice, "clôture / portail"},
			{record.FeatureGarage, b.GaragePrice, "garage / abri"},
		} {
			if r.HasExteriorFeature(opt.feature) {
				amount = amount.Add(decimal.NewFromFloat(opt.price))
				details = append(details, fmt.Sprintf("%s : %.0f €", opt.label, opt.price))
			}
		}
		if amount.IsPositive() {
			res.Trades = append(res.Trades, TradeCost{Name: TradeExterior, AmountHT: amount, Details: details})
		}
	}

	// Totals and VAT
	total := decimal.Zero
	for _, t := range res.Trades {
		total = total.Add(t.AmountHT)
	}
	vat := decimal.NewFromFloat(b.VATRate)
	res.TotalHT = total
	res.VAT = total.Mul(vat)
	res.TotalTTC = total.Add(res.VAT)

	// Degressive fee schedule
	feeRate := b.FeeRate(totalFloat(total))
	res.FeeRate = decimal.NewFromFloat(feeRate)
	res.FeesHT = total.Mul(res.FeeRate)
	res.FeesTTC = res.FeesHT.Add(res.FeesHT.Mul(vat))

	// Statutory and ancillary costs
	cityRate := b.DefaultCityTaxRate
	if r.City != nil && *r.City != "" {
		cityRate = b.CityTaxRate(*r.City)
	} else {
		res.Assumptions = append(res.Assumptions,
			fmt.Sprintf("commune non renseignée : taxe d'aménagement au taux par défaut %.1f %%", b.DefaultCityTaxRate*100))
	}
	res.DevelopmentTax = s.Mul(decimal.NewFromFloat(b.DevelopmentTaxBase)).Mul(decimal.NewFromFloat(cityRate))

	res.GeotechnicalStudy = cappedStudy(surface, b.GeotechBase, b.GeotechPerM2, b.GeotechCap)
	res.ThermalStudy = cappedStudy(surface, b.ThermalBase, b.ThermalPerM2, b.ThermalCap)
	res.DecennialGuarantee = total.Mul(decimal.NewFromFloat(b.DecennialRate))

	res.GlobalCostHT = total.
		Add(res.FeesHT).
		Add(res.GeotechnicalStudy).
		Add(res.ThermalStudy).
		Add(res.DecennialGuarantee)
	// The development tax is already tax-inclusive: it is added after the
	// VAT application, not before.
	res.GlobalCostTTC = res.GlobalCostHT.Add(res.GlobalCostHT.Mul(vat)).Add(res.DevelopmentTax)

	return res
}

// ComputeWithLand runs Compute and, when a land price is known, annotates
// the result with the land addendum.
func (e *Engine) ComputeWithLand(r *record.AnswerRecord) EstimationResult {
	res := e.Compute(r)
	if r != nil && r.LandPrice != nil && r.LandPrice.Float64() > 0 {
		res = res.WithLand(
			decimal.NewFromFloat(r.LandPrice.Float64()),
			decimal.NewFromFloat(e.rates.NotaryRate),
		)
	}
	return res
}

func (e *Engine) surface(r *record.AnswerRecord) (float64, bool) {
	if r.Surface != nil && r.Surface.Float64() > 0 {
		return r.Surface.Float64(), false
	}
	return e.rates.DefaultSurface, true
}

func (e *Engine) structural(r *record.AnswerRecord, projectType record.ProjectType, s decimal.Decimal) (decimal.Decimal, []string) {
	b := e.rates
	if projectType == record.ProjectRenovation && !r.HasRenovationArea(record.AreaFacade) {
		return decimal.Zero, nil
	}
	base := b.StructuralBase[projectType]
	if base <= 0 {
		return decimal.Zero, nil
	}
	wallCoef := b.WallCoefficient[record.ParseWallMaterial(deref(r.WallMaterial))]
	terrainCoef := b.TerrainCoefficient[record.ParseTerrainType(deref(r.TerrainType))]
	amount := s.
		Mul(decimal.NewFromFloat(base)).
		Mul(decimal.NewFromFloat(wallCoef)).
		Mul(decimal.NewFromFloat(terrainCoef))
	detail := fmt.Sprintf("%s m² × %.0f €/m² × %.2f (murs) × %.2f (terrain)", s, base, wallCoef, terrainCoef)
	return amount, []string{detail}
}

func cappedStudy(surface, base, perM2, ceiling float64) decimal.Decimal {
	return decimal.NewFromFloat(minf(base+surface*perM2, ceiling))
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func totalFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
