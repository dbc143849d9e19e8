package estimation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bati-cost/decision/record"
)

// FeeBracket is one step of the degressive fee schedule. UpTo is the
// exclusive upper bound on the pre-tax total; zero marks the open bracket.
type FeeBracket struct {
	UpTo float64 `yaml:"up_to"`
	Rate float64 `yaml:"rate"`
}

// QuickRates parameterizes the coarse estimator.
type QuickRates struct {
	BasePrice          map[record.ProjectType]float64    `yaml:"base_price"`
	ClientMultiplier   map[record.ClientType]float64     `yaml:"client_multiplier"`
	ActivityMultiplier map[record.Activity]float64       `yaml:"activity_multiplier"`
	LevelMultiplier    map[record.FinishTier]float64     `yaml:"level_multiplier"`
	ModeMultiplier     map[record.EstimationMode]float64 `yaml:"mode_multiplier"`
	InflationRate      float64                           `yaml:"inflation_rate"`
}

// RateBook bundles every unit rate, coefficient table and statutory
// parameter the engines price against. A book can be overlaid from a YAML
// file; omitted keys keep their compiled-in defaults.
type RateBook struct {
	DefaultSurface float64 `yaml:"default_surface"`

	// Structural work (trade 1)
	StructuralBase       map[record.ProjectType]float64 `yaml:"structural_base"`
	WallCoefficient      map[record.WallMaterial]float64 `yaml:"wall_coefficients"`
	TerrainCoefficient   map[record.TerrainType]float64  `yaml:"terrain_coefficients"`

	// Roof / framing (trade 2)
	RoofRate           float64                           `yaml:"roof_rate"`
	RoofRenovationRate float64                           `yaml:"roof_renovation_rate"`
	RoofCoefficient    map[record.RoofStructure]float64  `yaml:"roof_coefficients"`

	// Insulation (trade 3)
	InsulationRate        float64                          `yaml:"insulation_rate"`
	InsulationCoefficient map[record.InsulationTier]float64 `yaml:"insulation_coefficients"`

	// Exterior joinery (trade 4)
	WindowAreaRatio   float64                           `yaml:"window_area_ratio"`
	WindowRate        float64                           `yaml:"window_rate"`
	WindowCoefficient map[record.WindowMaterial]float64 `yaml:"window_coefficients"`

	// Electrical (trade 5)
	ElectricalRate      float64 `yaml:"electrical_rate"`
	AirConditioningRate float64 `yaml:"air_conditioning_rate"`

	// Plumbing & heating (trade 6)
	PlumbingRate     float64                         `yaml:"plumbing_rate"`
	HeatingSurcharge map[record.HeatingType]float64  `yaml:"heating_surcharges"`

	// Partitions and finishes (trades 7-8)
	PartitionRate float64 `yaml:"partition_rate"`
	FinishRate    float64 `yaml:"finish_rate"`

	// Kitchen & bathrooms (trade 9)
	KitchenPrice  map[record.KitchenTier]float64 `yaml:"kitchen_prices"`
	BathroomPrice float64                        `yaml:"bathroom_price"`

	// Exterior amenities (trade 10)
	TerraceRate      float64 `yaml:"terrace_rate"`
	TerraceAreaRatio float64 `yaml:"terrace_area_ratio"`
	TerraceAreaCap   float64 `yaml:"terrace_area_cap"`
	PoolPrice        float64 `yaml:"pool_price"`
	GardenPrice      float64 `yaml:"garden_price"`
	FencePrice       float64 `yaml:"fence_price"`
	GaragePrice      float64 `yaml:"garage_price"`

	// Taxes, fees and statutory costs
	VATRate            float64            `yaml:"vat_rate"`
	FeeBrackets        []FeeBracket       `yaml:"fee_brackets"`
	DevelopmentTaxBase float64            `yaml:"development_tax_base"`
	DefaultCityTaxRate float64            `yaml:"default_city_tax_rate"`
	CityTaxRates       map[string]float64 `yaml:"city_tax_rates"`
	GeotechBase        float64            `yaml:"geotech_base"`
	GeotechPerM2       float64            `yaml:"geotech_per_m2"`
	GeotechCap         float64            `yaml:"geotech_cap"`
	ThermalBase        float64            `yaml:"thermal_base"`
	ThermalPerM2       float64            `yaml:"thermal_per_m2"`
	ThermalCap         float64            `yaml:"thermal_cap"`
	DecennialRate      float64            `yaml:"decennial_rate"`
	NotaryRate         float64            `yaml:"notary_rate"`

	Quick QuickRates `yaml:"quick"`
}

// DefaultRateBook returns the compiled-in rate book.
func DefaultRateBook() *RateBook {
	return &RateBook{
		DefaultSurface: 100,

		StructuralBase: map[record.ProjectType]float64{
			record.ProjectConstruction: 450,
			record.ProjectExtension:    480,
			record.ProjectElevation:    550,
			record.ProjectRenovation:   180, // façade work only
			record.ProjectOptimization: 300,
			record.ProjectDivision:     350,
			record.ProjectDesign:       0,
		},
		WallCoefficient: map[record.WallMaterial]float64{
			record.WallBrick:            1.0,
			record.WallConcreteBlock:    0.95,
			record.WallCellularConcrete: 1.05,
			record.WallWoodFrame:        1.1,
			record.WallSteelFrame:       1.2,
			record.WallStone:            1.3,
		},
		TerrainCoefficient: map[record.TerrainType]float64{
			record.TerrainFlat:          1.0,
			record.TerrainGentleSlope:   1.1,
			record.TerrainSteepSlope:    1.25,
			record.TerrainRocky:         1.3,
			record.TerrainComplexAccess: 1.4,
		},

		RoofRate:           200,
		RoofRenovationRate: 180,
		RoofCoefficient: map[record.RoofStructure]float64{
			record.RoofTraditional: 1.0,
			record.RoofTruss:       0.9,
			record.RoofSingleSlope: 0.95,
			record.RoofFlat:        1.1,
		},

		InsulationRate: 120,
		InsulationCoefficient: map[record.InsulationTier]float64{
			record.InsulationBasic:      0.9,
			record.InsulationStandard:   1.0,
			record.InsulationReinforced: 1.25,
		},

		WindowAreaRatio: 0.15,
		WindowRate:      900,
		WindowCoefficient: map[record.WindowMaterial]float64{
			record.WindowPVC:          1.0,
			record.WindowAluminum:     1.2,
			record.WindowWood:         1.3,
			record.WindowWoodAluminum: 1.4,
		},

		ElectricalRate:      90,
		AirConditioningRate: 120,

		PlumbingRate: 80,
		HeatingSurcharge: map[record.HeatingType]float64{
			record.HeatingNone:       0,
			record.HeatingElectric:   50,
			record.HeatingWoodStove:  70,
			record.HeatingGas:        90,
			record.HeatingHeatPump:   160,
			record.HeatingSolar:      180,
			record.HeatingGeothermal: 220,
		},

		PartitionRate: 110,
		FinishRate:    130,

		KitchenPrice: map[record.KitchenTier]float64{
			record.KitchenNone:     0,
			record.KitchenBasic:    8000,
			record.KitchenStandard: 15000,
			record.KitchenPremium:  25000,
		},
		BathroomPrice: 7000,

		TerraceRate:      200,
		TerraceAreaRatio: 0.3,
		TerraceAreaCap:   50,
		PoolPrice:        25000,
		GardenPrice:      8000,
		FencePrice:       5000,
		GaragePrice:      15000,

		VATRate: 0.20,
		FeeBrackets: []FeeBracket{
			{UpTo: 100_000, Rate: 0.12},
			{UpTo: 200_000, Rate: 0.10},
			{UpTo: 500_000, Rate: 0.09},
			{UpTo: 1_000_000, Rate: 0.08},
			{UpTo: 0, Rate: 0.07},
		},
		DevelopmentTaxBase: 767,
		DefaultCityTaxRate: 0.05,
		CityTaxRates: map[string]float64{
			"paris":     0.05,
			"marseille": 0.05,
			"lyon":      0.045,
			"toulouse":  0.04,
			"nice":      0.048,
			"nantes":    0.042,
			"bordeaux":  0.046,
			"lille":     0.044,
		},
		GeotechBase:   3000,
		GeotechPerM2:  10,
		GeotechCap:    8000,
		ThermalBase:   2000,
		ThermalPerM2:  5,
		ThermalCap:    5000,
		DecennialRate: 0.025,
		NotaryRate:    0.07,

		Quick: QuickRates{
			BasePrice: map[record.ProjectType]float64{
				record.ProjectConstruction: 1500,
				record.ProjectRenovation:   1100,
				record.ProjectExtension:    1350,
				record.ProjectElevation:    1500,
				record.ProjectOptimization: 800,
				record.ProjectDivision:     700,
				record.ProjectDesign:       120,
			},
			ClientMultiplier: map[record.ClientType]float64{
				record.ClientIndividual:   1.0,
				record.ClientProfessional: 1.1,
			},
			ActivityMultiplier: map[record.Activity]float64{
				record.ActivityNone:       1.0,
				record.ActivityOffice:     1.1,
				record.ActivityRetail:     1.15,
				record.ActivityRestaurant: 1.2,
				record.ActivityIndustry:   1.25,
				record.ActivityHealth:     1.2,
			},
			LevelMultiplier: map[record.FinishTier]float64{
				record.FinishEconomic: 0.9,
				record.FinishStandard: 1.0,
				record.FinishPremium:  1.2,
			},
			ModeMultiplier: map[record.EstimationMode]float64{
				record.ModeQuick:   1.0,
				record.ModePrecise: 1.05,
			},
			InflationRate: 0.025,
		},
	}
}

// LoadRateBook overlays a YAML file on the default book. Keys absent from
// the file keep their defaults.
func LoadRateBook(path string) (*RateBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rate book: %w", err)
	}
	book := DefaultRateBook()
	if err := yaml.Unmarshal(data, book); err != nil {
		return nil, fmt.Errorf("rate book %s: %w", path, err)
	}
	return book, nil
}

// FeeRate returns the degressive fee rate for a pre-tax total.
func (b *RateBook) FeeRate(totalHT float64) float64 {
	for _, br := range b.FeeBrackets {
		if br.UpTo > 0 && totalHT < br.UpTo {
			return br.Rate
		}
	}
	if n := len(b.FeeBrackets); n > 0 {
		return b.FeeBrackets[n-1].Rate
	}
	return 0
}

// CityTaxRate returns the local development-tax rate for a city, or the
// national default when the city is unknown.
func (b *RateBook) CityTaxRate(city string) float64 {
	if rate, ok := b.CityTaxRates[normalizeCity(city)]; ok {
		return rate
	}
	return b.DefaultCityTaxRate
}

func normalizeCity(city string) string {
	out := make([]rune, 0, len(city))
	for _, r := range city {
		switch r {
		case 'é', 'è', 'ê', 'ë':
			r = 'e'
		case 'à', 'â':
			r = 'a'
		case 'î', 'ï':
			r = 'i'
		case 'ô', 'ö':
			r = 'o'
		case 'û', 'ü', 'ù':
			r = 'u'
		case 'ç':
			r = 'c'
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if r == ' ' || r == '-' || r == '\'' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
