// Package record defines the sparse answer record shared by every
// decision-plane component, its closed answer enumerations, and the
// number normalization applied at the input boundary.
package record

import "reflect"

// AnswerRecord is the single mutable, sparse answer set describing a
// project. Every field is independently optional: nil means "unknown",
// never "zero". Defaults are applied only inside the engines at
// computation time and are never written back. Fields are overwritten or
// left stale when a step becomes hidden, never deleted.
type AnswerRecord struct {
	// Classification
	ClientType     *string `json:"client_type,omitempty"`
	Activity       *string `json:"activity,omitempty"`
	ProjectType    *string `json:"project_type,omitempty"`
	EstimationMode *string `json:"estimation_mode,omitempty"`

	// Site
	City            *string `json:"city,omitempty"`
	TerrainType     *string `json:"terrain_type,omitempty"`
	TerrainSurface  *Number `json:"terrain_surface,omitempty"`
	ExistingSurface *Number `json:"existing_surface,omitempty"`
	Surface         *Number `json:"surface,omitempty"`
	LandPrice       *Number `json:"land_price,omitempty"`
	OwnsLand        *bool   `json:"owns_land,omitempty"`

	// Envelope & structure
	WallMaterial       *string `json:"wall_material,omitempty"`
	RoofStructure      *string `json:"roof_structure,omitempty"`
	AtticType          *string `json:"attic_type,omitempty"`
	RoofingMaterial    *string `json:"roofing_material,omitempty"`
	InsulationTier     *string `json:"insulation_tier,omitempty"`
	CladdingStonePct   *Number `json:"cladding_stone_pct,omitempty"`
	CladdingWoodPct    *Number `json:"cladding_wood_pct,omitempty"`
	CladdingRenderPct  *Number `json:"cladding_render_pct,omitempty"`
	WindowMaterial     *string `json:"window_material,omitempty"`
	WindowReplacedArea *Number `json:"window_replaced_area,omitempty"`
	WindowAddedArea    *Number `json:"window_added_area,omitempty"`

	// Systems
	ElectricalTier  *string `json:"electrical_tier,omitempty"`
	PlumbingTier    *string `json:"plumbing_tier,omitempty"`
	HeatingType     *string `json:"heating_type,omitempty"`
	AirConditioning *bool   `json:"air_conditioning,omitempty"`

	// Interior
	FinishTier      *string `json:"finish_tier,omitempty"`
	KitchenTier     *string `json:"kitchen_tier,omitempty"`
	BathroomTier    *string `json:"bathroom_tier,omitempty"`
	BathroomCount   *Number `json:"bathroom_count,omitempty"`
	FlooringType    *string `json:"flooring_type,omitempty"`
	PaintFinish     *string `json:"paint_finish,omitempty"`
	RoomCount       *Number `json:"room_count,omitempty"`
	BedroomCount    *Number `json:"bedroom_count,omitempty"`
	LivingRoomSize  *Number `json:"living_room_size,omitempty"`
	LivingRoomStyle *string `json:"living_room_style,omitempty"`

	// Exterior & options
	ExteriorFeatures []string `json:"exterior_features,omitempty"`
	RenewableEnergy  *string  `json:"renewable_energy,omitempty"`
	SmartHome        *bool    `json:"smart_home,omitempty"`

	// Renovation only
	DemolitionType    *string  `json:"demolition_type,omitempty"`
	DemolitionScope   *string  `json:"demolition_scope,omitempty"`
	RenovationAreas   []string `json:"renovation_areas,omitempty"`
	BuildingCondition *string  `json:"building_condition,omitempty"`

	// Contact / meta
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Message       *string `json:"message,omitempty"`
	TermsAccepted *bool   `json:"terms_accepted,omitempty"`
	RunningTotal  *Number `json:"running_total,omitempty"`
	TimelineYears *Number `json:"timeline_years,omitempty"`
}

// Merge applies a partial record onto the receiver: set fields of patch
// overwrite, unset fields leave the target untouched. Components never
// mutate a record directly; they produce patches and a single owner
// applies them here.
func (r *AnswerRecord) Merge(patch *AnswerRecord) {
	if patch == nil {
		return
	}
	dst := reflect.ValueOf(r).Elem()
	src := reflect.ValueOf(patch).Elem()
	for i := 0; i < src.NumField(); i++ {
		f := src.Field(i)
		switch f.Kind() {
		case reflect.Pointer, reflect.Slice:
			if !f.IsNil() {
				dst.Field(i).Set(f)
			}
		}
	}
}

// Clone returns a copy safe to hand to a concurrent caller. Pointer targets
// are shared but never mutated in place (Merge replaces pointers wholesale).
func (r *AnswerRecord) Clone() *AnswerRecord {
	if r == nil {
		return nil
	}
	c := *r
	if r.ExteriorFeatures != nil {
		c.ExteriorFeatures = append([]string(nil), r.ExteriorFeatures...)
	}
	if r.RenovationAreas != nil {
		c.RenovationAreas = append([]string(nil), r.RenovationAreas...)
	}
	return &c
}

// Str wraps a string for use in record literals and patches.
func Str(v string) *string { return &v }

// Bool wraps a bool for use in record literals and patches.
func Bool(v bool) *bool { return &v }

// ExplicitClientType parses the client type only when answered.
func (r *AnswerRecord) ExplicitClientType() (ClientType, bool) {
	if r.ClientType == nil || *r.ClientType == "" {
		return "", false
	}
	return ParseClientType(*r.ClientType), true
}

// ExplicitProjectType parses the project type only when answered.
func (r *AnswerRecord) ExplicitProjectType() (ProjectType, bool) {
	if r.ProjectType == nil || *r.ProjectType == "" {
		return "", false
	}
	return ParseProjectType(*r.ProjectType), true
}

// ExplicitMode parses the estimation mode only when answered.
func (r *AnswerRecord) ExplicitMode() (EstimationMode, bool) {
	if r.EstimationMode == nil || *r.EstimationMode == "" {
		return "", false
	}
	return ParseEstimationMode(*r.EstimationMode), true
}

// HasRenovationArea reports whether the given area is among the selected
// renovation scopes.
func (r *AnswerRecord) HasRenovationArea(area RenovationArea) bool {
	for _, raw := range r.RenovationAreas {
		if ParseRenovationArea(raw) == area {
			return true
		}
	}
	return false
}

// HasExteriorFeature reports whether the given amenity was selected.
func (r *AnswerRecord) HasExteriorFeature(f ExteriorFeature) bool {
	for _, raw := range r.ExteriorFeatures {
		if ParseExteriorFeature(raw) == f {
			return true
		}
	}
	return false
}
