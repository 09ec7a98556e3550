// Package model defines the value objects exchanged between the decision
// engine, its data collaborators, and the CLI. All types are constructed per
// evaluation and never mutated afterwards.
package model

// Location identifies an evaluated candidate site.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city,omitempty"`
}

// SuitableArea is one candidate area inside a land analysis payload.
type SuitableArea struct {
	Name             string  `json:"name,omitempty"`
	AreaKm2          float64 `json:"area_km2,omitempty"`
	SuitabilityScore float64 `json:"suitability_score"`
}

// LandUse holds land-cover ratios for the analyzed region. Ratios are
// fractions of total area in [0,1]; absent classes stay at zero.
type LandUse struct {
	BareLand   float64 `json:"bare_land"`
	Vegetation float64 `json:"vegetation"`
	Water      float64 `json:"water"`
	BuiltUp    float64 `json:"built_up"`
}

// LandAnalysis is the land-use payload supplied by an external analysis
// collaborator.
type LandAnalysis struct {
	SuitableAreas []SuitableArea `json:"suitable_areas"`
	Constraints   []string       `json:"constraints"`
	LandUse       LandUse        `json:"land_use_distribution"`
}

// RenewablePotential summarizes projected renewable generation for a site.
type RenewablePotential struct {
	AnnualGenerationMWh float64 `json:"annual_generation_mwh"`
}

// StorageAssessment summarizes energy storage coverage for a site.
// RenewableCoverage is the fraction of demand coverable by renewables, [0,1].
type StorageAssessment struct {
	RenewableCoverage float64 `json:"renewable_coverage"`
}

// GridStability is the qualitative stability label reported by the grid
// assessment collaborator. Unknown labels are allowed and map to a default
// bonus during scoring.
type GridStability string

const (
	GridStabilitySufficient   GridStability = "sufficient"
	GridStabilityGood         GridStability = "good"
	GridStabilityTight        GridStability = "tight"
	GridStabilityInsufficient GridStability = "insufficient"
)

// GridAssessment summarizes grid interconnection conditions.
type GridAssessment struct {
	AvailableCapacityMW float64       `json:"available_capacity_mw"`
	Stability           GridStability `json:"grid_stability"`
}

// EnergyAssessment is the energy payload supplied by an external assessment
// collaborator.
type EnergyAssessment struct {
	Renewable RenewablePotential `json:"renewable_potential"`
	Storage   StorageAssessment  `json:"storage_assessment"`
	Grid      GridAssessment     `json:"grid_assessment"`
}
