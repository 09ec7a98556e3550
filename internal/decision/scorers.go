package decision

import "github.com/gridpoint-labs/sitescout/internal/model"

// The scorers below are total: absent payload sub-fields are zero values and
// land in the lowest tier of their table instead of failing.

// stabilityBonus is the total mapping from grid stability labels to their
// score bonus. Labels outside the table get defaultStabilityBonus.
var stabilityBonus = map[model.GridStability]float64{
	model.GridStabilitySufficient:   20,
	model.GridStabilityGood:         15,
	model.GridStabilityTight:        5,
	model.GridStabilityInsufficient: 0,
}

const defaultStabilityBonus = 10

// ScoreLandSuitability scores land suitability: base 50, plus 30x the best
// candidate-area suitability, minus 5 per constraint, clamped to [0,100].
func ScoreLandSuitability(land model.LandAnalysis) model.CategoryScore {
	const base = 50.0

	var maxSuitability float64
	for _, area := range land.SuitableAreas {
		if area.SuitabilityScore > maxSuitability {
			maxSuitability = area.SuitabilityScore
		}
	}
	areaScore := maxSuitability * 30
	penalty := float64(len(land.Constraints)) * 5

	score := clamp100(base + areaScore - penalty)
	return model.CategoryScore{
		Score: score,
		Level: ClassifyLevel(score),
		Breakdown: map[string]float64{
			"base_score":           base,
			"area_score":           areaScore,
			"constraint_penalty":   penalty,
			"suitable_areas_count": float64(len(land.SuitableAreas)),
			"constraints_count":    float64(len(land.Constraints)),
		},
	}
}

// ScoreEnergyResources scores renewable potential and storage coverage:
// base 40 plus generation and coverage tier bonuses.
func ScoreEnergyResources(energy model.EnergyAssessment) model.CategoryScore {
	const base = 40.0

	annualGen := energy.Renewable.AnnualGenerationMWh
	var genScore float64
	switch {
	case annualGen > 100_000: // >100 GWh/yr
		genScore = 30
	case annualGen > 50_000:
		genScore = 25
	case annualGen > 20_000:
		genScore = 20
	default:
		genScore = 10
	}

	coverage := energy.Storage.RenewableCoverage
	var storageScore float64
	switch {
	case coverage > 0.8:
		storageScore = 20
	case coverage > 0.5:
		storageScore = 15
	case coverage > 0.3:
		storageScore = 10
	default:
		storageScore = 5
	}

	score := clamp100(base + genScore + storageScore)
	return model.CategoryScore{
		Score: score,
		Level: ClassifyLevel(score),
		Breakdown: map[string]float64{
			"base_score":            base,
			"renewable_score":       genScore,
			"storage_score":         storageScore,
			"annual_generation_mwh": annualGen,
			"renewable_coverage":    coverage,
		},
	}
}

// ScoreGridCapacity scores interconnection headroom and stability:
// base 50 plus capacity tier and stability bonuses.
func ScoreGridCapacity(grid model.GridAssessment) model.CategoryScore {
	const base = 50.0

	var capacityScore float64
	switch {
	case grid.AvailableCapacityMW > 200:
		capacityScore = 30
	case grid.AvailableCapacityMW > 100:
		capacityScore = 25
	case grid.AvailableCapacityMW > 50:
		capacityScore = 20
	default:
		capacityScore = 10
	}

	stability := defaultStabilityBonus * 1.0
	if bonus, ok := stabilityBonus[grid.Stability]; ok {
		stability = bonus
	}

	score := clamp100(base + capacityScore + stability)
	return model.CategoryScore{
		Score: score,
		Level: ClassifyLevel(score),
		Breakdown: map[string]float64{
			"base_score":            base,
			"capacity_score":        capacityScore,
			"stability_score":       stability,
			"available_capacity_mw": grid.AvailableCapacityMW,
		},
	}
}

// ScoreEconomicFeasibility scores land-cost and energy-cost conditions:
// base 60 plus bare-land and renewable-coverage tier bonuses.
func ScoreEconomicFeasibility(land model.LandAnalysis, energy model.EnergyAssessment) model.CategoryScore {
	const base = 60.0

	bareLand := land.LandUse.BareLand
	var landCostScore float64
	switch {
	case bareLand > 0.5:
		landCostScore = 20
	case bareLand > 0.3:
		landCostScore = 15
	default:
		landCostScore = 5
	}

	coverage := energy.Storage.RenewableCoverage
	var energyCostScore float64
	switch {
	case coverage > 0.7:
		energyCostScore = 20
	case coverage > 0.4:
		energyCostScore = 15
	default:
		energyCostScore = 5
	}

	score := clamp100(base + landCostScore + energyCostScore)
	return model.CategoryScore{
		Score: score,
		Level: ClassifyLevel(score),
		Breakdown: map[string]float64{
			"base_score":         base,
			"land_cost_score":    landCostScore,
			"energy_cost_score":  energyCostScore,
			"bare_land_ratio":    bareLand,
			"renewable_coverage": coverage,
		},
	}
}

// ScoreEnvironmentalImpact scores construction impact: base 70, a vegetation
// penalty or bonus, and a renewable-coverage bonus.
func ScoreEnvironmentalImpact(land model.LandAnalysis, energy model.EnergyAssessment) model.CategoryScore {
	const base = 70.0

	vegetation := land.LandUse.Vegetation
	var landImpact float64
	switch {
	case vegetation > 0.4:
		landImpact = -10
	case vegetation > 0.2:
		landImpact = 0
	default:
		landImpact = 10
	}

	coverage := energy.Storage.RenewableCoverage
	var renewableImpact float64
	switch {
	case coverage > 0.6:
		renewableImpact = 20
	case coverage > 0.3:
		renewableImpact = 10
	default:
		renewableImpact = 0
	}

	score := clamp100(base + landImpact + renewableImpact)
	return model.CategoryScore{
		Score: score,
		Level: ClassifyLevel(score),
		Breakdown: map[string]float64{
			"base_score":             base,
			"land_impact_score":      landImpact,
			"renewable_impact_score": renewableImpact,
			"vegetation_ratio":       vegetation,
			"renewable_coverage":     coverage,
		},
	}
}
