// Package siterank implements the outranking analysis path: goal-achievement
// aggregation of environmental and energy signals, the final ranking that
// blends the outranking-derived economic score with the comprehensive score,
// and the orchestration that ties providers and the outranking engine
// together for one site.
package siterank

import (
	"math"

	"github.com/gridpoint-labs/sitescout/internal/model"
)

// idealTemperature is the target annual mean temperature for the triangular
// suitability function.
const idealTemperature = 15.0

// GoalWeights is the immutable category weight table for the comprehensive
// score. Constructed once; never mutated.
type GoalWeights struct {
	Economic      float64 `yaml:"economic" mapstructure:"economic"`
	Environmental float64 `yaml:"environmental" mapstructure:"environmental"`
	Energy        float64 `yaml:"energy" mapstructure:"energy"`
}

// DefaultGoalWeights returns the standard goal weight table (sum = 1.0).
func DefaultGoalWeights() GoalWeights {
	return GoalWeights{Economic: 0.3, Environmental: 0.4, Energy: 0.3}
}

// GoalSet holds the 0-100 goal-achievement values for one site.
type GoalSet struct {
	EconomicScore          float64 `json:"economic_score"`
	TemperatureSuitability float64 `json:"temperature_suitability"`
	HydropowerScore        float64 `json:"hydropower_score"`
	WindScore              float64 `json:"wind_score"`
	AirQualityScore        float64 `json:"air_quality_score"`
	SolarScore             float64 `json:"solar_score"`
	RenewableScore         float64 `json:"renewable_score"`
}

// GoalResult is the outcome of the goal aggregation step.
type GoalResult struct {
	Goals         GoalSet     `json:"goals"`
	Weights       GoalWeights `json:"weights"`
	Comprehensive float64     `json:"comprehensive_score"`
}

// TemperatureSuitability converts an annual mean temperature to a 0-100
// goal value via a triangular closeness function around the ideal: within
// 2 degrees scores 100, within 5 scores 80, within 10 scores 60, and beyond
// that decays linearly with a floor at 0.
func TemperatureSuitability(temperature float64) float64 {
	diff := math.Abs(temperature - idealTemperature)
	switch {
	case diff <= 2:
		return 100
	case diff <= 5:
		return 80
	case diff <= 10:
		return 60
	default:
		return math.Max(40-diff*2, 0)
	}
}

// BuildGoals converts the outranking-derived economic score and the raw
// environmental/energy datasets into goal-achievement values. Resource
// abundances scale to 0-100; solar irradiance scales against a 2000 kWh/m2
// reference and caps at 100.
func BuildGoals(economicScore float64, env model.EnvironmentalData, energy model.EnergyData) GoalSet {
	return GoalSet{
		EconomicScore:          economicScore,
		TemperatureSuitability: TemperatureSuitability(env.AnnualTemperature),
		HydropowerScore:        env.Hydropower * 100,
		WindScore:              env.WindResources * 100,
		AirQualityScore:        env.AirQualityRate,
		SolarScore:             math.Min(energy.SolarIrradiance/2000*100, 100),
		RenewableScore:         energy.RenewableCoverage,
	}
}

// AggregateGoals computes the comprehensive score: the economic score plus
// the averaged environmental and energy sub-goals, combined under the
// category weights.
func AggregateGoals(goals GoalSet, w GoalWeights) GoalResult {
	envAvg := (goals.TemperatureSuitability + goals.HydropowerScore +
		goals.WindScore + goals.AirQualityScore) / 4
	energyAvg := (goals.SolarScore + goals.RenewableScore) / 2

	comprehensive := goals.EconomicScore*w.Economic +
		envAvg*w.Environmental +
		energyAvg*w.Energy

	return GoalResult{
		Goals:         goals,
		Weights:       w,
		Comprehensive: round2(comprehensive),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
