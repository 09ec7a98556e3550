package siterank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridpoint-labs/sitescout/internal/model"
)

func TestTemperatureSuitability(t *testing.T) {
	tests := []struct {
		name     string
		temp     float64
		expected float64
	}{
		{"at ideal", 15, 100},
		{"within 2 degrees", 16.9, 100},
		{"exactly 2 degrees", 17, 100},
		{"within 5 degrees", 19, 80},
		{"within 10 degrees", 24, 60},
		{"beyond 10 degrees decays", 27, 40 - 12*2}, // diff 12
		{"floors at zero", 45, 0},
		{"cold side symmetric", 11, 80}, // diff 4
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, TemperatureSuitability(tt.temp), 1e-9)
		})
	}
}

func TestBuildGoals(t *testing.T) {
	env := model.EnvironmentalData{
		AnnualTemperature: 15,
		Hydropower:        0.9,
		WindResources:     0.4,
		AirQualityRate:    95,
	}
	energy := model.EnergyData{
		SolarIrradiance:   1000,
		RenewableCoverage: 60,
	}

	g := BuildGoals(80, env, energy)
	assert.InDelta(t, 80, g.EconomicScore, 1e-9)
	assert.InDelta(t, 100, g.TemperatureSuitability, 1e-9)
	assert.InDelta(t, 90, g.HydropowerScore, 1e-9)
	assert.InDelta(t, 40, g.WindScore, 1e-9)
	assert.InDelta(t, 95, g.AirQualityScore, 1e-9)
	assert.InDelta(t, 50, g.SolarScore, 1e-9)
	assert.InDelta(t, 60, g.RenewableScore, 1e-9)
}

func TestBuildGoals_SolarCapsAt100(t *testing.T) {
	g := BuildGoals(0, model.EnvironmentalData{}, model.EnergyData{SolarIrradiance: 5000})
	assert.InDelta(t, 100, g.SolarScore, 1e-9)
}

func TestAggregateGoals(t *testing.T) {
	goals := GoalSet{
		EconomicScore:          80,
		TemperatureSuitability: 100,
		HydropowerScore:        90,
		WindScore:              40,
		AirQualityScore:        95,
		SolarScore:             50,
		RenewableScore:         60,
	}

	res := AggregateGoals(goals, DefaultGoalWeights())
	// 80*0.3 + 81.25*0.4 + 55*0.3 = 73
	assert.InDelta(t, 73, res.Comprehensive, 1e-9)
}

func TestCombineFinal_Thresholds(t *testing.T) {
	tests := []struct {
		name     string
		economic float64
		comp     float64
		score    float64
		level    model.ScoreLevel
		decision model.DecisionLevel
	}{
		{"excellent", 90, 90, 90, model.LevelExcellent, model.DecisionStronglyRecommend},
		{"exactly 85", 85, 85, 85, model.LevelExcellent, model.DecisionStronglyRecommend},
		{"good", 80, 73, 75.8, model.LevelGood, model.DecisionRecommend},
		{"exactly 70", 70, 70, 70, model.LevelGood, model.DecisionRecommend},
		{"fair", 60, 55, 57, model.LevelFair, model.DecisionConsider},
		{"poor", 40, 50, 46, model.LevelPoor, model.DecisionNotRecommended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fr := CombineFinal(tt.economic, tt.comp, DefaultFinalBlend())
			assert.InDelta(t, tt.score, fr.Score, 1e-9)
			assert.Equal(t, tt.level, fr.Level)
			assert.Equal(t, tt.decision, fr.Decision)
			assert.InDelta(t, fr.Score, fr.EconomicContribution+fr.ComprehensiveContribution, 0.02)
		})
	}
}

func TestBuildRecommendation(t *testing.T) {
	for _, level := range []model.ScoreLevel{model.LevelExcellent, model.LevelGood, model.LevelFair, model.LevelPoor} {
		rec := BuildRecommendation(FinalRanking{Level: level, Score: 50})
		assert.Equal(t, level, rec.Assessment)
		assert.Len(t, rec.Narrative, 3, level)
		assert.Len(t, rec.NextSteps, 3, level)
	}
}
