package decision

import (
	"time"

	"go.uber.org/zap"

	"github.com/gridpoint-labs/sitescout/internal/model"
)

// AnalyzeSite runs the full categorical analysis path: the five category
// scorers, the weighted aggregate, narrative recommendations, and the risk
// profile. Missing payload sub-fields are absorbed by the scorers; only an
// unusable weight table surfaces as an error.
func AnalyzeSite(land model.LandAnalysis, energy model.EnergyAssessment, w Weights) (*model.DecisionReport, error) {
	scores := map[model.Category]model.CategoryScore{
		model.CategoryLand:          ScoreLandSuitability(land),
		model.CategoryEnergy:        ScoreEnergyResources(energy),
		model.CategoryGrid:          ScoreGridCapacity(energy.Grid),
		model.CategoryEconomic:      ScoreEconomicFeasibility(land, energy),
		model.CategoryEnvironmental: ScoreEnvironmentalImpact(land, energy),
	}

	overall, err := Aggregate(scores, w)
	if err != nil {
		return nil, err
	}

	level := DecideLevel(overall.Score)
	report := &model.DecisionReport{
		Overall:         overall,
		Scores:          scores,
		DecisionLevel:   level,
		Recommendations: Recommendations(level, scores),
		Risk:            AssessRisk(land, energy),
		AnalyzedAt:      time.Now().UTC(),
	}

	zap.L().Info("decision: site analyzed",
		zap.Float64("overall_score", overall.Score),
		zap.String("level", string(overall.Level)),
		zap.String("decision", string(level)),
		zap.String("risk", string(report.Risk.Level)),
	)

	return report, nil
}
