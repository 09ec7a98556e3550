package model

import "time"

// ScoreLevel is a qualitative label derived from a numeric score.
type ScoreLevel string

const (
	LevelExcellent ScoreLevel = "excellent"
	LevelGood      ScoreLevel = "good"
	LevelFair      ScoreLevel = "fair"
	LevelPoor      ScoreLevel = "poor"
	LevelVeryPoor  ScoreLevel = "very_poor"
)

// Category names the five decision categories of the site analysis.
type Category string

const (
	CategoryLand          Category = "land_suitability"
	CategoryEnergy        Category = "energy_resources"
	CategoryGrid          Category = "grid_capacity"
	CategoryEconomic      Category = "economic_feasibility"
	CategoryEnvironmental Category = "environmental_impact"
)

// Categories lists all decision categories in aggregation order.
func Categories() []Category {
	return []Category{
		CategoryLand,
		CategoryEnergy,
		CategoryGrid,
		CategoryEconomic,
		CategoryEnvironmental,
	}
}

// CategoryScore is the outcome of one categorical scorer. Breakdown maps
// contributing term names to their values for explainability.
type CategoryScore struct {
	Score     float64            `json:"score"`
	Level     ScoreLevel         `json:"level"`
	Breakdown map[string]float64 `json:"breakdown"`
}

// OverallScore is the weighted aggregate over category scores.
type OverallScore struct {
	Score   float64              `json:"score"`
	Level   ScoreLevel           `json:"level"`
	Weights map[Category]float64 `json:"weights"`
}

// DecisionLevel is the recommendation tier derived from an overall score.
type DecisionLevel string

const (
	DecisionStronglyRecommend    DecisionLevel = "strongly_recommend"
	DecisionRecommend            DecisionLevel = "recommend"
	DecisionConsider             DecisionLevel = "consider"
	DecisionNotRecommended       DecisionLevel = "not_recommended"
	DecisionStronglyNotRecommend DecisionLevel = "strongly_not_recommended"
)

// RiskLevel is the qualitative risk tier for a site.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskProfile pairs identified risks with their mitigation measures.
// Risks and Mitigations are index-aligned.
type RiskProfile struct {
	Level       RiskLevel `json:"risk_level"`
	Risks       []string  `json:"risks"`
	Mitigations []string  `json:"mitigations"`
}

// Recommendation is the narrative output of the final ranking combiner.
type Recommendation struct {
	Assessment ScoreLevel `json:"overall_assessment"`
	Score      float64    `json:"score"`
	Narrative  []string   `json:"recommendations"`
	NextSteps  []string   `json:"next_steps"`
}

// DecisionReport is the full result of the categorical analysis path.
type DecisionReport struct {
	Overall         OverallScore               `json:"overall_score"`
	Scores          map[Category]CategoryScore `json:"detailed_scores"`
	DecisionLevel   DecisionLevel              `json:"decision_level"`
	Recommendations []string                   `json:"recommendations"`
	Risk            RiskProfile                `json:"risk_assessment"`
	AnalyzedAt      time.Time                  `json:"analyzed_at"`
}
