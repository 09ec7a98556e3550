package siterank

import "github.com/gridpoint-labs/sitescout/internal/model"

// FinalBlend is the immutable blend table for the final score.
type FinalBlend struct {
	Economic      float64 `yaml:"economic" mapstructure:"economic"`
	Comprehensive float64 `yaml:"comprehensive" mapstructure:"comprehensive"`
}

// DefaultFinalBlend returns the standard blend (sum = 1.0).
func DefaultFinalBlend() FinalBlend {
	return FinalBlend{Economic: 0.4, Comprehensive: 0.6}
}

// FinalRanking is the blended final score with its level and decision tier.
type FinalRanking struct {
	Score                     float64             `json:"final_score"`
	Level                     model.ScoreLevel    `json:"level"`
	Decision                  model.DecisionLevel `json:"recommendation"`
	EconomicContribution      float64             `json:"economic_contribution"`
	ComprehensiveContribution float64             `json:"comprehensive_contribution"`
}

// CombineFinal blends the outranking economic score with the comprehensive
// score. Level thresholds: >=85 excellent/strongly recommend, >=70
// good/recommend, >=55 fair/consider, else poor/not recommended.
func CombineFinal(economicScore, comprehensive float64, blend FinalBlend) FinalRanking {
	final := economicScore*blend.Economic + comprehensive*blend.Comprehensive

	var level model.ScoreLevel
	var decision model.DecisionLevel
	switch {
	case final >= 85:
		level = model.LevelExcellent
		decision = model.DecisionStronglyRecommend
	case final >= 70:
		level = model.LevelGood
		decision = model.DecisionRecommend
	case final >= 55:
		level = model.LevelFair
		decision = model.DecisionConsider
	default:
		level = model.LevelPoor
		decision = model.DecisionNotRecommended
	}

	return FinalRanking{
		Score:                     round2(final),
		Level:                     level,
		Decision:                  decision,
		EconomicContribution:      round2(economicScore * blend.Economic),
		ComprehensiveContribution: round2(comprehensive * blend.Comprehensive),
	}
}

var narrativeByLevel = map[model.ScoreLevel][]string{
	model.LevelExcellent: {
		"The region is highly suitable for the facility.",
		"Prioritize this location among the candidates.",
		"A large campus-scale build is viable here.",
	},
	model.LevelGood: {
		"The region is suitable for the facility.",
		"Commission a detailed feasibility study.",
		"A mid-size build is the appropriate scale.",
	},
	model.LevelFair: {
		"The region can host the facility with targeted improvements.",
		"Upgrade supporting infrastructure before committing.",
		"A small build is the appropriate scale.",
	},
	model.LevelPoor: {
		"The region is not suitable for the facility.",
		"Look for alternative locations.",
		"Building here would require substantial investment in enabling conditions.",
	},
}

var nextStepsByLevel = map[model.ScoreLevel][]string{
	model.LevelExcellent: {
		"Run a full environmental impact assessment.",
		"Draft the construction plan.",
		"Apply for permits and approvals.",
	},
	model.LevelGood: {
		"Run a detailed technical feasibility study.",
		"Assess infrastructure upgrade needs.",
		"Draft a risk mitigation plan.",
	},
	model.LevelFair: {
		"Weigh improvement costs against expected benefit.",
		"Evaluate alternative candidates in parallel.",
		"Consider a phased build-out.",
	},
	model.LevelPoor: {
		"Revisit the siting criteria.",
		"Identify other candidate locations.",
		"Consider alternative deployment models.",
	},
}

// BuildRecommendation turns a final ranking into its narrative
// recommendation with ordered next steps.
func BuildRecommendation(fr FinalRanking) model.Recommendation {
	return model.Recommendation{
		Assessment: fr.Level,
		Score:      fr.Score,
		Narrative:  narrativeByLevel[fr.Level],
		NextSteps:  nextStepsByLevel[fr.Level],
	}
}
