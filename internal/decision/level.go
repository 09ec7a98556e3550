// Package decision implements the categorical analysis path: five category
// scorers over external land/energy payloads, the weighted aggregator, the
// narrative recommendation rules, and the risk assessor.
package decision

import "github.com/gridpoint-labs/sitescout/internal/model"

// ClassifyLevel maps a 0-100 score to its qualitative level. Shared by the
// category scorers and the aggregator so the labels stay consistent.
func ClassifyLevel(score float64) model.ScoreLevel {
	switch {
	case score >= 90:
		return model.LevelExcellent
	case score >= 75:
		return model.LevelGood
	case score >= 60:
		return model.LevelFair
	case score >= 45:
		return model.LevelPoor
	default:
		return model.LevelVeryPoor
	}
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
