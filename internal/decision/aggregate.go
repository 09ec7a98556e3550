package decision

import (
	"github.com/rotisserie/eris"

	"github.com/gridpoint-labs/sitescout/internal/model"
)

// Weights is the immutable decision weight table over the five categories.
// Constructed once at startup and passed by reference; never mutated.
type Weights struct {
	Land          float64 `yaml:"land" mapstructure:"land"`
	Energy        float64 `yaml:"energy" mapstructure:"energy"`
	Grid          float64 `yaml:"grid" mapstructure:"grid"`
	Economic      float64 `yaml:"economic" mapstructure:"economic"`
	Environmental float64 `yaml:"environmental" mapstructure:"environmental"`
}

// DefaultWeights returns the standard decision weight table (sum = 1.0).
func DefaultWeights() Weights {
	return Weights{
		Land:          0.25,
		Energy:        0.30,
		Grid:          0.20,
		Economic:      0.15,
		Environmental: 0.10,
	}
}

// ByCategory returns the weight table keyed by category.
func (w Weights) ByCategory() map[model.Category]float64 {
	return map[model.Category]float64{
		model.CategoryLand:          w.Land,
		model.CategoryEnergy:        w.Energy,
		model.CategoryGrid:          w.Grid,
		model.CategoryEconomic:      w.Economic,
		model.CategoryEnvironmental: w.Environmental,
	}
}

// Validate checks the weight table is usable: non-negative entries with a
// positive sum.
func (w Weights) Validate() error {
	sum := 0.0
	for cat, wv := range w.ByCategory() {
		if wv < 0 {
			return eris.Errorf("decision: weight for %s is negative", cat)
		}
		sum += wv
	}
	if sum <= 0 {
		return eris.New("decision: weight table sums to zero")
	}
	return nil
}

// Aggregate combines category scores into an overall score using the weight
// table. Categories absent from the scores map are excluded and the
// remaining weights re-normalized, so a missing category never counts as
// zero. An empty scores map is a structural error.
func Aggregate(scores map[model.Category]model.CategoryScore, w Weights) (model.OverallScore, error) {
	weights := w.ByCategory()

	var weightedSum, totalWeight float64
	for _, cat := range model.Categories() {
		s, ok := scores[cat]
		if !ok {
			continue
		}
		weightedSum += s.Score * weights[cat]
		totalWeight += weights[cat]
	}

	if totalWeight <= 0 {
		return model.OverallScore{}, eris.New("decision: no scored categories to aggregate")
	}

	overall := weightedSum / totalWeight
	return model.OverallScore{
		Score:   overall,
		Level:   ClassifyLevel(overall),
		Weights: weights,
	}, nil
}

// DecideLevel maps an overall score to its recommendation tier.
func DecideLevel(score float64) model.DecisionLevel {
	switch {
	case score >= 80:
		return model.DecisionStronglyRecommend
	case score >= 70:
		return model.DecisionRecommend
	case score >= 60:
		return model.DecisionConsider
	case score >= 50:
		return model.DecisionNotRecommended
	default:
		return model.DecisionStronglyNotRecommend
	}
}
