package outrank

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/gridpoint-labs/sitescout/internal/criteria"
)

// Alternative is one candidate in a multi-alternative ranking: a name and
// its raw criterion values.
type Alternative struct {
	Name   string             `json:"name"`
	Values map[string]float64 `json:"values"`
}

// AlternativeFlow is the ranked outcome for one alternative.
type AlternativeFlow struct {
	Name    string     `json:"name"`
	Flow    FlowResult `json:"flow"`
	Ranking Ranking    `json:"ranking"`
	Rank    int        `json:"rank"`
}

// RankAlternatives ranks N alternatives against the shared criteria of one
// catalog: pairwise preference intensity between alternatives is the
// weighted sum of Gaussian preferences over all criteria, and each
// alternative receives its own leaving/entering/net flow. Results are sorted
// by descending net flow with Rank starting at 1. At least two alternatives
// are required.
func RankAlternatives(alts []Alternative, cat criteria.Catalog, sigma float64) ([]AlternativeFlow, error) {
	if len(alts) < 2 {
		return nil, eris.Errorf("outrank: need at least 2 alternatives, got %d", len(alts))
	}
	if sigma <= 0 {
		sigma = Sigma
	}

	// Normalize every alternative onto the shared [0,1] scale.
	normalized := make([]map[string]float64, len(alts))
	for i, alt := range alts {
		normalized[i] = criteria.Normalize(alt.Values, cat)
	}

	n := len(alts)
	pi := make([][]float64, n)
	for i := range pi {
		pi[i] = make([]float64, n)
	}

	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if a == b {
				continue
			}
			var intensity float64
			for _, cr := range cat.Criteria {
				va, okA := normalized[a][cr.Name]
				vb, okB := normalized[b][cr.Name]
				if !okA || !okB {
					continue
				}
				if diff := va - vb; diff > 0 {
					intensity += cr.Weight * gaussianPreference(diff, sigma)
				}
			}
			pi[a][b] = intensity
		}
	}

	results := make([]AlternativeFlow, n)
	for a := 0; a < n; a++ {
		var leaving, entering float64
		for b := 0; b < n; b++ {
			leaving += pi[a][b]
			entering += pi[b][a]
		}
		leaving /= float64(n - 1)
		entering /= float64(n - 1)

		flow := FlowResult{Leaving: leaving, Entering: entering, Net: leaving - entering}
		results[a] = AlternativeFlow{
			Name:    alts[a].Name,
			Flow:    flow,
			Ranking: Classify(flow),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Flow.Net > results[j].Flow.Net
	})
	for i := range results {
		results[i].Rank = i + 1
	}

	return results, nil
}
