// Package outrank implements the pairwise outranking engine: preference
// matrices built with a Gaussian generalized criterion, leaving/entering/net
// flows, and the classification of net flows into qualitative levels.
package outrank

import (
	"math"

	"github.com/gridpoint-labs/sitescout/internal/criteria"
)

// Sigma is the spread parameter of the Gaussian generalized criterion.
const Sigma = 0.1

// Matrix is a square preference matrix indexed by criterion name. Row order
// follows the catalog; Cells[i][j] is the weighted preference intensity of
// criterion i over criterion j. The diagonal is zero, entries are
// non-negative, and an entry is zero whenever i's normalized value does not
// exceed j's.
type Matrix struct {
	Names []string    `json:"names"`
	Cells [][]float64 `json:"cells"`
}

// Size returns the matrix dimension.
func (m Matrix) Size() int { return len(m.Names) }

// PreferenceMatrix builds the pairwise preference matrix over the catalog's
// criteria from normalized values, using the given sigma. Criteria missing
// from the normalized set are skipped, so the matrix may be smaller than the
// catalog. Fewer than two usable criteria yield a degenerate 0x0 or 1x1
// matrix; downstream flow computation treats that as insufficient data.
func PreferenceMatrix(normalized map[string]float64, cat criteria.Catalog, sigma float64) Matrix {
	if sigma <= 0 {
		sigma = Sigma
	}

	// Keep catalog order; the first row represents the category downstream.
	var names []string
	var weights []float64
	for _, cr := range cat.Criteria {
		if _, ok := normalized[cr.Name]; ok {
			names = append(names, cr.Name)
			weights = append(weights, cr.Weight)
		}
	}

	n := len(names)
	cells := make([][]float64, n)
	for i := range cells {
		cells[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			diff := normalized[names[i]] - normalized[names[j]]
			if diff <= 0 {
				continue
			}
			cells[i][j] = weights[i] * gaussianPreference(diff, sigma)
		}
	}

	return Matrix{Names: names, Cells: cells}
}

// gaussianPreference is the Gaussian generalized criterion: grows
// monotonically with the gap and saturates toward 1 as the gap widens.
func gaussianPreference(diff, sigma float64) float64 {
	return 1 - math.Exp(-(diff*diff)/(2*sigma*sigma))
}
