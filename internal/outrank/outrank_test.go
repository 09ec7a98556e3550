package outrank

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridpoint-labs/sitescout/internal/criteria"
	"github.com/gridpoint-labs/sitescout/internal/model"
)

func twoCriterionCatalog() criteria.Catalog {
	return criteria.Catalog{Category: "test", Criteria: []criteria.Criterion{
		{Name: "A", Weight: 0.4, Orientation: criteria.Benefit},
		{Name: "B", Weight: 0.6, Orientation: criteria.Benefit},
	}}
}

func TestPreferenceMatrix_TwoCriteria(t *testing.T) {
	normalized := map[string]float64{"A": 0.8, "B": 0.2}

	m := PreferenceMatrix(normalized, twoCriterionCatalog(), Sigma)
	require.Equal(t, 2, m.Size())
	require.Equal(t, []string{"A", "B"}, m.Names)

	// A dominates B by 0.6: 0.4 * (1 - exp(-0.36/0.02)) saturates near 0.4.
	assert.InDelta(t, 0.4, m.Cells[0][1], 1e-6)
	assert.Zero(t, m.Cells[1][0])
	assert.Zero(t, m.Cells[0][0])
	assert.Zero(t, m.Cells[1][1])
}

func TestPreferenceMatrix_Invariants(t *testing.T) {
	cat := criteria.Economic()
	normalized := map[string]float64{
		model.CritInternetPenetration:   0.85,
		model.CritTransportationDensity: 0.012,
		model.CritDisasterLosses:        0.995,
		model.CritWaterConsumption:      0.55,
		model.CritDisposableIncome:      1.0,
	}

	m := PreferenceMatrix(normalized, cat, Sigma)
	require.Equal(t, 5, m.Size())

	for i := range m.Names {
		assert.Zero(t, m.Cells[i][i], "diagonal must be zero")
		for j := range m.Names {
			assert.GreaterOrEqual(t, m.Cells[i][j], 0.0)
			if m.Cells[i][j] > 0 {
				assert.Greater(t, normalized[m.Names[i]], normalized[m.Names[j]],
					"positive entry requires i's value to exceed j's")
			}
		}
	}
}

func TestPreferenceMatrix_SkipsMissingValues(t *testing.T) {
	m := PreferenceMatrix(map[string]float64{"A": 0.5}, twoCriterionCatalog(), Sigma)
	assert.Equal(t, 1, m.Size())
}

func TestComputeFlows_NetIdentity(t *testing.T) {
	m := Matrix{
		Names: []string{"A", "B", "C"},
		Cells: [][]float64{
			{0, 0.3, 0.1},
			{0.05, 0, 0.2},
			{0, 0.15, 0},
		},
	}

	f, err := ComputeFlows(m)
	require.NoError(t, err)
	assert.InDelta(t, (0.3+0.1)/2, f.Leaving, 1e-9)
	assert.InDelta(t, (0.05+0)/2, f.Entering, 1e-9)
	assert.InDelta(t, f.Leaving-f.Entering, f.Net, 1e-12)
}

func TestComputeFlows_Degenerate(t *testing.T) {
	_, err := ComputeFlows(Matrix{})
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrDegenerateInput))

	// A single criterion carries no pairwise information: neutral flows,
	// classified as fair rather than crashing.
	f, err := ComputeFlows(Matrix{Names: []string{"A"}, Cells: [][]float64{{0}}})
	require.NoError(t, err)
	assert.Zero(t, f.Net)
	assert.Equal(t, model.LevelFair, Classify(f).Level)
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		net   float64
		level model.ScoreLevel
		score float64
	}{
		{"well above threshold", 0.5, model.LevelExcellent, 5},
		{"exactly 0.1 is good, not excellent", 0.1, model.LevelGood, 73},
		{"small positive", 0.05, model.LevelGood, 71.5},
		{"zero is fair", 0, model.LevelFair, 70},
		{"small negative", -0.05, model.LevelFair, 60},
		{"exactly -0.1 is poor, not fair", -0.1, model.LevelPoor, 0},
		{"deep negative floors at zero", -3, model.LevelPoor, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Classify(FlowResult{Net: tt.net})
			assert.Equal(t, tt.level, r.Level)
			assert.InDelta(t, tt.score, r.Score, 1e-9)
		})
	}
}

func TestRankAlternatives(t *testing.T) {
	cat := twoCriterionCatalog()
	alts := []Alternative{
		{Name: "weak", Values: map[string]float64{"A": 20, "B": 30}},
		{Name: "strong", Values: map[string]float64{"A": 90, "B": 95}},
		{Name: "middle", Values: map[string]float64{"A": 50, "B": 60}},
	}

	ranked, err := RankAlternatives(alts, cat, Sigma)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "strong", ranked[0].Name)
	assert.Equal(t, "middle", ranked[1].Name)
	assert.Equal(t, "weak", ranked[2].Name)
	assert.Equal(t, []int{1, 2, 3}, []int{ranked[0].Rank, ranked[1].Rank, ranked[2].Rank})

	// Net flows sum to zero across alternatives in a complete comparison.
	var sum float64
	for _, r := range ranked {
		sum += r.Flow.Net
		assert.InDelta(t, r.Flow.Leaving-r.Flow.Entering, r.Flow.Net, 1e-12)
	}
	assert.InDelta(t, 0, sum, 1e-9)
}

func TestRankAlternatives_TooFew(t *testing.T) {
	_, err := RankAlternatives([]Alternative{{Name: "only"}}, twoCriterionCatalog(), Sigma)
	assert.Error(t, err)
}
