package siterank

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridpoint-labs/sitescout/internal/criteria"
	"github.com/gridpoint-labs/sitescout/internal/model"
	"github.com/gridpoint-labs/sitescout/internal/provider"
)

// mockSource serves fixed datasets and can fail on demand.
type mockSource struct {
	econ    map[string]model.EconomicData
	env     model.EnvironmentalData
	energy  model.EnergyData
	failAll bool
	calls   atomic.Int64
}

func (m *mockSource) Economic(_ context.Context, loc model.Location) (model.EconomicData, error) {
	m.calls.Add(1)
	if m.failAll {
		return model.EconomicData{}, eris.Wrap(provider.ErrUnknownSite, "mock")
	}
	if d, ok := m.econ[loc.City]; ok {
		return d, nil
	}
	return model.EconomicData{InternetPenetration: 70, TransportationDensity: 1, DisasterLosses: 0.3, WaterConsumption: 35, DisposableIncome: 50000}, nil
}

func (m *mockSource) Environmental(_ context.Context, _ model.Location) (model.EnvironmentalData, error) {
	if m.failAll {
		return model.EnvironmentalData{}, eris.Wrap(provider.ErrUnknownSite, "mock")
	}
	return m.env, nil
}

func (m *mockSource) Energy(_ context.Context, _ model.Location) (model.EnergyData, error) {
	if m.failAll {
		return model.EnergyData{}, eris.Wrap(provider.ErrUnknownSite, "mock")
	}
	return m.energy, nil
}

func healthySource() *mockSource {
	return &mockSource{
		econ: map[string]model.EconomicData{},
		env: model.EnvironmentalData{
			AnnualTemperature: 14, Hydropower: 0.8, WindResources: 0.6, AirQualityRate: 90,
		},
		energy: model.EnergyData{
			SolarIrradiance: 1600, WindSpeed: 4, RenewableCoverage: 70,
		},
	}
}

func TestRankSite(t *testing.T) {
	r := NewRanker(healthySource())

	report, err := r.RankSite(context.Background(), model.Location{City: "testville"})
	require.NoError(t, err)

	assert.Equal(t, "economic", report.Economic.Category)
	assert.Len(t, report.Economic.Normalized, 5)
	assert.InDelta(t, report.Economic.Flow.Leaving-report.Economic.Flow.Entering,
		report.Economic.Flow.Net, 1e-9)

	// Final score is the documented blend of its two inputs.
	want := report.Economic.Ranking.Score*0.4 + report.Goals.Comprehensive*0.6
	assert.InDelta(t, want, report.Final.Score, 0.01)

	assert.NotEmpty(t, report.Recommendation.Narrative)
	assert.NotEmpty(t, report.Recommendation.NextSteps)
	assert.False(t, report.RankedAt.IsZero())
}

func TestRankSite_ProviderFailurePropagates(t *testing.T) {
	src := healthySource()
	src.failAll = true
	r := NewRanker(src)

	_, err := r.RankSite(context.Background(), model.Location{City: "nowhere"})
	require.Error(t, err)
	assert.True(t, eris.Is(err, provider.ErrUnknownSite), "upstream cause must stay inspectable")
}

func TestRanker_GoalWeightsReachResult(t *testing.T) {
	src := healthySource()
	base, err := NewRanker(src).RankSite(context.Background(), model.Location{City: "t"})
	require.NoError(t, err)

	// All weight on the economic goal collapses the comprehensive score to
	// the economic score.
	r := NewRanker(src).WithGoalWeights(GoalWeights{Economic: 1})
	report, err := r.RankSite(context.Background(), model.Location{City: "t"})
	require.NoError(t, err)
	assert.InDelta(t, report.Economic.Ranking.Score, report.Goals.Comprehensive, 0.01)
	assert.NotEqual(t, base.Goals.Comprehensive, report.Goals.Comprehensive)
}

func TestRanker_FinalBlendReachesResult(t *testing.T) {
	r := NewRanker(healthySource()).WithFinalBlend(FinalBlend{Economic: 1})
	report, err := r.RankSite(context.Background(), model.Location{City: "t"})
	require.NoError(t, err)
	assert.InDelta(t, report.Economic.Ranking.Score, report.Final.Score, 0.01)
}

func TestRanker_ZeroTablesIgnored(t *testing.T) {
	r := NewRanker(healthySource()).
		WithGoalWeights(GoalWeights{}).
		WithFinalBlend(FinalBlend{})
	assert.Equal(t, DefaultGoalWeights(), r.goals)
	assert.Equal(t, DefaultFinalBlend(), r.blend)
}

func TestRanker_CustomCatalog(t *testing.T) {
	cat := criteria.Catalog{
		Category: "economic",
		Criteria: []criteria.Criterion{
			{Name: model.CritInternetPenetration, Weight: 0.6, Orientation: criteria.Benefit},
			{Name: model.CritWaterConsumption, Weight: 0.4, Orientation: criteria.Cost},
		},
	}
	r := NewRanker(healthySource()).WithEconomicCatalog(cat)

	report, err := r.RankSite(context.Background(), model.Location{City: "t"})
	require.NoError(t, err)
	assert.Len(t, report.Economic.Normalized, 2)
	assert.Contains(t, report.Economic.Normalized, model.CritWaterConsumption)
}

func TestRankMany_PreservesOrder(t *testing.T) {
	r := NewRanker(healthySource())
	locs := []model.Location{
		{City: "alpha"}, {City: "beta"}, {City: "gamma"}, {City: "delta"},
	}

	reports, err := r.RankMany(context.Background(), locs, 2)
	require.NoError(t, err)
	require.Len(t, reports, 4)
	for i, rep := range reports {
		assert.Equal(t, locs[i].City, rep.Location.City)
	}
}

func TestRankMany_FirstErrorWins(t *testing.T) {
	src := healthySource()
	src.failAll = true
	r := NewRanker(src)

	_, err := r.RankMany(context.Background(), []model.Location{{City: "a"}, {City: "b"}}, 0)
	assert.Error(t, err)
}

func TestCompareSites(t *testing.T) {
	src := healthySource()
	// Give one city clearly better economics so the comparison has a
	// deterministic winner.
	src.econ["strong"] = model.EconomicData{
		InternetPenetration: 95, TransportationDensity: 1.9,
		DisasterLosses: 0.1, WaterConsumption: 20, DisposableIncome: 90000,
	}
	src.econ["weak"] = model.EconomicData{
		InternetPenetration: 40, TransportationDensity: 0.4,
		DisasterLosses: 0.9, WaterConsumption: 80, DisposableIncome: 20000,
	}
	r := NewRanker(src)

	locs := []model.Location{{City: "weak"}, {City: "strong"}}
	reports, flows, err := r.CompareSites(context.Background(), locs, 0)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	require.Len(t, flows, 2)

	assert.Equal(t, "strong", flows[0].Name)
	assert.Equal(t, 1, flows[0].Rank)
	assert.Greater(t, flows[0].Flow.Net, flows[1].Flow.Net)

	// The head-to-head stage reuses the economic values already fetched for
	// the per-site reports: exactly one provider call per site.
	assert.EqualValues(t, 2, src.calls.Load())
	for _, rep := range reports {
		assert.NotEmpty(t, rep.Economic.Raw)
	}
}

func TestCompareSites_TooFew(t *testing.T) {
	r := NewRanker(healthySource())
	_, _, err := r.CompareSites(context.Background(), []model.Location{{City: "solo"}}, 0)
	assert.Error(t, err)
}
