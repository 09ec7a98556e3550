package siterank

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gridpoint-labs/sitescout/internal/criteria"
	"github.com/gridpoint-labs/sitescout/internal/model"
	"github.com/gridpoint-labs/sitescout/internal/outrank"
	"github.com/gridpoint-labs/sitescout/internal/provider"
)

// EconomicAnalysis is the outranking stage output for the economic criteria
// of one site.
type EconomicAnalysis struct {
	Category   string             `json:"category"`
	Raw        map[string]float64 `json:"raw_data"`
	Normalized map[string]float64 `json:"normalized_data"`
	Flow       outrank.FlowResult `json:"flow"`
	Ranking    outrank.Ranking    `json:"ranking"`
}

// RankReport is the full result of the outranking analysis path for one site.
type RankReport struct {
	Location       model.Location          `json:"location"`
	Economic       EconomicAnalysis        `json:"economic_analysis"`
	Environmental  model.EnvironmentalData `json:"environmental_analysis"`
	Energy         model.EnergyData        `json:"energy_analysis"`
	Goals          GoalResult              `json:"goal_result"`
	Final          FinalRanking            `json:"final_ranking"`
	Recommendation model.Recommendation    `json:"recommendation"`
	RankedAt       time.Time               `json:"ranked_at"`
}

// Ranker runs the outranking analysis path. It holds only immutable
// configuration and a data source; every evaluation is independent, so a
// single Ranker is safe for concurrent use.
type Ranker struct {
	source   provider.DataSource
	economic criteria.Catalog
	sigma    float64
	goals    GoalWeights
	blend    FinalBlend
}

// NewRanker creates a Ranker over the given data source with the default
// economic catalog, goal weights, and final blend.
func NewRanker(source provider.DataSource) *Ranker {
	return &Ranker{
		source:   source,
		economic: criteria.Economic(),
		sigma:    outrank.Sigma,
		goals:    DefaultGoalWeights(),
		blend:    DefaultFinalBlend(),
	}
}

// WithEconomicCatalog replaces the economic criterion catalog.
func (r *Ranker) WithEconomicCatalog(cat criteria.Catalog) *Ranker {
	r.economic = cat
	return r
}

// WithSigma replaces the Gaussian spread parameter.
func (r *Ranker) WithSigma(sigma float64) *Ranker {
	if sigma > 0 {
		r.sigma = sigma
	}
	return r
}

// WithGoalWeights replaces the goal weight table.
func (r *Ranker) WithGoalWeights(w GoalWeights) *Ranker {
	if w.Economic+w.Environmental+w.Energy > 0 {
		r.goals = w
	}
	return r
}

// WithFinalBlend replaces the final blend table.
func (r *Ranker) WithFinalBlend(b FinalBlend) *Ranker {
	if b.Economic+b.Comprehensive > 0 {
		r.blend = b
	}
	return r
}

// RankSite evaluates one site end to end: fetch the three datasets, outrank
// the economic criteria, aggregate goals, and blend the final ranking.
// Provider failures propagate to the caller unchanged.
func (r *Ranker) RankSite(ctx context.Context, loc model.Location) (*RankReport, error) {
	econData, err := r.source.Economic(ctx, loc)
	if err != nil {
		return nil, eris.Wrapf(err, "siterank: economic data for %q", loc.City)
	}
	envData, err := r.source.Environmental(ctx, loc)
	if err != nil {
		return nil, eris.Wrapf(err, "siterank: environmental data for %q", loc.City)
	}
	energyData, err := r.source.Energy(ctx, loc)
	if err != nil {
		return nil, eris.Wrapf(err, "siterank: energy data for %q", loc.City)
	}

	econ, err := r.outrankEconomic(econData)
	if err != nil {
		return nil, err
	}

	goals := AggregateGoals(BuildGoals(econ.Ranking.Score, envData, energyData), r.goals)
	final := CombineFinal(econ.Ranking.Score, goals.Comprehensive, r.blend)

	report := &RankReport{
		Location:       loc,
		Economic:       econ,
		Environmental:  envData,
		Energy:         energyData,
		Goals:          goals,
		Final:          final,
		Recommendation: BuildRecommendation(final),
		RankedAt:       time.Now().UTC(),
	}

	zap.L().Info("siterank: site ranked",
		zap.String("city", loc.City),
		zap.Float64("economic_score", econ.Ranking.Score),
		zap.Float64("comprehensive_score", goals.Comprehensive),
		zap.Float64("final_score", final.Score),
		zap.String("decision", string(final.Decision)),
	)

	return report, nil
}

// outrankEconomic runs the single-site outranking contract over the
// economic criteria: normalize, build the preference matrix, and classify
// the first criterion's flow as the category score.
func (r *Ranker) outrankEconomic(data model.EconomicData) (EconomicAnalysis, error) {
	raw := data.Values()
	normalized := criteria.Normalize(raw, r.economic)
	matrix := outrank.PreferenceMatrix(normalized, r.economic, r.sigma)

	flow, err := outrank.ComputeFlows(matrix)
	if err != nil {
		return EconomicAnalysis{}, eris.Wrap(err, "siterank: economic flows")
	}

	return EconomicAnalysis{
		Category:   r.economic.Category,
		Raw:        raw,
		Normalized: normalized,
		Flow:       flow,
		Ranking:    outrank.Classify(flow),
	}, nil
}

// RankMany evaluates several sites in parallel. Evaluations share no mutable
// state; limit bounds the number of concurrent evaluations (0 means one per
// site). Results preserve input order. The first failure cancels the rest.
func (r *Ranker) RankMany(ctx context.Context, locs []model.Location, limit int) ([]*RankReport, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	reports := make([]*RankReport, len(locs))
	for i, loc := range locs {
		g.Go(func() error {
			rep, err := r.RankSite(ctx, loc)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// CompareSites ranks several sites against each other using the generalized
// multi-alternative outranking over the shared economic criteria, alongside
// the per-site reports. At least two sites are required.
func (r *Ranker) CompareSites(ctx context.Context, locs []model.Location, limit int) ([]*RankReport, []outrank.AlternativeFlow, error) {
	if len(locs) < 2 {
		return nil, nil, eris.Errorf("siterank: need at least 2 sites to compare, got %d", len(locs))
	}

	reports, err := r.RankMany(ctx, locs, limit)
	if err != nil {
		return nil, nil, err
	}

	// The per-site reports already carry the raw economic values; no second
	// provider round trip is needed.
	alts := make([]outrank.Alternative, len(reports))
	for i, rep := range reports {
		alts[i] = outrank.Alternative{Name: rep.Location.City, Values: rep.Economic.Raw}
	}

	flows, err := outrank.RankAlternatives(alts, r.economic, r.sigma)
	if err != nil {
		return nil, nil, err
	}
	return reports, flows, nil
}
