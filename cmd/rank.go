package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gridpoint-labs/sitescout/internal/criteria"
	"github.com/gridpoint-labs/sitescout/internal/model"
	"github.com/gridpoint-labs/sitescout/internal/provider"
	"github.com/gridpoint-labs/sitescout/internal/siterank"
	"github.com/gridpoint-labs/sitescout/internal/store"
)

var rankCmd = &cobra.Command{
	Use:   "rank <city>",
	Short: "Rank a candidate city with outranking analysis",
	Long: `Rank one candidate city: fetch its economic, environmental, and energy
datasets, run Gaussian-preference outranking over the economic criteria,
aggregate the development goals, and blend the final ranking with a
narrative recommendation.

Examples:
  # Rank a known city
  rank zhongwei

  # Rank and persist the report
  rank guiyang --save

  # List the cities the built-in dataset covers
  rank --list

  # Rank with a custom economic criteria catalog
  rank zhongwei --criteria catalogs/economic.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRank,
}

func init() {
	f := rankCmd.Flags()
	f.String("format", "json", "output format: json or table")
	f.String("output", "", "output file path (default: stdout)")
	f.Bool("save", false, "persist the report to the evaluation store")
	f.Bool("list", false, "list known cities and exit")
	f.String("criteria", "", "path to a YAML economic criteria catalog (default: built-in)")

	rootCmd.AddCommand(rankCmd)
}

// newRanker builds a Ranker from the loaded engine config, with an optional
// economic catalog file replacing the built-in one.
func newRanker(source provider.DataSource, criteriaPath string) (*siterank.Ranker, error) {
	r := siterank.NewRanker(source).
		WithSigma(cfg.Engine.Sigma).
		WithGoalWeights(cfg.Engine.GoalWeights).
		WithFinalBlend(cfg.Engine.FinalBlend)

	if criteriaPath != "" {
		cat, err := criteria.LoadCatalogFile(criteriaPath)
		if err != nil {
			return nil, err
		}
		r = r.WithEconomicCatalog(cat)
	}
	return r, nil
}

func runRank(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source := provider.NewStaticSource()

	if list, _ := cmd.Flags().GetBool("list"); list {
		for _, city := range source.Sites() {
			fmt.Fprintln(cmd.OutOrStdout(), city)
		}
		return nil
	}
	if len(args) != 1 {
		return eris.New("rank: exactly one city argument is required")
	}
	city := args[0]

	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	save, _ := cmd.Flags().GetBool("save")
	criteriaPath, _ := cmd.Flags().GetString("criteria")

	if format != "json" && format != "table" {
		return eris.Errorf("rank: --format must be json or table (got %q)", format)
	}

	ranker, err := newRanker(source, criteriaPath)
	if err != nil {
		return err
	}
	report, err := ranker.RankSite(ctx, model.Location{City: city})
	if err != nil {
		return err
	}

	if save {
		st, err := store.Open(ctx, cfg.Store.Driver, storeDSN())
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}
		saved, err := st.SaveEvaluation(ctx, store.KindRank, city, report)
		if err != nil {
			return err
		}
		zap.L().Info("rank: report saved", zap.String("id", saved.ID), zap.String("city", city))
		fmt.Fprintf(cmd.OutOrStdout(), "Saved evaluation %s\n", saved.ID)
	}

	if format == "table" {
		return withOutput(outputPath, func(w *os.File) error {
			return writeRankTable(w, report)
		})
	}
	return withOutput(outputPath, func(w *os.File) error {
		return writeJSON(w, report)
	})
}

func writeRankTable(w *os.File, report *siterank.RankReport) error {
	fmt.Fprintf(w, "City:          %s\n", report.Location.City)
	fmt.Fprintf(w, "Economic:      %.2f (%s, net flow %.4f)\n",
		report.Economic.Ranking.Score, report.Economic.Ranking.Level, report.Economic.Flow.Net)
	fmt.Fprintf(w, "Comprehensive: %.2f\n", report.Goals.Comprehensive)
	fmt.Fprintf(w, "Final:         %.2f (%s)\n", report.Final.Score, report.Final.Level)
	fmt.Fprintf(w, "Decision:      %s\n\n", report.Final.Decision)

	fmt.Fprintln(w, "Recommendations:")
	for _, line := range report.Recommendation.Narrative {
		fmt.Fprintf(w, "  - %s\n", line)
	}
	fmt.Fprintln(w, "\nNext steps:")
	for _, line := range report.Recommendation.NextSteps {
		fmt.Fprintf(w, "  - %s\n", line)
	}
	return nil
}
