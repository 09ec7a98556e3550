package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gridpoint-labs/sitescout/internal/model"
	"github.com/gridpoint-labs/sitescout/internal/outrank"
	"github.com/gridpoint-labs/sitescout/internal/provider"
	"github.com/gridpoint-labs/sitescout/internal/siterank"
	"github.com/gridpoint-labs/sitescout/internal/store"
)

var compareCmd = &cobra.Command{
	Use:   "compare <city> <city> [city...]",
	Short: "Compare candidate cities head to head",
	Long: `Compare two or more candidate cities. Each city gets a full individual
ranking, and the cities are then ranked against each other with pairwise
Gaussian-preference outranking over the shared economic criteria.

Examples:
  # Compare two candidates
  compare zhongwei guiyang

  # Compare several, limiting concurrent evaluations
  compare beijing shanghai shenzhen hangzhou --concurrency 2`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCompare,
}

// compareResult is the persisted and printed shape of a comparison.
type compareResult struct {
	Standings []outrank.AlternativeFlow `json:"standings"`
	Reports   []*siterank.RankReport    `json:"reports"`
}

func init() {
	f := compareCmd.Flags()
	f.String("format", "json", "output format: json or table")
	f.String("output", "", "output file path (default: stdout)")
	f.Bool("save", false, "persist the comparison to the evaluation store")
	f.Int("concurrency", 0, "max concurrent site evaluations (0 = one per site)")
	f.String("criteria", "", "path to a YAML economic criteria catalog (default: built-in)")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	save, _ := cmd.Flags().GetBool("save")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	criteriaPath, _ := cmd.Flags().GetString("criteria")

	if format != "json" && format != "table" {
		return eris.Errorf("compare: --format must be json or table (got %q)", format)
	}

	locs := make([]model.Location, len(args))
	for i, city := range args {
		locs[i] = model.Location{City: city}
	}

	ranker, err := newRanker(provider.NewStaticSource(), criteriaPath)
	if err != nil {
		return err
	}
	reports, standings, err := ranker.CompareSites(ctx, locs, concurrency)
	if err != nil {
		return err
	}
	result := compareResult{Standings: standings, Reports: reports}

	if save {
		st, err := store.Open(ctx, cfg.Store.Driver, storeDSN())
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}
		saved, err := st.SaveEvaluation(ctx, store.KindCompare, strings.Join(args, ","), result)
		if err != nil {
			return err
		}
		zap.L().Info("compare: result saved",
			zap.String("id", saved.ID),
			zap.Strings("cities", args),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "Saved evaluation %s\n", saved.ID)
	}

	if format == "table" {
		return withOutput(outputPath, func(w *os.File) error {
			return writeCompareTable(w, result)
		})
	}
	return withOutput(outputPath, func(w *os.File) error {
		return writeJSON(w, result)
	})
}

func writeCompareTable(w *os.File, result compareResult) error {
	fmt.Fprintf(w, "%-5s %-15s %9s %-10s\n", "Rank", "City", "Net Flow", "Level")
	fmt.Fprintln(w, strings.Repeat("-", 44))
	for _, alt := range result.Standings {
		fmt.Fprintf(w, "%-5d %-15s %9.4f %-10s\n",
			alt.Rank, alt.Name, alt.Flow.Net, alt.Ranking.Level)
	}

	fmt.Fprintln(w, "\nIndividual rankings:")
	for _, rep := range result.Reports {
		fmt.Fprintf(w, "  %-15s final %.2f (%s) decision %s\n",
			rep.Location.City, rep.Final.Score, rep.Final.Level, rep.Final.Decision)
	}
	return nil
}
