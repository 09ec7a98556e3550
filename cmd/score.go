package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gridpoint-labs/sitescout/internal/decision"
	"github.com/gridpoint-labs/sitescout/internal/model"
	"github.com/gridpoint-labs/sitescout/internal/store"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate site from assessment payloads",
	Long: `Score a candidate site across five categories (land suitability, energy
resources, grid capacity, economic feasibility, environmental impact) from
land and energy assessment payloads, then aggregate into an overall score
with a decision level, recommendations, and a risk profile.

Examples:
  # Score from payload files
  score --site zhongwei --land land.json --energy energy.json

  # Score and persist the report
  score --site zhongwei --land land.json --energy energy.json --save

  # Human-readable summary instead of JSON
  score --site zhongwei --land land.json --energy energy.json --format table`,
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.String("site", "", "site name for the report (required)")
	f.String("land", "", "path to land analysis JSON payload (required)")
	f.String("energy", "", "path to energy assessment JSON payload (required)")
	f.String("format", "json", "output format: json or table")
	f.String("output", "", "output file path (default: stdout)")
	f.Bool("save", false, "persist the report to the evaluation store")
	_ = scoreCmd.MarkFlagRequired("site")
	_ = scoreCmd.MarkFlagRequired("land")
	_ = scoreCmd.MarkFlagRequired("energy")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	site, _ := cmd.Flags().GetString("site")
	landPath, _ := cmd.Flags().GetString("land")
	energyPath, _ := cmd.Flags().GetString("energy")
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	save, _ := cmd.Flags().GetBool("save")

	if format != "json" && format != "table" {
		return eris.Errorf("score: --format must be json or table (got %q)", format)
	}

	var land model.LandAnalysis
	if err := readJSONFile(landPath, &land); err != nil {
		return eris.Wrapf(err, "score: land payload %s", landPath)
	}
	var energy model.EnergyAssessment
	if err := readJSONFile(energyPath, &energy); err != nil {
		return eris.Wrapf(err, "score: energy payload %s", energyPath)
	}

	report, err := decision.AnalyzeSite(land, energy, cfg.Engine.DecisionWeights)
	if err != nil {
		return eris.Wrapf(err, "score: analyze %s", site)
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
		saved, err := st.SaveEvaluation(ctx, store.KindScore, site, report)
		if err != nil {
			return err
		}
		zap.L().Info("score: report saved", zap.String("id", saved.ID), zap.String("site", site))
		fmt.Fprintf(cmd.OutOrStdout(), "Saved evaluation %s\n", saved.ID)
	}

	if format == "table" {
		return withOutput(outputPath, func(w *os.File) error {
			return writeDecisionTable(w, site, report)
		})
	}
	return withOutput(outputPath, func(w *os.File) error {
		return writeJSON(w, report)
	})
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrap(err, "read file")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return eris.Wrap(err, "parse JSON")
	}
	return nil
}

func writeDecisionTable(w *os.File, site string, report *model.DecisionReport) error {
	fmt.Fprintf(w, "Site:     %s\n", site)
	fmt.Fprintf(w, "Overall:  %.2f (%s)\n", report.Overall.Score, report.Overall.Level)
	fmt.Fprintf(w, "Decision: %s\n", report.DecisionLevel)
	fmt.Fprintf(w, "Risk:     %s\n\n", report.Risk.Level)

	fmt.Fprintf(w, "%-25s %7s %-10s\n", "Category", "Score", "Level")
	for _, cat := range model.Categories() {
		cs, ok := report.Scores[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%-25s %7.2f %-10s\n", cat, cs.Score, cs.Level)
	}

	if len(report.Recommendations) > 0 {
		fmt.Fprintln(w, "\nRecommendations:")
		for _, rec := range report.Recommendations {
			fmt.Fprintf(w, "  - %s\n", rec)
		}
	}
	if len(report.Risk.Risks) > 0 {
		fmt.Fprintln(w, "\nRisks:")
		for i, r := range report.Risk.Risks {
			fmt.Fprintf(w, "  - %s\n    mitigation: %s\n", r, report.Risk.Mitigations[i])
		}
	}
	return nil
}
