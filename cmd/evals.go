package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/gridpoint-labs/sitescout/internal/store"
)

var evalsCmd = &cobra.Command{
	Use:   "evals",
	Short: "Browse saved evaluations",
}

var evalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved evaluations",
	Long: `List saved evaluations, newest first.

Examples:
  # All recent evaluations
  evals list

  # Only comparisons
  evals list --kind compare

  # Evaluations for one site
  evals list --site zhongwei --limit 10`,
	RunE: runEvalsList,
}

var evalsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one saved evaluation report",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvalsShow,
}

func init() {
	f := evalsListCmd.Flags()
	f.String("kind", "", "filter by kind: score, rank, or compare")
	f.String("site", "", "filter by site name")
	f.Int("limit", 20, "maximum number of results")
	f.Int("offset", 0, "number of results to skip")

	evalsCmd.AddCommand(evalsListCmd)
	evalsCmd.AddCommand(evalsShowCmd)
	rootCmd.AddCommand(evalsCmd)
}

func openStore(cmd *cobra.Command) (store.Store, func(), error) {
	ctx := cmd.Context()
	st, err := store.Open(ctx, cfg.Store.Driver, storeDSN())
	if err != nil {
		return nil, nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, nil, err
	}
	return st, func() { _ = st.Close() }, nil
}

func runEvalsList(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kind, _ := cmd.Flags().GetString("kind")
	site, _ := cmd.Flags().GetString("site")
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")

	switch kind {
	case "", store.KindScore, store.KindRank, store.KindCompare:
	default:
		return eris.Errorf("evals: unknown kind %q", kind)
	}

	st, closeStore, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	evals, err := st.ListEvaluations(ctx, store.Filter{
		Kind:   kind,
		Site:   site,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}
	if len(evals) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No evaluations found.")
		return nil
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-36s %-8s %-25s %s\n", "ID", "Kind", "Site", "Created")
	for _, e := range evals {
		fmt.Fprintf(w, "%-36s %-8s %-25s %s\n",
			e.ID, e.Kind, e.Site, e.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runEvalsShow(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	eval, err := st.GetEvaluation(ctx, args[0])
	if err != nil {
		return err
	}

	var raw any
	if err := unmarshalReport(eval, &raw); err != nil {
		return err
	}
	return withOutput("", func(w *os.File) error {
		return writeJSON(w, raw)
	})
}
