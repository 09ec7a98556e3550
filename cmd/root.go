package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gridpoint-labs/sitescout/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "sitescout",
	Short: "Multi-criteria site evaluation for data center candidates",
	Long:  "Scores candidate regions on land, energy, grid, economic, and environmental criteria, ranks sites with Gaussian-preference outranking, and persists evaluation history.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
