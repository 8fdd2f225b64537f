package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"costguard-hq/guardian/pkg/config"
	"costguard-hq/guardian/pkg/pricing"
)

const defaultConfigPath = "guardian.yaml"

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "guardian",
	Short: "Guardian - LLM usage metering and budget enforcement",
	Long: `Guardian meters LLM API usage and enforces spending limits.

It converts per-call token counts into monetary cost using a pricing
table, accumulates spend in an append-only cost ledger, and evaluates
composable budget policies (hard cap, soft warning, sliding window)
before a caller proceeds with another call.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setupLogging configures the default slog logger. Subcommands log little;
// verbose mode mainly surfaces pricing resolution details.
func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// loadCatalog builds the pricing catalog the subcommands query. When the
// config file exists its model overrides are applied; a missing file at
// the default location just means the built-in table, while a missing
// file the user asked for explicitly is an error.
func loadCatalog() (*pricing.Catalog, error) {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && cfgFile == defaultConfigPath {
			return pricing.Default(), nil
		}
		return nil, err
	}
	return config.BuildCatalog(cfg)
}
