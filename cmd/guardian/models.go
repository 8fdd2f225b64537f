package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"costguard-hq/guardian/pkg/cli"
	"costguard-hq/guardian/pkg/pricing"
)

var modelsFlags struct {
	provider   string
	jsonOutput bool
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List known models and their pricing",
	Long: `List the models in the pricing catalog with their per-million-token
costs in USD. Overrides from the config file are included.

Examples:
  # List every known model
  guardian models

  # Only OpenAI models
  guardian models --provider openai

  # JSON output for scripting
  guardian models --json-output`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return cli.NewCommandError("models", err)
		}
		return listModels(cmd.OutOrStdout(), catalog, pricing.Provider(modelsFlags.provider), modelsFlags.jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)

	modelsCmd.Flags().StringVarP(&modelsFlags.provider, "provider", "p", "", "filter by provider: openai, anthropic, google, custom")
	modelsCmd.Flags().BoolVar(&modelsFlags.jsonOutput, "json-output", false, "output as JSON")
}

// modelListing is the JSON shape of one pricing entry.
type modelListing struct {
	Model            string  `json:"model"`
	Provider         string  `json:"provider"`
	InputPerMillion  float64 `json:"input_cost_per_million"`
	OutputPerMillion float64 `json:"output_cost_per_million"`
	ContextWindow    int     `json:"context_window,omitempty"`
}

func listModels(w io.Writer, catalog *pricing.Catalog, provider pricing.Provider, jsonOutput bool) error {
	models := catalog.Models(provider)

	if jsonOutput {
		listings := make([]modelListing, 0, len(models))
		for _, p := range models {
			listings = append(listings, modelListing{
				Model:            p.Model,
				Provider:         string(p.Provider),
				InputPerMillion:  p.InputPerMillion,
				OutputPerMillion: p.OutputPerMillion,
				ContextWindow:    p.ContextWindow,
			})
		}
		return cli.WriteJSON(w, listings)
	}

	if len(models) == 0 {
		_, err := fmt.Fprintln(w, "No models found.")
		return err
	}

	tbl := cli.NewTable("MODEL", "PROVIDER", "INPUT $/1M", "OUTPUT $/1M", "CONTEXT")
	for _, p := range models {
		context := "-"
		if p.ContextWindow > 0 {
			context = strconv.Itoa(p.ContextWindow)
		}
		tbl.AddRow(
			p.Model,
			string(p.Provider),
			strconv.FormatFloat(p.InputPerMillion, 'f', -1, 64),
			strconv.FormatFloat(p.OutputPerMillion, 'f', -1, 64),
			context,
		)
	}
	return tbl.Write(w)
}
