package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"costguard-hq/guardian/pkg/cli"
	"costguard-hq/guardian/pkg/pricing"
)

var estimateFlags struct {
	inputTokens  int
	outputTokens int
	jsonOutput   bool
}

var estimateCmd = &cobra.Command{
	Use:   "estimate <model>",
	Short: "Estimate the cost of a call",
	Long: `Estimate the USD cost of a call from its token counts, without
recording anything.

Examples:
  # Estimate a gpt-4o call
  guardian estimate gpt-4o --input-tokens 1500 --output-tokens 800

  # JSON output for scripting
  guardian estimate gpt-4o --input-tokens 1500 --output-tokens 800 --json-output`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return cli.NewCommandError("estimate", err)
		}
		err = estimateCost(cmd.OutOrStdout(), catalog, args[0],
			estimateFlags.inputTokens, estimateFlags.outputTokens, estimateFlags.jsonOutput)
		if err != nil {
			return cli.NewCommandError("estimate", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)

	estimateCmd.Flags().IntVar(&estimateFlags.inputTokens, "input-tokens", 0, "number of input (prompt) tokens")
	estimateCmd.Flags().IntVar(&estimateFlags.outputTokens, "output-tokens", 0, "number of output (completion) tokens")
	estimateCmd.Flags().BoolVar(&estimateFlags.jsonOutput, "json-output", false, "output as JSON")
}

// estimateResult is the JSON shape of an estimate.
type estimateResult struct {
	Model        string  `json:"model"`
	Provider     string  `json:"provider"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	CostUSD      float64 `json:"cost_usd"`
}

func estimateCost(w io.Writer, catalog *pricing.Catalog, model string, inputTokens, outputTokens int, jsonOutput bool) error {
	if inputTokens < 0 {
		return fmt.Errorf("input tokens must be non-negative, got %d", inputTokens)
	}
	if outputTokens < 0 {
		return fmt.Errorf("output tokens must be non-negative, got %d", outputTokens)
	}

	p, err := catalog.Resolve(model)
	if err != nil {
		return err
	}

	cost := p.Cost(inputTokens, outputTokens)

	if jsonOutput {
		return cli.WriteJSON(w, estimateResult{
			Model:        model,
			Provider:     string(p.Provider),
			InputTokens:  inputTokens,
			OutputTokens: outputTokens,
			CostUSD:      cost,
		})
	}

	fmt.Fprintf(w, "Model:         %s (%s)\n", model, p.Provider)
	fmt.Fprintf(w, "Input tokens:  %d @ $%g/1M\n", inputTokens, p.InputPerMillion)
	fmt.Fprintf(w, "Output tokens: %d @ $%g/1M\n", outputTokens, p.OutputPerMillion)
	fmt.Fprintf(w, "Estimated cost: $%.6f\n", cost)
	return nil
}
