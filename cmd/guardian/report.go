package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"costguard-hq/guardian/pkg/cli"
	"costguard-hq/guardian/pkg/export"
)

var reportFlags struct {
	jsonOutput bool
}

var reportCmd = &cobra.Command{
	Use:   "report <path>",
	Short: "Summarize an exported cost report",
	Long: `Read a JSON report produced by a tracking session and print its
spend summary and per-model breakdown.

Examples:
  # Summarize a report
  guardian report /var/lib/guardian/report.json

  # Re-emit the parsed report as JSON
  guardian report /var/lib/guardian/report.json --json-output`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := export.ReadReport(args[0])
		if err != nil {
			return cli.NewCommandError("report", err)
		}
		return printReport(cmd.OutOrStdout(), r, reportFlags.jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().BoolVar(&reportFlags.jsonOutput, "json-output", false, "output as JSON")
}

func printReport(w io.Writer, r *export.Report, jsonOutput bool) error {
	if jsonOutput {
		return cli.WriteJSON(w, r)
	}

	s := r.Summary
	fmt.Fprintf(w, "Total cost:     $%.6f\n", s.TotalCostUSD)
	fmt.Fprintf(w, "Requests:       %d\n", s.TotalRequests)
	fmt.Fprintf(w, "Input tokens:   %d\n", s.TotalInputTokens)
	fmt.Fprintf(w, "Output tokens:  %d\n", s.TotalOutputTokens)

	if len(s.CostByModel) == 0 {
		return nil
	}

	fmt.Fprintln(w)

	// Most expensive models first; ties broken by name for stable output.
	type modelCost struct {
		model string
		cost  float64
	}
	costs := make([]modelCost, 0, len(s.CostByModel))
	for model, cost := range s.CostByModel {
		costs = append(costs, modelCost{model, cost})
	}
	sort.Slice(costs, func(i, j int) bool {
		if costs[i].cost != costs[j].cost {
			return costs[i].cost > costs[j].cost
		}
		return costs[i].model < costs[j].model
	})

	tbl := cli.NewTable("MODEL", "COST (USD)")
	for _, mc := range costs {
		tbl.AddRow(mc.model, fmt.Sprintf("%.6f", mc.cost))
	}
	return tbl.Write(w)
}
