// Package export serializes ledger state for external consumers.
//
// # Formats
//
// Four sinks are provided:
//
//   - JSONExporter: summary plus the full event list, optionally indented.
//   - CSVExporter: one row per event, optional header.
//   - Prometheus: a prometheus.Collector for embedding into a host
//     registry, an HTTP handler, and WritePrometheus for the plain text
//     exposition format.
//   - SQLiteSink: point-in-time report snapshots written to a SQLite file.
//
// All sinks are read-only over the ledger; exporting never mutates state.
// The SQLite sink stores report artifacts, it is not ledger durability:
// the ledger itself stays in memory and starts empty on process start.
//
// # Scheduled Exports
//
// Scheduler writes periodic snapshots on a cron schedule:
//
//	sched := export.NewScheduler(led, export.SchedulerConfig{
//	    Schedule: "@every 15m",
//	    Path:     "/var/lib/guardian/costs.json",
//	    Format:   "json",
//	})
//	if err := sched.Start(ctx); err != nil {
//	    // invalid schedule or format
//	}
//	defer sched.Stop()
//
// # Metric Names
//
// Prometheus metrics use the llm_cost_guardian prefix:
//
//	llm_cost_guardian_total_cost_usd                     gauge
//	llm_cost_guardian_cost_by_model_usd{model="gpt-4o"}  gauge
//	llm_cost_guardian_total_requests                     counter
//	llm_cost_guardian_total_input_tokens                 counter
//	llm_cost_guardian_total_output_tokens                counter
package export
