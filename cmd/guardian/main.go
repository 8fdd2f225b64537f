// Guardian is a metering and budget-enforcement tool for LLM API usage.
//
// It prices token usage against a built-in (and overridable) pricing
// table, tracks spend in an append-only cost ledger, and enforces
// configurable budget policies before further calls are made.
//
// Usage:
//
//	# List known models and their pricing
//	guardian models --provider openai
//
//	# Estimate the cost of a call before making it
//	guardian estimate gpt-4o --input-tokens 1500 --output-tokens 800
//
//	# Inspect a JSON report exported from a tracking session
//	guardian report /var/lib/guardian/report.json
//
//	# Show version information
//	guardian version
package main

func main() {
	Execute()
}
