// Package ledger provides an append-only, concurrency-safe record of LLM
// API call costs.
//
// # Overview
//
// A Ledger owns an ordered sequence of cost events plus aggregates that are
// maintained incrementally: total cost, token totals, per-model cost and
// request count. Aggregate reads are O(1); they are never recomputed by
// scanning history.
//
//	led := ledger.New(pricing.Default())
//
//	ev, err := led.Record("gpt-4o", 1500, 800)
//	if err != nil {
//	    // unknown model or invalid token counts; nothing was recorded
//	}
//
//	fmt.Printf("spent $%.6f over %d requests\n", led.TotalCost(), led.RequestCount())
//
// # Cost Semantics
//
// Cost is computed from the catalog once, at record time. Later catalog
// changes never alter recorded history. Events are immutable values owned
// by the ledger; accessors return copies.
//
// # Thread Safety
//
// One mutex guards the event sequence and every aggregate, so a reader
// never observes a partially updated state (for example a new total cost
// with a stale per-model breakdown). A single Ledger may be shared by any
// number of concurrently recording callers.
package ledger
