package guard

import (
	"context"
	"log/slog"

	"costguard-hq/guardian/pkg/budget"
	"costguard-hq/guardian/pkg/ledger"
)

// Usage reports the token consumption of one completed API call.
type Usage struct {
	// InputTokens is the number of prompt tokens consumed.
	InputTokens int

	// OutputTokens is the number of completion tokens produced.
	OutputTokens int

	// Tag is an optional label attached to the recorded event.
	Tag string
}

// CallFunc performs one provider API call and reports its token usage.
// It is supplied by the caller; the guard itself never talks to a network.
type CallFunc func(ctx context.Context) (Usage, error)

// Guard pairs a ledger with a budget manager and sequences the two-step
// contract around a provider call: enforce before, record after.
type Guard struct {
	led    *ledger.Ledger
	mgr    *budget.Manager
	logger *slog.Logger
}

// New creates a guard over the given ledger and manager.
func New(led *ledger.Ledger, mgr *budget.Manager) *Guard {
	return &Guard{
		led:    led,
		mgr:    mgr,
		logger: slog.Default().With("component", "guard"),
	}
}

// Ledger returns the underlying ledger, for exporters and read-only
// inspection.
func (g *Guard) Ledger() *ledger.Ledger {
	return g.led
}

// Check enforces the budget policies against the current ledger state.
// A *budget.ExceededError return means the next call must be denied.
func (g *Guard) Check() (*budget.Result, error) {
	return g.mgr.Enforce(g.led)
}

// Record prices a completed call and appends it to the ledger.
func (g *Guard) Record(model string, usage Usage, opts ...ledger.RecordOption) (ledger.Event, error) {
	if usage.Tag != "" {
		opts = append(opts, ledger.WithTag(usage.Tag))
	}
	return g.led.Record(model, usage.InputTokens, usage.OutputTokens, opts...)
}

// Do runs the full guarded sequence: enforce the budget, invoke call, and
// record its reported usage.
//
// Enforcement failure denies the call: call is never invoked and the
// returned error unwraps to budget.ErrBudgetExceeded. A failed call is
// not recorded, since there is no usage to price. If the call succeeds
// but its model cannot be priced, the call's effect stands while the
// returned event and error report the recording failure.
func (g *Guard) Do(ctx context.Context, model string, call CallFunc) (ledger.Event, error) {
	if _, err := g.Check(); err != nil {
		g.logger.Warn("call denied by budget policy", "model", model, "error", err)
		return ledger.Event{}, err
	}

	if err := ctx.Err(); err != nil {
		return ledger.Event{}, err
	}

	usage, err := call(ctx)
	if err != nil {
		return ledger.Event{}, err
	}

	ev, err := g.Record(model, usage)
	if err != nil {
		g.logger.Error("failed to record usage", "model", model, "error", err)
		return ledger.Event{}, err
	}

	g.logger.Debug("recorded call",
		"model", model,
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
		"cost_usd", ev.CostUSD,
	)

	return ev, nil
}
