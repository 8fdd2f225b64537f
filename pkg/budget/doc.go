// Package budget provides composable spending policies and their
// enforcement against a cost ledger.
//
// # Policies
//
// Three policy variants are supported:
//
//   - HardCap: blocks once cumulative cost exceeds an absolute limit.
//     The boundary is exclusive; a total exactly equal to the limit passes.
//   - SoftWarning: warns (never blocks) once cumulative cost reaches a
//     threshold.
//   - SlidingWindow: blocks once the cost recorded within a continuously
//     sliding time window exceeds a limit. The window moves with "now",
//     not with fixed bucket boundaries, so expired events stop counting
//     the moment they age out.
//
// Policies are immutable configuration plus a pure evaluation over ledger
// state; no policy ever mutates the ledger.
//
// # Enforcement
//
// A Manager evaluates registered policies in insertion order against a
// single "now" captured once per call. Every policy is evaluated even
// after a block so that warning telemetry is complete; the first blocking
// verdict in insertion order is the one reported.
//
//	mgr := budget.NewManager(budget.WithWarningHandler(func(v budget.Verdict) {
//	    slog.Warn("budget warning", "message", v.Message)
//	})).
//	    Add(budget.NewSoftWarning(4.00)).
//	    Add(budget.NewHardCap(5.00))
//
//	if _, err := mgr.Enforce(led); err != nil {
//	    var exceeded *budget.ExceededError
//	    if errors.As(err, &exceeded) {
//	        // deny the next API call
//	    }
//	}
//
// # Thread Safety
//
// A Manager is immutable after setup (Add is not safe concurrently with
// Enforce). Enforcement is a read-only evaluation and may run from many
// goroutines at once, provided the warning handler tolerates concurrent
// invocation.
package budget
