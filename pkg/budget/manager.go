package budget

import (
	"time"

	"costguard-hq/guardian/pkg/ledger"
)

// WarningHandler receives warn verdicts during enforcement. It is invoked
// synchronously; a panic inside the handler propagates to the caller of
// Enforce, since a broken alert integration is the host's concern.
type WarningHandler func(Verdict)

// Manager evaluates an ordered set of policies against a ledger.
//
// Policies are evaluated in insertion order, which makes the reported
// message deterministic when several policies block at once. The manager
// itself holds no mutable state after setup; see the package documentation
// for the concurrency contract.
type Manager struct {
	policies []Policy
	onWarn   WarningHandler
}

// ManagerOption configures a Manager at construction.
type ManagerOption func(*Manager)

// WithWarningHandler registers a handler for warn verdicts.
func WithWarningHandler(h WarningHandler) ManagerOption {
	return func(m *Manager) { m.onWarn = h }
}

// NewManager creates a manager with no policies registered.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add registers a policy. Policies are evaluated in the order they were
// added. Returns the manager for chaining. Not safe to call concurrently
// with Enforce.
func (m *Manager) Add(p Policy) *Manager {
	m.policies = append(m.policies, p)
	return m
}

// Policies returns the registered policies in evaluation order.
func (m *Manager) Policies() []Policy {
	out := make([]Policy, len(m.policies))
	copy(out, m.policies)
	return out
}

// Result summarizes one enforcement pass.
type Result struct {
	// Verdicts contains one verdict per registered policy, in insertion
	// order. Present even when enforcement blocked.
	Verdicts []Verdict

	// Warnings contains the subset of verdicts with ActionWarn.
	Warnings []Verdict
}

// Ok reports whether no policy blocked.
func (r *Result) Ok() bool {
	for _, v := range r.Verdicts {
		if v.Action == ActionBlock {
			return false
		}
	}
	return true
}

// Check evaluates every policy without turning a block into an error.
//
// "now" is captured once and shared by all policies so that window
// boundaries are consistent within the pass. Warn verdicts invoke the
// warning handler synchronously.
func (m *Manager) Check(led *ledger.Ledger) *Result {
	now := time.Now()
	result := &Result{Verdicts: make([]Verdict, 0, len(m.policies))}

	// Evaluate everything, even after a block: complete warning telemetry
	// is worth more than the saved evaluations.
	for _, p := range m.policies {
		v := p.Evaluate(led, now)
		result.Verdicts = append(result.Verdicts, v)

		if v.Action == ActionWarn {
			result.Warnings = append(result.Warnings, v)
			if m.onWarn != nil {
				m.onWarn(v)
			}
		}
	}

	return result
}

// Enforce evaluates every policy and fails if any of them blocks.
//
// On a block it returns a *ExceededError carrying the first blocking
// verdict in insertion order together with the full verdict list. With no
// block it returns the pass summary, including any warnings raised.
func (m *Manager) Enforce(led *ledger.Ledger) (*Result, error) {
	result := m.Check(led)

	for _, v := range result.Verdicts {
		if v.Action == ActionBlock {
			return nil, &ExceededError{Verdict: v, Verdicts: result.Verdicts}
		}
	}

	return result, nil
}
