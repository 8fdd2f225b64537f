package budget

import (
	"time"

	"costguard-hq/guardian/pkg/ledger"
)

// Action is the outcome class of a policy evaluation.
type Action string

const (
	// ActionAllow permits the next call to proceed.
	ActionAllow Action = "allow"

	// ActionWarn permits the call but surfaces a warning.
	ActionWarn Action = "warn"

	// ActionBlock denies the call.
	ActionBlock Action = "block"
)

// Verdict is the result of evaluating a single policy against a ledger.
type Verdict struct {
	// Policy names the policy that produced this verdict.
	Policy string

	// Action is the outcome: allow, warn or block.
	Action Action

	// Message is a human-readable explanation, including the relevant
	// limit and observed spend.
	Message string

	// CurrentCost is the spend the policy evaluated, in USD. For windowed
	// policies this is the in-window sum, not the all-time total.
	CurrentCost float64

	// Limit is the policy's configured threshold in USD.
	Limit float64
}

// Policy is one budget rule evaluated against a ledger.
//
// Evaluate must be a pure read: it may inspect the ledger and the supplied
// "now" but never mutates either. The same now is passed to every policy
// within one enforcement pass so window boundaries stay consistent.
type Policy interface {
	// Name returns a stable identifier for the policy variant.
	Name() string

	// Evaluate inspects the ledger and returns a verdict.
	Evaluate(led *ledger.Ledger, now time.Time) Verdict
}
