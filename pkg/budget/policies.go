package budget

import (
	"fmt"
	"time"

	"costguard-hq/guardian/pkg/ledger"
)

// HardCap blocks once cumulative ledger cost exceeds an absolute limit.
//
// The boundary is exclusive: a total exactly equal to the limit still
// passes, only strictly greater totals block.
type HardCap struct {
	// Limit is the spend ceiling in USD.
	Limit float64
}

// NewHardCap creates a hard-cap policy with the given limit in USD.
func NewHardCap(limitUSD float64) *HardCap {
	return &HardCap{Limit: limitUSD}
}

// Name returns the policy identifier.
func (p *HardCap) Name() string { return "hard_cap" }

// Evaluate blocks iff total cost is strictly greater than the limit.
func (p *HardCap) Evaluate(led *ledger.Ledger, now time.Time) Verdict {
	total := led.TotalCost()
	if total > p.Limit {
		return Verdict{
			Policy:      p.Name(),
			Action:      ActionBlock,
			Message:     fmt.Sprintf("hard cap exceeded: spent $%.4f, limit $%.2f", total, p.Limit),
			CurrentCost: total,
			Limit:       p.Limit,
		}
	}
	return Verdict{
		Policy:      p.Name(),
		Action:      ActionAllow,
		Message:     fmt.Sprintf("within budget: $%.4f / $%.2f", total, p.Limit),
		CurrentCost: total,
		Limit:       p.Limit,
	}
}

// SoftWarning warns once cumulative ledger cost reaches a threshold.
// It never blocks.
type SoftWarning struct {
	// Threshold is the spend level in USD at which to start warning.
	Threshold float64
}

// NewSoftWarning creates a soft-warning policy with the given threshold in USD.
func NewSoftWarning(warningUSD float64) *SoftWarning {
	return &SoftWarning{Threshold: warningUSD}
}

// Name returns the policy identifier.
func (p *SoftWarning) Name() string { return "soft_warning" }

// Evaluate warns iff total cost has reached the threshold.
func (p *SoftWarning) Evaluate(led *ledger.Ledger, now time.Time) Verdict {
	total := led.TotalCost()
	if total >= p.Threshold {
		return Verdict{
			Policy:      p.Name(),
			Action:      ActionWarn,
			Message:     fmt.Sprintf("spend $%.4f has reached the soft limit $%.2f", total, p.Threshold),
			CurrentCost: total,
			Limit:       p.Threshold,
		}
	}
	return Verdict{
		Policy:      p.Name(),
		Action:      ActionAllow,
		Message:     fmt.Sprintf("within budget: $%.4f / $%.2f", total, p.Threshold),
		CurrentCost: total,
		Limit:       p.Threshold,
	}
}

// SlidingWindow blocks once the cost recorded within a continuously
// sliding time window exceeds a limit.
//
// The window is [now-Window, now] and slides with the "now" supplied at
// evaluation time, so an event stops counting the instant it ages out.
// There are no bucket boundaries and no approximation: the in-window sum
// is computed from the ledger's event timestamps.
type SlidingWindow struct {
	// Limit is the maximum spend in USD within the window.
	Limit float64

	// Window is the length of the sliding window.
	Window time.Duration
}

// NewSlidingWindow creates a sliding-window policy.
// A non-positive window is a configuration error.
func NewSlidingWindow(limitUSD float64, window time.Duration) (*SlidingWindow, error) {
	if window <= 0 {
		return nil, &ConfigError{
			Policy:  "sliding_window",
			Param:   "window",
			Message: fmt.Sprintf("must be positive, got %v", window),
		}
	}
	return &SlidingWindow{Limit: limitUSD, Window: window}, nil
}

// Name returns the policy identifier.
func (p *SlidingWindow) Name() string { return "sliding_window" }

// Evaluate blocks iff the in-window cost sum is strictly greater than the limit.
func (p *SlidingWindow) Evaluate(led *ledger.Ledger, now time.Time) Verdict {
	cutoff := now.Add(-p.Window)
	sum := led.CostSince(cutoff)

	if sum > p.Limit {
		return Verdict{
			Policy: p.Name(),
			Action: ActionBlock,
			Message: fmt.Sprintf("sliding window (%s) spend $%.4f exceeds limit $%.2f",
				p.Window, sum, p.Limit),
			CurrentCost: sum,
			Limit:       p.Limit,
		}
	}
	return Verdict{
		Policy:      p.Name(),
		Action:      ActionAllow,
		Message:     fmt.Sprintf("window spend $%.4f / $%.2f", sum, p.Limit),
		CurrentCost: sum,
		Limit:       p.Limit,
	}
}
