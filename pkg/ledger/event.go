package ledger

import (
	"errors"
	"fmt"
	"time"

	"costguard-hq/guardian/pkg/pricing"
)

// Event is a single recorded API call with its computed cost.
// Events are immutable once created.
type Event struct {
	// ID uniquely identifies the event.
	ID string `json:"id"`

	// Model is the model identifier the call was priced against.
	Model string `json:"model"`

	// Provider is the vendor behind the model.
	Provider pricing.Provider `json:"provider"`

	// InputTokens is the number of prompt tokens.
	InputTokens int `json:"input_tokens"`

	// OutputTokens is the number of completion tokens.
	OutputTokens int `json:"output_tokens"`

	// CostUSD is the cost computed at record time. It is never recomputed.
	CostUSD float64 `json:"cost_usd"`

	// RecordedAt is when the event was appended to the ledger.
	RecordedAt time.Time `json:"recorded_at"`

	// Tag is an optional caller-supplied label (request ID, tenant, ...).
	Tag string `json:"tag,omitempty"`
}

// TotalTokens returns input plus output tokens.
func (e Event) TotalTokens() int {
	return e.InputTokens + e.OutputTokens
}

// ErrInvalidInput is returned for structurally invalid record arguments
// such as negative token counts. Use errors.Is to test for it.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a Record call with invalid arguments.
type InvalidInputError struct {
	// Field names the offending argument.
	Field string

	// Value is the rejected value.
	Value int
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s must be non-negative, got %d", e.Field, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}
