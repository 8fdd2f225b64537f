package budget

import (
	"errors"
	"fmt"
)

// Error sentinels for budget enforcement and configuration.
var (
	// ErrBudgetExceeded is returned by Enforce when a policy blocks.
	ErrBudgetExceeded = errors.New("budget exceeded")

	// ErrConfigInvalid is returned for invalid policy parameters.
	ErrConfigInvalid = errors.New("invalid budget configuration")
)

// ExceededError is returned by Manager.Enforce when a policy blocks.
// It carries the first blocking verdict in insertion order plus every
// verdict from the pass for telemetry.
type ExceededError struct {
	// Verdict is the first blocking verdict.
	Verdict Verdict

	// Verdicts contains all verdicts from the enforcement pass, in
	// policy insertion order.
	Verdicts []Verdict
}

// Error implements the error interface.
func (e *ExceededError) Error() string {
	return fmt.Sprintf("budget exceeded: %s", e.Verdict.Message)
}

// Unwrap lets errors.Is match ErrBudgetExceeded.
func (e *ExceededError) Unwrap() error {
	return ErrBudgetExceeded
}

// ConfigError reports an invalid policy parameter at construction time.
type ConfigError struct {
	// Policy names the policy variant being constructed.
	Policy string

	// Param names the offending parameter.
	Param string

	// Message explains the constraint that was violated.
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Policy, e.Param, e.Message)
}

// Unwrap lets errors.Is match ErrConfigInvalid.
func (e *ConfigError) Unwrap() error {
	return ErrConfigInvalid
}
