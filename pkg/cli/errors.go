package cli

import "fmt"

// CommandError represents a failure of a CLI subcommand. It names the
// command so the root error message stays useful when several commands
// share helper code.
type CommandError struct {
	// Command is the subcommand that failed (e.g., "estimate").
	Command string

	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError wraps err as a failure of the named command.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{Command: command, Err: err}
}
