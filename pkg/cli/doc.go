// Package cli provides shared helpers for the guardian command line:
// table and JSON output rendering, and command-scoped error wrapping.
package cli
