package config

// Config is the root configuration structure for Guardian.
// It contains the budget policy thresholds, pricing overrides, export
// settings, and logging configuration.
type Config struct {
	// Budget contains the spending limit thresholds. Every threshold is
	// optional; an empty budget section registers no policies.
	Budget BudgetConfig `yaml:"budget"`

	// ModelOverrides maps model identifiers to pricing overrides. An
	// override replaces the built-in entry for that model completely;
	// fields are never merged with the defaults.
	ModelOverrides map[string]ModelOverride `yaml:"model_overrides"`

	// Export contains configuration for scheduled ledger snapshot exports
	// and the Prometheus metrics endpoint.
	Export ExportConfig `yaml:"export"`

	// Logging contains log output configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// BudgetConfig contains the spending limit thresholds.
// Pointer fields distinguish "not configured" from an explicit zero.
type BudgetConfig struct {
	// HardCapUSD is the absolute spend ceiling in USD. Spend strictly
	// above this value blocks further calls; spend exactly equal to it
	// still passes. Nil disables the hard cap.
	HardCapUSD *float64 `yaml:"hard_cap_usd"`

	// SoftWarningUSD is the spend level in USD at which warnings start.
	// Warnings never block. Nil disables the soft warning.
	SoftWarningUSD *float64 `yaml:"soft_warning_usd"`

	// SlidingWindow limits spend within a continuously sliding time
	// window. Nil disables the window policy.
	SlidingWindow *SlidingWindowConfig `yaml:"sliding_window"`
}

// SlidingWindowConfig configures the sliding-window budget policy.
type SlidingWindowConfig struct {
	// LimitUSD is the maximum spend in USD within the window.
	LimitUSD float64 `yaml:"limit_usd"`

	// WindowSeconds is the window length in seconds. Must be positive.
	WindowSeconds int `yaml:"window_seconds"`
}

// ModelOverride is a user-supplied pricing entry for one model.
// The map key in Config.ModelOverrides is the model identifier.
type ModelOverride struct {
	// Provider is the vendor behind the model.
	// Options: "openai", "anthropic", "google", "custom".
	// Default: "custom"
	Provider string `yaml:"provider"`

	// InputCostPerMillion is the cost in USD per 1M input tokens.
	// Zero is valid and prices the model's input as free.
	InputCostPerMillion float64 `yaml:"input_cost_per_million"`

	// OutputCostPerMillion is the cost in USD per 1M output tokens.
	// Zero is valid and prices the model's output as free.
	OutputCostPerMillion float64 `yaml:"output_cost_per_million"`

	// ContextWindow is the model's maximum context size in tokens.
	// Zero means unknown.
	ContextWindow int `yaml:"context_window"`
}

// ExportConfig contains configuration for ledger snapshot exports.
type ExportConfig struct {
	// Path is the output file for scheduled snapshots.
	// Required when Schedule is set.
	Path string `yaml:"path"`

	// Format selects the snapshot format.
	// Options: "json", "csv".
	// Default: "json"
	Format string `yaml:"format"`

	// Schedule is a cron expression ("0 * * * *") or descriptor
	// ("@hourly", "@every 15m") for periodic snapshot exports.
	// Empty disables scheduled exports.
	Schedule string `yaml:"schedule"`

	// PrometheusEnabled controls whether the host should expose the
	// ledger's Prometheus metrics endpoint.
	// Default: false
	PrometheusEnabled bool `yaml:"prometheus_enabled"`
}

// LoggingConfig contains log output configuration.
type LoggingConfig struct {
	// Level is the minimum log level.
	// Options: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the log output format.
	// Options: "text", "json".
	// Default: "text"
	Format string `yaml:"format"`
}
