package config

// Default values applied by ApplyDefaults.
const (
	// DefaultExportFormat is the snapshot format when none is configured.
	DefaultExportFormat = "json"

	// DefaultLogLevel is the log level when none is configured.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the log format when none is configured.
	DefaultLogFormat = "text"

	// DefaultOverrideProvider is the provider assigned to a pricing
	// override that does not name one.
	DefaultOverrideProvider = "custom"
)

// DefaultConfig returns a configuration with all defaults applied and no
// budget thresholds set.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in default values for any unset configuration
// fields. It never overwrites a value the user supplied; in particular it
// leaves nil budget thresholds nil, since an absent threshold means the
// corresponding policy is disabled rather than zero.
func ApplyDefaults(cfg *Config) {
	if cfg.Export.Format == "" {
		cfg.Export.Format = DefaultExportFormat
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}

	for model, override := range cfg.ModelOverrides {
		if override.Provider == "" {
			override.Provider = DefaultOverrideProvider
			cfg.ModelOverrides[model] = override
		}
	}
}
