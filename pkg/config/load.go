package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors. The configuration is not modified by environment variables; use
// LoadConfigWithEnvOverrides for that functionality.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and
// applies environment variable overrides. Environment variables follow the
// naming convention GUARDIAN_SECTION_FIELD (e.g., GUARDIAN_BUDGET_HARD_CAP_USD).
// Environment variables always take precedence over file-based configuration.
//
// The loading sequence is:
//  1. Load YAML from file
//  2. Apply default values
//  3. Apply environment variable overrides
//  4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Unparseable values are ignored and the file value kept.
func applyEnvOverrides(cfg *Config) {
	// Budget overrides
	if val := os.Getenv("GUARDIAN_BUDGET_HARD_CAP_USD"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Budget.HardCapUSD = &f
		}
	}
	if val := os.Getenv("GUARDIAN_BUDGET_SOFT_WARNING_USD"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Budget.SoftWarningUSD = &f
		}
	}
	if val := os.Getenv("GUARDIAN_BUDGET_SLIDING_WINDOW_LIMIT_USD"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			if cfg.Budget.SlidingWindow == nil {
				cfg.Budget.SlidingWindow = &SlidingWindowConfig{}
			}
			cfg.Budget.SlidingWindow.LimitUSD = f
		}
	}
	if val := os.Getenv("GUARDIAN_BUDGET_SLIDING_WINDOW_SECONDS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			if cfg.Budget.SlidingWindow == nil {
				cfg.Budget.SlidingWindow = &SlidingWindowConfig{}
			}
			cfg.Budget.SlidingWindow.WindowSeconds = i
		}
	}

	// Export overrides
	if val := os.Getenv("GUARDIAN_EXPORT_PATH"); val != "" {
		cfg.Export.Path = val
	}
	if val := os.Getenv("GUARDIAN_EXPORT_FORMAT"); val != "" {
		cfg.Export.Format = val
	}
	if val := os.Getenv("GUARDIAN_EXPORT_SCHEDULE"); val != "" {
		cfg.Export.Schedule = val
	}
	if val := os.Getenv("GUARDIAN_EXPORT_PROMETHEUS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Export.PrometheusEnabled = b
		}
	}

	// Logging overrides
	if val := os.Getenv("GUARDIAN_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("GUARDIAN_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}
}
