package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field
	// (e.g., "budget.hard_cap_usd").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateBudget(&cfg.Budget)...)
	errs = append(errs, validateOverrides(cfg.ModelOverrides)...)
	errs = append(errs, validateExport(&cfg.Export)...)
	errs = append(errs, validateLogging(&cfg.Logging)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// validateBudget validates the budget thresholds.
func validateBudget(cfg *BudgetConfig) []FieldError {
	var errs []FieldError

	if cfg.HardCapUSD != nil && *cfg.HardCapUSD < 0 {
		errs = append(errs, FieldError{
			Field:   "budget.hard_cap_usd",
			Message: fmt.Sprintf("must be non-negative, got %v", *cfg.HardCapUSD),
		})
	}

	if cfg.SoftWarningUSD != nil && *cfg.SoftWarningUSD < 0 {
		errs = append(errs, FieldError{
			Field:   "budget.soft_warning_usd",
			Message: fmt.Sprintf("must be non-negative, got %v", *cfg.SoftWarningUSD),
		})
	}

	if cfg.SlidingWindow != nil {
		if cfg.SlidingWindow.LimitUSD < 0 {
			errs = append(errs, FieldError{
				Field:   "budget.sliding_window.limit_usd",
				Message: fmt.Sprintf("must be non-negative, got %v", cfg.SlidingWindow.LimitUSD),
			})
		}
		if cfg.SlidingWindow.WindowSeconds <= 0 {
			errs = append(errs, FieldError{
				Field:   "budget.sliding_window.window_seconds",
				Message: fmt.Sprintf("must be positive, got %d", cfg.SlidingWindow.WindowSeconds),
			})
		}
	}

	return errs
}

// validateOverrides validates the pricing overrides.
// Zero costs are valid; they price a model as free, which is distinct from
// the model being unknown.
func validateOverrides(overrides map[string]ModelOverride) []FieldError {
	var errs []FieldError

	validProviders := map[string]bool{
		"openai":    true,
		"anthropic": true,
		"google":    true,
		"custom":    true,
	}

	for model, override := range overrides {
		if model == "" {
			errs = append(errs, FieldError{
				Field:   "model_overrides",
				Message: "model identifier must not be empty",
			})
			continue
		}
		if override.Provider != "" && !validProviders[override.Provider] {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("model_overrides.%s.provider", model),
				Message: fmt.Sprintf("unknown provider %q (options: openai, anthropic, google, custom)", override.Provider),
			})
		}
		if override.InputCostPerMillion < 0 {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("model_overrides.%s.input_cost_per_million", model),
				Message: fmt.Sprintf("must be non-negative, got %v", override.InputCostPerMillion),
			})
		}
		if override.OutputCostPerMillion < 0 {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("model_overrides.%s.output_cost_per_million", model),
				Message: fmt.Sprintf("must be non-negative, got %v", override.OutputCostPerMillion),
			})
		}
		if override.ContextWindow < 0 {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("model_overrides.%s.context_window", model),
				Message: fmt.Sprintf("must be non-negative, got %d", override.ContextWindow),
			})
		}
	}

	return errs
}

// validateExport validates the export configuration.
func validateExport(cfg *ExportConfig) []FieldError {
	var errs []FieldError

	switch cfg.Format {
	case "", "json", "csv":
	default:
		errs = append(errs, FieldError{
			Field:   "export.format",
			Message: fmt.Sprintf("unknown format %q (options: json, csv)", cfg.Format),
		})
	}

	if cfg.Schedule != "" {
		if _, err := cron.ParseStandard(cfg.Schedule); err != nil {
			errs = append(errs, FieldError{
				Field:   "export.schedule",
				Message: fmt.Sprintf("invalid cron expression %q: %v", cfg.Schedule, err),
			})
		}
		if cfg.Path == "" {
			errs = append(errs, FieldError{
				Field:   "export.path",
				Message: "path is required when a schedule is set",
			})
		}
	}

	return errs
}

// validateLogging validates the logging configuration.
func validateLogging(cfg *LoggingConfig) []FieldError {
	var errs []FieldError

	switch cfg.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown level %q (options: debug, info, warn, error)", cfg.Level),
		})
	}

	switch cfg.Format {
	case "", "text", "json":
	default:
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: fmt.Sprintf("unknown format %q (options: text, json)", cfg.Format),
		})
	}

	return errs
}
