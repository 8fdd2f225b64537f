package config

import (
	"fmt"
	"time"

	"costguard-hq/guardian/pkg/budget"
	"costguard-hq/guardian/pkg/pricing"
)

// BuildCatalog assembles a pricing catalog from the built-in table plus
// the configured overrides. Each override replaces the built-in entry for
// its model completely.
func BuildCatalog(cfg *Config) (*pricing.Catalog, error) {
	catalog := pricing.Default()

	for model, override := range cfg.ModelOverrides {
		next, err := catalog.WithOverride(pricing.ModelPricing{
			Model:            model,
			Provider:         pricing.Provider(override.Provider),
			InputPerMillion:  override.InputCostPerMillion,
			OutputPerMillion: override.OutputCostPerMillion,
			ContextWindow:    override.ContextWindow,
		})
		if err != nil {
			return nil, fmt.Errorf("invalid override for model %q: %w", model, err)
		}
		catalog = next
	}

	return catalog, nil
}

// BuildManager assembles a budget manager from the configured thresholds.
// Policies are registered in a fixed order: hard cap, then soft warning,
// then sliding window, so enforcement messages are deterministic across
// restarts regardless of the YAML key order.
func BuildManager(cfg *Config, opts ...budget.ManagerOption) (*budget.Manager, error) {
	mgr := budget.NewManager(opts...)

	if cfg.Budget.HardCapUSD != nil {
		mgr.Add(budget.NewHardCap(*cfg.Budget.HardCapUSD))
	}
	if cfg.Budget.SoftWarningUSD != nil {
		mgr.Add(budget.NewSoftWarning(*cfg.Budget.SoftWarningUSD))
	}
	if cfg.Budget.SlidingWindow != nil {
		window := time.Duration(cfg.Budget.SlidingWindow.WindowSeconds) * time.Second
		policy, err := budget.NewSlidingWindow(cfg.Budget.SlidingWindow.LimitUSD, window)
		if err != nil {
			return nil, fmt.Errorf("invalid sliding window configuration: %w", err)
		}
		mgr.Add(policy)
	}

	return mgr, nil
}

// Build assembles the pricing catalog and budget manager from a parsed
// configuration in one call.
func Build(cfg *Config, opts ...budget.ManagerOption) (*pricing.Catalog, *budget.Manager, error) {
	catalog, err := BuildCatalog(cfg)
	if err != nil {
		return nil, nil, err
	}

	mgr, err := BuildManager(cfg, opts...)
	if err != nil {
		return nil, nil, err
	}

	return catalog, mgr, nil
}
