// Package config provides YAML configuration loading, validation and
// assembly for Guardian.
//
// # Loading
//
// Configuration is loaded from a YAML file, defaults are applied, and the
// result is validated as a whole. All validation failures are collected
// into one ValidationError rather than reported one at a time:
//
//	cfg, err := config.LoadConfig("guardian.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// LoadConfigWithEnvOverrides additionally honors GUARDIAN_* environment
// variables (for example GUARDIAN_BUDGET_HARD_CAP_USD), which always take
// precedence over file values.
//
// # Assembly
//
// Build turns a parsed configuration into the core objects: a pricing
// catalog with the configured overrides applied, and a budget manager with
// the configured policies registered in a fixed order (hard cap, soft
// warning, sliding window):
//
//	catalog, mgr, err := config.Build(cfg)
//
// # Hot Reload
//
// Watcher reloads the file on change with debouncing, handing each
// successfully validated configuration to a callback. A reload that fails
// validation is logged and dropped, keeping the previous configuration in
// effect.
package config
