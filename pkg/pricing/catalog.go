package pricing

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrModelNotFound is returned when a model has no pricing entry.
// Use errors.Is to test for it; the concrete error is *NotFoundError.
var ErrModelNotFound = errors.New("model pricing not found")

// NotFoundError reports a lookup for a model with no pricing entry.
type NotFoundError struct {
	// Model is the identifier that failed to resolve.
	Model string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no pricing for model %q: register an override or use a known model name", e.Model)
}

// Unwrap lets errors.Is match ErrModelNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrModelNotFound
}

// Catalog maps model identifiers to pricing entries.
//
// A Catalog is immutable after construction. WithOverride returns a new
// Catalog with the entry replaced, leaving the receiver untouched, so a
// catalog may be shared across goroutines without locking.
type Catalog struct {
	entries map[string]ModelPricing
}

// NewCatalog creates a catalog from the given entries.
// Entries with the same model identifier replace earlier ones.
// Returns an error if any entry fails validation.
func NewCatalog(entries ...ModelPricing) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]ModelPricing, len(entries))}
	for _, e := range entries {
		if err := validateEntry(e); err != nil {
			return nil, err
		}
		c.entries[e.Model] = e
	}
	return c, nil
}

// Default returns a catalog built from the built-in pricing table.
func Default() *Catalog {
	c, err := NewCatalog(defaultPricing...)
	if err != nil {
		// The built-in table is validated by tests; a failure here is a bug.
		panic(fmt.Sprintf("pricing: invalid built-in table: %v", err))
	}
	return c
}

// Resolve looks up pricing for a model identifier.
//
// It tries an exact match first, then the longest registered prefix so
// that dated releases such as "gpt-4o-2024-08-06" resolve to "gpt-4o".
// Returns a *NotFoundError when no entry matches.
func (c *Catalog) Resolve(model string) (ModelPricing, error) {
	if p, ok := c.entries[model]; ok {
		return p, nil
	}

	// Longest prefix wins so "gpt-4-turbo-2024" prefers "gpt-4-turbo"
	// over "gpt-4".
	var best ModelPricing
	bestLen := -1
	for name, p := range c.entries {
		if strings.HasPrefix(model, name) && len(name) > bestLen {
			best = p
			bestLen = len(name)
		}
	}
	if bestLen >= 0 {
		return best, nil
	}

	return ModelPricing{}, &NotFoundError{Model: model}
}

// WithOverride returns a new catalog with the entry for p.Model replaced.
// The override replaces the whole entry; fields are never merged.
func (c *Catalog) WithOverride(p ModelPricing) (*Catalog, error) {
	if err := validateEntry(p); err != nil {
		return nil, err
	}

	next := &Catalog{entries: make(map[string]ModelPricing, len(c.entries)+1)}
	for name, entry := range c.entries {
		next.entries[name] = entry
	}
	next.entries[p.Model] = p
	return next, nil
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Models returns all entries sorted by model identifier.
// If provider is non-empty, only entries for that provider are returned.
func (c *Catalog) Models(provider Provider) []ModelPricing {
	models := make([]ModelPricing, 0, len(c.entries))
	for _, p := range c.entries {
		if provider != "" && p.Provider != provider {
			continue
		}
		models = append(models, p)
	}
	sort.Slice(models, func(i, j int) bool {
		return models[i].Model < models[j].Model
	})
	return models
}

// validateEntry checks a pricing entry for structural problems.
// Zero costs are valid; negative costs and empty identifiers are not.
func validateEntry(p ModelPricing) error {
	if p.Model == "" {
		return fmt.Errorf("pricing entry has empty model identifier")
	}
	if p.InputPerMillion < 0 {
		return fmt.Errorf("model %q: input cost must be non-negative, got %v", p.Model, p.InputPerMillion)
	}
	if p.OutputPerMillion < 0 {
		return fmt.Errorf("model %q: output cost must be non-negative, got %v", p.Model, p.OutputPerMillion)
	}
	return nil
}
