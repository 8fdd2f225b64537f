// Package pricing provides the model pricing catalog used for cost calculation.
//
// # Overview
//
// The catalog maps model identifiers to per-token pricing (expressed in USD
// per one million tokens) for the supported providers. It ships with a
// built-in pricing table and supports explicit per-model overrides for
// custom or self-hosted models.
//
// # Resolution
//
// Resolve tries an exact match first, then the longest registered prefix.
// Prefix matching handles dated model releases such as "gpt-4o-2024-08-06"
// resolving to the "gpt-4o" entry. An unknown model is an error, never a
// silent zero-cost fallback:
//
//	p, err := catalog.Resolve("gpt-4o")
//	if err != nil {
//	    // model is not priced; register an override or fix the name
//	}
//	cost := p.Cost(1500, 800)
//
// Zero-priced entries are valid and distinct from unknown models. A local
// model can be registered at $0/$0 and will resolve normally.
//
// # Overrides
//
// Overrides replace the whole entry for a model, they are never merged
// field by field:
//
//	catalog, err := pricing.Default().WithOverride(pricing.ModelPricing{
//	    Model:            "my-local-llama",
//	    Provider:         pricing.ProviderCustom,
//	    InputPerMillion:  0,
//	    OutputPerMillion: 0,
//	})
//
// # Thread Safety
//
// A Catalog is immutable after construction; WithOverride returns a new
// Catalog. Immutable catalogs may be shared freely across goroutines.
package pricing
