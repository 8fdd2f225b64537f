package pricing

// defaultPricing is the built-in pricing table.
// All prices are USD per 1M tokens. Last updated: 2025-01-15.
var defaultPricing = []ModelPricing{
	// OpenAI
	{Model: "gpt-4o", Provider: ProviderOpenAI, InputPerMillion: 2.50, OutputPerMillion: 10.00, ContextWindow: 128_000},
	{Model: "gpt-4o-mini", Provider: ProviderOpenAI, InputPerMillion: 0.15, OutputPerMillion: 0.60, ContextWindow: 128_000},
	{Model: "gpt-4-turbo", Provider: ProviderOpenAI, InputPerMillion: 10.00, OutputPerMillion: 30.00, ContextWindow: 128_000},
	{Model: "gpt-4", Provider: ProviderOpenAI, InputPerMillion: 30.00, OutputPerMillion: 60.00, ContextWindow: 8_192},
	{Model: "gpt-3.5-turbo", Provider: ProviderOpenAI, InputPerMillion: 0.50, OutputPerMillion: 1.50, ContextWindow: 16_385},
	{Model: "o1", Provider: ProviderOpenAI, InputPerMillion: 15.00, OutputPerMillion: 60.00, ContextWindow: 200_000},
	{Model: "o1-mini", Provider: ProviderOpenAI, InputPerMillion: 3.00, OutputPerMillion: 12.00, ContextWindow: 128_000},
	{Model: "o3-mini", Provider: ProviderOpenAI, InputPerMillion: 1.10, OutputPerMillion: 4.40, ContextWindow: 200_000},

	// Anthropic
	{Model: "claude-opus-4-20250514", Provider: ProviderAnthropic, InputPerMillion: 15.00, OutputPerMillion: 75.00, ContextWindow: 200_000},
	{Model: "claude-sonnet-4-20250514", Provider: ProviderAnthropic, InputPerMillion: 3.00, OutputPerMillion: 15.00, ContextWindow: 200_000},
	{Model: "claude-3-5-sonnet-20241022", Provider: ProviderAnthropic, InputPerMillion: 3.00, OutputPerMillion: 15.00, ContextWindow: 200_000},
	{Model: "claude-3-5-haiku-20241022", Provider: ProviderAnthropic, InputPerMillion: 0.80, OutputPerMillion: 4.00, ContextWindow: 200_000},
	{Model: "claude-3-opus-20240229", Provider: ProviderAnthropic, InputPerMillion: 15.00, OutputPerMillion: 75.00, ContextWindow: 200_000},
	{Model: "claude-3-haiku-20240307", Provider: ProviderAnthropic, InputPerMillion: 0.25, OutputPerMillion: 1.25, ContextWindow: 200_000},

	// Google
	{Model: "gemini-2.0-flash", Provider: ProviderGoogle, InputPerMillion: 0.10, OutputPerMillion: 0.40, ContextWindow: 1_000_000},
	{Model: "gemini-1.5-pro", Provider: ProviderGoogle, InputPerMillion: 1.25, OutputPerMillion: 5.00, ContextWindow: 2_000_000},
	{Model: "gemini-1.5-flash", Provider: ProviderGoogle, InputPerMillion: 0.075, OutputPerMillion: 0.30, ContextWindow: 1_000_000},
}
