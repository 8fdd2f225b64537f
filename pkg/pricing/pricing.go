package pricing

// Provider identifies the vendor behind a model.
type Provider string

const (
	// ProviderOpenAI is the OpenAI API.
	ProviderOpenAI Provider = "openai"

	// ProviderAnthropic is the Anthropic API.
	ProviderAnthropic Provider = "anthropic"

	// ProviderGoogle is the Google (Gemini) API.
	ProviderGoogle Provider = "google"

	// ProviderCustom is any user-registered model, typically self-hosted.
	ProviderCustom Provider = "custom"
)

// ModelPricing contains per-token pricing for a single model.
// All prices are in USD per one million tokens.
type ModelPricing struct {
	// Model is the model identifier (e.g., "gpt-4o").
	Model string

	// Provider is the vendor behind the model.
	Provider Provider

	// InputPerMillion is the cost in USD per 1M input (prompt) tokens.
	InputPerMillion float64

	// OutputPerMillion is the cost in USD per 1M output (completion) tokens.
	OutputPerMillion float64

	// ContextWindow is the model's maximum context size in tokens.
	// Zero means unknown.
	ContextWindow int
}

// InputPerToken returns the cost in USD for a single input token.
func (p ModelPricing) InputPerToken() float64 {
	return p.InputPerMillion / 1e6
}

// OutputPerToken returns the cost in USD for a single output token.
func (p ModelPricing) OutputPerToken() float64 {
	return p.OutputPerMillion / 1e6
}

// Cost calculates the total cost in USD for the given token counts.
// Negative counts contribute zero.
func (p ModelPricing) Cost(inputTokens, outputTokens int) float64 {
	var cost float64
	if inputTokens > 0 {
		cost += float64(inputTokens) * p.InputPerToken()
	}
	if outputTokens > 0 {
		cost += float64(outputTokens) * p.OutputPerToken()
	}
	return cost
}
