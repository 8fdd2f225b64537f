package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"costguard-hq/guardian/pkg/pricing"
)

// RecordCallback is invoked after every successful Record with the created
// event and the cumulative total cost at that point.
type RecordCallback func(ev Event, cumulativeCost float64)

// Ledger is a thread-safe, append-only accumulator of cost events.
//
// All mutating and aggregate-reading operations run under a single mutex,
// so aggregates are always mutually consistent. Events are never removed
// or mutated once appended; Reset is the only way to clear a ledger.
type Ledger struct {
	catalog  *pricing.Catalog
	onRecord RecordCallback

	mu           sync.Mutex
	events       []Event
	totalCost    float64
	inputTokens  int
	outputTokens int
	costByModel  map[string]float64
}

// Option configures a Ledger at construction.
type Option func(*Ledger)

// WithRecordCallback registers a callback invoked after every successful
// Record. The callback runs outside the ledger lock, so it may read
// aggregates but must tolerate further records having landed in between.
func WithRecordCallback(cb RecordCallback) Option {
	return func(l *Ledger) { l.onRecord = cb }
}

// New creates an empty ledger that prices events against the given catalog.
func New(catalog *pricing.Catalog, opts ...Option) *Ledger {
	l := &Ledger{
		catalog:     catalog,
		costByModel: make(map[string]float64),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RecordOption configures a single Record call.
type RecordOption func(*recordOptions)

type recordOptions struct {
	tag     string
	cost    float64
	hasCost bool
}

// WithTag attaches a caller-supplied label to the event.
func WithTag(tag string) RecordOption {
	return func(o *recordOptions) { o.tag = tag }
}

// WithCost records an explicit cost instead of computing one from the
// catalog. The model still has to resolve, so provider attribution and
// unknown-model detection keep working.
func WithCost(costUSD float64) RecordOption {
	return func(o *recordOptions) { o.cost = costUSD; o.hasCost = true }
}

// Record prices a completed call and appends it to the ledger.
//
// Token counts must be non-negative; otherwise a *InvalidInputError is
// returned. An unresolvable model returns the catalog's not-found error.
// On any error nothing is appended and aggregates are untouched.
func (l *Ledger) Record(model string, inputTokens, outputTokens int, opts ...RecordOption) (Event, error) {
	if inputTokens < 0 {
		return Event{}, &InvalidInputError{Field: "input tokens", Value: inputTokens}
	}
	if outputTokens < 0 {
		return Event{}, &InvalidInputError{Field: "output tokens", Value: outputTokens}
	}

	p, err := l.catalog.Resolve(model)
	if err != nil {
		return Event{}, err
	}

	var o recordOptions
	for _, opt := range opts {
		opt(&o)
	}

	cost := p.Cost(inputTokens, outputTokens)
	if o.hasCost {
		cost = o.cost
	}

	ev := Event{
		ID:           uuid.New().String(),
		Model:        model,
		Provider:     p.Provider,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		CostUSD:      cost,
		Tag:          o.tag,
	}

	l.mu.Lock()
	ev.RecordedAt = time.Now()
	l.events = append(l.events, ev)
	l.totalCost += cost
	l.inputTokens += inputTokens
	l.outputTokens += outputTokens
	l.costByModel[model] += cost
	cumulative := l.totalCost
	l.mu.Unlock()

	if l.onRecord != nil {
		l.onRecord(ev, cumulative)
	}

	return ev, nil
}

// TotalCost returns the cumulative cost in USD of all recorded events.
func (l *Ledger) TotalCost() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalCost
}

// TotalInputTokens returns the cumulative input token count.
func (l *Ledger) TotalInputTokens() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inputTokens
}

// TotalOutputTokens returns the cumulative output token count.
func (l *Ledger) TotalOutputTokens() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.outputTokens
}

// TotalTokens returns the cumulative token count, input plus output.
func (l *Ledger) TotalTokens() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inputTokens + l.outputTokens
}

// RequestCount returns the number of recorded events.
func (l *Ledger) RequestCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}

// CostByModel returns a copy of the per-model cumulative cost mapping.
func (l *Ledger) CostByModel() map[string]float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]float64, len(l.costByModel))
	for model, cost := range l.costByModel {
		out[model] = cost
	}
	return out
}

// Events returns a copy of all recorded events in chronological order.
func (l *Ledger) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// EventsSince returns a copy of the events with RecordedAt >= t, in
// chronological order. Events are appended in timestamp order, so this is
// a binary search plus a copy of the matching suffix.
func (l *Ledger) EventsSince(t time.Time) []Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := sort.Search(len(l.events), func(i int) bool {
		return !l.events[i].RecordedAt.Before(t)
	})

	out := make([]Event, len(l.events)-i)
	copy(out, l.events[i:])
	return out
}

// CostSince returns the summed cost of events with RecordedAt >= t.
// This is the time-bounded view used by sliding-window budget policies.
func (l *Ledger) CostSince(t time.Time) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := sort.Search(len(l.events), func(i int) bool {
		return !l.events[i].RecordedAt.Before(t)
	})

	var sum float64
	for ; i < len(l.events); i++ {
		sum += l.events[i].CostUSD
	}
	return sum
}

// Reset atomically clears all events and aggregates back to the empty state.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = nil
	l.totalCost = 0
	l.inputTokens = 0
	l.outputTokens = 0
	l.costByModel = make(map[string]float64)
}

// Summary is a consistent point-in-time snapshot of the ledger aggregates.
type Summary struct {
	// TotalCostUSD is the cumulative cost of all events.
	TotalCostUSD float64 `json:"total_cost_usd"`

	// TotalInputTokens is the cumulative input token count.
	TotalInputTokens int `json:"total_input_tokens"`

	// TotalOutputTokens is the cumulative output token count.
	TotalOutputTokens int `json:"total_output_tokens"`

	// TotalRequests is the number of recorded events.
	TotalRequests int `json:"total_requests"`

	// CostByModel maps model identifier to cumulative cost.
	CostByModel map[string]float64 `json:"cost_by_model"`
}

// Summary returns a snapshot of all aggregates taken under one lock
// acquisition, so every field reflects the same ledger state.
func (l *Ledger) Summary() Summary {
	l.mu.Lock()
	defer l.mu.Unlock()

	byModel := make(map[string]float64, len(l.costByModel))
	for model, cost := range l.costByModel {
		byModel[model] = cost
	}

	return Summary{
		TotalCostUSD:      l.totalCost,
		TotalInputTokens:  l.inputTokens,
		TotalOutputTokens: l.outputTokens,
		TotalRequests:     len(l.events),
		CostByModel:       byModel,
	}
}
