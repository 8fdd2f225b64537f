package ledger

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"costguard-hq/guardian/pkg/pricing"
)

func newTestLedger(t *testing.T, opts ...Option) *Ledger {
	t.Helper()
	return New(pricing.Default(), opts...)
}

func TestLedger_RecordComputesCost(t *testing.T) {
	led := newTestLedger(t)

	// gpt-4o at $2.50/$10.00 per million:
	// 1500/1e6*2.50 + 800/1e6*10.00 = 0.00375 + 0.008
	ev, err := led.Record("gpt-4o", 1500, 800)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	want := 0.01175
	if math.Abs(ev.CostUSD-want) > 1e-12 {
		t.Errorf("Expected cost %v, got %v", want, ev.CostUSD)
	}
	if ev.ID == "" {
		t.Error("Expected event ID to be set")
	}
	if ev.Provider != pricing.ProviderOpenAI {
		t.Errorf("Expected provider openai, got %s", ev.Provider)
	}
	if ev.RecordedAt.IsZero() {
		t.Error("Expected RecordedAt to be set")
	}
	if ev.TotalTokens() != 2300 {
		t.Errorf("Expected 2300 total tokens, got %d", ev.TotalTokens())
	}
}

func TestLedger_RecordUnknownModel(t *testing.T) {
	led := newTestLedger(t)

	if _, err := led.Record("gpt-4o", 100, 100); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	before := led.Summary()

	_, err := led.Record("not-a-model", 100, 100)
	if !errors.Is(err, pricing.ErrModelNotFound) {
		t.Fatalf("Expected ErrModelNotFound, got %v", err)
	}

	// Nothing appended, aggregates untouched.
	after := led.Summary()
	if after.TotalRequests != before.TotalRequests {
		t.Errorf("Request count changed: %d -> %d", before.TotalRequests, after.TotalRequests)
	}
	if after.TotalCostUSD != before.TotalCostUSD {
		t.Errorf("Total cost changed: %v -> %v", before.TotalCostUSD, after.TotalCostUSD)
	}
	if len(led.Events()) != 1 {
		t.Errorf("Expected 1 event, got %d", len(led.Events()))
	}
}

func TestLedger_RecordNegativeTokens(t *testing.T) {
	led := newTestLedger(t)

	tests := []struct {
		name    string
		in, out int
	}{
		{"negative input", -1, 10},
		{"negative output", 10, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := led.Record("gpt-4o", tt.in, tt.out)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Expected ErrInvalidInput, got %v", err)
			}
			var ie *InvalidInputError
			if !errors.As(err, &ie) {
				t.Fatalf("Expected *InvalidInputError, got %T", err)
			}
		})
	}

	if led.RequestCount() != 0 {
		t.Errorf("Invalid records must not be appended, got %d", led.RequestCount())
	}
}

func TestLedger_AggregatesMatchHistory(t *testing.T) {
	led := newTestLedger(t)

	calls := []struct {
		model   string
		in, out int
	}{
		{"gpt-4o", 1000, 500},
		{"gpt-4o-mini", 20000, 4000},
		{"claude-3-5-haiku-20241022", 3000, 1500},
		{"gpt-4o", 50, 25},
		{"gemini-2.0-flash", 100000, 9000},
	}

	for _, c := range calls {
		if _, err := led.Record(c.model, c.in, c.out); err != nil {
			t.Fatalf("Record(%s) failed: %v", c.model, err)
		}
	}

	// Recompute every aggregate from history and compare.
	var cost float64
	var in, out int
	byModel := make(map[string]float64)
	for _, ev := range led.Events() {
		cost += ev.CostUSD
		in += ev.InputTokens
		out += ev.OutputTokens
		byModel[ev.Model] += ev.CostUSD
	}

	if math.Abs(led.TotalCost()-cost) > 1e-12 {
		t.Errorf("TotalCost %v drifted from history sum %v", led.TotalCost(), cost)
	}
	if led.TotalInputTokens() != in || led.TotalOutputTokens() != out {
		t.Errorf("Token totals drifted: got %d/%d, want %d/%d",
			led.TotalInputTokens(), led.TotalOutputTokens(), in, out)
	}
	if led.TotalTokens() != in+out {
		t.Errorf("TotalTokens: got %d, want %d", led.TotalTokens(), in+out)
	}
	if led.RequestCount() != len(calls) {
		t.Errorf("RequestCount: got %d, want %d", led.RequestCount(), len(calls))
	}

	got := led.CostByModel()
	if len(got) != len(byModel) {
		t.Fatalf("CostByModel size: got %d, want %d", len(got), len(byModel))
	}
	for model, want := range byModel {
		if math.Abs(got[model]-want) > 1e-12 {
			t.Errorf("CostByModel[%s]: got %v, want %v", model, got[model], want)
		}
	}
}

func TestLedger_TotalCostOrderIndependent(t *testing.T) {
	calls := []struct {
		model   string
		in, out int
	}{
		{"gpt-4o", 1000, 500},
		{"claude-3-opus-20240229", 200, 300},
		{"gemini-1.5-pro", 5000, 1000},
	}

	forward := newTestLedger(t)
	for _, c := range calls {
		if _, err := forward.Record(c.model, c.in, c.out); err != nil {
			t.Fatal(err)
		}
	}

	reversed := newTestLedger(t)
	for i := len(calls) - 1; i >= 0; i-- {
		if _, err := reversed.Record(calls[i].model, calls[i].in, calls[i].out); err != nil {
			t.Fatal(err)
		}
	}

	if math.Abs(forward.TotalCost()-reversed.TotalCost()) > 1e-12 {
		t.Errorf("Order changed total: %v vs %v", forward.TotalCost(), reversed.TotalCost())
	}
}

func TestLedger_EventsChronological(t *testing.T) {
	led := newTestLedger(t)

	for i := 0; i < 10; i++ {
		if _, err := led.Record("gpt-4o-mini", 10, 10); err != nil {
			t.Fatal(err)
		}
	}

	events := led.Events()
	for i := 1; i < len(events); i++ {
		if events[i].RecordedAt.Before(events[i-1].RecordedAt) {
			t.Errorf("Event %d recorded before event %d", i, i-1)
		}
	}
}

func TestLedger_Reset(t *testing.T) {
	led := newTestLedger(t)

	if _, err := led.Record("gpt-4o", 1000, 1000); err != nil {
		t.Fatal(err)
	}

	led.Reset()

	if led.TotalCost() != 0 {
		t.Errorf("Expected zero total cost, got %v", led.TotalCost())
	}
	if led.RequestCount() != 0 {
		t.Errorf("Expected zero requests, got %d", led.RequestCount())
	}
	if led.TotalTokens() != 0 {
		t.Errorf("Expected zero tokens, got %d", led.TotalTokens())
	}
	if len(led.CostByModel()) != 0 {
		t.Errorf("Expected empty cost-by-model, got %v", led.CostByModel())
	}
	if len(led.Events()) != 0 {
		t.Errorf("Expected no events, got %d", len(led.Events()))
	}
}

func TestLedger_EventsSince(t *testing.T) {
	led := newTestLedger(t)

	if _, err := led.Record("gpt-4o", 100, 100); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	cutoff := time.Now()
	time.Sleep(20 * time.Millisecond)
	if _, err := led.Record("gpt-4o", 200, 200); err != nil {
		t.Fatal(err)
	}

	recent := led.EventsSince(cutoff)
	if len(recent) != 1 {
		t.Fatalf("Expected 1 event since cutoff, got %d", len(recent))
	}
	if recent[0].InputTokens != 200 {
		t.Errorf("Wrong event returned: %+v", recent[0])
	}

	all := led.EventsSince(time.Time{})
	if len(all) != 2 {
		t.Errorf("Expected all events for zero cutoff, got %d", len(all))
	}

	none := led.EventsSince(time.Now().Add(time.Hour))
	if len(none) != 0 {
		t.Errorf("Expected no events for future cutoff, got %d", len(none))
	}

	wantRecent := recent[0].CostUSD
	if got := led.CostSince(cutoff); math.Abs(got-wantRecent) > 1e-12 {
		t.Errorf("CostSince: got %v, want %v", got, wantRecent)
	}
}

func TestLedger_ConcurrentRecord(t *testing.T) {
	led := newTestLedger(t)

	var wg sync.WaitGroup
	goroutines := 16
	perGoroutine := 200

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				if _, err := led.Record("gpt-4o-mini", 100, 50); err != nil {
					t.Errorf("Record failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	want := goroutines * perGoroutine
	if got := led.RequestCount(); got != want {
		t.Errorf("Lost or duplicated events: got %d, want %d", got, want)
	}

	// Aggregates must match a full recomputation.
	var cost float64
	for _, ev := range led.Events() {
		cost += ev.CostUSD
	}
	if math.Abs(led.TotalCost()-cost) > 1e-9 {
		t.Errorf("TotalCost %v drifted from history sum %v", led.TotalCost(), cost)
	}
}

func TestLedger_RecordCallback(t *testing.T) {
	var mu sync.Mutex
	var cumulatives []float64

	led := New(pricing.Default(), WithRecordCallback(func(ev Event, cumulative float64) {
		mu.Lock()
		defer mu.Unlock()
		cumulatives = append(cumulatives, cumulative)
	}))

	if _, err := led.Record("gpt-4o", 1000, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := led.Record("gpt-4o", 1000, 0); err != nil {
		t.Fatal(err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(cumulatives) != 2 {
		t.Fatalf("Expected 2 callback invocations, got %d", len(cumulatives))
	}
	if cumulatives[1] <= cumulatives[0] {
		t.Errorf("Cumulative cost not increasing: %v", cumulatives)
	}
}

func TestLedger_RecordOptions(t *testing.T) {
	led := newTestLedger(t)

	ev, err := led.Record("gpt-4o", 100, 100, WithTag("tenant-a"), WithCost(0.42))
	if err != nil {
		t.Fatal(err)
	}
	if ev.Tag != "tenant-a" {
		t.Errorf("Expected tag, got %q", ev.Tag)
	}
	if ev.CostUSD != 0.42 {
		t.Errorf("Expected explicit cost 0.42, got %v", ev.CostUSD)
	}
	if led.TotalCost() != 0.42 {
		t.Errorf("Explicit cost must flow into aggregates, got %v", led.TotalCost())
	}
}
