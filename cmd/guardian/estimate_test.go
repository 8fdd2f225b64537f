package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"costguard-hq/guardian/pkg/pricing"
)

func TestEstimateCost_Text(t *testing.T) {
	var buf bytes.Buffer
	err := estimateCost(&buf, pricing.Default(), "gpt-4o", 1500, 800, false)
	if err != nil {
		t.Fatalf("estimateCost failed: %v", err)
	}

	// 1500/1e6*2.50 + 800/1e6*10.00 = 0.01175
	if !strings.Contains(buf.String(), "$0.011750") {
		t.Errorf("Expected $0.011750 in output, got: %s", buf.String())
	}
}

func TestEstimateCost_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := estimateCost(&buf, pricing.Default(), "gpt-4o", 1500, 800, true)
	if err != nil {
		t.Fatalf("estimateCost failed: %v", err)
	}

	var result estimateResult
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if math.Abs(result.CostUSD-0.01175) > 1e-12 {
		t.Errorf("Expected cost 0.01175, got %v", result.CostUSD)
	}
	if result.Provider != "openai" {
		t.Errorf("Expected provider openai, got %q", result.Provider)
	}
}

func TestEstimateCost_UnknownModel(t *testing.T) {
	var buf bytes.Buffer
	err := estimateCost(&buf, pricing.Default(), "not-a-model", 10, 10, false)
	if !errors.Is(err, pricing.ErrModelNotFound) {
		t.Fatalf("Expected ErrModelNotFound, got %v", err)
	}
}

func TestEstimateCost_NegativeTokens(t *testing.T) {
	var buf bytes.Buffer
	if err := estimateCost(&buf, pricing.Default(), "gpt-4o", -1, 10, false); err == nil {
		t.Error("Expected error for negative input tokens")
	}
	if err := estimateCost(&buf, pricing.Default(), "gpt-4o", 10, -1, false); err == nil {
		t.Error("Expected error for negative output tokens")
	}
}
