package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"costguard-hq/guardian/pkg/pricing"
)

func TestListModels_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := listModels(&buf, pricing.Default(), "", false); err != nil {
		t.Fatalf("listModels failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "MODEL") {
		t.Error("Expected header row")
	}
	if !strings.Contains(out, "gpt-4o") {
		t.Error("Expected gpt-4o in listing")
	}
	if !strings.Contains(out, "anthropic") {
		t.Error("Expected anthropic models in unfiltered listing")
	}
}

func TestListModels_ProviderFilter(t *testing.T) {
	var buf bytes.Buffer
	if err := listModels(&buf, pricing.Default(), pricing.ProviderGoogle, false); err != nil {
		t.Fatalf("listModels failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "gemini") {
		t.Error("Expected gemini models for google filter")
	}
	if strings.Contains(out, "gpt-4o") {
		t.Error("OpenAI models must be filtered out")
	}
}

func TestListModels_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := listModels(&buf, pricing.Default(), pricing.ProviderOpenAI, true); err != nil {
		t.Fatalf("listModels failed: %v", err)
	}

	var listings []modelListing
	if err := json.Unmarshal(buf.Bytes(), &listings); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(listings) == 0 {
		t.Fatal("Expected at least one listing")
	}
	for _, l := range listings {
		if l.Provider != "openai" {
			t.Errorf("Expected only openai listings, got %q", l.Provider)
		}
	}
}

func TestListModels_UnknownProviderEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := listModels(&buf, pricing.Default(), "acme", false); err != nil {
		t.Fatalf("listModels failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No models found") {
		t.Errorf("Expected empty-listing message, got: %s", buf.String())
	}
}
