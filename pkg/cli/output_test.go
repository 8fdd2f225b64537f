package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]any{"model": "gpt-4o", "cost_usd": 0.01175}

	if err := WriteJSON(&buf, data); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded["model"] != "gpt-4o" {
		t.Errorf("Expected model gpt-4o, got %v", decoded["model"])
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("Expected indented output")
	}
}

func TestTable(t *testing.T) {
	tbl := NewTable("MODEL", "PROVIDER")
	tbl.AddRow("gpt-4o", "openai")
	tbl.AddRow("claude-3-5-haiku-20241022", "anthropic")

	if tbl.Len() != 2 {
		t.Errorf("Expected 2 rows, got %d", tbl.Len())
	}

	var buf bytes.Buffer
	if err := tbl.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "MODEL") {
		t.Errorf("Expected header row first, got: %s", lines[0])
	}
	if !strings.Contains(lines[1], "openai") {
		t.Errorf("Expected first row to contain openai, got: %s", lines[1])
	}
}
