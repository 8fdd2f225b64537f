package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"costguard-hq/guardian/pkg/ledger"
)

// CSVExporter exports ledger events to CSV, one row per event.
type CSVExporter struct {
	// IncludeHeader writes a column-name header row first.
	IncludeHeader bool
}

// NewCSVExporter creates a CSV exporter.
func NewCSVExporter(includeHeader bool) *CSVExporter {
	return &CSVExporter{IncludeHeader: includeHeader}
}

// Export writes all events to w in CSV format.
// Timestamps are RFC 3339 with nanoseconds, costs use 8 decimal places.
func (e *CSVExporter) Export(w io.Writer, led *ledger.Ledger) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if e.IncludeHeader {
		header := []string{"timestamp", "model", "input_tokens", "output_tokens", "cost_usd", "tag"}
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("csv export: %w", err)
		}
	}

	for _, ev := range led.Events() {
		row := []string{
			ev.RecordedAt.Format(time.RFC3339Nano),
			ev.Model,
			strconv.Itoa(ev.InputTokens),
			strconv.Itoa(ev.OutputTokens),
			strconv.FormatFloat(ev.CostUSD, 'f', 8, 64),
			ev.Tag,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("csv export: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
