package export

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"costguard-hq/guardian/pkg/ledger"
)

// PrometheusExporter writes the ledger's metrics in the Prometheus text
// exposition format, for file-based collection or debugging without an
// HTTP endpoint.
type PrometheusExporter struct{}

// NewPrometheusExporter creates a text exposition exporter.
func NewPrometheusExporter() *PrometheusExporter {
	return &PrometheusExporter{}
}

// Export implements Exporter.
func (e *PrometheusExporter) Export(w io.Writer, led *ledger.Ledger) error {
	return WritePrometheus(w, led)
}

// WritePrometheus writes the ledger's metrics to w in the Prometheus text
// exposition format, using the same collector that backs MetricsHandler.
func WritePrometheus(w io.Writer, led *ledger.Ledger) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(NewCollector(led)); err != nil {
		return fmt.Errorf("prometheus export: %w", err)
	}

	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("prometheus export: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("prometheus export: %w", err)
		}
	}
	return nil
}
