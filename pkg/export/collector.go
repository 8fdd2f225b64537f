package export

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"costguard-hq/guardian/pkg/ledger"
)

// metricPrefix is the namespace for all exposed metrics.
const metricPrefix = "llm_cost_guardian"

// Collector is a prometheus.Collector over a single ledger.
//
// It reads one consistent ledger summary per scrape and converts it to
// const metrics, so it can be registered into any host registry without
// the collector itself holding metric state.
type Collector struct {
	led *ledger.Ledger

	totalCost     *prometheus.Desc
	costByModel   *prometheus.Desc
	totalRequests *prometheus.Desc
	inputTokens   *prometheus.Desc
	outputTokens  *prometheus.Desc
}

// NewCollector creates a collector that exposes the ledger's aggregates.
func NewCollector(led *ledger.Ledger) *Collector {
	return &Collector{
		led: led,

		totalCost: prometheus.NewDesc(
			metricPrefix+"_total_cost_usd",
			"Total cost in USD",
			nil, nil,
		),
		costByModel: prometheus.NewDesc(
			metricPrefix+"_cost_by_model_usd",
			"Cost per model in USD",
			[]string{"model"}, nil,
		),
		totalRequests: prometheus.NewDesc(
			metricPrefix+"_total_requests",
			"Total number of API requests",
			nil, nil,
		),
		inputTokens: prometheus.NewDesc(
			metricPrefix+"_total_input_tokens",
			"Total input tokens",
			nil, nil,
		),
		outputTokens: prometheus.NewDesc(
			metricPrefix+"_total_output_tokens",
			"Total output tokens",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.totalCost
	ch <- c.costByModel
	ch <- c.totalRequests
	ch <- c.inputTokens
	ch <- c.outputTokens
}

// Collect implements prometheus.Collector. One ledger summary is taken
// per scrape, so every metric in the scrape reflects the same state.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.led.Summary()

	ch <- prometheus.MustNewConstMetric(c.totalCost, prometheus.GaugeValue, s.TotalCostUSD)
	ch <- prometheus.MustNewConstMetric(c.totalRequests, prometheus.CounterValue, float64(s.TotalRequests))
	ch <- prometheus.MustNewConstMetric(c.inputTokens, prometheus.CounterValue, float64(s.TotalInputTokens))
	ch <- prometheus.MustNewConstMetric(c.outputTokens, prometheus.CounterValue, float64(s.TotalOutputTokens))

	for model, cost := range s.CostByModel {
		ch <- prometheus.MustNewConstMetric(c.costByModel, prometheus.GaugeValue, cost, model)
	}
}

// MetricsHandler returns an HTTP handler serving the ledger's metrics
// from a private registry, for hosts that want a standalone /metrics
// endpoint instead of registering the Collector themselves.
func MetricsHandler(led *ledger.Ledger) http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(NewCollector(led))
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
