// internal/monitoring/metrics.go

// Package monitoring exposes Prometheus metrics for scraping runs.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks extraction activity per scrape target.
type Metrics struct {
	passesTotal    *prometheus.CounterVec
	rowsExtracted  *prometheus.CounterVec
	rowsSuppressed *prometheus.CounterVec
	passDuration   *prometheus.HistogramVec
	fetchErrors    *prometheus.CounterVec
	seenRows       *prometheus.GaugeVec
	registry       *prometheus.Registry
}

// NewMetrics creates and registers the metric set on its own registry, so
// tests and multiple runners never collide on the default registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		passesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pairscraper",
			Name:      "passes_total",
			Help:      "Extraction passes run, by target and applicability",
		}, []string{"target", "applicable"}),
		rowsExtracted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pairscraper",
			Name:      "rows_extracted_total",
			Help:      "Newly seen rows emitted",
		}, []string{"target"}),
		rowsSuppressed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pairscraper",
			Name:      "rows_suppressed_total",
			Help:      "Rows discarded as duplicates of earlier passes",
		}, []string{"target"}),
		passDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pairscraper",
			Name:      "pass_duration_seconds",
			Help:      "Duration of one extraction pass",
			Buckets:   prometheus.DefBuckets,
		}, []string{"target"}),
		fetchErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pairscraper",
			Name:      "fetch_errors_total",
			Help:      "Failed page fetches",
		}, []string{"target"}),
		seenRows: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "pairscraper",
			Name:      "seen_rows",
			Help:      "Distinct rows recorded by the dedup state",
		}, []string{"target"}),
	}
}

// RecordPass records the outcome of one extraction pass.
func (m *Metrics) RecordPass(target string, applicable bool, newRows, suppressed int, duration time.Duration) {
	applicableLabel := "false"
	if applicable {
		applicableLabel = "true"
	}
	m.passesTotal.WithLabelValues(target, applicableLabel).Inc()
	m.rowsExtracted.WithLabelValues(target).Add(float64(newRows))
	m.rowsSuppressed.WithLabelValues(target).Add(float64(suppressed))
	m.passDuration.WithLabelValues(target).Observe(duration.Seconds())
}

// RecordFetchError records a failed page fetch.
func (m *Metrics) RecordFetchError(target string) {
	m.fetchErrors.WithLabelValues(target).Inc()
}

// SetSeenRows updates the dedup state size gauge.
func (m *Metrics) SetSeenRows(target string, count int) {
	m.seenRows.WithLabelValues(target).Set(float64(count))
}

// Registry returns the registry backing this metric set.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
