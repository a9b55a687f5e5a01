package cli

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics provides Prometheus metrics for the serve command.
type Metrics struct {
	reads   *prometheus.CounterVec
	symbols prometheus.Histogram

	registry *prometheus.Registry
}

// NewMetrics creates the read counters on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		reads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dfa",
				Name:      "reads_total",
				Help:      "Total number of words read, by result (accepted, rejected, invalid)",
			},
			[]string{"result"},
		),
		symbols: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "dfa",
				Name:      "read_input_bytes",
				Help:      "Size of the words read",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}

	registry.MustRegister(m.reads, m.symbols)

	return m
}

// RecordRead records the outcome of a single read.
func (m *Metrics) RecordRead(result string, size int) {
	m.reads.WithLabelValues(result).Inc()
	m.symbols.Observe(float64(size))
}

// Registry returns the Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
