// Package metrics exposes the relay's Prometheus collectors.
package metrics

import (
	"time"

	"relay/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "relay"

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

// Metrics owns a dedicated registry so that each instance can be created independently.
type Metrics struct {
	Registry *prometheus.Registry

	chunks           *prometheus.CounterVec
	chunkDuration    *prometheus.HistogramVec
	tickets          *prometheus.CounterVec
	registrations    prometheus.Counter
	registeredTokens prometheus.Gauge
}

// New creates and registers the relay collectors together with the Go runtime collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		chunks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_total",
			Help:      "Chunks submitted to the push provider, by result.",
		}, []string{"provider", "result"}),
		chunkDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chunk_duration_seconds",
			Help:      "Latency of a single chunk submission.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		tickets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tickets_total",
			Help:      "Tickets returned by the push provider, by status.",
		}, []string{"provider", "status"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_registrations_total",
			Help:      "Accepted token registrations, including repeats.",
		}),
		registeredTokens: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registered_tokens",
			Help:      "Distinct tokens currently held for broadcast.",
		}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.chunks,
		m.chunkDuration,
		m.tickets,
		m.registrations,
		m.registeredTokens,
	)

	return m
}

// Namespace is the metric name prefix shared by every relay collector.
func (m *Metrics) Namespace() string {
	return namespace
}

// ObserveChunk records the outcome and latency of one chunk submission.
func (m *Metrics) ObserveChunk(provider string, elapsed time.Duration, err error) {
	result := resultSuccess
	if err != nil {
		result = resultFailure
	}

	m.chunks.WithLabelValues(provider, result).Inc()
	m.chunkDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// ObserveTickets counts tickets by status.
func (m *Metrics) ObserveTickets(provider string, tickets []entity.Ticket) {
	for _, ticket := range tickets {
		m.tickets.WithLabelValues(provider, ticket.Status).Inc()
	}
}

// TokenRegistered records an accepted registration and the resulting registry size.
func (m *Metrics) TokenRegistered(size int) {
	m.registrations.Inc()
	m.registeredTokens.Set(float64(size))
}
