// Package metrics collects Prometheus metrics for searches, provider calls and saves.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface the provider client and services report to.
type Recorder interface {
	RecordProviderLatency(endpoint string, d time.Duration)
	RecordProviderStatus(endpoint string, statusCode int)
	RecordSearch(outcome string)
	RecordDetailFetch(ok bool)
	RecordSave(outcome string)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	providerLatency *prometheus.HistogramVec
	providerStatus  *prometheus.CounterVec
	searches        *prometheus.CounterVec
	detailFetches   *prometheus.CounterVec
	saves           *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		providerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pantrychef_provider_request_seconds",
			Help:    "Latency of recipe provider requests by endpoint.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		providerStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pantrychef_provider_responses_total",
			Help: "Recipe provider responses by endpoint and status code.",
		}, []string{"endpoint", "status_code"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pantrychef_searches_total",
			Help: "Ingredient searches by outcome.",
		}, []string{"outcome"}),
		detailFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pantrychef_detail_fetches_total",
			Help: "Per-recipe detail fetches by result.",
		}, []string{"result"}),
		saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pantrychef_saves_total",
			Help: "Save recipe attempts by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		c.providerLatency,
		c.providerStatus,
		c.searches,
		c.detailFetches,
		c.saves,
	)

	return c
}

func (c *Collector) RecordProviderLatency(endpoint string, d time.Duration) {
	c.providerLatency.WithLabelValues(endpoint).Observe(d.Seconds())
}

func (c *Collector) RecordProviderStatus(endpoint string, statusCode int) {
	c.providerStatus.WithLabelValues(endpoint, strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordSearch(outcome string) {
	c.searches.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordDetailFetch(ok bool) {
	result := "failed"
	if ok {
		result = "ok"
	}
	c.detailFetches.WithLabelValues(result).Inc()
}

func (c *Collector) RecordSave(outcome string) {
	c.saves.WithLabelValues(outcome).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Nop discards everything. Used when metrics are not wired, e.g. in tests.
type Nop struct{}

func (Nop) RecordProviderLatency(string, time.Duration) {}
func (Nop) RecordProviderStatus(string, int) {}
func (Nop) RecordSearch(string) {}
func (Nop) RecordDetailFetch(bool) {}
func (Nop) RecordSave(string) {}
