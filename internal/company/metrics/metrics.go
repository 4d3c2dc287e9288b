package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for company lookups.
type Metrics struct {
	Lookups      *prometheus.CounterVec
	ANAFLatency  *prometheus.HistogramVec
	BreakerState prometheus.Gauge
	CacheLatency prometheus.Histogram
}

// New creates the company metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "normalro_company_lookups_total",
			Help: "Company lookups by outcome",
		}, []string{"outcome"}), // outcome: "cache_hit", "found", "not_found", "error", "rejected"

		ANAFLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "normalro_anaf_request_duration_seconds",
			Help:    "Latency of ANAF requests by error category",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"category"}),

		BreakerState: factory.NewGauge(prometheus.GaugeOpts{
			Name: "normalro_anaf_breaker_open",
			Help: "1 while the ANAF circuit breaker is open",
		}),

		CacheLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "normalro_company_cache_duration_ms",
			Help:    "Latency of company cache reads in milliseconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
		}),
	}
}

// IncrementLookup records a lookup outcome.
func (m *Metrics) IncrementLookup(outcome string) {
	if m == nil {
		return
	}
	m.Lookups.WithLabelValues(outcome).Inc()
}

// ObserveANAF records an upstream call. category is "ok" on success.
func (m *Metrics) ObserveANAF(category string, d time.Duration) {
	if m == nil {
		return
	}
	m.ANAFLatency.WithLabelValues(category).Observe(d.Seconds())
}

// SetBreakerOpen mirrors the breaker state.
func (m *Metrics) SetBreakerOpen(open bool) {
	if m == nil {
		return
	}
	if open {
		m.BreakerState.Set(1)
		return
	}
	m.BreakerState.Set(0)
}

// ObserveCacheRead records a cache read duration.
func (m *Metrics) ObserveCacheRead(d time.Duration) {
	if m == nil {
		return
	}
	m.CacheLatency.Observe(float64(d.Microseconds()) / 1000.0)
}
