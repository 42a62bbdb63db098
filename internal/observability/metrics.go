package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// assessment engine and the live temperature source.
type Metrics struct {
	Assessments        *prometheus.CounterVec // label: tier={STABLE,HIGH_RISK,CRITICAL,LETHAL}
	AssessmentDuration prometheus.Histogram

	// Live sea-surface temperature source metrics.
	SSTRequests        *prometheus.CounterVec // label: outcome={success,error}
	SSTRequestDuration prometheus.Histogram
	SSTFallbacks       prometheus.Counter
	SSTCache           *prometheus.CounterVec // label: result={hit,miss}
	LiveSourceEnabled  prometheus.Gauge
}

// NewMetrics creates and registers all engine metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stef",
			Name:      "assessments_total",
			Help:      "Completed risk assessments by risk tier.",
		}, []string{"tier"}),
		AssessmentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "stef",
			Name:      "assessment_duration_seconds",
			Help:      "Duration of a complete resolve-evaluate-project-assemble cycle.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		}),
		SSTRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stef",
			Name:      "sst_requests_total",
			Help:      "Live sea-surface temperature fetches by outcome.",
		}, []string{"outcome"}),
		SSTRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "stef",
			Name:      "sst_request_duration_seconds",
			Help:      "ERDDAP request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SSTFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stef",
			Name:      "sst_fallbacks_total",
			Help:      "Assessments served by the geographic model after a live-source failure.",
		}),
		SSTCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stef",
			Name:      "sst_cache_total",
			Help:      "Temperature reading cache lookups by result.",
		}, []string{"result"}),
		LiveSourceEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "stef",
			Name:      "live_source_enabled",
			Help:      "1 when the live satellite source is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.Assessments,
		m.AssessmentDuration,
		m.SSTRequests,
		m.SSTRequestDuration,
		m.SSTFallbacks,
		m.SSTCache,
		m.LiveSourceEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		Assessments:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "stef", Name: "assessments_total"}, []string{"tier"}),
		AssessmentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "stef", Name: "assessment_duration_seconds"}),
		SSTRequests:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "stef", Name: "sst_requests_total"}, []string{"outcome"}),
		SSTRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "stef", Name: "sst_request_duration_seconds"}),
		SSTFallbacks:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "stef", Name: "sst_fallbacks_total"}),
		SSTCache:           prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "stef", Name: "sst_cache_total"}, []string{"result"}),
		LiveSourceEnabled:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "stef", Name: "live_source_enabled"}),
	}
}
