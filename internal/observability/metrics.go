package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the dashboard.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec   // labels: route, status
	HTTPDuration *prometheus.HistogramVec // labels: route

	// Popularity provider metrics.
	ProviderRequests *prometheus.CounterVec   // labels: stage={explore,comparedgeo}, outcome={success,invalid,unavailable}
	ProviderDuration *prometheus.HistogramVec // labels: stage

	// Enrichment metrics.
	EnrichedRows      prometheus.Histogram
	StatesDropped     prometheus.Counter
	TrendlinesOmitted prometheus.Counter
	ReferenceStates   prometheus.Gauge

	// Snapshot sink metrics.
	SnapshotsPublished prometheus.Counter
	SnapshotErrors     prometheus.Counter
	SnapshotsEnabled   prometheus.Gauge
}

// NewMetrics creates and registers all dashboard metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.ProviderRequests,
		m.ProviderDuration,
		m.EnrichedRows,
		m.StatesDropped,
		m.TrendlinesOmitted,
		m.ReferenceStates,
		m.SnapshotsPublished,
		m.SnapshotErrors,
		m.SnapshotsEnabled,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trends_dashboard",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		}, []string{"route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "trends_dashboard",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by route pattern.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 20},
		}, []string{"route"}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trends_dashboard",
			Name:      "provider_requests_total",
			Help:      "Popularity provider requests by stage and outcome.",
		}, []string{"stage", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "trends_dashboard",
			Name:      "provider_request_duration_seconds",
			Help:      "Popularity provider request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"stage"}),
		EnrichedRows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "trends_dashboard",
			Name:      "enriched_rows",
			Help:      "Number of states surviving the join per enrichment.",
			Buckets:   []float64{0, 10, 20, 30, 40, 45, 48, 50, 51},
		}),
		StatesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trends_dashboard",
			Name:      "states_dropped_total",
			Help:      "Provider states with no matching reference data.",
		}),
		TrendlinesOmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trends_dashboard",
			Name:      "trendlines_omitted_total",
			Help:      "Scatter charts built without a trendline because the fit was degenerate.",
		}),
		ReferenceStates: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "trends_dashboard",
			Name:      "reference_states",
			Help:      "States present in every reference table.",
		}),
		SnapshotsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trends_dashboard",
			Name:      "snapshots_published_total",
			Help:      "Enrichment snapshots written to the snapshot sink.",
		}),
		SnapshotErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trends_dashboard",
			Name:      "snapshot_errors_total",
			Help:      "Enrichment snapshots the sink failed to accept.",
		}),
		SnapshotsEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "trends_dashboard",
			Name:      "snapshots_enabled",
			Help:      "1 when snapshot publishing is enabled, 0 otherwise.",
		}),
	}
}
