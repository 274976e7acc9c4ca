package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// dashboard data service.
type Metrics struct {
	RecordsLoaded    prometheus.Gauge
	BoundariesLoaded prometheus.Gauge
	SnapshotLoads    prometheus.Counter
	SnapshotErrors   prometheus.Counter

	// Aggregation metrics.
	AggregationRequests *prometheus.CounterVec // labels: operation={map,monthly,yearly,comparison,dashboard}
	AggregationDuration prometheus.Histogram
	SelectionErrors     prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rainfall_dashboard",
			Name:      "records_loaded",
			Help:      "Number of forecast records in the current snapshot.",
		}),
		BoundariesLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rainfall_dashboard",
			Name:      "boundaries_loaded",
			Help:      "Number of displayable boundary features in the current snapshot.",
		}),
		SnapshotLoads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rainfall_dashboard",
			Name:      "snapshot_loads_total",
			Help:      "Total successful input loads, including mtime-triggered reloads.",
		}),
		SnapshotErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rainfall_dashboard",
			Name:      "snapshot_errors_total",
			Help:      "Total failed input loads.",
		}),
		AggregationRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rainfall_dashboard",
			Name:      "aggregation_requests_total",
			Help:      "Aggregation requests by operation.",
		}, []string{"operation"}),
		AggregationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rainfall_dashboard",
			Name:      "aggregation_duration_seconds",
			Help:      "Duration of a single aggregation request.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		SelectionErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rainfall_dashboard",
			Name:      "selection_errors_total",
			Help:      "Requests rejected for naming an unobserved year or region.",
		}),
	}

	prometheus.MustRegister(
		m.RecordsLoaded,
		m.BoundariesLoaded,
		m.SnapshotLoads,
		m.SnapshotErrors,
		m.AggregationRequests,
		m.AggregationDuration,
		m.SelectionErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RecordsLoaded:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "rainfall_dashboard", Name: "records_loaded"}),
		BoundariesLoaded:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "rainfall_dashboard", Name: "boundaries_loaded"}),
		SnapshotLoads:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "rainfall_dashboard", Name: "snapshot_loads_total"}),
		SnapshotErrors:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "rainfall_dashboard", Name: "snapshot_errors_total"}),
		AggregationRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "rainfall_dashboard", Name: "aggregation_requests_total"}, []string{"operation"}),
		AggregationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "rainfall_dashboard", Name: "aggregation_duration_seconds"}),
		SelectionErrors:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "rainfall_dashboard", Name: "selection_errors_total"}),
	}
}
