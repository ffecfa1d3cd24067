package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ecopatrol"

// Metrics holds the Prometheus counters, histograms, and gauges for the dashboard.
type Metrics struct {
	PageRenders      *prometheus.CounterVec // labels: tab={analytics,reports,map}
	ReportsSelected  prometheus.Counter
	Exports          *prometheus.CounterVec // labels: format={csv,pdf}, outcome={success,error}
	ExportInProgress prometheus.Gauge
	ExportRows       prometheus.Histogram
	ArchiveUploads   *prometheus.CounterVec // labels: outcome={success,error}
	PDFRequests      *prometheus.CounterVec // labels: outcome={published,error}

	// Geocoding metrics.
	GeocodeRequests *prometheus.CounterVec // labels: outcome={success,error,empty}
	GeocodeCache    *prometheus.CounterVec // labels: result={hit,miss}
	GeocodeEnabled  prometheus.Gauge
}

// NewMetrics creates and registers all dashboard metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, so
// tests can build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Dashboard page renders by active tab.",
		}, []string{"tab"}),
		ReportsSelected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_selected_total",
			Help:      "Report selections in the list view.",
		}),
		Exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Export requests by format and outcome.",
		}, []string{"format", "outcome"}),
		ExportInProgress: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "export_in_progress",
			Help:      "1 while the export-in-progress indicator is set, 0 otherwise.",
		}),
		ExportRows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "export_rows",
			Help:      "Number of report rows per CSV export.",
			Buckets:   []float64{0, 1, 5, 10, 50, 100, 500, 1000},
		}),
		ArchiveUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archive_uploads_total",
			Help:      "CSV export archive uploads by outcome.",
		}, []string{"outcome"}),
		PDFRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pdf_requests_total",
			Help:      "PDF render requests handed to the external backend by outcome.",
		}, []string{"outcome"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Reverse geocoding API requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		GeocodeEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "geocode_enabled",
			Help:      "1 when map geocoding is enabled, 0 otherwise.",
		}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.PageRenders,
		m.ReportsSelected,
		m.Exports,
		m.ExportInProgress,
		m.ExportRows,
		m.ArchiveUploads,
		m.PDFRequests,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeEnabled,
	}
}
