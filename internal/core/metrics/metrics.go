package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	leadsLoaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_loaded_total",
			Help: "Total number of lead records loaded from the store",
		},
	)

	sampleFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sample_data_fallbacks_total",
			Help: "Times the dashboard fell back to generated sample data",
		},
	)

	statusUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_status_updates_total",
			Help: "Total number of lead status updates",
		},
		[]string{"status"},
	)

	saveFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lead_save_failures_total",
			Help: "Lead saves that failed and left a reconciliation flag",
		},
	)

	csvExports = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "csv_exports_total",
			Help: "Total number of CSV exports",
		},
	)
)

func RecordLeadsLoaded(n int) {
	leadsLoaded.Add(float64(n))
}

func RecordSampleFallback() {
	sampleFallbacks.Inc()
}

func RecordStatusUpdate(status string) {
	statusUpdates.WithLabelValues(status).Inc()
}

func RecordSaveFailure() {
	saveFailures.Inc()
}

func RecordExport() {
	csvExports.Inc()
}
