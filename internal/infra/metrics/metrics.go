package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "decor_rental"

// Metrics owns a private registry so several instances (tests) never collide.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	bookingsSubmitted    *prometheus.CounterVec
	bookingStatusChanges *prometheus.CounterVec
	backupRestores       *prometheus.CounterVec
	backupExports        *prometheus.CounterVec
	datasetResets        prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),

		bookingsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_created_total",
			Help:      "Count of bookings created by status.",
		}, []string{"status"}),

		bookingStatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_status_changed_total",
			Help:      "Count of booking status changes by new status.",
		}, []string{"status"}),

		backupRestores: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backup_restore_total",
			Help:      "Count of backup restores by format and outcome.",
		}, []string{"format", "outcome"}),

		backupExports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backup_export_total",
			Help:      "Count of backup exports by format.",
		}, []string{"format"}),

		datasetResets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_reset_total",
			Help:      "Count of destructive resets.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestsTotal,
		m.RequestDuration,
		m.bookingsSubmitted,
		m.bookingStatusChanges,
		m.backupRestores,
		m.backupExports,
		m.datasetResets,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) BookingSubmitted(status string) {
	m.bookingsSubmitted.WithLabelValues(status).Inc()
}

func (m *Metrics) BookingStatusChanged(status string) {
	m.bookingStatusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) BackupRestored(format string, ok bool) {
	outcome := "success"
	if !ok {
		outcome = "rejected"
	}
	m.backupRestores.WithLabelValues(format, outcome).Inc()
}

func (m *Metrics) BackupExported(format string) {
	m.backupExports.WithLabelValues(format).Inc()
}

func (m *Metrics) DatasetReset() {
	m.datasetResets.Inc()
}
