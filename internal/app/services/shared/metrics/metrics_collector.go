package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	collectorInstance *Collector
	onceCollector     sync.Once
)

type Collector struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlightGauge   prometheus.Gauge

	AdmissionsTotal           *prometheus.CounterVec
	TransfersTotal            prometheus.Counter
	DischargesTotal           prometheus.Counter
	PatientRegistrationsTotal *prometheus.CounterVec
	LabResultsTotal           *prometheus.CounterVec

	AuditEntriesTotal    *prometheus.CounterVec
	AuditBufferDropped   prometheus.Counter
	AuditPublishFailures prometheus.Counter
}

// NewCollector registers every metric on the default registry once per process.
func NewCollector() *Collector {
	onceCollector.Do(func() {
		collectorInstance = &Collector{
			RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, route and status code.",
			}, []string{"method", "route", "status_code"}),

			RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency distribution.",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
			}, []string{"method", "route", "status_code"}),

			InFlightGauge: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "http_in_flight_requests",
				Help: "Current number of in-flight HTTP requests.",
			}),

			AdmissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "hospital",
				Subsystem: "admissions",
				Name:      "admitted_total",
				Help:      "Total admissions by admission type.",
			}, []string{"admission_type"}),

			TransfersTotal: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "hospital",
				Subsystem: "admissions",
				Name:      "transfers_total",
				Help:      "Total patient transfers between beds or wards.",
			}),

			DischargesTotal: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "hospital",
				Subsystem: "admissions",
				Name:      "discharges_total",
				Help:      "Total patient discharges.",
			}),

			PatientRegistrationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "hospital",
				Subsystem: "patients",
				Name:      "registrations_total",
				Help:      "Total patient registrations by registration type and severity level.",
			}, []string{"registration_type", "severity_level"}),

			LabResultsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "hospital",
				Subsystem: "lab",
				Name:      "results_total",
				Help:      "Total lab results by status reached.",
			}, []string{"status"}),

			AuditEntriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "hospital",
				Subsystem: "audit",
				Name:      "entries_total",
				Help:      "Total audit log entries by pipeline stage.",
			}, []string{"stage"}),

			AuditBufferDropped: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "hospital",
				Subsystem: "audit",
				Name:      "buffer_dropped_total",
				Help:      "Audit entries dropped due to full buffer. Alert if non-zero.",
			}),

			AuditPublishFailures: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "hospital",
				Subsystem: "audit",
				Name:      "publish_failures_total",
				Help:      "Audit entries that could not be published to the queue.",
			}),
		}
	})
	return collectorInstance
}

func (c *Collector) ObserveRequest(method, route, statusCode string, seconds float64) {
	c.RequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	c.RequestDuration.WithLabelValues(method, route, statusCode).Observe(seconds)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
