// Package metrics exposes Prometheus instrumentation for queries, imports and HTTP traffic.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Query outcomes
const (
	OutcomeOK           = "ok"
	OutcomeInvalid      = "invalid"
	OutcomeNoData       = "no_data"
	OutcomeStorageError = "storage_error"
)

var (
	queryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sales",
		Name:      "queries_total",
		Help:      "Analytic queries by query name and outcome.",
	}, []string{"query", "outcome"})

	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sales",
		Name:      "query_duration_seconds",
		Help:      "Analytic query latency including the store fetch.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	}, []string{"query"})

	recordsScanned = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sales",
		Name:      "records_scanned_total",
		Help:      "Records fetched from the store and passed through the engine.",
	}, []string{"query"})

	importTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sales",
		Name:      "imports_total",
		Help:      "File imports by format and outcome.",
	}, []string{"format", "outcome"})

	importedRecords = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sales",
		Name:      "imported_records_total",
		Help:      "Sales records persisted by imports.",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sales",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sales",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// ObserveQuery records one analytic query
func ObserveQuery(query, outcome string, elapsed time.Duration, scanned int) {
	queryTotal.WithLabelValues(query, outcome).Inc()
	queryDuration.WithLabelValues(query).Observe(elapsed.Seconds())
	if scanned > 0 {
		recordsScanned.WithLabelValues(query).Add(float64(scanned))
	}
}

// ObserveImport records one import attempt
func ObserveImport(format, outcome string, rows int) {
	importTotal.WithLabelValues(format, outcome).Inc()
	if outcome == OutcomeOK {
		importedRecords.Add(float64(rows))
	}
}

// ObserveHTTP records one served request
func ObserveHTTP(method, route, status string, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the default registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}
