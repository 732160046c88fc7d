package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors exposed by the service.
// All collectors carry a "service" label so dashboards can be shared
// between deployments.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	dbOpenConnections *prometheus.GaugeVec
	dbIdleConnections *prometheus.GaugeVec
	dbInUse           *prometheus.GaugeVec
	dbWaitCount       *prometheus.GaugeVec
}

// New registers and returns the service metrics set.
func New(serviceName string) *Metrics {
	m := &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries.",
		}, []string{"service", "operation", "result"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency.",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"service", "operation"}),

		dbOpenConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Open connections in the database pool.",
		}, []string{"service"}),

		dbIdleConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Idle connections in the database pool.",
		}, []string{"service"}),

		dbInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Connections currently in use.",
		}, []string{"service"}),

		dbWaitCount: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count_total",
			Help: "Cumulative number of waits for a connection.",
		}, []string{"service"}),
	}

	// Pre-create the pool gauges so they show up before the first scrape.
	m.dbOpenConnections.WithLabelValues(serviceName)
	m.dbIdleConnections.WithLabelValues(serviceName)
	m.dbInUse.WithLabelValues(serviceName)
	m.dbWaitCount.WithLabelValues(serviceName)

	return m
}

// ObserveHTTPRequest records one finished HTTP request.
func (m *Metrics) ObserveHTTPRequest(service, method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(service, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery records one finished database query.
func (m *Metrics) ObserveDBQuery(service, operation string, duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.dbQueriesTotal.WithLabelValues(service, operation, result).Inc()
	m.dbQueryDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

// SetDBPoolStats publishes a snapshot of the sql.DB pool statistics.
func (m *Metrics) SetDBPoolStats(service string, stats sql.DBStats) {
	m.dbOpenConnections.WithLabelValues(service).Set(float64(stats.OpenConnections))
	m.dbIdleConnections.WithLabelValues(service).Set(float64(stats.Idle))
	m.dbInUse.WithLabelValues(service).Set(float64(stats.InUse))
	m.dbWaitCount.WithLabelValues(service).Set(float64(stats.WaitCount))
}
