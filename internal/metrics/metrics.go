// Package metrics provides Prometheus metrics collection for the trace service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// BatchGenerationsTotal counts generation runs by mode (preview|persist) and status.
	BatchGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qr_batch_generations_total",
			Help: "Total number of QR batch generation runs",
		},
		[]string{"mode", "status"},
	)

	// BatchGenerationDuration tracks generation time, persistence excluded.
	BatchGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "qr_batch_generation_duration_seconds",
			Help:    "QR batch generation duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// BatchPersistDuration tracks the storage transaction time.
	BatchPersistDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "qr_batch_persist_duration_seconds",
			Help:    "QR batch persistence duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// CodesGeneratedTotal counts emitted codes by kind (master|individual).
	CodesGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qr_codes_generated_total",
			Help: "Total number of QR codes generated",
		},
		[]string{"kind"},
	)

	// BatchDiscrepancy is the surplus of emitted individual codes over the plan in the last batch.
	BatchDiscrepancy = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "qr_batch_last_discrepancy",
			Help: "Emitted individual codes minus planned unique codes for the last generated batch",
		},
	)

	// CodeValidationsTotal counts parse/validate calls by kind (master|individual|invalid).
	CodeValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qr_code_validations_total",
			Help: "Total number of QR code validations",
		},
		[]string{"kind"},
	)

	// ExportsTotal counts export archives written by status.
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qr_batch_exports_total",
			Help: "Total number of batch exports",
		},
		[]string{"status"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordBatchGeneration records one generation run.
func RecordBatchGeneration(mode, status string, duration time.Duration) {
	BatchGenerationDuration.Observe(duration.Seconds())
	BatchGenerationsTotal.WithLabelValues(mode, status).Inc()
}

// RecordBatchCodes records the codes emitted by a successful run.
func RecordBatchCodes(masters, individuals, discrepancy int) {
	CodesGeneratedTotal.WithLabelValues("master").Add(float64(masters))
	CodesGeneratedTotal.WithLabelValues("individual").Add(float64(individuals))
	BatchDiscrepancy.Set(float64(discrepancy))
}

// RecordBatchPersist records the duration of a storage transaction.
func RecordBatchPersist(duration time.Duration) {
	BatchPersistDuration.Observe(duration.Seconds())
}

// RecordCodeValidation records a validation by resulting kind.
func RecordCodeValidation(kind string) {
	CodeValidationsTotal.WithLabelValues(kind).Inc()
}

// RecordExport records an export attempt.
func RecordExport(status string) {
	ExportsTotal.WithLabelValues(status).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheSize updates the cache size gauge.
func UpdateCacheSize(size int) {
	CacheSize.Set(float64(size))
}

// SetCircuitBreakerState publishes a breaker state as a gauge value.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
