// Package metrics provides Prometheus metrics collection for the export-go service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Calculation outcomes.
const (
	StatusSuccess         = "success"
	StatusValidationError = "validation_error"
	StatusInvalidRequest  = "invalid_request"
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

	// CalculationsTotal counts duty and VAT calculations by outcome.
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculations_total",
			Help: "Total number of duty and VAT calculations",
		},
		[]string{"status"},
	)

	// CalculationDuration tracks calculation duration.
	CalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "calculation_duration_seconds",
			Help:    "Duty and VAT calculation duration in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// CalculationValidationFailures counts rejected calculator fields.
	CalculationValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_validation_failures_total",
			Help: "Total number of invalid calculator fields by field",
		},
		[]string{"field"},
	)

	// LanguagePreferenceChanges counts stored language preferences.
	LanguagePreferenceChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "language_preference_changes_total",
			Help: "Total number of language preference changes by language",
		},
		[]string{"lang"},
	)

	// IdempotencyOperations counts idempotency cache lookups and stores.
	IdempotencyOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "idempotency_cache_operations_total",
			Help: "Total number of idempotency cache operations",
		},
		[]string{"operation", "result"},
	)

	// CircuitBreakerState reports the state of each circuit breaker:
	// 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
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

// RecordCalculation records metrics for a calculation.
func RecordCalculation(duration time.Duration, status string) {
	CalculationDuration.Observe(duration.Seconds())
	CalculationsTotal.WithLabelValues(status).Inc()
}

// RecordValidationFailures increments the failure counter of every field.
func RecordValidationFailures(fields ...string) {
	for _, f := range fields {
		CalculationValidationFailures.WithLabelValues(f).Inc()
	}
}

// RecordLanguageChange records a stored language preference.
func RecordLanguageChange(lang string) {
	LanguagePreferenceChanges.WithLabelValues(lang).Inc()
}

// RecordIdempotencyOperation records an idempotency cache operation.
func RecordIdempotencyOperation(operation, result string) {
	IdempotencyOperations.WithLabelValues(operation, result).Inc()
}

// SetCircuitBreakerState publishes the numeric state of a circuit breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
