//go:build !integration

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/site/nav", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.POST("/api/calculate", func(c *gin.Context) {
		c.String(http.StatusUnprocessableEntity, "invalid")
	})

	tests := []struct {
		name           string
		method         string
		path           string
		route          string
		expectedStatus int
	}{
		{
			name:           "records successful request",
			method:         http.MethodGet,
			path:           "/api/site/nav?path=/services.html",
			route:          "/api/site/nav",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records rejected calculation",
			method:         http.MethodPost,
			path:           "/api/calculate",
			route:          "/api/calculate",
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "unmatched routes share one label",
			method:         http.MethodGet,
			path:           "/random/1234",
			route:          "unmatched",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(tt.method, tt.route, strconv.Itoa(tt.expectedStatus)))

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(tt.method, tt.route, strconv.Itoa(tt.expectedStatus)))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestRecordCalculation(t *testing.T) {
	before := testutil.ToFloat64(CalculationsTotal.WithLabelValues(StatusSuccess))

	RecordCalculation(50*time.Microsecond, StatusSuccess)
	RecordCalculation(10*time.Microsecond, StatusValidationError)

	assert.Equal(t, before+1, testutil.ToFloat64(CalculationsTotal.WithLabelValues(StatusSuccess)))
}

func TestRecordValidationFailures(t *testing.T) {
	before := testutil.ToFloat64(CalculationValidationFailures.WithLabelValues("duty_percent"))

	RecordValidationFailures("duty_percent", "vat_percent")
	RecordValidationFailures("duty_percent")

	assert.Equal(t, before+2, testutil.ToFloat64(CalculationValidationFailures.WithLabelValues("duty_percent")))
}

func TestRecordLanguageChange(t *testing.T) {
	before := testutil.ToFloat64(LanguagePreferenceChanges.WithLabelValues("en"))
	RecordLanguageChange("en")
	assert.Equal(t, before+1, testutil.ToFloat64(LanguagePreferenceChanges.WithLabelValues("en")))
}

func TestRecordIdempotencyOperation(t *testing.T) {
	before := testutil.ToFloat64(IdempotencyOperations.WithLabelValues("get", "hit"))
	RecordIdempotencyOperation("get", "hit")
	RecordIdempotencyOperation("get", "miss")
	assert.Equal(t, before+1, testutil.ToFloat64(IdempotencyOperations.WithLabelValues("get", "hit")))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("mongodb-logs", 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("mongodb-logs")))

	SetCircuitBreakerState("mongodb-logs", 0)
	assert.Equal(t, float64(0), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("mongodb-logs")))
}
