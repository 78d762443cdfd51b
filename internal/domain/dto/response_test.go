package dto

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorResponse_WithRequestID(t *testing.T) {
	err := NewError(ErrCodeInternal, "test error").WithRequestID("test-id")

	assert.Equal(t, "test-id", err.RequestID)
	assert.Equal(t, ErrCodeInternal, err.Error)
	assert.Equal(t, "test error", err.Message)
}

func TestErrorResponse_WithDetails(t *testing.T) {
	details := map[string]string{"duty_percent": "must be between 0 and 100"}
	err := NewError(ErrCodeValidation, "invalid").WithDetails(details)

	assert.Equal(t, details, err.Details)
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnprocessableEntity, ErrCodeValidation},
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusRequestTimeout, ErrCodeTimeout},
		{http.StatusServiceUnavailable, ErrCodeUnavailable},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, ErrCodeFromStatus(tt.status))
		})
	}
}

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeInvalidRequest, "test message")

	assert.Equal(t, ErrCodeInvalidRequest, err.Error)
	assert.Equal(t, "test message", err.Message)
	assert.WithinDuration(t, time.Now(), err.Timestamp, time.Second)
}
