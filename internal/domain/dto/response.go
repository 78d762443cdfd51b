package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/export-go/internal/calculator"
	"github.com/guttosm/export-go/internal/domain/model"
	"github.com/guttosm/export-go/internal/site"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeValidation indicates a well-formed request with invalid values.
	ErrCodeValidation = "validation_failed"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a dependency is not available.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_failed"`
	Message string `json:"message,omitempty" example:"Some calculator fields are invalid"`
	// Details maps each offending field to what is wrong with it
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails attaches per-field details to the error response.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnprocessableEntity:
		return ErrCodeValidation
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// CalculateResponse is the result of a successful calculation.
// @Description Landed cost breakdown with display strings
type CalculateResponse struct {
	// Input echoes the parsed values
	Input calculator.Input `json:"input"`
	// Result holds the unrounded amounts
	Result calculator.Result `json:"result"`
	// Formatted maps output element ids to currency strings
	Formatted map[calculator.Output]string `json:"formatted" swaggertype:"object,string"`
	// Currency is the ISO 4217 code used for Formatted
	Currency string `json:"currency" example:"USD"`
	// Locale is the locale used for Formatted
	Locale           string `json:"locale" example:"en-US"`
	BreakdownVisible bool   `json:"breakdown_visible" example:"true"`
	ActionsVisible   bool   `json:"actions_visible" example:"true"`
} // @name CalculateResponse

// LanguagePreferenceResponse describes the stored language preference.
// @Description Visitor language preference
type LanguagePreferenceResponse struct {
	// Lang is the stored preference
	Lang string `json:"lang" example:"en"`
	// DisplayCode is the label shown on the language button
	DisplayCode string `json:"display_code" example:"EN"`
	// Translated reports whether the language has its own dictionary
	Translated bool `json:"translated" example:"true"`
} // @name LanguagePreferenceResponse

// DictionaryResponse is a translation dictionary.
// @Description Translation dictionary for a locale
type DictionaryResponse struct {
	Locale   string            `json:"locale" example:"en"`
	Messages map[string]string `json:"messages"`
} // @name DictionaryResponse

// NavResponse is the navigation with active state.
// @Description Navigation links for the current page
type NavResponse struct {
	Page  string                 `json:"page" example:"services.html"`
	Links []site.RenderedNavLink `json:"links"`
} // @name NavResponse

// ServicesResponse lists the service cards visible under a filter.
// @Description Filtered service cards
type ServicesResponse struct {
	Filter   string             `json:"filter" example:"import"`
	Filters  []site.Filter      `json:"filters"`
	Services []site.ServiceCard `json:"services"`
} // @name ServicesResponse

// PanelsResponse is the open state of a panel group.
// @Description Collapsible panel group state
type PanelsResponse struct {
	Group  string            `json:"group" example:"pricing"`
	Open   string            `json:"open,omitempty" example:"starter"`
	Panels []site.PanelState `json:"panels"`
} // @name PanelsResponse

// AnchorResponse resolves an in-page link.
// @Description In-page anchor resolution
type AnchorResponse struct {
	Href   string `json:"href" example:"#contact"`
	Target string `json:"target,omitempty" example:"contact"`
	Scroll bool   `json:"scroll" example:"true"`
} // @name AnchorResponse

// LogsResponse lists stored request and audit logs.
// @Description Stored logs
type LogsResponse struct {
	// Count is the number of logs in this page
	Count int `json:"count" example:"1"`
	// Total is the number of logs matching the filter
	Total int64            `json:"total" example:"42"`
	Limit int              `json:"limit" example:"50"`
	Skip  int              `json:"skip" example:"0"`
	Logs  []model.LogEntry `json:"logs"`
} // @name LogsResponse
