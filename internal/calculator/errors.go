package calculator

import (
	"math"
	"strconv"
	"strings"
)

// Reason classifies why a field failed validation.
type Reason string

const (
	// ReasonNotFinite means the value was not a number or was infinite.
	ReasonNotFinite Reason = "not_finite"
	// ReasonOutOfRange means the value fell outside the field's closed range.
	ReasonOutOfRange Reason = "out_of_range"
)

// FieldError is the validation failure of a single field.
type FieldError struct {
	Field  Field
	Reason Reason
	Min    float64
	Max    float64
}

// Error returns the error message for FieldError.
func (e FieldError) Error() string {
	return string(e.Field) + ": " + e.Message()
}

// Message describes the failure without the field name.
func (e FieldError) Message() string {
	if e.Reason == ReasonNotFinite {
		return "must be a finite number"
	}
	if math.IsInf(e.Max, 1) {
		return "must be at least " + formatBound(e.Min)
	}
	return "must be between " + formatBound(e.Min) + " and " + formatBound(e.Max)
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ValidationErrors collects the failing fields of one calculation request.
type ValidationErrors []FieldError

// Error joins the individual field messages.
func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// Has reports whether the field failed validation.
func (v ValidationErrors) Has(f Field) bool {
	for _, e := range v {
		if e.Field == f {
			return true
		}
	}
	return false
}

// Fields returns the failing fields in form order.
func (v ValidationErrors) Fields() []Field {
	out := make([]Field, len(v))
	for i, e := range v {
		out[i] = e.Field
	}
	return out
}

// Details maps each failing field name to its message.
func (v ValidationErrors) Details() map[string]string {
	out := make(map[string]string, len(v))
	for _, e := range v {
		out[string(e.Field)] = e.Message()
	}
	return out
}
