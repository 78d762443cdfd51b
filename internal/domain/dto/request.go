// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/guttosm/export-go/internal/calculator"
)

// NumberInput is a calculator field value as sent by a client.
// It accepts a JSON number, a JSON string or null, and keeps the raw text so
// the calculator parses it the same way it parses form input.
type NumberInput string

// UnmarshalJSON implements json.Unmarshaler.
func (n *NumberInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumberInput(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected a number or a string, got %s", data)
	}
	*n = NumberInput(num.String())
	return nil
}

// CalculateRequest represents the JSON request body for the calculate endpoint.
//
// Every field accepts a number or a numeric string. Missing or empty fields
// count as zero. Range checks are performed by the calculator so that every
// invalid field is reported at once.
//
// @Description Request to calculate landed cost, duty and VAT
// @Example {"unit_price": 10, "quantity": 5, "cif_value": 100, "duty_percent": 10, "vat_percent": 15}
type CalculateRequest struct {
	// UnitPrice is the price of one unit.
	UnitPrice NumberInput `json:"unit_price" swaggertype:"number" example:"10"`
	// Quantity is the number of units. Fractions are floored.
	Quantity NumberInput `json:"quantity" swaggertype:"number" example:"5"`
	// CIFValue is the cost, insurance and freight value of the shipment.
	CIFValue NumberInput `json:"cif_value" swaggertype:"number" example:"100"`
	// DutyPercent is the duty rate, 0 to 100.
	DutyPercent NumberInput `json:"duty_percent" swaggertype:"number" example:"10"`
	// VATPercent is the VAT rate, 0 to 100.
	VATPercent NumberInput `json:"vat_percent" swaggertype:"number" example:"15"`
} // @name CalculateRequest

// Raw returns the request values keyed by calculator field.
func (r *CalculateRequest) Raw() map[calculator.Field]string {
	return map[calculator.Field]string{
		calculator.FieldUnitPrice:   string(r.UnitPrice),
		calculator.FieldQuantity:    string(r.Quantity),
		calculator.FieldCIFValue:    string(r.CIFValue),
		calculator.FieldDutyPercent: string(r.DutyPercent),
		calculator.FieldVATPercent:  string(r.VATPercent),
	}
}

// Input parses the request into calculator input.
func (r *CalculateRequest) Input() calculator.Input {
	return calculator.ParseInput(r.Raw())
}

// Form actions posted by the calculator page.
const (
	FormActionCalculate = "calculate"
	FormActionReset     = "reset"
)

// CalculatorFormRequest is the urlencoded body posted by the calculator page.
// Field names match the input element ids.
type CalculatorFormRequest struct {
	UnitPrice   string `form:"product-price"`
	Quantity    string `form:"quantity"`
	CIFValue    string `form:"cif"`
	DutyPercent string `form:"duty-percent"`
	VATPercent  string `form:"vat-percent"`
	Action      string `form:"action"`
}

// Raw returns the form values keyed by calculator field.
func (r *CalculatorFormRequest) Raw() map[calculator.Field]string {
	return map[calculator.Field]string{
		calculator.FieldUnitPrice:   r.UnitPrice,
		calculator.FieldQuantity:    r.Quantity,
		calculator.FieldCIFValue:    r.CIFValue,
		calculator.FieldDutyPercent: r.DutyPercent,
		calculator.FieldVATPercent:  r.VATPercent,
	}
}

// ResolvedAction returns the requested action, defaulting to calculate.
func (r *CalculatorFormRequest) ResolvedAction() string {
	if strings.EqualFold(strings.TrimSpace(r.Action), FormActionReset) {
		return FormActionReset
	}
	return FormActionCalculate
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// LanguagePreferenceRequest represents the JSON request body for storing
// the visitor's language.
//
// @Description Request to store the language preference
// @Example {"lang": "en"}
type LanguagePreferenceRequest struct {
	// Lang is the selected language code.
	Lang string `json:"lang" binding:"required" example:"en"`
} // @name LanguagePreferenceRequest

// ErrInvalidLanguage is returned when the language code is blank or too long.
var ErrInvalidLanguage = &ValidationError{
	Field:   "lang",
	Message: "must be a language code",
}

// Validate performs custom validation on the request.
func (r *LanguagePreferenceRequest) Validate() error {
	lang := strings.TrimSpace(r.Lang)
	if lang == "" || len(lang) > 35 {
		return ErrInvalidLanguage
	}
	return nil
}
