// Package calculator implements the import-cost calculator: base cost, CIF,
// customs duty, VAT, total landed cost and per-unit cost.
//
// Validation and computation are kept apart. Validate is a set of independent
// per-field predicates; Compute is a pure function that is only meaningful on
// input that passed Validate. Calculate combines the two and never returns a
// partial result.
package calculator

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Field identifies one of the five calculator inputs.
type Field string

const (
	// FieldUnitPrice is the product price per unit.
	FieldUnitPrice Field = "unit_price"
	// FieldQuantity is the number of units ordered.
	FieldQuantity Field = "quantity"
	// FieldCIFValue is the declared cost, insurance and freight value.
	FieldCIFValue Field = "cif_value"
	// FieldDutyPercent is the import duty rate applied to the CIF value.
	FieldDutyPercent Field = "duty_percent"
	// FieldVATPercent is the VAT rate applied to CIF value plus duty.
	FieldVATPercent Field = "vat_percent"
)

// Fields lists every input in form order.
var Fields = []Field{
	FieldUnitPrice,
	FieldQuantity,
	FieldCIFValue,
	FieldDutyPercent,
	FieldVATPercent,
}

// ElementID returns the stable form element identifier of the field.
func (f Field) ElementID() string {
	switch f {
	case FieldUnitPrice:
		return "product-price"
	case FieldQuantity:
		return "quantity"
	case FieldCIFValue:
		return "cif"
	case FieldDutyPercent:
		return "duty-percent"
	case FieldVATPercent:
		return "vat-percent"
	default:
		return string(f)
	}
}

// ParseField maps either a field name or its element id to a Field.
func ParseField(s string) (Field, bool) {
	for _, f := range Fields {
		if s == string(f) || s == f.ElementID() {
			return f, true
		}
	}
	return "", false
}

// bounds is the closed range a field value must fall into.
type bounds struct {
	min float64
	max float64
}

var fieldBounds = map[Field]bounds{
	FieldUnitPrice:   {min: 0, max: math.Inf(1)},
	FieldQuantity:    {min: 1, max: math.Inf(1)},
	FieldCIFValue:    {min: 0, max: math.Inf(1)},
	FieldDutyPercent: {min: 0, max: 100},
	FieldVATPercent:  {min: 0, max: 100},
}

// Input is one calculation request. Quantity is kept as entered; Compute
// floors it and clamps it to at least one.
type Input struct {
	UnitPrice   float64 `json:"unit_price"`
	Quantity    float64 `json:"quantity"`
	CIFValue    float64 `json:"cif_value"`
	DutyPercent float64 `json:"duty_percent"`
	VATPercent  float64 `json:"vat_percent"`
}

// Value returns the raw value held for a field.
func (in Input) Value(f Field) float64 {
	switch f {
	case FieldUnitPrice:
		return in.UnitPrice
	case FieldQuantity:
		return in.Quantity
	case FieldCIFValue:
		return in.CIFValue
	case FieldDutyPercent:
		return in.DutyPercent
	case FieldVATPercent:
		return in.VATPercent
	default:
		return math.NaN()
	}
}

// set assigns a field value.
func (in *Input) set(f Field, v float64) {
	switch f {
	case FieldUnitPrice:
		in.UnitPrice = v
	case FieldQuantity:
		in.Quantity = v
	case FieldCIFValue:
		in.CIFValue = v
	case FieldDutyPercent:
		in.DutyPercent = v
	case FieldVATPercent:
		in.VATPercent = v
	}
}

// Result holds the derived monetary values of a calculation. Quantity is the
// floored quantity actually used, never below 1. Amounts can overflow to
// +Inf for very large valid inputs.
type Result struct {
	Quantity    float64 `json:"quantity"`
	BaseCost    float64 `json:"base_cost"`
	CIFCost     float64 `json:"cif_cost"`
	DutyCost    float64 `json:"duty_cost"`
	VATBase     float64 `json:"vat_base"`
	VATCost     float64 `json:"vat_cost"`
	TotalCost   float64 `json:"total_cost"`
	PerUnitCost float64 `json:"per_unit_cost"`
}

// MarshalJSON writes amounts that are not finite as null, since JSON has no
// representation for them. The formatted strings still carry the rendered value.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Quantity    *float64 `json:"quantity"`
		BaseCost    *float64 `json:"base_cost"`
		CIFCost     *float64 `json:"cif_cost"`
		DutyCost    *float64 `json:"duty_cost"`
		VATBase     *float64 `json:"vat_base"`
		VATCost     *float64 `json:"vat_cost"`
		TotalCost   *float64 `json:"total_cost"`
		PerUnitCost *float64 `json:"per_unit_cost"`
	}{
		Quantity:    finite(r.Quantity),
		BaseCost:    finite(r.BaseCost),
		CIFCost:     finite(r.CIFCost),
		DutyCost:    finite(r.DutyCost),
		VATBase:     finite(r.VATBase),
		VATCost:     finite(r.VATCost),
		TotalCost:   finite(r.TotalCost),
		PerUnitCost: finite(r.PerUnitCost),
	})
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ParseInput converts raw form strings into an Input the way a browser
// number conversion does: surrounding whitespace is ignored and an empty
// value counts as zero. Text that is not a number becomes NaN, which
// Validate rejects. Missing keys are treated as empty.
func ParseInput(raw map[Field]string) Input {
	var in Input
	for _, f := range Fields {
		in.set(f, ParseNumber(raw[f]))
	}
	return in
}

// ParseNumber converts a single raw value. See ParseInput.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Validate checks every field independently and reports each failing field
// once, in form order. It returns nil when the input is valid.
func Validate(in Input) ValidationErrors {
	var errs ValidationErrors
	for _, f := range Fields {
		if err := validateField(f, in.Value(f)); err != nil {
			errs = append(errs, *err)
		}
	}
	return errs
}

func validateField(f Field, v float64) *FieldError {
	b := fieldBounds[f]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &FieldError{Field: f, Reason: ReasonNotFinite}
	}
	if v < b.min || v > b.max {
		return &FieldError{Field: f, Reason: ReasonOutOfRange, Min: b.min, Max: b.max}
	}
	return nil
}

// Compute derives the result from an input that passed Validate.
func Compute(in Input) Result {
	q := math.Max(1, math.Floor(in.Quantity))

	base := in.UnitPrice * q
	duty := (in.DutyPercent / 100) * in.CIFValue
	vatBase := in.CIFValue + duty
	vat := (in.VATPercent / 100) * vatBase
	total := in.CIFValue + duty + vat + base

	return Result{
		Quantity:    q,
		BaseCost:    base,
		CIFCost:     in.CIFValue,
		DutyCost:    duty,
		VATBase:     vatBase,
		VATCost:     vat,
		TotalCost:   total,
		PerUnitCost: total / q,
	}
}

// Calculate validates the input and, only if every field passes, computes
// the result. The returned error is always of type ValidationErrors.
func Calculate(in Input) (Result, error) {
	if errs := Validate(in); len(errs) > 0 {
		return Result{}, errs
	}
	return Compute(in), nil
}
