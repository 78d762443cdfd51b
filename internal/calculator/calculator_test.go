//go:build !integration

package calculator

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func validInput() Input {
	return Input{UnitPrice: 10, Quantity: 5, CIFValue: 100, DutyPercent: 10, VATPercent: 15}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		input    Input
		expected Result
	}{
		{
			name:  "reference scenario",
			input: validInput(),
			expected: Result{
				Quantity:    5,
				BaseCost:    50,
				CIFCost:     100,
				DutyCost:    10,
				VATBase:     110,
				VATCost:     16.5,
				TotalCost:   176.5,
				PerUnitCost: 35.3,
			},
		},
		{
			name:  "fractional quantity is floored",
			input: Input{UnitPrice: 10, Quantity: 2.9, CIFValue: 100, DutyPercent: 10, VATPercent: 15},
			expected: Result{
				Quantity:    2,
				BaseCost:    20,
				CIFCost:     100,
				DutyCost:    10,
				VATBase:     110,
				VATCost:     16.5,
				TotalCost:   146.5,
				PerUnitCost: 73.25,
			},
		},
		{
			name:  "quantity below one is clamped",
			input: Input{UnitPrice: 4, Quantity: 0.5, CIFValue: 0, DutyPercent: 0, VATPercent: 0},
			expected: Result{
				Quantity:    1,
				BaseCost:    4,
				TotalCost:   4,
				PerUnitCost: 4,
			},
		},
		{
			name:  "quantity beyond int range is kept",
			input: Input{UnitPrice: 1, Quantity: 1e20, CIFValue: 0, DutyPercent: 0, VATPercent: 0},
			expected: Result{
				Quantity:    1e20,
				BaseCost:    1e20,
				TotalCost:   1e20,
				PerUnitCost: 1,
			},
		},
		{
			name:  "zero rates",
			input: Input{UnitPrice: 0, Quantity: 3, CIFValue: 300, DutyPercent: 0, VATPercent: 0},
			expected: Result{
				Quantity:    3,
				CIFCost:     300,
				VATBase:     300,
				TotalCost:   300,
				PerUnitCost: 100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.input)
			assert.Equal(t, tt.expected.Quantity, got.Quantity)
			assert.InDelta(t, tt.expected.BaseCost, got.BaseCost, tolerance)
			assert.InDelta(t, tt.expected.CIFCost, got.CIFCost, tolerance)
			assert.InDelta(t, tt.expected.DutyCost, got.DutyCost, tolerance)
			assert.InDelta(t, tt.expected.VATBase, got.VATBase, tolerance)
			assert.InDelta(t, tt.expected.VATCost, got.VATCost, tolerance)
			assert.InDelta(t, tt.expected.TotalCost, got.TotalCost, tolerance)
			assert.InDelta(t, tt.expected.PerUnitCost, got.PerUnitCost, tolerance)
		})
	}
}

func TestCompute_Identities(t *testing.T) {
	inputs := []Input{
		validInput(),
		{UnitPrice: 0.01, Quantity: 1, CIFValue: 0.01, DutyPercent: 100, VATPercent: 100},
		{UnitPrice: 1234.56, Quantity: 17.99, CIFValue: 98765.43, DutyPercent: 12.5, VATPercent: 21},
		{UnitPrice: 1e9, Quantity: 1e6, CIFValue: 1e12, DutyPercent: 33.3, VATPercent: 0.1},
	}

	for _, in := range inputs {
		res := Compute(in)
		assert.GreaterOrEqual(t, res.Quantity, 1.0)
		assert.InDelta(t, res.CIFCost+res.DutyCost+res.VATCost+res.BaseCost, res.TotalCost, math.Abs(res.TotalCost)*tolerance)
		assert.InDelta(t, res.TotalCost/res.Quantity, res.PerUnitCost, math.Abs(res.PerUnitCost)*tolerance)
		assert.InDelta(t, res.CIFCost+res.DutyCost, res.VATBase, math.Abs(res.VATBase)*tolerance)
	}
}

func TestResult_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		expected string
	}{
		{
			name:     "finite amounts",
			result:   Compute(validInput()),
			expected: `{"quantity":5,"base_cost":50,"cif_cost":100,"duty_cost":10,"vat_base":110,"vat_cost":16.5,"total_cost":176.5,"per_unit_cost":35.3}`,
		},
		{
			name:     "overflowing amounts are null",
			result:   Compute(Input{UnitPrice: 1e308, Quantity: 10}),
			expected: `{"quantity":10,"base_cost":null,"cif_cost":0,"duty_cost":0,"vat_base":0,"vat_cost":0,"total_cost":null,"per_unit_cost":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.result)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Input)
		flagged []Field
	}{
		{
			name:   "valid input",
			mutate: func(*Input) {},
		},
		{
			name:    "duty above 100",
			mutate:  func(in *Input) { in.DutyPercent = 150 },
			flagged: []Field{FieldDutyPercent},
		},
		{
			name:    "vat below 0",
			mutate:  func(in *Input) { in.VATPercent = -1 },
			flagged: []Field{FieldVATPercent},
		},
		{
			name:    "negative price",
			mutate:  func(in *Input) { in.UnitPrice = -0.01 },
			flagged: []Field{FieldUnitPrice},
		},
		{
			name:    "zero quantity",
			mutate:  func(in *Input) { in.Quantity = 0 },
			flagged: []Field{FieldQuantity},
		},
		{
			name:    "negative quantity",
			mutate:  func(in *Input) { in.Quantity = -3 },
			flagged: []Field{FieldQuantity},
		},
		{
			name:    "fractional quantity below one",
			mutate:  func(in *Input) { in.Quantity = 0.99 },
			flagged: []Field{FieldQuantity},
		},
		{
			name:    "NaN cif",
			mutate:  func(in *Input) { in.CIFValue = math.NaN() },
			flagged: []Field{FieldCIFValue},
		},
		{
			name:    "infinite price",
			mutate:  func(in *Input) { in.UnitPrice = math.Inf(1) },
			flagged: []Field{FieldUnitPrice},
		},
		{
			name:    "boundaries are inclusive",
			mutate:  func(in *Input) { in.DutyPercent, in.VATPercent, in.Quantity, in.UnitPrice = 100, 0, 1, 0 },
			flagged: nil,
		},
		{
			name: "several fields reported in form order",
			mutate: func(in *Input) {
				in.VATPercent = 101
				in.UnitPrice = -1
			},
			flagged: []Field{FieldUnitPrice, FieldVATPercent},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			errs := Validate(in)
			if len(tt.flagged) == 0 {
				assert.Nil(t, errs)
				return
			}
			assert.Equal(t, tt.flagged, errs.Fields())
		})
	}
}

func TestCalculate(t *testing.T) {
	t.Run("valid input returns result", func(t *testing.T) {
		res, err := Calculate(validInput())
		require.NoError(t, err)
		assert.InDelta(t, 176.5, res.TotalCost, tolerance)
	})

	t.Run("invalid input withholds result", func(t *testing.T) {
		in := validInput()
		in.DutyPercent = 150

		res, err := Calculate(in)
		require.Error(t, err)
		assert.Equal(t, Result{}, res)

		var errs ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, []Field{FieldDutyPercent}, errs.Fields())
		assert.Equal(t, "duty_percent: must be between 0 and 100", err.Error())
	})
}

func TestParseInput(t *testing.T) {
	t.Run("converts raw strings", func(t *testing.T) {
		in := ParseInput(map[Field]string{
			FieldUnitPrice:   " 10 ",
			FieldQuantity:    "2.9",
			FieldCIFValue:    "1e2",
			FieldDutyPercent: "10",
			FieldVATPercent:  "15",
		})
		assert.Equal(t, Input{UnitPrice: 10, Quantity: 2.9, CIFValue: 100, DutyPercent: 10, VATPercent: 15}, in)

		res, err := Calculate(in)
		require.NoError(t, err)
		assert.Equal(t, 2.0, res.Quantity)
	})

	t.Run("empty values count as zero", func(t *testing.T) {
		in := ParseInput(map[Field]string{})
		assert.Equal(t, Input{}, in)
		assert.Equal(t, []Field{FieldQuantity}, Validate(in).Fields())
	})

	t.Run("non numeric text is rejected", func(t *testing.T) {
		for _, raw := range []string{"abc", "10$", "Infinity", "NaN", "1e400"} {
			in := ParseInput(map[Field]string{
				FieldUnitPrice: raw,
				FieldQuantity:  "1",
			})
			errs := Validate(in)
			require.True(t, errs.Has(FieldUnitPrice), raw)
			assert.Equal(t, ReasonNotFinite, errs[0].Reason, raw)
		}
	})
}

func TestParseField(t *testing.T) {
	tests := []struct {
		in   string
		want Field
		ok   bool
	}{
		{in: "unit_price", want: FieldUnitPrice, ok: true},
		{in: "product-price", want: FieldUnitPrice, ok: true},
		{in: "cif", want: FieldCIFValue, ok: true},
		{in: "duty-percent", want: FieldDutyPercent, ok: true},
		{in: "vat_percent", want: FieldVATPercent, ok: true},
		{in: "price", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseField(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidationErrors_Details(t *testing.T) {
	errs := Validate(Input{UnitPrice: -1, Quantity: 0, CIFValue: 0, DutyPercent: 0, VATPercent: 200})
	assert.Equal(t, map[string]string{
		"unit_price":  "must be at least 0",
		"quantity":    "must be at least 1",
		"vat_percent": "must be between 0 and 100",
	}, errs.Details())
}
