package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/export-go/internal/calculator"
)

func TestNumberInput_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected NumberInput
		wantErr  bool
	}{
		{name: "integer", payload: `10`, expected: "10"},
		{name: "decimal", payload: `2.9`, expected: "2.9"},
		{name: "exponent", payload: `1e2`, expected: "1e2"},
		{name: "string", payload: `"15"`, expected: "15"},
		{name: "empty string", payload: `""`, expected: ""},
		{name: "non numeric string", payload: `"abc"`, expected: "abc"},
		{name: "null", payload: `null`, expected: ""},
		{name: "boolean", payload: `true`, wantErr: true},
		{name: "object", payload: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n NumberInput
			err := json.Unmarshal([]byte(tt.payload), &n)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestCalculateRequest_Input(t *testing.T) {
	var req CalculateRequest
	body := `{"unit_price": 10, "quantity": "5", "cif_value": 100, "duty_percent": "10", "vat_percent": 15}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, calculator.Input{UnitPrice: 10, Quantity: 5, CIFValue: 100, DutyPercent: 10, VATPercent: 15}, req.Input())
}

func TestCalculateRequest_MissingFieldsAreZero(t *testing.T) {
	var req CalculateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"quantity": 1}`), &req))

	in := req.Input()
	assert.Zero(t, in.UnitPrice)
	assert.Equal(t, float64(1), in.Quantity)
	assert.Nil(t, calculator.Validate(in))
}

func TestCalculatorFormRequest(t *testing.T) {
	req := CalculatorFormRequest{UnitPrice: "10", Quantity: "5", CIFValue: "100", DutyPercent: "10", VATPercent: "15"}
	assert.Equal(t, "10", req.Raw()[calculator.FieldUnitPrice])
	assert.Equal(t, "15", req.Raw()[calculator.FieldVATPercent])

	assert.Equal(t, FormActionCalculate, req.ResolvedAction())
	req.Action = " Reset "
	assert.Equal(t, FormActionReset, req.ResolvedAction())
	req.Action = "bogus"
	assert.Equal(t, FormActionCalculate, req.ResolvedAction())
}

func TestLanguagePreferenceRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		request       LanguagePreferenceRequest
		expectedError bool
	}{
		{name: "valid", request: LanguagePreferenceRequest{Lang: "en"}},
		{name: "regional", request: LanguagePreferenceRequest{Lang: "pt-BR"}},
		{name: "blank", request: LanguagePreferenceRequest{Lang: "   "}, expectedError: true},
		{name: "too long", request: LanguagePreferenceRequest{Lang: "abcdefghijklmnopqrstuvwxyzabcdefghijk"}, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError {
				assert.ErrorIs(t, err, ErrInvalidLanguage)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		request       LoginRequest
		expectedField string
	}{
		{name: "valid", request: LoginRequest{Email: "admin@export-go.com", Password: "password123"}},
		{name: "missing email", request: LoginRequest{Password: "password123"}, expectedField: "email"},
		{name: "short password", request: LoginRequest{Email: "admin@export-go.com", Password: "123"}, expectedField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.expectedField, vErr.Field)
		})
	}
}
