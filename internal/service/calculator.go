package service

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/export-go/internal/calculator"
	"github.com/guttosm/export-go/internal/domain/dto"
	"github.com/guttosm/export-go/internal/metrics"
)

// Calculator runs landed cost calculations and renders them for display.
type Calculator interface {
	// Calculate validates the input and returns the rendered breakdown. The
	// error is a calculator.ValidationErrors when any field is invalid.
	Calculate(in calculator.Input) (*dto.CalculateResponse, error)
	// NewForm returns an empty calculator form using the configured formatter.
	NewForm() *calculator.Form
	// SubmitForm submits a form and records the outcome like Calculate does.
	SubmitForm(form *calculator.Form) (calculator.Result, bool)
}

// CalculatorOption configures a CalculatorService.
type CalculatorOption func(*CalculatorService)

// CalculatorService implements Calculator.
type CalculatorService struct {
	locale    string
	currency  string
	formatter *calculator.MoneyFormatter
}

// NewCalculatorService creates a calculator rendering amounts in en-US dollars
// unless configured otherwise.
func NewCalculatorService(opts ...CalculatorOption) *CalculatorService {
	s := &CalculatorService{
		locale:   "en-US",
		currency: calculator.DefaultCurrency,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.formatter = calculator.NewMoneyFormatter(s.locale, s.currency)
	if !s.formatter.Localized() {
		log.Warn().
			Str("locale", s.locale).
			Str("currency", s.currency).
			Msg("Unsupported calculator locale or currency, using plain dollar formatting")
	}
	return s
}

// WithFormatting sets the locale and ISO 4217 currency used for display.
// Empty values keep the defaults.
func WithFormatting(locale, currency string) CalculatorOption {
	return func(s *CalculatorService) {
		if locale != "" {
			s.locale = locale
		}
		if currency != "" {
			s.currency = currency
		}
	}
}

// Locale returns the display locale.
func (s *CalculatorService) Locale() string {
	return s.locale
}

// Currency returns the display currency.
func (s *CalculatorService) Currency() string {
	return s.currency
}

// Calculate validates the input and returns the rendered breakdown.
func (s *CalculatorService) Calculate(in calculator.Input) (*dto.CalculateResponse, error) {
	start := time.Now()

	res, err := calculator.Calculate(in)
	if err != nil {
		s.recordFailure(start, err)
		return nil, err
	}
	metrics.RecordCalculation(time.Since(start), metrics.StatusSuccess)

	return &dto.CalculateResponse{
		Input:            in,
		Result:           res,
		Formatted:        calculator.RenderResult(res, s.formatter),
		Currency:         s.currency,
		Locale:           s.locale,
		BreakdownVisible: true,
		ActionsVisible:   true,
	}, nil
}

// NewForm returns an empty form.
func (s *CalculatorService) NewForm() *calculator.Form {
	return calculator.NewForm(s.formatter)
}

// SubmitForm submits the form and records metrics for the outcome.
func (s *CalculatorService) SubmitForm(form *calculator.Form) (calculator.Result, bool) {
	start := time.Now()

	res, ok := form.Submit()
	if !ok {
		s.recordFailure(start, calculator.Validate(calculator.ParseInput(form.State().Values)))
		return res, false
	}
	metrics.RecordCalculation(time.Since(start), metrics.StatusSuccess)
	return res, true
}

func (s *CalculatorService) recordFailure(start time.Time, err error) {
	metrics.RecordCalculation(time.Since(start), metrics.StatusValidationError)

	var verrs calculator.ValidationErrors
	if !errors.As(err, &verrs) {
		return
	}
	fields := make([]string, 0, len(verrs))
	for _, f := range verrs.Fields() {
		fields = append(fields, string(f))
	}
	metrics.RecordValidationFailures(fields...)
}
