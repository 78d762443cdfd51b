package calculator

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// DefaultCurrency is the ISO 4217 code used when none is configured.
	DefaultCurrency = "USD"
	// moneyScale is the number of fraction digits rendered for every amount.
	moneyScale = 2
)

// Formatter renders a monetary amount for display.
type Formatter interface {
	Format(amount float64) string
}

// MoneyFormatter renders amounts as localized currency strings with exactly
// two fraction digits. Grouping and decimal separators follow the locale, but
// the narrow currency symbol is always a prefix with no space ("$1.234,50"
// for de-DE), since x/text exposes no per-locale currency patterns. When the
// locale or currency cannot be resolved it degrades to a plain "$" prefixed
// value.
type MoneyFormatter struct {
	printer *message.Printer
	symbol  string
}

// NewMoneyFormatter creates a formatter for a BCP 47 locale and an ISO 4217
// currency code. An empty locale selects American English and an empty code
// selects DefaultCurrency.
func NewMoneyFormatter(locale, currencyCode string) *MoneyFormatter {
	if locale == "" {
		locale = language.AmericanEnglish.String()
	}
	if currencyCode == "" {
		currencyCode = DefaultCurrency
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return &MoneyFormatter{}
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return &MoneyFormatter{}
	}

	p := message.NewPrinter(tag)
	return &MoneyFormatter{
		printer: p,
		symbol:  p.Sprint(currency.NarrowSymbol(unit)),
	}
}

// Localized reports whether locale-aware formatting is in use.
func (f *MoneyFormatter) Localized() bool {
	return f.printer != nil && f.symbol != ""
}

// Format renders the amount as symbol followed by the localized number.
// NaN renders as zero.
func (f *MoneyFormatter) Format(amount float64) string {
	if math.IsNaN(amount) {
		amount = 0
	}
	if !f.Localized() {
		return FallbackFormat(amount)
	}
	return f.symbol + f.printer.Sprint(number.Decimal(amount, number.Scale(moneyScale)))
}

// FallbackFormat renders an amount without locale data.
func FallbackFormat(amount float64) string {
	if math.IsNaN(amount) {
		amount = 0
	}
	return fmt.Sprintf("$%.2f", amount)
}
