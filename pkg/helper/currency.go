package helper

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultLocale   = "en-US"
	DefaultCurrency = "USD"
)

// CurrencyFormatter renders monetary amounts for one locale and currency.
type CurrencyFormatter struct {
	locale  language.Tag
	unit    currency.Unit
	printer *message.Printer
	symbol  string
	scale   int
}

// NewCurrencyFormatter parses a BCP 47 locale and an ISO 4217 currency code.
func NewCurrencyFormatter(locale, code string) (*CurrencyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", code, err)
	}

	p := message.NewPrinter(tag)
	scale, _ := currency.Standard.Rounding(unit)

	return &CurrencyFormatter{
		locale:  tag,
		unit:    unit,
		printer: p,
		symbol:  p.Sprint(currency.Symbol(unit)),
		scale:   scale,
	}, nil
}

// Format renders amount as symbol followed by the locale-grouped number,
// rounded to the currency's standard precision (e.g. "$1,234.50").
func (f *CurrencyFormatter) Format(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", fmt.Errorf("cannot format %v as currency", amount)
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := f.printer.Sprint(number.Decimal(amount, number.Scale(f.scale)))
	return sign + f.symbol + digits, nil
}

// Locale returns the formatter's language tag as a string.
func (f *CurrencyFormatter) Locale() string { return f.locale.String() }

// Currency returns the ISO code.
func (f *CurrencyFormatter) Currency() string { return f.unit.String() }
