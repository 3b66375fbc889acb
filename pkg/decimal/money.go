package decimal

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol is prefixed to every formatted amount.
const CurrencySymbol = "£"

// printer groups digits the way UK figures are written.
var printer = message.NewPrinter(language.BritishEnglish)

// Money represents an amount in pounds sterling
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the amount to pence
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// TaxIncluded returns the tax portion of a price that already includes tax at
// rate: price × rate / (1 + rate).
func (m Money) TaxIncluded(rate decimal.Decimal) Money {
	return Money{m.Decimal.Mul(rate).Div(decimal.NewFromInt(1).Add(rate))}
}

// String returns the amount to two decimal places without a symbol
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the amount in pounds and pence with thousands separators,
// e.g. "£12,345.60" or "-£80.00".
func (m Money) Format() string {
	return format(m.Decimal, 2)
}

// FormatWhole formats the amount rounded to whole pounds, e.g. "£12,346".
func (m Money) FormatWhole() string {
	return format(m.Decimal, 0)
}

// format rounds half away from zero before handing the digits to the
// printer, so the printed figure agrees with Round.
func format(d decimal.Decimal, places int32) string {
	d = d.Round(places)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + CurrencySymbol + printer.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(int(places))))
}
