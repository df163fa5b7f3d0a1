package decimal

import (
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// Money represents a monetary amount in a currency. The amount keeps full
// decimal precision; rounding happens only when formatting.
type Money struct {
	decimal.Decimal
	Currency string // ISO 4217 code, may be empty
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal, currency string) Money {
	return Money{d, normalizeCode(currency)}
}

// KnownCurrency reports whether code is an ISO 4217 currency
func KnownCurrency(code string) bool {
	return gomoney.GetCurrency(normalizeCode(code)) != nil
}

// Fraction returns the number of minor-unit digits of the currency (2 when unknown)
func (m Money) Fraction() int {
	if cur := gomoney.GetCurrency(m.Currency); cur != nil {
		return cur.Fraction
	}
	return 2
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(monthsPerYear), m.Currency}
}

// String returns the amount rounded to the minor unit, without symbol
func (m Money) String() string {
	return m.Decimal.StringFixed(int32(m.Fraction()))
}

// Format renders the amount with the currency's symbol, grouping and
// decimal separator. Unknown currencies fall back to "<amount> <code>".
func (m Money) Format() string {
	cur := gomoney.GetCurrency(m.Currency)
	if cur == nil {
		if m.Currency == "" {
			return m.String()
		}
		return m.String() + " " + m.Currency
	}
	minor := m.Decimal.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// SignedFormat is Format with an explicit "+" on positive amounts
func (m Money) SignedFormat() string {
	if m.Decimal.Round(int32(m.Fraction())).IsPositive() {
		return "+" + m.Format()
	}
	return m.Format()
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
