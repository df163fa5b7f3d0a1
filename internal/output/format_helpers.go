package output

import (
	money "github.com/Rhymond/go-money"
	pkgdecimal "github.com/rpgo/allocation-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	wanUnit = decimal.NewFromInt(10000) // 萬
	yiInWan = decimal.NewFromInt(10000) // 億 = 10000 萬

	groupFormatter = money.NewFormatter(0, ".", ",", "", "1")
)

// FormatCurrency formats an amount in a currency with its symbol and grouping.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal, currency string) string {
	return pkgdecimal.NewMoneyFromDecimal(amount, currency).Format()
}

// FormatSignedCurrency is FormatCurrency with "+" on positive amounts
func FormatSignedCurrency(amount decimal.Decimal, currency string) string {
	return pkgdecimal.NewMoneyFromDecimal(amount, currency).SignedFormat()
}

// FormatPercentage formats a percentage with one decimal.
func FormatPercentage(pct decimal.Decimal) string { return pct.StringFixed(1) + "%" }

// FormatSignedPercentage is FormatPercentage with "+" on positive values
func FormatSignedPercentage(pct decimal.Decimal) string {
	if pct.Round(1).IsPositive() {
		return "+" + FormatPercentage(pct)
	}
	return FormatPercentage(pct)
}

// FormatCompact renders an amount in 萬 (10^4) units, switching to 億 (10^8)
// with one decimal from 10000 萬 up. Positive amounts carry a "+".
func FormatCompact(amount decimal.Decimal) string {
	wan := amount.Div(wanUnit).Round(0)
	var s string
	if wan.Abs().GreaterThanOrEqual(yiInWan) {
		s = wan.Div(yiInWan).StringFixed(1) + "億"
	} else {
		s = groupFormatter.Format(wan.IntPart()) + "萬"
	}
	if amount.IsPositive() {
		s = "+" + s
	}
	return s
}
