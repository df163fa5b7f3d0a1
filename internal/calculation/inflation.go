package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// InflationSpanYears is the period between the two observed prices
const InflationSpanYears = 10

// ErrInvalidPrice is returned when an observed price is not positive
var ErrInvalidPrice = errors.New("price must be positive")

// EstimateInflation derives an annual inflation rate, in percent, from the
// price of the same item InflationSpanYears ago and today (compound annual
// growth rate).
func EstimateInflation(priceOld, priceNow decimal.Decimal) (decimal.Decimal, error) {
	if !priceOld.IsPositive() {
		return decimal.Zero, fmt.Errorf("old price %s: %w", priceOld, ErrInvalidPrice)
	}
	if !priceNow.IsPositive() {
		return decimal.Zero, fmt.Errorf("current price %s: %w", priceNow, ErrInvalidPrice)
	}
	ratio := priceNow.Div(priceOld).InexactFloat64()
	cagr := (math.Pow(ratio, 1.0/InflationSpanYears) - 1) * 100
	return decimal.NewFromFloat(cagr), nil
}
