package calculation

import (
	"github.com/rpgo/allocation-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// MonthsPerYear is the compounding frequency of every projection
	MonthsPerYear = 12
	// TerminalHorizon is the longest projection horizon, in years
	TerminalHorizon = 20

	// valuePrecision is the number of decimals kept on projected values
	valuePrecision = 2
	// factorPrecision is the number of decimals kept on compounding factors
	factorPrecision = 12
)

// Series labels
const (
	SeriesInflation = "inflation"
	SeriesCurrent   = "current"
	SeriesTarget    = "target"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(MonthsPerYear)
)

// Horizons returns the fixed projection horizons 1..20 years
func Horizons() []int {
	h := make([]int, TerminalHorizon)
	for i := range h {
		h[i] = i + 1
	}
	return h
}

// FutureValue projects principal plus a monthly contribution at an annual
// percentage rate over the given number of years, compounding monthly.
// Contributions are made at the end of each month (ordinary annuity).
// A zero rate falls back to linear accumulation.
func FutureValue(principal, contribution, annualRatePct decimal.Decimal, years int) decimal.Decimal {
	months := int64(years * MonthsPerYear)
	if months <= 0 {
		return principal.Round(valuePrecision)
	}
	if annualRatePct.IsZero() {
		return principal.Add(contribution.Mul(decimal.NewFromInt(months))).Round(valuePrecision)
	}

	monthlyRate := annualRatePct.Div(hundred).Div(twelve)
	growth := one.Add(monthlyRate).Pow(decimal.NewFromInt(months)).Round(factorPrecision)

	fvPrincipal := principal.Mul(growth)
	fvContributions := contribution.Mul(growth.Sub(one).Div(monthlyRate))
	return fvPrincipal.Add(fvContributions).Round(valuePrecision)
}

// ProjectSeries evaluates FutureValue at every horizon, in order
func ProjectSeries(label string, principal, contribution, annualRatePct decimal.Decimal, horizons []int) domain.ProjectionSeries {
	points := make([]domain.ProjectionPoint, 0, len(horizons))
	for _, years := range horizons {
		points = append(points, domain.ProjectionPoint{
			Years: years,
			Value: FutureValue(principal, contribution, annualRatePct, years),
		})
	}
	return domain.ProjectionSeries{
		Label:  label,
		Rate:   annualRatePct,
		Points: points,
	}
}

// ComputeWealthGap returns the range of the target allocation's terminal
// wealth relative to the current allocation's terminal projection. The low
// end compounds at the target's worst-case drawdown rate and the high end at
// its capped best-case rate.
func ComputeWealthGap(principal, contribution decimal.Decimal, target domain.Metrics, currentTerminal decimal.Decimal) domain.WealthGap {
	worstRate := target.WorstCaseDrawdown
	bestRate := LongTermBestRate(target)

	worst := FutureValue(principal, contribution, worstRate, TerminalHorizon)
	best := FutureValue(principal, contribution, bestRate, TerminalHorizon)

	return domain.WealthGap{
		Horizon:   TerminalHorizon,
		Min:       worst.Sub(currentTerminal),
		Max:       best.Sub(currentTerminal),
		WorstRate: worstRate,
		BestRate:  bestRate,
	}
}
