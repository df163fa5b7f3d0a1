package domain

import (
	"github.com/shopspring/decimal"
)

// Metrics summarizes the return and risk profile of one allocation.
// All values are annual percentages.
type Metrics struct {
	ExpectedReturn    decimal.Decimal `json:"expected_return"`
	WorstCaseDrawdown decimal.Decimal `json:"worst_case_drawdown"`
	BestCaseReturn    decimal.Decimal `json:"best_case_return"`
	ConfidenceScore   decimal.Decimal `json:"confidence_score"`
}

// ProjectionPoint is the projected wealth at a given horizon
type ProjectionPoint struct {
	Years int             `json:"years"`
	Value decimal.Decimal `json:"value"`
}

// ProjectionSeries is an ordered wealth trajectory at a fixed annual rate
type ProjectionSeries struct {
	Label  string            `json:"label"`
	Rate   decimal.Decimal   `json:"rate"`
	Points []ProjectionPoint `json:"points"`
}

// Final returns the point at the longest horizon
func (ps ProjectionSeries) Final() ProjectionPoint {
	if len(ps.Points) == 0 {
		return ProjectionPoint{}
	}
	return ps.Points[len(ps.Points)-1]
}

// ValueAt returns the projected value at the given horizon
func (ps ProjectionSeries) ValueAt(years int) (decimal.Decimal, bool) {
	for _, p := range ps.Points {
		if p.Years == years {
			return p.Value, true
		}
	}
	return decimal.Zero, false
}

// WealthGap is the range of terminal outcomes of the target allocation
// relative to the current allocation's terminal projection.
type WealthGap struct {
	Horizon   int             `json:"horizon"`
	Min       decimal.Decimal `json:"min"`
	Max       decimal.Decimal `json:"max"`
	WorstRate decimal.Decimal `json:"worst_rate"`
	BestRate  decimal.Decimal `json:"best_rate"`
}

// SimulationInput is everything the engine needs for one recomputation pass
type SimulationInput struct {
	Current       Allocation      `json:"current"`
	Target        Allocation      `json:"target"`
	Principal     decimal.Decimal `json:"principal"`
	Contribution  decimal.Decimal `json:"contribution"`
	InflationRate decimal.Decimal `json:"inflation_rate"`
}

// SimulationResult is the full output of one recomputation pass
type SimulationResult struct {
	Input          SimulationInput  `json:"input"`
	CurrentMetrics Metrics          `json:"current_metrics"`
	TargetMetrics  Metrics          `json:"target_metrics"`
	Inflation      ProjectionSeries `json:"inflation"`
	Current        ProjectionSeries `json:"current"`
	Target         ProjectionSeries `json:"target"`
	WealthGap      WealthGap        `json:"wealth_gap"`
	Category       ScenarioCategory `json:"category"`

	CurrentActiveWarning bool `json:"current_active_warning"`
	TargetActiveWarning  bool `json:"target_active_warning"`
}

// AnyActiveWarning reports whether either allocation overtrades
func (r *SimulationResult) AnyActiveWarning() bool {
	return r.CurrentActiveWarning || r.TargetActiveWarning
}

// GapAt returns target minus current at the given horizon
func (r *SimulationResult) GapAt(years int) decimal.Decimal {
	t, okT := r.Target.ValueAt(years)
	c, okC := r.Current.ValueAt(years)
	if !okT || !okC {
		return decimal.Zero
	}
	return t.Sub(c)
}
