package output

import (
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best target.
type Recommendation struct {
	ScenarioName     string          `json:"scenario"`
	TerminalValue    decimal.Decimal `json:"terminal_value"`
	GainOverCurrent  decimal.Decimal `json:"gain_over_current"`
	PercentageChange decimal.Decimal `json:"percentage_change"`
	Warning          bool            `json:"warning"` // the chosen target's category flags a weakness
}

// AnalyzeScenarios picks the target with the highest terminal projection.
// Targets whose category is a warning are only chosen when every target is one.
// Ties keep the earlier target.
func AnalyzeScenarios(report *Report) Recommendation {
	best := -1
	for i, sc := range report.Scenarios {
		if best < 0 || better(sc, report.Scenarios[best]) {
			best = i
		}
	}
	if best < 0 {
		return Recommendation{}
	}

	sc := report.Scenarios[best]
	terminal := sc.Result.Target.Final().Value
	current := sc.Result.Current.Final().Value
	delta := terminal.Sub(current)
	pct := decimal.Zero
	if !current.IsZero() {
		pct = delta.Div(current).Mul(decimal.NewFromInt(100))
	}
	return Recommendation{
		ScenarioName:     sc.Name,
		TerminalValue:    terminal,
		GainOverCurrent:  delta,
		PercentageChange: pct,
		Warning:          sc.Result.Category.IsWarning(),
	}
}

func better(a, b ScenarioReport) bool {
	aw, bw := a.Result.Category.IsWarning(), b.Result.Category.IsWarning()
	if aw != bw {
		return !aw
	}
	return a.Result.Target.Final().Value.GreaterThan(b.Result.Target.Final().Value)
}
