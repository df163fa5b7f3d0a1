package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/allocation-simulator/internal/calculation"
	"github.com/rpgo/allocation-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

const activeLimit = calculation.ActiveOvertradingLimit

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	cur := report.Currency
	fmt.Fprintln(&buf, "ALLOCATION SIMULATION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if len(report.Scenarios) > 0 {
		in := report.Scenarios[0].Result.Input
		fmt.Fprintf(&buf, "Capital %s, monthly %s, inflation %s\n",
			FormatCurrency(in.Principal, cur), FormatCurrency(in.Contribution, cur), FormatPercentage(in.InflationRate))
		fmt.Fprintf(&buf, "Current: %s -> %s/yr\n", in.Current, FormatSignedPercentage(report.Scenarios[0].Result.CurrentMetrics.ExpectedReturn))
	}
	fmt.Fprintln(&buf)
	for _, sc := range report.Scenarios {
		r := sc.Result
		m := r.TargetMetrics
		fmt.Fprintf(&buf, "%s: %s\n", sc.Name, r.Input.Target)
		fmt.Fprintf(&buf, "  Return=%s Range=%s..%s Confidence=%s\n",
			FormatSignedPercentage(m.ExpectedReturn), FormatPercentage(m.WorstCaseDrawdown),
			FormatSignedPercentage(m.BestCaseReturn), FormatPercentage(m.ConfidenceScore))
		fmt.Fprintf(&buf, "  Year%d: current=%s target=%s gap=%s..%s\n", r.WealthGap.Horizon,
			FormatCompact(r.Current.Final().Value), FormatCompact(r.Target.Final().Value),
			FormatCompact(r.WealthGap.Min), FormatCompact(r.WealthGap.Max))
		fmt.Fprintf(&buf, "  %s: %s\n", r.Category, sc.Text.Title)
		if r.AnyActiveWarning() {
			fmt.Fprintf(&buf, "  WARNING: active share above %d%%\n", activeLimit)
		}
	}
	if len(report.Scenarios) > 1 {
		rec := AnalyzeScenarios(report)
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (Δ %s / %s)\n", rec.ScenarioName,
			FormatSignedCurrency(rec.GainOverCurrent, cur), FormatSignedPercentage(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}

// TerminalYear is the longest horizon in the report
func TerminalYear(report *Report) int {
	if len(report.Scenarios) == 0 {
		return calculation.TerminalHorizon
	}
	return report.Scenarios[0].Result.Target.Final().Years
}

func valueAt(s domain.ProjectionSeries, i int) decimal.Decimal {
	if i < 0 || i >= len(s.Points) {
		return decimal.Zero
	}
	return s.Points[i].Value
}
