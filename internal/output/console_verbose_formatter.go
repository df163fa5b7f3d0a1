package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rpgo/allocation-simulator/internal/domain"
	pkgdecimal "github.com/rpgo/allocation-simulator/pkg/decimal"
)

// FeedbackStyle is the glamour style used for feedback bodies. "notty"
// renders plain text without ANSI sequences.
var FeedbackStyle = "notty"

// ConsoleVerboseFormatter renders the full simulation dashboard.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

var assetLabels = map[domain.Asset]string{
	domain.AssetCash:       "Cash",
	domain.AssetIndexFund:  "Index funds",
	domain.AssetRealEstate: "Real estate",
	domain.AssetActive:     "Active trading",
}

func (c ConsoleVerboseFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	cur := report.Currency

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "ASSET ALLOCATION SIMULATION")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	if len(report.Scenarios) > 0 {
		in := report.Scenarios[0].Result.Input
		fmt.Fprintln(&buf, "INPUTS")
		fmt.Fprintln(&buf, "======")
		fmt.Fprintf(&buf, "Initial capital:        %s\n", FormatCurrency(in.Principal, cur))
		fmt.Fprintf(&buf, "Monthly contribution:   %s (%s per year)\n",
			FormatCurrency(in.Contribution, cur), pkgdecimal.NewMoneyFromDecimal(in.Contribution, cur).Annual().Format())
		fmt.Fprintf(&buf, "Inflation benchmark:    %s\n", FormatPercentage(in.InflationRate))
		fmt.Fprintln(&buf)
	}

	for i, sc := range report.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, sc.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		if err := writeScenario(&buf, sc, cur); err != nil {
			return nil, err
		}
		fmt.Fprintln(&buf)
	}

	if len(report.Scenarios) > 1 {
		rec := AnalyzeScenarios(report)
		fmt.Fprintln(&buf, "SUMMARY & RECOMMENDATIONS")
		fmt.Fprintln(&buf, "=========================")
		fmt.Fprintf(&buf, "Best target: %s\n", rec.ScenarioName)
		fmt.Fprintf(&buf, "Year %d wealth: %s (%s vs current, %s)\n", TerminalYear(report),
			FormatCurrency(rec.TerminalValue, cur), FormatSignedCurrency(rec.GainOverCurrent, cur), FormatSignedPercentage(rec.PercentageChange))
		if rec.Warning {
			fmt.Fprintln(&buf, "Every target carries a structural warning; see the feedback above.")
		}
	}

	return buf.Bytes(), nil
}

func writeScenario(buf *bytes.Buffer, sc ScenarioReport, cur string) error {
	r := sc.Result

	fmt.Fprintln(buf, "ALLOCATION:")
	fmt.Fprintf(buf, "  %-18s %8s %8s\n", "", "CURRENT", "TARGET")
	for _, asset := range domain.Assets() {
		fmt.Fprintf(buf, "  %-18s %7d%% %7d%%\n", assetLabels[asset], r.Input.Current.Get(asset), r.Input.Target.Get(asset))
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "METRICS:")
	fmt.Fprintf(buf, "  %-18s %8s %8s\n", "", "CURRENT", "TARGET")
	fmt.Fprintf(buf, "  %-18s %8s %8s\n", "Expected return",
		FormatSignedPercentage(r.CurrentMetrics.ExpectedReturn), FormatSignedPercentage(r.TargetMetrics.ExpectedReturn))
	fmt.Fprintf(buf, "  %-18s %8s %8s\n", "Worst case",
		FormatPercentage(r.CurrentMetrics.WorstCaseDrawdown), FormatPercentage(r.TargetMetrics.WorstCaseDrawdown))
	fmt.Fprintf(buf, "  %-18s %8s %8s\n", "Best case",
		FormatSignedPercentage(r.CurrentMetrics.BestCaseReturn), FormatSignedPercentage(r.TargetMetrics.BestCaseReturn))
	fmt.Fprintf(buf, "  %-18s %8s %8s\n", "Confidence",
		FormatPercentage(r.CurrentMetrics.ConfidenceScore), FormatPercentage(r.TargetMetrics.ConfidenceScore))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "WEALTH PROJECTION:")
	fmt.Fprintln(buf, "------------------")
	fmt.Fprintf(buf, "  %4s %20s %20s %20s %20s\n", "YEAR", "INFLATION", "CURRENT", "TARGET", "GAP")
	for i, p := range r.Target.Points {
		fmt.Fprintf(buf, "  %4d %20s %20s %20s %20s\n", p.Years,
			FormatCurrency(valueAt(r.Inflation, i), cur),
			FormatCurrency(valueAt(r.Current, i), cur),
			FormatCurrency(p.Value, cur),
			FormatSignedCurrency(r.GapAt(p.Years), cur))
	}
	fmt.Fprintln(buf)

	g := r.WealthGap
	fmt.Fprintf(buf, "WEALTH GAP AT YEAR %d: %s to %s\n", g.Horizon, FormatCompact(g.Min), FormatCompact(g.Max))
	fmt.Fprintf(buf, "  (%s to %s; worst case %s, capped best case %s)\n",
		FormatSignedCurrency(g.Min, cur), FormatSignedCurrency(g.Max, cur), FormatPercentage(g.WorstRate), FormatSignedPercentage(g.BestRate))
	if r.CurrentActiveWarning {
		fmt.Fprintf(buf, "WARNING: current active share %d%% is above the %d%% overtrading limit\n", r.Input.Current.Active, activeLimit)
	}
	if r.TargetActiveWarning {
		fmt.Fprintf(buf, "WARNING: target active share %d%% is above the %d%% overtrading limit\n", r.Input.Target.Active, activeLimit)
	}
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "FEEDBACK [%s]: %s\n", r.Category, sc.Text.Title)
	fmt.Fprintln(buf, strings.Repeat("-", 50))
	if strings.TrimSpace(sc.Text.Body) != "" {
		body, err := glamour.Render(sc.Text.Body, FeedbackStyle)
		if err != nil {
			return fmt.Errorf("render feedback: %w", err)
		}
		fmt.Fprint(buf, body)
	}
	return nil
}
