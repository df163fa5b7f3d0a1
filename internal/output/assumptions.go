package output

import (
	"fmt"

	"github.com/rpgo/allocation-simulator/internal/calculation"
	"github.com/rpgo/allocation-simulator/internal/domain"
)

// DefaultAssumptions lists the modeling assumptions that hold for any configuration.
var DefaultAssumptions = []string{
	"Returns compound monthly; contributions are made at the end of each month",
	fmt.Sprintf("Projections cover 1 to %d years; the wealth gap is measured at year %d", calculation.TerminalHorizon, calculation.TerminalHorizon),
	fmt.Sprintf("Long-term best case is capped at %s%% per year", calculation.LongTermBestCap),
	"Rates are static: no rebalancing, taxes or fees",
}

// GenerateAssumptions creates the assumptions list from the configured tables
func GenerateAssumptions(config *domain.Configuration) []string {
	r := config.Rates
	out := []string{
		fmt.Sprintf("Average annual returns: cash %s, index funds %s, real estate %s, active %s",
			FormatPercentage(r.Cash), FormatPercentage(r.IndexFund), FormatPercentage(r.RealEstate), FormatPercentage(r.ActiveAverage)),
		fmt.Sprintf("Active share earns nothing below %d%% and %s above %d%% (overtrading)",
			calculation.ActiveMinEfficient, FormatPercentage(r.ActivePenalty), calculation.ActiveOvertradingLimit),
		fmt.Sprintf("Best case assumes the active share earns %s", FormatPercentage(r.ActiveBest)),
	}
	return append(out, DefaultAssumptions...)
}
