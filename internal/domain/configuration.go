package domain

import (
	"github.com/shopspring/decimal"
)

// RateTable holds the average annual return of each asset class, in percent.
// The active asset also carries its best-case and overtrading penalty rates.
type RateTable struct {
	Cash          decimal.Decimal `yaml:"cash" json:"cash"`
	IndexFund     decimal.Decimal `yaml:"index_fund" json:"index_fund"`
	RealEstate    decimal.Decimal `yaml:"real_estate" json:"real_estate"`
	ActiveAverage decimal.Decimal `yaml:"active_average" json:"active_average"`
	ActiveBest    decimal.Decimal `yaml:"active_best" json:"active_best"`
	ActivePenalty decimal.Decimal `yaml:"active_penalty" json:"active_penalty"`
}

// Average returns the static average annual rate of the asset
func (rt RateTable) Average(asset Asset) decimal.Decimal {
	switch asset {
	case AssetCash:
		return rt.Cash
	case AssetIndexFund:
		return rt.IndexFund
	case AssetRealEstate:
		return rt.RealEstate
	case AssetActive:
		return rt.ActiveAverage
	}
	return decimal.Zero
}

// AssetValues is a per-asset table of percentages.
// It backs both the risk (drawdown) table and the probability (confidence) table.
type AssetValues struct {
	Cash       decimal.Decimal `yaml:"cash" json:"cash"`
	IndexFund  decimal.Decimal `yaml:"index_fund" json:"index_fund"`
	RealEstate decimal.Decimal `yaml:"real_estate" json:"real_estate"`
	Active     decimal.Decimal `yaml:"active" json:"active"`
}

// For returns the value recorded for the asset
func (av AssetValues) For(asset Asset) decimal.Decimal {
	switch asset {
	case AssetCash:
		return av.Cash
	case AssetIndexFund:
		return av.IndexFund
	case AssetRealEstate:
		return av.RealEstate
	case AssetActive:
		return av.Active
	}
	return decimal.Zero
}

// RiskTable maps each asset to its worst-case drawdown percentage (<= 0)
type RiskTable = AssetValues

// ProbabilityTable maps each asset to its confidence score percentage in [0,100]
type ProbabilityTable = AssetValues

// Defaults are the user inputs a comparison session starts from
type Defaults struct {
	Principal     decimal.Decimal `yaml:"principal" json:"principal"`
	Contribution  decimal.Decimal `yaml:"contribution" json:"contribution"` // per month
	InflationRate decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	Currency      string          `yaml:"currency" json:"currency"`
	Current       Allocation      `yaml:"current" json:"current"`
	Target        Allocation      `yaml:"target" json:"target"`
}

// Configuration is the root of the simulator's YAML configuration
type Configuration struct {
	Rates        RateTable                         `yaml:"rates" json:"rates"`
	Risk         RiskTable                         `yaml:"risk" json:"risk"`
	Probability  ProbabilityTable                  `yaml:"probability" json:"probability"`
	Defaults     Defaults                          `yaml:"defaults" json:"defaults"`
	ScenarioText map[ScenarioCategory]ScenarioText `yaml:"scenario_text,omitempty" json:"scenario_text,omitempty"`
}

// TextFor returns the configured feedback text of a category
func (c *Configuration) TextFor(category ScenarioCategory) (ScenarioText, bool) {
	if c == nil || c.ScenarioText == nil {
		return ScenarioText{}, false
	}
	t, ok := c.ScenarioText[category]
	return t, ok
}
