package calculation

import (
	"github.com/rpgo/allocation-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// testConfiguration mirrors the example configuration's tables so tests in
// this package do not depend on the config package.
func testConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Rates: domain.RateTable{
			Cash:          d(1.5),
			IndexFund:     d(8.0),
			RealEstate:    d(5.5),
			ActiveAverage: d(15.0),
			ActiveBest:    d(120.0),
			ActivePenalty: d(-50.0),
		},
		Risk: domain.RiskTable{
			Cash:       d(0),
			IndexFund:  d(-45),
			RealEstate: d(-25),
			Active:     d(-100),
		},
		Probability: domain.ProbabilityTable{
			Cash:       d(99),
			IndexFund:  d(95),
			RealEstate: d(90),
			Active:     d(10),
		},
		Defaults: domain.Defaults{
			Principal:     decimal.NewFromInt(1000000),
			Contribution:  decimal.NewFromInt(20000),
			InflationRate: d(2.5),
			Currency:      "TWD",
			Current:       domain.DefaultAllocation(),
			Target:        domain.DefaultAllocation(),
		},
	}
}

func testModel() *ReturnRiskModel {
	cfg := testConfiguration()
	return NewReturnRiskModel(cfg.Rates, cfg.Risk, cfg.Probability)
}

func alloc(cash, etf, re, active int) domain.Allocation {
	return domain.Allocation{Cash: cash, IndexFund: etf, RealEstate: re, Active: active}
}
