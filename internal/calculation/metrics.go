package calculation

import (
	"github.com/rpgo/allocation-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// Active-share thresholds and model constants
const (
	ActiveMinEfficient     = 5  // below this the active share earns nothing
	ActiveOvertradingLimit = 20 // above this the active share earns the penalty rate
)

var (
	// LongTermBestCap caps the best-case rate used for multi-year projections
	LongTermBestCap = decimal.NewFromInt(30)
	// ContributionEpsilon is the total return contribution below which
	// confidence falls back to allocation-share weighting
	ContributionEpsilon = decimal.NewFromFloat(0.001)

	hundred = decimal.NewFromInt(100)
)

// ReturnRiskModel derives return, risk and confidence metrics from an allocation
type ReturnRiskModel struct {
	Rates       domain.RateTable
	Risk        domain.RiskTable
	Probability domain.ProbabilityTable
}

// NewReturnRiskModel creates a model over static rate, risk and probability tables
func NewReturnRiskModel(rates domain.RateTable, risk domain.RiskTable, probability domain.ProbabilityTable) *ReturnRiskModel {
	return &ReturnRiskModel{
		Rates:       rates,
		Risk:        risk,
		Probability: probability,
	}
}

// Compute returns the metrics of an allocation. It has no side effects.
func (m *ReturnRiskModel) Compute(a domain.Allocation) domain.Metrics {
	return domain.Metrics{
		ExpectedReturn:    m.ExpectedReturn(a),
		WorstCaseDrawdown: m.WorstCaseDrawdown(a),
		BestCaseReturn:    m.BestCaseReturn(a),
		ConfidenceScore:   m.ConfidenceScore(a),
	}
}

// EffectiveActiveRate applies the threshold overlay to the active share
func (m *ReturnRiskModel) EffectiveActiveRate(active int) decimal.Decimal {
	switch {
	case active < ActiveMinEfficient:
		return decimal.Zero
	case active > ActiveOvertradingLimit:
		return m.Rates.ActivePenalty
	default:
		return m.Rates.ActiveAverage
	}
}

// ExpectedReturn is the share-weighted annual return with the active overlay applied
func (m *ReturnRiskModel) ExpectedReturn(a domain.Allocation) decimal.Decimal {
	return m.weightedReturn(a, m.EffectiveActiveRate(a.Active))
}

// BestCaseReturn substitutes the active asset's best-case rate; uncapped
func (m *ReturnRiskModel) BestCaseReturn(a domain.Allocation) decimal.Decimal {
	return m.weightedReturn(a, m.Rates.ActiveBest)
}

func (m *ReturnRiskModel) weightedReturn(a domain.Allocation, activeRate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, asset := range domain.Assets() {
		rate := m.Rates.Average(asset)
		if asset == domain.AssetActive {
			rate = activeRate
		}
		total = total.Add(share(a, asset).Mul(rate))
	}
	return total.Div(hundred)
}

// WorstCaseDrawdown is the share-weighted sum of per-asset drawdowns
func (m *ReturnRiskModel) WorstCaseDrawdown(a domain.Allocation) decimal.Decimal {
	total := decimal.Zero
	for _, asset := range domain.Assets() {
		total = total.Add(share(a, asset).Mul(m.Risk.For(asset)))
	}
	return total.Div(hundred)
}

// ConfidenceScore weights each asset's confidence by its share of the total
// return contribution (share x average rate). Degenerate portfolios whose
// contribution does not exceed ContributionEpsilon use allocation shares instead.
func (m *ReturnRiskModel) ConfidenceScore(a domain.Allocation) decimal.Decimal {
	assets := domain.Assets()
	contributions := make([]decimal.Decimal, len(assets))
	total := decimal.Zero
	for i, asset := range assets {
		contributions[i] = share(a, asset).Mul(m.Rates.Average(asset))
		total = total.Add(contributions[i])
	}

	score := decimal.Zero
	if total.GreaterThan(ContributionEpsilon) {
		for i, asset := range assets {
			score = score.Add(contributions[i].Mul(m.Probability.For(asset)))
		}
		return score.Div(total)
	}
	for _, asset := range assets {
		score = score.Add(share(a, asset).Mul(m.Probability.For(asset)))
	}
	return score.Div(hundred)
}

// LongTermBestRate caps a best-case rate for long-horizon compounding
func LongTermBestRate(m domain.Metrics) decimal.Decimal {
	return decimal.Min(m.BestCaseReturn, LongTermBestCap)
}

func share(a domain.Allocation, asset domain.Asset) decimal.Decimal {
	return decimal.NewFromInt(int64(a.Get(asset)))
}
