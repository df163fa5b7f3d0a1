package calculation

import (
	"github.com/rpgo/allocation-simulator/internal/domain"
)

// Classification thresholds, in percent
const (
	MinLiquidCash      = 15 // cash below this is a liquidity crisis
	MinRealEstate      = 5  // real estate below this counts as none
	MinBalancedCore    = 40 // index funds plus real estate needed for a balanced mix
	CashDominantAbove  = 50
	REDominantAbove    = 40
	IndexDominantAbove = 50
)

type classificationRule struct {
	category domain.ScenarioCategory
	matches  func(a domain.Allocation) bool
}

// classificationRules are evaluated in order; the first match wins.
// The rules overlap, so the order is the priority.
var classificationRules = []classificationRule{
	{domain.CategoryDangerActive, func(a domain.Allocation) bool {
		return a.Active > ActiveOvertradingLimit
	}},
	{domain.CategoryLiquidityCrisis, func(a domain.Allocation) bool {
		return a.Cash < MinLiquidCash
	}},
	{domain.CategoryNoRealEstate, func(a domain.Allocation) bool {
		return a.RealEstate < MinRealEstate
	}},
	{domain.CategoryBalanced, func(a domain.Allocation) bool {
		return a.Active >= ActiveMinEfficient && a.Active <= ActiveOvertradingLimit &&
			a.Core() >= MinBalancedCore && a.Cash >= MinLiquidCash
	}},
	{domain.CategoryCashDominant, func(a domain.Allocation) bool {
		return a.Cash > CashDominantAbove
	}},
	{domain.CategoryREDominant, func(a domain.Allocation) bool {
		return a.RealEstate > REDominantAbove
	}},
	{domain.CategoryETFDominant, func(a domain.Allocation) bool {
		return a.IndexFund > IndexDominantAbove
	}},
}

// Classify maps an allocation to its feedback category
func Classify(a domain.Allocation) domain.ScenarioCategory {
	for _, rule := range classificationRules {
		if rule.matches(a) {
			return rule.category
		}
	}
	return domain.CategoryDefault
}

// IsOvertrading reports whether the active share exceeds the overtrading limit
func IsOvertrading(a domain.Allocation) bool {
	return a.Active > ActiveOvertradingLimit
}
