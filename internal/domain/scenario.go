package domain

import (
	"fmt"
	"strings"
)

// ScenarioCategory is the feedback category an allocation is classified into
type ScenarioCategory string

const (
	CategoryDangerActive    ScenarioCategory = "DANGER_ACTIVE"
	CategoryLiquidityCrisis ScenarioCategory = "LIQUIDITY_CRISIS"
	CategoryNoRealEstate    ScenarioCategory = "NO_REAL_ESTATE"
	CategoryCashDominant    ScenarioCategory = "CASH_DOMINANT"
	CategoryREDominant      ScenarioCategory = "RE_DOMINANT"
	CategoryETFDominant     ScenarioCategory = "ETF_DOMINANT"
	CategoryBalanced        ScenarioCategory = "BALANCED"
	CategoryDefault         ScenarioCategory = "DEFAULT"
)

// Categories lists every category in classifier priority order (DEFAULT last)
func Categories() []ScenarioCategory {
	return []ScenarioCategory{
		CategoryDangerActive,
		CategoryLiquidityCrisis,
		CategoryNoRealEstate,
		CategoryBalanced,
		CategoryCashDominant,
		CategoryREDominant,
		CategoryETFDominant,
		CategoryDefault,
	}
}

// ParseCategory resolves a category name, case-insensitively
func ParseCategory(name string) (ScenarioCategory, error) {
	n := ScenarioCategory(strings.ToUpper(strings.TrimSpace(name)))
	for _, c := range Categories() {
		if c == n {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown scenario category %q", name)
}

// IsWarning reports whether the category flags a structural weakness
func (c ScenarioCategory) IsWarning() bool {
	switch c {
	case CategoryDangerActive, CategoryLiquidityCrisis, CategoryNoRealEstate:
		return true
	}
	return false
}

// ScenarioText is the display text attached to a category. Body is markdown.
type ScenarioText struct {
	Title string `yaml:"title" json:"title"`
	Body  string `yaml:"body" json:"body"`
}
