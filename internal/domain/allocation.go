package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TotalPercent is the sum every allocation must reach
const TotalPercent = 100

// ErrInvalidAllocation is returned when an allocation breaks the sum-to-100 invariant
var ErrInvalidAllocation = errors.New("invalid allocation")

// Asset identifies one of the four asset classes of an allocation
type Asset string

const (
	AssetCash       Asset = "cash"
	AssetIndexFund  Asset = "index_fund"
	AssetRealEstate Asset = "real_estate"
	AssetActive     Asset = "active"
)

var assetOrder = []Asset{AssetCash, AssetIndexFund, AssetRealEstate, AssetActive}

// Assets returns the asset classes in their fixed iteration order.
// Redistribution tie-breaks follow this order.
func Assets() []Asset {
	return append([]Asset(nil), assetOrder...)
}

// Known reports whether a is one of the four asset classes
func (a Asset) Known() bool {
	for _, k := range assetOrder {
		if a == k {
			return true
		}
	}
	return false
}

var assetAliases = map[string]Asset{
	"cash":        AssetCash,
	"index_fund":  AssetIndexFund,
	"index-fund":  AssetIndexFund,
	"etf":         AssetIndexFund,
	"real_estate": AssetRealEstate,
	"real-estate": AssetRealEstate,
	"re":          AssetRealEstate,
	"active":      AssetActive,
}

// ParseAsset resolves an asset name or one of its short aliases
func ParseAsset(name string) (Asset, error) {
	if a, ok := assetAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}
	return "", fmt.Errorf("unknown asset %q (expected cash, index_fund, real_estate or active)", name)
}

// Slot identifies which side of a comparison an allocation occupies
type Slot string

const (
	SlotCurrent Slot = "current"
	SlotTarget  Slot = "target"
)

// ParseSlot resolves a slot name. "a" and "b" are accepted for current and target.
func ParseSlot(name string) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "current", "a":
		return SlotCurrent, nil
	case "target", "b":
		return SlotTarget, nil
	}
	return "", fmt.Errorf("unknown slot %q (expected current or target)", name)
}

// Allocation is a four-way percentage split that sums to 100
type Allocation struct {
	Cash       int `yaml:"cash" json:"cash"`
	IndexFund  int `yaml:"index_fund" json:"index_fund"`
	RealEstate int `yaml:"real_estate" json:"real_estate"`
	Active     int `yaml:"active" json:"active"`
}

// DefaultAllocation returns the starting allocation of a slot: everything in cash
func DefaultAllocation() Allocation {
	return Allocation{Cash: TotalPercent}
}

// Get returns the share held in the given asset
func (a Allocation) Get(asset Asset) int {
	switch asset {
	case AssetCash:
		return a.Cash
	case AssetIndexFund:
		return a.IndexFund
	case AssetRealEstate:
		return a.RealEstate
	case AssetActive:
		return a.Active
	}
	return 0
}

// Set returns a copy of the allocation with the given asset share replaced
func (a Allocation) Set(asset Asset, value int) Allocation {
	switch asset {
	case AssetCash:
		a.Cash = value
	case AssetIndexFund:
		a.IndexFund = value
	case AssetRealEstate:
		a.RealEstate = value
	case AssetActive:
		a.Active = value
	}
	return a
}

// Sum returns the total of the four shares
func (a Allocation) Sum() int {
	return a.Cash + a.IndexFund + a.RealEstate + a.Active
}

// Core returns the long-term core holdings (index funds plus real estate)
func (a Allocation) Core() int {
	return a.IndexFund + a.RealEstate
}

// Validate checks every share is within [0,100] and the total is exactly 100
func (a Allocation) Validate() error {
	for _, asset := range assetOrder {
		v := a.Get(asset)
		if v < 0 || v > TotalPercent {
			return fmt.Errorf("%w: %s share %d outside [0,100]", ErrInvalidAllocation, asset, v)
		}
	}
	if sum := a.Sum(); sum != TotalPercent {
		return fmt.Errorf("%w: shares sum to %d, want %d", ErrInvalidAllocation, sum, TotalPercent)
	}
	return nil
}

func (a Allocation) String() string {
	return fmt.Sprintf("cash=%d%% index_fund=%d%% real_estate=%d%% active=%d%%",
		a.Cash, a.IndexFund, a.RealEstate, a.Active)
}

// ParseAllocation parses "cash,index_fund,real_estate,active", e.g. "20,40,20,20".
// Range and sum checks are left to Validate.
func ParseAllocation(s string) (Allocation, error) {
	parts := strings.Split(s, ",")
	if len(parts) != len(assetOrder) {
		return Allocation{}, fmt.Errorf("allocation %q must have %d comma-separated values", s, len(assetOrder))
	}
	var a Allocation
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Allocation{}, fmt.Errorf("allocation %q: %s is not an integer: %w", s, assetOrder[i], err)
		}
		a = a.Set(assetOrder[i], v)
	}
	return a, nil
}
