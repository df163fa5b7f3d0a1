package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAllocation(t *testing.T) {
	a := DefaultAllocation()
	assert.Equal(t, Allocation{Cash: 100}, a)
	assert.NoError(t, a.Validate())
}

func TestAllocation_GetSet(t *testing.T) {
	a := Allocation{Cash: 10, IndexFund: 20, RealEstate: 30, Active: 40}

	assert.Equal(t, 10, a.Get(AssetCash))
	assert.Equal(t, 20, a.Get(AssetIndexFund))
	assert.Equal(t, 30, a.Get(AssetRealEstate))
	assert.Equal(t, 40, a.Get(AssetActive))
	assert.Equal(t, 0, a.Get(Asset("bonds")))

	b := a.Set(AssetActive, 5)
	assert.Equal(t, 5, b.Active)
	assert.Equal(t, 40, a.Active, "Set must not modify the receiver")
	assert.Equal(t, 50, a.Core())
}

func TestAllocation_Validate(t *testing.T) {
	testCases := []struct {
		desc  string
		alloc Allocation
		valid bool
	}{
		{"all cash", Allocation{Cash: 100}, true},
		{"balanced", Allocation{Cash: 20, IndexFund: 40, RealEstate: 20, Active: 20}, true},
		{"sum below 100", Allocation{Cash: 20, IndexFund: 40, RealEstate: 20, Active: 19}, false},
		{"sum above 100", Allocation{Cash: 50, IndexFund: 51}, false},
		{"negative share", Allocation{Cash: 110, IndexFund: -10}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.alloc.Validate()
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidAllocation))
		})
	}
}

func TestParseAllocation(t *testing.T) {
	a, err := ParseAllocation("20, 40,20,20")
	require.NoError(t, err)
	assert.Equal(t, Allocation{Cash: 20, IndexFund: 40, RealEstate: 20, Active: 20}, a)

	_, err = ParseAllocation("20,40,20")
	assert.Error(t, err)

	_, err = ParseAllocation("20,forty,20,20")
	assert.ErrorContains(t, err, "index_fund")
}

func TestParseAssetAndSlot(t *testing.T) {
	aliases := map[string]Asset{
		"cash":        AssetCash,
		"ETF":         AssetIndexFund,
		"index_fund":  AssetIndexFund,
		"re":          AssetRealEstate,
		"real-estate": AssetRealEstate,
		" active ":    AssetActive,
	}
	for in, want := range aliases {
		got, err := ParseAsset(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseAsset("gold")
	assert.Error(t, err)

	s, err := ParseSlot("b")
	require.NoError(t, err)
	assert.Equal(t, SlotTarget, s)
	s, err = ParseSlot("Current")
	require.NoError(t, err)
	assert.Equal(t, SlotCurrent, s)
	_, err = ParseSlot("c")
	assert.Error(t, err)
}

func TestAssetsOrderIsFixed(t *testing.T) {
	assets := Assets()
	assert.Equal(t, []Asset{AssetCash, AssetIndexFund, AssetRealEstate, AssetActive}, assets)

	// callers get a copy
	assets[0] = AssetActive
	assert.Equal(t, AssetCash, Assets()[0])
}

func TestAsset_Known(t *testing.T) {
	for _, a := range Assets() {
		assert.True(t, a.Known(), a)
	}
	assert.False(t, Asset("bogus").Known())
	assert.False(t, Asset("").Known())
	assert.False(t, Asset("etf").Known(), "aliases are resolved by ParseAsset only")
}

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 8)
	assert.Equal(t, CategoryDefault, cats[len(cats)-1])

	c, err := ParseCategory("balanced")
	require.NoError(t, err)
	assert.Equal(t, CategoryBalanced, c)
	_, err = ParseCategory("YOLO")
	assert.Error(t, err)

	assert.True(t, CategoryDangerActive.IsWarning())
	assert.True(t, CategoryLiquidityCrisis.IsWarning())
	assert.True(t, CategoryNoRealEstate.IsWarning())
	assert.False(t, CategoryBalanced.IsWarning())
	assert.False(t, CategoryDefault.IsWarning())
}

func TestProjectionSeries_FinalAndValueAt(t *testing.T) {
	ps := ProjectionSeries{Points: []ProjectionPoint{
		{Years: 1, Value: decimal.NewFromInt(110)},
		{Years: 2, Value: decimal.NewFromInt(121)},
	}}
	assert.Equal(t, 2, ps.Final().Years)

	v, ok := ps.ValueAt(1)
	assert.True(t, ok)
	assert.True(t, v.Equal(decimal.NewFromInt(110)))

	_, ok = ps.ValueAt(3)
	assert.False(t, ok)

	assert.Equal(t, ProjectionPoint{}, ProjectionSeries{}.Final())
}

func TestSimulationResult_GapAt(t *testing.T) {
	r := &SimulationResult{
		Current: ProjectionSeries{Points: []ProjectionPoint{{Years: 1, Value: decimal.NewFromInt(100)}}},
		Target:  ProjectionSeries{Points: []ProjectionPoint{{Years: 1, Value: decimal.NewFromInt(130)}}},
	}
	assert.True(t, r.GapAt(1).Equal(decimal.NewFromInt(30)))
	assert.True(t, r.GapAt(5).IsZero())
	assert.False(t, r.AnyActiveWarning())

	r.TargetActiveWarning = true
	assert.True(t, r.AnyActiveWarning())
}

func TestConfiguration_TextFor(t *testing.T) {
	var nilCfg *Configuration
	_, ok := nilCfg.TextFor(CategoryDefault)
	assert.False(t, ok)

	cfg := &Configuration{ScenarioText: map[ScenarioCategory]ScenarioText{
		CategoryBalanced: {Title: "Golden ratio"},
	}}
	txt, ok := cfg.TextFor(CategoryBalanced)
	assert.True(t, ok)
	assert.Equal(t, "Golden ratio", txt.Title)
}
