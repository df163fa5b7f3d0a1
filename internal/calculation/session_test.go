package calculation

import (
	"testing"

	"github.com/rpgo/allocation-simulator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := testConfiguration()
	s, err := NewSession(NewCalculationEngine(cfg), cfg.Defaults)
	require.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, domain.DefaultAllocation(), s.Allocation(domain.SlotCurrent))
	assert.Equal(t, domain.DefaultAllocation(), s.Allocation(domain.SlotTarget))
	require.NotNil(t, s.Result())
	assert.True(t, s.Result().Input.Principal.Equal(d(1000000)))
}

func TestNewSession_NormalizesDefaults(t *testing.T) {
	cfg := testConfiguration()
	cfg.Defaults.Target = alloc(0, 0, 0, 0)

	s, err := NewSession(NewCalculationEngine(cfg), cfg.Defaults)
	require.NoError(t, err)
	assert.Equal(t, alloc(0, 34, 33, 33), s.Allocation(domain.SlotTarget))
}

func TestNewSession_RejectsNegativeDefaults(t *testing.T) {
	cfg := testConfiguration()
	cfg.Defaults.Principal = d(-5)

	_, err := NewSession(NewCalculationEngine(cfg), cfg.Defaults)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSession_Edit(t *testing.T) {
	s := newTestSession(t)

	result, err := s.Edit(domain.SlotTarget, domain.AssetCash, 0)
	require.NoError(t, err)
	assert.Equal(t, alloc(0, 34, 33, 33), s.Allocation(domain.SlotTarget))
	assert.Equal(t, domain.DefaultAllocation(), s.Allocation(domain.SlotCurrent), "other slot untouched")
	assert.Equal(t, domain.CategoryDangerActive, result.Category)
	assert.True(t, result.TargetActiveWarning)
	assert.Same(t, result, s.Result())

	result, err = s.Edit(domain.SlotCurrent, domain.AssetIndexFund, 60)
	require.NoError(t, err)
	assert.Equal(t, alloc(40, 60, 0, 0), s.Allocation(domain.SlotCurrent))
	assert.True(t, result.CurrentMetrics.ExpectedReturn.Equal(d(5.4)),
		"Expected 5.4, got %s", result.CurrentMetrics.ExpectedReturn)
}

func TestSession_EditSameValueIsStable(t *testing.T) {
	s := newTestSession(t)
	_, err := s.Edit(domain.SlotTarget, domain.AssetIndexFund, 40)
	require.NoError(t, err)
	before := s.Allocation(domain.SlotTarget)
	prev := s.Result()

	again, err := s.Edit(domain.SlotTarget, domain.AssetIndexFund, 40)
	require.NoError(t, err)
	assert.Equal(t, before, s.Allocation(domain.SlotTarget))
	assert.Equal(t, prev, again)
}

func TestSession_EditUnknownSlot(t *testing.T) {
	s := newTestSession(t)
	_, err := s.Edit(domain.Slot("c"), domain.AssetCash, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSession_EditUnknownAsset(t *testing.T) {
	s := newTestSession(t)
	_, err := s.Edit(domain.SlotTarget, domain.AssetIndexFund, 40)
	require.NoError(t, err)
	before := s.Allocation(domain.SlotTarget)
	prev := s.Result()

	_, err = s.Edit(domain.SlotTarget, domain.Asset("bogus"), 30)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, before, s.Allocation(domain.SlotTarget))
	assert.Equal(t, 100, s.Allocation(domain.SlotTarget).Sum())
	assert.Same(t, prev, s.Result())

	result, err := s.SetPrincipal(d(5))
	require.NoError(t, err, "session stays usable")
	assert.Equal(t, before, result.Input.Target)
}

func TestSession_SetPrincipalRollsBackOnError(t *testing.T) {
	s := newTestSession(t)
	prev := s.Result()

	_, err := s.SetPrincipal(d(-1))
	require.Error(t, err)
	assert.True(t, s.Input().Principal.Equal(d(1000000)))
	assert.Same(t, prev, s.Result())

	result, err := s.SetPrincipal(d(500000))
	require.NoError(t, err)
	assert.True(t, result.Input.Principal.Equal(d(500000)))
}

func TestSession_SetContribution(t *testing.T) {
	s := newTestSession(t)
	result, err := s.SetContribution(d(0))
	require.NoError(t, err)
	assert.True(t, result.Current.Final().Value.LessThan(d(2000000)))

	_, err = s.SetContribution(d(-100))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.True(t, s.Input().Contribution.IsZero())
}

func TestSession_Inflation(t *testing.T) {
	s := newTestSession(t)

	result, err := s.SetInflationRate(d(3))
	require.NoError(t, err)
	assert.True(t, result.Inflation.Rate.Equal(d(3)))

	result, err = s.SetInflationFromPrices(d(100), d(200))
	require.NoError(t, err)
	assert.InDelta(t, 7.1773, result.Inflation.Rate.InexactFloat64(), 0.001)

	_, err = s.SetInflationFromPrices(d(0), d(200))
	assert.ErrorIs(t, err, ErrInvalidPrice)
	assert.InDelta(t, 7.1773, s.Input().InflationRate.InexactFloat64(), 0.001)
}
