package calculation

import (
	"fmt"
	"testing"

	"github.com/rpgo/allocation-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	NopLogger
	debug []string
}

func (r *recordingLogger) Debugf(format string, args ...any) {
	r.debug = append(r.debug, fmt.Sprintf(format, args...))
}

func defaultInput() domain.SimulationInput {
	return domain.SimulationInput{
		Current:       domain.DefaultAllocation(),
		Target:        alloc(20, 40, 20, 20),
		Principal:     d(1000000),
		Contribution:  d(20000),
		InflationRate: d(2.5),
	}
}

func TestEvaluate(t *testing.T) {
	engine := NewCalculationEngine(testConfiguration())

	result, err := engine.Evaluate(defaultInput())
	require.NoError(t, err)

	assert.True(t, result.CurrentMetrics.ExpectedReturn.Equal(d(1.5)))
	assert.True(t, result.TargetMetrics.ExpectedReturn.Equal(d(7.6)))
	assert.Equal(t, domain.CategoryBalanced, result.Category)
	assert.False(t, result.AnyActiveWarning())

	for _, s := range []domain.ProjectionSeries{result.Inflation, result.Current, result.Target} {
		require.Len(t, s.Points, TerminalHorizon, "series %s", s.Label)
	}
	assert.Equal(t, SeriesInflation, result.Inflation.Label)
	assert.Equal(t, SeriesCurrent, result.Current.Label)
	assert.Equal(t, SeriesTarget, result.Target.Label)
	assert.True(t, result.Inflation.Rate.Equal(d(2.5)))

	// the higher-return target outgrows the all-cash current
	assert.True(t, result.Target.Final().Value.GreaterThan(result.Current.Final().Value))

	currentTerminal := result.Current.Final().Value
	best := FutureValue(d(1000000), d(20000), d(28.6), TerminalHorizon)
	assert.True(t, result.WealthGap.Max.Equal(best.Sub(currentTerminal)))
}

func TestEvaluate_Deterministic(t *testing.T) {
	engine := NewCalculationEngine(testConfiguration())
	first, err := engine.Evaluate(defaultInput())
	require.NoError(t, err)
	second, err := engine.Evaluate(defaultInput())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEvaluate_ActiveWarnings(t *testing.T) {
	engine := NewCalculationEngine(testConfiguration())
	input := defaultInput()
	input.Current = alloc(10, 30, 30, 30)

	result, err := engine.Evaluate(input)
	require.NoError(t, err)
	assert.True(t, result.CurrentActiveWarning)
	assert.False(t, result.TargetActiveWarning)
	assert.True(t, result.AnyActiveWarning())
}

func TestEvaluate_InvalidInput(t *testing.T) {
	engine := NewCalculationEngine(testConfiguration())

	tests := []struct {
		name      string
		mutate    func(*domain.SimulationInput)
		allocErr  bool
		substring string
	}{
		{"negative principal", func(in *domain.SimulationInput) { in.Principal = d(-1) }, false, "principal"},
		{"negative contribution", func(in *domain.SimulationInput) { in.Contribution = d(-0.01) }, false, "contribution"},
		{"current not normalized", func(in *domain.SimulationInput) { in.Current = alloc(50, 0, 0, 0) }, true, "current"},
		{"target not normalized", func(in *domain.SimulationInput) { in.Target = alloc(50, 50, 50, 0) }, true, "target"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := defaultInput()
			tt.mutate(&input)
			result, err := engine.Evaluate(input)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrInvalidInput)
			if tt.allocErr {
				assert.ErrorIs(t, err, domain.ErrInvalidAllocation)
			}
			assert.Contains(t, err.Error(), tt.substring)
		})
	}
}

func TestEvaluate_ZeroMoneyIsValid(t *testing.T) {
	engine := NewCalculationEngine(testConfiguration())
	input := defaultInput()
	input.Principal = decimal.Zero
	input.Contribution = decimal.Zero

	result, err := engine.Evaluate(input)
	require.NoError(t, err)
	for _, p := range result.Target.Points {
		assert.True(t, p.Value.IsZero())
	}
}

func TestEvaluate_DebugBreakdown(t *testing.T) {
	engine := NewCalculationEngine(testConfiguration())
	logger := &recordingLogger{}
	engine.SetLogger(logger)

	_, err := engine.Evaluate(defaultInput())
	require.NoError(t, err)
	assert.Empty(t, logger.debug, "no breakdown unless Debug is set")

	engine.Debug = true
	_, err = engine.Evaluate(defaultInput())
	require.NoError(t, err)
	require.NotEmpty(t, logger.debug)
	assert.Equal(t, "SIMULATION BREAKDOWN", logger.debug[0])
	assert.Contains(t, logger.debug[len(logger.debug)-1], string(domain.CategoryBalanced))
}

func TestSetLogger_NilFallsBackToNop(t *testing.T) {
	engine := NewCalculationEngine(testConfiguration())
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestCompareTargets(t *testing.T) {
	engine := NewCalculationEngine(testConfiguration())
	targets := []domain.Allocation{
		alloc(20, 40, 20, 20),
		alloc(100, 0, 0, 0),
		alloc(0, 34, 33, 33),
	}

	results, err := engine.CompareTargets(domain.DefaultAllocation(), targets, d(1000000), d(20000), d(2.5))
	require.NoError(t, err)
	require.Len(t, results, len(targets))
	for i, r := range results {
		assert.Equal(t, targets[i], r.Input.Target)
	}
	assert.Equal(t, domain.CategoryBalanced, results[0].Category)
	assert.Equal(t, domain.CategoryNoRealEstate, results[1].Category)
	assert.Equal(t, domain.CategoryDangerActive, results[2].Category)

	_, err = engine.CompareTargets(domain.DefaultAllocation(), []domain.Allocation{alloc(20, 40, 20, 20), alloc(1, 1, 1, 1)},
		d(1000000), d(20000), d(2.5))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target 1")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
