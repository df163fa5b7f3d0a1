package integration

import (
	"testing"

	"github.com/rpgo/allocation-simulator/internal/calculation"
	"github.com/rpgo/allocation-simulator/internal/config"
	"github.com/rpgo/allocation-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleConfig = "../testdata/example_config.yaml"

func TestEndToEndCalculation(t *testing.T) {
	// Test that we can load a configuration and run a pass over its defaults
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(exampleConfig)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	engine := calculation.NewCalculationEngine(cfg)
	session, err := calculation.NewSession(engine, cfg.Defaults)
	require.NoError(t, err)

	result := session.Result()
	require.NotNil(t, result)
	assert.Equal(t, domain.CategoryBalanced, result.Category)
	assert.True(t, result.TargetMetrics.ExpectedReturn.Equal(decimal.NewFromFloat(7.6)))
	assert.True(t, result.CurrentMetrics.ExpectedReturn.Equal(decimal.NewFromFloat(1.5)))
	assert.Len(t, result.Target.Points, calculation.TerminalHorizon)

	// Verify the wealth gap brackets the projected target at year 20
	gap := result.GapAt(calculation.TerminalHorizon)
	assert.True(t, gap.IsPositive())
	assert.True(t, result.WealthGap.Min.LessThan(gap))
	assert.True(t, result.WealthGap.Max.GreaterThan(gap))
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	cfg, err := parser.LoadFromFile(exampleConfig)
	require.NoError(t, err)

	err = parser.ValidateConfiguration(cfg)
	assert.NoError(t, err)

	// The file overrides one category; the rest fall back to the built-in text
	text, ok := cfg.TextFor(domain.CategoryBalanced)
	require.True(t, ok)
	assert.Equal(t, "Balanced: core holdings with a small satellite", text.Title)
	builtIn := config.DefaultScenarioText()
	for _, category := range domain.Categories() {
		if category == domain.CategoryBalanced {
			continue
		}
		got, ok := cfg.TextFor(category)
		require.True(t, ok, "missing text for %s", category)
		assert.Equal(t, builtIn[category], got)
	}
}
