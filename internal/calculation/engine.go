package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/allocation-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned when simulation inputs are outside their domain
var ErrInvalidInput = errors.New("invalid simulation input")

// CalculationEngine orchestrates one recomputation pass: metrics for both
// allocations, wealth projections, the wealth gap and the feedback category.
type CalculationEngine struct {
	Model    *ReturnRiskModel
	Horizons []int
	Debug    bool // Enable debug output for detailed calculations
	Logger   Logger
}

// NewCalculationEngine creates an engine over the configured rate, risk and probability tables
func NewCalculationEngine(config *domain.Configuration) *CalculationEngine {
	return &CalculationEngine{
		Model:    NewReturnRiskModel(config.Rates, config.Risk, config.Probability),
		Horizons: Horizons(),
		Logger:   NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Validate checks the inputs of a pass. Allocations must already be normalized.
func (ce *CalculationEngine) Validate(input domain.SimulationInput) error {
	if err := input.Current.Validate(); err != nil {
		return fmt.Errorf("%w: current allocation: %w", ErrInvalidInput, err)
	}
	if err := input.Target.Validate(); err != nil {
		return fmt.Errorf("%w: target allocation: %w", ErrInvalidInput, err)
	}
	if input.Principal.IsNegative() {
		return fmt.Errorf("%w: principal cannot be negative, got %s", ErrInvalidInput, input.Principal)
	}
	if input.Contribution.IsNegative() {
		return fmt.Errorf("%w: contribution cannot be negative, got %s", ErrInvalidInput, input.Contribution)
	}
	return nil
}

// Evaluate runs a full pass over the input. The same input always yields
// the same result.
func (ce *CalculationEngine) Evaluate(input domain.SimulationInput) (*domain.SimulationResult, error) {
	if err := ce.Validate(input); err != nil {
		return nil, err
	}

	currentMetrics := ce.Model.Compute(input.Current)
	targetMetrics := ce.Model.Compute(input.Target)

	inflation := ProjectSeries(SeriesInflation, input.Principal, input.Contribution, input.InflationRate, ce.Horizons)
	current := ProjectSeries(SeriesCurrent, input.Principal, input.Contribution, currentMetrics.ExpectedReturn, ce.Horizons)
	target := ProjectSeries(SeriesTarget, input.Principal, input.Contribution, targetMetrics.ExpectedReturn, ce.Horizons)

	currentTerminal := FutureValue(input.Principal, input.Contribution, currentMetrics.ExpectedReturn, TerminalHorizon)
	gap := ComputeWealthGap(input.Principal, input.Contribution, targetMetrics, currentTerminal)

	result := &domain.SimulationResult{
		Input:                input,
		CurrentMetrics:       currentMetrics,
		TargetMetrics:        targetMetrics,
		Inflation:            inflation,
		Current:              current,
		Target:               target,
		WealthGap:            gap,
		Category:             Classify(input.Target),
		CurrentActiveWarning: IsOvertrading(input.Current),
		TargetActiveWarning:  IsOvertrading(input.Target),
	}

	if ce.Debug {
		ce.logBreakdown(result)
	}
	return result, nil
}

func (ce *CalculationEngine) logBreakdown(r *domain.SimulationResult) {
	ce.Logger.Debugf("SIMULATION BREAKDOWN")
	ce.Logger.Debugf("Current: %s", r.Input.Current)
	ce.Logger.Debugf("Target:  %s", r.Input.Target)
	ce.Logger.Debugf("Principal %s, monthly contribution %s, inflation %s%%",
		r.Input.Principal.StringFixed(2), r.Input.Contribution.StringFixed(2), r.Input.InflationRate.StringFixed(2))
	ce.Logger.Debugf("Expected return: current %s%%, target %s%%",
		r.CurrentMetrics.ExpectedReturn.StringFixed(2), r.TargetMetrics.ExpectedReturn.StringFixed(2))
	ce.Logger.Debugf("Target range %s%% .. %s%%, confidence %s%%",
		r.TargetMetrics.WorstCaseDrawdown.StringFixed(2), r.TargetMetrics.BestCaseReturn.StringFixed(2),
		r.TargetMetrics.ConfidenceScore.StringFixed(2))
	ce.Logger.Debugf("Year %d: current %s, target %s, inflation %s",
		TerminalHorizon, r.Current.Final().Value.StringFixed(2), r.Target.Final().Value.StringFixed(2),
		r.Inflation.Final().Value.StringFixed(2))
	ce.Logger.Debugf("Wealth gap: %s .. %s", r.WealthGap.Min.StringFixed(2), r.WealthGap.Max.StringFixed(2))
	ce.Logger.Debugf("Category: %s", r.Category)
}

// CompareTargets evaluates several candidate targets against one current
// allocation and returns the results in input order.
func (ce *CalculationEngine) CompareTargets(current domain.Allocation, targets []domain.Allocation, principal, contribution, inflationRate decimal.Decimal) ([]*domain.SimulationResult, error) {
	results := make([]*domain.SimulationResult, 0, len(targets))
	for i, target := range targets {
		r, err := ce.Evaluate(domain.SimulationInput{
			Current:       current,
			Target:        target,
			Principal:     principal,
			Contribution:  contribution,
			InflationRate: inflationRate,
		})
		if err != nil {
			return nil, fmt.Errorf("target %d: %w", i, err)
		}
		results = append(results, r)
	}
	return results, nil
}
