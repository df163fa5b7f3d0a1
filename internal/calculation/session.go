package calculation

import (
	"fmt"

	"github.com/rpgo/allocation-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// Session holds the state of one comparison: the current and target
// allocations and the money inputs. Every mutation normalizes the edited
// allocation and re-runs the engine. A Session has a single owner and is
// not safe for concurrent use.
type Session struct {
	engine *CalculationEngine
	input  domain.SimulationInput
	result *domain.SimulationResult
}

// NewSession starts a session from configured defaults. Default allocations
// that do not sum to 100 are normalized first.
func NewSession(engine *CalculationEngine, defaults domain.Defaults) (*Session, error) {
	s := &Session{
		engine: engine,
		input: domain.SimulationInput{
			Current:       NormalizeAll(defaults.Current),
			Target:        NormalizeAll(defaults.Target),
			Principal:     defaults.Principal,
			Contribution:  defaults.Contribution,
			InflationRate: defaults.InflationRate,
		},
	}
	if err := s.recompute(); err != nil {
		return nil, err
	}
	return s, nil
}

// Input returns the inputs of the last pass
func (s *Session) Input() domain.SimulationInput { return s.input }

// Result returns the result of the last pass
func (s *Session) Result() *domain.SimulationResult { return s.result }

// Allocation returns the allocation held in a slot
func (s *Session) Allocation(slot domain.Slot) domain.Allocation {
	if slot == domain.SlotTarget {
		return s.input.Target
	}
	return s.input.Current
}

// Edit sets one share of one slot, restores the sum-to-100 invariant on that
// slot and re-evaluates. An unknown slot or asset changes nothing.
func (s *Session) Edit(slot domain.Slot, asset domain.Asset, value int) (*domain.SimulationResult, error) {
	if slot != domain.SlotCurrent && slot != domain.SlotTarget {
		return nil, fmt.Errorf("%w: unknown slot %q", ErrInvalidInput, slot)
	}
	if !asset.Known() {
		return nil, fmt.Errorf("%w: unknown asset %q", ErrInvalidInput, asset)
	}
	r, err := s.update(func(in *domain.SimulationInput) {
		if slot == domain.SlotTarget {
			in.Target = Normalize(in.Target, asset, value)
		} else {
			in.Current = Normalize(in.Current, asset, value)
		}
	})
	if err != nil {
		return nil, err
	}
	s.engine.Logger.Debugf("edit %s.%s=%d -> %s", slot, asset, value, s.Allocation(slot))
	return r, nil
}

// SetPrincipal replaces the initial amount and re-evaluates
func (s *Session) SetPrincipal(principal decimal.Decimal) (*domain.SimulationResult, error) {
	return s.update(func(in *domain.SimulationInput) { in.Principal = principal })
}

// SetContribution replaces the monthly contribution and re-evaluates
func (s *Session) SetContribution(contribution decimal.Decimal) (*domain.SimulationResult, error) {
	return s.update(func(in *domain.SimulationInput) { in.Contribution = contribution })
}

// SetInflationRate replaces the inflation benchmark rate and re-evaluates
func (s *Session) SetInflationRate(rate decimal.Decimal) (*domain.SimulationResult, error) {
	return s.update(func(in *domain.SimulationInput) { in.InflationRate = rate })
}

// SetInflationFromPrices estimates the inflation rate from two prices ten
// years apart and re-evaluates
func (s *Session) SetInflationFromPrices(priceOld, priceNow decimal.Decimal) (*domain.SimulationResult, error) {
	rate, err := EstimateInflation(priceOld, priceNow)
	if err != nil {
		return nil, err
	}
	return s.SetInflationRate(rate)
}

// update applies fn to a copy of the inputs and keeps it only if it evaluates
func (s *Session) update(fn func(*domain.SimulationInput)) (*domain.SimulationResult, error) {
	previous := s.input
	fn(&s.input)
	if err := s.recompute(); err != nil {
		s.input = previous
		return nil, err
	}
	return s.result, nil
}

func (s *Session) recompute() error {
	r, err := s.engine.Evaluate(s.input)
	if err != nil {
		return err
	}
	s.result = r
	return nil
}
