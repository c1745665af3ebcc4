// Package forecast runs the scenario pipeline: a power budget, a target year
// and an energy mix in; one immutable Scenario bundle of derived metrics out.
package forecast

import (
	"fmt"

	"ai-energy-forecast/internal/curves"
	"ai-energy-forecast/internal/model"
)

// Engine evaluates scenarios against a fixed set of constants. It holds no
// mutable state, so a single Engine may serve concurrent callers.
type Engine struct {
	constants model.Constants
	curves    curves.Curves
}

// New builds an Engine. The constants are captured by value and never
// modified afterwards.
func New(constants model.Constants) (*Engine, error) {
	if err := constants.Validate(); err != nil {
		return nil, fmt.Errorf("constants: %w", err)
	}
	return &Engine{
		constants: constants,
		curves:    curves.New(constants),
	}, nil
}

// Constants returns the engine's active constants.
func (e *Engine) Constants() model.Constants { return e.constants }

// Curves exposes the engine's efficiency curves for sampling.
func (e *Engine) Curves() curves.Curves { return e.curves }

// Run evaluates one scenario at the default utilization.
func (e *Engine) Run(watts float64, year int, mix model.EnergyMix) (model.Scenario, error) {
	return e.RunWithUtilization(watts, year, mix, DefaultUtilization)
}

// RunWithUtilization evaluates one scenario. Inputs are validated up front;
// the mix is normalized (a zero-sum mix is kept as-is) and the estimators
// are invoked in dependency order.
func (e *Engine) RunWithUtilization(watts float64, year int, mix model.EnergyMix, utilization float64) (model.Scenario, error) {
	if err := validateInputs(watts, year, mix, utilization, e.constants.BaseYear); err != nil {
		return model.Scenario{}, err
	}

	normalized := mix.Normalize()

	compute := e.computeMetrics(watts, year)
	capex := e.capex(watts, year, compute)
	infra := e.infrastructure(watts, normalized)
	tokens := e.tokenOutput(compute.UnitCount, utilization)
	fractions := e.globalFractions(watts, capex, infra)

	return model.Scenario{
		Watts: watts,
		Year:  year,
		Mix:   normalized,

		Compute:         compute,
		CapEx:           capex,
		Infrastructure:  infra,
		Tokens:          tokens,
		GlobalFractions: fractions,
	}, nil
}

func validateInputs(watts float64, year int, mix model.EnergyMix, utilization float64, minYear int) error {
	if watts < 0 {
		return fmt.Errorf("%w: watts must be >= 0, got %v", model.ErrInvalidInput, watts)
	}
	if year < minYear {
		return fmt.Errorf("%w: year must be >= %d, got %d", model.ErrInvalidInput, minYear, year)
	}
	if utilization < 0 || utilization > 1 {
		return fmt.Errorf("%w: utilization must be in [0,1], got %v", model.ErrInvalidInput, utilization)
	}
	if err := mix.Validate(); err != nil {
		return err
	}
	return nil
}
