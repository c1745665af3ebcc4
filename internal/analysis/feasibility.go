package analysis

import (
	"ai-energy-forecast/internal/forecast"
	"ai-energy-forecast/internal/model"
)

// FeasibilityScore maps the world-electricity fraction of a scenario to a
// 0-100 score. Piecewise linear bands:
//
//	< 10%  of world electricity -> 100
//	10-50%                      -> 80 down to 40
//	50-100%                     -> 40 down to 10
//	100-200%                    -> 10 down to 1
//	>= 200%                     -> 1
func FeasibilityScore(electricityFraction float64) float64 {
	f := electricityFraction
	switch {
	case f < 0.1:
		return 100
	case f < 0.5:
		return 80 - 40*(f-0.1)/0.4
	case f < 1.0:
		return 40 - 30*(f-0.5)/0.5
	case f < 2.0:
		return 10 - 9*(f-1.0)
	default:
		return 1
	}
}

// Grid evaluates the feasibility score over a (year, power) lattice with a
// fixed mix. The result is indexed [yearIdx][powerIdx], the sampling layout
// a heatmap renderer consumes directly.
func Grid(engine *forecast.Engine, powersGW []float64, years []int, mix model.EnergyMix) ([][]float64, error) {
	grid := make([][]float64, len(years))
	for i, year := range years {
		grid[i] = make([]float64, len(powersGW))
		for j, powerGW := range powersGW {
			s, err := engine.Run(powerGW*1e9, year, mix)
			if err != nil {
				return nil, err
			}
			grid[i][j] = FeasibilityScore(s.GlobalFractions.Electricity)
		}
	}
	return grid, nil
}

// ElectricityThreshold finds the power level (GW) at which a year's scenario
// crosses 100% of world electricity, by linear interpolation between the
// bracketing samples of powersGW. powersGW must be ascending. The second
// return is false when no crossing occurs within the sampled range.
func ElectricityThreshold(engine *forecast.Engine, year int, powersGW []float64, mix model.EnergyMix) (float64, bool, error) {
	prevGW := 0.0
	prevFrac := 0.0
	for i, powerGW := range powersGW {
		s, err := engine.Run(powerGW*1e9, year, mix)
		if err != nil {
			return 0, false, err
		}
		frac := s.GlobalFractions.Electricity
		if frac >= 1.0 {
			if i == 0 {
				return powerGW, true, nil
			}
			// Interpolate the 100% crossing between the two samples.
			t := (1.0 - prevFrac) / (frac - prevFrac)
			return prevGW + t*(powerGW-prevGW), true, nil
		}
		prevGW, prevFrac = powerGW, frac
	}
	return 0, false, nil
}
