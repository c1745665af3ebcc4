// Package curves implements the three year-indexed efficiency curves the
// forecast is built on: compute density, power per unit and cost per unit.
//
// Each curve compounds a yearly rate that decays linearly between two anchor
// years and is flat beyond the horizon. The compounding is an explicit loop
// over the year range (each year's rate depends on that year's position in
// the interpolation), so it is O(year - baseline) with at most a handful of
// iterations for the modeled range.
package curves

import "ai-energy-forecast/internal/model"

// Curves evaluates the efficiency curves for a fixed set of parameters.
// Methods are pure: the same year always yields the bit-identical result.
type Curves struct {
	BaseYear int
	Params   model.CurveParams
}

// New builds a Curves from the model constants.
func New(c model.Constants) Curves {
	return Curves{BaseYear: c.BaseYear, Params: c.Curves}
}

// ComputeDensity is the cumulative throughput multiplier per compute unit
// relative to the base year. Returns 1.0 for any year at or below BaseYear.
func (c Curves) ComputeDensity(year int) float64 {
	if year <= c.BaseYear {
		return 1.0
	}
	cumulative := 1.0
	for y := c.BaseYear + 1; y <= year; y++ {
		cumulative *= c.rateAt(y, c.Params.DensityRateStart, c.Params.DensityRateHorizon)
	}
	return cumulative
}

// PowerPerUnit is the watts one compute unit draws in the given year.
// Returns the start-year base value for any year at or below StartYear;
// note the asymmetry with ComputeDensity, which baselines one year earlier.
func (c Curves) PowerPerUnit(year int) float64 {
	if year <= c.Params.StartYear {
		return c.Params.BaseWattsPerUnit
	}
	watts := c.Params.BaseWattsPerUnit
	for y := c.Params.StartYear + 1; y <= year; y++ {
		watts /= c.rateAt(y, c.Params.PowerRateStart, c.Params.PowerRateHorizon)
	}
	return watts
}

// CostPerUnit is the USD cost of one compute unit in the given year. Same
// shape as PowerPerUnit with the cost base value and rates.
func (c Curves) CostPerUnit(year int) float64 {
	if year <= c.Params.StartYear {
		return c.Params.BaseCostPerUnit
	}
	cost := c.Params.BaseCostPerUnit
	for y := c.Params.StartYear + 1; y <= year; y++ {
		cost /= c.rateAt(y, c.Params.CostRateStart, c.Params.CostRateHorizon)
	}
	return cost
}

// rateAt linearly interpolates the yearly rate between (StartYear, start)
// and (HorizonYear, horizon), clamped flat at horizon for later years.
func (c Curves) rateAt(year int, start, horizon float64) float64 {
	p := c.Params
	if year >= p.HorizonYear {
		return horizon
	}
	span := float64(p.HorizonYear - p.StartYear)
	frac := float64(year-p.StartYear) / span
	return start + (horizon-start)*frac
}
