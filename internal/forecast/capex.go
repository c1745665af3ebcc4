package forecast

import (
	"math"

	"ai-energy-forecast/internal/model"
)

// nonComputeBaseRatio is the non-compute share of compute CapEx at the curve
// start year (cooling, power distribution, networking, buildings).
const nonComputeBaseRatio = 0.5

// nonComputeGrowthRate compounds the non-compute ratio per year past the
// curve start. Deliberately uncapped: very distant years produce non-compute
// costs several times the compute cost, and the ratio is surfaced in the
// breakdown rather than clamped.
const nonComputeGrowthRate = 1.1

// capex prices the compute units and derives the total capital cost.
// CostPerWatt is left at 0 when watts is 0; the per-watt figure is undefined
// there and Engine.CostPerWatt is the guarded accessor.
func (e *Engine) capex(watts float64, year int, compute model.ComputeMetrics) model.CapExBreakdown {
	costPerUnit := e.curves.CostPerUnit(year)
	computeUSD := compute.UnitCount * costPerUnit

	// Evaluated below the start year too, giving a ratio under 0.5.
	ratio := nonComputeBaseRatio * math.Pow(nonComputeGrowthRate, float64(year-e.constants.Curves.StartYear))
	nonComputeUSD := computeUSD * ratio

	b := model.CapExBreakdown{
		TotalUSD:        computeUSD + nonComputeUSD,
		ComputeUSD:      computeUSD,
		NonComputeUSD:   nonComputeUSD,
		NonComputeRatio: ratio,
		CostPerUnit:     costPerUnit,
	}
	if watts > 0 {
		b.CostPerWatt = b.TotalUSD / watts
	}
	return b
}

// CostPerWatt returns the capital cost per watt for a scenario, or
// ErrZeroPower when the scenario was run at zero power.
func CostPerWatt(s model.Scenario) (float64, error) {
	if s.Watts == 0 {
		return 0, model.ErrZeroPower
	}
	return s.CapEx.CostPerWatt, nil
}
