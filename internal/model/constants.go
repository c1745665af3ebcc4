package model

// Constants bundles every fixed reference value the forecast depends on.
// They are hand-picked modeling assumptions, not measured data; keeping them
// in one struct lets tests and config files tune them without touching logic.
//
// Units:
// - power in watts unless the field name says MW
// - energy in Wh/year for the world totals
// - money in USD
type Constants struct {
	// BaseYear anchors the compute-density curve. Density is defined as 1.0
	// for any year at or below it.
	BaseYear int

	// BaseThroughputPerUnit is the throughput (ops/s) of one compute unit at
	// the baseline, before any density improvement. 2e15 corresponds to an
	// H100-class chip at FP8.
	BaseThroughputPerUnit float64

	// TokensPerSecondPerUnit is the inference token rate of one fully
	// utilized compute unit.
	TokensPerSecondPerUnit float64

	// World reference totals (2024).
	WorldElectricityWhPerYear float64 // Wh/year
	WorldGDPUSD               float64 // USD
	WorldFinalEnergyWhPerYear float64 // Wh/year

	// Infrastructure ratios, per MW of datacenter capacity.
	TransformersPerMW    float64
	SwitchgearPerMW      float64
	PVModulesPerMWSolar  float64 // per MW of solar *capacity* (post-overbuild)
	BatteryMWhPerMWSolar float64
	TurbinesPerMWGas     float64
	SolarOverbuildFactor float64 // nameplate overbuild compensating ~25% capacity factor

	// Global annual production capacities.
	TransformerProductionPerYear float64 // units/year
	SwitchgearProductionPerYear  float64 // units/year
	PVModuleProductionPerYear    float64 // modules/year
	BatteryProductionGWhPerYear  float64 // GWh/year
	TurbineProductionPerYear     float64 // units/year

	// Curves parameterizes the three efficiency curves.
	Curves CurveParams
}

// CurveParams defines the two-point rate interpolations behind the
// efficiency curves. Each rate decays linearly from its StartYear value to
// its HorizonYear value and stays flat beyond the horizon.
type CurveParams struct {
	StartYear   int // first projected year (2025)
	HorizonYear int // rates are clamped at this year's value (2040)

	// Compute density: yearly throughput multiplier per unit.
	DensityRateStart   float64
	DensityRateHorizon float64

	// Power: watts per unit at StartYear, divided by the yearly rate after.
	BaseWattsPerUnit float64
	PowerRateStart   float64
	PowerRateHorizon float64

	// Cost: USD per unit at StartYear, divided by the yearly rate after.
	BaseCostPerUnit float64
	CostRateStart   float64
	CostRateHorizon float64
}

// DefaultConstants returns the model's stock assumptions.
func DefaultConstants() Constants {
	return Constants{
		BaseYear:              2024,
		BaseThroughputPerUnit: 2e15,

		TokensPerSecondPerUnit: 10000,

		WorldElectricityWhPerYear: 35.2e12, // 35.2 PWh
		WorldGDPUSD:               111e12,  // 111 trillion
		WorldFinalEnergyWhPerYear: 180e12,  // 180 PWh

		TransformersPerMW:    0.5,
		SwitchgearPerMW:      2.0,
		PVModulesPerMWSolar:  4000,
		BatteryMWhPerMWSolar: 4,
		TurbinesPerMWGas:     1.0,
		SolarOverbuildFactor: 4,

		TransformerProductionPerYear: 10000,
		SwitchgearProductionPerYear:  50000,
		PVModuleProductionPerYear:    1e9,
		BatteryProductionGWhPerYear:  500,
		TurbineProductionPerYear:     5000,

		Curves: CurveParams{
			StartYear:   2025,
			HorizonYear: 2040,

			DensityRateStart:   1.35,
			DensityRateHorizon: 1.25,

			BaseWattsPerUnit: 1000.0,
			PowerRateStart:   1.3,
			PowerRateHorizon: 1.2,

			BaseCostPerUnit: 24000.0,
			CostRateStart:   1.3,
			CostRateHorizon: 1.2,
		},
	}
}

// Validate rejects constants that would make downstream ratios undefined.
func (c Constants) Validate() error {
	if c.BaseThroughputPerUnit <= 0 {
		return errInvalidf("BaseThroughputPerUnit must be > 0")
	}
	if c.TokensPerSecondPerUnit <= 0 {
		return errInvalidf("TokensPerSecondPerUnit must be > 0")
	}
	if c.WorldElectricityWhPerYear <= 0 || c.WorldGDPUSD <= 0 || c.WorldFinalEnergyWhPerYear <= 0 {
		return errInvalidf("world reference totals must be > 0")
	}
	if c.TransformerProductionPerYear <= 0 || c.SwitchgearProductionPerYear <= 0 ||
		c.PVModuleProductionPerYear <= 0 || c.BatteryProductionGWhPerYear <= 0 ||
		c.TurbineProductionPerYear <= 0 {
		return errInvalidf("production capacities must be > 0")
	}
	if c.SolarOverbuildFactor <= 0 {
		return errInvalidf("SolarOverbuildFactor must be > 0")
	}
	p := c.Curves
	if p.StartYear <= c.BaseYear {
		return errInvalidf("Curves.StartYear must be after BaseYear")
	}
	if p.HorizonYear <= p.StartYear {
		return errInvalidf("Curves.HorizonYear must be after Curves.StartYear")
	}
	if p.BaseWattsPerUnit <= 0 || p.BaseCostPerUnit <= 0 {
		return errInvalidf("curve base values must be > 0")
	}
	if p.DensityRateStart <= 0 || p.DensityRateHorizon <= 0 ||
		p.PowerRateStart <= 0 || p.PowerRateHorizon <= 0 ||
		p.CostRateStart <= 0 || p.CostRateHorizon <= 0 {
		return errInvalidf("curve rates must be > 0")
	}
	return nil
}
