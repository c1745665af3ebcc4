package model

// Derived records below are pure-function outputs. None of them is mutated
// after construction; each scenario run produces fresh values.

// ComputeMetrics converts a power budget into compute-unit terms.
type ComputeMetrics struct {
	UnitCount         float64 // compute units the power budget supports
	WattsPerUnit      float64 // watts per unit in the target year
	ThroughputPerUnit float64 // ops/s per unit (baseline x density)
	TotalThroughput   float64 // ops/s across all units
}

// CapExBreakdown splits capital cost into compute and non-compute parts.
// NonComputeRatio compounds at 1.1x per year past the curve start with no
// cap, so very distant years yield non-compute costs exceeding compute
// costs; the ratio is exported so callers can see when that happens.
type CapExBreakdown struct {
	TotalUSD        float64
	ComputeUSD      float64
	NonComputeUSD   float64
	NonComputeRatio float64
	CostPerUnit     float64
	CostPerWatt     float64 // 0 when the scenario power is 0 (undefined, see ErrZeroPower)
}

// InfrastructureRequirements counts the physical equipment implied by the
// power budget and energy mix.
type InfrastructureRequirements struct {
	TotalMW float64

	Transformers float64
	Switchgear   float64

	SolarCapacityMW float64 // nameplate after overbuild
	PVModules       float64
	BatteryMWh      float64

	GasMW    float64
	Turbines float64
}

// TokenOutput estimates inference token generation.
type TokenOutput struct {
	Utilization        float64
	EffectiveUnitCount float64
	TokensPerSecond    float64
	TokensPerYear      float64
}

// GlobalFractions expresses scenario quantities against fixed world totals.
type GlobalFractions struct {
	Electricity float64 // annual energy vs world electricity production
	FinalEnergy float64 // annual energy vs world final energy
	GDP         float64 // total CapEx vs world GDP

	Transformers float64 // vs annual production capacity
	Switchgear   float64
	PVModules    float64
	Batteries    float64
	Turbines     float64
}

// Scenario is the aggregate result of one forecast run: the inputs (with the
// mix already normalized) plus every derived record. Immutable once built;
// independent runs share no storage.
type Scenario struct {
	Watts float64
	Year  int
	Mix   EnergyMix

	Compute         ComputeMetrics
	CapEx           CapExBreakdown
	Infrastructure  InfrastructureRequirements
	Tokens          TokenOutput
	GlobalFractions GlobalFractions
}
