package models

import "ai-energy-forecast/internal/model"

// ScenarioResponse mirrors model.Scenario with stable JSON field names.
type ScenarioResponse struct {
	Watts     float64            `json:"watts"`
	Year      int                `json:"year"`
	EnergyMix map[string]float64 `json:"energy_mix"`

	Compute         ComputeMetrics             `json:"compute"`
	CapEx           CapExBreakdown             `json:"capex"`
	Infrastructure  InfrastructureRequirements `json:"infrastructure"`
	Tokens          TokenOutput                `json:"tokens"`
	GlobalFractions GlobalFractions            `json:"global_fractions"`

	Summary string `json:"summary,omitempty"`
}

type ComputeMetrics struct {
	UnitCount         float64 `json:"unit_count"`
	WattsPerUnit      float64 `json:"watts_per_unit"`
	ThroughputPerUnit float64 `json:"throughput_per_unit"`
	TotalThroughput   float64 `json:"total_throughput"`
}

type CapExBreakdown struct {
	TotalUSD        float64 `json:"total_usd"`
	ComputeUSD      float64 `json:"compute_usd"`
	NonComputeUSD   float64 `json:"non_compute_usd"`
	NonComputeRatio float64 `json:"non_compute_ratio"`
	CostPerUnit     float64 `json:"cost_per_unit"`
	CostPerWatt     float64 `json:"cost_per_watt"`
}

type InfrastructureRequirements struct {
	TotalMW         float64 `json:"total_mw"`
	Transformers    float64 `json:"transformers"`
	Switchgear      float64 `json:"switchgear"`
	SolarCapacityMW float64 `json:"solar_capacity_mw"`
	PVModules       float64 `json:"pv_modules"`
	BatteryMWh      float64 `json:"battery_mwh"`
	GasMW           float64 `json:"gas_mw"`
	Turbines        float64 `json:"turbines"`
}

type TokenOutput struct {
	Utilization        float64 `json:"utilization"`
	EffectiveUnitCount float64 `json:"effective_unit_count"`
	TokensPerSecond    float64 `json:"tokens_per_second"`
	TokensPerYear      float64 `json:"tokens_per_year"`
}

type GlobalFractions struct {
	Electricity  float64 `json:"electricity"`
	FinalEnergy  float64 `json:"final_energy"`
	GDP          float64 `json:"gdp"`
	Transformers float64 `json:"transformers"`
	Switchgear   float64 `json:"switchgear"`
	PVModules    float64 `json:"pv_modules"`
	Batteries    float64 `json:"batteries"`
	Turbines     float64 `json:"turbines"`
}

// FromScenario flattens a model.Scenario into the response shape.
func FromScenario(s model.Scenario) ScenarioResponse {
	return ScenarioResponse{
		Watts:     s.Watts,
		Year:      s.Year,
		EnergyMix: s.Mix,

		Compute: ComputeMetrics{
			UnitCount:         s.Compute.UnitCount,
			WattsPerUnit:      s.Compute.WattsPerUnit,
			ThroughputPerUnit: s.Compute.ThroughputPerUnit,
			TotalThroughput:   s.Compute.TotalThroughput,
		},
		CapEx: CapExBreakdown{
			TotalUSD:        s.CapEx.TotalUSD,
			ComputeUSD:      s.CapEx.ComputeUSD,
			NonComputeUSD:   s.CapEx.NonComputeUSD,
			NonComputeRatio: s.CapEx.NonComputeRatio,
			CostPerUnit:     s.CapEx.CostPerUnit,
			CostPerWatt:     s.CapEx.CostPerWatt,
		},
		Infrastructure: InfrastructureRequirements{
			TotalMW:         s.Infrastructure.TotalMW,
			Transformers:    s.Infrastructure.Transformers,
			Switchgear:      s.Infrastructure.Switchgear,
			SolarCapacityMW: s.Infrastructure.SolarCapacityMW,
			PVModules:       s.Infrastructure.PVModules,
			BatteryMWh:      s.Infrastructure.BatteryMWh,
			GasMW:           s.Infrastructure.GasMW,
			Turbines:        s.Infrastructure.Turbines,
		},
		Tokens: TokenOutput{
			Utilization:        s.Tokens.Utilization,
			EffectiveUnitCount: s.Tokens.EffectiveUnitCount,
			TokensPerSecond:    s.Tokens.TokensPerSecond,
			TokensPerYear:      s.Tokens.TokensPerYear,
		},
		GlobalFractions: GlobalFractions{
			Electricity:  s.GlobalFractions.Electricity,
			FinalEnergy:  s.GlobalFractions.FinalEnergy,
			GDP:          s.GlobalFractions.GDP,
			Transformers: s.GlobalFractions.Transformers,
			Switchgear:   s.GlobalFractions.Switchgear,
			PVModules:    s.GlobalFractions.PVModules,
			Batteries:    s.GlobalFractions.Batteries,
			Turbines:     s.GlobalFractions.Turbines,
		},
	}
}

// CompareResponse holds one result per compared scenario.
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

type ComparisonResult struct {
	Name     string           `json:"name"`
	Scenario ScenarioResponse `json:"scenario"`
}

// CurvePoint is one sampled year of the efficiency curves.
type CurvePoint struct {
	Year           int     `json:"year"`
	ComputeDensity float64 `json:"compute_density"`
	WattsPerUnit   float64 `json:"watts_per_unit"`
	CostPerUnit    float64 `json:"cost_per_unit"`
}

// CurvesResponse is the sampled curve table.
type CurvesResponse struct {
	Points []CurvePoint `json:"points"`
}

// MatrixRow is one flattened sweep result.
type MatrixRow struct {
	PowerGW float64 `json:"power_gw"`
	Year    int     `json:"year"`
	MixName string  `json:"energy_mix"`

	UnitCount           float64 `json:"unit_count"`
	TotalThroughput     float64 `json:"total_throughput"`
	CapExUSD            float64 `json:"capex_usd"`
	CapExPerWatt        float64 `json:"capex_per_watt"`
	PctWorldElectricity float64 `json:"pct_world_electricity"`
	PctWorldGDP         float64 `json:"pct_world_gdp"`
	Transformers        float64 `json:"transformers"`
	PVModules           float64 `json:"pv_modules"`
	Turbines            float64 `json:"turbines"`
	AnnualTokens        float64 `json:"annual_tokens"`
	Feasibility         float64 `json:"feasibility"`
}

// MatrixResponse holds the sweep results.
type MatrixResponse struct {
	Rows []MatrixRow `json:"rows"`
}

// MixInfo describes one named mix preset.
type MixInfo struct {
	Name string             `json:"name"`
	Mix  map[string]float64 `json:"mix"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
