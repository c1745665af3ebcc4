package models

// ScenarioRequest represents the request body for running a scenario.
// Watts may legitimately be zero (the zero-power boundary case), so it is
// not marked required.
type ScenarioRequest struct {
	Watts       float64            `json:"watts"`
	Year        int                `json:"year" binding:"required"`
	EnergyMix   map[string]float64 `json:"energy_mix" binding:"required"`
	Utilization *float64           `json:"utilization,omitempty"` // default 0.5
}

// CompareRequest runs a base scenario plus named variations.
type CompareRequest struct {
	Base       ScenarioRequest     `json:"base" binding:"required"`
	Variations []ScenarioVariation `json:"variations" binding:"required"`
}

// ScenarioVariation is one labeled alternative in a comparison.
type ScenarioVariation struct {
	Name     string          `json:"name" binding:"required"`
	Scenario ScenarioRequest `json:"scenario" binding:"required"`
}

// MatrixRequest sweeps scenarios over a grid. Empty fields fall back to the
// default sweep (10 GW-2 TW, 2025-2040, canonical mix presets).
type MatrixRequest struct {
	PowersGW []float64  `json:"powers_gw,omitempty"`
	Years    []int      `json:"years,omitempty"`
	Mixes    []NamedMix `json:"mixes,omitempty"`

	SortByFeasibility bool `json:"sort_by_feasibility,omitempty"`
}

// NamedMix is a labeled energy mix.
type NamedMix struct {
	Name string             `json:"name" binding:"required"`
	Mix  map[string]float64 `json:"mix" binding:"required"`
}
