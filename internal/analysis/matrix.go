// Package analysis sweeps the forecast engine across grids of power, year
// and energy mix, and scores the results for feasibility.
package analysis

import (
	"fmt"
	"sort"

	"ai-energy-forecast/internal/forecast"
	"ai-energy-forecast/internal/model"
)

// MixPreset is a named energy mix used for sweeps.
type MixPreset struct {
	Name string
	Mix  model.EnergyMix
}

// DefaultMixPresets returns the canonical sweep mixes.
func DefaultMixPresets() []MixPreset {
	return []MixPreset{
		{Name: "Pure Solar", Mix: model.EnergyMix{model.SourceSolar: 1.0, model.SourceGas: 0.0}},
		{Name: "Pure Gas", Mix: model.EnergyMix{model.SourceSolar: 0.0, model.SourceGas: 1.0}},
		{Name: "Balanced", Mix: model.EnergyMix{model.SourceSolar: 0.5, model.SourceGas: 0.5}},
		{Name: "Solar Heavy", Mix: model.EnergyMix{model.SourceSolar: 0.7, model.SourceGas: 0.3}},
	}
}

// MatrixSpec defines a scenario sweep.
type MatrixSpec struct {
	PowersGW []float64
	Years    []int
	Presets  []MixPreset
}

// DefaultMatrixSpec covers 10 GW to 2 TW across the modeled years.
func DefaultMatrixSpec() MatrixSpec {
	return MatrixSpec{
		PowersGW: []float64{10, 30, 100, 300, 1000, 2000},
		Years:    []int{2025, 2030, 2035, 2040},
		Presets:  DefaultMixPresets(),
	}
}

// Row is one flattened scenario result, the unit of CSV export and ranking.
type Row struct {
	PowerGW float64
	Year    int
	MixName string

	UnitCount       float64
	TotalThroughput float64
	CapExUSD        float64
	CapExPerWatt    float64

	PctWorldElectricity float64
	PctWorldGDP         float64

	Transformers float64
	PVModules    float64
	Turbines     float64

	AnnualTokens float64

	Feasibility float64
}

// BuildMatrix runs every (power, year, preset) combination and flattens the
// scenarios into rows.
func BuildMatrix(engine *forecast.Engine, spec MatrixSpec) ([]Row, error) {
	rows := make([]Row, 0, len(spec.PowersGW)*len(spec.Years)*len(spec.Presets))
	for _, powerGW := range spec.PowersGW {
		for _, year := range spec.Years {
			for _, preset := range spec.Presets {
				s, err := engine.Run(powerGW*1e9, year, preset.Mix)
				if err != nil {
					return nil, fmt.Errorf("scenario %v GW / %d / %s: %w", powerGW, year, preset.Name, err)
				}
				rows = append(rows, flatten(s, powerGW, preset.Name))
			}
		}
	}
	return rows, nil
}

func flatten(s model.Scenario, powerGW float64, mixName string) Row {
	return Row{
		PowerGW: powerGW,
		Year:    s.Year,
		MixName: mixName,

		UnitCount:       s.Compute.UnitCount,
		TotalThroughput: s.Compute.TotalThroughput,
		CapExUSD:        s.CapEx.TotalUSD,
		CapExPerWatt:    s.CapEx.CostPerWatt,

		PctWorldElectricity: s.GlobalFractions.Electricity * 100,
		PctWorldGDP:         s.GlobalFractions.GDP * 100,

		Transformers: s.Infrastructure.Transformers,
		PVModules:    s.Infrastructure.PVModules,
		Turbines:     s.Infrastructure.Turbines,

		AnnualTokens: s.Tokens.TokensPerYear,

		Feasibility: FeasibilityScore(s.GlobalFractions.Electricity),
	}
}

// SortByFeasibility orders rows most-feasible first, breaking ties by lower
// CapEx.
func SortByFeasibility(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Feasibility != rows[j].Feasibility {
			return rows[i].Feasibility > rows[j].Feasibility
		}
		return rows[i].CapExUSD < rows[j].CapExUSD
	})
}
