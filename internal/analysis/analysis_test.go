package analysis

import (
	"bytes"
	"strings"
	"testing"

	"ai-energy-forecast/internal/forecast"
	"ai-energy-forecast/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *forecast.Engine {
	t.Helper()
	e, err := forecast.New(model.DefaultConstants())
	require.NoError(t, err)
	return e
}

func TestFeasibilityScoreBands(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		want     float64
	}{
		{name: "tiny", fraction: 0.01, want: 100},
		{name: "band edge 10pct", fraction: 0.1, want: 80},
		{name: "mid second band", fraction: 0.3, want: 60},
		{name: "band edge 50pct", fraction: 0.5, want: 40},
		{name: "band edge 100pct", fraction: 1.0, want: 10},
		{name: "150pct", fraction: 1.5, want: 5.5},
		{name: "beyond 200pct", fraction: 3.0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FeasibilityScore(tt.fraction), 1e-9)
		})
	}
}

func TestFeasibilityScoreMonotone(t *testing.T) {
	prev := FeasibilityScore(0)
	for f := 0.05; f < 3.0; f += 0.05 {
		score := FeasibilityScore(f)
		assert.LessOrEqual(t, score, prev, "score must not increase at fraction %v", f)
		prev = score
	}
}

func TestBuildMatrix(t *testing.T) {
	e := newEngine(t)
	spec := DefaultMatrixSpec()

	rows, err := BuildMatrix(e, spec)
	require.NoError(t, err)
	require.Len(t, rows, len(spec.PowersGW)*len(spec.Years)*len(spec.Presets))

	for _, r := range rows {
		assert.Greater(t, r.UnitCount, 0.0)
		assert.Greater(t, r.CapExUSD, 0.0)
		assert.Greater(t, r.Feasibility, 0.0)
	}
}

func TestBuildMatrixPureGasHasNoPV(t *testing.T) {
	e := newEngine(t)
	spec := MatrixSpec{
		PowersGW: []float64{100},
		Years:    []int{2030},
		Presets: []MixPreset{
			{Name: "Pure Gas", Mix: model.EnergyMix{model.SourceGas: 1.0}},
		},
	}

	rows, err := BuildMatrix(e, spec)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].PVModules)
	assert.Greater(t, rows[0].Turbines, 0.0)
}

func TestSortByFeasibility(t *testing.T) {
	e := newEngine(t)
	rows, err := BuildMatrix(e, DefaultMatrixSpec())
	require.NoError(t, err)

	SortByFeasibility(rows)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].Feasibility, rows[i].Feasibility)
	}
}

func TestGridShape(t *testing.T) {
	e := newEngine(t)
	powers := []float64{10, 100, 1000}
	years := []int{2025, 2030}

	grid, err := Grid(e, powers, years, model.EnergyMix{model.SourceSolar: 0.5, model.SourceGas: 0.5})
	require.NoError(t, err)
	require.Len(t, grid, len(years))
	for _, row := range grid {
		require.Len(t, row, len(powers))
	}

	// More power can never look more feasible within a year.
	for i := range years {
		for j := 1; j < len(powers); j++ {
			assert.GreaterOrEqual(t, grid[i][j-1], grid[i][j])
		}
	}
}

func TestElectricityThreshold(t *testing.T) {
	e := newEngine(t)
	mix := model.EnergyMix{model.SourceSolar: 0.5, model.SourceGas: 0.5}
	powers := []float64{1, 2, 5, 10}

	gw, ok, err := ElectricityThreshold(e, 2030, powers, mix)
	require.NoError(t, err)
	require.True(t, ok)

	// The interpolated crossing must itself sit at ~100% of world
	// electricity.
	s, err := e.Run(gw*1e9, 2030, mix)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s.GlobalFractions.Electricity, 0.05)
}

func TestElectricityThresholdNoCrossing(t *testing.T) {
	e := newEngine(t)

	_, ok, err := ElectricityThreshold(e, 2030, []float64{0.1, 0.5, 1}, model.EnergyMix{model.SourceGas: 1})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWriteMatrix(t *testing.T) {
	e := newEngine(t)
	rows, err := BuildMatrix(e, MatrixSpec{
		PowersGW: []float64{100},
		Years:    []int{2030},
		Presets:  DefaultMixPresets(),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteMatrix(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(rows)+1)
	assert.True(t, strings.HasPrefix(lines[0], "power_gw,year,energy_mix"))
	assert.Contains(t, buf.String(), "Pure Solar")
}
