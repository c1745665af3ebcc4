package forecast

import (
	"testing"

	"ai-energy-forecast/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(model.DefaultConstants())
	require.NoError(t, err)
	return e
}

func TestRunValidation(t *testing.T) {
	e := newEngine(t)
	validMix := model.EnergyMix{model.SourceSolar: 0.5, model.SourceGas: 0.5}

	tests := []struct {
		name  string
		watts float64
		year  int
		mix   model.EnergyMix
		util  float64
	}{
		{name: "negative watts", watts: -1, year: 2030, mix: validMix, util: 0.5},
		{name: "year below baseline", watts: 1e9, year: 2023, mix: validMix, util: 0.5},
		{name: "negative mix share", watts: 1e9, year: 2030, mix: model.EnergyMix{model.SourceSolar: -0.5}, util: 0.5},
		{name: "utilization below range", watts: 1e9, year: 2030, mix: validMix, util: -0.1},
		{name: "utilization above range", watts: 1e9, year: 2030, mix: validMix, util: 1.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.RunWithUtilization(tt.watts, tt.year, tt.mix, tt.util)
			require.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func TestNormalizationEquivalence(t *testing.T) {
	e := newEngine(t)

	a, err := e.Run(100e9, 2030, model.EnergyMix{model.SourceSolar: 2, model.SourceGas: 2})
	require.NoError(t, err)
	b, err := e.Run(100e9, 2030, model.EnergyMix{model.SourceSolar: 0.5, model.SourceGas: 0.5})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestIdempotence(t *testing.T) {
	e := newEngine(t)
	mix := model.EnergyMix{model.SourceSolar: 0.3, model.SourceGas: 0.7}

	a, err := e.Run(250e9, 2032, mix)
	require.NoError(t, err)
	b, err := e.Run(250e9, 2032, mix)
	require.NoError(t, err)

	// Bit-identical, not just approximately equal.
	assert.Equal(t, a, b)
}

func TestScenarioIndependence(t *testing.T) {
	e := newEngine(t)
	mix := model.EnergyMix{model.SourceSolar: 1}

	a, err := e.Run(10e9, 2030, mix)
	require.NoError(t, err)
	b, err := e.Run(10e9, 2030, mix)
	require.NoError(t, err)

	// Mutating one scenario's mix must not leak into the other, nor into
	// the caller's input.
	a.Mix[model.SourceSolar] = 42
	assert.Equal(t, 1.0, b.Mix[model.SourceSolar])
	assert.Equal(t, 1.0, mix[model.SourceSolar])
}

func TestZeroWattsBoundary(t *testing.T) {
	e := newEngine(t)

	s, err := e.Run(0, 2030, model.EnergyMix{model.SourceGas: 1})
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.Compute.UnitCount)
	assert.Equal(t, 0.0, s.Compute.TotalThroughput)
	assert.Equal(t, 0.0, s.CapEx.TotalUSD)
	assert.Equal(t, 0.0, s.Infrastructure.Transformers)
	assert.Equal(t, 0.0, s.Tokens.TokensPerSecond)

	// Cost per watt is undefined at zero power: a defined error, never
	// an Inf or NaN.
	_, err = CostPerWatt(s)
	require.ErrorIs(t, err, model.ErrZeroPower)
}

func TestCostPerWattNonZeroPower(t *testing.T) {
	e := newEngine(t)

	s, err := e.Run(100e9, 2030, model.EnergyMix{model.SourceGas: 1})
	require.NoError(t, err)

	cpw, err := CostPerWatt(s)
	require.NoError(t, err)
	assert.InEpsilon(t, s.CapEx.TotalUSD/100e9, cpw, 1e-12)
}

func TestDegenerateMix(t *testing.T) {
	e := newEngine(t)

	s, err := e.Run(100e9, 2030, model.EnergyMix{model.SourceSolar: 0, model.SourceGas: 0})
	require.NoError(t, err)

	// No generation-side equipment, but grid-side equipment still scales
	// with total watts.
	assert.Equal(t, 0.0, s.Infrastructure.PVModules)
	assert.Equal(t, 0.0, s.Infrastructure.Turbines)
	assert.Equal(t, 50000.0, s.Infrastructure.Transformers)
	assert.Equal(t, 200000.0, s.Infrastructure.Switchgear)
}

func TestExampleScenario2030(t *testing.T) {
	e := newEngine(t)

	s, err := e.Run(100e9, 2030, model.EnergyMix{model.SourceSolar: 0.3, model.SourceGas: 0.7})
	require.NoError(t, err)

	wantUnits := 100e9 / e.Curves().PowerPerUnit(2030)
	assert.Equal(t, wantUnits, s.Compute.UnitCount)
	assert.Greater(t, s.Compute.UnitCount, 0.0)

	// 100 GW = 1e5 MW; transformers at 0.5/MW.
	assert.Equal(t, 50000.0, s.Infrastructure.Transformers)
}

func TestExampleScenario2035PureSolar(t *testing.T) {
	e := newEngine(t)

	s, err := e.Run(1000e9, 2035, model.EnergyMix{model.SourceSolar: 1.0, model.SourceGas: 0.0})
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.Infrastructure.Turbines)
	assert.Greater(t, s.Infrastructure.PVModules, 0.0)
	// 1 TW = 1e6 MW of solar, overbuilt 4x, 4000 modules per capacity MW.
	assert.Equal(t, 4e6*4000, s.Infrastructure.PVModules)
}

func TestTransformersIndependentOfMix(t *testing.T) {
	e := newEngine(t)

	mixes := []model.EnergyMix{
		{model.SourceSolar: 1.0, model.SourceGas: 0.0},
		{model.SourceSolar: 0.0, model.SourceGas: 1.0},
		{model.SourceSolar: 0.5, model.SourceGas: 0.5},
	}

	var transformers, switchgear []float64
	for _, mix := range mixes {
		s, err := e.Run(300e9, 2030, mix)
		require.NoError(t, err)
		transformers = append(transformers, s.Infrastructure.Transformers)
		switchgear = append(switchgear, s.Infrastructure.Switchgear)
	}

	for i := 1; i < len(mixes); i++ {
		assert.Equal(t, transformers[0], transformers[i])
		assert.Equal(t, switchgear[0], switchgear[i])
	}
}

func TestWorldElectricityFractionSanity(t *testing.T) {
	e := newEngine(t)
	constants := e.Constants()

	// Continuous power whose annual energy equals world electricity.
	watts := constants.WorldElectricityWhPerYear / (365.25 * 24)

	s, err := e.Run(watts, 2030, model.EnergyMix{model.SourceGas: 1})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, s.GlobalFractions.Electricity, 1e-9)
}

func TestTokenOutput(t *testing.T) {
	e := newEngine(t)

	s, err := e.Run(100e9, 2030, model.EnergyMix{model.SourceGas: 1})
	require.NoError(t, err)

	assert.Equal(t, DefaultUtilization, s.Tokens.Utilization)
	assert.Equal(t, s.Compute.UnitCount*0.5, s.Tokens.EffectiveUnitCount)
	assert.Equal(t, s.Tokens.EffectiveUnitCount*10000, s.Tokens.TokensPerSecond)
	assert.InEpsilon(t, s.Tokens.TokensPerSecond*31557600, s.Tokens.TokensPerYear, 1e-12)
}

func TestUtilizationOverride(t *testing.T) {
	e := newEngine(t)

	full, err := e.RunWithUtilization(100e9, 2030, model.EnergyMix{model.SourceGas: 1}, 1.0)
	require.NoError(t, err)
	half, err := e.RunWithUtilization(100e9, 2030, model.EnergyMix{model.SourceGas: 1}, 0.5)
	require.NoError(t, err)

	assert.InEpsilon(t, 2.0, full.Tokens.TokensPerSecond/half.Tokens.TokensPerSecond, 1e-12)
}

func TestNewRejectsInvalidConstants(t *testing.T) {
	constants := model.DefaultConstants()
	constants.WorldGDPUSD = 0

	_, err := New(constants)
	require.ErrorIs(t, err, model.ErrInvalidInput)
}
