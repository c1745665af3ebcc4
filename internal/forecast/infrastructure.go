package forecast

import "ai-energy-forecast/internal/model"

// infrastructure sizes the physical equipment for a power budget and an
// already-normalized energy mix. Grid-side equipment (transformers,
// switchgear) scales with total watts regardless of mix; generation-side
// equipment follows the solar/gas shares. This stage does not re-normalize:
// a degenerate all-zero mix yields zero generation equipment.
func (e *Engine) infrastructure(watts float64, mix model.EnergyMix) model.InfrastructureRequirements {
	c := e.constants
	mw := watts / 1e6

	solarMW := mw * mix.Share(model.SourceSolar)
	// Overbuild nameplate capacity to compensate the solar capacity factor.
	solarCapacityMW := solarMW * c.SolarOverbuildFactor

	gasMW := mw * mix.Share(model.SourceGas)

	return model.InfrastructureRequirements{
		TotalMW: mw,

		Transformers: mw * c.TransformersPerMW,
		Switchgear:   mw * c.SwitchgearPerMW,

		SolarCapacityMW: solarCapacityMW,
		PVModules:       solarCapacityMW * c.PVModulesPerMWSolar,
		BatteryMWh:      solarCapacityMW * c.BatteryMWhPerMWSolar,

		GasMW:    gasMW,
		Turbines: gasMW * c.TurbinesPerMWGas,
	}
}
