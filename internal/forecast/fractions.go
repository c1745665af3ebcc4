package forecast

import "ai-energy-forecast/internal/model"

// globalFractions compares scenario quantities against the fixed world
// reference totals. All divisors are validated strictly positive, so no
// guard is needed here (unlike the per-watt ratio in capex).
func (e *Engine) globalFractions(watts float64, capex model.CapExBreakdown, infra model.InfrastructureRequirements) model.GlobalFractions {
	c := e.constants

	// Continuous draw over a Julian year, in Wh.
	annualWh := watts * 365.25 * 24

	return model.GlobalFractions{
		Electricity: annualWh / c.WorldElectricityWhPerYear,
		FinalEnergy: annualWh / c.WorldFinalEnergyWhPerYear,
		GDP:         capex.TotalUSD / c.WorldGDPUSD,

		Transformers: infra.Transformers / c.TransformerProductionPerYear,
		Switchgear:   infra.Switchgear / c.SwitchgearProductionPerYear,
		PVModules:    infra.PVModules / c.PVModuleProductionPerYear,
		Batteries:    infra.BatteryMWh / (c.BatteryProductionGWhPerYear * 1000), // GWh -> MWh
		Turbines:     infra.Turbines / c.TurbineProductionPerYear,
	}
}
