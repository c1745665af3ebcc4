package config

import (
	"fmt"
	"os"

	"ai-energy-forecast/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). Every field is an
// override on the stock constants; zero values mean "keep the default", so
// a config file only names what it tunes.
type Config struct {
	Constants ConstantsConfig `yaml:"constants"`
	Curves    CurvesConfig    `yaml:"curves"`
}

type ConstantsConfig struct {
	BaseYear              int     `yaml:"base_year"`
	BaseThroughputPerUnit float64 `yaml:"base_throughput_per_unit"`

	TokensPerSecondPerUnit float64 `yaml:"tokens_per_second_per_unit"`

	WorldElectricityWhPerYear float64 `yaml:"world_electricity_wh_per_year"`
	WorldGDPUSD               float64 `yaml:"world_gdp_usd"`
	WorldFinalEnergyWhPerYear float64 `yaml:"world_final_energy_wh_per_year"`

	TransformersPerMW    float64 `yaml:"transformers_per_mw"`
	SwitchgearPerMW      float64 `yaml:"switchgear_per_mw"`
	PVModulesPerMWSolar  float64 `yaml:"pv_modules_per_mw_solar"`
	BatteryMWhPerMWSolar float64 `yaml:"battery_mwh_per_mw_solar"`
	TurbinesPerMWGas     float64 `yaml:"turbines_per_mw_gas"`
	SolarOverbuildFactor float64 `yaml:"solar_overbuild_factor"`

	TransformerProductionPerYear float64 `yaml:"transformer_production_per_year"`
	SwitchgearProductionPerYear  float64 `yaml:"switchgear_production_per_year"`
	PVModuleProductionPerYear    float64 `yaml:"pv_module_production_per_year"`
	BatteryProductionGWhPerYear  float64 `yaml:"battery_production_gwh_per_year"`
	TurbineProductionPerYear     float64 `yaml:"turbine_production_per_year"`
}

type CurvesConfig struct {
	StartYear   int `yaml:"start_year"`
	HorizonYear int `yaml:"horizon_year"`

	DensityRateStart   float64 `yaml:"density_rate_start"`
	DensityRateHorizon float64 `yaml:"density_rate_horizon"`

	BaseWattsPerUnit float64 `yaml:"base_watts_per_unit"`
	PowerRateStart   float64 `yaml:"power_rate_start"`
	PowerRateHorizon float64 `yaml:"power_rate_horizon"`

	BaseCostPerUnit float64 `yaml:"base_cost_per_unit"`
	CostRateStart   float64 `yaml:"cost_rate_start"`
	CostRateHorizon float64 `yaml:"cost_rate_horizon"`
}

// Load reads a YAML config, applies it over the default constants and
// validates the result.
func Load(path string) (model.Constants, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Constants{}, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return model.Constants{}, err
	}
	constants := c.Apply(model.DefaultConstants())
	if err := constants.Validate(); err != nil {
		return model.Constants{}, fmt.Errorf("config %s: %w", path, err)
	}
	return constants, nil
}

// Apply overlays non-zero fields onto base.
func (c Config) Apply(base model.Constants) model.Constants {
	out := base
	k := c.Constants
	if k.BaseYear != 0 {
		out.BaseYear = k.BaseYear
	}
	if k.BaseThroughputPerUnit != 0 {
		out.BaseThroughputPerUnit = k.BaseThroughputPerUnit
	}
	if k.TokensPerSecondPerUnit != 0 {
		out.TokensPerSecondPerUnit = k.TokensPerSecondPerUnit
	}
	if k.WorldElectricityWhPerYear != 0 {
		out.WorldElectricityWhPerYear = k.WorldElectricityWhPerYear
	}
	if k.WorldGDPUSD != 0 {
		out.WorldGDPUSD = k.WorldGDPUSD
	}
	if k.WorldFinalEnergyWhPerYear != 0 {
		out.WorldFinalEnergyWhPerYear = k.WorldFinalEnergyWhPerYear
	}
	if k.TransformersPerMW != 0 {
		out.TransformersPerMW = k.TransformersPerMW
	}
	if k.SwitchgearPerMW != 0 {
		out.SwitchgearPerMW = k.SwitchgearPerMW
	}
	if k.PVModulesPerMWSolar != 0 {
		out.PVModulesPerMWSolar = k.PVModulesPerMWSolar
	}
	if k.BatteryMWhPerMWSolar != 0 {
		out.BatteryMWhPerMWSolar = k.BatteryMWhPerMWSolar
	}
	if k.TurbinesPerMWGas != 0 {
		out.TurbinesPerMWGas = k.TurbinesPerMWGas
	}
	if k.SolarOverbuildFactor != 0 {
		out.SolarOverbuildFactor = k.SolarOverbuildFactor
	}
	if k.TransformerProductionPerYear != 0 {
		out.TransformerProductionPerYear = k.TransformerProductionPerYear
	}
	if k.SwitchgearProductionPerYear != 0 {
		out.SwitchgearProductionPerYear = k.SwitchgearProductionPerYear
	}
	if k.PVModuleProductionPerYear != 0 {
		out.PVModuleProductionPerYear = k.PVModuleProductionPerYear
	}
	if k.BatteryProductionGWhPerYear != 0 {
		out.BatteryProductionGWhPerYear = k.BatteryProductionGWhPerYear
	}
	if k.TurbineProductionPerYear != 0 {
		out.TurbineProductionPerYear = k.TurbineProductionPerYear
	}

	p := c.Curves
	if p.StartYear != 0 {
		out.Curves.StartYear = p.StartYear
	}
	if p.HorizonYear != 0 {
		out.Curves.HorizonYear = p.HorizonYear
	}
	if p.DensityRateStart != 0 {
		out.Curves.DensityRateStart = p.DensityRateStart
	}
	if p.DensityRateHorizon != 0 {
		out.Curves.DensityRateHorizon = p.DensityRateHorizon
	}
	if p.BaseWattsPerUnit != 0 {
		out.Curves.BaseWattsPerUnit = p.BaseWattsPerUnit
	}
	if p.PowerRateStart != 0 {
		out.Curves.PowerRateStart = p.PowerRateStart
	}
	if p.PowerRateHorizon != 0 {
		out.Curves.PowerRateHorizon = p.PowerRateHorizon
	}
	if p.BaseCostPerUnit != 0 {
		out.Curves.BaseCostPerUnit = p.BaseCostPerUnit
	}
	if p.CostRateStart != 0 {
		out.Curves.CostRateStart = p.CostRateStart
	}
	if p.CostRateHorizon != 0 {
		out.Curves.CostRateHorizon = p.CostRateHorizon
	}

	return out
}
