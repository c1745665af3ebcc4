package main

import (
	"flag"
	"fmt"
	"os"

	"ai-energy-forecast/internal/config"
	"ai-energy-forecast/internal/forecast"
	"ai-energy-forecast/internal/model"
)

// Demo:
// - Run one detailed scenario (100 GW in 2030, 30/70 solar/gas)
// - Compare power levels in 2035
// - Show how the energy mix drives generation-side infrastructure
func main() {
	cfgPath := flag.String("config", "", "Path to YAML constants overrides (optional)")
	flag.Parse()

	constants := model.DefaultConstants()
	if *cfgPath != "" {
		var err error
		constants, err = config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
	}

	engine, err := forecast.New(constants)
	if err != nil {
		panic(err)
	}

	fmt.Println("AI Energy and Compute Forecast Model")
	fmt.Println(rule())

	scenario2030, err := engine.Run(100e9, 2030, model.EnergyMix{
		model.SourceSolar: 0.3,
		model.SourceGas:   0.7,
	})
	if err != nil {
		panic(err)
	}
	fmt.Print(forecast.Summary(scenario2030))

	fmt.Println()
	fmt.Println(rule())
	fmt.Println("COMPARISON: Different Power Levels in 2035")
	fmt.Println(rule())

	for _, gw := range []float64{50, 200, 1000} {
		s, err := engine.Run(gw*1e9, 2035, model.EnergyMix{
			model.SourceSolar: 0.5,
			model.SourceGas:   0.5,
		})
		if err != nil {
			panic(err)
		}
		fmt.Printf("\n%.0f GW: %.2e units, $%.2e CapEx, %.1f%% of world electricity\n",
			gw,
			s.Compute.UnitCount,
			s.CapEx.TotalUSD,
			s.GlobalFractions.Electricity*100,
		)
	}

	fmt.Println()
	fmt.Println(rule())
	fmt.Println("ENERGY MIX IMPLICATIONS (1000 GW in 2035)")
	fmt.Println(rule())

	for _, tc := range []struct {
		name string
		mix  model.EnergyMix
	}{
		{"Pure Solar", model.EnergyMix{model.SourceSolar: 1.0, model.SourceGas: 0.0}},
		{"Pure Gas", model.EnergyMix{model.SourceSolar: 0.0, model.SourceGas: 1.0}},
		{"50/50 Mix", model.EnergyMix{model.SourceSolar: 0.5, model.SourceGas: 0.5}},
	} {
		s, err := engine.Run(1000e9, 2035, tc.mix)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%-12s %.2e PV modules, %.0f turbines\n",
			tc.name, s.Infrastructure.PVModules, s.Infrastructure.Turbines)
	}

	os.Exit(0)
}

func rule() string {
	return "============================================================"
}
