package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ai-energy-forecast/internal/analysis"
	"ai-energy-forecast/internal/config"
	"ai-energy-forecast/internal/forecast"
	"ai-energy-forecast/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "scenario":
		cmdScenario(os.Args[2:])
	case "matrix":
		cmdMatrix(os.Args[2:])
	case "curves":
		cmdCurves(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli scenario --watts-gw 100 --year 2030 --solar 0.3 --gas 0.7 [--util 0.5] [--config constants.yaml]")
	fmt.Println("  cli matrix --out results/matrix.csv [--rank]")
	fmt.Println("  cli curves --from 2025 --to 2040")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - scenario prints a full report for one (power, year, mix) input")
	fmt.Println("  - matrix sweeps power x year x mix presets and writes CSV")
	fmt.Println("  - curves prints the efficiency curves per year")
}

func cmdScenario(args []string) {
	fs := flag.NewFlagSet("scenario", flag.ExitOnError)
	wattsGW := fs.Float64("watts-gw", 100, "Power budget in GW")
	year := fs.Int("year", 2030, "Target year")
	solar := fs.Float64("solar", 0.5, "Solar share of the energy mix")
	gas := fs.Float64("gas", 0.5, "Gas share of the energy mix")
	util := fs.Float64("util", forecast.DefaultUtilization, "Average utilization [0,1]")
	cfgPath := fs.String("config", "", "Optional YAML constants overrides")
	_ = fs.Parse(args)

	engine := buildEngine(*cfgPath)

	mix := model.EnergyMix{model.SourceSolar: *solar, model.SourceGas: *gas}
	s, err := engine.RunWithUtilization(*wattsGW*1e9, *year, mix, *util)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Print(forecast.Summary(s))
}

func cmdMatrix(args []string) {
	fs := flag.NewFlagSet("matrix", flag.ExitOnError)
	outPath := fs.String("out", "results/matrix.csv", "Output CSV path")
	powers := fs.String("powers-gw", "", "Comma-separated power levels in GW (default sweep if empty)")
	years := fs.String("years", "", "Comma-separated years (default sweep if empty)")
	rank := fs.Bool("rank", false, "Sort rows most-feasible first")
	cfgPath := fs.String("config", "", "Optional YAML constants overrides")
	_ = fs.Parse(args)

	engine := buildEngine(*cfgPath)

	spec := analysis.DefaultMatrixSpec()
	if *powers != "" {
		spec.PowersGW = parseFloats(*powers)
	}
	if *years != "" {
		spec.Years = parseInts(*years)
	}

	rows, err := analysis.BuildMatrix(engine, spec)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *rank {
		analysis.SortByFeasibility(rows)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := analysis.WriteMatrixCSV(*outPath, rows); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(rows), *outPath)

	// Electricity thresholds per year are the headline finding of a sweep.
	for _, year := range spec.Years {
		gw, ok, err := analysis.ElectricityThreshold(engine, year, spec.PowersGW, model.EnergyMix{
			model.SourceSolar: 0.5,
			model.SourceGas:   0.5,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if ok {
			fmt.Printf("Year %d: ~%.0f GW uses 100%% of current world electricity\n", year, gw)
		}
	}
}

func cmdCurves(args []string) {
	fs := flag.NewFlagSet("curves", flag.ExitOnError)
	from := fs.Int("from", 2025, "First year")
	to := fs.Int("to", 2040, "Last year")
	cfgPath := fs.String("config", "", "Optional YAML constants overrides")
	_ = fs.Parse(args)

	engine := buildEngine(*cfgPath)
	curves := engine.Curves()

	fmt.Printf("%-6s %-16s %-14s %-14s\n", "year", "density", "watts/unit", "cost/unit")
	for year := *from; year <= *to; year++ {
		fmt.Printf("%-6d %-16.4f %-14.2f %-14.2f\n",
			year,
			curves.ComputeDensity(year),
			curves.PowerPerUnit(year),
			curves.CostPerUnit(year),
		)
	}
}

func buildEngine(cfgPath string) *forecast.Engine {
	constants := model.DefaultConstants()
	if cfgPath != "" {
		var err error
		constants, err = config.Load(cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	engine, err := forecast.New(constants)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return engine
}

func parseFloats(s string) []float64 {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid number %q\n", p)
			os.Exit(2)
		}
		out = append(out, v)
	}
	return out
}

func parseInts(s string) []int {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid year %q\n", p)
			os.Exit(2)
		}
		out = append(out, v)
	}
	return out
}
