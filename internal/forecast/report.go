package forecast

import (
	"fmt"
	"strings"

	"ai-energy-forecast/internal/model"
)

// bottleneckThreshold is the production-capacity fraction above which a
// quantity is called out as a supply bottleneck in the report.
const bottleneckThreshold = 0.1

// Summary renders a human-readable report for one scenario. Solar and gas
// sections appear only when the mix actually uses those sources.
func Summary(s model.Scenario) string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)

	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "Scenario: %.1f GW in %d\n", s.Watts/1e9, s.Year)
	fmt.Fprintf(&b, "Energy Mix: %s\n", formatMix(s.Mix))
	fmt.Fprintf(&b, "%s\n\n", rule)

	fmt.Fprintf(&b, "COMPUTE:\n")
	fmt.Fprintf(&b, "  Compute units: %.2e\n", s.Compute.UnitCount)
	fmt.Fprintf(&b, "  Total throughput: %.2e ops/s\n", s.Compute.TotalThroughput)
	fmt.Fprintf(&b, "  Watts per unit: %.1f\n\n", s.Compute.WattsPerUnit)

	fmt.Fprintf(&b, "CAPEX:\n")
	fmt.Fprintf(&b, "  Total CapEx: $%.2e\n", s.CapEx.TotalUSD)
	fmt.Fprintf(&b, "  Compute CapEx: $%.2e\n", s.CapEx.ComputeUSD)
	if s.Watts > 0 {
		fmt.Fprintf(&b, "  CapEx per Watt: $%.2f\n", s.CapEx.CostPerWatt)
	}
	if s.CapEx.NonComputeRatio > 1 {
		fmt.Fprintf(&b, "  Non-compute ratio: %.2f (exceeds compute cost)\n", s.CapEx.NonComputeRatio)
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "INFRASTRUCTURE:\n")
	fmt.Fprintf(&b, "  Transformers needed: %.0f\n", s.Infrastructure.Transformers)
	fmt.Fprintf(&b, "  Switchgear needed: %.0f\n", s.Infrastructure.Switchgear)
	if s.Mix.Share(model.SourceSolar) > 0 {
		fmt.Fprintf(&b, "  PV modules needed: %.2e\n", s.Infrastructure.PVModules)
		fmt.Fprintf(&b, "  Battery storage: %.0f MWh\n", s.Infrastructure.BatteryMWh)
	}
	if s.Mix.Share(model.SourceGas) > 0 {
		fmt.Fprintf(&b, "  Gas turbines needed: %.0f\n", s.Infrastructure.Turbines)
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "TOKENS:\n")
	fmt.Fprintf(&b, "  Tokens per second: %.2e\n", s.Tokens.TokensPerSecond)
	fmt.Fprintf(&b, "  Annual tokens: %.2e\n\n", s.Tokens.TokensPerYear)

	fmt.Fprintf(&b, "GLOBAL RESOURCE USAGE:\n")
	fmt.Fprintf(&b, "  %% of world electricity: %.1f%%\n", s.GlobalFractions.Electricity*100)
	fmt.Fprintf(&b, "  %% of world GDP (for CapEx): %.2f%%\n", s.GlobalFractions.GDP*100)

	if bottlenecks := Bottlenecks(s); len(bottlenecks) > 0 {
		fmt.Fprintf(&b, "\nPOTENTIAL BOTTLENECKS:\n")
		for _, bn := range bottlenecks {
			fmt.Fprintf(&b, "  ! %s (%.0f%% of global production)\n", bn.Name, bn.Fraction*100)
		}
	}

	return b.String()
}

// Bottleneck flags a quantity consuming a large share of global annual
// production capacity.
type Bottleneck struct {
	Name     string
	Fraction float64
}

// Bottlenecks lists production-capacity fractions above the report
// threshold, in a stable order.
func Bottlenecks(s model.Scenario) []Bottleneck {
	checks := []Bottleneck{
		{Name: "Transformers", Fraction: s.GlobalFractions.Transformers},
		{Name: "Switchgear", Fraction: s.GlobalFractions.Switchgear},
		{Name: "PV modules", Fraction: s.GlobalFractions.PVModules},
		{Name: "Batteries", Fraction: s.GlobalFractions.Batteries},
		{Name: "Turbines", Fraction: s.GlobalFractions.Turbines},
	}
	out := make([]Bottleneck, 0, len(checks))
	for _, c := range checks {
		if c.Fraction > bottleneckThreshold {
			out = append(out, c)
		}
	}
	return out
}

func formatMix(m model.EnergyMix) string {
	if len(m) == 0 {
		return "{}"
	}
	// Stable ordering: known sources first, anything else after.
	parts := make([]string, 0, len(m))
	for _, source := range []string{model.SourceSolar, model.SourceGas} {
		if share, ok := m[source]; ok {
			parts = append(parts, fmt.Sprintf("%s=%.2f", source, share))
		}
	}
	for source, share := range m {
		if source == model.SourceSolar || source == model.SourceGas {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%.2f", source, share))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
