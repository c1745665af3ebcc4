package analysis

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

// WriteMatrixCSV writes matrix rows to a CSV file at path.
func WriteMatrixCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteMatrix(f, rows)
}

// WriteMatrix writes matrix rows as CSV to w.
func WriteMatrix(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"power_gw",
		"year",
		"energy_mix",
		"unit_count",
		"total_throughput",
		"capex_usd",
		"capex_per_watt",
		"pct_world_electricity",
		"pct_world_gdp",
		"transformers",
		"pv_modules",
		"turbines",
		"annual_tokens",
		"feasibility",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		rec := []string{
			fmtFloat(r.PowerGW),
			strconv.Itoa(r.Year),
			r.MixName,
			fmtFloat(r.UnitCount),
			fmtFloat(r.TotalThroughput),
			fmtFloat(r.CapExUSD),
			fmtFloat(r.CapExPerWatt),
			fmtFloat(r.PctWorldElectricity),
			fmtFloat(r.PctWorldGDP),
			fmtFloat(r.Transformers),
			fmtFloat(r.PVModules),
			fmtFloat(r.Turbines),
			fmtFloat(r.AnnualTokens),
			fmtFloat(r.Feasibility),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	return cw.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
