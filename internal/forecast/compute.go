package forecast

import "ai-energy-forecast/internal/model"

// computeMetrics converts a power budget into compute units and theoretical
// throughput for the target year. watts must already be validated >= 0;
// zero watts yields zero units and zero throughput.
func (e *Engine) computeMetrics(watts float64, year int) model.ComputeMetrics {
	wattsPerUnit := e.curves.PowerPerUnit(year)
	unitCount := watts / wattsPerUnit

	throughputPerUnit := e.constants.BaseThroughputPerUnit * e.curves.ComputeDensity(year)

	return model.ComputeMetrics{
		UnitCount:         unitCount,
		WattsPerUnit:      wattsPerUnit,
		ThroughputPerUnit: throughputPerUnit,
		TotalThroughput:   unitCount * throughputPerUnit,
	}
}
