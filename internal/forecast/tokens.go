package forecast

import "ai-energy-forecast/internal/model"

// DefaultUtilization is the assumed average utilization when a scenario does
// not specify one.
const DefaultUtilization = 0.5

// secondsPerYear uses the Julian year (365.25 days).
const secondsPerYear = 365.25 * 24 * 3600

// tokenOutput estimates token generation from the unit count at the given
// utilization. Utilization is validated to [0,1] by the runner before this
// is reached.
func (e *Engine) tokenOutput(unitCount, utilization float64) model.TokenOutput {
	effective := unitCount * utilization
	perSecond := effective * e.constants.TokensPerSecondPerUnit

	return model.TokenOutput{
		Utilization:        utilization,
		EffectiveUnitCount: effective,
		TokensPerSecond:    perSecond,
		TokensPerYear:      perSecond * secondsPerYear,
	}
}
