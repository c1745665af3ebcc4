package model

// Energy source names. Keep these values stable; they are used as mix keys
// in configs, JSON requests and CSV output.
const (
	SourceSolar = "solar"
	SourceGas   = "gas"
)

// EnergyMix maps an energy source name to its share of the power supply.
// Shares are non-negative; they need not sum to 1 until Normalize is called.
// Unknown sources are allowed and simply carry no infrastructure model.
type EnergyMix map[string]float64

// Validate rejects negative shares. A mix summing to zero is legal (the
// degenerate all-zero mix produces zero generation-side infrastructure).
func (m EnergyMix) Validate() error {
	for source, share := range m {
		if share < 0 {
			return errInvalidf("energy mix share for %q must be >= 0, got %v", source, share)
		}
	}
	return nil
}

// Total returns the sum of all shares.
func (m EnergyMix) Total() float64 {
	t := 0.0
	for _, share := range m {
		t += share
	}
	return t
}

// Share returns the share for a source, defaulting to 0 for unknown keys.
func (m EnergyMix) Share(source string) float64 {
	return m[source]
}

// Normalize returns a fresh mix whose shares sum to 1. If the input sums to
// zero the mix is returned unchanged (still a copy); callers treat that as
// the degenerate all-zero mix, not an error.
func (m EnergyMix) Normalize() EnergyMix {
	out := m.Clone()
	total := m.Total()
	if total == 0 {
		return out
	}
	for source, share := range out {
		out[source] = share / total
	}
	return out
}

// Clone returns an independent copy so scenarios never share map storage.
func (m EnergyMix) Clone() EnergyMix {
	out := make(EnergyMix, len(m))
	for source, share := range m {
		out[source] = share
	}
	return out
}
