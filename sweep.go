package elekit

import "math"

// SweepPoint is one sample of a reactance-versus-frequency sweep.
type SweepPoint struct {
	Frequency  float64 // Hz
	Inductive  float64 // X_L = 2πfL, Ohms
	Capacitive float64 // X_C = 1/(2πfC), Ohms
}

// SweepConfig controls the frequency range of a reactance sweep.
type SweepConfig struct {
	MinHz  float64 // First sampled frequency
	MaxHz  float64 // Last sampled frequency (inclusive)
	StepHz float64 // Frequency increment
}

// DefaultSweepConfig returns an audio-band sweep (20 Hz to 20 kHz).
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		MinHz:  20,
		MaxHz:  20000,
		StepHz: 20,
	}
}

// SweepReactance samples X_L and X_C for a series LC network across the
// configured frequency range. As frequency rises X_L grows linearly while
// X_C falls, so the two curves cross exactly once, at the network's
// resonance frequency.
//
// Returns nil for a non-positive step or an inverted range.
func SweepReactance(inductance, capacitance float64, cfg SweepConfig) []SweepPoint {
	if cfg.StepHz <= 0 || cfg.MaxHz < cfg.MinHz {
		return nil
	}

	points := make([]SweepPoint, 0, int((cfg.MaxHz-cfg.MinHz)/cfg.StepHz)+1)
	for f := cfg.MinHz; f <= cfg.MaxHz; f += cfg.StepHz {
		points = append(points, SweepPoint{
			Frequency:  f,
			Inductive:  2 * math.Pi * f * inductance,
			Capacitive: 1 / (2 * math.Pi * f * capacitance),
		})
	}
	return points
}
