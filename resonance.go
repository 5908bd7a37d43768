package elekit

import "math"

// Resonance solves the LC resonance relation
//
//	f₀ = 1/(2π√(LC))
//
// for whichever of its three arguments carries the zero sentinel.
// Capacitance is in Farads, inductance in Henries, frequency in Hertz.
//
//	elekit.Resonance(1e-6, 1e-3, 0)
//	// map[frequency:5032.92...]
//
// Unlike the reactance solvers, Resonance performs no sign validation:
// negative inputs reach the formulas and surface as NaN (negative square
// root) or negative results per floating-point semantics.
func Resonance(capacitance, inductance, frequency float64) (map[string]float64, error) {
	if countZeros(capacitance, inductance, frequency) != 1 {
		return nil, ErrInvalidArgument
	}

	switch {
	case capacitance == 0:
		omega := 2 * math.Pi * frequency
		return map[string]float64{"capacitance": 1 / (omega * omega * inductance)}, nil
	case inductance == 0:
		omega := 2 * math.Pi * frequency
		return map[string]float64{"inductance": 1 / (omega * omega * capacitance)}, nil
	case frequency == 0:
		return map[string]float64{"frequency": math.Sqrt(1 / (4 * math.Pi * math.Pi * inductance * capacitance))}, nil
	}
	return nil, ErrInvalidArgument
}
