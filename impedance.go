package elekit

import "math"

// Impedance evaluates the series impedance magnitude
//
//	|Z| = √(R² + (X_L − X_C)²)
//
// with the zero sentinel marking the unknown. Only the resistance branch
// computes the magnitude (with R = 0 it reduces to |X_L − X_C|); when the
// inductive or capacitive reactance carries the sentinel the function
// returns 0 unconditionally. Callers relying on those branches get that
// constant, not a solved value.
func Impedance(resistance, indReactance, capReactance float64) (float64, error) {
	if countZeros(resistance, indReactance, capReactance) != 1 {
		return 0, ErrInvalidArgument
	}

	switch {
	case resistance == 0:
		x := indReactance - capReactance
		return math.Sqrt(resistance*resistance + x*x), nil
	case indReactance == 0:
		return 0, nil
	case capReactance == 0:
		return 0, nil
	}
	return 0, ErrInvalidArgument
}
