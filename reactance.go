package elekit

import "math"

// IndReactance solves the inductive reactance relation
//
//	X_L = 2πfL
//
// for whichever of its three arguments carries the zero sentinel.
// Inductance is in Henries, frequency in Hertz, reactance in Ohms.
// The result is a single-entry map keyed by the solved-for quantity:
//
//	elekit.IndReactance(0.035, 1e3, 0)
//	// map[reactance:219.91...]
//
// All three arguments must be non-negative; a negative input returns a
// *NegativeValueError naming the parameter, checked in argument order
// before dispatch.
func IndReactance(inductance, frequency, reactance float64) (map[string]float64, error) {
	if countZeros(inductance, frequency, reactance) != 1 {
		return nil, ErrInvalidArgument
	}
	if inductance < 0 {
		return nil, &NegativeValueError{Param: "inductance"}
	}
	if frequency < 0 {
		return nil, &NegativeValueError{Param: "frequency"}
	}
	if reactance < 0 {
		return nil, &NegativeValueError{Param: "reactance"}
	}

	switch {
	case inductance == 0:
		return map[string]float64{"inductance": reactance / (2 * math.Pi * frequency)}, nil
	case frequency == 0:
		return map[string]float64{"frequency": reactance / (2 * math.Pi * inductance)}, nil
	case reactance == 0:
		return map[string]float64{"reactance": 2 * math.Pi * frequency * inductance}, nil
	}
	return nil, ErrInvalidArgument
}

// CapReactance solves the capacitive reactance relation
//
//	X_C = 1/(2πfC)
//
// for whichever of its three arguments carries the zero sentinel.
// Capacitance is in Farads, frequency in Hertz, reactance in Ohms.
//
// Validation mirrors IndReactance: the sentinel count gate first, then
// non-negativity of capacitance, frequency and reactance in that order.
func CapReactance(capacitance, frequency, reactance float64) (map[string]float64, error) {
	if countZeros(capacitance, frequency, reactance) != 1 {
		return nil, ErrInvalidArgument
	}
	if capacitance < 0 {
		return nil, &NegativeValueError{Param: "capacitance"}
	}
	if frequency < 0 {
		return nil, &NegativeValueError{Param: "frequency"}
	}
	if reactance < 0 {
		return nil, &NegativeValueError{Param: "reactance"}
	}

	switch {
	case capacitance == 0:
		return map[string]float64{"capacitance": 1 / (2 * math.Pi * frequency * reactance)}, nil
	case frequency == 0:
		return map[string]float64{"frequency": 1 / (2 * math.Pi * capacitance * reactance)}, nil
	case reactance == 0:
		return map[string]float64{"reactance": 1 / (2 * math.Pi * frequency * capacitance)}, nil
	}
	return nil, ErrInvalidArgument
}
