package elekit

// OhmsLaw solves V = I·R for whichever of its three arguments carries the
// zero sentinel. Voltage is in Volts, current in Amperes, resistance in
// Ohms. The result is a single-entry map keyed by the solved-for quantity:
//
//	elekit.OhmsLaw(10, 0, 5)
//	// map[current:2]
func OhmsLaw(voltage, current, resistance float64) (map[string]float64, error) {
	if countZeros(voltage, current, resistance) != 1 {
		return nil, ErrInvalidArgument
	}

	switch {
	case voltage == 0:
		return map[string]float64{"voltage": current * resistance}, nil
	case current == 0:
		return map[string]float64{"current": voltage / resistance}, nil
	case resistance == 0:
		return map[string]float64{"resistance": voltage / current}, nil
	}
	return nil, ErrInvalidArgument
}

// Power computes dissipated power from any two of voltage, current and
// resistance, picking the formula that avoids the sentinel argument:
// I²·R when voltage is unknown, V²/R when current is unknown, V·I when
// resistance is unknown.
//
// The result is always keyed "power", regardless of which argument
// carried the sentinel.
func Power(voltage, current, resistance float64) (map[string]float64, error) {
	if countZeros(voltage, current, resistance) != 1 {
		return nil, ErrInvalidArgument
	}

	switch {
	case voltage == 0:
		return map[string]float64{"power": current * current * resistance}, nil
	case current == 0:
		return map[string]float64{"power": voltage * voltage / resistance}, nil
	case resistance == 0:
		return map[string]float64{"power": voltage * current}, nil
	}
	return nil, ErrInvalidArgument
}

// Resistance is an alias for OhmsLaw kept for callers of the historical
// name; the two are interchangeable.
func Resistance(voltage, current, resistance float64) (map[string]float64, error) {
	return OhmsLaw(voltage, current, resistance)
}
