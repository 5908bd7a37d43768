package elekit

// Divider solves the resistive voltage divider
//
//	      v_in
//	       │
//	    [resHigh]
//	       ├──── v_out
//	    [resLow]
//	       │
//	      GND
//
// governed by v_out = v_in · resLow/(resHigh + resLow), with the zero
// sentinel marking which of the four quantities to solve for. Resistances
// are in Ohms, voltages in Volts. Dispatch checks vIn, vOut, resHigh and
// resLow in that order.
//
// Degenerate networks are not guarded: solving resLow with vIn == vOut
// divides by zero and returns ±Inf per floating-point semantics.
func Divider(resHigh, resLow, vIn, vOut float64) (float64, error) {
	if countZeros(resHigh, resLow, vIn, vOut) != 1 {
		return 0, ErrInvalidArgument
	}

	switch {
	case vIn == 0:
		return vOut * (resLow + resHigh) / resLow, nil
	case vOut == 0:
		return resLow / (resHigh + resLow) * vIn, nil
	case resHigh == 0:
		return (resLow*vIn)/vOut - resLow, nil
	case resLow == 0:
		return (resHigh * vOut) / (vIn - vOut), nil
	}
	return 0, ErrInvalidArgument
}
