package elekit

import "errors"

// ErrInvalidArgument is returned when the zero-sentinel count is wrong:
// the caller must mark the unknown quantity, and only that quantity, by
// passing it as 0.
var ErrInvalidArgument = errors.New("one and only one argument must be 0")

// NegativeValueError reports a physically meaningless negative input.
// Only the reactance solvers validate sign; Param names the offending
// parameter ("inductance", "capacitance", "frequency" or "reactance").
type NegativeValueError struct {
	Param string
}

func (e *NegativeValueError) Error() string {
	return e.Param + " cannot be negative"
}

// countZeros reports how many of the given values are exactly zero.
func countZeros(vals ...float64) int {
	n := 0
	for _, v := range vals {
		if v == 0 {
			n++
		}
	}
	return n
}
