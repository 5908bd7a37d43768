// Package elekit provides solvers for the basic relations of passive
// electrical networks: Ohm's law, power, inductive and capacitive
// reactance, LC resonance, series impedance and resistive voltage
// dividers.
//
// # The zero sentinel
//
// Every solver takes all quantities of one physical relation as plain
// float64 arguments. Exactly one of them must be passed as 0: that is the
// unknown the solver computes. Passing zero for more (or fewer) than one
// argument returns ErrInvalidArgument.
//
// Solvers over a three-quantity relation return a single-entry map keyed
// by the solved-for quantity, so the caller always knows which inversion
// was applied:
//
//	x, err := elekit.IndReactance(35e-6, 1e3, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("X_L = %.4f Ω\n", x["reactance"])
//
// Impedance and Divider return a bare float64 instead; their result
// quantity follows from which argument carried the sentinel.
//
// # Units
//
// All quantities use base SI units: Henries, Farads, Hertz, Ohms, Volts,
// Amperes and Watts. No unit conversion is performed.
//
// # Validation
//
// The reactance solvers reject negative inputs with a *NegativeValueError
// naming the offending parameter. The remaining solvers validate only the
// sentinel count: degenerate inputs that divide by zero or take the square
// root of a negative number inside a formula propagate as ±Inf or NaN with
// a nil error, following ordinary floating-point semantics. Resonance with
// a negative inductance, for example, returns a NaN frequency rather than
// an error.
//
// # Concurrency
//
// All solvers are pure functions over their arguments. They hold no state
// and are safe to call from any number of goroutines without coordination.
//
// # Testing
//
// The Assert helpers validate solver behavior in tests, including the
// round-trip law: solving for the unknown and then re-solving for either
// known quantity from the result must reproduce the original input.
//
//	func TestCoil(t *testing.T) {
//	    cfg := elekit.DefaultAssertionConfig()
//	    elekit.AssertRoundTrip(t, "IndReactance", elekit.IndReactance, 35e-6, 1e3, cfg)
//	}
package elekit
