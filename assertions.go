package elekit

import (
	"errors"
	"math"
	"testing"
)

// AssertionConfig contains tolerances for solver assertions.
type AssertionConfig struct {
	// Relative tolerance for comparing solved values
	Tolerance float64
}

// DefaultAssertionConfig returns a tolerance suited to the closed-form
// solvers, which accumulate only a handful of rounding steps.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Tolerance: 1e-9,
	}
}

// MapSolver is the shape shared by the three-argument mapping solvers:
// IndReactance, CapReactance, Resonance, OhmsLaw and Resistance.
type MapSolver func(a, b, c float64) (map[string]float64, error)

// AssertSolvesTo verifies a mapping solver result is a single entry with
// the expected key and a value within tolerance.
func AssertSolvesTo(t *testing.T, got map[string]float64, key string, want float64, cfg AssertionConfig) {
	t.Helper()

	if len(got) != 1 {
		t.Fatalf("expected single-entry result, got %d entries: %v", len(got), got)
	}

	v, ok := got[key]
	if !ok {
		t.Fatalf("result missing key %q: %v", key, got)
	}

	if !withinTolerance(v, want, cfg.Tolerance) {
		t.Errorf("%s = %g, want %g (tolerance %g)", key, v, want, cfg.Tolerance)
		return
	}

	t.Logf("✓ %s = %g", key, v)
}

// AssertRoundTrip verifies the round-trip law for a mapping solver over
// the triple (a, b, unknown): solve for the third slot, then re-solve for
// each of the first two slots from the result. Both must reproduce the
// original input within tolerance.
//
// Mathematical property: for a relation c = f(a, b) with algebraic
// inverses, f⁻¹ applied to f's output recovers the input exactly up to
// rounding.
func AssertRoundTrip(t *testing.T, name string, solve MapSolver, a, b float64, cfg AssertionConfig) {
	t.Helper()

	fwd, err := solve(a, b, 0)
	if err != nil {
		t.Fatalf("%s(%g, %g, 0): %v", name, a, b, err)
	}
	c := onlyValue(fwd)

	back, err := solve(0, b, c)
	if err != nil {
		t.Fatalf("%s(0, %g, %g): %v", name, b, c, err)
	}
	if gotA := onlyValue(back); !withinTolerance(gotA, a, cfg.Tolerance) {
		t.Errorf("%s round trip: first slot re-solved to %g, want %g", name, gotA, a)
	}

	back, err = solve(a, 0, c)
	if err != nil {
		t.Fatalf("%s(%g, 0, %g): %v", name, a, c, err)
	}
	if gotB := onlyValue(back); !withinTolerance(gotB, b, cfg.Tolerance) {
		t.Errorf("%s round trip: second slot re-solved to %g, want %g", name, gotB, b)
	}

	t.Logf("✓ %s round trip holds for (%g, %g)", name, a, b)
}

// AssertNegativeValue verifies err is a *NegativeValueError naming the
// given parameter.
func AssertNegativeValue(t *testing.T, err error, param string) {
	t.Helper()

	var nv *NegativeValueError
	if !errors.As(err, &nv) {
		t.Fatalf("expected *NegativeValueError, got %v", err)
	}
	if nv.Param != param {
		t.Errorf("NegativeValueError names %q, want %q", nv.Param, param)
		return
	}

	t.Logf("✓ rejected negative %s: %v", param, err)
}

// AssertInvalidArgument verifies err is the sentinel-count violation.
func AssertInvalidArgument(t *testing.T, err error) {
	t.Helper()

	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	t.Logf("✓ rejected sentinel-count violation: %v", err)
}

// onlyValue returns the value of a single-entry result map, NaN otherwise.
func onlyValue(m map[string]float64) float64 {
	if len(m) != 1 {
		return math.NaN()
	}
	for _, v := range m {
		return v
	}
	return math.NaN()
}

// withinTolerance compares with relative tolerance, falling back to an
// absolute check when the reference is zero.
func withinTolerance(got, want, tol float64) bool {
	if want == 0 {
		return math.Abs(got) <= tol
	}
	return math.Abs(got-want) <= tol*math.Abs(want)
}
