package elekit

import (
	"math"
	"testing"
)

func TestResonance_SolvesEachQuantity(t *testing.T) {
	cfg := DefaultAssertionConfig()

	// 1 µF with 1 mH resonates near 5.03 kHz
	f0 := math.Sqrt(1 / (4 * math.Pi * math.Pi * 1e-3 * 1e-6))

	got, err := Resonance(1e-6, 1e-3, 0)
	if err != nil {
		t.Fatalf("solving frequency: %v", err)
	}
	AssertSolvesTo(t, got, "frequency", f0, cfg)

	got, err = Resonance(0, 1e-3, f0)
	if err != nil {
		t.Fatalf("solving capacitance: %v", err)
	}
	AssertSolvesTo(t, got, "capacitance", 1e-6, cfg)

	got, err = Resonance(1e-6, 0, f0)
	if err != nil {
		t.Fatalf("solving inductance: %v", err)
	}
	AssertSolvesTo(t, got, "inductance", 1e-3, cfg)
}

func TestResonance_KnownFrequency(t *testing.T) {
	got, err := Resonance(1e-6, 1e-3, 0)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(got["frequency"]-5032.921) > 0.001 {
		t.Errorf("frequency = %g, want ≈5032.921", got["frequency"])
	}
}

func TestResonance_RoundTrip(t *testing.T) {
	cfg := DefaultAssertionConfig()

	AssertRoundTrip(t, "Resonance", Resonance, 1e-6, 1e-3, cfg)
	AssertRoundTrip(t, "Resonance", Resonance, 220e-12, 10e-6, cfg)
}

func TestResonance_NoSignValidation(t *testing.T) {
	// Resonance deliberately skips the negative checks the reactance
	// solvers perform: a negative inductance reaches the square root and
	// surfaces as NaN with a nil error.
	got, err := Resonance(1e-6, -1e-3, 0)
	if err != nil {
		t.Fatalf("expected nil error for negative inductance, got %v", err)
	}
	if !math.IsNaN(got["frequency"]) {
		t.Errorf("frequency = %g, want NaN", got["frequency"])
	}

	t.Logf("✓ negative inductance propagates as NaN, not an error")
}

func TestResonance_SentinelGate(t *testing.T) {
	cases := []struct {
		name    string
		c, l, f float64
	}{
		{"no zeros", 1e-6, 1e-3, 5000},
		{"two zeros", 1e-6, 0, 0},
		{"all zeros", 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resonance(tc.c, tc.l, tc.f)
			AssertInvalidArgument(t, err)
		})
	}
}
