package elekit

import (
	"math"
	"testing"
)

func TestImpedance_ResistanceBranch(t *testing.T) {
	// With R carried as the sentinel the magnitude reduces to |X_L − X_C|.
	got, err := Impedance(0, 50, 30)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-20) > 1e-12 {
		t.Errorf("|Z| = %g, want 20", got)
	}

	got, err = Impedance(0, 30, 50)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-20) > 1e-12 {
		t.Errorf("|Z| = %g, want 20 (magnitude is sign-free)", got)
	}
}

func TestImpedance_ReactanceBranchesReturnZero(t *testing.T) {
	// The reactance branches return the constant 0 regardless of the other
	// inputs. Pinned here so the behavior cannot change silently.
	for _, tc := range [][3]float64{
		{10, 0, 30},
		{10, 50, 0},
		{1e6, 0, 1e-6},
	} {
		got, err := Impedance(tc[0], tc[1], tc[2])
		if err != nil {
			t.Fatalf("Impedance%v: %v", tc, err)
		}
		if got != 0 {
			t.Errorf("Impedance%v = %g, want 0", tc, got)
		}
	}
}

func TestImpedance_SentinelGate(t *testing.T) {
	_, err := Impedance(10, 50, 30)
	AssertInvalidArgument(t, err)

	_, err = Impedance(0, 0, 30)
	AssertInvalidArgument(t, err)

	_, err = Impedance(0, 0, 0)
	AssertInvalidArgument(t, err)
}
