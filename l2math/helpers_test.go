package l2math

import (
	stdmath "math"
	"math/rand"
	"testing"

	"github.com/DranikiRobotics/arc/internal/floatcmp"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// uniform returns n values spread over [lo, hi).
func uniform(rng *rand.Rand, n int, lo, hi float64) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*rng.Float64()
	}
	return xs
}

func uniform32(rng *rand.Rand, n int, lo, hi float32) []float32 {
	xs := make([]float32, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*rng.Float32()
	}
	return xs
}

// withProfile runs the rest of the test under profile p.
func withProfile(tb testing.TB, p Profile) {
	tb.Helper()
	saved := currentProfile
	currentProfile = p
	tb.Cleanup(func() { currentProfile = saved })
}

func expectIdentical64(t *testing.T, name string, x, got, want float64) {
	t.Helper()
	if !floatcmp.Identical(got, want) {
		t.Errorf("%s(%v) = %v (%#016x), want %v (%#016x)",
			name, x, got, stdmath.Float64bits(got), want, stdmath.Float64bits(want))
	}
}

func expectIdentical32(t *testing.T, name string, x, got, want float32) {
	t.Helper()
	if !floatcmp.Identical(got, want) {
		t.Errorf("%s(%v) = %v (%#08x), want %v (%#08x)",
			name, x, got, stdmath.Float32bits(got), want, stdmath.Float32bits(want))
	}
}

func expectClose64(t *testing.T, name string, x, got, want float64, ulps uint64, abs float64) {
	t.Helper()
	if !floatcmp.Close(got, want, ulps, abs) {
		t.Errorf("%s(%v) = %v, want %v (%d ulps apart, limit %d)",
			name, x, got, want, floatcmp.ULPDistance(got, want), ulps)
	}
}

func expectClose32(t *testing.T, name string, x, got, want float32, ulps uint64, abs float64) {
	t.Helper()
	if !floatcmp.Close(got, want, ulps, abs) {
		t.Errorf("%s(%v) = %v, want %v (%d ulps apart, limit %d)",
			name, x, got, want, floatcmp.ULPDistance(got, want), ulps)
	}
}

func negZero() float64 { return stdmath.Copysign(0, -1) }

func negZero32() float32 { return float32(stdmath.Copysign(0, -1)) }

func isNegZero(x float64) bool { return x == 0 && stdmath.Signbit(x) }
