package l2math

import (
	stdmath "math"
	"testing"
)

func FuzzFrexpLdexp(f *testing.F) {
	for _, x := range []float64{1, -3.5, 0x1p-1074, 0x1p-1022, stdmath.MaxFloat64, 0.1} {
		f.Add(x)
	}
	f.Fuzz(func(t *testing.T, x float64) {
		if stdmath.IsNaN(x) || stdmath.IsInf(x, 0) || x == 0 {
			return
		}
		frac, exp := Frexp(x)
		if a := stdmath.Abs(frac); a < 0.5 || a >= 1 {
			t.Fatalf("Frexp(%v) fraction %v outside [0.5, 1)", x, frac)
		}
		if got := Ldexp(frac, exp); got != x {
			t.Fatalf("Ldexp(Frexp(%v)) = %v", x, got)
		}
	})
}

func FuzzModf(f *testing.F) {
	for _, x := range []float64{1.25, -7.5, 0x1p60, -0.0, 1e-310} {
		f.Add(x)
	}
	f.Fuzz(func(t *testing.T, x float64) {
		frac, integral := Modf(x)
		if stdmath.IsNaN(x) {
			if !stdmath.IsNaN(frac) || !stdmath.IsNaN(integral) {
				t.Fatalf("Modf(NaN) = (%v, %v)", frac, integral)
			}
			return
		}
		if stdmath.IsInf(x, 0) {
			if frac != 0 || integral != x {
				t.Fatalf("Modf(%v) = (%v, %v)", x, frac, integral)
			}
			return
		}
		if frac+integral != x || integral != stdmath.Trunc(x) {
			t.Fatalf("Modf(%v) = (%v, %v)", x, frac, integral)
		}
		if stdmath.Signbit(frac) != stdmath.Signbit(x) {
			t.Fatalf("Modf(%v) fraction %v has the wrong sign", x, frac)
		}
	})
}

func FuzzRemquo(f *testing.F) {
	f.Add(5.0, 3.0)
	f.Add(-7.25, 0.5)
	f.Add(1e300, 1e-300)
	f.Fuzz(func(t *testing.T, x, y float64) {
		rem, _ := Remquo(x, y)
		want := stdmath.Remainder(x, y)
		if stdmath.IsNaN(want) {
			if !stdmath.IsNaN(rem) {
				t.Fatalf("Remquo(%v, %v) = %v, want NaN", x, y, rem)
			}
			return
		}
		if stdmath.Float64bits(rem) != stdmath.Float64bits(want) {
			t.Fatalf("Remquo(%v, %v) = %v, want %v", x, y, rem, want)
		}
		if stdmath.Abs(rem) > stdmath.Abs(y)/2 {
			t.Fatalf("Remquo(%v, %v) remainder %v exceeds |y|/2", x, y, rem)
		}
	})
}

func FuzzFmod(f *testing.F) {
	f.Add(7.0, 3.0)
	f.Add(-1e300, 3e-300)
	f.Fuzz(func(t *testing.T, x, y float64) {
		expectIdentical64(t, "Fmod", x, Fmod(x, y), stdmath.Mod(x, y))
	})
}

func FuzzSqrt(f *testing.F) {
	f.Add(2.0)
	f.Add(0x1p-1074)
	f.Fuzz(func(t *testing.T, x float64) {
		expectIdentical64(t, "sqrt", x, sqrt(x), stdmath.Sqrt(x))
	})
}
