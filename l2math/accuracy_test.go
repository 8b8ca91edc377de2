package l2math

import (
	stdmath "math"
	"testing"
)

// unaryCase compares a float64 kernel against the Go standard library over
// a sampled interval.
type unaryCase struct {
	name   string
	got    func(float64) float64
	want   func(float64) float64
	lo, hi float64
	ulps   uint64
	abs    float64
}

func TestUnary_AgainstStdlib(t *testing.T) {
	tests := []unaryCase{
		{"Sqrt", Sqrt, stdmath.Sqrt, 0, 1e10, 0, 0},
		{"Floor", Floor, stdmath.Floor, -1e6, 1e6, 0, 0},
		{"Ceil", Ceil, stdmath.Ceil, -1e6, 1e6, 0, 0},
		{"Trunc", Trunc, stdmath.Trunc, -1e6, 1e6, 0, 0},
		{"Round", Round, stdmath.Round, -1e6, 1e6, 0, 0},
		{"Rint", Rint, stdmath.RoundToEven, -1e6, 1e6, 0, 0},
		{"Exp", Exp, stdmath.Exp, -700, 700, 2, 0},
		{"Log", Log, stdmath.Log, 1e-300, 1e300, 2, 0},
		{"Log_near_one", Log, stdmath.Log, 0.5, 2, 2, 0},
		{"Expm1", Expm1, stdmath.Expm1, -30, 30, 2, 0},
		{"Log1p", Log1p, stdmath.Log1p, -0.9, 100, 2, 0},
		{"Cbrt", Cbrt, stdmath.Cbrt, -1e6, 1e6, 2, 0},
		{"Erf", Erf, stdmath.Erf, -6, 6, 2, 1e-16},
		{"Erfc", Erfc, stdmath.Erfc, -5, 26, 4, 1e-300},
		{"Sin", Sin, stdmath.Sin, -10, 10, 4, 4e-15},
		{"Cos", Cos, stdmath.Cos, -10, 10, 4, 4e-15},
		{"Tan", Tan, stdmath.Tan, -1.5, 1.5, 8, 4e-15},
		{"Asin", Asin, stdmath.Asin, -1, 1, 4, 4e-15},
		{"Acos", Acos, stdmath.Acos, -1, 1, 4, 4e-15},
		{"Atan", Atan, stdmath.Atan, -100, 100, 4, 4e-15},
		{"Exp2", Exp2, stdmath.Exp2, -1000, 1000, 4, 0},
		{"Log2", Log2, stdmath.Log2, 1e-10, 1e10, 4, 4e-15},
		{"Log10", Log10, stdmath.Log10, 1e-10, 1e10, 4, 4e-15},
		{"Sinh", Sinh, stdmath.Sinh, -20, 20, 8, 1e-15},
		{"Cosh", Cosh, stdmath.Cosh, -20, 20, 8, 0},
		{"Tanh", Tanh, stdmath.Tanh, -20, 20, 8, 1e-15},
		{"Asinh", Asinh, stdmath.Asinh, -100, 100, 8, 1e-15},
		{"Acosh", Acosh, stdmath.Acosh, 1, 100, 8, 1e-15},
		{"Atanh", Atanh, stdmath.Atanh, -0.99, 0.99, 8, 1e-15},
		{"Exp10", Exp10, func(x float64) float64 { return stdmath.Pow(10, x) }, -10, 10, 16, 0},
		{"Lgamma", Lgamma, func(x float64) float64 { v, _ := stdmath.Lgamma(x); return v }, 0.01, 50, 8, 1e-14},
		{"J0", J0, stdmath.J0, 0.01, 20, 8, 1e-15},
		{"J1", J1, stdmath.J1, 0.01, 20, 8, 1e-15},
		{"Y0", Y0, stdmath.Y0, 0.01, 20, 8, 1e-15},
		{"Y1", Y1, stdmath.Y1, 0.01, 20, 8, 1e-15},
	}
	rng := newRand()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range uniform(rng, 2000, tt.lo, tt.hi) {
				expectClose64(t, tt.name, x, tt.got(x), tt.want(x), tt.ulps, tt.abs)
			}
		})
	}
}

func TestTgamma_AgainstStdlib(t *testing.T) {
	rng := newRand()
	for _, x := range uniform(rng, 2000, -20, 30) {
		if x < 0 && stdmath.Abs(x-stdmath.Round(x)) < 1e-3 {
			continue
		}
		got, want := Tgamma(x), stdmath.Gamma(x)
		if rel := stdmath.Abs(got-want) / stdmath.Abs(want); rel > 1e-12 {
			t.Errorf("Tgamma(%v) = %v, want %v (relative error %g)", x, got, want, rel)
		}
	}
}

func TestPow_AgainstStdlib(t *testing.T) {
	rng := newRand()
	xs := uniform(rng, 3000, 0.5, 4)
	ys := uniform(rng, 3000, -8, 8)
	for i, x := range xs {
		y := ys[i]
		got, want := Pow(x, y), stdmath.Pow(x, y)
		expectClose64(t, "Pow", x, got, want, 16, 0)
	}
	for _, y := range []float64{2, 3, -1, 0.5, 10} {
		for _, x := range []float64{-3, -0.5, 2, 7} {
			if y == 0.5 && x < 0 {
				continue
			}
			expectClose64(t, "Pow", x, Pow(x, y), stdmath.Pow(x, y), 2, 0)
		}
	}
}

func TestBinary_AgainstStdlib(t *testing.T) {
	tests := []struct {
		name string
		got  func(x, y float64) float64
		want func(x, y float64) float64
		ulps uint64
		abs  float64
	}{
		{"Fmod", Fmod, stdmath.Mod, 0, 0},
		{"Remainder", Remainder, stdmath.Remainder, 0, 0},
		{"Hypot", Hypot, stdmath.Hypot, 4, 0},
		{"Atan2", Atan2, stdmath.Atan2, 4, 4e-15},
		{"Fdim", Fdim, stdmath.Dim, 0, 0},
	}
	rng := newRand()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := uniform(rng, 3000, -1e3, 1e3)
			ys := uniform(rng, 3000, -50, 50)
			for i, x := range xs {
				expectClose64(t, tt.name, x, tt.got(x, ys[i]), tt.want(x, ys[i]), tt.ulps, tt.abs)
			}
		})
	}
}

func TestFma_AgainstStdlib(t *testing.T) {
	rng := newRand()
	for iter := 0; iter < 5000; iter++ {
		x := (rng.Float64() - 0.5) * stdmath.Ldexp(1, rng.Intn(200)-100)
		y := (rng.Float64() - 0.5) * stdmath.Ldexp(1, rng.Intn(200)-100)
		z := (rng.Float64() - 0.5) * stdmath.Ldexp(1, rng.Intn(200)-100)
		want := stdmath.FMA(x, y, z)
		expectIdentical64(t, "Fma", x, Fma(x, y, z), want)
		expectIdentical64(t, "fma", x, fma(x, y, z), want)
	}
}

func TestFmaf_AgainstWide(t *testing.T) {
	rng := newRand()
	for iter := 0; iter < 5000; iter++ {
		x := float32(rng.NormFloat64() * 100)
		y := float32(rng.NormFloat64() * 100)
		z := float32(rng.NormFloat64() * 100)
		// the float64 product of two float32 values is exact; narrowing the
		// fused float64 sum can round twice
		want := float32(stdmath.FMA(float64(x), float64(y), float64(z)))
		got := Fmaf(x, y, z)
		expectClose32(t, "Fmaf", x, got, want, 1, 0)
	}
}

type unaryCase32 struct {
	name   string
	got    func(float32) float32
	want   func(float64) float64
	lo, hi float32
	ulps   uint64
	abs    float64
}

func TestUnaryf_AgainstStdlib(t *testing.T) {
	tests := []unaryCase32{
		{"Sqrtf", Sqrtf, stdmath.Sqrt, 0, 1e10, 0, 0},
		{"Floorf", Floorf, stdmath.Floor, -1e6, 1e6, 0, 0},
		{"Ceilf", Ceilf, stdmath.Ceil, -1e6, 1e6, 0, 0},
		{"Truncf", Truncf, stdmath.Trunc, -1e6, 1e6, 0, 0},
		{"Expf", Expf, stdmath.Exp, -80, 80, 2, 0},
		{"Logf", Logf, stdmath.Log, 1e-30, 1e30, 2, 0},
		{"Expm1f", Expm1f, stdmath.Expm1, -10, 10, 2, 0},
		{"Log1pf", Log1pf, stdmath.Log1p, -0.9, 100, 2, 0},
		{"Cbrtf", Cbrtf, stdmath.Cbrt, -1e6, 1e6, 1, 0},
		{"Sinf", Sinf, stdmath.Sin, -10, 10, 2, 1e-7},
		{"Cosf", Cosf, stdmath.Cos, -10, 10, 2, 1e-7},
		{"Tanf", Tanf, stdmath.Tan, -1.5, 1.5, 4, 1e-7},
		{"Asinf", Asinf, stdmath.Asin, -1, 1, 2, 1e-7},
		{"Acosf", Acosf, stdmath.Acos, -1, 1, 2, 1e-7},
		{"Atanf", Atanf, stdmath.Atan, -100, 100, 2, 1e-7},
		{"Exp2f", Exp2f, stdmath.Exp2, -120, 120, 2, 0},
		{"Exp10f", Exp10f, func(x float64) float64 { return stdmath.Pow(10, x) }, -10, 10, 4, 0},
		{"Log2f", Log2f, stdmath.Log2, 1e-10, 1e10, 2, 1e-7},
		{"Log10f", Log10f, stdmath.Log10, 1e-10, 1e10, 2, 1e-7},
		{"Sinhf", Sinhf, stdmath.Sinh, -20, 20, 4, 1e-7},
		{"Coshf", Coshf, stdmath.Cosh, -20, 20, 4, 0},
		{"Tanhf", Tanhf, stdmath.Tanh, -20, 20, 4, 1e-7},
		{"Asinhf", Asinhf, stdmath.Asinh, -100, 100, 4, 1e-7},
		{"Acoshf", Acoshf, stdmath.Acosh, 1, 100, 4, 1e-7},
		{"Atanhf", Atanhf, stdmath.Atanh, -0.99, 0.99, 4, 1e-7},
		{"Erff", Erff, stdmath.Erf, -5, 5, 2, 1e-7},
		{"Erfcf", Erfcf, stdmath.Erfc, -4, 9, 4, 1e-30},
		{"Lgammaf", Lgammaf, func(x float64) float64 { v, _ := stdmath.Lgamma(x); return v }, 0.01, 30, 8, 1e-6},
		{"Tgammaf", Tgammaf, stdmath.Gamma, 0.1, 30, 1, 0},
		{"J0f", J0f, stdmath.J0, 0.01, 20, 64, 1e-6},
		{"J1f", J1f, stdmath.J1, 0.01, 20, 64, 1e-6},
		{"Y0f", Y0f, stdmath.Y0, 0.01, 20, 64, 1e-6},
		{"Y1f", Y1f, stdmath.Y1, 0.01, 20, 64, 1e-6},
	}
	rng := newRand()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range uniform32(rng, 2000, tt.lo, tt.hi) {
				want := float32(tt.want(float64(x)))
				expectClose32(t, tt.name, x, tt.got(x), want, tt.ulps, tt.abs)
			}
		})
	}
}

func TestPowf_AgainstStdlib(t *testing.T) {
	rng := newRand()
	xs := uniform32(rng, 3000, 0.5, 4)
	ys := uniform32(rng, 3000, -8, 8)
	for i, x := range xs {
		want := float32(stdmath.Pow(float64(x), float64(ys[i])))
		expectClose32(t, "Powf", x, Powf(x, ys[i]), want, 2, 0)
	}
}

func TestBinaryf_AgainstStdlib(t *testing.T) {
	rng := newRand()
	xs := uniform32(rng, 3000, -1e3, 1e3)
	ys := uniform32(rng, 3000, -50, 50)
	for i, x := range xs {
		y := ys[i]
		expectIdentical32(t, "Fmodf", x, Fmodf(x, y), float32(stdmath.Mod(float64(x), float64(y))))
		expectIdentical32(t, "Remainderf", x, Remainderf(x, y), float32(stdmath.Remainder(float64(x), float64(y))))
		expectClose32(t, "Hypotf", x, Hypotf(x, y), float32(stdmath.Hypot(float64(x), float64(y))), 1, 0)
		expectClose32(t, "Atan2f", x, Atan2f(y, x), float32(stdmath.Atan2(float64(y), float64(x))), 2, 1e-7)
	}
}

func TestBesselN_AgainstStdlib(t *testing.T) {
	rng := newRand()
	for n := int32(2); n <= 5; n++ {
		for _, x := range uniform(rng, 500, 0.1, 20) {
			expectClose64(t, "Jn", x, Jn(n, x), stdmath.Jn(int(n), x), 16, 1e-14)
			expectClose64(t, "Yn", x, Yn(n, x), stdmath.Yn(int(n), x), 16, 1e-14)
		}
		for _, x := range uniform32(rng, 500, 0.5, 20) {
			expectClose32(t, "Jnf", x, Jnf(n, x), float32(stdmath.Jn(int(n), float64(x))), 64, 1e-5)
			if x > 1 {
				expectClose32(t, "Ynf", x, Ynf(n, x), float32(stdmath.Yn(int(n), float64(x))), 64, 1e-5)
			}
		}
	}
}
