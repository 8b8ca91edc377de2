package l2math

import (
	stdmath "math"
	"testing"
)

func TestProfile_String(t *testing.T) {
	tests := []struct {
		p    Profile
		want string
	}{
		{ProfileReference, "reference"},
		{ProfileNative, "native"},
		{Profile(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Profile(%d).String() = %q, want %q", int(tt.p), got, tt.want)
		}
	}
}

func TestNativeEnv(t *testing.T) {
	tests := []struct {
		name string
		val  string
		want bool
	}{
		{"unset", "", false},
		{"true", "1", true},
		{"false", "false", false},
		{"zero", "0", false},
		{"garbage", "yes please", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("L2MATH_NATIVE", tt.val)
			if got := NativeEnv(); got != tt.want {
				t.Errorf("NativeEnv() with %q = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}

// dispatchInputs mixes random values with the boundaries where the software
// and hardware paths are most likely to disagree.
func dispatchInputs() []float64 {
	xs := []float64{
		0, negZero(), 0.5, -0.5, 1, -1, 1.5, -1.5, 2.5, -2.5,
		0x1p52, -0x1p52, 0x1p52 + 0.5, 0x1p53, 0x1p-1074, -0x1p-1074,
		stdmath.MaxFloat64, -stdmath.MaxFloat64, inf, negInf, nan,
		0.49999999999999994, 4503599627370495.5,
	}
	rng := newRand()
	xs = append(xs, uniform(rng, 2000, -1e6, 1e6)...)
	for iter := 0; iter < 2000; iter++ {
		xs = append(xs, stdmath.Float64frombits(rng.Uint64()))
	}
	return xs
}

func TestDispatch_ProfilesAgree(t *testing.T) {
	unary := []struct {
		name string
		fn   func(float64) float64
	}{
		{"Floor", Floor},
		{"Ceil", Ceil},
		{"Trunc", Trunc},
		{"Sqrt", Sqrt},
	}
	xs := dispatchInputs()
	for _, tt := range unary {
		t.Run(tt.name, func(t *testing.T) {
			ref := make([]float64, len(xs))
			withProfile(t, ProfileReference)
			for i, x := range xs {
				ref[i] = tt.fn(x)
			}
			currentProfile = ProfileNative
			for i, x := range xs {
				expectIdentical64(t, tt.name, x, tt.fn(x), ref[i])
			}
		})
	}
}

func TestDispatch_ProfilesAgreef(t *testing.T) {
	unary := []struct {
		name string
		fn   func(float32) float32
	}{
		{"Floorf", Floorf},
		{"Ceilf", Ceilf},
		{"Truncf", Truncf},
		{"Sqrtf", Sqrtf},
	}
	rng := newRand()
	xs := []float32{0, negZero32(), 0.5, -0.5, 2.5, 0x1p23, 0x1p-149, float32(inf), float32(nan)}
	for iter := 0; iter < 4000; iter++ {
		xs = append(xs, stdmath.Float32frombits(rng.Uint32()))
	}
	for _, tt := range unary {
		t.Run(tt.name, func(t *testing.T) {
			ref := make([]float32, len(xs))
			withProfile(t, ProfileReference)
			for i, x := range xs {
				ref[i] = tt.fn(x)
			}
			currentProfile = ProfileNative
			for i, x := range xs {
				expectIdentical32(t, tt.name, x, tt.fn(x), ref[i])
			}
		})
	}
}

func TestDispatch_FmaAgrees(t *testing.T) {
	rng := newRand()
	withProfile(t, ProfileNative)
	for iter := 0; iter < 5000; iter++ {
		x := stdmath.Float64frombits(rng.Uint64())
		y := stdmath.Float64frombits(rng.Uint64())
		z := stdmath.Float64frombits(rng.Uint64())
		expectIdentical64(t, "Fma", x, Fma(x, y, z), fma(x, y, z))
	}
	// exact cancellation and the subnormal boundary
	cases := [][3]float64{
		{1, 1, -1},
		{0x1p-600, 0x1p-600, 0},
		{0x1p-537, 0x1p-537, 0x1p-1074},
		{1 + 0x1p-52, 1 - 0x1p-53, -1},
		{inf, 0, 1},
		{negZero(), 1, 0},
	}
	for _, c := range cases {
		expectIdentical64(t, "fma", c[0], fma(c[0], c[1], c[2]), stdmath.FMA(c[0], c[1], c[2]))
	}
}

func TestSqrt_Reference(t *testing.T) {
	rng := newRand()
	for iter := 0; iter < 5000; iter++ {
		x := stdmath.Abs(stdmath.Float64frombits(rng.Uint64()))
		expectIdentical64(t, "sqrt", x, sqrt(x), stdmath.Sqrt(x))
		if x32 := float32(x); !isNaN32(x32) {
			expectIdentical32(t, "sqrtf", x32, sqrtf(x32), float32(stdmath.Sqrt(float64(x32))))
		}
	}
	expectIdentical64(t, "sqrt", 0x1p-1074, sqrt(0x1p-1074), stdmath.Sqrt(0x1p-1074))
	expectIdentical64(t, "sqrt", negZero(), sqrt(negZero()), negZero())
}
