package l2math

import (
	stdmath "math"
	"testing"

	"github.com/DranikiRobotics/arc/internal/floatcmp"
)

func TestFrexp_RoundTrip(t *testing.T) {
	rng := newRand()
	for iter := 0; iter < 20000; iter++ {
		// random normal finite doubles over the whole exponent range
		bits := rng.Uint64()
		e := (bits >> 52) & 0x7ff
		if e == 0 || e == 0x7ff {
			continue
		}
		x := stdmath.Float64frombits(bits)
		frac, exp := Frexp(x)
		if a := stdmath.Abs(frac); a < 0.5 || a >= 1 {
			t.Fatalf("Frexp(%v) fraction %v outside [0.5, 1)", x, frac)
		}
		if got := Ldexp(frac, exp); stdmath.Float64bits(got) != bits {
			t.Fatalf("Ldexp(Frexp(%v)) = %v", x, got)
		}
	}
}

func TestFrexpf_RoundTrip(t *testing.T) {
	rng := newRand()
	for iter := 0; iter < 20000; iter++ {
		bits := rng.Uint32()
		e := (bits >> 23) & 0xff
		if e == 0 || e == 0xff {
			continue
		}
		x := stdmath.Float32frombits(bits)
		frac, exp := Frexpf(x)
		if a := Fabsf(frac); a < 0.5 || a >= 1 {
			t.Fatalf("Frexpf(%v) fraction %v outside [0.5, 1)", x, frac)
		}
		if got := Ldexpf(frac, exp); stdmath.Float32bits(got) != bits {
			t.Fatalf("Ldexpf(Frexpf(%v)) = %v", x, got)
		}
	}
}

func TestFrexp_SpecialCases(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		wantFrac float64
		wantExp  int32
	}{
		{"zero", 0, 0, 0},
		{"one", 1, 0.5, 1},
		{"minus_eight", -8, -0.5, 4},
		{"smallest_subnormal", 0x1p-1074, 0.5, -1073},
		{"subnormal", 0x1.8p-1030, 0.75, -1029},
		{"inf", stdmath.Inf(1), stdmath.Inf(1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frac, exp := Frexp(tt.x)
			if frac != tt.wantFrac || exp != tt.wantExp {
				t.Errorf("Frexp(%v) = (%v, %d), want (%v, %d)", tt.x, frac, exp, tt.wantFrac, tt.wantExp)
			}
		})
	}
	if frac, _ := Frexp(negZero()); !isNegZero(frac) {
		t.Errorf("Frexp(-0) fraction = %v, want -0", frac)
	}
	if frac, _ := Frexp(stdmath.NaN()); !stdmath.IsNaN(frac) {
		t.Errorf("Frexp(NaN) fraction = %v, want NaN", frac)
	}
}

func TestIlogb(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want int32
	}{
		{"one", 1, 0},
		{"three", 3, 1},
		{"tiny", 0x1p-1000, -1000},
		{"subnormal", 0x1p-1074, -1074},
		{"zero", 0, FP_ILOGB0},
		{"nan", stdmath.NaN(), FP_ILOGBNAN},
		{"inf", stdmath.Inf(-1), stdmath.MaxInt32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ilogb(tt.x); got != tt.want {
				t.Errorf("Ilogb(%v) = %d, want %d", tt.x, got, tt.want)
			}
			if got := Ilogbf(float32(tt.x)); tt.x >= 0x1p-126 && got != tt.want {
				t.Errorf("Ilogbf(%v) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
	if got := Ilogbf(0x1p-149); got != -149 {
		t.Errorf("Ilogbf(0x1p-149) = %d, want -149", got)
	}
}

func TestModf_Exact(t *testing.T) {
	rng := newRand()
	xs := append(uniform(rng, 5000, -1e6, 1e6), uniform(rng, 2000, -2, 2)...)
	xs = append(xs, 0x1p60+0.0, -0x1p53, 0x1p-1060, 1.5, -1.5)
	for _, x := range xs {
		frac, integral := Modf(x)
		if frac+integral != x {
			t.Errorf("Modf(%v) = (%v, %v), parts do not sum to x", x, frac, integral)
		}
		if stdmath.Abs(frac) >= 1 {
			t.Errorf("Modf(%v) fraction %v not below 1 in magnitude", x, frac)
		}
		if stdmath.Signbit(frac) != stdmath.Signbit(x) || stdmath.Signbit(integral) != stdmath.Signbit(x) {
			t.Errorf("Modf(%v) = (%v, %v), parts must carry the sign of x", x, frac, integral)
		}
		if integral != stdmath.Trunc(x) {
			t.Errorf("Modf(%v) integral = %v, want %v", x, integral, stdmath.Trunc(x))
		}
	}
}

func TestModf_SpecialCases(t *testing.T) {
	frac, integral := Modf(stdmath.Inf(-1))
	if !isNegZero(frac) || !stdmath.IsInf(integral, -1) {
		t.Errorf("Modf(-Inf) = (%v, %v), want (-0, -Inf)", frac, integral)
	}
	frac, integral = Modf(stdmath.NaN())
	if !stdmath.IsNaN(frac) || !stdmath.IsNaN(integral) {
		t.Errorf("Modf(NaN) = (%v, %v), want (NaN, NaN)", frac, integral)
	}
	frac, integral = Modf(-3)
	if !isNegZero(frac) || integral != -3 {
		t.Errorf("Modf(-3) = (%v, %v), want (-0, -3)", frac, integral)
	}
	f32, i32 := Modff(-2.25)
	if f32 != -0.25 || i32 != -2 {
		t.Errorf("Modff(-2.25) = (%v, %v), want (-0.25, -2)", f32, i32)
	}
}

func TestRound_Ties(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"half", 0.5, 1},
		{"minus_half", -0.5, -1},
		{"two_and_half", 2.5, 3},
		{"minus_two_and_half", -2.5, -3},
		{"just_below_half", 0.49999999999999994, 0},
		{"large", 0x1p52 + 1, 0x1p52 + 1},
		{"one_point_four", 1.4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectIdentical64(t, "Round", tt.x, Round(tt.x), tt.want)
			if float64(float32(tt.x)) == tt.x && tt.x < 0x1p23 {
				expectIdentical32(t, "Roundf", float32(tt.x), Roundf(float32(tt.x)), float32(tt.want))
			}
		})
	}
	expectIdentical64(t, "Round", -0.0, Round(negZero()), negZero())
	expectIdentical64(t, "Round", -0.2, Round(-0.2), negZero())
	expectIdentical32(t, "Roundf", -0.0, Roundf(negZero32()), negZero32())
}

func TestRint_TiesToEven(t *testing.T) {
	for _, x := range []float64{0.5, 1.5, 2.5, -2.5, -0.5, 3.5, 1e15 + 0.5, -0.2, 7} {
		expectIdentical64(t, "Rint", x, Rint(x), stdmath.RoundToEven(x))
		expectIdentical32(t, "Rintf", float32(x), Rintf(float32(x)), float32(stdmath.RoundToEven(float64(float32(x)))))
	}
}

func TestCopysign(t *testing.T) {
	if got := Copysign(5, -1); got != -5 {
		t.Errorf("Copysign(5, -1) = %v, want -5", got)
	}
	if got := Copysign(-5, 0); got != 5 {
		t.Errorf("Copysign(-5, 0) = %v, want 5", got)
	}
	if got := Copysign(3, negZero()); got != -3 {
		t.Errorf("Copysign(3, -0) = %v, want -3", got)
	}
	if got := Copysignf(5, -1); got != -5 {
		t.Errorf("Copysignf(5, -1) = %v, want -5", got)
	}
	if got := Fabs(negZero()); stdmath.Signbit(got) {
		t.Errorf("Fabs(-0) = %v, want +0", got)
	}
}

func TestFmaxFminFdim(t *testing.T) {
	nan := stdmath.NaN()
	tests := []struct {
		name          string
		x, y          float64
		max, min, dim float64
	}{
		{"ordered", 1, 2, 2, 1, 0},
		{"reversed", 3, -1, 3, -1, 4},
		{"nan_left", nan, 2, 2, 2, nan},
		{"nan_right", 2, nan, 2, 2, nan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectIdentical64(t, "Fmax", tt.x, Fmax(tt.x, tt.y), tt.max)
			expectIdentical64(t, "Fmin", tt.x, Fmin(tt.x, tt.y), tt.min)
			expectIdentical64(t, "Fdim", tt.x, Fdim(tt.x, tt.y), tt.dim)
			expectIdentical32(t, "Fmaxf", float32(tt.x), Fmaxf(float32(tt.x), float32(tt.y)), float32(tt.max))
			expectIdentical32(t, "Fminf", float32(tt.x), Fminf(float32(tt.x), float32(tt.y)), float32(tt.min))
		})
	}
	if got := Fmax(negZero(), 0); isNegZero(got) {
		t.Errorf("Fmax(-0, +0) = -0, want +0")
	}
	if got := Fmin(0, negZero()); !isNegZero(got) {
		t.Errorf("Fmin(+0, -0) = %v, want -0", got)
	}
}

func TestExpm1_Known(t *testing.T) {
	if got := Expm1(1.1); stdmath.Float64bits(got) != stdmath.Float64bits(2.0041660239464334) {
		t.Errorf("Expm1(1.1) = %v, want 2.0041660239464334", got)
	}
}

func TestFmaf_Halfway(t *testing.T) {
	x := stdmath.Float32frombits(1266679807)
	y := stdmath.Float32frombits(1300234242)
	z := stdmath.Float32frombits(1115553792)
	if got := stdmath.Float32bits(Fmaf(x, y, z)); got != 1501560833 {
		t.Errorf("Fmaf(%v, %v, %v) bits = %d, want 1501560833", x, y, z, got)
	}
}

func TestUlp(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"zero", 0, 0x1p-1022},
		{"one", 1, 0x1p-52},
		{"minus_one", -1, 0x1p-52},
		{"two", 2, 0x1p-51},
		{"max", stdmath.MaxFloat64, stdmath.MaxFloat64},
		{"min_normal", 0x1p-1022, 0x1p-1022},
		{"subnormal", 0x1p-1050, 0x1p-1074},
		{"inf", stdmath.Inf(1), stdmath.Inf(1)},
		{"minus_inf", stdmath.Inf(-1), stdmath.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectIdentical64(t, "Ulp", tt.x, Ulp(tt.x), tt.want)
		})
	}
	if got := Ulp(stdmath.NaN()); !stdmath.IsNaN(got) {
		t.Errorf("Ulp(NaN) = %v, want NaN", got)
	}
	expectIdentical32(t, "Ulpf", 1, Ulpf(1), 0x1p-23)
	expectIdentical32(t, "Ulpf", 0, Ulpf(0), 0x1p-126)
	expectIdentical32(t, "Ulpf", stdmath.MaxFloat32, Ulpf(stdmath.MaxFloat32), stdmath.MaxFloat32)
}

func TestRemquo_Bound(t *testing.T) {
	rng := newRand()
	xs := uniform(rng, 5000, -1e4, 1e4)
	ys := uniform(rng, 5000, -50, 50)
	for i, x := range xs {
		y := ys[i]
		if y == 0 {
			continue
		}
		rem, quo := Remquo(x, y)
		if stdmath.Abs(rem) > stdmath.Abs(y)/2 {
			t.Fatalf("Remquo(%v, %v) remainder %v exceeds |y|/2", x, y, rem)
		}
		if want := stdmath.Remainder(x, y); !floatcmp.Identical(rem, want) {
			t.Fatalf("Remquo(%v, %v) remainder %v, want %v", x, y, rem, want)
		}
		q := stdmath.RoundToEven((x - rem) / y)
		if quo != 0 && (quo < 0) != (q < 0) {
			t.Fatalf("Remquo(%v, %v) quotient %d has the wrong sign", x, y, quo)
		}
		if got, want := int64(stdmath.Abs(float64(quo)))&7, int64(stdmath.Abs(q))&7; got != want {
			t.Fatalf("Remquo(%v, %v) quotient low bits %d, want %d", x, y, got, want)
		}
		remf, _ := Remquof(float32(x), float32(y))
		if Fabsf(remf) > Fabsf(float32(y))/2 {
			t.Fatalf("Remquof(%v, %v) remainder %v exceeds |y|/2", x, y, remf)
		}
	}
	if rem, quo := Remquo(5, 3); rem != -1 || quo != 2 {
		t.Errorf("Remquo(5, 3) = (%v, %d), want (-1, 2)", rem, quo)
	}
	if rem, _ := Remquo(1, 0); !stdmath.IsNaN(rem) {
		t.Errorf("Remquo(1, 0) = %v, want NaN", rem)
	}
}

func TestNextafter(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 1e300, 0x1p-1074, stdmath.MaxFloat64} {
		for _, y := range []float64{stdmath.Inf(-1), 0, 2, stdmath.Inf(1)} {
			expectIdentical64(t, "Nextafter", x, Nextafter(x, y), stdmath.Nextafter(x, y))
			x32, y32 := float32(x), float32(y)
			expectIdentical32(t, "Nextafterf", x32, Nextafterf(x32, y32), stdmath.Nextafter32(x32, y32))
		}
	}
}

func TestLdexp_Clamps(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		n    int32
		want float64
	}{
		{"overflow", 1, 2000, stdmath.Inf(1)},
		{"negative_overflow", -1, 2000, stdmath.Inf(-1)},
		{"underflow", 1, -2000, 0},
		{"to_subnormal", 1, -1074, 0x1p-1074},
		{"from_subnormal", 0x1p-1074, 1074, 1},
		{"identity", 3, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectIdentical64(t, "Ldexp", tt.x, Ldexp(tt.x, tt.n), tt.want)
			expectIdentical64(t, "Scalbn", tt.x, Scalbn(tt.x, tt.n), tt.want)
		})
	}
	expectIdentical32(t, "Ldexpf", 1, Ldexpf(1, -149), 0x1p-149)
	expectIdentical32(t, "Ldexpf", 1, Ldexpf(1, 200), float32(stdmath.Inf(1)))
}
