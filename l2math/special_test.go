package l2math

import (
	stdmath "math"
	"testing"
)

var (
	inf    = stdmath.Inf(1)
	negInf = stdmath.Inf(-1)
	nan    = stdmath.NaN()
)

func TestUnary_SpecialCases(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
		x    float64
		want float64
	}{
		{"Sqrt_neg", Sqrt, -1, nan},
		{"Sqrt_negzero", Sqrt, negZero(), negZero()},
		{"Sqrt_inf", Sqrt, inf, inf},
		{"Cbrt_negzero", Cbrt, negZero(), negZero()},
		{"Cbrt_neginf", Cbrt, negInf, negInf},
		{"Cbrt_27", Cbrt, 27, 3},
		{"Exp_zero", Exp, 0, 1},
		{"Exp_neginf", Exp, negInf, 0},
		{"Exp_overflow", Exp, 710, inf},
		{"Exp_underflow", Exp, -746, 0},
		{"Exp_nan", Exp, nan, nan},
		{"Exp2_int", Exp2, 10, 1024},
		{"Exp2_neg", Exp2, -3, 0.125},
		{"Exp10_three", Exp10, 3, 1000},
		{"Expm1_neginf", Expm1, negInf, -1},
		{"Expm1_negzero", Expm1, negZero(), negZero()},
		{"Log_zero", Log, 0, negInf},
		{"Log_neg", Log, -1, nan},
		{"Log_one", Log, 1, 0},
		{"Log_inf", Log, inf, inf},
		{"Log2_pow", Log2, 0x1p-1074, -1074},
		{"Log10_one", Log10, 1, 0},
		{"Log1p_minus_one", Log1p, -1, negInf},
		{"Log1p_below", Log1p, -2, nan},
		{"Sin_negzero", Sin, negZero(), negZero()},
		{"Sin_inf", Sin, inf, nan},
		{"Cos_zero", Cos, 0, 1},
		{"Cos_inf", Cos, negInf, nan},
		{"Tan_negzero", Tan, negZero(), negZero()},
		{"Asin_out", Asin, 1.5, nan},
		{"Asin_one", Asin, 1, stdmath.Pi / 2},
		{"Acos_minus_one", Acos, -1, stdmath.Pi},
		{"Acos_one", Acos, 1, 0},
		{"Atan_inf", Atan, inf, stdmath.Pi / 2},
		{"Atan_negzero", Atan, negZero(), negZero()},
		{"Sinh_neginf", Sinh, negInf, negInf},
		{"Cosh_neginf", Cosh, negInf, inf},
		{"Tanh_inf", Tanh, inf, 1},
		{"Tanh_neginf", Tanh, negInf, -1},
		{"Asinh_negzero", Asinh, negZero(), negZero()},
		{"Acosh_below", Acosh, 0.5, nan},
		{"Acosh_one", Acosh, 1, 0},
		{"Atanh_one", Atanh, 1, inf},
		{"Atanh_minus_one", Atanh, -1, negInf},
		{"Erf_inf", Erf, inf, 1},
		{"Erf_neginf", Erf, negInf, -1},
		{"Erf_negzero", Erf, negZero(), negZero()},
		{"Erfc_inf", Erfc, inf, 0},
		{"Erfc_neginf", Erfc, negInf, 2},
		{"Tgamma_zero", Tgamma, 0, inf},
		{"Tgamma_negzero", Tgamma, negZero(), negInf},
		{"Tgamma_negint", Tgamma, -3, nan},
		{"Tgamma_inf", Tgamma, inf, inf},
		{"Tgamma_neginf", Tgamma, negInf, nan},
		{"Tgamma_overflow", Tgamma, 200, inf},
		{"Lgamma_one", Lgamma, 1, 0},
		{"Lgamma_two", Lgamma, 2, 0},
		{"Lgamma_zero", Lgamma, 0, inf},
		{"Lgamma_negint", Lgamma, -4, inf},
		{"Lgamma_neginf", Lgamma, negInf, inf},
		{"J0_inf", J0, inf, 0},
		{"J0_zero", J0, 0, 1},
		{"J1_zero", J1, 0, 0},
		{"Y0_zero", Y0, 0, negInf},
		{"Y0_neg", Y0, -1, nan},
		{"Y1_zero", Y1, 0, negInf},
		{"Y1_inf", Y1, inf, 0},
		{"Floor_negzero", Floor, negZero(), negZero()},
		{"Floor_neg_frac", Floor, -0.5, -1},
		{"Ceil_neg_frac", Ceil, -0.5, negZero()},
		{"Trunc_inf", Trunc, negInf, negInf},
		{"Fabs_neginf", Fabs, negInf, inf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectIdentical64(t, tt.name, tt.x, tt.fn(tt.x), tt.want)
		})
	}
}

func TestUnaryf_SpecialCases(t *testing.T) {
	inf32 := float32(inf)
	nan32 := float32(nan)
	tests := []struct {
		name string
		fn   func(float32) float32
		x    float32
		want float32
	}{
		{"Sqrtf_neg", Sqrtf, -1, nan32},
		{"Sqrtf_four", Sqrtf, 4, 2},
		{"Cbrtf_neg", Cbrtf, -8, -2},
		{"Expf_overflow", Expf, 89, inf32},
		{"Expf_underflow", Expf, -104, 0},
		{"Exp2f_int", Exp2f, -3, 0.125},
		{"Exp10f_two", Exp10f, 2, 100},
		{"Logf_zero", Logf, 0, -inf32},
		{"Logf_neg", Logf, -2, nan32},
		{"Log2f_pow", Log2f, 1024, 10},
		{"Log1pf_minus_one", Log1pf, -1, -inf32},
		{"Sinf_negzero", Sinf, negZero32(), negZero32()},
		{"Cosf_inf", Cosf, inf32, nan32},
		{"Asinf_out", Asinf, 2, nan32},
		{"Atanf_neginf", Atanf, -inf32, -stdmath.Float32frombits(0x3fc90fda)},
		{"Tanhf_inf", Tanhf, inf32, 1},
		{"Atanhf_one", Atanhf, 1, inf32},
		{"Erff_inf", Erff, inf32, 1},
		{"Erfcf_neginf", Erfcf, -inf32, 2},
		{"Tgammaf_negint", Tgammaf, -2, nan32},
		{"Tgammaf_five", Tgammaf, 5, 24},
		{"Lgammaf_one", Lgammaf, 1, 0},
		{"Lgammaf_zero", Lgammaf, 0, inf32},
		{"J0f_zero", J0f, 0, 1},
		{"Y0f_zero", Y0f, 0, -inf32},
		{"Y1f_neg", Y1f, -1, nan32},
		{"Floorf_neg_frac", Floorf, -0.25, -1},
		{"Ceilf_neg_frac", Ceilf, -0.25, negZero32()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectIdentical32(t, tt.name, tt.x, tt.fn(tt.x), tt.want)
		})
	}
}

func TestPow_SpecialCases(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"y_zero_nan_x", nan, 0, 1},
		{"x_one_nan_y", 1, nan, 1},
		{"nan_y", 2, nan, nan},
		{"neg_base_frac_exp", -8, 1.0 / 3, nan},
		{"negzero_odd_neg", negZero(), -3, negInf},
		{"negzero_even_neg", negZero(), -2, inf},
		{"zero_pos", 0, 3, 0},
		{"negzero_odd_pos", negZero(), 3, negZero()},
		{"minus_one_inf", -1, inf, 1},
		{"small_inf", 0.5, inf, 0},
		{"big_inf", 2, inf, inf},
		{"small_neginf", 0.5, negInf, inf},
		{"neginf_odd", negInf, 3, negInf},
		{"neginf_neg", negInf, -3, negZero()},
		{"neg_int_exp", -2, 3, -8},
		{"sqrt", 2, 0.5, stdmath.Sqrt2},
		{"overflow", 10, 400, inf},
		{"underflow", 10, -400, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectIdentical64(t, "Pow", tt.x, Pow(tt.x, tt.y), tt.want)
			x32, y32 := float32(tt.x), float32(tt.y)
			if tt.name != "neg_base_frac_exp" && tt.name != "overflow" && tt.name != "underflow" && tt.name != "sqrt" {
				expectIdentical32(t, "Powf", x32, Powf(x32, y32), float32(tt.want))
			}
		})
	}
}

func TestFmod_SpecialCases(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"zero_divisor", 1, 0, nan},
		{"inf_dividend", inf, 2, nan},
		{"inf_divisor", 3, inf, 3},
		{"negzero", negZero(), 2, negZero()},
		{"sign_of_x", -7, 3, -1},
		{"exact", 6, 3, 0},
		{"subnormal", 0x1.8p-1070, 0x1p-1072, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectIdentical64(t, "Fmod", tt.x, Fmod(tt.x, tt.y), tt.want)
		})
	}
}

func TestHypot_SpecialCases(t *testing.T) {
	expectIdentical64(t, "Hypot", inf, Hypot(inf, nan), inf)
	expectIdentical64(t, "Hypot", nan, Hypot(nan, negInf), inf)
	expectIdentical64(t, "Hypot", 3, Hypot(3, -4), 5)
	expectClose64(t, "Hypot", 3e300, Hypot(3e300, 4e300), 5e300, 1, 0)
	expectIdentical32(t, "Hypotf", 3, Hypotf(3, 4), 5)
}

func TestAtan2_SpecialCases(t *testing.T) {
	tests := []struct {
		name string
		y, x float64
		want float64
	}{
		{"zero_zero", 0, 0, 0},
		{"zero_negzero", 0, negZero(), stdmath.Pi},
		{"negzero_negzero", negZero(), negZero(), -stdmath.Pi},
		{"pos_zero", 1, 0, stdmath.Pi / 2},
		{"inf_inf", inf, inf, stdmath.Pi / 4},
		{"inf_neginf", inf, negInf, 3 * stdmath.Pi / 4},
		{"neg_neginf", -1, negInf, -stdmath.Pi},
		{"nan", nan, 1, nan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectClose64(t, "Atan2", tt.y, Atan2(tt.y, tt.x), tt.want, 1, 0)
		})
	}
}

func TestSincos_MatchesSinCos(t *testing.T) {
	rng := newRand()
	for _, x := range append(uniform(rng, 1000, -1e6, 1e6), 0, stdmath.Pi, 1e22) {
		s, c := Sincos(x)
		expectIdentical64(t, "Sincos.sin", x, s, Sin(x))
		expectIdentical64(t, "Sincos.cos", x, c, Cos(x))
	}
	for _, x := range uniform32(rng, 1000, -1e6, 1e6) {
		s, c := Sincosf(x)
		expectIdentical32(t, "Sincosf.sin", x, s, Sinf(x))
		expectIdentical32(t, "Sincosf.cos", x, c, Cosf(x))
	}
}

func TestSin_LargeArguments(t *testing.T) {
	// correctly rounded results, reduced through the multi-word 2/pi table
	tests := []struct {
		x        float64
		sin, cos float64
	}{
		{1e22, -0x1.b453ab76bf397p-1, 0},
		{1e300, 0, -0x1.2699022adc4c1p-1},
		{0x1p1000, -0x1.460b8ae1c886ep-3, 0x1.f9785160c8815p-1}, // -0.15920170308624243
		{0x1p500, 0x1.b78f3ff6b537bp-2, 0x1.ce6de5cd1db81p-1},
		{1e100, -0x1.85c5e5b929359p-2, 0x1.d9757496841f5p-1},
		{3e10, -0x1.ff8642cd95c9cp-1, 0x1.60fdc955be455p-5},
		{123456789, 0x1.faf0521c8dc5cp-1, 0x1.1f4077c91589fp-3},
		{1e9, 0x1.1778cae83c69bp-1, 0},
	}
	for _, tt := range tests {
		if tt.sin != 0 {
			expectIdentical64(t, "Sin", tt.x, Sin(tt.x), tt.sin)
		}
		if tt.cos != 0 {
			expectIdentical64(t, "Cos", tt.x, Cos(tt.x), tt.cos)
		}
	}
}

func TestLnAliases(t *testing.T) {
	for _, x := range []float64{0.1, 1, 2.5, 1e10} {
		expectIdentical64(t, "Ln", x, Ln(x), Log(x))
		expectIdentical32(t, "Lnf", float32(x), Lnf(float32(x)), Logf(float32(x)))
	}
}
