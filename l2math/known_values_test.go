package l2math

import (
	stdmath "math"
	"testing"
)

// The expected values below are the correctly rounded results. Inputs were
// chosen so the exact result sits far from a rounding boundary, which leaves
// only one acceptable answer for an implementation accurate to within a
// fraction of an ulp.

func TestKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(float64) float64
		x, want float64
	}{
		{"Exp", Exp, 7.95978, 0x1.65ee2c72a6011p+11},
		{"Exp", Exp, 10.5828, 0x1.3434d797e4f64p+15},
		{"Exp", Exp, -8.61618, 0x1.7be6aa688105bp-13},
		{"Exp10", Exp10, 2.458, 0x1.1f13fb9f52ca3p+8},
		{"Exp10", Exp10, -0.68755, 0x1.a48375572d8cap-3},
		{"Expm1", Expm1, 0.14119, 0x1.3690d5e8cecfap-3},
		{"Expm1", Expm1, 0.268879, 0x1.3be696054de67p-2},
		{"Expm1", Expm1, -0.0504787, -0x1.934206e7edcbap-5},
		{"Log", Log, 432.183, 0x1.8468061895931p+2},
		{"Log", Log, 129.827, 0x1.376fddd9050b6p+2},
		{"Log", Log, 4.96048, 0x1.99fc1189fa330p+0},
		{"Log2", Log2, 232.817, 0x1.f73c40f439a6ap+2},
		{"Log2", Log2, 3.32429, 0x1.bba8eb2a59015p+0},
		{"Log10", Log10, 1.75136, 0x1.f26ed0ca72e90p-3},
		{"Log10", Log10, 750.737, 0x1.700ffc22aa525p+1},
		{"Log1p", Log1p, 0.471307, 0x1.8b6b33170a1fdp-2},
		{"Log1p", Log1p, 2.49412, 0x1.4046e17e6a581p+0},
		{"Sin", Sin, -1.58886, -0x1.ffea9dce36a96p-1},
		{"Sin", Sin, 8.865, 0x1.0fdefa5415c67p-1},
		{"Cos", Cos, 3.2885, -0x1.fa7c28bd1404bp-1},
		{"Cos", Cos, 4.56063, -0x1.359c5ad2df22ap-3},
		{"Tan", Tan, 0.730784, 0x1.caebd1bf92f1dp-1},
		{"Tan", Tan, -1.05206, -0x1.c06d2e1be8a13p+0},
		{"Asin", Asin, 0.955731, 0x1.45aa961b4554ap+0},
		{"Asin", Asin, -0.471011, -0x1.f634fdc713a63p-2},
		{"Acos", Acos, 0.0790854, 0x1.7ddb596884023p+0},
		{"Acos", Acos, -0.849207, 0x1.4aea6460d88f1p+1},
		{"Acos_near_one", Acos, 0.9999924775435667, 0x1.fc663fa9b2232p-9},
		{"Atan", Atan, -15.2461, -0x1.815b50878846fp+0},
		{"Atan", Atan, 6.0279, 0x1.6809b82e0827ep+0},
		{"Sinh", Sinh, 0.644762, 0x1.6178926a29dafp-1},
		{"Sinh", Sinh, 16.06, 0x1.1ff399d08bc4cp+22},
		{"Cosh", Cosh, 1.08556, 0x1.a63f697deb0ebp+0},
		{"Cosh", Cosh, 4.36935, 0x1.3c050c3d22b03p+5},
		{"Tanh", Tanh, 0.074697, 0x1.3164213c20b0fp-4},
		{"Tanh", Tanh, -1.40389, -0x1.c5baa4601898fp-1},
		{"Asinh", Asinh, -37.8499, -0x1.14ecbf9aa2ff0p+2},
		{"Acosh", Acosh, 12.1441, 0x1.9819ecaf0d4b3p+1},
		{"Atanh", Atanh, 0.332914, 0x1.62688a4dffc80p-2},
		{"Cbrt", Cbrt, -35.36, -0x1.a4208b3d6af03p+1},
		{"Cbrt", Cbrt, 74.1953, 0x1.0cee0105897d7p+2},
		{"Erf", Erf, -0.443439, -0x1.e0af0be3994dfp-2},
		{"Erf", Erf, -0.264023, -0x1.2a201510b8fbep-2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectIdentical64(t, tt.name, tt.x, tt.fn(tt.x), tt.want)
		})
	}
}

func TestKnownValues_Exp2(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0.1, 0x1.125fbee250664p+0},
		{0.5, 0x1.6a09e667f3bcdp+0},
		{-0.3, 0x1.9fdf8bcce533ep-1},
		{1.7, 0x1.9fdf8bcce533dp+1},
		{3.14159, 0x1.1a6615dbe79fcp+3},
		{10.25, 0x1.306fe0a31b715p+10},
		{-7.77, 0x1.2c3ee9468e86ap-8},
		{0.001, 0x1.002d711c79a96p+0},
		{100.3, 0x1.3b2c47bff831ep+100},
		{-3.16634, 0x1.c83e51f93faddp-4},
		{17.9786, 0x1.f8761ca77f62ap+17},
		{18.0494, 0x1.08eae93d3e8d5p+18},
	}
	for _, tt := range tests {
		expectIdentical64(t, "Exp2", tt.x, Exp2(tt.x), tt.want)
	}
}

func TestKnownValues_Binary(t *testing.T) {
	tests := []struct {
		name       string
		fn         func(float64, float64) float64
		x, y, want float64
	}{
		{"Pow_large_exponent", Pow, 0.7, -1500.2, 0x1.f2ec55510f802p+771},
		{"Pow", Pow, 2.4185, -4.7547, 0x1.ebd117caf30fbp-7},
		{"Pow", Pow, 18.027, 22.266, 0x1.dc4a6af05bdd4p+92},
		{"Pow", Pow, 8.8664, 20.302, 0x1.e3a229ff14387p+63},
		{"Atan2", Atan2, 6.1198, 8.2844, 0x1.45c113708fc00p-1},
		{"Atan2", Atan2, -7.19, -7.0265, -0x1.2c1ef129b9c94p+1},
		{"Atan2", Atan2, -4.6157, -0.53677, -0x1.afc2f458fc2dcp+0},
		{"Hypot", Hypot, -7.5859, 52.944, 0x1.abe0a9cf18ee9p+5},
		{"Hypot", Hypot, 53.046, -18.851, 0x1.c25e2f32fc9f4p+5},
		{"Hypot", Hypot, -28.163, -45.698, 0x1.ad6f1a19456f9p+5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.x, tt.y); got != tt.want {
				t.Errorf("%s(%v, %v) = %v (%#016x), want %v",
					tt.name, tt.x, tt.y, got, stdmath.Float64bits(got), tt.want)
			}
		})
	}
}

// Arguments on both sides of each reduction threshold: the |x| < 3pi/4 and
// |x| < 9pi/4 fast cases, the medium range ending near 2**20*pi/2, and the
// exact multiples of pi/2 closest to a double.
func TestKnownValues_ReductionBoundaries(t *testing.T) {
	tests := []struct {
		x        float64
		sin, cos float64
	}{
		{stdmath.Pi / 2, 0x1p+0, 0x1.1a62633145c07p-54},
		{2.356194490192345, 0x1.6a09e667f3bcdp-1, -0x1.6a09e667f3bccp-1},
		{stdmath.Pi, 0x1.1a62633145c07p-53, -0x1p+0},
		{5.497787143782138, -0x1.6a09e667f3bcep-1, 0x1.6a09e667f3bcbp-1},
		{16, -0x1.26d02085f20f8p-2, -0x1.ea5257e962f74p-1},
		{300000, 0x1.b6885f8d1df45p-4, -0x1.fd0e9ec921065p-1},
		{1647099, -0x1.4b02e5be91e9ep-2, 0x1.e4831257a62dap-1},
		{1647100, 0x1.3e479a61836ebp-1, 0x1.910d18d26c0d4p-1},
	}
	for _, tt := range tests {
		expectIdentical64(t, "Sin", tt.x, Sin(tt.x), tt.sin)
		expectIdentical64(t, "Cos", tt.x, Cos(tt.x), tt.cos)
	}
}

func TestKnownValues_Float32(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(float32) float32
		x, want float32
	}{
		{"Expf", Expf, -10.627, 0x1.96e2c2p-16},
		{"Expf", Expf, 13.458, 0x1.5582eep+19},
		{"Expf", Expf, -0.94587, 0x1.8da96ap-2},
		{"Expf", Expf, -13.975, 0x1.c9b984p-21},
		{"Exp2f", Exp2f, 2.8934, 0x1.db884ep+2},
		{"Exp2f", Exp2f, 31.296, 0x1.3a4cdcp+31},
		{"Exp2f", Exp2f, -36.584, 0x1.558facp-37},
		{"Logf", Logf, 237.97, 0x1.5e379ep+2},
		{"Logf", Logf, 369.96, 0x1.7a7510p+2},
		{"Logf", Logf, 625.72, 0x1.9c16fcp+2},
		{"Logf", Logf, 259.36, 0x1.63b9d4p+2},
		{"Sinf", Sinf, -4.5653, 0x1.fa78acp-1},
		{"Sinf", Sinf, 16.188, -0x1.d8e51ep-2},
		{"Sinf", Sinf, -13.229, -0x1.3afa72p-1},
		{"Cosf", Cosf, -9.153, -0x1.ed3504p-1},
		{"Cosf", Cosf, 13.468, 0x1.3d9c38p-1},
		{"Cosf", Cosf, 16.144, -0x1.d017fep-1},
		{"Tanf", Tanf, -1.1306, -0x1.0fc01cp+1},
		{"Tanf", Tanf, -1.0181, -0x1.9f07f8p+0},
		{"Tanf", Tanf, 1.3761, 0x1.448d8ap+2},
		{"Cbrtf", Cbrtf, 353.88, 0x1.c4b00ap+2},
		{"Cbrtf", Cbrtf, -310.38, -0x1.b1528ep+2},
		{"Cbrtf", Cbrtf, 254.19, 0x1.956a28p+2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectIdentical32(t, tt.name, tt.x, tt.fn(tt.x), tt.want)
		})
	}
}
