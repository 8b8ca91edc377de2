package l2math

import (
	stdmath "math"
	"testing"
)

func TestBessel_Known(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
		x    float64
		want float64
	}{
		{"J0_one", J0, 1, 0.7651976865579666},
		{"J1_one", J1, 1, 0.44005058574493355},
		{"Y0_one", Y0, 1, 0.08825696421567697},
		{"Y1_one", Y1, 1, -0.7812128213002887},
		{"J0_first_zero", J0, 2.404825557695773, 0},
		{"J1_first_zero", J1, 3.8317059702075125, 0},
		{"J0_far", J0, 1e6, stdmath.J0(1e6)},
		{"Y1_far", Y1, 1e8, stdmath.Y1(1e8)},
		{"J0_negative", J0, -3, stdmath.J0(3)},
		{"J1_negative", J1, -3, -stdmath.J1(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectClose64(t, tt.name, tt.x, tt.fn(tt.x), tt.want, 4, 1e-15)
		})
	}
}

func TestBessel_OrderIdentities(t *testing.T) {
	rng := newRand()
	for _, x := range uniform(rng, 500, 0.01, 50) {
		expectIdentical64(t, "Jn(0)", x, Jn(0, x), J0(x))
		expectIdentical64(t, "Jn(1)", x, Jn(1, x), J1(x))
		expectIdentical64(t, "Jn(-1)", x, Jn(-1, x), -J1(x))
		expectIdentical64(t, "Yn(0)", x, Yn(0, x), Y0(x))
		expectIdentical64(t, "Yn(1)", x, Yn(1, x), Y1(x))
		expectIdentical64(t, "Yn(-1)", x, Yn(-1, x), -Y1(x))
	}
	for _, x := range uniform32(rng, 500, 0.01, 50) {
		expectIdentical32(t, "Jnf(0)", x, Jnf(0, x), J0f(x))
		expectIdentical32(t, "Jnf(1)", x, Jnf(1, x), J1f(x))
		expectIdentical32(t, "Ynf(0)", x, Ynf(0, x), Y0f(x))
		expectIdentical32(t, "Ynf(1)", x, Ynf(1, x), Y1f(x))
	}
}

func TestBesselN_SpecialCases(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"Jn_nan", Jn(3, nan), nan},
		{"Jn_inf", Jn(3, inf), 0},
		{"Jn_zero", Jn(4, 0), 0},
		{"Yn_zero", Yn(3, 0), negInf},
		{"Yn_negative", Yn(2, -1), nan},
		{"Yn_inf", Yn(2, inf), 0},
		{"Yn_odd_negative_order", Yn(-3, 0), inf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectIdentical64(t, tt.name, 0, tt.got, tt.want)
		})
	}
}

func TestBesselN_LargeOrder(t *testing.T) {
	for _, tc := range []struct {
		n int32
		x float64
	}{{10, 3}, {30, 10}, {50, 100}, {100, 1e-3}, {7, 1e20}} {
		expectClose64(t, "Jn", tc.x, Jn(tc.n, tc.x), stdmath.Jn(int(tc.n), tc.x), 64, 1e-15)
		if tc.x >= 1 {
			expectClose64(t, "Yn", tc.x, Yn(tc.n, tc.x), stdmath.Yn(int(tc.n), tc.x), 64, 1e-15)
		}
	}
}
