// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Sin returns the sine of the radian argument x.
//
// Special cases are:
//
//	Sin(±0) = ±0
//	Sin(±Inf) = NaN
//	Sin(NaN) = NaN
func Sin(x float64) float64 {
	ix := highWord(x) & 0x7fffffff

	// |x| ~< pi/4
	if ix <= 0x3fe921fb {
		if ix < 0x3e500000 { // |x| < 2**-26
			// raise inexact if x != 0 and underflow if subnormal
			if ix < 0x00100000 {
				observe64(x / 0x1p120)
			} else {
				observe64(x + 0x1p120)
			}
			return x
		}
		return kSin(x, 0, 0)
	}

	// sin(Inf or NaN) is NaN
	if ix >= 0x7ff00000 {
		return x - x
	}

	n, y0, y1 := remPio2(x)
	switch n & 3 {
	case 0:
		return kSin(y0, y1, 1)
	case 1:
		return kCos(y0, y1)
	case 2:
		return -kSin(y0, y1, 1)
	default:
		return -kCos(y0, y1)
	}
}

// Cos returns the cosine of the radian argument x.
//
// Special cases are:
//
//	Cos(±Inf) = NaN
//	Cos(NaN) = NaN
func Cos(x float64) float64 {
	ix := highWord(x) & 0x7fffffff

	// |x| ~< pi/4
	if ix <= 0x3fe921fb {
		if ix < 0x3e46a09e { // |x| < 2**-27 * sqrt(2)
			// raise inexact if x != 0
			observe64(x + 0x1p120)
			return 1
		}
		return kCos(x, 0)
	}

	// cos(Inf or NaN) is NaN
	if ix >= 0x7ff00000 {
		return x - x
	}

	n, y0, y1 := remPio2(x)
	switch n & 3 {
	case 0:
		return kCos(y0, y1)
	case 1:
		return -kSin(y0, y1, 1)
	case 2:
		return -kCos(y0, y1)
	default:
		return kSin(y0, y1, 1)
	}
}

// Tan returns the tangent of the radian argument x.
//
// Special cases are:
//
//	Tan(±0) = ±0
//	Tan(±Inf) = NaN
//	Tan(NaN) = NaN
func Tan(x float64) float64 {
	ix := highWord(x) & 0x7fffffff

	// |x| ~< pi/4
	if ix <= 0x3fe921fb {
		if ix < 0x3e400000 { // |x| < 2**-27
			if ix < 0x00100000 {
				observe64(x / 0x1p120)
			} else {
				observe64(x + 0x1p120)
			}
			return x
		}
		return kTan(x, 0, false)
	}

	// tan(Inf or NaN) is NaN
	if ix >= 0x7ff00000 {
		return x - x
	}

	n, y0, y1 := remPio2(x)
	return kTan(y0, y1, n&1 != 0)
}

// Sincos returns Sin(x), Cos(x) sharing one argument reduction.
func Sincos(x float64) (sin, cos float64) {
	ix := highWord(x) & 0x7fffffff

	// |x| ~< pi/4
	if ix <= 0x3fe921fb {
		// if |x| < 2**-27 * sqrt(2)
		if ix < 0x3e46a09e {
			// raise inexact if x!=0 and underflow if subnormal
			if ix < 0x00100000 {
				observe64(x / 0x1p120)
			} else {
				observe64(x + 0x1p120)
			}
			return x, 1
		}
		return kSin(x, 0, 0), kCos(x, 0)
	}

	// sincos(Inf or NaN) is NaN
	if ix >= 0x7ff00000 {
		nan := x - x
		return nan, nan
	}

	n, y0, y1 := remPio2(x)
	s := kSin(y0, y1, 1)
	c := kCos(y0, y1)
	switch n & 3 {
	case 0:
		return s, c
	case 1:
		return c, -s
	case 2:
		return -s, -c
	default:
		return -c, s
	}
}

// Small multiples of pi/2 as float64, each the product rounded once.
const (
	pio2x1 = 0x1.921fb54442d18p+0
	pio2x2 = 0x1.921fb54442d18p+1
	pio2x3 = 0x1.2d97c7f3321d2p+2
	pio2x4 = 0x1.921fb54442d18p+2
)

// Sinf is the float32 version of Sin. Up to 9pi/4 the argument is shifted
// by a multiple of pi/2 in float64, which is exact enough to skip the
// general reduction.
func Sinf(x float32) float32 {
	ux := math.Float32bits(x)
	sign := ux>>31 != 0
	ix := ux & 0x7fffffff
	xd := float64(x)

	if ix <= 0x3f490fda { // |x| ~<= pi/4
		if ix < 0x39800000 { // |x| < 2**-12
			// raise inexact if x!=0 and underflow if subnormal
			if ix < 0x00800000 {
				observe32(x / 0x1p120)
			} else {
				observe32(x + 0x1p120)
			}
			return x
		}
		return kSinf(xd)
	}
	if ix <= 0x407b53d1 { // |x| ~<= 5*pi/4
		if ix <= 0x4016cbe3 { // |x| ~<= 3pi/4
			if sign {
				return -kCosf(xd + pio2x1)
			}
			return kCosf(xd - pio2x1)
		}
		if sign {
			return kSinf(-(xd + pio2x2))
		}
		return kSinf(-(xd - pio2x2))
	}
	if ix <= 0x40e231d5 { // |x| ~<= 9*pi/4
		if ix <= 0x40afeddf { // |x| ~<= 7*pi/4
			if sign {
				return kCosf(xd + pio2x3)
			}
			return -kCosf(xd - pio2x3)
		}
		if sign {
			return kSinf(xd + pio2x4)
		}
		return kSinf(xd - pio2x4)
	}

	// sin(Inf or NaN) is NaN
	if ix >= 0x7f800000 {
		return x - x
	}

	n, y := remPio2f(x)
	switch n & 3 {
	case 0:
		return kSinf(y)
	case 1:
		return kCosf(y)
	case 2:
		return kSinf(-y)
	default:
		return -kCosf(y)
	}
}

// Cosf is the float32 version of Cos.
func Cosf(x float32) float32 {
	ux := math.Float32bits(x)
	sign := ux>>31 != 0
	ix := ux & 0x7fffffff
	xd := float64(x)

	if ix <= 0x3f490fda { // |x| ~<= pi/4
		if ix < 0x39800000 { // |x| < 2**-12
			// raise inexact if x != 0
			observe32(x + 0x1p120)
			return 1
		}
		return kCosf(xd)
	}
	if ix <= 0x407b53d1 { // |x| ~<= 5*pi/4
		if ix > 0x4016cbe3 { // |x| ~> 3*pi/4
			if sign {
				return -kCosf(xd + pio2x2)
			}
			return -kCosf(xd - pio2x2)
		}
		if sign {
			return kSinf(xd + pio2x1)
		}
		return kSinf(pio2x1 - xd)
	}
	if ix <= 0x40e231d5 { // |x| ~<= 9*pi/4
		if ix > 0x40afeddf { // |x| ~> 7*pi/4
			if sign {
				return kCosf(xd + pio2x4)
			}
			return kCosf(xd - pio2x4)
		}
		if sign {
			return kSinf(-xd - pio2x3)
		}
		return kSinf(xd - pio2x3)
	}

	// cos(Inf or NaN) is NaN
	if ix >= 0x7f800000 {
		return x - x
	}

	n, y := remPio2f(x)
	switch n & 3 {
	case 0:
		return kCosf(y)
	case 1:
		return kSinf(-y)
	case 2:
		return -kCosf(y)
	default:
		return kSinf(y)
	}
}

// Tanf is the float32 version of Tan.
func Tanf(x float32) float32 {
	ux := math.Float32bits(x)
	sign := ux>>31 != 0
	ix := ux & 0x7fffffff
	xd := float64(x)

	if ix <= 0x3f490fda { // |x| ~<= pi/4
		if ix < 0x39800000 { // |x| < 2**-12
			// raise inexact if x!=0 and underflow if subnormal
			if ix < 0x00800000 {
				observe32(x / 0x1p120)
			} else {
				observe32(x + 0x1p120)
			}
			return x
		}
		return kTanf(xd, false)
	}
	if ix <= 0x407b53d1 { // |x| ~<= 5*pi/4
		if ix <= 0x4016cbe3 { // |x| ~<= 3pi/4
			if sign {
				return kTanf(xd+pio2x1, true)
			}
			return kTanf(xd-pio2x1, true)
		}
		if sign {
			return kTanf(xd+pio2x2, false)
		}
		return kTanf(xd-pio2x2, false)
	}
	if ix <= 0x40e231d5 { // |x| ~<= 9*pi/4
		if ix <= 0x40afeddf { // |x| ~<= 7*pi/4
			if sign {
				return kTanf(xd+pio2x3, true)
			}
			return kTanf(xd-pio2x3, true)
		}
		if sign {
			return kTanf(xd+pio2x4, false)
		}
		return kTanf(xd-pio2x4, false)
	}

	// tan(Inf or NaN) is NaN
	if ix >= 0x7f800000 {
		return x - x
	}

	n, y := remPio2f(x)
	return kTanf(y, n&1 != 0)
}

// Sincosf is the float32 version of Sincos.
func Sincosf(x float32) (sin, cos float32) {
	ux := math.Float32bits(x)
	sign := ux>>31 != 0
	ix := ux & 0x7fffffff
	xd := float64(x)

	// |x| ~<= pi/4
	if ix <= 0x3f490fda {
		// |x| < 2**-12
		if ix < 0x39800000 {
			// raise inexact if x!=0 and underflow if subnormal
			if ix < 0x00100000 {
				observe32(x / 0x1p120)
			} else {
				observe32(x + 0x1p120)
			}
			return x, 1
		}
		return kSinf(xd), kCosf(xd)
	}

	// |x| ~<= 5*pi/4
	if ix <= 0x407b53d1 {
		if ix <= 0x4016cbe3 { // |x| ~<= 3pi/4
			if sign {
				return -kCosf(xd + pio2x1), kSinf(xd + pio2x1)
			}
			return kCosf(pio2x1 - xd), kSinf(pio2x1 - xd)
		}
		// -sin(x+c) is not correct if x+c could be 0: -0 vs +0
		if sign {
			return -kSinf(xd + pio2x2), -kCosf(xd + pio2x2)
		}
		return -kSinf(xd - pio2x2), -kCosf(xd - pio2x2)
	}

	// |x| ~<= 9*pi/4
	if ix <= 0x40e231d5 {
		if ix <= 0x40afeddf { // |x| ~<= 7*pi/4
			if sign {
				return kCosf(xd + pio2x3), -kSinf(xd + pio2x3)
			}
			return -kCosf(xd - pio2x3), kSinf(xd - pio2x3)
		}
		if sign {
			return kSinf(xd + pio2x4), kCosf(xd + pio2x4)
		}
		return kSinf(xd - pio2x4), kCosf(xd - pio2x4)
	}

	// sin(Inf or NaN) is NaN
	if ix >= 0x7f800000 {
		nan := x - x
		return nan, nan
	}

	n, y := remPio2f(x)
	s := kSinf(y)
	c := kCosf(y)
	switch n & 3 {
	case 0:
		return s, c
	case 1:
		return c, -s
	case 2:
		return -s, -c
	default:
		return -c, s
	}
}
