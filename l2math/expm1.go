// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Expm1 returns e**x - 1, the base-e exponential of x minus 1.
// It is more accurate than Exp(x) - 1 when x is near zero.
//
// The reduced argument r = x - k*ln2 carries a correction c for the
// rounding of hi-lo, and expm1(r) comes from a rational approximation
// of r*(exp(r)+1)/(exp(r)-1) with five scaled coefficients.
//
// Special cases are:
//
//	Expm1(+Inf) = +Inf
//	Expm1(-Inf) = -1
//	Expm1(NaN) = NaN
//
// Very large values overflow to -1 or +Inf.
func Expm1(x float64) float64 {
	const (
		oThreshold = 7.09782712893383973096e+02 // 0x40862E42, 0xFEFA39EF

		// scaled Q's: Qn_here = 2**n * Qn_above, for R(2*z) where z = hxs = x*x/2
		q1 = -3.33333333333331316428e-02 // BFA11111 111110F4
		q2 = 1.58730158725481460165e-03  // 3F5A01A0 19FE5585
		q3 = -7.93650757867487942473e-05 // BF14CE19 9EAADBB7
		q4 = 4.00821782732936239552e-06  // 3ED0CFCA 86E65239
		q5 = -2.01099218183624371326e-07 // BE8AFDB7 6E09C32D
	)

	hx := highWord(x) & 0x7fffffff
	sign := highWord(x)>>31 != 0

	// filter out huge and non-finite argument
	if hx >= 0x4043687A { // if |x|>=56*ln2
		if isNaN64(x) {
			return x
		}
		if sign {
			return -1
		}
		if x > oThreshold {
			return x * 0x1p1023
		}
	}

	// argument reduction
	var c float64
	var k int32
	if hx > 0x3fd62e42 { // if |x| > 0.5 ln2
		var hi, lo float64
		if hx < 0x3FF0A2B2 { // and |x| < 1.5 ln2
			if !sign {
				hi = x - ln2Hi
				lo = ln2Lo
				k = 1
			} else {
				hi = x + ln2Hi
				lo = -ln2Lo
				k = -1
			}
		} else {
			half := 0.5
			if sign {
				half = -0.5
			}
			k = int32(float64(invLn2*x) + half)
			t := float64(k)
			hi = x - float64(t*ln2Hi) // t*ln2Hi is exact here
			lo = t * ln2Lo
		}
		x = hi - lo
		c = (hi - x) - lo
	} else if hx < 0x3c900000 { // |x| < 2**-54, return x
		if hx < 0x00100000 {
			observe64(x)
		}
		return x
	}

	// x is now in primary range
	hfx := 0.5 * x
	hxs := x * hfx
	r1 := 1 + float64(hxs*(q1+float64(hxs*(q2+float64(hxs*(q3+float64(hxs*(q4+float64(hxs*q5)))))))))
	t := 3 - float64(r1*hfx)
	e := hxs * ((r1 - t) / (6 - float64(x*t)))
	if k == 0 { // c is 0
		return x - (float64(x*e) - hxs)
	}
	e = float64(x*(e-c)) - c
	e -= hxs
	// exp(x) ~ 2^k (x_reduced - e + 1)
	if k == -1 {
		return 0.5*(x-e) - 0.5
	}
	if k == 1 {
		if x < -0.25 {
			return -2 * (e - (x + 0.5))
		}
		return 1 + 2*(x-e)
	}
	twopk := math.Float64frombits(uint64(0x3ff+k) << 52) // 2^k
	if k < 0 || k > 56 {                                 // suffice to return exp(x)-1
		y := x - e + 1
		if k == 1024 {
			y = y * 2 * 0x1p1023
		} else {
			y = y * twopk
		}
		return y - 1
	}
	uf := math.Float64frombits(uint64(0x3ff-k) << 52) // 2^-k
	if k < 20 {
		return (x - e + (1 - uf)) * twopk
	}
	return (x - (e + uf) + 1) * twopk
}

// Expm1f is the float32 version of Expm1.
func Expm1f(x float32) float32 {
	const (
		oThreshold float32 = 8.8721679688e+01 // 0x42b17180

		// Domain [-0.34568, 0.34568], range ~[-6.694e-10, 6.696e-10]:
		// |6 / x * (1 + 2 * (1 / (exp(x) - 1) - 1 / x)) - q(x)| < 2**-30.04
		q1 float32 = -0x1.1110dp-5 // -3.3333212137e-2
		q2 float32 = 0x1.9e602p-10 // 1.5807170421e-3
	)

	ui := math.Float32bits(x)
	hx := ui & 0x7fffffff
	sign := ui>>31 != 0

	// filter out huge and non-finite argument
	if hx >= 0x4195b844 { // if |x|>=27*ln2
		if hx > 0x7f800000 { // NaN
			return x
		}
		if sign {
			return -1
		}
		if x > oThreshold {
			return x * 0x1p127
		}
	}

	// argument reduction
	var c float32
	var k int32
	if hx > 0x3eb17218 { // if |x| > 0.5 ln2
		var hi, lo float32
		if hx < 0x3F851592 { // and |x| < 1.5 ln2
			if !sign {
				hi = x - ln2Hi32
				lo = ln2Lo32
				k = 1
			} else {
				hi = x + ln2Hi32
				lo = -ln2Lo32
				k = -1
			}
		} else {
			var half float32 = 0.5
			if sign {
				half = -0.5
			}
			k = int32(float32(invLn2f*x) + half)
			t := float32(k)
			hi = x - float32(t*ln2Hi32) // t*ln2_hi is exact here
			lo = t * ln2Lo32
		}
		x = hi - lo
		c = (hi - x) - lo
	} else if hx < 0x33000000 { // when |x|<2**-25, return x
		if hx < 0x00800000 {
			observe32(x * x)
		}
		return x
	}

	// x is now in primary range
	hfx := 0.5 * x
	hxs := x * hfx
	r1 := 1 + float32(hxs*(q1+float32(hxs*q2)))
	t := 3 - float32(r1*hfx)
	e := hxs * ((r1 - t) / (6 - float32(x*t)))
	if k == 0 { // c is 0
		return x - (float32(x*e) - hxs)
	}
	e = float32(x*(e-c)) - c
	e -= hxs
	// exp(x) ~ 2^k (x_reduced - e + 1)
	if k == -1 {
		return 0.5*(x-e) - 0.5
	}
	if k == 1 {
		if x < -0.25 {
			return -2 * (e - (x + 0.5))
		}
		return 1 + 2*(x-e)
	}
	twopk := math.Float32frombits(uint32(0x7f+k) << 23) // 2^k
	if k < 0 || k > 56 {                                // suffice to return exp(x)-1
		y := x - e + 1
		if k == 128 {
			y = y * 2 * 0x1p127
		} else {
			y = y * twopk
		}
		return y - 1
	}
	uf := math.Float32frombits(uint32(0x7f-k) << 23) // 2^-k
	if k < 23 {
		return (x - e + (1 - uf)) * twopk
	}
	return (x - (e + uf) + 1) * twopk
}
