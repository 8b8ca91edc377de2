// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

const (
	ln2Hi  = 6.93147180369123816490e-01 // 0x3fe62e42, 0xfee00000
	ln2Lo  = 1.90821492927058770002e-10 // 0x3dea39ef, 0x35793c76
	invLn2 = 1.44269504088896338700e+00 // 0x3ff71547, 0x652b82fe

	expP1 = 1.66666666666666019037e-01  // 0x3FC55555, 0x5555553E
	expP2 = -2.77777777770155933842e-03 // 0xBF66C16C, 0x16BEBD93
	expP3 = 6.61375632143793436117e-05  // 0x3F11566A, 0xAF25DE2C
	expP4 = -1.65339022054652515390e-06 // 0xBEBBBD41, 0xC5D26BF1
	expP5 = 4.13813679705723846039e-08  // 0x3E663769, 0x72BEA4D0
)

var expHalf = [2]float64{0.5, -0.5}

// Exp returns e**x, the base-e exponential of x.
//
// The argument is reduced to r = x - k*ln2 with |r| <= 0.5*ln2 and exp(r)
// is evaluated with a degree 5 Remez approximation of R(r) = r*(exp(r)+1)/(exp(r)-1).
//
// Special cases are:
//
//	Exp(+Inf) = +Inf
//	Exp(-Inf) = 0
//	Exp(NaN) = NaN
//
// Very large values overflow to +Inf. Very small values underflow to 0.
func Exp(x float64) float64 {
	const (
		x1p1023 = 0x1p1023
		x1pm149 = 0x1p-149
	)

	hx := highWord(x)
	sign := int(hx >> 31)
	hx &= 0x7fffffff // high word of |x|

	// special cases
	if hx >= 0x4086232b { // if |x| >= 708.39...
		if isNaN64(x) {
			return x
		}
		if x > 709.782712893383973096 {
			// overflow if x!=inf
			return x * x1p1023
		}
		if x < -708.39641853226410622 {
			// underflow if x!=-inf
			observe32(float32(-x1pm149 / x))
			if x < -745.13321910194110842 {
				return 0
			}
		}
	}

	// argument reduction
	var hi, lo float64
	var k int32
	if hx > 0x3fd62e42 { // if |x| > 0.5 ln2
		if hx >= 0x3ff0a2b2 { // if |x| >= 1.5 ln2
			k = int32(float64(invLn2*x) + expHalf[sign])
		} else {
			k = int32(1 - sign - sign)
		}
		kf := float64(k)
		hi = x - float64(kf*ln2Hi) // k*ln2hi is exact here
		lo = kf * ln2Lo
		x = hi - lo
	} else if hx > 0x3e300000 { // if |x| > 2**-28
		hi = x
	} else {
		// inexact if x!=0
		observe64(x1p1023 + x)
		return 1 + x
	}

	// x is now in primary range
	xx := x * x
	c := x - float64(xx*(expP1+float64(xx*(expP2+float64(xx*(expP3+float64(xx*(expP4+float64(xx*expP5)))))))))
	y := 1 + (float64(x*c)/(2-c) - lo + hi)
	if k == 0 {
		return y
	}
	return Scalbn(y, k)
}

const (
	ln2Hif  float32 = 6.9314575195e-01 // 0x3f317200
	ln2Lof  float32 = 1.4286067653e-06 // 0x35bfbe8e
	invLn2f float32 = 1.4426950216e+00 // 0x3fb8aa3b

	// Domain [-0.34568, 0.34568], |x*(exp(x)+1)/(exp(x)-1) - p(x)| < 2**-27.74
	expP1f float32 = 0x1.55551ep-3  // 1.6666625440e-01
	expP2f float32 = -0x1.6aa42ap-9 // -2.7667332906e-03
)

var expHalff = [2]float32{0.5, -0.5}

// Expf is the float32 version of Exp.
func Expf(x float32) float32 {
	const (
		x1p127  float32 = 0x1p127
		x1pm126 float32 = 0x1p-126
	)

	hx := math.Float32bits(x)
	sign := int(hx >> 31) // sign bit of x
	hx &= 0x7fffffff      // high word of |x|

	// special cases
	if hx >= 0x42aeac50 { // if |x| >= -87.33655f or NaN
		if hx > 0x7f800000 { // NaN
			return x
		}
		if hx >= 0x42b17218 && sign == 0 { // x >= 88.722839f
			// overflow
			return x * x1p127
		}
		if sign != 0 {
			// underflow
			observe32(-x1pm126 / x)
			if hx >= 0x42cff1b5 { // x <= -103.972084f
				return 0
			}
		}
	}

	// argument reduction
	var hi, lo float32
	var k int32
	if hx > 0x3eb17218 { // if |x| > 0.5 ln2
		if hx > 0x3f851592 { // if |x| > 1.5 ln2
			k = int32(float32(invLn2f*x) + expHalff[sign])
		} else {
			k = int32(1 - sign - sign)
		}
		kf := float32(k)
		hi = x - float32(kf*ln2Hif) // k*ln2hi is exact here
		lo = kf * ln2Lof
		x = hi - lo
	} else if hx > 0x39000000 { // |x| > 2**-14
		hi = x
	} else {
		// raise inexact
		observe32(x1p127 + x)
		return 1 + x
	}

	// x is now in primary range
	xx := x * x
	c := x - float32(xx*(expP1f+float32(xx*expP2f)))
	y := 1 + (float32(x*c)/(2-c) - lo + hi)
	if k == 0 {
		return y
	}
	return Scalbnf(y, k)
}

const exp2TableSize = 256

// Exp2 returns 2**x, the base-2 exponential of x.
//
// x is split as k + i/256 + z with |z| <= 1/512, 2**(i/256) comes from an
// accurate table and 2**z from a degree 5 polynomial.
//
// Special cases are the same as Exp.
func Exp2(x float64) float64 {
	const (
		redux   = 0x1.8p52 / exp2TableSize
		p1      = 0x1.62e42fefa39efp-1
		p2      = 0x1.ebfbdff82c575p-3
		p3      = 0x1.c6b08d704a0a6p-5
		p4      = 0x1.3b2ab88f70400p-7
		p5      = 0x1.5d88003875c74p-10
		x1p1023 = 0x1p1023
		x1p52   = 0x1p52
		x1pm149 = -0x1p-149
	)

	// filter out exceptional cases
	ui := math.Float64bits(x)
	ix := uint32(ui>>32) & 0x7fffffff
	if ix >= 0x408ff000 { // |x| >= 1022 or nan
		if ix >= 0x40900000 && ui>>63 == 0 { // x >= 1024 or nan
			// overflow
			return x * x1p1023
		}
		if ix >= 0x7ff00000 { // -inf or -nan
			return -1 / x
		}
		if ui>>63 != 0 { // x <= -1022
			// underflow
			if x <= -1075 || x-x1p52+x1p52 != x {
				observe32(float32(x1pm149 / x))
			}
			if x <= -1075 {
				return 0
			}
		}
	} else if ix < 0x3c900000 { // |x| < 0x1p-54
		return 1 + x
	}

	// reduce x, computing z, i0 and k
	ui = math.Float64bits(x + redux)
	i0 := uint32(ui) + exp2TableSize/2
	ku := i0 / exp2TableSize * exp2TableSize
	k := int32(ku) / exp2TableSize
	i0 %= exp2TableSize
	z := x - (math.Float64frombits(ui) - redux)

	// r = exp2(y) = exp2t[i0] * p(z - eps[i0])
	t := exp2Table[2*i0]
	z -= exp2Table[2*i0+1]
	r := t + float64(float64(t*z)*(p1+float64(z*(p2+float64(z*(p3+float64(z*(p4+float64(z*p5)))))))))
	return Scalbn(r, k)
}

var exp2fTable = [16]uint64{
	0x3fe6a09e667f3bcd, 0x3fe7a11473eb0187, 0x3fe8ace5422aa0db, 0x3fe9c49182a3f090,
	0x3feae89f995ad3ad, 0x3fec199bdd85529c, 0x3fed5818dcfba487, 0x3feea4afa2a490da,
	0x3ff0000000000000, 0x3ff0b5586cf9890f, 0x3ff172b83c7d517b, 0x3ff2387a6e756238,
	0x3ff306fe0a31b715, 0x3ff3dea64c123422, 0x3ff4bfdad5362a27, 0x3ff5ab07dd485429,
}

// Exp2f is the float32 version of Exp2. The polynomial is evaluated in
// float64 against a 16 entry table and narrowed once at the end.
func Exp2f(x float32) float32 {
	const (
		tblSize         = 16
		redux   float32 = 0x1.8p23 / tblSize
		p1              = 0x1.62e430p-1
		p2              = 0x1.ebfbe0p-3
		p3              = 0x1.c6b348p-5
		p4              = 0x1.3b2c9cp-7
	)

	// filter out exceptional cases
	ui := math.Float32bits(x)
	ix := ui & 0x7fffffff
	if ix > 0x42fc0000 { // |x| > 126
		if ix > 0x7f800000 { // NaN
			return x
		}
		if ui >= 0x43000000 && ui < 0x80000000 { // x >= 128
			return x * 0x1p127
		}
		if ui >= 0x80000000 { // x < -126
			if ui >= 0xc3160000 || ui&0x0000ffff != 0 {
				observe32(-0x1p-149 / x)
			}
			if ui >= 0xc3160000 { // x <= -150
				return 0
			}
		}
	} else if ix <= 0x33000000 { // |x| <= 0x1p-25
		return 1 + x
	}

	// reduce x, computing z, i0 and k
	ui = math.Float32bits(x + redux)
	i0 := ui + tblSize/2
	k := i0 / tblSize
	uk := math.Float64frombits(uint64(0x3ff+k) << 52)
	i0 &= tblSize - 1
	uf := math.Float32frombits(ui) - redux
	z := float64(x - uf)

	// r = exp2(y) = exp2ft[i0] * p(z)
	r := math.Float64frombits(exp2fTable[i0])
	t := r * z
	r = r + float64(t*(p1+float64(z*p2))) + float64(float64(t*(z*z))*(p3+float64(z*p4)))
	return float32(r * uk)
}

const log2of10 = 3.32192809488736234787031942948939

var p10 = [31]float64{
	1e-15, 1e-14, 1e-13, 1e-12, 1e-11, 1e-10,
	1e-9, 1e-8, 1e-7, 1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 1e-1,
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
}

// Exp10 returns 10**x, the base-10 exponential of x.
//
// Integral x in [-15, 15] is an exact table lookup.
func Exp10(x float64) float64 {
	y, n := Modf(x)
	u := math.Float64bits(n)
	// fabs(n) < 16 without raising invalid on nan
	if (u>>52)&0x7ff < 0x3ff+4 {
		if y == 0 {
			return p10[int(n)+15]
		}
		y = Exp2(log2of10 * y)
		return y * p10[int(n)+15]
	}
	return Pow(10, x)
}

var p10f = [15]float32{
	1e-7, 1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 1e-1,
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
}

// Exp10f is the float32 version of Exp10. Integral x in [-7, 7] is an exact
// table lookup.
func Exp10f(x float32) float32 {
	y, n := Modff(x)
	u := math.Float32bits(n)
	// fabsf(n) < 8 without raising invalid on nan
	if (u>>23)&0xff < 0x7f+3 {
		if y == 0 {
			return p10f[int(n)+7]
		}
		y = Exp2f(log2of10 * y)
		return y * p10f[int(n)+7]
	}
	return float32(Exp2(log2of10 * float64(x)))
}

// kExpo2 returns exp(x)/2 for x >= log(DBL_MAX), slightly better than
// 0.5*exp(x/2)*exp(x/2).
func kExpo2(x float64) float64 {
	const (
		k    = 2043
		kln2 = 0x1.62066151add8bp+10
	)
	// note that k is odd and scale*scale overflows
	scale := fromWords(uint32(0x3ff+k/2)<<20, 0)
	// exp(x - k ln2) * 2**(k-1)
	return Exp(x-kln2) * scale * scale
}

// kExpo2f is the float32 version of kExpo2, used for x >= log(FLT_MAX).
func kExpo2f(x float32) float32 {
	const (
		k    = 235
		kln2 = 0x1.45c778p+7
	)
	// note that k is odd and scale*scale overflows
	scale := math.Float32frombits(uint32(0x7f+k/2) << 23)
	// exp(x - k ln2) * 2**(k-1)
	return Expf(x-kln2) * scale * scale
}
