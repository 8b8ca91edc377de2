// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

const (
	pio2Hi = 1.57079632679489655800e+00 // 0x3FF921FB, 0x54442D18
	pio2Lo = 6.12323399573676603587e-17 // 0x3C91A626, 0x33145C07

	// coefficients for R(x^2)
	asinPS0 = 1.66666666666666657415e-01  // 0x3FC55555, 0x55555555
	asinPS1 = -3.25565818622400915405e-01 // 0xBFD4D612, 0x03EB6F7D
	asinPS2 = 2.01212532134862925881e-01  // 0x3FC9C155, 0x0E884455
	asinPS3 = -4.00555345006794114027e-02 // 0xBFA48228, 0xB5688F3B
	asinPS4 = 7.91534994289814532176e-04  // 0x3F49EFE0, 0x7501B288
	asinPS5 = 3.47933107596021167570e-05  // 0x3F023DE1, 0x0DFDF709
	asinQS1 = -2.40339491173441421878e+00 // 0xC0033A27, 0x1C8A2D4B
	asinQS2 = 2.02094576023350569471e+00  // 0x40002AE5, 0x9C598AC8
	asinQS3 = -6.88283971605453293030e-01 // 0xBFE6066C, 0x1B8D0159
	asinQS4 = 7.70381505559019352791e-02  // 0x3FB3B8C5, 0xB12E9282
)

// asinR is the rational approximation of (asin(x)-x)/x**3 in z = x*x.
func asinR(z float64) float64 {
	p := z * (asinPS0 + float64(z*(asinPS1+float64(z*(asinPS2+float64(z*(asinPS3+float64(z*(asinPS4+float64(z*asinPS5))))))))))
	q := 1 + float64(z*(asinQS1+float64(z*(asinQS2+float64(z*(asinQS3+float64(z*asinQS4)))))))
	return p / q
}

// Asin returns the arcsine, in radians, of x.
//
// For |x| < 0.5 asin(x) = x + x**3*R(x**2); above that it is computed as
// pi/2 - 2*asin(sqrt((1-|x|)/2)) with sqrt split into a 26-bit head and a
// correction to keep the last bits.
//
// Special cases are:
//
//	Asin(±0) = ±0
//	Asin(x) = NaN if x < -1 or x > 1
func Asin(x float64) float64 {
	hx := highWord(x)
	ix := hx & 0x7fffffff

	// |x| >= 1 or nan
	if ix >= 0x3ff00000 {
		lx := lowWord(x)
		if (ix-0x3ff00000)|lx == 0 {
			// asin(1) = +-pi/2 with inexact
			return float64(x*pio2Hi) + 0x1p-120
		}
		return 0 / (x - x)
	}

	// |x| < 0.5
	if ix < 0x3fe00000 {
		// if 0x1p-1022 <= |x| < 0x1p-26, avoid raising underflow
		if ix < 0x3e500000 && ix >= 0x00100000 {
			return x
		}
		return x + float64(x*asinR(x*x))
	}

	// 1 > |x| >= 0.5
	z := (1 - Fabs(x)) * 0.5
	s := Sqrt(z)
	r := asinR(z)
	if ix >= 0x3fef3333 { // if |x| > 0.975
		x = pio2Hi - (2*(s+float64(s*r)) - pio2Lo)
	} else {
		// f+c = sqrt(z)
		f := withLowWord(s, 0)
		c := (z - float64(f*f)) / (s + f)
		x = 0.5*pio2Hi - (float64(2*s*r) - (pio2Lo - 2*c) - (0.5*pio2Hi - 2*f))
	}
	if hx>>31 != 0 {
		return -x
	}
	return x
}

// Acos returns the arccosine, in radians, of x.
//
// Special cases are:
//
//	Acos(1) = +0
//	Acos(x) = NaN if x < -1 or x > 1
func Acos(x float64) float64 {
	hx := highWord(x)
	ix := hx & 0x7fffffff

	// |x| >= 1 or nan
	if ix >= 0x3ff00000 {
		lx := lowWord(x)
		if (ix-0x3ff00000)|lx == 0 {
			// acos(1)=0, acos(-1)=pi
			if hx>>31 != 0 {
				return 2*pio2Hi + 0x1p-120
			}
			return 0
		}
		return 0 / (x - x)
	}

	// |x| < 0.5
	if ix < 0x3fe00000 {
		if ix <= 0x3c600000 { // |x| < 2**-57
			return pio2Hi + 0x1p-120
		}
		return pio2Hi - (x - (pio2Lo - float64(x*asinR(x*x))))
	}

	// x < -0.5
	if hx>>31 != 0 {
		z := (1 + x) * 0.5
		s := Sqrt(z)
		w := float64(asinR(z)*s) - pio2Lo
		return 2 * (pio2Hi - (s + w))
	}

	// x > 0.5
	z := (1 - x) * 0.5
	s := Sqrt(z)
	df := withLowWord(s, 0)
	c := (z - float64(df*df)) / (s + df)
	w := float64(asinR(z)*s) + c
	return 2 * (df + w)
}

const (
	asinPS0f float32 = 1.6666586697e-01
	asinPS1f float32 = -4.2743422091e-02
	asinPS2f float32 = -8.6563630030e-03
	asinQS1f float32 = -7.0662963390e-01
)

func asinRf(z float32) float32 {
	p := z * (asinPS0f + float32(z*(asinPS1f+float32(z*asinPS2f))))
	q := 1 + float32(z*asinQS1f)
	return p / q
}

// Asinf is the float32 version of Asin. The reconstruction around 1
// runs in float64.
func Asinf(x float32) float32 {
	const pio2 = 1.570796326794896558e+00

	hx := math.Float32bits(x)
	ix := hx & 0x7fffffff
	if ix >= 0x3f800000 { // |x| >= 1
		if ix == 0x3f800000 { // |x| == 1
			// asin(+-1) = +-pi/2 with inexact
			return float32(float64(float64(x)*pio2) + 0x1p-120)
		}
		return 0 / (x - x) // asin(|x|>1) is NaN
	}
	if ix < 0x3f000000 { // |x| < 0.5
		// if 0x1p-126 <= |x| < 0x1p-12, avoid raising underflow
		if ix < 0x39800000 && ix >= 0x00800000 {
			return x
		}
		return x + float32(x*asinRf(x*x))
	}

	// 1 > |x| >= 0.5
	z := (1 - Fabsf(x)) * 0.5
	s := Sqrt(float64(z))
	xd := pio2 - 2*(s+float64(s*float64(asinRf(z))))
	if hx>>31 != 0 {
		return float32(-xd)
	}
	return float32(xd)
}

// Acosf is the float32 version of Acos.
func Acosf(x float32) float32 {
	const (
		pio2HiF float32 = 1.5707962513e+00 // 0x3fc90fda
		pio2LoF float32 = 7.5497894159e-08 // 0x33a22168
	)
	hx := math.Float32bits(x)
	ix := hx & 0x7fffffff

	// |x| >= 1 or nan
	if ix >= 0x3f800000 {
		if ix == 0x3f800000 {
			if hx>>31 != 0 {
				return 2*pio2HiF + 0x1p-120
			}
			return 0
		}
		return 0 / (x - x)
	}

	// |x| < 0.5
	if ix < 0x3f000000 {
		if ix <= 0x32800000 { // |x| < 2**-26
			return pio2HiF + 0x1p-120
		}
		return pio2HiF - (x - (pio2LoF - float32(x*asinRf(x*x))))
	}

	// x < -0.5
	if hx>>31 != 0 {
		z := (1 + x) * 0.5
		s := Sqrtf(z)
		w := float32(asinRf(z)*s) - pio2LoF
		return 2 * (pio2HiF - (s + w))
	}

	// x > 0.5
	z := (1 - x) * 0.5
	s := Sqrtf(z)
	df := math.Float32frombits(math.Float32bits(s) & 0xfffff000)
	c := (z - float32(df*df)) / (s + df)
	w := float32(asinRf(z)*s) + c
	return 2 * (df + w)
}
