// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Gamma(x) is approximated with the Lanczos formula
//
//	Gamma(x) = S(x) * (x+g-0.5)^(x-0.5) / exp(x+g-0.5)
//
// where S is a rational function of degree 12,
// g = 6.024680040776729583740234375 and gmhalf = g - 0.5.
// Negative arguments use the reflection formula
// Gamma(-x)*Gamma(x) = -pi/(x*sin(pi*x)).

const (
	lanczosN = 12
	gmhalf   = 5.524680040776729583740234375
)

var lanczosNum = [lanczosN + 1]float64{
	23531376880.41075968857200767445163675473,
	42919803642.64909876895789904700198885093,
	35711959237.35566804944018545154716670596,
	17921034426.03720969991975575445893111267,
	6039542586.35202800506429164430729792107,
	1439720407.311721673663223072794912393972,
	248874557.8620541565114603864132294232163,
	31426415.58540019438061423162831820536287,
	2876370.628935372441225409051620849613599,
	186056.2653952234950402949897160456992822,
	8071.672002365816210638002902272250613822,
	210.8242777515793458725097339207133627117,
	2.506628274631000270164908177133837338626,
}

var lanczosDen = [lanczosN + 1]float64{
	0, 39916800, 120543840, 150917976, 105258076, 45995730, 13339535,
	2637558, 357423, 32670, 1925, 66, 1,
}

// factorials[n] = n!
var factorials = [...]float64{
	1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800, 39916800,
	479001600, 6227020800, 87178291200, 1307674368000, 20922789888000,
	355687428096000, 6402373705728000, 121645100408832000,
	2432902008176640000, 51090942171709440000, 1124000727777607680000,
}

// lanczosSum evaluates S(x) for positive x. Large x is evaluated in
// powers of 1/x to avoid overflow.
func lanczosSum(x float64) float64 {
	var num, den float64
	if x < 8 {
		for i := lanczosN; i >= 0; i-- {
			num = float64(num*x) + lanczosNum[i]
			den = float64(den*x) + lanczosDen[i]
		}
	} else {
		for i := 0; i <= lanczosN; i++ {
			num = num/x + lanczosNum[i]
			den = den/x + lanczosDen[i]
		}
	}
	return num / den
}

// Tgamma returns the Gamma function of x.
//
// Integral arguments up to 23 are exact.
//
// Special cases are:
//
//	Tgamma(+Inf) = +Inf
//	Tgamma(±0) = ±Inf
//	Tgamma(-integer) = NaN
//	Tgamma(-Inf) = NaN
//	Tgamma(x) = +Inf for x >= 172
//	Tgamma(NaN) = NaN
func Tgamma(x float64) float64 {
	u := math.Float64bits(x)
	ix := uint32(u>>32) & 0x7fffffff
	neg := u>>63 != 0

	if ix >= 0x7ff00000 {
		// tgamma(nan)=nan, tgamma(inf)=inf, tgamma(-inf)=nan with invalid
		return x + math.Inf(1)
	}
	if ix < (0x3ff-54)<<20 {
		// |x| < 2^-54: tgamma(x) ~ 1/x, ±0 raises div-by-zero
		return 1 / x
	}

	// raise inexact when non-integer
	if x == Floor(x) {
		if neg {
			return (x - x) / (x - x)
		}
		if x <= float64(len(factorials)) {
			return factorials[int(x)-1]
		}
	}

	// x >= 172: overflow. x <= -184: ±0 with underflow.
	if ix >= 0x40670000 {
		if neg {
			observe32(float32(0x1p-126 / x))
			if Floor(x)*0.5 == Floor(x*0.5) {
				return 0
			}
			return Copysign(0, -1)
		}
		return x * 0x1p1023
	}

	absx := x
	if neg {
		absx = -x
	}

	// handle the error of x + g - 0.5
	y := absx + gmhalf
	var dy float64
	if absx > gmhalf {
		dy = y - absx
		dy -= gmhalf
	} else {
		dy = y - gmhalf
		dy -= absx
	}

	z := absx - 0.5
	r := lanczosSum(absx) * Exp(-y)
	if x < 0 {
		// sinPi(absx) is not 0, integers are already handled
		r = -pi / (sinPi(absx) * absx * r)
		dy = -dy
		z = -z
	}
	r += dy * (gmhalf + 0.5) * r / y
	z = Pow(y, 0.5*z)
	return r * z * z
}

// Tgammaf returns the Gamma function of x, evaluated in float64 and
// rounded once.
func Tgammaf(x float32) float32 {
	return float32(Tgamma(float64(x)))
}

// Factorial returns x! as Gamma(x+1). It is exact for integral x in [0, 22].
func Factorial(x float64) float64 {
	return Tgamma(x + 1)
}

// Factorialf returns x! as Gamma(x+1) in float32 precision.
func Factorialf(x float32) float32 {
	return Tgammaf(x + 1)
}
