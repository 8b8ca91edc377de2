// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Frexp breaks x into a normalized fraction in [0.5, 1) and an integral
// power of two, x == frac × 2**exp.
//
// Special cases are:
//
//	Frexp(±0) = ±0, 0
//	Frexp(±Inf) = ±Inf, 0
//	Frexp(NaN) = NaN, 0
func Frexp(x float64) (frac float64, exp int32) {
	u := math.Float64bits(x)
	ee := int32(u>>52) & 0x7ff

	if ee == 0 {
		if x == 0 {
			return x, 0
		}
		// subnormal: one rescale by 2**64 always lands in the normal range
		frac, exp = Frexp(x * 0x1p64)
		return frac, exp - 64
	}
	if ee == 0x7ff {
		return x, 0
	}

	exp = ee - 0x3fe
	u &= 0x800fffffffffffff
	u |= 0x3fe0000000000000
	return math.Float64frombits(u), exp
}

// Frexpf is the float32 version of Frexp.
func Frexpf(x float32) (frac float32, exp int32) {
	u := math.Float32bits(x)
	ee := int32(u>>23) & 0xff

	if ee == 0 {
		if x == 0 {
			return x, 0
		}
		frac, exp = Frexpf(x * 0x1p64)
		return frac, exp - 64
	}
	if ee == 0xff {
		return x, 0
	}

	exp = ee - 0x7e
	u &= 0x807fffff
	u |= 0x3f000000
	return math.Float32frombits(u), exp
}

// Ilogb returns the unbiased binary exponent of x as an integer.
//
// Special cases are:
//
//	Ilogb(±0) = FP_ILOGB0
//	Ilogb(NaN) = FP_ILOGBNAN
//	Ilogb(±Inf) = MaxInt32
func Ilogb(x float64) int32 {
	i := math.Float64bits(x)
	e := int32(i>>52) & 0x7ff
	if e == 0 {
		i <<= 12
		if i == 0 {
			observe64((x - x) / (x - x))
			return FP_ILOGB0
		}
		// subnormal x
		for e = -0x3ff; i>>63 == 0; i <<= 1 {
			e--
		}
		return e
	}
	if e == 0x7ff {
		observe64((x - x) / (x - x))
		if i<<12 != 0 {
			return FP_ILOGBNAN
		}
		return math.MaxInt32
	}
	return e - 0x3ff
}

// Ilogbf is the float32 version of Ilogb.
func Ilogbf(x float32) int32 {
	i := math.Float32bits(x)
	e := int32(i>>23) & 0xff
	if e == 0 {
		i <<= 9
		if i == 0 {
			observe32((x - x) / (x - x))
			return FP_ILOGB0
		}
		for e = -0x7f; i>>31 == 0; i <<= 1 {
			e--
		}
		return e
	}
	if e == 0xff {
		observe32((x - x) / (x - x))
		if i<<9 != 0 {
			return FP_ILOGBNAN
		}
		return math.MaxInt32
	}
	return e - 0x7f
}

// Results of Ilogb for zero and NaN arguments.
const (
	FP_ILOGBNAN = math.MinInt32
	FP_ILOGB0   = FP_ILOGBNAN
)
