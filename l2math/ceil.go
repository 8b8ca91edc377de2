// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Ceil returns the least integral value greater than or equal to x.
//
// Special cases are:
//
//	Ceil(±0) = ±0
//	Ceil(±Inf) = ±Inf
//	Ceil(NaN) = NaN
//	Ceil(x) = -0 for -1 < x < 0
func Ceil(x float64) float64 {
	if native() && !isNaN64(x) {
		return math.Ceil(x)
	}
	u := math.Float64bits(x)
	e := int(u>>52) & 0x7ff
	if e >= 0x3ff+52 || x == 0 {
		return x
	}
	var y float64
	if u>>63 != 0 {
		y = x - toInt + toInt - x
	} else {
		y = x + toInt - toInt - x
	}
	if e <= 0x3ff-1 {
		observe64(y)
		if u>>63 != 0 {
			return math.Copysign(0, -1)
		}
		return 1
	}
	if y < 0 {
		return x + y + 1
	}
	return x + y
}

// Ceilf is the float32 version of Ceil.
func Ceilf(x float32) float32 {
	if native() && !isNaN32(x) {
		return float32(math.Ceil(float64(x)))
	}
	u := math.Float32bits(x)
	e := int(u>>23&0xff) - 0x7f
	if e >= 23 {
		return x
	}
	if e >= 0 {
		m := uint32(0x007fffff) >> e
		if u&m == 0 {
			return x
		}
		observe32(x + 0x1p120)
		if u>>31 == 0 {
			u += m
		}
		u &^= m
	} else {
		observe32(x + 0x1p120)
		if u>>31 != 0 {
			u = 0x80000000
		} else if u<<1 != 0 {
			return 1
		}
	}
	return math.Float32frombits(u)
}
