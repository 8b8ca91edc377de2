// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// toInt is 2**52; adding and subtracting it rounds a binary64 to an integer
// in the current rounding mode.
const toInt = 1 / epsilon64

const (
	epsilon64 = 0x1p-52
	epsilon32 = 0x1p-23
	toIntf    = 1 / epsilon32
)

// Floor returns the greatest integral value less than or equal to x.
//
// Special cases are:
//
//	Floor(±0) = ±0
//	Floor(±Inf) = ±Inf
//	Floor(NaN) = NaN
func Floor(x float64) float64 {
	if native() && !isNaN64(x) {
		return math.Floor(x)
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
			return -1
		}
		return 0
	}
	if y > 0 {
		return x + y - 1
	}
	return x + y
}

// Floorf is the float32 version of Floor.
func Floorf(x float32) float32 {
	if native() && !isNaN32(x) {
		return float32(math.Floor(float64(x)))
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
		if u>>31 != 0 {
			u += m
		}
		u &^= m
	} else {
		observe32(x + 0x1p120)
		if u>>31 == 0 {
			u = 0
		} else if u<<1 != 0 {
			return -1
		}
	}
	return math.Float32frombits(u)
}
