// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Modf splits x into a fractional and an integral part, both with the sign
// of x. frac + integral == x exactly.
//
// Special cases are:
//
//	Modf(±Inf) = ±0, ±Inf
//	Modf(NaN) = NaN, NaN
func Modf(x float64) (frac, integral float64) {
	u := math.Float64bits(x)
	e := int(u>>52&0x7ff) - 0x3ff

	// no fractional part
	if e >= 52 {
		if e == 0x400 && u<<12 != 0 {
			return x, x
		}
		return math.Float64frombits(u & (1 << 63)), x
	}

	// no integral part
	if e < 0 {
		return x, math.Float64frombits(u & (1 << 63))
	}

	mask := ^uint64(0) >> 12 >> e
	if u&mask == 0 {
		return math.Float64frombits(u & (1 << 63)), x
	}
	integral = math.Float64frombits(u &^ mask)
	return x - integral, integral
}

// Modff is the float32 version of Modf.
func Modff(x float32) (frac, integral float32) {
	u := math.Float32bits(x)
	e := int(u>>23&0xff) - 0x7f

	if e >= 23 {
		if e == 0x80 && u<<9 != 0 {
			return x, x
		}
		return math.Float32frombits(u & 0x80000000), x
	}
	if e < 0 {
		return x, math.Float32frombits(u & 0x80000000)
	}

	mask := uint32(0x007fffff) >> e
	if u&mask == 0 {
		return math.Float32frombits(u & 0x80000000), x
	}
	integral = math.Float32frombits(u &^ mask)
	return x - integral, integral
}
