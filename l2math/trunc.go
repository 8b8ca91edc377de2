// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Trunc returns the integral value of x rounded toward zero.
func Trunc(x float64) float64 {
	if native() && !isNaN64(x) {
		return math.Trunc(x)
	}
	u := math.Float64bits(x)
	e := int(u>>52&0x7ff) - 0x3ff + 12
	if e >= 52+12 {
		return x
	}
	if e < 12 {
		e = 1
	}
	m := ^uint64(0) >> e
	if u&m == 0 {
		return x
	}
	observe64(x + 0x1p120)
	return math.Float64frombits(u &^ m)
}

// Truncf is the float32 version of Trunc.
func Truncf(x float32) float32 {
	if native() && !isNaN32(x) {
		return float32(math.Trunc(float64(x)))
	}
	u := math.Float32bits(x)
	e := int(u>>23&0xff) - 0x7f + 9
	if e >= 23+9 {
		return x
	}
	if e < 9 {
		e = 1
	}
	m := ^uint32(0) >> e
	if u&m == 0 {
		return x
	}
	observe32(x + 0x1p120)
	return math.Float32frombits(u &^ m)
}
