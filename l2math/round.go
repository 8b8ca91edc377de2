// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Round returns the nearest integer to x, rounding half-way cases away from
// zero.
//
// The bias 0.5-2**-54 keeps 0.49999999999999994 from rounding up while the
// exact halves still reach the next integer after the addition rounds.
func Round(x float64) float64 {
	return Trunc(x + Copysign(0.5-0.25*epsilon64, x))
}

// Roundf is the float32 version of Round.
func Roundf(x float32) float32 {
	return Truncf(x + Copysignf(0.5-0.25*epsilon32, x))
}

// Rint returns x rounded to an integer with ties to even.
func Rint(x float64) float64 {
	u := math.Float64bits(x)
	e := int(u>>52) & 0x7ff
	s := u>>63 != 0
	if e >= 0x3ff+52 {
		return x
	}
	var y float64
	if s {
		y = x - toInt + toInt
	} else {
		y = x + toInt - toInt
	}
	if y == 0 {
		if s {
			return math.Copysign(0, -1)
		}
		return 0
	}
	return y
}

// Rintf is the float32 version of Rint.
func Rintf(x float32) float32 {
	u := math.Float32bits(x)
	e := int(u>>23) & 0xff
	s := u>>31 != 0
	if e >= 0x7f+23 {
		return x
	}
	var y float32
	if s {
		y = x - toIntf + toIntf
	} else {
		y = x + toIntf - toIntf
	}
	if y == 0 {
		if s {
			return math.Float32frombits(0x80000000)
		}
		return 0
	}
	return y
}
