// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Fabs returns the absolute value of x by clearing the sign bit. NaN
// payloads are kept.
func Fabs(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) &^ (1 << 63))
}

// Fabsf is the float32 version of Fabs.
func Fabsf(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

// Copysign returns a value with the magnitude of x and the sign of y.
func Copysign(x, y float64) float64 {
	const sign = 1 << 63
	return math.Float64frombits(math.Float64bits(x)&^sign | math.Float64bits(y)&sign)
}

// Copysignf is the float32 version of Copysign.
func Copysignf(x, y float32) float32 {
	const sign = 1 << 31
	return math.Float32frombits(math.Float32bits(x)&^sign | math.Float32bits(y)&sign)
}

// Fdim returns the positive difference max(x-y, 0). A NaN argument is
// returned unchanged.
func Fdim(x, y float64) float64 {
	if isNaN64(x) {
		return x
	}
	if isNaN64(y) {
		return y
	}
	if x > y {
		return x - y
	}
	return 0
}

// Fdimf is the float32 version of Fdim.
func Fdimf(x, y float32) float32 {
	if isNaN32(x) {
		return x
	}
	if isNaN32(y) {
		return y
	}
	if x > y {
		return x - y
	}
	return 0
}

// Fmax returns the larger of x and y. If exactly one argument is NaN the
// other is returned; +0 is larger than -0.
func Fmax(x, y float64) float64 {
	if isNaN64(x) {
		return y
	}
	if isNaN64(y) {
		return x
	}
	if math.Signbit(x) != math.Signbit(y) {
		if math.Signbit(x) {
			return y
		}
		return x
	}
	if x < y {
		return y
	}
	return x
}

// Fmaxf is the float32 version of Fmax.
func Fmaxf(x, y float32) float32 {
	if isNaN32(x) {
		return y
	}
	if isNaN32(y) {
		return x
	}
	sx, sy := math.Float32bits(x)>>31, math.Float32bits(y)>>31
	if sx != sy {
		if sx != 0 {
			return y
		}
		return x
	}
	if x < y {
		return y
	}
	return x
}

// Fmin returns the smaller of x and y. If exactly one argument is NaN the
// other is returned; -0 is smaller than +0.
func Fmin(x, y float64) float64 {
	if isNaN64(x) {
		return y
	}
	if isNaN64(y) {
		return x
	}
	if math.Signbit(x) != math.Signbit(y) {
		if math.Signbit(x) {
			return x
		}
		return y
	}
	if x < y {
		return x
	}
	return y
}

// Fminf is the float32 version of Fmin.
func Fminf(x, y float32) float32 {
	if isNaN32(x) {
		return y
	}
	if isNaN32(y) {
		return x
	}
	sx, sy := math.Float32bits(x)>>31, math.Float32bits(y)>>31
	if sx != sy {
		if sx != 0 {
			return x
		}
		return y
	}
	if x < y {
		return x
	}
	return y
}
