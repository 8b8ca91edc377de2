// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Nextafter returns the next representable float64 after x in the
// direction of y.
//
// Special cases are:
//
//	Nextafter(x, x) = x
//	Nextafter(NaN, y) = NaN
//	Nextafter(x, NaN) = NaN
//	Nextafter(±0, y) = ±smallest subnormal with the sign of y
func Nextafter(x, y float64) float64 {
	if isNaN64(x) || isNaN64(y) {
		return x + y
	}
	ux, uy := math.Float64bits(x), math.Float64bits(y)
	if ux == uy {
		return y
	}
	const sign = 1 << 63
	ax := ux &^ sign
	ay := uy &^ sign
	switch {
	case ax == 0:
		if ay == 0 {
			return y
		}
		ux = uy&sign | 1
	case ax > ay || (ux^uy)&sign != 0:
		ux--
	default:
		ux++
	}
	r := math.Float64frombits(ux)
	e := ux >> 52 & 0x7ff
	// overflow if r is infinite and x is finite
	if e == 0x7ff {
		observe64(x + x)
	}
	// underflow if r is subnormal or zero
	if e == 0 {
		observe64(float64(x*x) + float64(r*r))
	}
	return r
}

// Nextafterf is the float32 version of Nextafter.
func Nextafterf(x, y float32) float32 {
	if isNaN32(x) || isNaN32(y) {
		return x + y
	}
	ux, uy := math.Float32bits(x), math.Float32bits(y)
	if ux == uy {
		return y
	}
	const sign = 0x80000000
	ax := ux & 0x7fffffff
	ay := uy & 0x7fffffff
	switch {
	case ax == 0:
		if ay == 0 {
			return y
		}
		ux = uy&sign | 1
	case ax > ay || (ux^uy)&sign != 0:
		ux--
	default:
		ux++
	}
	r := math.Float32frombits(ux)
	e := ux & 0x7f800000
	if e == 0x7f800000 {
		observe32(x + x)
	}
	if e == 0 {
		observe32(float32(x*x) + float32(r*r))
	}
	return r
}
