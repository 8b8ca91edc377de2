// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// sq returns hi+lo == x*x exactly, splitting x into 26-bit halves.
func sq(x float64) (hi, lo float64) {
	const split = 0x1p27 + 1
	xc := x * split
	xh := x - xc + xc
	xl := x - xh
	hi = x * x
	lo = float64(xh*xh) - hi + float64(2*xh*xl) + float64(xl*xl)
	return hi, lo
}

// Hypot returns sqrt(x*x + y*y) without undue overflow or underflow.
//
// Special cases are:
//
//	Hypot(±Inf, q) = +Inf
//	Hypot(p, ±Inf) = +Inf
//	Hypot(NaN, q) = NaN
//	Hypot(p, NaN) = NaN
func Hypot(x, y float64) float64 {
	ux := math.Float64bits(x) &^ (1 << 63)
	uy := math.Float64bits(y) &^ (1 << 63)
	if ux < uy {
		ux, uy = uy, ux
	}
	ex := int(ux >> 52)
	ey := int(uy >> 52)
	x = math.Float64frombits(ux)
	y = math.Float64frombits(uy)

	// note: hypot(inf,nan) == inf
	if ey == 0x7ff {
		return y
	}
	if ex == 0x7ff || uy == 0 {
		return x
	}
	// note: hypot(x,y) ~= x + y*y/x/2 with inexact for small y/x
	// 64 difference is enough for ld80 double_t
	if ex-ey > 64 {
		return x + y
	}

	// precise sqrt argument in nearest rounding mode without overflow
	// xh*xh must not overflow and xl*xl must not underflow in sq
	z := 1.0
	if ex > 0x3ff+510 {
		z = 0x1p700
		x *= 0x1p-700
		y *= 0x1p-700
	} else if ey < 0x3ff-450 {
		z = 0x1p-700
		x *= 0x1p700
		y *= 0x1p700
	}
	hx, lx := sq(x)
	hy, ly := sq(y)
	return z * Sqrt(ly+lx+hy+hx)
}

// Hypotf is the float32 version of Hypot. The sum of squares is formed in
// float64 and narrowed before the square root.
func Hypotf(x, y float32) float32 {
	ux := math.Float32bits(x) & 0x7fffffff
	uy := math.Float32bits(y) & 0x7fffffff
	if ux < uy {
		ux, uy = uy, ux
	}
	x = math.Float32frombits(ux)
	y = math.Float32frombits(uy)
	if uy == 0xff<<23 {
		return y
	}
	if ux >= 0xff<<23 || uy == 0 || ux-uy >= 25<<23 {
		return x + y
	}

	z := float32(1)
	if ux >= (0x7f+60)<<23 {
		z = 0x1p90
		x *= 0x1p-90
		y *= 0x1p-90
	} else if uy < (0x7f-60)<<23 {
		z = 0x1p-90
		x *= 0x1p90
		y *= 0x1p90
	}
	xd, yd := float64(x), float64(y)
	return z * Sqrtf(float32(float64(xd*xd)+float64(yd*yd)))
}
