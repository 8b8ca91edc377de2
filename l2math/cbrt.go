// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

const (
	cbrtB1 = 715094163 // (1023-1023/3-0.03306235651)*2**20
	cbrtB2 = 696219795 // (1023-1023/3-54/3-0.03306235651)*2**20

	// |1/cbrt(x) - p(x)| < 2**-23.5
	cbrtP0 = 1.87595182427177009643   // 0x3ffe03e6, 0x0f61e692
	cbrtP1 = -1.88497979543377169875  // 0xbffe28e0, 0x92f02420
	cbrtP2 = 1.621429720105354466140  // 0x3ff9f160, 0x4a49d6c2
	cbrtP3 = -0.758397934778766047437 // 0xbfe844cb, 0xbee751d9
	cbrtP4 = 0.145996192886612446982  // 0x3fc2b000, 0xd4e4edd7
)

// Cbrt returns the cube root of x.
//
// Special cases are:
//
//	Cbrt(±0) = ±0
//	Cbrt(±Inf) = ±Inf
//	Cbrt(NaN) = NaN
func Cbrt(x float64) float64 {
	u := math.Float64bits(x)
	hx := uint32(u>>32) & 0x7fffffff

	if hx >= 0x7ff00000 { // cbrt(NaN,INF) is itself
		return x + x
	}

	// Rough cbrt to 5 bits: divide the exponent by 3 and fold the mantissa
	// bits in with a tuned bias.
	if hx < 0x00100000 { // zero or subnormal?
		u = math.Float64bits(x * 0x1p54)
		hx = uint32(u>>32) & 0x7fffffff
		if hx == 0 {
			return x
		}
		hx = hx/3 + cbrtB2
	} else {
		hx = hx/3 + cbrtB1
	}
	u &= 1 << 63
	u |= uint64(hx) << 32
	t := math.Float64frombits(u)

	// New cbrt to 23 bits: cbrt(x) = t*cbrt(x/t**3) ~= t*P(t**3/x).
	r := (t * t) * (t / x)
	t = t * ((cbrtP0 + float64(r*(cbrtP1+float64(r*cbrtP2)))) +
		float64((r*r*r)*(cbrtP3+float64(r*cbrtP4))))

	// Round t away from zero to 23 bits so t*t is exact and t is larger
	// than cbrt(x) in magnitude.
	u = math.Float64bits(t)
	u = (u + 0x80000000) & 0xffffffffc0000000
	t = math.Float64frombits(u)

	// One Newton step to 53 bits with error < 0.667 ulps.
	s := t * t
	r = x / s
	w := t + t
	r = (r - t) / (w + r)
	return t + float64(t*r)
}

// Cbrtf is the float32 version of Cbrt. Both Newton steps run in
// float64 before the final narrowing.
func Cbrtf(x float32) float32 {
	const (
		b1 = 709958130 // B1 = (127-127.0/3-0.03306235651)*2**23
		b2 = 642849266 // B2 = (127-127.0/3-24/3-0.03306235651)*2**23
	)
	u := math.Float32bits(x)
	hx := u & 0x7fffffff

	if hx >= 0x7f800000 {
		return x + x
	}
	if hx < 0x00800000 {
		if hx == 0 {
			return x
		}
		u = math.Float32bits(x * 0x1p24)
		hx = u & 0x7fffffff
		hx = hx/3 + b2
	} else {
		hx = hx/3 + b1
	}
	u &= 0x80000000
	u |= hx

	// First step Newton iteration (solving t*t-x/t == 0) to 16 bits.
	xd := float64(x)
	t := float64(math.Float32frombits(u))
	r := t * t * t
	t = t * (xd + xd + r) / (xd + r + r)

	// Second step Newton iteration to 47 bits.
	r = t * t * t
	t = t * (xd + xd + r) / (xd + r + r)
	return float32(t)
}
