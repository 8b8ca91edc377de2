// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

const (
	toInt15 = 1.5 / epsilon64

	// 53 bits of 2/pi
	invPio2 = 6.36619772367581382433e-01 // 0x3FE45F30, 0x6DC9C883

	// pi/2 split into three 33-bit leading parts and their tails
	pio2_1  = 1.57079632673412561417e+00 // 0x3FF921FB, 0x54400000
	pio2_1t = 6.07710050650619224932e-11 // 0x3DD0B461, 0x1A626331
	pio2_2  = 6.07710050630396597660e-11 // 0x3DD0B461, 0x1A600000
	pio2_2t = 2.02226624879595063154e-21 // 0x3BA3198A, 0x2E037073
	pio2_3  = 2.02226624871116645580e-21 // 0x3BA3198A, 0x2E000000
	pio2_3t = 8.47842766036889956997e-32 // 0x397B839A, 0x252049C1
)

// remPio2 returns n and y0+y1 = x - n*pi/2 with |y0+y1| <= pi/4
// (slightly more near the medium-range boundaries). NaN and Inf
// reduce to NaN with n = 0.
func remPio2(x float64) (n int32, y0, y1 float64) {
	sign := math.Float64bits(x)>>63 != 0
	ix := highWord(x) & 0x7fffffff

	// Small multiples of pi/2 subtract one 33+53 bit approximation; the
	// values close to a multiple fall through to the medium path to avoid
	// cancellation.
	switch {
	case ix <= 0x400f6a7a: // |x| ~<= 5pi/4
		if ix&0xfffff == 0x921fb { // |x| ~= pi/2 or 2pi/2
			return remPio2Medium(x, ix)
		}
		if ix <= 0x4002d97c { // |x| ~<= 3pi/4
			return remPio2Small(x, sign, 1)
		}
		return remPio2Small(x, sign, 2)
	case ix <= 0x401c463b: // |x| ~<= 9pi/4
		if ix <= 0x4015fdbc { // |x| ~<= 7pi/4
			if ix == 0x4012d97c { // |x| ~= 3pi/2
				return remPio2Medium(x, ix)
			}
			return remPio2Small(x, sign, 3)
		}
		if ix == 0x401921fb { // |x| ~= 4pi/2
			return remPio2Medium(x, ix)
		}
		return remPio2Small(x, sign, 4)
	case ix < 0x413921fb: // |x| ~< 2^20*(pi/2), medium size
		return remPio2Medium(x, ix)
	case ix >= 0x7ff00000: // x is inf or NaN
		y0 = x - x
		return 0, y0, y0
	}

	// All other (large) arguments: set z = scalbn(|x|,-ilogb(x)+23) and
	// split it into three 24-bit integers.
	u := math.Float64bits(x)
	u &= ^uint64(0) >> 12
	u |= (0x3ff + 23) << 52
	z := math.Float64frombits(u)
	var tx [3]float64
	for i := 0; i < 2; i++ {
		tx[i] = float64(int32(z))
		z = (z - tx[i]) * 0x1p24
	}
	tx[2] = z
	// skip zero terms, first term is non-zero
	i := 2
	for i != 0 && tx[i] == 0 {
		i--
	}
	var ty [2]float64
	n = remPio2Large(tx[:i+1], &ty, int(ix>>20)-(0x3ff+23), 1)
	if sign {
		return -n, -ty[0], -ty[1]
	}
	return n, ty[0], ty[1]
}

// remPio2Small reduces |x| <= 9pi/4 near k*pi/2 for k in 1..4. One round
// against pio2_1 is good to 85 bits.
func remPio2Small(x float64, sign bool, k int32) (int32, float64, float64) {
	kf := float64(k)
	if !sign {
		z := x - float64(kf*pio2_1)
		y0 := z - float64(kf*pio2_1t)
		y1 := (z - y0) - float64(kf*pio2_1t)
		return k, y0, y1
	}
	z := x + float64(kf*pio2_1)
	y0 := z + float64(kf*pio2_1t)
	y1 := (z - y0) + float64(kf*pio2_1t)
	return -k, y0, y1
}

// remPio2Medium handles |x| ~< 2^20*(pi/2) with up to three rounds of
// pi/2 subtraction, stopping as soon as no cancellation is detected.
func remPio2Medium(x float64, ix uint32) (int32, float64, float64) {
	// rint(x/(pi/2)), assume round-to-nearest
	fn := float64(x*invPio2) + toInt15 - toInt15
	n := int32(fn)
	r := x - float64(fn*pio2_1)
	w := fn * pio2_1t // 1st round, good to 85 bits
	y0 := r - w
	ey := int(math.Float64bits(y0)>>52) & 0x7ff
	ex := int(ix >> 20)
	if ex-ey > 16 { // 2nd round, good to 118 bits
		t := r
		w = fn * pio2_2
		r = t - w
		w = float64(fn*pio2_2t) - ((t - r) - w)
		y0 = r - w
		ey = int(math.Float64bits(y0)>>52) & 0x7ff
		if ex-ey > 49 { // 3rd round, good to 151 bits, covers all cases
			t = r
			w = fn * pio2_3
			r = t - w
			w = float64(fn*pio2_3t) - ((t - r) - w)
			y0 = r - w
		}
	}
	y1 := (r - y0) - w
	return n, y0, y1
}

// remPio2f returns n and y = x - n*pi/2 computed in float64.
func remPio2f(x float32) (int32, float64) {
	const (
		// 25+53 bit pi is good enough for medium size
		pio2_1f  = 1.57079631090164184570e+00 // 0x3FF921FB, 0x50000000
		pio2_1tf = 1.58932547735281966916e-08 // 0x3E5110b4, 0x611A6263
	)
	x64 := float64(x)
	ix := math.Float32bits(x) & 0x7fffffff

	if ix < 0x4dc90fdb { // |x| ~< 2^28*(pi/2), medium size
		fn := float64(x64*invPio2) + toInt15 - toInt15
		return int32(fn), x64 - float64(fn*pio2_1f) - float64(fn*pio2_1tf)
	}
	if ix >= 0x7f800000 { // x is inf or NaN
		return 0, x64 - x64
	}

	// scale x into [2^23, 2^24-1]
	sign := math.Float32bits(x)>>31 != 0
	e0 := int(ix>>23) - (0x7f + 23)
	tx := [1]float64{float64(math.Float32frombits(ix - uint32(e0<<23)))}
	var ty [2]float64
	n := remPio2Large(tx[:], &ty, e0, 0)
	if sign {
		return -n, -ty[0]
	}
	return n, ty[0]
}
