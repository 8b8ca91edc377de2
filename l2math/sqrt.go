// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Sqrt returns the correctly rounded square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float64) float64 {
	if native() {
		return math.Sqrt(x)
	}
	return sqrt(x)
}

// sqrt generates the root bit by bit with integer arithmetic:
// after normalizing x to [1,4) the next result bit is set whenever
// (q + 2**-(i+1))**2 <= y, tracked through the partial remainder, and the
// bits left over after 53 decide the final rounding.
func sqrt(x float64) float64 {
	const (
		mask  = 0x7ff
		shift = 52
		bias  = 1023
	)
	switch {
	case x == 0 || isNaN64(x) || x > math.MaxFloat64:
		return x
	case x < 0:
		return (x - x) / (x - x)
	}
	ix := math.Float64bits(x)
	// normalize x
	exp := int(ix>>shift) & mask
	if exp == 0 { // subnormal x
		for ix&(1<<shift) == 0 {
			ix <<= 1
			exp--
		}
		exp++
	}
	exp -= bias
	ix &^= mask << shift
	ix |= 1 << shift
	if exp&1 == 1 { // odd exp, double x to make it even
		ix <<= 1
	}
	exp >>= 1
	// generate sqrt(x) bit by bit
	ix <<= 1
	var q, s uint64
	r := uint64(1 << (shift + 1)) // moving bit from MSB to LSB
	for r != 0 {
		t := s + r
		if t <= ix {
			s = t + r
			ix -= t
			q += r
		}
		ix <<= 1
		r >>= 1
	}
	// final rounding
	if ix != 0 {
		q += q & 1
	}
	ix = q>>1 + uint64(exp-1+bias)<<shift
	return math.Float64frombits(ix)
}

// Sqrtf is the float32 version of Sqrt.
func Sqrtf(x float32) float32 {
	if native() {
		// 53 >= 2*24+2, so rounding through float64 is exact
		return float32(math.Sqrt(float64(x)))
	}
	return sqrtf(x)
}

func sqrtf(x float32) float32 {
	const (
		mask  = 0xff
		shift = 23
		bias  = 127
	)
	switch {
	case x == 0 || isNaN32(x) || x > math.MaxFloat32:
		return x
	case x < 0:
		return (x - x) / (x - x)
	}
	ix := math.Float32bits(x)
	exp := int(ix>>shift) & mask
	if exp == 0 {
		for ix&(1<<shift) == 0 {
			ix <<= 1
			exp--
		}
		exp++
	}
	exp -= bias
	ix &^= mask << shift
	ix |= 1 << shift
	if exp&1 == 1 {
		ix <<= 1
	}
	exp >>= 1
	ix <<= 1
	var q, s uint32
	r := uint32(1 << (shift + 1))
	for r != 0 {
		t := s + r
		if t <= ix {
			s = t + r
			ix -= t
			q += r
		}
		ix <<= 1
		r >>= 1
	}
	if ix != 0 {
		q += q & 1
	}
	ix = q>>1 + uint32(exp-1+bias)<<shift
	return math.Float32frombits(ix)
}
