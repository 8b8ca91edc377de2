// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

// Package floatcmp compares floating point values by their bit patterns.
//
// The helpers are generic over float32 and float64 so that kernel tests and
// the golden-vector verifier share one notion of "same result": identical
// bits, except that any two NaNs are equal regardless of payload.
package floatcmp

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Bits returns the IEEE-754 encoding of x, zero extended to 64 bits.
func Bits[F constraints.Float](x F) uint64 {
	if unsafe.Sizeof(x) == 4 {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

// IsNaN reports whether x is a NaN.
func IsNaN[F constraints.Float](x F) bool {
	return x != x
}

// Identical reports whether a and b have the same encoding. NaNs are
// identical to each other; +0 and -0 are not.
func Identical[F constraints.Float](a, b F) bool {
	if IsNaN(a) || IsNaN(b) {
		return IsNaN(a) && IsNaN(b)
	}
	return Bits(a) == Bits(b)
}

// ordinal maps x to an integer that increases with x, such that adjacent
// floats map to adjacent integers and both zeros map to 0.
func ordinal[F constraints.Float](x F) int64 {
	b := Bits(x)
	sign := uint64(1) << 63
	if unsafe.Sizeof(x) == 4 {
		sign = 1 << 31
	}
	if b&sign != 0 {
		return -int64(b &^ sign)
	}
	return int64(b)
}

// ULPDistance returns the number of representable values between a and b.
// It is math.MaxUint64 if exactly one of them is NaN and 0 if both are.
func ULPDistance[F constraints.Float](a, b F) uint64 {
	if IsNaN(a) || IsNaN(b) {
		if IsNaN(a) && IsNaN(b) {
			return 0
		}
		return math.MaxUint64
	}
	d := ordinal(a) - ordinal(b)
	if d < 0 {
		d = -d
	}
	return uint64(d)
}

// WithinULP reports whether a and b are at most n units in the last place
// apart. Infinities only match themselves.
func WithinULP[F constraints.Float](a, b F, n uint64) bool {
	if math.IsInf(float64(a), 0) || math.IsInf(float64(b), 0) {
		return a == b
	}
	return ULPDistance(a, b) <= n
}

// Close reports whether got is within n ULPs of want, or within the
// absolute tolerance abs. The absolute bound covers results near a zero of
// the function, where relative error is meaningless.
func Close[F constraints.Float](got, want F, n uint64, abs float64) bool {
	if WithinULP(got, want, n) {
		return true
	}
	if IsNaN(got) || IsNaN(want) {
		return false
	}
	return math.Abs(float64(got)-float64(want)) <= abs
}
