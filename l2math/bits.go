// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Word accessors on the IEEE-754 binary64 layout. The high word holds the
// sign, the 11 exponent bits and the top 20 mantissa bits.

func highWord(x float64) uint32 {
	return uint32(math.Float64bits(x) >> 32)
}

func lowWord(x float64) uint32 {
	return uint32(math.Float64bits(x))
}

func withHighWord(x float64, hi uint32) float64 {
	return math.Float64frombits(math.Float64bits(x)&0xffffffff | uint64(hi)<<32)
}

func withLowWord(x float64, lo uint32) float64 {
	return math.Float64frombits(math.Float64bits(x)&0xffffffff00000000 | uint64(lo))
}

func fromWords(hi, lo uint32) float64 {
	return math.Float64frombits(uint64(hi)<<32 | uint64(lo))
}

// observe64 and observe32 keep a value that is computed only for its
// floating-point exception side effect from being eliminated.
//
//go:noinline
func observe64(x float64) {}

//go:noinline
func observe32(x float32) {}

func isNaN64(x float64) bool { return x != x }

func isNaN32(x float32) bool { return x != x }
