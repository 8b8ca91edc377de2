// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Ulp returns the spacing between x and the next float64 of larger
// magnitude, always positive for ordinary finite x.
//
// Boundary values follow the historical contract of this kernel:
//
//	Ulp(±0) = ±MinNormal (2**-1022)
//	Ulp(±MaxFloat64) = ±MaxFloat64
//	Ulp(±MinNormal) = ±MinNormal
//	Ulp(±Inf) = +Inf
//	Ulp(NaN) = NaN
//	Ulp(subnormal) = smallest subnormal
func Ulp(x float64) float64 {
	const minNormal = 0x1p-1022
	switch {
	case isNaN64(x):
		return x
	case math.IsInf(x, 0):
		return math.Inf(1)
	case x == math.MaxFloat64 || x == -math.MaxFloat64 ||
		x == minNormal || x == -minNormal:
		return x
	}
	bits := math.Float64bits(x)
	switch bits {
	case 0:
		return minNormal
	case 1 << 63:
		return -minNormal
	}
	exp := bits >> 52 & 0x7ff
	if exp == 0 {
		return math.Float64frombits(1)
	}
	// spacing 2**(exp-1075); below the normal range it is a single
	// mantissa bit of a subnormal
	if exp > 52 {
		return math.Float64frombits((exp - 52) << 52)
	}
	return math.Float64frombits(1 << (exp - 1))
}

// Ulpf is the float32 version of Ulp.
func Ulpf(x float32) float32 {
	const minNormal = 0x1p-126
	switch {
	case isNaN32(x):
		return x
	case x > math.MaxFloat32 || x < -math.MaxFloat32:
		return float32(math.Inf(1))
	case x == math.MaxFloat32 || x == -math.MaxFloat32 ||
		x == minNormal || x == -minNormal:
		return x
	}
	bits := math.Float32bits(x)
	switch bits {
	case 0:
		return minNormal
	case 1 << 31:
		return -minNormal
	}
	exp := bits >> 23 & 0xff
	if exp == 0 {
		return math.Float32frombits(1)
	}
	if exp > 23 {
		return math.Float32frombits((exp - 23) << 23)
	}
	return math.Float32frombits(1 << (exp - 1))
}
