// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Scalbn returns x × 2**n computed by exponent manipulation. Overflow and
// underflow round as a single multiplication would.
func Scalbn(x float64, n int32) float64 {
	y := x
	if n > 1023 {
		y *= 0x1p1023
		n -= 1023
		if n > 1023 {
			y *= 0x1p1023
			n -= 1023
			if n > 1023 {
				n = 1023
			}
		}
	} else if n < -1022 {
		// keep the final n below -53 so the last step does not round twice
		// in the subnormal range
		y *= 0x1p-1022 * 0x1p53
		n += 1022 - 53
		if n < -1022 {
			y *= 0x1p-1022 * 0x1p53
			n += 1022 - 53
			if n < -1022 {
				n = -1022
			}
		}
	}
	return y * math.Float64frombits(uint64(0x3ff+n)<<52)
}

// Scalbnf is the float32 version of Scalbn.
func Scalbnf(x float32, n int32) float32 {
	y := x
	if n > 127 {
		y *= 0x1p127
		n -= 127
		if n > 127 {
			y *= 0x1p127
			n -= 127
			if n > 127 {
				n = 127
			}
		}
	} else if n < -126 {
		y *= 0x1p-126 * 0x1p24
		n += 126 - 24
		if n < -126 {
			y *= 0x1p-126 * 0x1p24
			n += 126 - 24
			if n < -126 {
				n = -126
			}
		}
	}
	return y * math.Float32frombits(uint32(0x7f+n)<<23)
}

// Ldexp is Scalbn under its C name: x × 2**exp.
func Ldexp(x float64, exp int32) float64 {
	return Scalbn(x, exp)
}

// Ldexpf is the float32 version of Ldexp.
func Ldexpf(x float32, exp int32) float32 {
	return Scalbnf(x, exp)
}
