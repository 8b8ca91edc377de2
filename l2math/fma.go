// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import (
	"math"
	"math/bits"
)

// num is a float64 unpacked into a 64-bit significand with the top ten bits
// and the last bit clear, a binary exponent and the sign.
type num struct {
	m    uint64
	e    int32
	sign int32
}

func normalNum(x float64) num {
	ix := math.Float64bits(x)
	e := int32(ix >> 52)
	sign := e & 0x800
	e &= 0x7ff
	if e == 0 {
		ix = math.Float64bits(x * 0x1p63)
		e = int32(ix >> 52 & 0x7ff)
		if e == 0 {
			e = 0x800
		} else {
			e -= 63
		}
	}
	ix &= 1<<52 - 1
	ix |= 1 << 52
	ix <<= 1
	e -= 0x3ff + 52 + 1
	return num{ix, e, sign}
}

// Fma returns x*y + z computed as if to infinite precision and rounded once
// to float64.
func Fma(x, y, z float64) float64 {
	if native() {
		return math.FMA(x, y, z)
	}
	return fma(x, y, z)
}

func fma(x, y, z float64) float64 {
	nx := normalNum(x)
	ny := normalNum(y)
	nz := normalNum(z)

	const zeroInfNaN = 0x7ff - 0x3ff - 52 - 1
	if nx.e >= zeroInfNaN || ny.e >= zeroInfNaN {
		return float64(x*y) + z
	}
	if nz.e >= zeroInfNaN {
		if nz.e > zeroInfNaN { // z==0
			return float64(x*y) + z
		}
		return z
	}

	// mul: r = x*y
	rhi, rlo := bits.Mul64(nx.m, ny.m)
	// either top 20 or 21 bits of rhi and last 2 bits of rlo are 0

	// align exponents
	e := nx.e + ny.e
	d := nz.e - e
	var zhi, zlo uint64
	// shift bits z<<=kz, r>>=kr, so kz+kr == d, set e = e+kr (== ez-kz)
	if d > 0 {
		if d < 64 {
			zlo = nz.m << uint(d)
			zhi = nz.m >> (64 - uint(d))
		} else {
			zhi = nz.m
			e = nz.e - 64
			d -= 64
			if d < 64 && d != 0 {
				rlo = rhi<<(64-uint(d)) | rlo>>uint(d) | b2u(rlo<<(64-uint(d)) != 0)
				rhi = rhi >> uint(d)
			} else if d != 0 {
				rlo = 1
				rhi = 0
			}
		}
	} else {
		d = -d
		switch {
		case d == 0:
			zlo = nz.m
		case d < 64:
			zlo = nz.m>>uint(d) | b2u(nz.m<<(64-uint(d)) != 0)
		default:
			zlo = 1
		}
	}

	// add
	sign := nx.sign ^ ny.sign
	samesign := sign^nz.sign == 0
	nonzero := true
	if samesign {
		// r += z
		var c uint64
		rlo, c = bits.Add64(rlo, zlo, 0)
		rhi, _ = bits.Add64(rhi, zhi, c)
	} else {
		// r -= z
		var b uint64
		rlo, b = bits.Sub64(rlo, zlo, 0)
		rhi, _ = bits.Sub64(rhi, zhi, b)
		if rhi>>63 != 0 {
			rlo = -rlo
			rhi = -rhi - b2u(rlo != 0)
			sign ^= 0x800
		}
		nonzero = rhi != 0
	}

	// set rhi to top 63bit of the result (last bit is sticky)
	if nonzero {
		e += 64
		d = int32(bits.LeadingZeros64(rhi) - 1)
		// note: d > 0
		rhi = rhi<<uint(d) | rlo>>(64-uint(d)) | b2u(rlo<<uint(d) != 0)
	} else if rlo != 0 {
		d = int32(bits.LeadingZeros64(rlo) - 1)
		if d < 0 {
			rhi = rlo>>1 | rlo&1
		} else {
			rhi = rlo << uint(d)
		}
	} else {
		// exact +-0
		return float64(x*y) + z
	}
	e -= d

	// convert to double
	i := int64(rhi) // i is in [1<<62,(1<<63)-1]
	if sign != 0 {
		i = -i
	}
	r := float64(i) // |r| is in [0x1p62,0x1p63]

	if e < -1022-62 {
		// result is subnormal before rounding
		if e == -1022-63 {
			const (
				fltMin = 0x1p-126
				dblMin = 0x1p-1022
			)
			c := 0x1p63
			if sign != 0 {
				c = -c
			}
			if r == c {
				// min normal after rounding, underflow depends
				// on arch behaviour which can be imitated by
				// a double to float conversion
				fltmin := float32(0x0.ffffff8p-63 * fltMin * r)
				return dblMin / fltMin * float64(fltmin)
			}
			// one bit is lost when scaled, add another top bit to
			// only round once at conversion if it is inexact
			if rhi<<53 != 0 {
				i = int64(rhi>>1 | rhi&1 | 1<<62)
				if sign != 0 {
					i = -i
				}
				r = float64(i)
				r = 2*r - c // remove top bit

				// raise underflow portably, such that it
				// cannot be optimized away
				tiny := dblMin / fltMin * r
				observe64(tiny * tiny)
			}
		} else {
			// only round once when scaled
			d = 10
			i = int64((rhi>>uint(d) | b2u(rhi<<(64-uint(d)) != 0)) << uint(d))
			if sign != 0 {
				i = -i
			}
			r = float64(i)
		}
	}
	return Scalbn(r, e)
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Fmaf is the float32 version of Fma. The product of two float32 values is
// exact in float64, so a single float64 addition is correctly rounded except
// when the sum lands exactly halfway between two float32 values; that case
// is detected from the low bits and corrected by one ulp.
func Fmaf(x, y, z float32) float32 {
	xy := float64(float64(x) * float64(y))
	zd := float64(z)
	result := xy + zd
	ui := math.Float64bits(result)
	e := int(ui>>52) & 0x7ff

	// Common case: the double precision result is fine.
	if ui&0x1fffffff != 0x10000000 || // not a halfway case
		e == 0x7ff || // NaN
		(result-xy == zd && result-zd == xy) { // exact
		// underflow may not be raised correctly, for example
		// Fmaf(0x1p-120, 0x1p-120, 0x1p-149)
		if e < 0x3ff-126 && e >= 0x3ff-149 {
			observe64(xy + zd)
		}
		return float32(result)
	}

	// If result is inexact and exactly halfway between two float32 values,
	// float32(result) would round to even. Find which side the exact value
	// lies on and step the double result one ulp toward it.
	neg := ui>>63 != 0
	var err float64
	if neg == (zd > xy) {
		err = xy - result + zd
	} else {
		err = zd - result + xy
	}
	if neg == (err < 0) {
		ui++
	} else {
		ui--
	}
	return float32(math.Float64frombits(ui))
}
