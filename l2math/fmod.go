// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Fmod returns the floating-point remainder of x/y with the sign of x.
// The result is exact.
//
// Special cases are:
//
//	Fmod(±Inf, y) = NaN
//	Fmod(NaN, y) = NaN
//	Fmod(x, 0) = NaN
//	Fmod(x, ±Inf) = x
//	Fmod(x, NaN) = NaN
func Fmod(x, y float64) float64 {
	uxi := math.Float64bits(x)
	uyi := math.Float64bits(y)
	ex := int(uxi>>52) & 0x7ff
	ey := int(uyi>>52) & 0x7ff
	sx := uxi >> 63

	if uyi<<1 == 0 || isNaN64(y) || ex == 0x7ff {
		return (x * y) / (x * y)
	}
	if uxi<<1 <= uyi<<1 {
		if uxi<<1 == uyi<<1 {
			return 0 * x
		}
		return x
	}

	// normalize x and y
	if ex == 0 {
		for i := uxi << 12; i>>63 == 0; i <<= 1 {
			ex--
		}
		uxi <<= uint(-ex + 1)
	} else {
		uxi &= ^uint64(0) >> 12
		uxi |= 1 << 52
	}
	if ey == 0 {
		for i := uyi << 12; i>>63 == 0; i <<= 1 {
			ey--
		}
		uyi <<= uint(-ey + 1)
	} else {
		uyi &= ^uint64(0) >> 12
		uyi |= 1 << 52
	}

	// x mod y
	for ; ex > ey; ex-- {
		i := uxi - uyi
		if i>>63 == 0 {
			if i == 0 {
				return 0 * x
			}
			uxi = i
		}
		uxi <<= 1
	}
	i := uxi - uyi
	if i>>63 == 0 {
		if i == 0 {
			return 0 * x
		}
		uxi = i
	}
	for ; uxi>>52 == 0; uxi <<= 1 {
		ex--
	}

	// scale result
	if ex > 0 {
		uxi -= 1 << 52
		uxi |= uint64(ex) << 52
	} else {
		uxi >>= uint(-ex + 1)
	}
	uxi |= sx << 63
	return math.Float64frombits(uxi)
}

// Fmodf is the float32 version of Fmod.
func Fmodf(x, y float32) float32 {
	uxi := math.Float32bits(x)
	uyi := math.Float32bits(y)
	ex := int(uxi>>23) & 0xff
	ey := int(uyi>>23) & 0xff
	sx := uxi & 0x80000000

	if uyi<<1 == 0 || isNaN32(y) || ex == 0xff {
		return (x * y) / (x * y)
	}
	if uxi<<1 <= uyi<<1 {
		if uxi<<1 == uyi<<1 {
			return 0 * x
		}
		return x
	}

	if ex == 0 {
		for i := uxi << 9; i>>31 == 0; i <<= 1 {
			ex--
		}
		uxi <<= uint(-ex + 1)
	} else {
		uxi &= ^uint32(0) >> 9
		uxi |= 1 << 23
	}
	if ey == 0 {
		for i := uyi << 9; i>>31 == 0; i <<= 1 {
			ey--
		}
		uyi <<= uint(-ey + 1)
	} else {
		uyi &= ^uint32(0) >> 9
		uyi |= 1 << 23
	}

	for ; ex > ey; ex-- {
		i := uxi - uyi
		if i>>31 == 0 {
			if i == 0 {
				return 0 * x
			}
			uxi = i
		}
		uxi <<= 1
	}
	i := uxi - uyi
	if i>>31 == 0 {
		if i == 0 {
			return 0 * x
		}
		uxi = i
	}
	for ; uxi>>23 == 0; uxi <<= 1 {
		ex--
	}

	if ex > 0 {
		uxi -= 1 << 23
		uxi |= uint32(ex) << 23
	} else {
		uxi >>= uint(-ex + 1)
	}
	uxi |= sx
	return math.Float32frombits(uxi)
}
