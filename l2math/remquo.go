// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Remainder returns the IEEE 754 remainder x - n*y where n is x/y rounded
// to the nearest integer, ties to even.
func Remainder(x, y float64) float64 {
	r, _ := Remquo(x, y)
	return r
}

// Remainderf is the float32 version of Remainder.
func Remainderf(x, y float32) float32 {
	r, _ := Remquof(x, y)
	return r
}

// Remquo returns the same remainder as Remainder together with the low
// bits of the rounded quotient x/y, carrying the sign of x/y. At least
// the three least significant bits of the quotient are exact.
//
// For any non-zero finite y, |rem| <= |y|/2. The sign of rem follows from
// the rounding of the quotient, so Remquo(5, 3) is (-1, 2).
func Remquo(x, y float64) (rem float64, quo int32) {
	uxi := math.Float64bits(x)
	uyi := math.Float64bits(y)
	ex := int(uxi>>52) & 0x7ff
	ey := int(uyi>>52) & 0x7ff
	sx := uxi>>63 != 0
	sy := uyi>>63 != 0

	if uyi<<1 == 0 || isNaN64(y) || ex == 0x7ff {
		return (x * y) / (x * y), 0
	}
	if uxi<<1 == 0 {
		return x, 0
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

	var q uint32
	if ex < ey {
		if ex+1 != ey {
			return x, 0
		}
	} else {
		// x mod y
		for ; ex > ey; ex-- {
			i := uxi - uyi
			if i>>63 == 0 {
				uxi = i
				q++
			}
			uxi <<= 1
			q <<= 1
		}
		i := uxi - uyi
		if i>>63 == 0 {
			uxi = i
			q++
		}
		if uxi == 0 {
			ex = -60
		} else {
			for ; uxi>>52 == 0; uxi <<= 1 {
				ex--
			}
		}
	}

	// scale result and decide between |x| and |x|-|y|
	if ex > 0 {
		uxi -= 1 << 52
		uxi |= uint64(ex) << 52
	} else {
		uxi >>= uint(-ex + 1)
	}
	x = math.Float64frombits(uxi)
	if sy {
		y = -y
	}
	if ex == ey || (ex+1 == ey && (2*x > y || (2*x == y && q%2 != 0))) {
		x -= y
		q++
	}
	q &= 0x7fffffff
	quo = int32(q)
	if sx != sy {
		quo = -quo
	}
	if sx {
		return -x, quo
	}
	return x, quo
}

// Remquof is the float32 version of Remquo.
func Remquof(x, y float32) (rem float32, quo int32) {
	uxi := math.Float32bits(x)
	uyi := math.Float32bits(y)
	ex := int(uxi>>23) & 0xff
	ey := int(uyi>>23) & 0xff
	sx := uxi>>31 != 0
	sy := uyi>>31 != 0

	if uyi<<1 == 0 || isNaN32(y) || ex == 0xff {
		return (x * y) / (x * y), 0
	}
	if uxi<<1 == 0 {
		return x, 0
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

	var q uint32
	if ex < ey {
		if ex+1 != ey {
			return x, 0
		}
	} else {
		for ; ex > ey; ex-- {
			i := uxi - uyi
			if i>>31 == 0 {
				uxi = i
				q++
			}
			uxi <<= 1
			q <<= 1
		}
		i := uxi - uyi
		if i>>31 == 0 {
			uxi = i
			q++
		}
		if uxi == 0 {
			ex = -30
		} else {
			for ; uxi>>23 == 0; uxi <<= 1 {
				ex--
			}
		}
	}

	if ex > 0 {
		uxi -= 1 << 23
		uxi |= uint32(ex) << 23
	} else {
		uxi >>= uint(-ex + 1)
	}
	x = math.Float32frombits(uxi)
	if sy {
		y = -y
	}
	if ex == ey || (ex+1 == ey && (2*x > y || (2*x == y && q%2 != 0))) {
		x -= y
		q++
	}
	q &= 0x7fffffff
	quo = int32(q)
	if sx != sy {
		quo = -quo
	}
	if sx {
		return -x, quo
	}
	return x, quo
}
