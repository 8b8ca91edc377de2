// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

const (
	lg1 = 6.666666666666735130e-01 // 3FE55555 55555593
	lg2 = 3.999999999940941908e-01 // 3FD99999 9997FA04
	lg3 = 2.857142874366239149e-01 // 3FD24924 94229359
	lg4 = 2.222219843214978396e-01 // 3FCC71C5 1D8E78AF
	lg5 = 1.818357216161805012e-01 // 3FC74664 96CB03DE
	lg6 = 1.531383769920937332e-01 // 3FC39A09 D078C69F
	lg7 = 1.479819860511658591e-01 // 3FC2F112 DF3E5244
)

// logReduce splits a positive finite x into k and f such that
// x = 2**k * (1+f) with sqrt(2)/2 < 1+f < sqrt(2). Zero, negative and
// non-finite inputs are returned through special with ok set to false.
func logReduce(x float64) (k int32, f float64, special float64, ok bool) {
	ui := math.Float64bits(x)
	hx := uint32(ui >> 32)
	if hx < 0x00100000 || hx>>31 != 0 {
		if ui<<1 == 0 {
			return 0, 0, -1 / (x * x), false // log(+-0)=-inf
		}
		if hx>>31 != 0 {
			return 0, 0, (x - x) / 0, false // log(-#) = NaN
		}
		// subnormal number, scale x up
		k -= 54
		x *= 0x1p54
		ui = math.Float64bits(x)
		hx = uint32(ui >> 32)
	} else if hx >= 0x7ff00000 {
		return 0, 0, x, false
	} else if hx == 0x3ff00000 && ui<<32 == 0 {
		return 0, 0, 0, false
	}

	// reduce x into [sqrt(2)/2, sqrt(2)]
	hx += 0x3ff00000 - 0x3fe6a09e
	k += int32(hx>>20) - 0x3ff
	hx = hx&0x000fffff + 0x3fe6a09e
	ui = uint64(hx)<<32 | ui&0xffffffff
	return k, math.Float64frombits(ui) - 1, 0, true
}

// logPoly returns s = f/(2+f), hfsq = f*f/2 and R(z) with z = s*s, the
// pieces shared by the natural, base 2 and base 10 logarithms.
func logPoly(f float64) (s, hfsq, r float64) {
	hfsq = 0.5 * f * f
	s = f / (2 + f)
	z := s * s
	w := z * z
	t1 := w * (lg2 + float64(w*(lg4+float64(w*lg6))))
	t2 := z * (lg1 + float64(w*(lg3+float64(w*(lg5+float64(w*lg7))))))
	return s, hfsq, t2 + t1
}

// Log returns the natural logarithm of x.
//
// With x = 2**k * (1+f), log(x) = k*ln2 + log(1+f) where log(1+f) is
// computed as f - hfsq + s*(hfsq+R) and R is a degree 14 polynomial in s.
//
// Special cases are:
//
//	Log(+Inf) = +Inf
//	Log(0) = -Inf
//	Log(x < 0) = NaN
//	Log(NaN) = NaN
func Log(x float64) float64 {
	k, f, special, ok := logReduce(x)
	if !ok {
		return special
	}
	s, hfsq, r := logPoly(f)
	dk := float64(k)
	return float64(s*(hfsq+r)) + float64(dk*ln2Lo) - hfsq + f + float64(dk*ln2Hi)
}

// Ln returns the natural logarithm of x. It is the same function as Log.
func Ln(x float64) float64 {
	return Log(x)
}

const (
	lg1f float32 = 0x1.555554p-1 // 0.66666662693
	lg2f float32 = 0x1.999c26p-2 // 0.40000972152
	lg3f float32 = 0x1.23d3dcp-2 // 0.28498786688
	lg4f float32 = 0x1.f13c4cp-3 // 0.24279078841

	ln2Hi32 float32 = 6.9313812256e-01 // 0x3f317180
	ln2Lo32 float32 = 9.0580006145e-06 // 0x3717f7d1
)

func logReducef(x float32) (k int32, f float32, special float32, ok bool) {
	ix := math.Float32bits(x)
	if ix < 0x00800000 || ix>>31 != 0 { // x < 2**-126
		if ix<<1 == 0 {
			return 0, 0, -1 / (x * x), false // log(+-0)=-inf
		}
		if ix>>31 != 0 {
			return 0, 0, (x - x) / 0, false // log(-#) = NaN
		}
		// subnormal number, scale up x
		k -= 25
		x *= 0x1p25
		ix = math.Float32bits(x)
	} else if ix >= 0x7f800000 {
		return 0, 0, x, false
	} else if ix == 0x3f800000 {
		return 0, 0, 0, false
	}

	// reduce x into [sqrt(2)/2, sqrt(2)]
	ix += 0x3f800000 - 0x3f3504f3
	k += int32(ix>>23) - 0x7f
	ix = ix&0x007fffff + 0x3f3504f3
	return k, math.Float32frombits(ix) - 1, 0, true
}

func logPolyf(f float32) (s, hfsq, r float32) {
	s = f / (2 + f)
	z := s * s
	w := z * z
	t1 := w * (lg2f + float32(w*lg4f))
	t2 := z * (lg1f + float32(w*lg3f))
	hfsq = 0.5 * f * f
	return s, hfsq, t2 + t1
}

// Logf is the float32 version of Log.
func Logf(x float32) float32 {
	k, f, special, ok := logReducef(x)
	if !ok {
		return special
	}
	s, hfsq, r := logPolyf(f)
	dk := float32(k)
	return float32(s*(hfsq+r)) + float32(dk*ln2Lo32) - hfsq + f + float32(dk*ln2Hi32)
}

// Lnf is the float32 version of Ln.
func Lnf(x float32) float32 {
	return Logf(x)
}

// Log2 returns the binary logarithm of x.
//
// log(1+f) is split into hi+lo with hi holding the top 20 mantissa bits so
// the multiplications by the two halves of 1/ln2 stay exact.
func Log2(x float64) float64 {
	const (
		ivln2hi = 1.44269504072144627571e+00 // 0x3ff71547, 0x65200000
		ivln2lo = 1.67517131648865118353e-10 // 0x3de705fc, 0x2eefa200
	)
	k, f, special, ok := logReduce(x)
	if !ok {
		return special
	}
	s, hfsq, r := logPoly(f)

	// hi+lo = f - hfsq + s*(hfsq+R) ~ log(1+f)
	hi := f - hfsq
	hi = math.Float64frombits(math.Float64bits(hi) &^ 0xffffffff)
	lo := f - hi - hfsq + float64(s*(hfsq+r))

	valHi := hi * ivln2hi
	valLo := float64((lo+hi)*ivln2lo) + float64(lo*ivln2hi)

	// spadd(valHi, valLo, y), except for not using double_t
	y := float64(k)
	w := y + valHi
	valLo += (y - w) + valHi
	valHi = w
	return valLo + valHi
}

// Log2f is the float32 version of Log2.
func Log2f(x float32) float32 {
	const (
		ivln2hi float32 = 1.4428710938e+00  // 0x3fb8b000
		ivln2lo float32 = -1.7605285393e-04 // 0xb9389ad4
	)
	k, f, special, ok := logReducef(x)
	if !ok {
		return special
	}
	s, hfsq, r := logPolyf(f)

	hi := f - hfsq
	hi = math.Float32frombits(math.Float32bits(hi) & 0xfffff000)
	lo := f - hi - hfsq + float32(s*(hfsq+r))
	return float32((lo+hi)*ivln2lo) + float32(lo*ivln2hi) + float32(hi*ivln2hi) + float32(k)
}

// Log10 returns the decimal logarithm of x. The special cases are the same
// as for Log.
func Log10(x float64) float64 {
	const (
		ivln10hi  = 4.34294481878168880939e-01 // 0x3fdbcb7b, 0x15200000
		ivln10lo  = 2.50829467116452752298e-11 // 0x3dbb9438, 0xca9aadd5
		log10_2hi = 3.01029995663611771306e-01 // 0x3FD34413, 0x509F6000
		log10_2lo = 3.69423907715893078616e-13 // 0x3D59FEF3, 0x11F12B36
	)
	k, f, special, ok := logReduce(x)
	if !ok {
		return special
	}
	s, hfsq, r := logPoly(f)

	// hi+lo = f - hfsq + s*(hfsq+R) ~ log(1+f)
	hi := f - hfsq
	hi = math.Float64frombits(math.Float64bits(hi) &^ 0xffffffff)
	lo := f - hi - hfsq + float64(s*(hfsq+r))

	// valHi+valLo ~ log10(1+f) + k*log10(2)
	valHi := hi * ivln10hi
	dk := float64(k)
	y := dk * log10_2hi
	valLo := float64(dk*log10_2lo) + float64((lo+hi)*ivln10lo) + float64(lo*ivln10hi)

	w := y + valHi
	valLo += (y - w) + valHi
	valHi = w
	return valLo + valHi
}

// Log10f is the float32 version of Log10.
func Log10f(x float32) float32 {
	const (
		ivln10hi  float32 = 4.3432617188e-01  // 0x3ede6000
		ivln10lo  float32 = -3.1689971365e-05 // 0xb804ead9
		log10_2hi float32 = 3.0102920532e-01  // 0x3e9a2080
		log10_2lo float32 = 7.9034151668e-07  // 0x355427db
	)
	k, f, special, ok := logReducef(x)
	if !ok {
		return special
	}
	s, hfsq, r := logPolyf(f)

	hi := f - hfsq
	hi = math.Float32frombits(math.Float32bits(hi) & 0xfffff000)
	lo := f - hi - hfsq + float32(s*(hfsq+r))
	dk := float32(k)
	return float32(dk*log10_2lo) + float32((lo+hi)*ivln10lo) + float32(lo*ivln10hi) +
		float32(hi*ivln10hi) + float32(dk*log10_2hi)
}

// Log1p returns the natural logarithm of 1 plus its argument x.
// It is more accurate than Log(1 + x) when x is near zero.
//
// When 1+x is rounded to u, the correction term c = (1+x)-u is carried
// as c/u next to log(u).
//
// Special cases are:
//
//	Log1p(+Inf) = +Inf
//	Log1p(±0) = ±0
//	Log1p(-1) = -Inf
//	Log1p(x < -1) = NaN
//	Log1p(NaN) = NaN
func Log1p(x float64) float64 {
	ui := math.Float64bits(x)
	hx := uint32(ui >> 32)
	var f, c float64
	k := int32(1)
	if hx < 0x3fda827a || hx>>31 != 0 { // 1+x < sqrt(2)+
		if hx >= 0xbff00000 { // x <= -1.0
			if x == -1 {
				return x / 0 // log1p(-1) = -inf
			}
			return (x - x) / 0 // log1p(x<-1) = NaN
		}
		if hx<<1 < 0x3ca00000<<1 { // |x| < 2**-53
			// underflow if subnormal
			if hx&0x7ff00000 == 0 {
				observe32(float32(x))
			}
			return x
		}
		if hx <= 0xbfd2bec4 { // sqrt(2)/2- <= 1+x < sqrt(2)+
			k = 0
			f = x
		}
	} else if hx >= 0x7ff00000 {
		return x
	}
	if k != 0 {
		ui = math.Float64bits(1 + x)
		hu := uint32(ui >> 32)
		hu += 0x3ff00000 - 0x3fe6a09e
		k = int32(hu>>20) - 0x3ff
		// correction term ~ log(1+x)-log(u), avoid underflow in c/u
		if k < 54 {
			u := math.Float64frombits(ui)
			if k >= 2 {
				c = 1 - (u - x)
			} else {
				c = x - (u - 1)
			}
			c /= u
		}
		// reduce u into [sqrt(2)/2, sqrt(2)]
		hu = hu&0x000fffff + 0x3fe6a09e
		ui = uint64(hu)<<32 | ui&0xffffffff
		f = math.Float64frombits(ui) - 1
	}
	s, hfsq, r := logPoly(f)
	dk := float64(k)
	return float64(s*(hfsq+r)) + (float64(dk*ln2Lo) + c) - hfsq + f + float64(dk*ln2Hi)
}

// Log1pf is the float32 version of Log1p.
func Log1pf(x float32) float32 {
	ui := math.Float32bits(x)
	ix := ui
	var f, c float32
	k := int32(1)
	if ix < 0x3ed413d0 || ix>>31 != 0 { // 1+x < sqrt(2)+
		if ix >= 0xbf800000 { // x <= -1.0
			if x == -1 {
				return x / 0 // log1p(-1)=-inf
			}
			return (x - x) / 0 // log1p(x<-1)=NaN
		}
		if ix<<1 < 0x33800000<<1 { // |x| < 2**-24
			// underflow if subnormal
			if ix&0x7f800000 == 0 {
				observe32(x * x)
			}
			return x
		}
		if ix <= 0xbe95f619 { // sqrt(2)/2- <= 1+x < sqrt(2)+
			k = 0
			f = x
		}
	} else if ix >= 0x7f800000 {
		return x
	}
	if k != 0 {
		ui = math.Float32bits(1 + x)
		iu := ui
		iu += 0x3f800000 - 0x3f3504f3
		k = int32(iu>>23) - 0x7f
		// correction term ~ log(1+x)-log(u), avoid underflow in c/u
		if k < 25 {
			u := math.Float32frombits(ui)
			if k >= 2 {
				c = 1 - (u - x)
			} else {
				c = x - (u - 1)
			}
			c /= u
		}
		// reduce u into [sqrt(2)/2, sqrt(2)]
		iu = iu&0x007fffff + 0x3f3504f3
		f = math.Float32frombits(iu) - 1
	}
	s, hfsq, r := logPolyf(f)
	dk := float32(k)
	return float32(s*(hfsq+r)) + (float32(dk*ln2Lo32) + c) - hfsq + f + float32(dk*ln2Hi32)
}
