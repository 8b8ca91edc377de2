// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

var (
	powBp  = [2]float64{1.0, 1.5}
	powDpH = [2]float64{0.0, 5.84962487220764160156e-01} // 0x3fe2b803, 0x40000000
	powDpL = [2]float64{0.0, 1.35003920212974897128e-08} // 0x3E4CFDEB, 0x43CFD006
)

// Kept as variables so that huge*huge and tiny*tiny overflow and underflow
// at run time.
var (
	powHuge = 1.0e300
	powTiny = 1.0e-300
)

const (
	two53 = 9007199254740992.0 // 0x43400000, 0x00000000

	// poly coefs for (3/2)*(log(x)-2s-2/3*s**3
	powL1 = 5.99999999999994648725e-01 // 0x3fe33333, 0x33333303
	powL2 = 4.28571428578550184252e-01 // 0x3fdb6db6, 0xdb6fabff
	powL3 = 3.33333329818377432918e-01 // 0x3fd55555, 0x518f264d
	powL4 = 2.72728123808534006489e-01 // 0x3fd17460, 0xa91d4101
	powL5 = 2.30660745775561754067e-01 // 0x3fcd864a, 0x93c9db65
	powL6 = 2.06975017800338417784e-01 // 0x3fca7e28, 0x4a454eef

	powLg2  = 6.93147180559945286227e-01  // 0x3fe62e42, 0xfefa39ef
	powLg2H = 6.93147182464599609375e-01  // 0x3fe62e43, 0x00000000
	powLg2L = -1.90465429995776804525e-09 // 0xbe205c61, 0x0ca86c39
	ovt     = 8.0085662595372944372e-17   // -(1024-log2(ovfl+.5ulp))
	cp      = 9.61796693925975554329e-01  // 0x3feec709, 0xdc3a03fd =2/(3ln2)
	cpH     = 9.61796700954437255859e-01  // 0x3feec709, 0xe0000000 =(float)cp
	cpL     = -7.02846165095275826516e-09 // 0xbe3e2fe0, 0x145b01f5 =tail of cpH
	ivln2   = 1.44269504088896338700e+00  // 0x3ff71547, 0x652b82fe =1/ln2
	ivl2H   = 1.44269502162933349609e+00  // 0x3ff71547, 0x60000000 =24b 1/ln2
	ivl2L   = 1.92596299112661746887e-08  // 0x3e54ae0b, 0xf85ddf44 =1/ln2 tail
)

// Pow returns x**y, the base-x exponential of y.
//
// log2(x) is computed to about 64 bits as t1+t2, multiplied by y in split
// form and exponentiated with the same kernel as Exp. A negative x is only
// accepted for integral y.
//
// Special cases are (in order):
//
//	Pow(x, ±0) = 1 for any x
//	Pow(1, y) = 1 for any y
//	Pow(x, 1) = x for any x
//	Pow(NaN, y) = NaN
//	Pow(x, NaN) = NaN
//	Pow(±0, y) = ±Inf for y an odd integer < 0
//	Pow(±0, -Inf) = +Inf
//	Pow(±0, +Inf) = +0
//	Pow(±0, y) = +Inf for finite y < 0 and not an odd integer
//	Pow(±0, y) = ±0 for y an odd integer > 0
//	Pow(±0, y) = +0 for finite y > 0 and not an odd integer
//	Pow(-1, ±Inf) = 1
//	Pow(x, +Inf) = +Inf for |x| > 1
//	Pow(x, -Inf) = +0 for |x| > 1
//	Pow(x, +Inf) = +0 for |x| < 1
//	Pow(x, -Inf) = +Inf for |x| < 1
//	Pow(+Inf, y) = +Inf for y > 0
//	Pow(+Inf, y) = +0 for y < 0
//	Pow(-Inf, y) = Pow(-0, -y)
//	Pow(x, y) = NaN for finite x < 0 and finite non-integer y
func Pow(x, y float64) float64 {
	hx, lx := int32(highWord(x)), lowWord(x)
	hy, ly := int32(highWord(y)), lowWord(y)
	ix := hx & 0x7fffffff
	iy := hy & 0x7fffffff

	// x**0 = 1, even if x is NaN
	if uint32(iy)|ly == 0 {
		return 1
	}
	// 1**y = 1, even if y is NaN
	if hx == 0x3ff00000 && lx == 0 {
		return 1
	}
	// NaN if either arg is NaN
	if ix > 0x7ff00000 || (ix == 0x7ff00000 && lx != 0) ||
		iy > 0x7ff00000 || (iy == 0x7ff00000 && ly != 0) {
		return x + y
	}

	// determine if y is an odd int when x < 0
	// yisint = 0	... y is not an integer
	// yisint = 1	... y is an odd int
	// yisint = 2	... y is an even int
	var yisint int32
	if hx < 0 {
		if iy >= 0x43400000 {
			yisint = 2 // even integer y
		} else if iy >= 0x3ff00000 {
			k := iy>>20 - 0x3ff // exponent
			if k > 20 {
				j := ly >> (52 - k)
				if j<<(52-k) == ly {
					yisint = 2 - int32(j&1)
				}
			} else if ly == 0 {
				j := iy >> (20 - k)
				if j<<(20-k) == iy {
					yisint = 2 - j&1
				}
			}
		}
	}

	// special value of y
	if ly == 0 {
		if iy == 0x7ff00000 { // y is +-inf
			switch {
			case uint32(ix-0x3ff00000)|lx == 0: // (-1)**+-inf is 1
				return 1
			case ix >= 0x3ff00000: // (|x|>1)**+-inf = inf,0
				if hy >= 0 {
					return y
				}
				return 0
			default: // (|x|<1)**+-inf = 0,inf
				if hy >= 0 {
					return 0
				}
				return -y
			}
		}
		if iy == 0x3ff00000 { // y is +-1
			if hy >= 0 {
				return x
			}
			return 1 / x
		}
		if hy == 0x40000000 { // y is 2
			return x * x
		}
		if hy == 0x3fe00000 && hx >= 0 { // y is 0.5, x >= +0
			return Sqrt(x)
		}
	}

	ax := Fabs(x)
	// special value of x
	if lx == 0 && (ix == 0x7ff00000 || ix == 0 || ix == 0x3ff00000) { // x is +-0,+-inf,+-1
		z := ax
		if hy < 0 { // z = (1/|x|)
			z = 1 / z
		}
		if hx < 0 {
			if (ix-0x3ff00000)|yisint == 0 {
				z = (z - z) / (z - z) // (-1)**non-int is NaN
			} else if yisint == 1 {
				z = -z // (x<0)**odd = -(|x|**odd)
			}
		}
		return z
	}

	s := 1.0 // sign of result
	if hx < 0 {
		if yisint == 0 { // (x<0)**(non-int) is NaN
			return (x - x) / (x - x)
		}
		if yisint == 1 { // (x<0)**(odd int)
			s = -1
		}
	}

	var t1, t2 float64
	if iy > 0x41e00000 { // if |y| > 2**31
		if iy > 0x43f00000 { // if |y| > 2**64, must o/uflow
			if ix <= 0x3fefffff {
				if hy < 0 {
					return powHuge * powHuge
				}
				return powTiny * powTiny
			}
			if ix >= 0x3ff00000 {
				if hy > 0 {
					return powHuge * powHuge
				}
				return powTiny * powTiny
			}
		}
		// over/underflow if x is not close to one
		if ix < 0x3fefffff {
			if hy < 0 {
				return s * powHuge * powHuge
			}
			return s * powTiny * powTiny
		}
		if ix > 0x3ff00000 {
			if hy > 0 {
				return s * powHuge * powHuge
			}
			return s * powTiny * powTiny
		}
		// now |1-x| is tiny <= 2**-20, suffice to compute
		// log(x) by x-x^2/2+x^3/3-x^4/4
		t := ax - 1 // t has 20 trailing zeros
		w := (t * t) * (0.5 - float64(t*(0.3333333333333333333333-float64(t*0.25))))
		u := ivl2H * t // ivl2H has 21 sig. bits
		v := float64(t*ivl2L) - float64(w*ivln2)
		t1 = withLowWord(u+v, 0)
		t2 = v - (t1 - u)
	} else {
		var n int32
		// take care subnormal number
		if ix < 0x00100000 {
			ax *= two53
			n -= 53
			ix = int32(highWord(ax))
		}
		n += ix>>20 - 0x3ff
		j := ix & 0x000fffff
		// determine interval
		ix = j | 0x3ff00000 // normalize ix
		var k int
		switch {
		case j <= 0x3988E: // |x|<sqrt(3/2)
			k = 0
		case j < 0xBB67A: // |x|<sqrt(3)
			k = 1
		default:
			k = 0
			n++
			ix -= 0x00100000
		}
		ax = withHighWord(ax, uint32(ix))

		// compute ss = sh+sl = (x-1)/(x+1) or (x-1.5)/(x+1.5)
		u := ax - powBp[k] // powBp[0]=1.0, powBp[1]=1.5
		v := 1 / (ax + powBp[k])
		ss := u * v
		sh := withLowWord(ss, 0)
		// th=ax+powBp[k] High
		th := fromWords(uint32(ix>>1)|0x20000000+0x00080000+uint32(k)<<18, 0)
		tl := ax - (th - powBp[k])
		sl := v * ((u - float64(sh*th)) - float64(sh*tl))

		// compute log(ax)
		s2 := ss * ss
		r := s2 * s2 * (powL1 + float64(s2*(powL2+float64(s2*(powL3+float64(s2*(powL4+float64(s2*(powL5+float64(s2*powL6))))))))))
		r += sl * (sh + ss)
		s2 = sh * sh
		th = withLowWord(3.0+s2+r, 0)
		tl = r - ((th - 3.0) - s2)

		// u+v = ss*(1+...)
		u = sh * th
		v = float64(sl*th) + float64(tl*ss)

		// 2/(3log2)*(ss+...)
		ph := withLowWord(u+v, 0)
		pl := v - (ph - u)
		zh := cpH * ph // cpH+cpL = 2/(3*log2)
		zl := float64(cpL*ph) + float64(pl*cp) + powDpL[k]

		// log2(ax) = (ss+..)*2/(3*log2) = n + dp_h + zh + zl
		t := float64(n)
		t1 = withLowWord(((zh+zl)+powDpH[k])+t, 0)
		t2 = zl - (((t1 - t) - powDpH[k]) - zh)
	}

	// split up y into y1+y2 and compute (y1+y2)*(t1+t2)
	y1 := withLowWord(y, 0)
	pl := float64((y-y1)*t1) + float64(y*t2)
	ph := y1 * t1
	z := pl + ph
	j := int32(highWord(z))
	i := int32(lowWord(z))
	if j >= 0x40900000 { // z >= 1024
		if (j-0x40900000)|i != 0 { // if z > 1024
			return s * powHuge * powHuge // overflow
		}
		if pl+ovt > z-ph {
			return s * powHuge * powHuge // overflow
		}
	} else if j&0x7fffffff >= 0x4090cc00 { // z <= -1075
		if (uint32(j)-0xc090cc00)|uint32(i) != 0 { // z < -1075
			return s * powTiny * powTiny // underflow
		}
		if pl <= z-ph {
			return s * powTiny * powTiny // underflow
		}
	}

	// compute 2**(ph+pl)
	i = j & 0x7fffffff
	k := i>>20 - 0x3ff
	var n int32
	if i > 0x3fe00000 { // if |z| > 0.5, set n = [z+0.5]
		n = j + 0x00100000>>(k+1)
		k = (n&0x7fffffff)>>20 - 0x3ff // new k for n
		t := fromWords(uint32(n)&^(0x000fffff>>k), 0)
		n = (n&0x000fffff | 0x00100000) >> (20 - k)
		if j < 0 {
			n = -n
		}
		ph -= t
	}
	t := withLowWord(pl+ph, 0)
	u := t * powLg2H
	v := float64((pl-(t-ph))*powLg2) + float64(t*powLg2L)
	z = u + v
	w := v - (z - u)
	t = z * z
	t1 = z - float64(t*(expP1+float64(t*(expP2+float64(t*(expP3+float64(t*(expP4+float64(t*expP5)))))))))
	r := float64(z*t1)/(t1-2) - (w + float64(z*w))
	z = 1 - (r - z)
	j = int32(highWord(z))
	j += n << 20
	if j>>20 <= 0 { // subnormal output
		z = Scalbn(z, n)
	} else {
		z = withHighWord(z, uint32(j))
	}
	return s * z
}

var (
	powBpf  = [2]float32{1.0, 1.5}
	powDpHf = [2]float32{0.0, 5.84960938e-01} // 0x3f15c000
	powDpLf = [2]float32{0.0, 1.56322085e-06} // 0x35d1cfdc

	powHugef float32 = 1.0e30
	powTinyf float32 = 1.0e-30
)

const (
	two24 float32 = 16777216.0 // 0x4b800000

	// poly coefs for (3/2)*(log(x)-2s-2/3*s**3
	powL1f float32 = 6.0000002384e-01 // 0x3f19999a
	powL2f float32 = 4.2857143283e-01 // 0x3edb6db7
	powL3f float32 = 3.3333334327e-01 // 0x3eaaaaab
	powL4f float32 = 2.7272811532e-01 // 0x3e8ba305
	powL5f float32 = 2.3066075146e-01 // 0x3e6c3255
	powL6f float32 = 2.0697501302e-01 // 0x3e53f142

	powP1f float32 = 1.6666667163e-01  // 0x3e2aaaab
	powP2f float32 = -2.7777778450e-03 // 0xbb360b61
	powP3f float32 = 6.6137559770e-05  // 0x388ab355
	powP4f float32 = -1.6533901999e-06 // 0xb5ddea0e
	powP5f float32 = 4.1381369442e-08  // 0x3331bb4c

	powLg2f  float32 = 6.9314718246e-01  // 0x3f317218
	powLg2Hf float32 = 6.93145752e-01    // 0x3f317200
	powLg2Lf float32 = 1.42860654e-06    // 0x35bfbe8c
	ovtf     float32 = 4.2995665694e-08  // -(128-log2(ovfl+.5ulp))
	cpf      float32 = 9.6179670095e-01  // 0x3f76384f =2/(3ln2)
	cpHf     float32 = 9.6191406250e-01  // 0x3f764000 =12b cp
	cpLf     float32 = -1.1736857402e-04 // 0xb8f623c6 =tail of cpHf
	ivln2f   float32 = 1.4426950216e+00  // 0x3fb8aa3b =1/ln2
	ivl2Hf   float32 = 1.4426879883e+00  // 0x3fb8aa00 =16b 1/ln2
	ivl2Lf   float32 = 7.0526075433e-06  // 0x36eca570 =1/ln2 tail
	mask12f          = 0xfffff000
)

// Powf is the float32 version of Pow.
func Powf(x, y float32) float32 {
	hx := int32(math.Float32bits(x))
	hy := int32(math.Float32bits(y))
	ix := hx & 0x7fffffff
	iy := hy & 0x7fffffff

	// x**0 = 1, even if x is NaN
	if iy == 0 {
		return 1
	}
	// 1**y = 1, even if y is NaN
	if hx == 0x3f800000 {
		return 1
	}
	// NaN if either arg is NaN
	if ix > 0x7f800000 || iy > 0x7f800000 {
		return x + y
	}

	// determine if y is an odd int when x < 0
	var yisint int32
	if hx < 0 {
		if iy >= 0x4b800000 {
			yisint = 2 // even integer y
		} else if iy >= 0x3f800000 {
			k := iy>>23 - 0x7f // exponent
			j := iy >> (23 - k)
			if j<<(23-k) == iy {
				yisint = 2 - j&1
			}
		}
	}

	// special value of y
	if iy == 0x7f800000 { // y is +-inf
		switch {
		case ix == 0x3f800000: // (-1)**+-inf is 1
			return 1
		case ix > 0x3f800000: // (|x|>1)**+-inf = inf,0
			if hy >= 0 {
				return y
			}
			return 0
		default: // (|x|<1)**+-inf = 0,inf
			if hy >= 0 {
				return 0
			}
			return -y
		}
	}
	if iy == 0x3f800000 { // y is +-1
		if hy >= 0 {
			return x
		}
		return 1 / x
	}
	if hy == 0x40000000 { // y is 2
		return x * x
	}
	if hy == 0x3f000000 && hx >= 0 { // y is 0.5, x >= +0
		return Sqrtf(x)
	}

	ax := Fabsf(x)
	// special value of x
	if ix == 0x7f800000 || ix == 0 || ix == 0x3f800000 { // x is +-0,+-inf,+-1
		z := ax
		if hy < 0 { // z = (1/|x|)
			z = 1 / z
		}
		if hx < 0 {
			if (ix-0x3f800000)|yisint == 0 {
				z = (z - z) / (z - z) // (-1)**non-int is NaN
			} else if yisint == 1 {
				z = -z // (x<0)**odd = -(|x|**odd)
			}
		}
		return z
	}

	var sn float32 = 1 // sign of result
	if hx < 0 {
		if yisint == 0 { // (x<0)**(non-int) is NaN
			return (x - x) / (x - x)
		}
		if yisint == 1 { // (x<0)**(odd int)
			sn = -1
		}
	}

	var t1, t2 float32
	if iy > 0x4d000000 { // if |y| > 2**27
		// over/underflow if x is not close to one
		if ix < 0x3f7ffff8 {
			if hy < 0 {
				return sn * powHugef * powHugef
			}
			return sn * powTinyf * powTinyf
		}
		if ix > 0x3f800007 {
			if hy > 0 {
				return sn * powHugef * powHugef
			}
			return sn * powTinyf * powTinyf
		}
		// now |1-x| is tiny <= 2**-20, suffice to compute
		// log(x) by x-x^2/2+x^3/3-x^4/4
		t := ax - 1 // t has 20 trailing zeros
		w := (t * t) * (0.5 - float32(t*(0.333333333333-float32(t*0.25))))
		u := ivl2Hf * t // ivl2Hf has 16 sig. bits
		v := float32(t*ivl2Lf) - float32(w*ivln2f)
		t1 = math.Float32frombits(math.Float32bits(u+v) & mask12f)
		t2 = v - (t1 - u)
	} else {
		var n int32
		// take care subnormal number
		if ix < 0x00800000 {
			ax *= two24
			n -= 24
			ix = int32(math.Float32bits(ax))
		}
		n += ix>>23 - 0x7f
		j := ix & 0x007fffff
		// determine interval
		ix = j | 0x3f800000 // normalize ix
		var k int
		switch {
		case j <= 0x1cc471: // |x|<sqrt(3/2)
			k = 0
		case j < 0x5db3d7: // |x|<sqrt(3)
			k = 1
		default:
			k = 0
			n++
			ix -= 0x00800000
		}
		ax = math.Float32frombits(uint32(ix))

		// compute s = sh+sl = (x-1)/(x+1) or (x-1.5)/(x+1.5)
		u := ax - powBpf[k] // powBpf[0]=1.0, powBpf[1]=1.5
		v := 1 / (ax + powBpf[k])
		s := u * v
		sh := math.Float32frombits(math.Float32bits(s) & mask12f)
		// th=ax+powBpf[k] High
		is := (uint32(ix)>>1)&0xfffff000 | 0x20000000
		th := math.Float32frombits(is + 0x00400000 + uint32(k)<<21)
		tl := ax - (th - powBpf[k])
		sl := v * ((u - float32(sh*th)) - float32(sh*tl))

		// compute log(ax)
		s2 := s * s
		r := s2 * s2 * (powL1f + float32(s2*(powL2f+float32(s2*(powL3f+float32(s2*(powL4f+float32(s2*(powL5f+float32(s2*powL6f))))))))))
		r += sl * (sh + s)
		s2 = sh * sh
		th = math.Float32frombits(math.Float32bits(3.0+s2+r) & mask12f)
		tl = r - ((th - 3.0) - s2)

		// u+v = s*(1+...)
		u = sh * th
		v = float32(sl*th) + float32(tl*s)

		// 2/(3log2)*(s+...)
		ph := math.Float32frombits(math.Float32bits(u+v) & mask12f)
		pl := v - (ph - u)
		zh := cpHf * ph // cpHf+cpLf = 2/(3*log2)
		zl := float32(cpLf*ph) + float32(pl*cpf) + powDpLf[k]

		// log2(ax) = (s+..)*2/(3*log2) = n + dp_h + zh + zl
		t := float32(n)
		t1 = math.Float32frombits(math.Float32bits(((zh+zl)+powDpHf[k])+t) & mask12f)
		t2 = zl - (((t1 - t) - powDpHf[k]) - zh)
	}

	// split up y into y1+y2 and compute (y1+y2)*(t1+t2)
	y1 := math.Float32frombits(uint32(hy) & mask12f)
	pl := float32((y-y1)*t1) + float32(y*t2)
	ph := y1 * t1
	z := pl + ph
	j := int32(math.Float32bits(z))
	switch {
	case j > 0x43000000: // if z > 128
		return sn * powHugef * powHugef // overflow
	case j == 0x43000000: // if z == 128
		if pl+ovtf > z-ph {
			return sn * powHugef * powHugef // overflow
		}
	case j&0x7fffffff > 0x43160000: // z < -150
		return sn * powTinyf * powTinyf // underflow
	case uint32(j) == 0xc3160000 && pl <= z-ph: // z == -150
		return sn * powTinyf * powTinyf // underflow
	}

	// compute 2**(ph+pl)
	i := j & 0x7fffffff
	k := i>>23 - 0x7f
	var n int32
	if i > 0x3f000000 { // if |z| > 0.5, set n = [z+0.5]
		n = j + 0x00800000>>(k+1)
		k = (n&0x7fffffff)>>23 - 0x7f // new k for n
		t := math.Float32frombits(uint32(n) &^ (0x007fffff >> k))
		n = (n&0x007fffff | 0x00800000) >> (23 - k)
		if j < 0 {
			n = -n
		}
		ph -= t
	}
	t := math.Float32frombits(math.Float32bits(pl+ph) & 0xffff8000)
	u := t * powLg2Hf
	v := float32((pl-(t-ph))*powLg2f) + float32(t*powLg2Lf)
	z = u + v
	w := v - (z - u)
	t = z * z
	t1 = z - float32(t*(powP1f+float32(t*(powP2f+float32(t*(powP3f+float32(t*(powP4f+float32(t*powP5f)))))))))
	r := float32(z*t1)/(t1-2) - (w + float32(z*w))
	z = 1 - (r - z)
	j = int32(math.Float32bits(z))
	j += n << 23
	if j>>23 <= 0 { // subnormal output
		z = Scalbnf(z, n)
	} else {
		z = math.Float32frombits(uint32(j))
	}
	return sn * z
}
