// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

var atanHi = [4]float64{
	4.63647609000806093515e-01, // atan(0.5)hi 0x3FDDAC67, 0x0561BB4F
	7.85398163397448278999e-01, // atan(1.0)hi 0x3FE921FB, 0x54442D18
	9.82793723247329054082e-01, // atan(1.5)hi 0x3FEF730B, 0xD281F69B
	1.57079632679489655800e+00, // atan(inf)hi 0x3FF921FB, 0x54442D18
}

var atanLo = [4]float64{
	2.26987774529616870924e-17, // atan(0.5)lo 0x3C7A2B7F, 0x222F65E2
	3.06161699786838301793e-17, // atan(1.0)lo 0x3C81A626, 0x33145C07
	1.39033110312309984516e-17, // atan(1.5)lo 0x3C700788, 0x7AF0CBBD
	6.12323399573676603587e-17, // atan(inf)lo 0x3C91A626, 0x33145C07
}

var atanT = [11]float64{
	3.33333333333329318027e-01,  // 0x3FD55555, 0x5555550D
	-1.99999999998764832476e-01, // 0xBFC99999, 0x9998EBC4
	1.42857142725034663711e-01,  // 0x3FC24924, 0x920083FF
	-1.11111104054623557880e-01, // 0xBFBC71C6, 0xFE231671
	9.09088713343650656196e-02,  // 0x3FB745CD, 0xC54C206E
	-7.69187620504482999495e-02, // 0xBFB3B0F2, 0xAF749A6D
	6.66107313738753120669e-02,  // 0x3FB10D66, 0xA0D03D51
	-5.83357013379057348645e-02, // 0xBFADDE2D, 0x52DEFD9A
	4.97687799461593236017e-02,  // 0x3FA97B4B, 0x24760DEB
	-3.65315727442169155270e-02, // 0xBFA2B444, 0x2C6A6C2F
	1.62858201153657823623e-02,  // 0x3F90AD3A, 0xE322DA11
}

// Atan returns the arctangent, in radians, of x.
//
// The argument is reduced to [0, 7/16] using atan(x) = atan(c) +
// atan((x-c)/(1+x*c)) for c in {0.5, 1, 1.5, inf}, then a degree 22 odd
// polynomial is evaluated as two interleaved halves.
//
// Special cases are:
//
//	Atan(±0) = ±0
//	Atan(±Inf) = ±Pi/2
func Atan(x float64) float64 {
	ix := highWord(x)
	sign := ix>>31 != 0
	ix &= 0x7fffffff
	var id int
	if ix >= 0x44100000 { // if |x| >= 2^66
		if isNaN64(x) {
			return x
		}
		z := atanHi[3] + 0x1p-120
		if sign {
			return -z
		}
		return z
	}
	if ix < 0x3fdc0000 { // |x| < 0.4375
		if ix < 0x3e400000 { // |x| < 2^-27
			if ix < 0x00100000 {
				// raise underflow for subnormal x
				observe32(float32(x))
			}
			return x
		}
		id = -1
	} else {
		x = Fabs(x)
		if ix < 0x3ff30000 { // |x| < 1.1875
			if ix < 0x3fe60000 { // 7/16 <= |x| < 11/16
				id = 0
				x = (2*x - 1) / (2 + x)
			} else { // 11/16 <= |x| < 19/16
				id = 1
				x = (x - 1) / (x + 1)
			}
		} else {
			if ix < 0x40038000 { // |x| < 2.4375
				id = 2
				x = (x - 1.5) / (1 + float64(1.5*x))
			} else { // 2.4375 <= |x| < 2^66
				id = 3
				x = -1 / x
			}
		}
	}
	// end of argument reduction
	z := x * x
	w := z * z
	// break sum from i=0 to 10 atanT[i]z**(i+1) into odd and even poly
	s1 := z * (atanT[0] + float64(w*(atanT[2]+float64(w*(atanT[4]+float64(w*(atanT[6]+float64(w*(atanT[8]+float64(w*atanT[10]))))))))))
	s2 := w * (atanT[1] + float64(w*(atanT[3]+float64(w*(atanT[5]+float64(w*(atanT[7]+float64(w*atanT[9]))))))))
	if id < 0 {
		return x - float64(x*(s1+s2))
	}
	z = atanHi[id] - (float64(x*(s1+s2)) - atanLo[id] - x)
	if sign {
		return -z
	}
	return z
}

const (
	pi   = 3.1415926535897931160e+00 // 0x400921FB, 0x54442D18
	piLo = 1.2246467991473531772e-16 // 0x3CA1A626, 0x33145C07
)

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value.
//
// Special cases are (in order):
//
//	Atan2(y, NaN) = NaN
//	Atan2(NaN, x) = NaN
//	Atan2(+0, x>=0) = +0
//	Atan2(-0, x>=0) = -0
//	Atan2(+0, x<=-0) = +Pi
//	Atan2(-0, x<=-0) = -Pi
//	Atan2(y>0, 0) = +Pi/2
//	Atan2(y<0, 0) = -Pi/2
//	Atan2(+Inf, +Inf) = +Pi/4
//	Atan2(-Inf, +Inf) = -Pi/4
//	Atan2(+Inf, -Inf) = 3Pi/4
//	Atan2(-Inf, -Inf) = -3Pi/4
//	Atan2(y, +Inf) = 0
//	Atan2(y>0, -Inf) = +Pi
//	Atan2(y<0, -Inf) = -Pi
//	Atan2(+Inf, x) = +Pi/2
//	Atan2(-Inf, x) = -Pi/2
func Atan2(y, x float64) float64 {
	const pi3o4 = 0x1.2d97c7f3321d2p+1

	if isNaN64(x) || isNaN64(y) {
		return x + y
	}
	ix, lx := highWord(x), lowWord(x)
	iy, ly := highWord(y), lowWord(y)
	if (ix-0x3ff00000)|lx == 0 { // x = 1.0
		return Atan(y)
	}
	m := (iy>>31)&1 | (ix>>30)&2 // 2*sign(x)+sign(y)
	ix &= 0x7fffffff
	iy &= 0x7fffffff

	// when y = 0
	if iy|ly == 0 {
		switch m {
		case 0, 1:
			return y // atan(+-0,+anything)=+-0
		case 2:
			return pi // atan(+0,-anything) = pi
		case 3:
			return -pi // atan(-0,-anything) =-pi
		}
	}
	// when x = 0
	if ix|lx == 0 {
		if m&1 != 0 {
			return -pi / 2
		}
		return pi / 2
	}
	// when x is INF
	if ix == 0x7ff00000 {
		if iy == 0x7ff00000 {
			switch m {
			case 0:
				return pi / 4 // atan(+INF,+INF)
			case 1:
				return -pi / 4 // atan(-INF,+INF)
			case 2:
				return pi3o4 // atan(+INF,-INF)
			case 3:
				return -pi3o4 // atan(-INF,-INF)
			}
		} else {
			switch m {
			case 0:
				return 0 // atan(+...,+INF)
			case 1:
				return math.Copysign(0, -1) // atan(-...,+INF)
			case 2:
				return pi // atan(+...,-INF)
			case 3:
				return -pi // atan(-...,-INF)
			}
		}
	}
	// |y/x| > 0x1p64
	if ix+(64<<20) < iy || iy == 0x7ff00000 {
		if m&1 != 0 {
			return -pi / 2
		}
		return pi / 2
	}

	// z = atan(|y/x|) without spurious underflow
	var z float64
	if m&2 != 0 && iy+(64<<20) < ix { // |y/x| < 0x1p-64, x<0
		z = 0
	} else {
		z = Atan(Fabs(y / x))
	}
	switch m {
	case 0:
		return z // atan(+,+)
	case 1:
		return -z // atan(-,+)
	case 2:
		return pi - (z - piLo) // atan(+,-)
	default: // case 3
		return (z - piLo) - pi // atan(-,-)
	}
}

var atanHif = [4]float32{
	4.6364760399e-01, // atan(0.5)hi 0x3eed6338
	7.8539812565e-01, // atan(1.0)hi 0x3f490fda
	9.8279368877e-01, // atan(1.5)hi 0x3f7b985e
	1.5707962513e+00, // atan(inf)hi 0x3fc90fda
}

var atanLof = [4]float32{
	5.0121582440e-09, // atan(0.5)lo 0x31ac3769
	3.7748947079e-08, // atan(1.0)lo 0x33222168
	3.4473217170e-08, // atan(1.5)lo 0x33140fb4
	7.5497894159e-08, // atan(inf)lo 0x33a22168
}

var atanTf = [5]float32{
	3.3333328366e-01,
	-1.9999158382e-01,
	1.4253635705e-01,
	-1.0648017377e-01,
	6.1687607318e-02,
}

// Atanf is the float32 version of Atan.
func Atanf(x float32) float32 {
	ix := math.Float32bits(x)
	sign := ix>>31 != 0
	ix &= 0x7fffffff
	var id int
	if ix >= 0x4c800000 { // if |x| >= 2**26
		if isNaN32(x) {
			return x
		}
		z := atanHif[3] + 0x1p-120
		if sign {
			return -z
		}
		return z
	}
	if ix < 0x3ee00000 { // |x| < 0.4375
		if ix < 0x39800000 { // |x| < 2**-12
			if ix < 0x00800000 {
				// raise underflow for subnormal x
				observe32(x * x)
			}
			return x
		}
		id = -1
	} else {
		x = Fabsf(x)
		if ix < 0x3f980000 { // |x| < 1.1875
			if ix < 0x3f300000 { // 7/16 <= |x| < 11/16
				id = 0
				x = (2*x - 1) / (2 + x)
			} else { // 11/16 <= |x| < 19/16
				id = 1
				x = (x - 1) / (x + 1)
			}
		} else {
			if ix < 0x401c0000 { // |x| < 2.4375
				id = 2
				x = (x - 1.5) / (1 + float32(1.5*x))
			} else { // 2.4375 <= |x| < 2**26
				id = 3
				x = -1 / x
			}
		}
	}
	// end of argument reduction
	z := x * x
	w := z * z
	// break sum from i=0 to 10 atanTf[i]z**(i+1) into odd and even poly
	s1 := z * (atanTf[0] + float32(w*(atanTf[2]+float32(w*atanTf[4]))))
	s2 := w * (atanTf[1] + float32(w*atanTf[3]))
	if id < 0 {
		return x - float32(x*(s1+s2))
	}
	z = atanHif[id] - ((float32(x*(s1+s2)) - atanLof[id]) - x)
	if sign {
		return -z
	}
	return z
}

// Atan2f is the float32 version of Atan2.
func Atan2f(y, x float32) float32 {
	const (
		pif   float32 = 3.1415927410e+00  // 0x40490fdb
		piLof float32 = -8.7422776573e-08 // 0xb3bbbd2e
		pi3o4 float32 = 2.3561944962e+00  // 0x4016cbe4
	)
	if isNaN32(x) || isNaN32(y) {
		return x + y
	}
	ix := math.Float32bits(x)
	iy := math.Float32bits(y)
	if ix == 0x3f800000 { // x=1.0
		return Atanf(y)
	}
	m := (iy>>31)&1 | (ix>>30)&2 // 2*sign(x)+sign(y)
	ix &= 0x7fffffff
	iy &= 0x7fffffff

	// when y = 0
	if iy == 0 {
		switch m {
		case 0, 1:
			return y // atan(+-0,+anything)=+-0
		case 2:
			return pif // atan(+0,-anything) = pi
		case 3:
			return -pif // atan(-0,-anything) =-pi
		}
	}
	// when x = 0
	if ix == 0 {
		if m&1 != 0 {
			return -pif / 2
		}
		return pif / 2
	}
	// when x is INF
	if ix == 0x7f800000 {
		if iy == 0x7f800000 {
			switch m {
			case 0:
				return pif / 4 // atan(+INF,+INF)
			case 1:
				return -pif / 4 // atan(-INF,+INF)
			case 2:
				return pi3o4 // atan(+INF,-INF)
			case 3:
				return -pi3o4 // atan(-INF,-INF)
			}
		} else {
			switch m {
			case 0:
				return 0 // atan(+...,+INF)
			case 1:
				return math.Float32frombits(0x80000000) // atan(-...,+INF)
			case 2:
				return pif // atan(+...,-INF)
			case 3:
				return -pif // atan(-...,-INF)
			}
		}
	}
	// |y/x| > 0x1p26
	if ix+(26<<23) < iy || iy == 0x7f800000 {
		if m&1 != 0 {
			return -pif / 2
		}
		return pif / 2
	}

	// z = atan(|y/x|) with correct underflow
	var z float32
	if m&2 != 0 && iy+(26<<23) < ix { // |y/x| < 0x1p-26, x < 0
		z = 0
	} else {
		z = Atanf(Fabsf(y / x))
	}
	switch m {
	case 0:
		return z // atan(+,+)
	case 1:
		return -z // atan(-,+)
	case 2:
		return pif - (z - piLof) // atan(+,-)
	default: // case 3
		return (z - piLof) - pif // atan(-,-)
	}
}
