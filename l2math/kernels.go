// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

// Kernel sin, cos and tan on [-pi/4, pi/4]. The argument is x+y where y is
// the tail of x; callers pass y from remPio2. Each polynomial is split into
// halves evaluated independently before they are combined.

const (
	// |sin(x)/x - (1+S1*x**2+...+S6*x**12)| <= 2**-58 on [0,pi/4]
	kS1 = -1.66666666666666324348e-01 // 0xBFC55555, 0x55555549
	kS2 = 8.33333333332248946124e-03  // 0x3F811111, 0x1110F8A6
	kS3 = -1.98412698298579493134e-04 // 0xBF2A01A0, 0x19C161D5
	kS4 = 2.75573137070700676789e-06  // 0x3EC71DE3, 0x57B1FE7D
	kS5 = -2.50507602534068634195e-08 // 0xBE5AE5E6, 0x8A2B9CEB
	kS6 = 1.58969099521155010221e-10  // 0x3DE5D93A, 0x5ACFD57C

	// |cos(x) - (1-.5*x**2+C1*x**4+...+C6*x**14)| <= 2**-58 on [0,pi/4]
	kC1 = 4.16666666666666019037e-02  // 0x3FA55555, 0x5555554C
	kC2 = -1.38888888888741095749e-03 // 0xBF56C16C, 0x16C15177
	kC3 = 2.48015872894767294178e-05  // 0x3EFA01A0, 0x19CB1590
	kC4 = -2.75573143513906633035e-07 // 0xBE927E4F, 0x809C52AD
	kC5 = 2.08757232129817482790e-09  // 0x3E21EE9E, 0xBDB4B1C4
	kC6 = -1.13596475577881948265e-11 // 0xBDA8FAE9, 0xBE8838D4
)

// kSin computes sin(x+y) for |x| ~<= pi/4. iy == 0 means y is known to be
// zero and is ignored.
func kSin(x, y float64, iy int) float64 {
	z := x * x
	w := z * z
	r := kS2 + float64(z*(kS3+float64(z*kS4))) + float64(z*w*(kS5+float64(z*kS6)))
	v := z * x
	if iy == 0 {
		return x + float64(v*(kS1+float64(z*r)))
	}
	return x - ((float64(z*(0.5*y-float64(v*r))) - y) - float64(v*kS1))
}

// kCos computes cos(x+y) for |x| ~<= pi/4. The result is 1-hz+(..) with
// hz = x*x/2 split so that 1-hz is exact.
func kCos(x, y float64) float64 {
	z := x * x
	w := z * z
	r := float64(z*(kC1+float64(z*(kC2+float64(z*kC3))))) +
		float64(w*w*(kC4+float64(z*(kC5+float64(z*kC6)))))
	hz := 0.5 * z
	w = 1 - hz
	return w + (((1 - w) - hz) + (float64(z*r) - float64(x*y)))
}

var kT = [13]float64{
	3.33333333333334091986e-01,  // 3FD55555, 55555563
	1.33333333333201242699e-01,  // 3FC11111, 1110FE7A
	5.39682539762260521377e-02,  // 3FABA1BA, 1BB341FE
	2.18694882948595424599e-02,  // 3F9664F4, 8406D637
	8.86323982359930005737e-03,  // 3F8226E3, E96E8493
	3.59207910759131235356e-03,  // 3F6D6D22, C9560328
	1.45620945432529025516e-03,  // 3F57DBC8, FEE08315
	5.88041240820264096874e-04,  // 3F4344D8, F2F26501
	2.46463134818469906812e-04,  // 3F3026F7, 1A8D1068
	7.81794442939557092300e-05,  // 3F147E88, A03792A6
	7.14072491382608190305e-05,  // 3F12B80F, 32F0A7E9
	-1.85586374855275456654e-05, // BEF375CB, DB605373
	2.59073051863633712884e-05,  // 3EFB2A70, 74BF7AD4
}

const (
	tanPio4   = 7.85398163397448278999e-01 // 3FE921FB, 54442D18
	tanPio4lo = 3.06161699786838301793e-17 // 3C81A626, 33145C07
)

// kTan computes tan(x+y) for |x| ~<= pi/4, or -1/tan(x+y) when odd is set.
// Above 0.6744 the argument is mirrored around pi/4 so the series runs on
// a smaller value.
func kTan(x, y float64, odd bool) float64 {
	hx := highWord(x)
	big := hx&0x7fffffff >= 0x3FE59428 // |x| >= 0.6744
	sign := false
	if big {
		sign = hx>>31 != 0
		if sign {
			x = -x
			y = -y
		}
		x = (tanPio4 - x) + (tanPio4lo - y)
		y = 0
	}
	z := x * x
	w := z * z
	// Break x**5*(T[1]+x**2*T[2]+...) into
	// x**5(T[1]+x**4*T[3]+...+x**20*T[11]) +
	// x**5(x**2*(T[2]+x**4*T[4]+...+x**22*[T12]))
	r := kT[1] + float64(w*(kT[3]+float64(w*(kT[5]+float64(w*(kT[7]+float64(w*(kT[9]+float64(w*kT[11])))))))))
	v := z * (kT[2] + float64(w*(kT[4]+float64(w*(kT[6]+float64(w*(kT[8]+float64(w*(kT[10]+float64(w*kT[12]))))))))))
	s := z * x
	r = y + float64(z*(float64(s*(r+v))+y)) + float64(s*kT[0])
	w = x + r
	if big {
		s = 1
		if odd {
			s = -1
		}
		v = s - 2*(x+(r-w*w/(w+s)))
		if sign {
			return -v
		}
		return v
	}
	if !odd {
		return w
	}
	// -1.0/(x+r) has up to 2ulp error, so compute it accurately
	w0 := withLowWord(w, 0)
	v = r - (w0 - x) // w0+v = r+x
	a := -1 / w
	a0 := withLowWord(a, 0)
	return a0 + float64(a*(1+float64(a0*w0)+float64(a0*v)))
}

// Float32 kernels evaluate in float64 on |x| <= pi/4 and leave the final
// narrowing to the caller.

const (
	// |sin(x)/x - s(x)| < 2**-37.5 (~[-4.89e-12, 4.824e-12])
	kS1f = -0x15555554cbac77.0p-55 // -0.166666666416265235595
	kS2f = 0x111110896efbb2.0p-59  // 0.0083333293858894631756
	kS3f = -0x1a00f9e2cae774.0p-65 // -0.000198393348360966317347
	kS4f = 0x16cd878c3b46a7.0p-71  // 0.0000027183114939898219064

	// |cos(x) - c(x)| < 2**-34.1 (~[-5.37e-11, 5.295e-11])
	kC0f = -0x1ffffffd0c5e81.0p-54 // -0.499999997251031003120
	kC1f = 0x155553e1053a42.0p-57  // 0.0416666233237390631894
	kC2f = -0x16c087e80f1e27.0p-62 // -0.00138867637746099294692
	kC3f = 0x199342e0ee5069.0p-68  // 0.0000243904487962774090654
)

func kSinf(x float64) float32 {
	z := x * x
	w := z * z
	r := kS3f + float64(z*kS4f)
	s := z * x
	return float32((x + float64(s*(kS1f+float64(z*kS2f)))) + float64(s*w*r))
}

func kCosf(x float64) float32 {
	z := x * x
	w := z * z
	r := kC2f + float64(z*kC3f)
	return float32(((1 + float64(z*kC0f)) + float64(w*kC1f)) + float64(w*z*r))
}

// |tan(x)/x - t(x)| < 2**-25.5 (~[-2e-08, 2e-08])
var kTf = [6]float64{
	0x15554d3418c99f.0p-54, // 0.333331395030791399758
	0x1112fd38999f72.0p-55, // 0.133392002712976742718
	0x1b54c91d865afe.0p-57, // 0.0533812378445670393523
	0x191df3908c33ce.0p-58, // 0.0245283181166547278873
	0x185dadfcecf44e.0p-61, // 0.00297435743359967304927
	0x1362b9bf971bcd.0p-59, // 0.00946564784943673166728
}

func kTanf(x float64, odd bool) float32 {
	z := x * x
	// Split up the polynomial into small independent terms to give
	// opportunities for parallel evaluation.
	r := kTf[4] + float64(z*kTf[5])
	t := kTf[2] + float64(z*kTf[3])
	w := z * z
	s := z * x
	u := kTf[0] + float64(z*kTf[1])
	r = (x + float64(s*u)) + float64(s*w*(t+float64(w*r)))
	if odd {
		return float32(-1 / r)
	}
	return float32(r)
}

