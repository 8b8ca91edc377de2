// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// The error function is approximated on five intervals of |x|:
//
//	[0, 0.84375]      erf(x) = x + x*R(x^2)
//	[0.84375, 1.25]   erf(x) = erx + P(s)/Q(s), s = |x| - 1, erx = erf(1) rounded
//	[1.25, 1/0.35]    erfc(x) = exp(-x^2 - 0.5625 + R(1/x^2)/S(1/x^2))/x
//	[1/0.35, 28]      same with a second pair of rational coefficients
//	[28, Inf)         erfc(x) underflows, erf(x) = 1 - tiny
//
// The exp argument is split so that -x^2 is computed exactly: z is x with
// the low mantissa bits cleared, and x^2 = z^2 - (z-x)*(z+x).

const (
	erx  = 8.45062911510467529297e-01 // 0x3FEB0AC160000000
	efx8 = 1.02703333676410069053e+00 // 0x3FF06EBA8214DB69
)

// erfTiny is a variable so the underflowing products happen at run time.
var erfTiny = 0x1p-1022

var erfPP = [...]float64{
	1.28379167095512558561e-01,  // 0x3FC06EBA8214DB68
	-3.25042107247001499370e-01, // 0xBFD4CD7D691CB913
	-2.84817495755985104766e-02, // 0xBF9D2A51DBD7194F
	-5.77027029648944159157e-03, // 0xBF77A291236668E4
	-2.37630166566501626084e-05, // 0xBEF8EAD6120016AC
}

var erfQQ = [...]float64{
	3.97917223959155352819e-01,  // 0x3FD97779CDDADC09
	6.50222499887672944485e-02,  // 0x3FB0A54C5536CEBA
	5.08130628187576562776e-03,  // 0x3F74D022C4D36B0F
	1.32494738004321644526e-04,  // 0x3F215DC9221C1A10
	-3.96022827877536812320e-06, // 0xBED09C4342A26120
}

var erfPA = [...]float64{
	-2.36211856075265944077e-03, // 0xBF6359B8BEF77538
	4.14856118683748331666e-01,  // 0x3FDA8D00AD92B34D
	-3.72207876035701323847e-01, // 0xBFD7D240FBB8C3F1
	3.18346619901161753674e-01,  // 0x3FD45FCA805120E4
	-1.10894694282396677476e-01, // 0xBFBC63983D3E28EC
	3.54783043256182359371e-02,  // 0x3FA22A36599795EB
	-2.16637559486879084300e-03, // 0xBF61BF380A96073F
}

var erfQA = [...]float64{
	1.06420880400844228286e-01, // 0x3FBB3E6618EEE323
	5.40397917702171048937e-01, // 0x3FE14AF092EB6F33
	7.18286544141962662868e-02, // 0x3FB2635CD99FE9A7
	1.26171219808761642112e-01, // 0x3FC02660E763351F
	1.36370839120290507362e-02, // 0x3F8BEDC26B51DD1C
	1.19844998467991074170e-02, // 0x3F888B545735151D
}

var erfRA = [...]float64{
	-9.86494403484714822705e-03, // 0xBF843412600D6435
	-6.93858572707181764372e-01, // 0xBFE63416E4BA7360
	-1.05586262253232909814e+01, // 0xC0251E0441B0E726
	-6.23753324503260060396e+01, // 0xC04F300AE4CBA38D
	-1.62396669462573470355e+02, // 0xC0644CB184282266
	-1.84605092906711035994e+02, // 0xC067135CEBCCABB2
	-8.12874355063065934246e+01, // 0xC054526557E4D2F2
	-9.81432934416914548592e+00, // 0xC023A0EFC69AC25C
}

var erfSA = [...]float64{
	1.96512716674392571292e+01,  // 0x4033A6B9BD707687
	1.37657754143519042600e+02,  // 0x4061350C526AE721
	4.34565877475229228821e+02,  // 0x407B290DD58A1A71
	6.45387271733267880336e+02,  // 0x40842B1921EC2868
	4.29008140027567833386e+02,  // 0x407AD02157700314
	1.08635005541779435134e+02,  // 0x405B28A3EE48AE2C
	6.57024977031928170135e+00,  // 0x401A47EF8E484A93
	-6.04244152148580987438e-02, // 0xBFAEEFF2EE749A62
}

var erfRB = [...]float64{
	-9.86494292470009928597e-03, // 0xBF84341239E86F4A
	-7.99283237680523006574e-01, // 0xBFE993BA70C285DE
	-1.77579549177547519889e+01, // 0xC031C209555F995A
	-1.60636384855821916062e+02, // 0xC064145D43C5ED98
	-6.37566443368389627722e+02, // 0xC083EC881375F228
	-1.02509513161107724954e+03, // 0xC09004616A2E5992
	-4.83519191608651397019e+02, // 0xC07E384E9BDC383F
}

var erfSB = [...]float64{
	3.03380607434824582924e+01,  // 0x403E568B261D5190
	3.25792512996573918826e+02,  // 0x40745CAE221B9F0A
	1.53672958608443695994e+03,  // 0x409802EB189D5118
	3.19985821950859553908e+03,  // 0x40A8FFB7688C246A
	2.55305040643316442583e+03,  // 0x40A3F219CEDF3BE6
	4.74528541206955367215e+02,  // 0x407DA874E79FE763
	-2.24409524465858183362e+01, // 0xC03670E242712D62
}

func erfc1(x float64) float64 {
	s := Fabs(x) - 1
	p := erfPA[0] + float64(s*(erfPA[1]+float64(s*(erfPA[2]+float64(s*(erfPA[3]+float64(s*(erfPA[4]+float64(s*(erfPA[5]+float64(s*erfPA[6])))))))))))
	q := 1 + float64(s*(erfQA[0]+float64(s*(erfQA[1]+float64(s*(erfQA[2]+float64(s*(erfQA[3]+float64(s*(erfQA[4]+float64(s*erfQA[5])))))))))))
	return 1 - erx - p/q
}

// erfc2 returns erfc(|x|) for 0.84375 <= |x| < 28; ix is the high word of |x|.
func erfc2(ix uint32, x float64) float64 {
	if ix < 0x3ff40000 {
		// |x| < 1.25
		return erfc1(x)
	}
	x = Fabs(x)
	s := 1 / (x * x)
	var r, q float64
	if ix < 0x4006db6c {
		// |x| < 1/.35 ~ 2.85714
		r = erfRA[0] + float64(s*(erfRA[1]+float64(s*(erfRA[2]+float64(s*(erfRA[3]+float64(s*(erfRA[4]+float64(s*(erfRA[5]+float64(s*(erfRA[6]+float64(s*erfRA[7])))))))))))))
		q = 1 + float64(s*(erfSA[0]+float64(s*(erfSA[1]+float64(s*(erfSA[2]+float64(s*(erfSA[3]+float64(s*(erfSA[4]+float64(s*(erfSA[5]+float64(s*(erfSA[6]+float64(s*erfSA[7])))))))))))))))
	} else {
		r = erfRB[0] + float64(s*(erfRB[1]+float64(s*(erfRB[2]+float64(s*(erfRB[3]+float64(s*(erfRB[4]+float64(s*(erfRB[5]+float64(s*erfRB[6])))))))))))
		q = 1 + float64(s*(erfSB[0]+float64(s*(erfSB[1]+float64(s*(erfSB[2]+float64(s*(erfSB[3]+float64(s*(erfSB[4]+float64(s*(erfSB[5]+float64(s*erfSB[6])))))))))))))
	}
	z := withLowWord(x, 0)
	return Exp(float64(-z*z)-0.5625) * Exp(float64((z-x)*(z+x))+r/q) / x
}

// erfSmall returns x*R(x^2), the correction term on |x| < 0.84375.
func erfSmall(x float64) float64 {
	z := x * x
	r := erfPP[0] + float64(z*(erfPP[1]+float64(z*(erfPP[2]+float64(z*(erfPP[3]+float64(z*erfPP[4])))))))
	s := 1 + float64(z*(erfQQ[0]+float64(z*(erfQQ[1]+float64(z*(erfQQ[2]+float64(z*(erfQQ[3]+float64(z*erfQQ[4])))))))))
	return float64(x * (r / s))
}

// Erf returns the error function of x.
//
// Special cases are:
//
//	Erf(+Inf) = 1
//	Erf(-Inf) = -1
//	Erf(NaN) = NaN
func Erf(x float64) float64 {
	ix := highWord(x)
	sign := ix>>31 != 0
	ix &= 0x7fffffff
	if ix >= 0x7ff00000 {
		// erf(nan)=nan, erf(±inf)=±1
		if sign {
			return -1 + 1/x
		}
		return 1 + 1/x
	}
	if ix < 0x3feb0000 {
		// |x| < 0.84375
		if ix < 0x3e300000 {
			// |x| < 2^-28, avoid underflow
			return 0.125 * (8*x + float64(efx8*x))
		}
		return x + erfSmall(x)
	}
	var y float64
	if ix < 0x40180000 {
		// 0.84375 <= |x| < 6
		y = 1 - erfc2(ix, x)
	} else {
		y = 1 - erfTiny
	}
	if sign {
		return -y
	}
	return y
}

// Erfc returns the complementary error function of x, 1 - Erf(x), without
// the cancellation for large x.
//
// Special cases are:
//
//	Erfc(+Inf) = 0
//	Erfc(-Inf) = 2
//	Erfc(NaN) = NaN
func Erfc(x float64) float64 {
	ix := highWord(x)
	sign := ix>>31 != 0
	ix &= 0x7fffffff
	if ix >= 0x7ff00000 {
		// erfc(nan)=nan, erfc(+inf)=0, erfc(-inf)=2
		if sign {
			return 2 + 1/x
		}
		return 1 / x
	}
	if ix < 0x3feb0000 {
		// |x| < 0.84375
		if ix < 0x3c700000 {
			// |x| < 2^-56
			return 1 - x
		}
		xy := erfSmall(x)
		if sign || ix < 0x3fd00000 {
			// x < 1/4
			return 1 - (x + xy)
		}
		return 0.5 - (x - 0.5 + xy)
	}
	if ix < 0x403c0000 {
		// 0.84375 <= |x| < 28
		if sign {
			return 2 - erfc2(ix, x)
		}
		return erfc2(ix, x)
	}
	if sign {
		return 2 - erfTiny
	}
	return erfTiny * erfTiny
}

const (
	erxf  float32 = 8.4506291151e-01 // 0x3f58560b
	efx8f float32 = 1.0270333290e+00 // 0x3f8375d4
)

var erfTinyf float32 = 0x1p-120

var erfPPf = [...]float32{
	1.2837916613e-01,  // 0x3e0375d4
	-3.2504209876e-01, // 0xbea66beb
	-2.8481749818e-02, // 0xbce9528f
	-5.7702702470e-03, // 0xbbbd1489
	-2.3763017452e-05, // 0xb7c756b1
}

var erfQQf = [...]float32{
	3.9791721106e-01,  // 0x3ecbbbce
	6.5022252500e-02,  // 0x3d852a63
	5.0813062117e-03,  // 0x3ba68116
	1.3249473704e-04,  // 0x390aee49
	-3.9602282413e-06, // 0xb684e21a
}

var erfPAf = [...]float32{
	-2.3621185683e-03, // 0xbb1acdc6
	4.1485610604e-01,  // 0x3ed46805
	-3.7220788002e-01, // 0xbebe9208
	3.1834661961e-01,  // 0x3ea2fe54
	-1.1089469492e-01, // 0xbde31cc2
	3.5478305072e-02,  // 0x3d1151b3
	-2.1663755178e-03, // 0xbb0df9c0
}

var erfQAf = [...]float32{
	1.0642088205e-01, // 0x3dd9f331
	5.4039794207e-01, // 0x3f0a5785
	7.1828655899e-02, // 0x3d931ae7
	1.2617121637e-01, // 0x3e013307
	1.3637083583e-02, // 0x3c5f6e13
	1.1984500103e-02, // 0x3c445aa3
}

var erfRAf = [...]float32{
	-9.8649440333e-03, // 0xbc21a093
	-6.9385856390e-01, // 0xbf31a0b7
	-1.0558626175e+01, // 0xc128f022
	-6.2375331879e+01, // 0xc2798057
	-1.6239666748e+02, // 0xc322658c
	-1.8460508728e+02, // 0xc3389ae7
	-8.1287437439e+01, // 0xc2a2932b
	-9.8143291473e+00, // 0xc11d077e
}

var erfSAf = [...]float32{
	1.9651271820e+01,  // 0x419d35ce
	1.3765776062e+02,  // 0x4309a863
	4.3456588745e+02,  // 0x43d9486f
	6.4538726807e+02,  // 0x442158c9
	4.2900814819e+02,  // 0x43d6810b
	1.0863500214e+02,  // 0x42d9451f
	6.5702495575e+00,  // 0x40d23f7c
	-6.0424413532e-02, // 0xbd777f97
}

var erfRBf = [...]float32{
	-9.8649431020e-03, // 0xbc21a092
	-7.9928326607e-01, // 0xbf4c9dd4
	-1.7757955551e+01, // 0xc18e104b
	-1.6063638306e+02, // 0xc320a2ea
	-6.3756646729e+02, // 0xc41f6441
	-1.0250950928e+03, // 0xc480230b
	-4.8351919556e+02, // 0xc3f1c275
}

var erfSBf = [...]float32{
	3.0338060379e+01,  // 0x41f2b459
	3.2579251099e+02,  // 0x43a2e571
	1.5367296143e+03,  // 0x44c01759
	3.1998581543e+03,  // 0x4547fdbb
	2.5530502930e+03,  // 0x451f90ce
	4.7452853394e+02,  // 0x43ed43a7
	-2.2440952301e+01, // 0xc1b38712
}

func erfc1f(x float32) float32 {
	s := Fabsf(x) - 1
	p := erfPAf[0] + float32(s*(erfPAf[1]+float32(s*(erfPAf[2]+float32(s*(erfPAf[3]+float32(s*(erfPAf[4]+float32(s*(erfPAf[5]+float32(s*erfPAf[6])))))))))))
	q := 1 + float32(s*(erfQAf[0]+float32(s*(erfQAf[1]+float32(s*(erfQAf[2]+float32(s*(erfQAf[3]+float32(s*(erfQAf[4]+float32(s*erfQAf[5])))))))))))
	return 1 - erxf - p/q
}

func erfc2f(ix uint32, x float32) float32 {
	if ix < 0x3fa00000 {
		// |x| < 1.25
		return erfc1f(x)
	}
	x = Fabsf(x)
	s := 1 / (x * x)
	var r, q float32
	if ix < 0x4036db6d {
		// |x| < 1/0.35
		r = erfRAf[0] + float32(s*(erfRAf[1]+float32(s*(erfRAf[2]+float32(s*(erfRAf[3]+float32(s*(erfRAf[4]+float32(s*(erfRAf[5]+float32(s*(erfRAf[6]+float32(s*erfRAf[7])))))))))))))
		q = 1 + float32(s*(erfSAf[0]+float32(s*(erfSAf[1]+float32(s*(erfSAf[2]+float32(s*(erfSAf[3]+float32(s*(erfSAf[4]+float32(s*(erfSAf[5]+float32(s*(erfSAf[6]+float32(s*erfSAf[7])))))))))))))))
	} else {
		r = erfRBf[0] + float32(s*(erfRBf[1]+float32(s*(erfRBf[2]+float32(s*(erfRBf[3]+float32(s*(erfRBf[4]+float32(s*(erfRBf[5]+float32(s*erfRBf[6])))))))))))
		q = 1 + float32(s*(erfSBf[0]+float32(s*(erfSBf[1]+float32(s*(erfSBf[2]+float32(s*(erfSBf[3]+float32(s*(erfSBf[4]+float32(s*(erfSBf[5]+float32(s*erfSBf[6])))))))))))))
	}
	z := math.Float32frombits(math.Float32bits(x) & 0xffffe000)
	return Expf(float32(-z*z)-0.5625) * Expf(float32((z-x)*(z+x))+r/q) / x
}

func erfSmallf(x float32) float32 {
	z := x * x
	r := erfPPf[0] + float32(z*(erfPPf[1]+float32(z*(erfPPf[2]+float32(z*(erfPPf[3]+float32(z*erfPPf[4])))))))
	s := 1 + float32(z*(erfQQf[0]+float32(z*(erfQQf[1]+float32(z*(erfQQf[2]+float32(z*(erfQQf[3]+float32(z*erfQQf[4])))))))))
	return float32(x * (r / s))
}

// Erff is the float32 version of Erf.
func Erff(x float32) float32 {
	ix := math.Float32bits(x)
	sign := ix>>31 != 0
	ix &= 0x7fffffff
	if ix >= 0x7f800000 {
		if sign {
			return -1 + 1/x
		}
		return 1 + 1/x
	}
	if ix < 0x3f580000 {
		// |x| < 0.84375
		if ix < 0x31800000 {
			// |x| < 2^-28
			return 0.125 * (8*x + float32(efx8f*x))
		}
		return x + erfSmallf(x)
	}
	var y float32
	if ix < 0x40c00000 {
		// |x| < 6
		y = 1 - erfc2f(ix, x)
	} else {
		y = 1 - erfTinyf
	}
	if sign {
		return -y
	}
	return y
}

// Erfcf is the float32 version of Erfc.
func Erfcf(x float32) float32 {
	ix := math.Float32bits(x)
	sign := ix>>31 != 0
	ix &= 0x7fffffff
	if ix >= 0x7f800000 {
		if sign {
			return 2 + 1/x
		}
		return 1 / x
	}
	if ix < 0x3f580000 {
		if ix < 0x23800000 {
			// |x| < 2^-56
			return 1 - x
		}
		xy := erfSmallf(x)
		if sign || ix < 0x3e800000 {
			return 1 - (x + xy)
		}
		return 0.5 - (x - 0.5 + xy)
	}
	if ix < 0x41e00000 {
		// |x| < 28
		if sign {
			return 2 - erfc2f(ix, x)
		}
		return erfc2f(ix, x)
	}
	if sign {
		return 2 - erfTinyf
	}
	return erfTinyf * erfTinyf
}
