// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Bessel functions of order one. J1 is odd, Y1 is defined for x > 0.
// The structure follows J0/Y0 with x1 = x - 3pi/4 as the phase:
//
//	J1(x) = sqrt(2/(pi*x)) * (P1(x)*cos(x1) - Q1(x)*sin(x1))
//	Y1(x) = sqrt(2/(pi*x)) * (P1(x)*sin(x1) + Q1(x)*cos(x1))

func j1Common(ix uint32, x float64, y1, sign bool) float64 {
	s := Sin(x)
	if y1 {
		s = -s
	}
	c := Cos(x)
	cc := s - c
	if ix < 0x7fe00000 {
		// avoid overflow in 2*x
		ss := -s - c
		z := Cos(2 * x)
		if s*c > 0 {
			cc = z / ss
		} else {
			ss = z / cc
		}
		if ix < 0x48000000 {
			if y1 {
				ss = -ss
			}
			cc = float64(pone(x)*cc) - float64(qone(x)*ss)
		}
	}
	if sign {
		cc = -cc
	}
	return invSqrtPi * cc / Sqrt(x)
}

var j1R = [...]float64{
	-6.25000000000000000000e-02, // 0xBFB0000000000000
	1.40705666955189706048e-03,  // 0x3F570D9F98472C61
	-1.59955631084035597520e-05, // 0xBEF0C5C6BA169668
	4.96727999609584448412e-08,  // 0x3E6AAAFA46CA0BD9
}

var j1S = [...]float64{
	1.91537599538363460805e-02, // 0x3F939D0B12637E53
	1.85946785588630915560e-04, // 0x3F285F56B9CDF664
	1.17718464042623683263e-06, // 0x3EB3BFF8333F8498
	5.04636257076217042715e-09, // 0x3E35AC88C97DFF2C
	1.23542274426137913908e-11, // 0x3DAB2ACFCFB97ED8
}

var y1U = [...]float64{
	-1.96057090646238940668e-01, // 0xBFC91866143CBC8A
	5.04438716639811282616e-02,  // 0x3FA9D3C776292CD1
	-1.91256895875763547298e-03, // 0xBF5F55E54844F50F
	2.35252600561610495928e-05,  // 0x3EF8AB038FA6B88E
	-9.19099158039878874504e-08, // 0xBE78AC00569105B8
}

var y1V = [...]float64{
	1.99167318236649903973e-02, // 0x3F94650D3F4DA9F0
	2.02552581025135171496e-04, // 0x3F2A8C896C257764
	1.35608801097516229404e-06, // 0x3EB6C05A894E8CA6
	6.22741452364621501295e-09, // 0x3E3ABF1D5BA69A86
	1.66559246207992079114e-11, // 0x3DB25039DACA772A
}

// J1 returns the order-one Bessel function of the first kind.
//
// Special cases are:
//
//	J1(±Inf) = 0
//	J1(NaN) = NaN
func J1(x float64) float64 {
	ix := highWord(x)
	sign := ix>>31 != 0
	ix &= 0x7fffffff
	if ix >= 0x7ff00000 {
		return 1 / (x * x)
	}
	if ix >= 0x40000000 {
		// |x| >= 2
		return j1Common(ix, Fabs(x), false, sign)
	}
	var z float64
	if ix >= 0x38000000 {
		// |x| >= 2^-127
		z = x * x
		r := z * (j1R[0] + float64(z*(j1R[1]+float64(z*(j1R[2]+float64(z*j1R[3]))))))
		s := 1 + float64(z*(j1S[0]+float64(z*(j1S[1]+float64(z*(j1S[2]+float64(z*(j1S[3]+float64(z*j1S[4])))))))))
		z = r / s
	} else {
		// avoid underflow, raise inexact if x != 0
		z = x
	}
	return (0.5 + z) * x
}

// Y1 returns the order-one Bessel function of the second kind.
//
// Special cases are:
//
//	Y1(+Inf) = 0
//	Y1(±0) = -Inf
//	Y1(x < 0) = NaN
//	Y1(NaN) = NaN
func Y1(x float64) float64 {
	ix, lx := highWord(x), lowWord(x)
	if ix<<1|lx == 0 {
		return -1 / (x - x)
	}
	if ix>>31 != 0 {
		return (x - x) / (x - x)
	}
	if ix >= 0x7ff00000 {
		return 1 / x
	}
	if ix >= 0x40000000 {
		// x >= 2
		return j1Common(ix, x, true, false)
	}
	if ix < 0x3c900000 {
		// x < 2^-54
		return -tpi / x
	}
	z := x * x
	u := y1U[0] + float64(z*(y1U[1]+float64(z*(y1U[2]+float64(z*(y1U[3]+float64(z*y1U[4])))))))
	v := 1 + float64(z*(y1V[0]+float64(z*(y1V[1]+float64(z*(y1V[2]+float64(z*(y1V[3]+float64(z*y1V[4])))))))))
	return float64(x*(u/v)) + float64(tpi*(float64(J1(x)*Log(x))-1/x))
}

// pone(x) = 1 + R/S, the asymptotic expansion being
//
//	1 + 15/128 s^2 - 4725/2^15 s^4 - ..., where s = 1/x,
//
// on the same four bands of x as pzero.

var p1R8 = [6]float64{
	0.00000000000000000000e+00, // 0x0000000000000000
	1.17187499999988647970e-01, // 0x3FBDFFFFFFFFFCCE
	1.32394806593073575129e+01, // 0x402A7A9D357F7FCE
	4.12051854307378562225e+02, // 0x4079C0D4652EA590
	3.87474538913960532227e+03, // 0x40AE457DA3A532CC
	7.91447954031891731574e+03, // 0x40BEEA7AC32782DD
}

var p1S8 = [5]float64{
	1.14207370375678408436e+02, // 0x405C8D458E656CAC
	3.65093083420853463394e+03, // 0x40AC85DC964D274F
	3.69562060269033463555e+04, // 0x40E20B8697C5BB7F
	9.76027935934950801311e+04, // 0x40F7D42CB28F17BB
	3.08042720627888811578e+04, // 0x40DE1511697A0B2D
}

var p1R5 = [6]float64{
	1.31990519556243522749e-11, // 0x3DAD0667DAE1CA7D
	1.17187493190614097638e-01, // 0x3FBDFFFFE2C10043
	6.80275127868432871736e+00, // 0x401B36046E6315E3
	1.08308182990189109773e+02, // 0x405B13B9452602ED
	5.17636139533199752805e+02, // 0x40802D16D052D649
	5.28715201363337541807e+02, // 0x408085B8BB7E0CB7
}

var p1S5 = [5]float64{
	5.92805987221131331921e+01, // 0x404DA3EAA8AF633D
	9.91401418733614377743e+02, // 0x408EFB361B066701
	5.35326695291487976647e+03, // 0x40B4E9445706B6FB
	7.84469031749551231769e+03, // 0x40BEA4B0B8A5BB15
	1.50404688810361062679e+03, // 0x40978030036F5E51
}

var p1R3 = [6]float64{
	3.02503916137373618024e-09, // 0x3E29FC21A7AD9EDD
	1.17186865567253592491e-01, // 0x3FBDFFF55B21D17B
	3.93297750033315640650e+00, // 0x400F76BCE85EAD8A
	3.51194035591636932736e+01, // 0x40418F489DA6D129
	9.10550110750781271918e+01, // 0x4056C3854D2C1837
	4.85590685197364919645e+01, // 0x4048478F8EA83EE5
}

var p1S3 = [5]float64{
	3.47913095001251519989e+01, // 0x40416549A134069C
	3.36762458747825746741e+02, // 0x40750C3307F1A75F
	1.04687139975775130551e+03, // 0x40905B7C5037D523
	8.90811346398256432622e+02, // 0x408BD67DA32E31E9
	1.03787932439639277504e+02, // 0x4059F26D7C2EED53
}

var p1R2 = [6]float64{
	1.07710830106873743082e-07, // 0x3E7CE9D4F65544F4
	1.17176219462683348094e-01, // 0x3FBDFF42BE760D83
	2.36851496667608785174e+00, // 0x4002F2B7F98FAEC0
	1.22426109148261232917e+01, // 0x40287C377F71A964
	1.76939711271687727390e+01, // 0x4031B1A8177F8EE2
	5.07352312588818499250e+00, // 0x40144B49A574C1FE
}

var p1S2 = [5]float64{
	2.14364859363821409488e+01, // 0x40356FBD8AD5ECDC
	1.25290227168402751090e+02, // 0x405F529314F92CD5
	2.32276469057162813669e+02, // 0x406D08D8D5A2DBD9
	1.17679373287147100768e+02, // 0x405D6B7ADA1884A9
	8.36463893371618283368e+00, // 0x4020BAB1F44E5192
}

func pone(x float64) float64 {
	var p *[6]float64
	var q *[5]float64
	ix := highWord(x) & 0x7fffffff
	switch {
	case ix >= 0x40200000:
		p, q = &p1R8, &p1S8
	case ix >= 0x40122e8b:
		p, q = &p1R5, &p1S5
	case ix >= 0x4006db6d:
		p, q = &p1R3, &p1S3
	default:
		p, q = &p1R2, &p1S2
	}
	z := 1 / (x * x)
	r := p[0] + float64(z*(p[1]+float64(z*(p[2]+float64(z*(p[3]+float64(z*(p[4]+float64(z*p[5])))))))))
	s := 1 + float64(z*(q[0]+float64(z*(q[1]+float64(z*(q[2]+float64(z*(q[3]+float64(z*q[4])))))))))
	return 1 + r/s
}

// qone(x) = (0.375 + R/S)/x, the asymptotic expansion being
//
//	(3/8 - 105/1024 s^2 + 3465/2^15 s^4 - ...)/x.

var q1R8 = [6]float64{
	0.00000000000000000000e+00,  // 0x0000000000000000
	-1.02539062499992714161e-01, // 0xBFBA3FFFFFFFFDF3
	-1.62717534544589987888e+01, // 0xC0304591A26779F7
	-7.59601722513950107896e+02, // 0xC087BCD053E4B576
	-1.18498066702429587167e+04, // 0xC0C724E740F87415
	-4.84385124285750353010e+04, // 0xC0E7A6D065D09C6A
}

var q1S8 = [6]float64{
	1.61395369700722909556e+02,  // 0x40642CA6DE5BCDE5
	7.82538599923348465381e+03,  // 0x40BE9162D0D88419
	1.33875336287249578163e+05,  // 0x4100579AB0B75E98
	7.19657723683240939863e+05,  // 0x4125F65372869C19
	6.66601232617776375264e+05,  // 0x412457D27719AD5C
	-2.94490264303834643215e+05, // 0xC111F9690EA5AA18
}

var q1R5 = [6]float64{
	-2.08979931141764104297e-11, // 0xBDB6FA431AA1A098
	-1.02539050241375426231e-01, // 0xBFBA3FFFCB597FEF
	-8.05644828123936029840e+00, // 0xC0201CE6CA03AD4B
	-1.83669607474888380239e+02, // 0xC066F56D6CA7B9B0
	-1.37319376065508163265e+03, // 0xC09574C66931734F
	-2.61244440453215656817e+03, // 0xC0A468E388FDA79D
}

var q1S5 = [6]float64{
	8.12765501384335777857e+01,  // 0x405451B2FF5A11B2
	1.99179873460485964642e+03,  // 0x409F1F31E77BF839
	1.74684851924908907677e+04,  // 0x40D10F1F0D64CE29
	4.98514270910352279316e+04,  // 0x40E8576DAABAD197
	2.79480751638918118260e+04,  // 0x40DB4B04CF7C364B
	-4.71918354795128470869e+03, // 0xC0B26F2EFCFFA004
}

var q1R3 = [6]float64{
	-5.07831226461766561369e-09, // 0xBE35CFA9D38FC84F
	-1.02537829820837089745e-01, // 0xBFBA3FEB51AEED54
	-4.61011581139473403113e+00, // 0xC01270C23302D9FF
	-5.78472216562783643212e+01, // 0xC04CEC71C25D16DA
	-2.28244540737631695038e+02, // 0xC06C87D34718D55F
	-2.19210128478909325622e+02, // 0xC06B66B95F5C1BF6
}

var q1S3 = [6]float64{
	4.76651550323729509273e+01,  // 0x4047D523CCD367E4
	6.73865112676699709482e+02,  // 0x40850EEBC031EE3E
	3.38015286679526343505e+03,  // 0x40AA684E448E7C9A
	5.54772909720722782367e+03,  // 0x40B5ABBAA61D54A6
	1.90311919338810798763e+03,  // 0x409DBC7A0DD4DF4B
	-1.35201191444307340817e+02, // 0xC060E670290A311F
}

var q1R2 = [6]float64{
	-1.78381727510958865572e-07, // 0xBE87F12644C626D2
	-1.02517042607985553460e-01, // 0xBFBA3E8E9148B010
	-2.75220568278187460720e+00, // 0xC006048469BB4EDA
	-1.96636162643703720221e+01, // 0xC033A9E2C168907F
	-4.23253133372830490089e+01, // 0xC04529A3DE104AAA
	-2.13719211703704061733e+01, // 0xC0355F3639CF6E52
}

var q1S2 = [6]float64{
	2.95333629060523854548e+01,  // 0x403D888A78AE64FF
	2.52981549982190529136e+02,  // 0x406F9F68DB821CBA
	7.57502834868645436472e+02,  // 0x4087AC05CE49A0F7
	7.39393205320467245656e+02,  // 0x40871B2548D4C029
	1.55949003336666123687e+02,  // 0x40637E5E3C3ED8D4
	-4.95949898822628210127e+00, // 0xC013D686E71BE86B
}

func qone(x float64) float64 {
	var p, q *[6]float64
	ix := highWord(x) & 0x7fffffff
	switch {
	case ix >= 0x40200000:
		p, q = &q1R8, &q1S8
	case ix >= 0x40122e8b:
		p, q = &q1R5, &q1S5
	case ix >= 0x4006db6d:
		p, q = &q1R3, &q1S3
	default:
		p, q = &q1R2, &q1S2
	}
	z := 1 / (x * x)
	r := p[0] + float64(z*(p[1]+float64(z*(p[2]+float64(z*(p[3]+float64(z*(p[4]+float64(z*p[5])))))))))
	s := 1 + float64(z*(q[0]+float64(z*(q[1]+float64(z*(q[2]+float64(z*(q[3]+float64(z*(q[4]+float64(z*q[5])))))))))))
	return (0.375 + r/s) / x
}

func j1Commonf(ix uint32, x float32, y1, sign bool) float32 {
	s := float64(Sinf(x))
	if y1 {
		s = -s
	}
	c := float64(Cosf(x))
	cc := s - c
	if ix < 0x7f000000 {
		ss := -s - c
		z := float64(Cosf(2 * x))
		if s*c > 0 {
			cc = z / ss
		} else {
			ss = z / cc
		}
		if ix < 0x58800000 {
			if y1 {
				ss = -ss
			}
			cc = float64(float64(ponef(x))*cc) - float64(float64(qonef(x))*ss)
		}
	}
	if sign {
		cc = -cc
	}
	return float32(float64(invSqrtPif) * cc / float64(Sqrtf(x)))
}

var j1Rf = [...]float32{
	-6.2500000000e-02, // 0xbd800000
	1.4070566976e-03,  // 0x3ab86cfd
	-1.5995563444e-05, // 0xb7862e36
	4.9672799207e-08,  // 0x335557d2
}

var j1Sf = [...]float32{
	1.9153760746e-02, // 0x3c9ce859
	1.8594678841e-04, // 0x3942fab6
	1.1771846857e-06, // 0x359dffc2
	5.0463624390e-09, // 0x31ad6446
	1.2354227016e-11, // 0x2d59567e
}

var y1Uf = [...]float32{
	-1.9605709612e-01, // 0xbe48c331
	5.0443872809e-02,  // 0x3d4e9e3c
	-1.9125689287e-03, // 0xbafaaf2a
	2.3525259166e-05,  // 0x37c5581c
	-9.1909917899e-08, // 0xb3c56003
}

var y1Vf = [...]float32{
	1.9916731864e-02, // 0x3ca3286a
	2.0255257550e-04, // 0x3954644b
	1.3560879779e-06, // 0x35b602d4
	6.2274145840e-09, // 0x31d5f8eb
	1.6655924903e-11, // 0x2d9281cf
}

// J1f is the float32 version of J1.
func J1f(x float32) float32 {
	ix := math.Float32bits(x)
	sign := ix>>31 != 0
	ix &= 0x7fffffff
	if ix >= 0x7f800000 {
		return 1 / (x * x)
	}
	if ix >= 0x40000000 {
		return j1Commonf(ix, Fabsf(x), false, sign)
	}
	z := float32(0.5)
	if ix >= 0x39000000 {
		// |x| >= 2^-13
		zz := x * x
		r := zz * (j1Rf[0] + float32(zz*(j1Rf[1]+float32(zz*(j1Rf[2]+float32(zz*j1Rf[3]))))))
		s := 1 + float32(zz*(j1Sf[0]+float32(zz*(j1Sf[1]+float32(zz*(j1Sf[2]+float32(zz*(j1Sf[3]+float32(zz*j1Sf[4])))))))))
		z = 0.5 + r/s
	}
	return z * x
}

// Y1f is the float32 version of Y1.
func Y1f(x float32) float32 {
	ix := math.Float32bits(x)
	if ix&0x7fffffff == 0 {
		return -1 / (x - x)
	}
	if ix>>31 != 0 {
		return (x - x) / (x - x)
	}
	if ix >= 0x7f800000 {
		return 1 / x
	}
	if ix >= 0x40000000 {
		return j1Commonf(ix, x, true, false)
	}
	if ix < 0x33000000 {
		// x < 2^-25
		return -tpif / x
	}
	z := x * x
	u := y1Uf[0] + float32(z*(y1Uf[1]+float32(z*(y1Uf[2]+float32(z*(y1Uf[3]+float32(z*y1Uf[4])))))))
	v := 1 + float32(z*(y1Vf[0]+float32(z*(y1Vf[1]+float32(z*(y1Vf[2]+float32(z*(y1Vf[3]+float32(z*y1Vf[4])))))))))
	return float32(x*(u/v)) + float32(tpif*(float32(J1f(x)*Logf(x))-1/x))
}

var p1R8f = [6]float32{
	0.0000000000e+00, // 0x00000000
	1.1718750000e-01, // 0x3df00000
	1.3239480972e+01, // 0x4153d4ea
	4.1205184937e+02, // 0x43ce06a3
	3.8747453613e+03, // 0x45722bed
	7.9144794922e+03, // 0x45f753d6
}

var p1S8f = [5]float32{
	1.1420736694e+02, // 0x42e46a2c
	3.6509309082e+03, // 0x45642ee5
	3.6956207031e+04, // 0x47105c35
	9.7602796875e+04, // 0x47bea166
	3.0804271484e+04, // 0x46f0a88b
}

var p1R5f = [6]float32{
	1.3199052094e-11, // 0x2d68333f
	1.1718749255e-01, // 0x3defffff
	6.8027510643e+00, // 0x40d9b023
	1.0830818176e+02, // 0x42d89dca
	5.1763616943e+02, // 0x440168b7
	5.2871520996e+02, // 0x44042dc6
}

var p1S5f = [5]float32{
	5.9280597687e+01, // 0x426d1f55
	9.9140142822e+02, // 0x4477d9b1
	5.3532670898e+03, // 0x45a74a23
	7.8446904297e+03, // 0x45f52586
	1.5040468750e+03, // 0x44bc0180
}

var p1R3f = [6]float32{
	3.0250391081e-09, // 0x314fe10d
	1.1718686670e-01, // 0x3defffab
	3.9329774380e+00, // 0x407bb5e7
	3.5119403839e+01, // 0x420c7a45
	9.1055007935e+01, // 0x42b61c2a
	4.8559066772e+01, // 0x42423c7c
}

var p1S3f = [5]float32{
	3.4791309357e+01, // 0x420b2a4d
	3.3676245117e+02, // 0x43a86198
	1.0468714600e+03, // 0x4482dbe3
	8.9081134033e+02, // 0x445eb3ed
	1.0378793335e+02, // 0x42cf936c
}

var p1R2f = [6]float32{
	1.0771083225e-07, // 0x33e74ea8
	1.1717621982e-01, // 0x3deffa16
	2.3685150146e+00, // 0x401795c0
	1.2242610931e+01, // 0x4143e1bc
	1.7693971634e+01, // 0x418d8d41
	5.0735230446e+00, // 0x40a25a4d
}

var p1S2f = [5]float32{
	2.1436485291e+01, // 0x41ab7dec
	1.2529022980e+02, // 0x42fa9499
	2.3227647400e+02, // 0x436846c7
	1.1767937469e+02, // 0x42eb5bd7
	8.3646392822e+00, // 0x4105d590
}

func ponef(x float32) float32 {
	var p *[6]float32
	var q *[5]float32
	ix := math.Float32bits(x) & 0x7fffffff
	switch {
	case ix >= 0x41000000:
		p, q = &p1R8f, &p1S8f
	case ix >= 0x409173eb:
		p, q = &p1R5f, &p1S5f
	case ix >= 0x4036d917:
		p, q = &p1R3f, &p1S3f
	default:
		p, q = &p1R2f, &p1S2f
	}
	z := 1 / (x * x)
	r := p[0] + float32(z*(p[1]+float32(z*(p[2]+float32(z*(p[3]+float32(z*(p[4]+float32(z*p[5])))))))))
	s := 1 + float32(z*(q[0]+float32(z*(q[1]+float32(z*(q[2]+float32(z*(q[3]+float32(z*q[4])))))))))
	return 1 + r/s
}

var q1R8f = [6]float32{
	0.0000000000e+00,  // 0x00000000
	-1.0253906250e-01, // 0xbdd20000
	-1.6271753311e+01, // 0xc1822c8d
	-7.5960174561e+02, // 0xc43de683
	-1.1849806641e+04, // 0xc639273a
	-4.8438511719e+04, // 0xc73d3683
}

var q1S8f = [6]float32{
	1.6139537048e+02,  // 0x43216537
	7.8253862305e+03,  // 0x45f48b17
	1.3387534375e+05,  // 0x4802bcd6
	7.1965775000e+05,  // 0x492fb29c
	6.6660125000e+05,  // 0x4922be94
	-2.9449025000e+05, // 0xc88fcb48
}

var q1R5f = [6]float32{
	-2.0897993405e-11, // 0xadb7d219
	-1.0253904760e-01, // 0xbdd1fffe
	-8.0564479828e+00, // 0xc100e736
	-1.8366960144e+02, // 0xc337ab6b
	-1.3731937256e+03, // 0xc4aba633
	-2.6124443359e+03, // 0xc523471c
}

var q1S5f = [6]float32{
	8.1276550293e+01,  // 0x42a28d98
	1.9917987061e+03,  // 0x44f8f98f
	1.7468484375e+04,  // 0x468878f8
	4.9851425781e+04,  // 0x4742bb6d
	2.7948074219e+04,  // 0x46da5826
	-4.7191835938e+03, // 0xc5937978
}

var q1R3f = [6]float32{
	-5.0783124372e-09, // 0xb1ae7d4f
	-1.0253783315e-01, // 0xbdd1ff5b
	-4.6101160049e+00, // 0xc0938612
	-5.7847221375e+01, // 0xc267638e
	-2.2824453735e+02, // 0xc3643e9a
	-2.1921012878e+02, // 0xc35b35cb
}

var q1S3f = [6]float32{
	4.7665153503e+01,  // 0x423ea91e
	6.7386511230e+02,  // 0x4428775e
	3.3801528320e+03,  // 0x45534272
	5.5477290039e+03,  // 0x45ad5dd5
	1.9031191406e+03,  // 0x44ede3d0
	-1.3520118713e+02, // 0xc3073381
}

var q1R2f = [6]float32{
	-1.7838172539e-07, // 0xb43f8932
	-1.0251704603e-01, // 0xbdd1f475
	-2.7522056103e+00, // 0xc0302423
	-1.9663616180e+01, // 0xc19d4f16
	-4.2325313568e+01, // 0xc2294d1f
	-2.1371921539e+01, // 0xc1aaf9b2
}

var q1S2f = [6]float32{
	2.9533363342e+01,  // 0x41ec4454
	2.5298155212e+02,  // 0x437cfb47
	7.5750280762e+02,  // 0x443d602e
	7.3939318848e+02,  // 0x4438d92a
	1.5594900513e+02,  // 0x431bf2f2
	-4.9594988823e+00, // 0xc09eb437
}

func qonef(x float32) float32 {
	var p, q *[6]float32
	ix := math.Float32bits(x) & 0x7fffffff
	switch {
	case ix >= 0x41000000:
		p, q = &q1R8f, &q1S8f
	case ix >= 0x409173eb:
		p, q = &q1R5f, &q1S5f
	case ix >= 0x4036d917:
		p, q = &q1R3f, &q1S3f
	default:
		p, q = &q1R2f, &q1S2f
	}
	z := 1 / (x * x)
	r := p[0] + float32(z*(p[1]+float32(z*(p[2]+float32(z*(p[3]+float32(z*(p[4]+float32(z*p[5])))))))))
	s := 1 + float32(z*(q[0]+float32(z*(q[1]+float32(z*(q[2]+float32(z*(q[3]+float32(z*(q[4]+float32(z*q[5])))))))))))
	return (0.375 + r/s) / x
}
