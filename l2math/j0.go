// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Bessel functions of the first and second kind, order zero.
//
// For x < 2 both are rational approximations in x^2 (Y0 adds the
// (2/pi)*J0(x)*log(x) singular part). For x >= 2 the asymptotic form
//
//	J0(x) = sqrt(2/(pi*x)) * (P0(x)*cos(x0) - Q0(x)*sin(x0))
//	Y0(x) = sqrt(2/(pi*x)) * (P0(x)*sin(x0) + Q0(x)*cos(x0))
//
// with x0 = x - pi/4 is used. cos(x0) and sin(x0) are formed from
// sin(x) ± cos(x), and the one that cancels is recomputed as
// -cos(2x)/(sin(x) ∓ cos(x)).

const (
	invSqrtPi = 5.64189583547756279280e-01 // 0x3FE20DD750429B6D
	tpi       = 6.36619772367581382433e-01 // 0x3FE45F306DC9C883
)

func j0Common(ix uint32, x float64, y0 bool) float64 {
	s := Sin(x)
	c := Cos(x)
	if y0 {
		c = -c
	}
	cc := s + c
	// avoid overflow in 2*x, big ulp error when x >= 0x1p1023
	if ix < 0x7fe00000 {
		ss := s - c
		z := -Cos(2 * x)
		if s*c < 0 {
			cc = z / ss
		} else {
			ss = z / cc
		}
		if ix < 0x48000000 {
			if y0 {
				ss = -ss
			}
			cc = float64(pzero(x)*cc) - float64(qzero(x)*ss)
		}
	}
	return invSqrtPi * cc / Sqrt(x)
}

var j0R = [...]float64{
	1.56249999999999947958e-02,  // 0x3F8FFFFFFFFFFFFD
	-1.89979294238854721751e-04, // 0xBF28E6A5B61AC6E9
	1.82954049532700665670e-06,  // 0x3EBEB1D10C503919
	-4.61832688532103189199e-09, // 0xBE33D5E773D63FCE
}

var j0S = [...]float64{
	1.56191029464890010492e-02, // 0x3F8FFCE882C8C2A4
	1.16926784663337450260e-04, // 0x3F1EA6D2DD57DBF4
	5.13546550207318111446e-07, // 0x3EA13B54CE84D5A9
	1.16614003333790000205e-09, // 0x3E1408BCF4745D8F
}

var y0U = [...]float64{
	-7.38042951086872317523e-02, // 0xBFB2E4D699CBD01F
	1.76666452509181115538e-01,  // 0x3FC69D019DE9E3FC
	-1.38185671945596898896e-02, // 0xBF8C4CE8B16CFA97
	3.47453432093683650238e-04,  // 0x3F36C54D20B29B6B
	-3.81407053724364161125e-06, // 0xBECFFEA773D25CAD
	1.95590137035022920206e-08,  // 0x3E5500573B4EABD4
	-3.98205194132103398453e-11, // 0xBDC5E43D693FB3C8
}

var y0V = [...]float64{
	1.27304834834123699328e-02, // 0x3F8A127091C9C71A
	7.60068627350353253702e-05, // 0x3F13ECBBF578C6C1
	2.59150851840457805467e-07, // 0x3E91642D7FF202FD
	4.41110311332675467403e-10, // 0x3DFE50183BD6D9EF
}

// J0 returns the order-zero Bessel function of the first kind.
//
// Special cases are:
//
//	J0(±Inf) = 0
//	J0(0) = 1
//	J0(NaN) = NaN
func J0(x float64) float64 {
	ix := highWord(x) & 0x7fffffff
	// j0(±inf)=0, j0(nan)=nan
	if ix >= 0x7ff00000 {
		return 1 / (x * x)
	}
	x = Fabs(x)

	if ix >= 0x40000000 {
		// |x| >= 2, large ulp error near zeros: 2.4, 5.52, 8.6537,..
		return j0Common(ix, x, false)
	}

	// 1 - x*x/4 + x*x*R(x^2)/S(x^2)
	if ix >= 0x3f200000 {
		// |x| >= 2^-13, up to 4ulp error close to 2
		z := x * x
		r := z * (j0R[0] + float64(z*(j0R[1]+float64(z*(j0R[2]+float64(z*j0R[3]))))))
		s := 1 + float64(z*(j0S[0]+float64(z*(j0S[1]+float64(z*(j0S[2]+float64(z*j0S[3])))))))
		return float64((1+x/2)*(1-x/2)) + float64(z*(r/s))
	}

	// 1 - x*x/4, prevent underflow
	if ix >= 0x38000000 {
		// |x| >= 2^-127
		x = float64(0.25 * x * x)
	}
	return 1 - x
}

// Y0 returns the order-zero Bessel function of the second kind.
//
// Special cases are:
//
//	Y0(+Inf) = 0
//	Y0(±0) = -Inf
//	Y0(x < 0) = NaN
//	Y0(NaN) = NaN
func Y0(x float64) float64 {
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
		// x >= 2, large ulp errors near zeros: 3.958, 7.086,..
		return j0Common(ix, x, true)
	}

	// U(x^2)/V(x^2) + (2/pi)*j0(x)*log(x)
	if ix >= 0x3e400000 {
		// x >= 2^-27, large ulp error near the first zero, x ~= 0.89
		z := x * x
		u := y0U[0] + float64(z*(y0U[1]+float64(z*(y0U[2]+float64(z*(y0U[3]+float64(z*(y0U[4]+float64(z*(y0U[5]+float64(z*y0U[6])))))))))))
		v := 1 + float64(z*(y0V[0]+float64(z*(y0V[1]+float64(z*(y0V[2]+float64(z*y0V[3])))))))
		return u/v + float64(tpi*(J0(x)*Log(x)))
	}
	return y0U[0] + float64(tpi*Log(x))
}

// The asymptotic expansion of pzero is
//
//	1 - 9/128 s^2 + 11025/98304 s^4 - ..., where s = 1/x.
//
// For x >= 2 it is approximated by pzero(x) = 1 + R/S on four bands of x,
// with R = pR0 + pR1*s^2 + ... + pR5*s^10 and S = 1 + pS0*s^2 + ... + pS4*s^10.

// for x in [inf, 8]=1/[0,0.125]
var p0R8 = [6]float64{
	0.00000000000000000000e+00,  // 0x0000000000000000
	-7.03124999999900357484e-02, // 0xBFB1FFFFFFFFFD32
	-8.08167041275349795626e+00, // 0xC02029D0B44FA779
	-2.57063105679704847262e+02, // 0xC07011027B19E863
	-2.48521641009428822144e+03, // 0xC0A36A6ECD4DCAFC
	-5.25304380490729545272e+03, // 0xC0B4850B36CC643D
}

var p0S8 = [5]float64{
	1.16534364619668181717e+02, // 0x405D223307A96751
	3.83374475364121826715e+03, // 0x40ADF37D50596938
	4.05978572648472545552e+04, // 0x40E3D2BB6EB6B05F
	1.16752972564375915681e+05, // 0x40FC810F8F9FA9BD
	4.76277284146730962675e+04, // 0x40E741774F2C49DC
}

// for x in [8,4.5454]=1/[0.125,0.22001]
var p0R5 = [6]float64{
	-1.14125464691894502584e-11, // 0xBDA918B147E495CC
	-7.03124940873599280078e-02, // 0xBFB1FFFFE69AFBC6
	-4.15961064470587782438e+00, // 0xC010A370F90C6BBF
	-6.76747652265167261021e+01, // 0xC050EB2F5A7D1783
	-3.31231299649172967747e+02, // 0xC074B3B36742CC63
	-3.46433388365604912451e+02, // 0xC075A6EF28A38BD7
}

var p0S5 = [5]float64{
	6.07539382692300335975e+01, // 0x404E60810C98C5DE
	1.05125230595704579173e+03, // 0x40906D025C7E2864
	5.97897094333855784498e+03, // 0x40B75AF88FBE1D60
	9.62544514357774460223e+03, // 0x40C2CCB8FA76FA38
	2.40605815922939109441e+03, // 0x40A2CC1DC70BE864
}

// for x in [4.547,2.8571]=1/[0.2199,0.35001]
var p0R3 = [6]float64{
	-2.54704601771951915620e-09, // 0xBE25E1036FE1AA86
	-7.03119616381481654654e-02, // 0xBFB1FFF6F7C0E24B
	-2.40903221549529611423e+00, // 0xC00345B2AEA48074
	-2.19659774734883086467e+01, // 0xC035F74A4CB94E14
	-5.80791704701737572236e+01, // 0xC04D0A22420A1A45
	-3.14479470594888503854e+01, // 0xC03F72ACA892D80F
}

var p0S3 = [5]float64{
	3.58560338055209726349e+01, // 0x4041ED9284077DD3
	3.61513983050303863820e+02, // 0x40769839464A7C0E
	1.19360783792111533330e+03, // 0x4092A66E6D1061D6
	1.12799679856907414432e+03, // 0x40919FFCB8C39B7E
	1.73580930813335754692e+02, // 0x4065B296FC379081
}

// for x in [2.8570,2]=1/[0.3499,0.5]
var p0R2 = [6]float64{
	-8.87534333032526411254e-08, // 0xBE77D316E927026D
	-7.03030995483624743247e-02, // 0xBFB1FF62495E1E42
	-1.45073846780952986357e+00, // 0xBFF736398A24A843
	-7.63569613823527770791e+00, // 0xC01E8AF3EDAFA7F3
	-1.11931668860356747786e+01, // 0xC02662E6C5246303
	-3.23364579351335335033e+00, // 0xC009DE81AF8FE70F
}

var p0S2 = [5]float64{
	2.22202997532088808441e+01, // 0x40363865908B5959
	1.36206794218215208048e+02, // 0x4061069E0EE8878F
	2.70470278658083486789e+02, // 0x4070E78642EA079B
	1.53875394208320329881e+02, // 0x40633C033AB6FAFF
	1.46576176948256193810e+01, // 0x402D50B344391809
}

func pzero(x float64) float64 {
	var p *[6]float64
	var q *[5]float64
	ix := highWord(x) & 0x7fffffff
	switch {
	case ix >= 0x40200000:
		p, q = &p0R8, &p0S8
	case ix >= 0x40122e8b:
		p, q = &p0R5, &p0S5
	case ix >= 0x4006db6d:
		p, q = &p0R3, &p0S3
	default:
		// ix >= 0x40000000
		p, q = &p0R2, &p0S2
	}
	z := 1 / (x * x)
	r := p[0] + float64(z*(p[1]+float64(z*(p[2]+float64(z*(p[3]+float64(z*(p[4]+float64(z*p[5])))))))))
	s := 1 + float64(z*(q[0]+float64(z*(q[1]+float64(z*(q[2]+float64(z*(q[3]+float64(z*q[4])))))))))
	return 1 + r/s
}

// qzero(x) = (-0.125 + R/S)/x, the asymptotic expansion being
//
//	(-1/8 + 75/1024 s^2 - 59535/262144 s^4 + ...)/x
//
// with R and S rational in s^2 as for pzero (S has one more term).

var q0R8 = [6]float64{
	0.00000000000000000000e+00, // 0x0000000000000000
	7.32421874999935051953e-02, // 0x3FB2BFFFFFFFFE2C
	1.17682064682252693899e+01, // 0x402789525BB334D6
	5.57673380256401856059e+02, // 0x40816D6315301825
	8.85919720756468632317e+03, // 0x40C14D993E18F46D
	3.70146267776887834771e+04, // 0x40E212D40E901566
}

var q0S8 = [6]float64{
	1.63776026895689824414e+02,  // 0x406478D5365B39BC
	8.09834494656449805916e+03,  // 0x40BFA2584E6B0563
	1.42538291419120476348e+05,  // 0x4101665254D38C3F
	8.03309257119514397345e+05,  // 0x412883DA83A52B43
	8.40501579819060512818e+05,  // 0x4129A66B28DE0B3D
	-3.43899293537866615225e+05, // 0xC114FD6D2C9530C5
}

var q0R5 = [6]float64{
	1.84085963594515531381e-11, // 0x3DB43D8F29CC8CD9
	7.32421766612684765896e-02, // 0x3FB2BFFFD172B04C
	5.83563508962056953777e+00, // 0x401757B0B9953DD3
	1.35111577286449829671e+02, // 0x4060E3920A8788E9
	1.02724376596164097464e+03, // 0x40900CF99DC8C481
	1.98997785864605384631e+03, // 0x409F17E953C6E3A6
}

var q0S5 = [6]float64{
	8.27766102236537761883e+01,  // 0x4054B1B3FB5E1543
	2.07781416421392987104e+03,  // 0x40A03BA0DA21C0CE
	1.88472887785718085070e+04,  // 0x40D267D27B591E6D
	5.67511122894947329769e+04,  // 0x40EBB5E397E02372
	3.59767538425114471465e+04,  // 0x40E191181F7A54A0
	-5.35434275601944773371e+03, // 0xC0B4EA57BEDBC609
}

var q0R3 = [6]float64{
	4.37741014089738620906e-09, // 0x3E32CD036ADECB82
	7.32411180042911447163e-02, // 0x3FB2BFEE0E8D0842
	3.34423137516170720929e+00, // 0x400AC0FC61149CF5
	4.26218440745412650017e+01, // 0x40454F98962DAEDD
	1.70808091340565596283e+02, // 0x406559DBE25EFD1F
	1.66733948696651168575e+02, // 0x4064D77C81FA21E0
}

var q0S3 = [6]float64{
	4.87588729724587182091e+01,  // 0x40486122BFE343A6
	7.09689221056606015736e+02,  // 0x40862D8386544EB3
	3.70414822620111362994e+03,  // 0x40ACF04BE44DFC63
	6.46042516752568917582e+03,  // 0x40B93C6CD7C76A28
	2.51633368920368957333e+03,  // 0x40A3A8AAD94FB1C0
	-1.49247451836156386662e+02, // 0xC062A7EB201CF40F
}

var q0R2 = [6]float64{
	1.50444444886983272379e-07, // 0x3E84313B54F76BDB
	7.32234265963079278272e-02, // 0x3FB2BEC53E883E34
	1.99819174093815998816e+00, // 0x3FFFF897E727779C
	1.44956029347885735348e+01, // 0x402CFDBFAAF96FE5
	3.16662317504781540833e+01, // 0x403FAA8E29FBDC4A
	1.62527075710929267416e+01, // 0x403040B171814BB4
}

var q0S2 = [6]float64{
	3.03655848355219184498e+01,  // 0x403E5D96F7C07AED
	2.69348118608049844624e+02,  // 0x4070D591E4D14B40
	8.44783757595320139444e+02,  // 0x408A664522B3BF22
	8.82935845112488550512e+02,  // 0x408B977C9C5CC214
	2.12666388511798828631e+02,  // 0x406A95530E001365
	-5.31095493882666946917e+00, // 0xC0153E6AF8B32931
}

func qzero(x float64) float64 {
	var p, q *[6]float64
	ix := highWord(x) & 0x7fffffff
	switch {
	case ix >= 0x40200000:
		p, q = &q0R8, &q0S8
	case ix >= 0x40122e8b:
		p, q = &q0R5, &q0S5
	case ix >= 0x4006db6d:
		p, q = &q0R3, &q0S3
	default:
		p, q = &q0R2, &q0S2
	}
	z := 1 / (x * x)
	r := p[0] + float64(z*(p[1]+float64(z*(p[2]+float64(z*(p[3]+float64(z*(p[4]+float64(z*p[5])))))))))
	s := 1 + float64(z*(q[0]+float64(z*(q[1]+float64(z*(q[2]+float64(z*(q[3]+float64(z*(q[4]+float64(z*q[5])))))))))))
	return (-0.125 + r/s) / x
}

const (
	invSqrtPif float32 = 5.6418961287e-01 // 0x3f106ebb
	tpif       float32 = 6.3661974669e-01 // 0x3f22f983
)

// j0Commonf carries the phase combination in float64.
func j0Commonf(ix uint32, x float32, y0 bool) float32 {
	s := float64(Sinf(x))
	c := float64(Cosf(x))
	if y0 {
		c = -c
	}
	cc := s + c
	if ix < 0x7f000000 {
		ss := s - c
		z := float64(-Cosf(2 * x))
		if s*c < 0 {
			cc = z / ss
		} else {
			ss = z / cc
		}
		if ix < 0x58800000 {
			if y0 {
				ss = -ss
			}
			cc = float64(float64(pzerof(x))*cc) - float64(float64(qzerof(x))*ss)
		}
	}
	return float32(float64(invSqrtPif) * cc / float64(Sqrtf(x)))
}

var j0Rf = [...]float32{
	1.5625000000e-02,  // 0x3c800000
	-1.8997929874e-04, // 0xb947352e
	1.8295404516e-06,  // 0x35f58e88
	-4.6183270541e-09, // 0xb19eaf3c
}

var j0Sf = [...]float32{
	1.5619102865e-02, // 0x3c7fe744
	1.1692678527e-04, // 0x38f53697
	5.1354652442e-07, // 0x3509daa6
	1.1661400734e-09, // 0x30a045e8
}

var y0Uf = [...]float32{
	-7.3804296553e-02, // 0xbd9726b5
	1.7666645348e-01,  // 0x3e34e80d
	-1.3818567619e-02, // 0xbc626746
	3.4745343146e-04,  // 0x39b62a69
	-3.8140706238e-06, // 0xb67ff53c
	1.9559013964e-08,  // 0x32a802ba
	-3.9820518410e-11, // 0xae2f21eb
}

var y0Vf = [...]float32{
	1.2730483897e-02, // 0x3c509385
	7.6006865129e-05, // 0x389f65e0
	2.5915085189e-07, // 0x348b216c
	4.4111031494e-10, // 0x2ff280c2
}

// J0f is the float32 version of J0.
func J0f(x float32) float32 {
	ix := math.Float32bits(x) & 0x7fffffff
	if ix >= 0x7f800000 {
		return 1 / (x * x)
	}
	x = Fabsf(x)

	if ix >= 0x40000000 {
		// |x| >= 2
		return j0Commonf(ix, x, false)
	}
	if ix >= 0x3a000000 {
		// |x| >= 2^-11
		z := x * x
		r := z * (j0Rf[0] + float32(z*(j0Rf[1]+float32(z*(j0Rf[2]+float32(z*j0Rf[3]))))))
		s := 1 + float32(z*(j0Sf[0]+float32(z*(j0Sf[1]+float32(z*(j0Sf[2]+float32(z*j0Sf[3])))))))
		return float32((1+x/2)*(1-x/2)) + float32(z*(r/s))
	}
	if ix >= 0x21800000 {
		// |x| >= 2^-60
		x = float32(0.25 * x * x)
	}
	return 1 - x
}

// Y0f is the float32 version of Y0.
func Y0f(x float32) float32 {
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
		// x >= 2.0
		return j0Commonf(ix, x, true)
	}
	if ix >= 0x39000000 {
		// x >= 2^-13
		z := x * x
		u := y0Uf[0] + float32(z*(y0Uf[1]+float32(z*(y0Uf[2]+float32(z*(y0Uf[3]+float32(z*(y0Uf[4]+float32(z*(y0Uf[5]+float32(z*y0Uf[6])))))))))))
		v := 1 + float32(z*(y0Vf[0]+float32(z*(y0Vf[1]+float32(z*(y0Vf[2]+float32(z*y0Vf[3])))))))
		return u/v + float32(tpif*(J0f(x)*Logf(x)))
	}
	return y0Uf[0] + float32(tpif*Logf(x))
}

var p0R8f = [6]float32{
	0.0000000000e+00,  // 0x00000000
	-7.0312500000e-02, // 0xbd900000
	-8.0816707611e+00, // 0xc1014e86
	-2.5706311035e+02, // 0xc3808814
	-2.4852163086e+03, // 0xc51b5376
	-5.2530439453e+03, // 0xc5a4285a
}

var p0S8f = [5]float32{
	1.1653436279e+02, // 0x42e91198
	3.8337448730e+03, // 0x456f9beb
	4.0597855469e+04, // 0x471e95db
	1.1675296875e+05, // 0x47e4087c
	4.7627726562e+04, // 0x473a0bba
}

var p0R5f = [6]float32{
	-1.1412546255e-11, // 0xad48c58a
	-7.0312492549e-02, // 0xbd8fffff
	-4.1596107483e+00, // 0xc0851b88
	-6.7674766541e+01, // 0xc287597b
	-3.3123129272e+02, // 0xc3a59d9b
	-3.4643338013e+02, // 0xc3ad3779
}

var p0S5f = [5]float32{
	6.0753936768e+01, // 0x42730408
	1.0512523193e+03, // 0x44836813
	5.9789707031e+03, // 0x45bad7c4
	9.6254453125e+03, // 0x461665c8
	2.4060581055e+03, // 0x451660ee
}

var p0R3f = [6]float32{
	-2.5470459075e-09, // 0xb12f081b
	-7.0311963558e-02, // 0xbd8fffb8
	-2.4090321064e+00, // 0xc01a2d95
	-2.1965976715e+01, // 0xc1afba52
	-5.8079170227e+01, // 0xc2685112
	-3.1447946548e+01, // 0xc1fb9565
}

var p0S3f = [5]float32{
	3.5856033325e+01, // 0x420f6c94
	3.6151397705e+02, // 0x43b4c1ca
	1.1936077881e+03, // 0x44953373
	1.1279968262e+03, // 0x448cffe6
	1.7358093262e+02, // 0x432d94b8
}

var p0R2f = [6]float32{
	-8.8753431271e-08, // 0xb3be98b7
	-7.0303097367e-02, // 0xbd8ffb12
	-1.4507384300e+00, // 0xbfb9b1cc
	-7.6356959343e+00, // 0xc0f4579f
	-1.1193166733e+01, // 0xc1331736
	-3.2336456776e+00, // 0xc04ef40d
}

var p0S2f = [5]float32{
	2.2220300674e+01, // 0x41b1c32d
	1.3620678711e+02, // 0x430834f0
	2.7047027588e+02, // 0x43873c32
	1.5387539673e+02, // 0x4319e01a
	1.4657617569e+01, // 0x416a859a
}

func pzerof(x float32) float32 {
	var p *[6]float32
	var q *[5]float32
	ix := math.Float32bits(x) & 0x7fffffff
	switch {
	case ix >= 0x41000000:
		p, q = &p0R8f, &p0S8f
	case ix >= 0x409173eb:
		p, q = &p0R5f, &p0S5f
	case ix >= 0x4036d917:
		p, q = &p0R3f, &p0S3f
	default:
		p, q = &p0R2f, &p0S2f
	}
	z := 1 / (x * x)
	r := p[0] + float32(z*(p[1]+float32(z*(p[2]+float32(z*(p[3]+float32(z*(p[4]+float32(z*p[5])))))))))
	s := 1 + float32(z*(q[0]+float32(z*(q[1]+float32(z*(q[2]+float32(z*(q[3]+float32(z*q[4])))))))))
	return 1 + r/s
}

var q0R8f = [6]float32{
	0.0000000000e+00, // 0x00000000
	7.3242187500e-02, // 0x3d960000
	1.1768206596e+01, // 0x413c4a93
	5.5767340088e+02, // 0x440b6b19
	8.8591972656e+03, // 0x460a6cca
	3.7014625000e+04, // 0x471096a0
}

var q0S8f = [6]float32{
	1.6377603149e+02,  // 0x4323c6aa
	8.0983447266e+03,  // 0x45fd12c2
	1.4253829688e+05,  // 0x480b3293
	8.0330925000e+05,  // 0x49441ed4
	8.4050156250e+05,  // 0x494d3359
	-3.4389928125e+05, // 0xc8a7eb69
}

var q0R5f = [6]float32{
	1.8408595828e-11, // 0x2da1ec79
	7.3242180049e-02, // 0x3d95ffff
	5.8356351852e+00, // 0x40babd86
	1.3511157227e+02, // 0x43071c90
	1.0272437744e+03, // 0x448067cd
	1.9899779053e+03, // 0x44f8bf4b
}

var q0S5f = [6]float32{
	8.2776611328e+01,  // 0x42a58da0
	2.0778142090e+03,  // 0x4501dd07
	1.8847289062e+04,  // 0x46933e94
	5.6751113281e+04,  // 0x475daf1d
	3.5976753906e+04,  // 0x470c88c1
	-5.3543427734e+03, // 0xc5a752be
}

var q0R3f = [6]float32{
	4.3774099900e-09, // 0x3196681b
	7.3241114616e-02, // 0x3d95ff70
	3.3442313671e+00, // 0x405607e3
	4.2621845245e+01, // 0x422a7cc5
	1.7080809021e+02, // 0x432acedf
	1.6673394775e+02, // 0x4326bbe4
}

var q0S3f = [6]float32{
	4.8758872986e+01,  // 0x42430916
	7.0968920898e+02,  // 0x44316c1c
	3.7041481934e+03,  // 0x4567825f
	6.4604252930e+03,  // 0x45c9e367
	2.5163337402e+03,  // 0x451d4557
	-1.4924745178e+02, // 0xc3153f59
}

var q0R2f = [6]float32{
	1.5044444979e-07, // 0x342189db
	7.3223426938e-02, // 0x3d95f62a
	1.9981917143e+00, // 0x3fffc4bf
	1.4495602608e+01, // 0x4167edfd
	3.1666231155e+01, // 0x41fd5471
	1.6252708435e+01, // 0x4182058c
}

var q0S2f = [6]float32{
	3.0365585327e+01,  // 0x41f2ecb8
	2.6934811401e+02,  // 0x4386ac8f
	8.4478375244e+02,  // 0x44533229
	8.8293585205e+02,  // 0x445cbbe5
	2.1266638184e+02,  // 0x4354aa98
	-5.3109550476e+00, // 0xc0a9f358
}

func qzerof(x float32) float32 {
	var p, q *[6]float32
	ix := math.Float32bits(x) & 0x7fffffff
	switch {
	case ix >= 0x41000000:
		p, q = &q0R8f, &q0S8f
	case ix >= 0x409173eb:
		p, q = &q0R5f, &q0S5f
	case ix >= 0x4036d917:
		p, q = &q0R3f, &q0S3f
	default:
		p, q = &q0R2f, &q0S2f
	}
	z := 1 / (x * x)
	r := p[0] + float32(z*(p[1]+float32(z*(p[2]+float32(z*(p[3]+float32(z*(p[4]+float32(z*p[5])))))))))
	s := 1 + float32(z*(q[0]+float32(z*(q[1]+float32(z*(q[2]+float32(z*(q[3]+float32(z*(q[4]+float32(z*q[5])))))))))))
	return (-0.125 + r/s) / x
}
