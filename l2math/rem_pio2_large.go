// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

// Payne-Hanek reduction of a large argument modulo pi/2.
//
// The input x is given as nx terms x[0..nx-1] of 24 bits each, with
// x = sum x[i]*2**(e0-24*i), e0 = ilogb(x)-23. The routine multiplies x by
// only as many 24-bit chunks of 2/pi as the exponent requires, keeping the
// integer part mod 8 and returning the fraction (times pi/2) in y as
// prec-dependent precision: 0 for float32 results (24 bits), 1 for float64
// (53 bits, y[0]+y[1]), 2 for 64-bit extended, 3 for 113-bit quad.

// initJK is the number of terms of ipio2 used, by precision.
var initJK = [2]int{3, 4}

// ipio2 holds the bits of 2/pi in 24-bit chunks, enough for any float64
// exponent.
var ipio2 = [66]int32{
	0xA2F983, 0x6E4E44, 0x1529FC, 0x2757D1, 0xF534DD, 0xC0DB62,
	0x95993C, 0x439041, 0xFE5163, 0xABDEBB, 0xC561B7, 0x246E3A,
	0x424DD2, 0xE00649, 0x2EEA09, 0xD1921C, 0xFE1DEB, 0x1CB129,
	0xA73EE8, 0x8235F5, 0x2EBB44, 0x84E99C, 0x7026B4, 0x5F7E41,
	0x3991D6, 0x398353, 0x39F49C, 0x845F8B, 0xBDF928, 0x3B1FF8,
	0x97FFDE, 0x05980F, 0xEF2F11, 0x8B5A0A, 0x6D1F6D, 0x367ECF,
	0x27CB09, 0xB74F46, 0x3F669E, 0x5FEA2D, 0x7527BA, 0xC7EBE5,
	0xF17B3D, 0x0739F7, 0x8A5292, 0xEA6BFB, 0x5FB11F, 0x8D5D08,
	0x560330, 0x46FC7B, 0x6BABF0, 0xCFBC20, 0x9AF436, 0x1DA9E3,
	0x91615E, 0xE61B08, 0x659985, 0x5F14A0, 0x68408D, 0xFFD880,
	0x4D7327, 0x310606, 0x1556CA, 0x73A8C9, 0x60E27B, 0xC08C6B,
}

// pio2Chunks is pi/2 split into float64 values of 24 bits each.
var pio2Chunks = [8]float64{
	1.57079625129699707031e+00, // 0x3FF921FB, 0x40000000
	7.54978941586159635335e-08, // 0x3E74442D, 0x00000000
	5.39030252995776476554e-15, // 0x3CF84698, 0x80000000
	3.28200341580791294123e-22, // 0x3B78CC51, 0x60000000
	1.27065575308067607349e-29, // 0x39F01B83, 0x80000000
	1.22933308981111328932e-36, // 0x387A2520, 0x40000000
	2.73370053816464559624e-44, // 0x36E38222, 0x80000000
	2.16741683877804819444e-51, // 0x3569F31D, 0x00000000
}

// remPio2Large returns the last three bits of N where x - N*pi/2 = y and
// writes y to ys. All scratch arrays are fixed size; the recompute loop
// only extends jz while the chunks of the product are zero, which the
// density of 2/pi bounds to a few iterations.
func remPio2Large(x []float64, ys *[2]float64, e0 int, prec int) int32 {
	var (
		iq [20]int32
		f  [20]float64
		fq [20]float64
		q  [20]float64
	)
	nx := len(x)
	jk := initJK[prec]
	jp := jk

	// determine jx,jv,q0, note that 3>q0
	jx := nx - 1
	jv := (e0 - 3) / 24
	if jv < 0 {
		jv = 0
	}
	q0 := e0 - 24*(jv+1)

	// set up f[0] to f[jx+jk] where f[jx+jk] = ipio2[jv+jk]
	j := jv - jx
	m := jx + jk
	for i := 0; i <= m; i, j = i+1, j+1 {
		if j >= 0 {
			f[i] = float64(ipio2[j])
		}
	}

	// compute q[0],q[1],...q[jk]
	for i := 0; i <= jk; i++ {
		fw := 0.0
		for j := 0; j <= jx; j++ {
			fw += float64(x[j] * f[jx+i-j])
		}
		q[i] = fw
	}

	jz := jk
	var (
		z     float64
		n     int32
		ih    int32
		carry int32
	)
	for {
		// distill q[] into iq[] reversingly
		z = q[jz]
		for i, j := 0, jz; j > 0; i, j = i+1, j-1 {
			fw := float64(int32(0x1p-24 * z))
			iq[i] = int32(z - float64(0x1p24*fw))
			z = q[j-1] + fw
		}

		// compute n
		z = Scalbn(z, int32(q0))         // actual value of z
		z -= float64(8 * Floor(z*0.125)) // trim off integer >= 8
		n = int32(z)
		z -= float64(n)
		ih = 0
		if q0 > 0 { // need iq[jz-1] to determine n
			i := iq[jz-1] >> (24 - q0)
			n += i
			iq[jz-1] -= i << (24 - q0)
			ih = iq[jz-1] >> (23 - q0)
		} else if q0 == 0 {
			ih = iq[jz-1] >> 23
		} else if z >= 0.5 {
			ih = 2
		}

		if ih > 0 { // q > 0.5
			n++
			carry = 0
			for i := 0; i < jz; i++ { // compute 1-q
				j := iq[i]
				if carry == 0 {
					if j != 0 {
						carry = 1
						iq[i] = 0x1000000 - j
					}
				} else {
					iq[i] = 0xffffff - j
				}
			}
			if q0 > 0 { // rare case: chance is 1 in 12
				switch q0 {
				case 1:
					iq[jz-1] &= 0x7fffff
				case 2:
					iq[jz-1] &= 0x3fffff
				}
			}
			if ih == 2 {
				z = 1 - z
				if carry != 0 {
					z -= Scalbn(1, int32(q0))
				}
			}
		}

		// check if recomputation is needed
		if z != 0 {
			break
		}
		j := int32(0)
		for i := jz - 1; i >= jk; i-- {
			j |= iq[i]
		}
		if j != 0 {
			break
		}

		// need recomputation; k = no. of terms needed
		k := 1
		for iq[jk-k] == 0 {
			k++
		}
		for i := jz + 1; i <= jz+k; i++ { // add q[jz+1] to q[jz+k]
			f[jx+i] = float64(ipio2[jv+i])
			fw := 0.0
			for j := 0; j <= jx; j++ {
				fw += float64(x[j] * f[jx+i-j])
			}
			q[i] = fw
		}
		jz += k
	}

	// chop off zero terms
	if z == 0 {
		jz--
		q0 -= 24
		for iq[jz] == 0 {
			jz--
			q0 -= 24
		}
	} else { // break z into 24-bit if necessary
		z = Scalbn(z, int32(-q0))
		if z >= 0x1p24 {
			fw := float64(int32(0x1p-24 * z))
			iq[jz] = int32(z - float64(0x1p24*fw))
			jz++
			q0 += 24
			iq[jz] = int32(fw)
		} else {
			iq[jz] = int32(z)
		}
	}

	// convert integer "bit" chunk to floating-point value
	fw := Scalbn(1, int32(q0))
	for i := jz; i >= 0; i-- {
		q[i] = fw * float64(iq[i])
		fw *= 0x1p-24
	}

	// compute pio2Chunks[0,...,jp]*q[jz,...,0]
	for i := jz; i >= 0; i-- {
		fw := 0.0
		for k := 0; k <= jp && k <= jz-i; k++ {
			fw += float64(pio2Chunks[k] * q[i+k])
		}
		fq[jz-i] = fw
	}

	// compress fq[] into y[]
	switch prec {
	case 0:
		fw := 0.0
		for i := jz; i >= 0; i-- {
			fw += fq[i]
		}
		if ih != 0 {
			fw = -fw
		}
		ys[0] = fw
	default:
		fw := 0.0
		for i := jz; i >= 0; i-- {
			fw += fq[i]
		}
		if ih == 0 {
			ys[0] = fw
		} else {
			ys[0] = -fw
		}
		fw = fq[0] - fw
		for i := 1; i <= jz; i++ {
			fw += fq[i]
		}
		if ih == 0 {
			ys[1] = fw
		} else {
			ys[1] = -fw
		}
	}
	return n & 7
}
