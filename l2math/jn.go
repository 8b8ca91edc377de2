// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// Jn returns the order-n Bessel function of the first kind.
//
// Jn(-n, x) = Jn(n, -x) = (-1)^n * Jn(n, x). For n >= 2 the forward
// recurrence J(n+1,x) = 2n/x*J(n,x) - J(n-1,x) is used when n < x, and
// backward recurrence with a continued fraction for J(n,x)/J(n-1,x)
// otherwise.
//
// Special cases are:
//
//	Jn(n, ±Inf) = 0
//	Jn(n, NaN) = NaN
func Jn(n int32, x float64) float64 {
	ix, lx := highWord(x), lowWord(x)
	sign := ix>>31 != 0
	ix &= 0x7fffffff

	if isNaN64(x) {
		return x
	}

	// nm1 = |n|-1 is used instead of |n| to handle n == MinInt32
	if n == 0 {
		return J0(x)
	}
	var nm1 int32
	if n < 0 {
		nm1 = -(n + 1)
		x = -x
		sign = !sign
	} else {
		nm1 = n - 1
	}
	if nm1 == 0 {
		return J1(x)
	}

	// even n: positive, odd n: sign of x
	sign = sign && n&1 != 0
	x = Fabs(x)
	var a, b float64
	switch {
	case ix|lx == 0 || ix == 0x7ff00000:
		// x is 0 or inf
		b = 0
	case float64(nm1) < x:
		// safe to use J(n+1,x) = 2n/x*J(n,x) - J(n-1,x)
		if ix >= 0x52d00000 {
			// x > 2^302, use the leading asymptotic term
			//
			//	Jn(x) = cos(x-(2n+1)*pi/4)*sqrt(2/x*pi)
			//
			// with s = sin(x), c = cos(x):
			//
			//	n	sin(xn)*sqt2	cos(xn)*sqt2
			//	0	 s-c		 c+s
			//	1	-s-c		-c+s
			//	2	-s+c		-c-s
			//	3	 s+c		 c-s
			var temp float64
			switch nm1 & 3 {
			case 0:
				temp = -Cos(x) + Sin(x)
			case 1:
				temp = -Cos(x) - Sin(x)
			case 2:
				temp = Cos(x) - Sin(x)
			default:
				temp = Cos(x) + Sin(x)
			}
			b = invSqrtPi * temp / Sqrt(x)
		} else {
			a = J0(x)
			b = J1(x)
			for i := int32(0); i < nm1; {
				i++
				temp := b
				// avoid underflow
				b = float64(b*(2*float64(i)/x)) - a
				a = temp
			}
		}
	case ix < 0x3e100000:
		// x < 2^-29, first Taylor term: J(n,x) = 1/n!*(x/2)^n
		if nm1 > 32 {
			// underflow
			b = 0
		} else {
			temp := x * 0.5
			b = temp
			a = 1
			for i := int32(2); i <= nm1+1; i++ {
				a *= float64(i) // a = n!
				b *= temp       // b = (x/2)^n
			}
			b = b / a
		}
	default:
		b = jnBackward(nm1, x, 1e9, 7.09782712893383973096e+02, 0x1p500)
	}
	if sign {
		return -b
	}
	return b
}

// jnBackward computes J(nm1+1, x) by backward recurrence. The ratio
// J(n,x)/J(n-1,x) is the continued fraction
//
//	x/(2n - x^2/(2(n+1) - x^2/(2(n+2) - ...)))
//
// truncated at k terms, where k is found from the convergents q0, q1 of
// the equivalent recurrence exceeding limit. The unnormalized sequence is
// rescaled by big when overflow is possible and finally normalized with
// J0 or J1, whichever is larger.
func jnBackward(nm1 int32, x, limit, logMax, big float64) float64 {
	nf := float64(nm1) + 1
	w := 2 * nf / x
	h := 2 / x
	z := w + h
	q0 := w
	q1 := float64(w*z) - 1
	k := int32(1)
	for q1 < limit {
		k++
		z += h
		tmp := float64(z*q1) - q0
		q0 = q1
		q1 = tmp
	}
	t := 0.0
	for i := k; i >= 0; i-- {
		t = 1 / (2*(float64(i)+nf)/x - t)
	}
	a := t
	b := 1.0
	// estimate log((2/x)^n*n!) = n*log(2/x)+n*ln(n); if it exceeds logMax
	// the recurrence may overflow and the result likely underflows.
	tmp := nf * Log(Fabs(w))
	if tmp < logMax {
		for i := nm1; i > 0; i-- {
			temp := b
			b = b*(2*float64(i))/x - a
			a = temp
		}
	} else {
		for i := nm1; i > 0; i-- {
			temp := b
			b = b*(2*float64(i))/x - a
			a = temp
			// scale b to avoid spurious overflow
			if b > big {
				a /= b
				t /= b
				b = 1
			}
		}
	}
	z = J0(x)
	w = J1(x)
	if Fabs(z) >= Fabs(w) {
		return t * z / b
	}
	return t * w / a
}

// Yn returns the order-n Bessel function of the second kind.
//
// Special cases are:
//
//	Yn(n, +Inf) = 0
//	Yn(n ≥ 0, 0) = -Inf
//	Yn(n < 0, 0) = +Inf if n is odd, -Inf if n is even
//	Yn(n, x < 0) = NaN
//	Yn(n, NaN) = NaN
func Yn(n int32, x float64) float64 {
	ix, lx := highWord(x), lowWord(x)
	sign := ix>>31 != 0
	ix &= 0x7fffffff

	if isNaN64(x) {
		return x
	}
	if sign && ix|lx != 0 {
		// x < 0
		return (x - x) / (x - x)
	}
	if ix == 0x7ff00000 {
		return 0
	}

	if n == 0 {
		return Y0(x)
	}
	var nm1 int32
	if n < 0 {
		nm1 = -(n + 1)
		sign = n&1 != 0
	} else {
		nm1 = n - 1
		sign = false
	}
	if nm1 == 0 {
		if sign {
			return -Y1(x)
		}
		return Y1(x)
	}

	var b float64
	if ix >= 0x52d00000 {
		// x > 2^302
		var temp float64
		switch nm1 & 3 {
		case 0:
			temp = -Sin(x) - Cos(x)
		case 1:
			temp = -Sin(x) + Cos(x)
		case 2:
			temp = Sin(x) + Cos(x)
		default:
			temp = Sin(x) - Cos(x)
		}
		b = invSqrtPi * temp / Sqrt(x)
	} else {
		a := Y0(x)
		b = Y1(x)
		// quit if b is -inf
		for i := int32(0); i < nm1 && highWord(b) != 0xfff00000; {
			i++
			temp := b
			b = float64((2*float64(i)/x)*b) - a
			a = temp
		}
	}
	if sign {
		return -b
	}
	return b
}

// Jnf is the float32 version of Jn.
func Jnf(n int32, x float32) float32 {
	ix := math.Float32bits(x)
	sign := ix>>31 != 0
	ix &= 0x7fffffff
	if ix > 0x7f800000 {
		// nan
		return x
	}

	if n == 0 {
		return J0f(x)
	}
	var nm1 int32
	if n < 0 {
		nm1 = -(n + 1)
		x = -x
		sign = !sign
	} else {
		nm1 = n - 1
	}
	if nm1 == 0 {
		return J1f(x)
	}

	sign = sign && n&1 != 0
	x = Fabsf(x)
	var a, b float32
	switch {
	case ix == 0 || ix == 0x7f800000:
		b = 0
	case float32(nm1) < x:
		a = J0f(x)
		b = J1f(x)
		for i := int32(0); i < nm1; {
			i++
			temp := b
			b = float32(b*(2*float32(i)/x)) - a
			a = temp
		}
	case ix < 0x35800000:
		// x < 2^-20
		if nm1 > 8 {
			// underflow
			nm1 = 8
		}
		temp := 0.5 * x
		b = temp
		a = 1
		for i := int32(2); i <= nm1+1; i++ {
			a *= float32(i)
			b *= temp
		}
		b = b / a
	default:
		b = jnBackwardf(nm1, x)
	}
	if sign {
		return -b
	}
	return b
}

func jnBackwardf(nm1 int32, x float32) float32 {
	nf := float32(nm1) + 1
	w := 2 * nf / x
	h := 2 / x
	z := w + h
	q0 := w
	q1 := float32(w*z) - 1
	k := int32(1)
	for q1 < 1.0e4 {
		k++
		z += h
		tmp := float32(z*q1) - q0
		q0 = q1
		q1 = tmp
	}
	t := float32(0)
	for i := k; i >= 0; i-- {
		t = 1 / (2*(float32(i)+nf)/x - t)
	}
	a := t
	b := float32(1)
	tmp := nf * Logf(Fabsf(w))
	if tmp < 88.721679688 {
		for i := nm1; i > 0; i-- {
			temp := b
			b = 2*float32(i)*b/x - a
			a = temp
		}
	} else {
		for i := nm1; i > 0; i-- {
			temp := b
			b = 2*float32(i)*b/x - a
			a = temp
			if b > 0x1p60 {
				a /= b
				t /= b
				b = 1
			}
		}
	}
	z = J0f(x)
	w = J1f(x)
	if Fabsf(z) >= Fabsf(w) {
		return t * z / b
	}
	return t * w / a
}

// Ynf is the float32 version of Yn.
func Ynf(n int32, x float32) float32 {
	ix := math.Float32bits(x)
	sign := ix>>31 != 0
	ix &= 0x7fffffff
	if ix > 0x7f800000 {
		return x
	}
	if sign && ix != 0 {
		return (x - x) / (x - x)
	}
	if ix == 0x7f800000 {
		return 0
	}

	if n == 0 {
		return Y0f(x)
	}
	var nm1 int32
	if n < 0 {
		nm1 = -(n + 1)
		sign = n&1 != 0
	} else {
		nm1 = n - 1
		sign = false
	}
	if nm1 == 0 {
		if sign {
			return -Y1f(x)
		}
		return Y1f(x)
	}

	a := Y0f(x)
	b := Y1f(x)
	// quit if b is -inf
	for i := int32(0); i < nm1 && math.Float32bits(b) != 0xff800000; {
		i++
		temp := b
		b = float32((2*float32(i)/x)*b) - a
		a = temp
	}
	if sign {
		return -b
	}
	return b
}
