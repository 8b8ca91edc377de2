// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package l2math

import "math"

// ln2 to full float64 precision, added to log(x) for the large-argument
// branches of Asinh and Acosh.
const ln2 = 0.693147180559945309417232121458176568

// Sinh returns the hyperbolic sine of x.
//
// sinh(x) = (exp(x) - 1/exp(x))/2
// = (exp(x)-1 + (exp(x)-1)/exp(x))/2
// = x + x^3/6 + o(x^5)
//
// Special cases are:
//
//	Sinh(±0) = ±0
//	Sinh(±Inf) = ±Inf
//	Sinh(NaN) = NaN
func Sinh(x float64) float64 {
	h := 0.5
	if highWord(x)>>31 != 0 {
		h = -h
	}
	absx := Fabs(x)
	w := highWord(absx)

	// |x| < log(DBL_MAX)
	if w < 0x40862e42 {
		t := Expm1(absx)
		if w < 0x3ff00000 {
			if w < 0x3ff00000-(26<<20) {
				// inexact and underflow are raised by Expm1
				return x
			}
			return h * (2*t - t*t/(t+1))
		}
		return h * (t + t/(t+1))
	}

	// |x| > log(DBL_MAX) or nan
	return 2 * h * kExpo2(absx)
}

// Sinhf is the float32 version of Sinh.
func Sinhf(x float32) float32 {
	var h float32 = 0.5
	if math.Float32bits(x)>>31 != 0 {
		h = -h
	}
	absx := Fabsf(x)
	w := math.Float32bits(absx)

	// |x| < log(FLT_MAX)
	if w < 0x42b17217 {
		t := Expm1f(absx)
		if w < 0x3f800000 {
			if w < 0x3f800000-(12<<23) {
				return x
			}
			return h * (2*t - t*t/(t+1))
		}
		return h * (t + t/(t+1))
	}

	// |x| > logf(FLT_MAX) or nan
	return 2 * h * kExpo2f(absx)
}

// Cosh returns the hyperbolic cosine of x.
//
// cosh(x) = (exp(x) + 1/exp(x))/2
// = 1 + 0.5*(exp(x)-1)*(exp(x)-1)/exp(x)
// = 1 + x*x/2 + o(x^4)
//
// Special cases are:
//
//	Cosh(±0) = 1
//	Cosh(±Inf) = +Inf
//	Cosh(NaN) = NaN
func Cosh(x float64) float64 {
	x = Fabs(x)
	w := highWord(x)

	// |x| < log(2)
	if w < 0x3fe62e42 {
		if w < 0x3ff00000-(26<<20) {
			// raise inexact if x!=0
			observe64(x + 0x1p120)
			return 1
		}
		t := Expm1(x)
		return 1 + t*t/(2*(1+t))
	}

	// |x| < log(DBL_MAX)
	if w < 0x40862e42 {
		t := Exp(x)
		// if x>log(0x1p26) then the 1/t is not needed
		return 0.5 * (t + 1/t)
	}

	// |x| > log(DBL_MAX) or nan
	return kExpo2(x)
}

// Coshf is the float32 version of Cosh.
func Coshf(x float32) float32 {
	x = Fabsf(x)
	w := math.Float32bits(x)

	// |x| < log(2)
	if w < 0x3f317217 {
		if w < 0x3f800000-(12<<23) {
			observe32(x + 0x1p120)
			return 1
		}
		t := Expm1f(x)
		return 1 + t*t/(2*(1+t))
	}

	// |x| < log(FLT_MAX)
	if w < 0x42b17217 {
		t := Expf(x)
		return 0.5 * (t + 1/t)
	}

	// |x| > log(FLT_MAX) or nan
	return kExpo2f(x)
}

// Tanh returns the hyperbolic tangent of x.
//
// tanh(x) = (exp(x) - exp(-x))/(exp(x) + exp(-x))
// = (exp(2*x) - 1)/(exp(2*x) - 1 + 2)
// = (1 - exp(-2*x))/(exp(-2*x) - 1 + 2)
//
// Special cases are:
//
//	Tanh(±0) = ±0
//	Tanh(±Inf) = ±1
//	Tanh(NaN) = NaN
func Tanh(x float64) float64 {
	sign := highWord(x)>>31 != 0
	x = Fabs(x)
	w := highWord(x)

	var t float64
	switch {
	case w > 0x3fe193ea: // |x| > log(3)/2 ~= 0.5493 or nan
		if w > 0x40340000 {
			// |x| > 20 or nan, this branch avoids raising overflow
			t = 1 - 0/x
		} else {
			t = Expm1(2 * x)
			t = 1 - 2/(t+2)
		}
	case w > 0x3fd058ae: // |x| > log(5/3)/2 ~= 0.2554
		t = Expm1(2 * x)
		t = t / (t + 2)
	case w >= 0x00100000: // |x| >= 0x1p-1022, up to 2ulp error in [0.1,0.2554]
		t = Expm1(-2 * x)
		t = -t / (t + 2)
	default:
		// |x| is subnormal; the branch above would not raise underflow
		// in [0x1p-1023,0x1p-1022)
		observe32(float32(x))
		t = x
	}
	if sign {
		return -t
	}
	return t
}

// Tanhf is the float32 version of Tanh.
func Tanhf(x float32) float32 {
	sign := math.Float32bits(x)>>31 != 0
	x = Fabsf(x)
	w := math.Float32bits(x)

	var t float32
	switch {
	case w > 0x3f0c9f54: // |x| > log(3)/2 ~= 0.5493 or nan
		if w > 0x41200000 { // |x| > 10
			t = 1 + 0/x
		} else {
			t = Expm1f(2 * x)
			t = 1 - 2/(t+2)
		}
	case w > 0x3e82c578: // |x| > log(5/3)/2 ~= 0.2554
		t = Expm1f(2 * x)
		t = t / (t + 2)
	case w >= 0x00800000: // |x| >= 0x1p-126
		t = Expm1f(-2 * x)
		t = -t / (t + 2)
	default: // |x| is subnormal
		observe32(x * x)
		t = x
	}
	if sign {
		return -t
	}
	return t
}

// Asinh returns the inverse hyperbolic sine of x.
//
// asinh(x) = sign(x)*log(|x|+sqrt(x*x+1)) ~= x - x^3/6 + o(x^5)
//
// Special cases are:
//
//	Asinh(±0) = ±0
//	Asinh(±Inf) = ±Inf
//	Asinh(NaN) = NaN
func Asinh(x float64) float64 {
	u := math.Float64bits(x)
	e := (u >> 52) & 0x7ff
	sign := u>>63 != 0

	// |x|
	x = Fabs(x)

	switch {
	case e >= 0x3ff+26: // |x| >= 0x1p26 or inf or nan
		x = Log(x) + ln2
	case e >= 0x3ff+1: // |x| >= 2
		x = Log(2*x + 1/(Sqrt(float64(x*x)+1)+x))
	case e >= 0x3ff-26: // |x| >= 0x1p-26, up to 1.6ulp error in [0.125,0.5]
		x = Log1p(x + float64(x*x)/(Sqrt(float64(x*x)+1)+1))
	default:
		// |x| < 0x1p-26, raise inexact if x != 0
		observe64(x + 0x1p120)
	}
	if sign {
		return -x
	}
	return x
}

// Asinhf is the float32 version of Asinh.
func Asinhf(x float32) float32 {
	u := math.Float32bits(x)
	i := u & 0x7fffffff
	sign := u>>31 != 0
	x = math.Float32frombits(i)

	switch {
	case i >= 0x3f800000+(12<<23): // |x| >= 0x1p12 or inf or nan
		x = Logf(x) + ln2
	case i >= 0x3f800000+(1<<23): // |x| >= 2
		x = Logf(2*x + 1/(Sqrtf(float32(x*x)+1)+x))
	case i >= 0x3f800000-(12<<23): // |x| >= 0x1p-12, up to 1.6ulp error in [0.125,0.5]
		x = Log1pf(x + float32(x*x)/(Sqrtf(float32(x*x)+1)+1))
	default:
		// |x| < 0x1p-12, raise inexact if x!=0
		observe32(x + 0x1p120)
	}
	if sign {
		return -x
	}
	return x
}

// Acosh returns the inverse hyperbolic cosine of x.
//
// acosh(x) = log(x + sqrt(x*x-1))
//
// Special cases are:
//
//	Acosh(+Inf) = +Inf
//	Acosh(x) = NaN if x < 1
//	Acosh(NaN) = NaN
func Acosh(x float64) float64 {
	e := (math.Float64bits(x) >> 52) & 0x7ff

	// x < 1 domain error is handled in the called functions
	switch {
	case e < 0x3ff+1: // |x| < 2, up to 2ulp error in [1,1.125]
		xm1 := x - 1
		return Log1p(xm1 + Sqrt(float64(xm1*xm1)+2*xm1))
	case e < 0x3ff+26: // |x| < 0x1p26
		return Log(2*x - 1/(x+Sqrt(float64(x*x)-1)))
	}
	// |x| >= 0x1p26 or nan
	return Log(x) + ln2
}

// Acoshf is the float32 version of Acosh.
func Acoshf(x float32) float32 {
	u := math.Float32bits(x)
	a := u & 0x7fffffff

	switch {
	case a < 0x3f800000+(1<<23): // |x| < 2, invalid if x < 1, up to 2ulp error in [1,1.125]
		xm1 := x - 1
		return Log1pf(xm1 + Sqrtf(float32(xm1*xm1)+2*xm1))
	case u < 0x3f800000+(12<<23): // 2 <= x < 0x1p12
		return Logf(2*x - 1/(x+Sqrtf(float32(x*x)-1)))
	}
	// x >= 0x1p12 or x <= -2 or nan
	return Logf(x) + ln2
}

// Atanh returns the inverse hyperbolic tangent of x.
//
// atanh(x) = log((1+x)/(1-x))/2 = log1p(2x/(1-x))/2 ~= x + x^3/3 + o(x^5)
//
// Special cases are:
//
//	Atanh(1) = +Inf
//	Atanh(±0) = ±0
//	Atanh(-1) = -Inf
//	Atanh(x) = NaN if x < -1 or x > 1
//	Atanh(NaN) = NaN
func Atanh(x float64) float64 {
	u := math.Float64bits(x)
	e := (u >> 52) & 0x7ff
	sign := u>>63 != 0

	// |x|
	y := Fabs(x)

	if e < 0x3ff-1 {
		if e < 0x3ff-32 {
			// handle underflow
			if e == 0 {
				observe32(float32(y))
			}
		} else {
			// |x| < 0.5, up to 1.7ulp error
			y = 0.5 * Log1p(2*y+2*y*y/(1-y))
		}
	} else {
		// avoid overflow
		y = 0.5 * Log1p(2*(y/(1-y)))
	}
	if sign {
		return -y
	}
	return y
}

// Atanhf is the float32 version of Atanh.
func Atanhf(x float32) float32 {
	u := math.Float32bits(x)
	sign := u>>31 != 0

	// |x|
	u &= 0x7fffffff
	y := math.Float32frombits(u)

	if u < 0x3f800000-(1<<23) {
		if u < 0x3f800000-(32<<23) {
			// handle underflow
			if u < 1<<23 {
				observe32(y * y)
			}
		} else {
			// |x| < 0.5, up to 1.7ulp error
			y = 0.5 * Log1pf(2*y+2*y*y/(1-y))
		}
	} else {
		// avoid overflow
		y = 0.5 * Log1pf(2*(y/(1-y)))
	}
	if sign {
		return -y
	}
	return y
}
