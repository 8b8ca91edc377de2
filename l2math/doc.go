// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

// Package l2math is an allocation-free IEEE-754 math kernel for float32 and
// float64. Every function is a port of the fdlibm/musl implementation of the
// same name and returns the same bits as the C reference on the same input.
//
// # Naming
//
// The float64 function carries the C name in Go case, the float32 variant
// adds an f suffix:
//
//	l2math.Sin(x float64) float64
//	l2math.Sinf(x float32) float32
//
// Functions with two outputs return both values:
//
//	frac, exp := l2math.Frexp(x)
//	sin, cos := l2math.Sincos(x)
//	lg, sign := l2math.LgammaR(x)
//
// # Function families
//
// Trigonometric:
//   - Sin, Cos, Tan, Sincos (+f)
//   - Asin, Acos, Atan, Atan2 (+f)
//
// Hyperbolic:
//   - Sinh, Cosh, Tanh, Asinh, Acosh, Atanh (+f)
//
// Exponential and logarithmic:
//   - Exp, Exp2, Exp10, Expm1 (+f)
//   - Log, Ln, Log2, Log10, Log1p (+f)
//
// Power and root:
//   - Pow, Sqrt, Cbrt, Hypot (+f)
//
// Special functions:
//   - Lgamma, LgammaR, Tgamma, Factorial (+f)
//   - J0, J1, Jn, Y0, Y1, Yn (+f)
//   - Erf, Erfc (+f)
//
// Rounding and decomposition:
//   - Floor, Ceil, Round, Trunc, Rint (+f)
//   - Fmod, Remainder, Remquo, Modf, Frexp, Ldexp, Scalbn, Ilogb (+f)
//   - Fabs, Copysign, Fdim, Fmax, Fmin, Nextafter, Ulp (+f)
//   - Fma (+f)
//
// # Errors
//
// There is no error channel. Domain errors return NaN, overflow and poles
// return a correctly signed infinity, underflow returns the (possibly
// subnormal or zero) rounded value. Where the reference raises a
// floating-point exception flag through a dummy computation, the kernel
// passes that computation to a no-inline sink so the compiler keeps it.
//
// # Fused operations
//
// The Go compiler may contract x*y + z into a single FMA instruction, which
// changes the rounding. Products feeding an addition are wrapped in an
// explicit conversion (float64(x*y) + z), the language-defined rounding point
// that forbids the contraction.
//
// # Profiles
//
// The default reference profile runs the software algorithms everywhere. The
// native profile, enabled with L2MATH_NATIVE=1 on CPUs with the required
// instructions, routes the correctly rounded operations (Sqrt, Sqrtf, Fma,
// Floor, Ceil, Trunc) to the hardware-backed math intrinsics. Both profiles
// produce identical bits.
//
// # Concurrency
//
// All functions are pure: no global state is written after package
// initialization, so they may be called from any number of goroutines.
//
// Portions are derived from fdlibm (Copyright (C) 1993 by Sun Microsystems,
// Inc.), FreeBSD msun and musl libc (Copyright (c) 2005-2020 Rich Felker, et
// al.); their notices are reproduced in LICENSE-fdlibm.
package l2math
