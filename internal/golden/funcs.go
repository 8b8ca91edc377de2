// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package golden

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/DranikiRobotics/arc/l2math"
)

// ArgKind is the type of one scalar argument.
type ArgKind uint8

const (
	F64 ArgKind = iota
	F32
	I32
)

func (k ArgKind) String() string {
	switch k {
	case F64:
		return "f64"
	case F32:
		return "f32"
	case I32:
		return "i32"
	}
	return fmt.Sprintf("ArgKind(%d)", uint8(k))
}

// ErrUnknownFunction is returned by Select for names missing from the
// registry.
var ErrUnknownFunction = errors.New("golden: unknown function")

// Func is a kernel entry point evaluated on raw bit patterns. Float32
// arguments and results occupy the low 32 bits, int32 values are stored as
// their two's complement uint32.
type Func struct {
	Name    string
	Args    []ArgKind
	Results []ArgKind

	// Ints bounds integer arguments to [-Ints, Ints].
	Ints int32

	eval func(a [3]uint64) [2]uint64
}

// Eval runs the function on the argument bits.
func (f Func) Eval(args [3]uint64) [2]uint64 {
	return f.eval(args)
}

func b64(x float64) uint64 { return math.Float64bits(x) }
func b32(x float32) uint64 { return uint64(math.Float32bits(x)) }
func f64(u uint64) float64 { return math.Float64frombits(u) }
func f32(u uint64) float32 { return math.Float32frombits(uint32(u)) }
func i32(u uint64) int32   { return int32(uint32(u)) }
func bi(i int32) uint64    { return uint64(uint32(i)) }

func unary64(name string, fn func(float64) float64) Func {
	return Func{Name: name, Args: []ArgKind{F64}, Results: []ArgKind{F64}, eval: func(a [3]uint64) [2]uint64 {
		return [2]uint64{b64(fn(f64(a[0])))}
	}}
}

func unary32(name string, fn func(float32) float32) Func {
	return Func{Name: name, Args: []ArgKind{F32}, Results: []ArgKind{F32}, eval: func(a [3]uint64) [2]uint64 {
		return [2]uint64{b32(fn(f32(a[0])))}
	}}
}

func binary64(name string, fn func(x, y float64) float64) Func {
	return Func{Name: name, Args: []ArgKind{F64, F64}, Results: []ArgKind{F64}, eval: func(a [3]uint64) [2]uint64 {
		return [2]uint64{b64(fn(f64(a[0]), f64(a[1])))}
	}}
}

func binary32(name string, fn func(x, y float32) float32) Func {
	return Func{Name: name, Args: []ArgKind{F32, F32}, Results: []ArgKind{F32}, eval: func(a [3]uint64) [2]uint64 {
		return [2]uint64{b32(fn(f32(a[0]), f32(a[1])))}
	}}
}

func ternary64(name string, fn func(x, y, z float64) float64) Func {
	return Func{Name: name, Args: []ArgKind{F64, F64, F64}, Results: []ArgKind{F64}, eval: func(a [3]uint64) [2]uint64 {
		return [2]uint64{b64(fn(f64(a[0]), f64(a[1]), f64(a[2])))}
	}}
}

func ternary32(name string, fn func(x, y, z float32) float32) Func {
	return Func{Name: name, Args: []ArgKind{F32, F32, F32}, Results: []ArgKind{F32}, eval: func(a [3]uint64) [2]uint64 {
		return [2]uint64{b32(fn(f32(a[0]), f32(a[1]), f32(a[2])))}
	}}
}

// Bessel orders cost one recurrence step each, so they stay small.
const maxOrder = 64

func order64(name string, fn func(n int32, x float64) float64) Func {
	return Func{Name: name, Args: []ArgKind{I32, F64}, Results: []ArgKind{F64}, Ints: maxOrder, eval: func(a [3]uint64) [2]uint64 {
		return [2]uint64{b64(fn(i32(a[0]), f64(a[1])))}
	}}
}

func order32(name string, fn func(n int32, x float32) float32) Func {
	return Func{Name: name, Args: []ArgKind{I32, F32}, Results: []ArgKind{F32}, Ints: maxOrder, eval: func(a [3]uint64) [2]uint64 {
		return [2]uint64{b32(fn(i32(a[0]), f32(a[1])))}
	}}
}

// Exponent adjustments span the whole finite range plus some slack.
const maxScale = 2200

func scale64(name string, fn func(x float64, n int32) float64) Func {
	return Func{Name: name, Args: []ArgKind{F64, I32}, Results: []ArgKind{F64}, Ints: maxScale, eval: func(a [3]uint64) [2]uint64 {
		return [2]uint64{b64(fn(f64(a[0]), i32(a[1])))}
	}}
}

func scale32(name string, fn func(x float32, n int32) float32) Func {
	return Func{Name: name, Args: []ArgKind{F32, I32}, Results: []ArgKind{F32}, Ints: maxScale, eval: func(a [3]uint64) [2]uint64 {
		return [2]uint64{b32(fn(f32(a[0]), i32(a[1])))}
	}}
}

func exponent64(name string, fn func(float64) int32) Func {
	return Func{Name: name, Args: []ArgKind{F64}, Results: []ArgKind{I32}, eval: func(a [3]uint64) [2]uint64 {
		return [2]uint64{bi(fn(f64(a[0])))}
	}}
}

func exponent32(name string, fn func(float32) int32) Func {
	return Func{Name: name, Args: []ArgKind{F32}, Results: []ArgKind{I32}, eval: func(a [3]uint64) [2]uint64 {
		return [2]uint64{bi(fn(f32(a[0])))}
	}}
}

func withInt64(name string, fn func(float64) (float64, int32)) Func {
	return Func{Name: name, Args: []ArgKind{F64}, Results: []ArgKind{F64, I32}, eval: func(a [3]uint64) [2]uint64 {
		r, i := fn(f64(a[0]))
		return [2]uint64{b64(r), bi(i)}
	}}
}

func withInt32(name string, fn func(float32) (float32, int32)) Func {
	return Func{Name: name, Args: []ArgKind{F32}, Results: []ArgKind{F32, I32}, eval: func(a [3]uint64) [2]uint64 {
		r, i := fn(f32(a[0]))
		return [2]uint64{b32(r), bi(i)}
	}}
}

func pair64(name string, fn func(float64) (float64, float64)) Func {
	return Func{Name: name, Args: []ArgKind{F64}, Results: []ArgKind{F64, F64}, eval: func(a [3]uint64) [2]uint64 {
		r0, r1 := fn(f64(a[0]))
		return [2]uint64{b64(r0), b64(r1)}
	}}
}

func pair32(name string, fn func(float32) (float32, float32)) Func {
	return Func{Name: name, Args: []ArgKind{F32}, Results: []ArgKind{F32, F32}, eval: func(a [3]uint64) [2]uint64 {
		r0, r1 := fn(f32(a[0]))
		return [2]uint64{b32(r0), b32(r1)}
	}}
}

func quotient64(name string, fn func(x, y float64) (float64, int32)) Func {
	return Func{Name: name, Args: []ArgKind{F64, F64}, Results: []ArgKind{F64, I32}, eval: func(a [3]uint64) [2]uint64 {
		r, q := fn(f64(a[0]), f64(a[1]))
		return [2]uint64{b64(r), bi(q)}
	}}
}

func quotient32(name string, fn func(x, y float32) (float32, int32)) Func {
	return Func{Name: name, Args: []ArgKind{F32, F32}, Results: []ArgKind{F32, I32}, eval: func(a [3]uint64) [2]uint64 {
		r, q := fn(f32(a[0]), f32(a[1]))
		return [2]uint64{b32(r), bi(q)}
	}}
}

// registry holds every entry point under its C symbol name, without the
// __l2math_ prefix.
var registry = []Func{
	unary64("acos", l2math.Acos),
	unary32("acosf", l2math.Acosf),
	unary64("acosh", l2math.Acosh),
	unary32("acoshf", l2math.Acoshf),
	unary64("asin", l2math.Asin),
	unary32("asinf", l2math.Asinf),
	unary64("asinh", l2math.Asinh),
	unary32("asinhf", l2math.Asinhf),
	unary64("atan", l2math.Atan),
	unary32("atanf", l2math.Atanf),
	unary64("atanh", l2math.Atanh),
	unary32("atanhf", l2math.Atanhf),
	unary64("cbrt", l2math.Cbrt),
	unary32("cbrtf", l2math.Cbrtf),
	unary64("ceil", l2math.Ceil),
	unary32("ceilf", l2math.Ceilf),
	unary64("cos", l2math.Cos),
	unary32("cosf", l2math.Cosf),
	unary64("cosh", l2math.Cosh),
	unary32("coshf", l2math.Coshf),
	unary64("erf", l2math.Erf),
	unary32("erff", l2math.Erff),
	unary64("erfc", l2math.Erfc),
	unary32("erfcf", l2math.Erfcf),
	unary64("exp", l2math.Exp),
	unary32("expf", l2math.Expf),
	unary64("exp2", l2math.Exp2),
	unary32("exp2f", l2math.Exp2f),
	unary64("exp10", l2math.Exp10),
	unary32("exp10f", l2math.Exp10f),
	unary64("expm1", l2math.Expm1),
	unary32("expm1f", l2math.Expm1f),
	unary64("fabs", l2math.Fabs),
	unary32("fabsf", l2math.Fabsf),
	unary64("factorial", l2math.Factorial),
	unary32("factorialf", l2math.Factorialf),
	unary64("floor", l2math.Floor),
	unary32("floorf", l2math.Floorf),
	unary64("j0", l2math.J0),
	unary32("j0f", l2math.J0f),
	unary64("j1", l2math.J1),
	unary32("j1f", l2math.J1f),
	unary64("lgamma", l2math.Lgamma),
	unary32("lgammaf", l2math.Lgammaf),
	unary64("ln", l2math.Ln),
	unary32("lnf", l2math.Lnf),
	unary64("log", l2math.Log),
	unary32("logf", l2math.Logf),
	unary64("log1p", l2math.Log1p),
	unary32("log1pf", l2math.Log1pf),
	unary64("log2", l2math.Log2),
	unary32("log2f", l2math.Log2f),
	unary64("log10", l2math.Log10),
	unary32("log10f", l2math.Log10f),
	unary64("rint", l2math.Rint),
	unary32("rintf", l2math.Rintf),
	unary64("round", l2math.Round),
	unary32("roundf", l2math.Roundf),
	unary64("sin", l2math.Sin),
	unary32("sinf", l2math.Sinf),
	unary64("sinh", l2math.Sinh),
	unary32("sinhf", l2math.Sinhf),
	unary64("sqrt", l2math.Sqrt),
	unary32("sqrtf", l2math.Sqrtf),
	unary64("tan", l2math.Tan),
	unary32("tanf", l2math.Tanf),
	unary64("tanh", l2math.Tanh),
	unary32("tanhf", l2math.Tanhf),
	unary64("tgamma", l2math.Tgamma),
	unary32("tgammaf", l2math.Tgammaf),
	unary64("trunc", l2math.Trunc),
	unary32("truncf", l2math.Truncf),
	unary64("ulp", l2math.Ulp),
	unary32("ulpf", l2math.Ulpf),
	unary64("y0", l2math.Y0),
	unary32("y0f", l2math.Y0f),
	unary64("y1", l2math.Y1),
	unary32("y1f", l2math.Y1f),
	binary64("atan2", l2math.Atan2),
	binary32("atan2f", l2math.Atan2f),
	binary64("copysign", l2math.Copysign),
	binary32("copysignf", l2math.Copysignf),
	binary64("fdim", l2math.Fdim),
	binary32("fdimf", l2math.Fdimf),
	binary64("fmax", l2math.Fmax),
	binary32("fmaxf", l2math.Fmaxf),
	binary64("fmin", l2math.Fmin),
	binary32("fminf", l2math.Fminf),
	binary64("fmod", l2math.Fmod),
	binary32("fmodf", l2math.Fmodf),
	binary64("hypot", l2math.Hypot),
	binary32("hypotf", l2math.Hypotf),
	binary64("nextafter", l2math.Nextafter),
	binary32("nextafterf", l2math.Nextafterf),
	binary64("pow", l2math.Pow),
	binary32("powf", l2math.Powf),
	binary64("remainder", l2math.Remainder),
	binary32("remainderf", l2math.Remainderf),
	ternary64("fma", l2math.Fma),
	ternary32("fmaf", l2math.Fmaf),
	order64("jn", l2math.Jn),
	order32("jnf", l2math.Jnf),
	order64("yn", l2math.Yn),
	order32("ynf", l2math.Ynf),
	scale64("ldexp", l2math.Ldexp),
	scale32("ldexpf", l2math.Ldexpf),
	scale64("scalbn", l2math.Scalbn),
	scale32("scalbnf", l2math.Scalbnf),
	exponent64("ilogb", l2math.Ilogb),
	exponent32("ilogbf", l2math.Ilogbf),
	withInt64("frexp", l2math.Frexp),
	withInt32("frexpf", l2math.Frexpf),
	withInt64("lgamma_r", l2math.LgammaR),
	withInt32("lgammaf_r", l2math.LgammafR),
	pair64("modf", l2math.Modf),
	pair32("modff", l2math.Modff),
	pair64("sincos", l2math.Sincos),
	pair32("sincosf", l2math.Sincosf),
	quotient64("remquo", l2math.Remquo),
	quotient32("remquof", l2math.Remquof),
}

var byName = func() map[string]Func {
	m := make(map[string]Func, len(registry))
	for _, f := range registry {
		m[f.Name] = f
	}
	return m
}()

// Lookup returns the registered function called name.
func Lookup(name string) (Func, bool) {
	f, ok := byName[name]
	return f, ok
}

// Names returns every registered function name in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, f := range registry {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

// Select resolves a comma-separated list of names. An empty list or "all"
// selects the whole registry.
func Select(list string) ([]Func, error) {
	list = strings.TrimSpace(list)
	if list == "" || list == "all" {
		funcs := make([]Func, 0, len(registry))
		for _, name := range Names() {
			funcs = append(funcs, byName[name])
		}
		return funcs, nil
	}
	var funcs []Func
	seen := make(map[string]bool)
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		f, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
		}
		seen[name] = true
		funcs = append(funcs, f)
	}
	return funcs, nil
}
