// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

// Package golden records kernel outputs as golden vectors and checks a
// build of the kernel against them.
//
// A vector file pins the exact result bits of every selected function over a
// deterministic input set, so two platforms (or two toolchains) can be
// compared either by shipping the file or by exchanging the per-function
// digests alone.
package golden

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/dchest/siphash"

	"github.com/DranikiRobotics/arc/internal/floatcmp"
	"github.com/DranikiRobotics/arc/internal/workerpool"
)

// ErrMismatch is returned by Verify when a recorded result differs from the
// current kernel.
var ErrMismatch = errors.New("golden: result mismatch")

// batch is the number of inputs a worker claims at a time.
const batch = 2048

// Options control input generation.
type Options struct {
	Seed uint64
	// N is the number of random inputs per function, on top of the edge
	// values.
	N int
}

// Record evaluates every function in funcs over its inputs.
func Record(pool *workerpool.Pool, funcs []Func, opts Options) []Vector {
	var vs []Vector
	for _, f := range funcs {
		inputs := Inputs(f, opts.Seed, opts.N)
		out := make([]Vector, len(inputs))
		pool.ParallelForBatched(len(inputs), batch, func(start, end int) {
			for i := start; i < end; i++ {
				out[i] = Vector{Func: f.Name, Args: inputs[i], Result: f.Eval(inputs[i])}
			}
		})
		vs = append(vs, out...)
	}
	return vs
}

// Verify re-evaluates every vector and returns an error wrapping ErrMismatch
// that describes the first vector whose result differs. NaN results match
// any other NaN of the same width.
func Verify(pool *workerpool.Pool, vs []Vector) error {
	funcs := make(map[string]Func)
	for _, v := range vs {
		if _, ok := funcs[v.Func]; ok {
			continue
		}
		f, ok := Lookup(v.Func)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownFunction, v.Func)
		}
		funcs[v.Func] = f
	}

	// each index is written by exactly one worker; the earliest failure is
	// picked after the sweep so the report does not depend on scheduling
	bad := make([]bool, len(vs))
	pool.ParallelForBatched(len(vs), batch, func(start, end int) {
		for i := start; i < end; i++ {
			v := vs[i]
			f := funcs[v.Func]
			bad[i] = !sameResult(f, f.Eval(v.Args), v.Result)
		}
	})
	for i, b := range bad {
		if b {
			v := vs[i]
			f := funcs[v.Func]
			return fmt.Errorf("%w: record %d: %s = %s, recorded %s",
				ErrMismatch, i, formatCall(f, v.Args), formatResult(f, f.Eval(v.Args)), formatResult(f, v.Result))
		}
	}
	return nil
}

// sameResult compares two result pairs of f bit for bit, treating NaNs of
// the result's width as equal.
func sameResult(f Func, got, want [2]uint64) bool {
	for i := range got {
		if got[i] == want[i] {
			continue
		}
		if f.resultKind(i) == I32 {
			return false
		}
		if f.resultKind(i) == F32 {
			if !floatcmp.Identical(math.Float32frombits(uint32(got[i])), math.Float32frombits(uint32(want[i]))) {
				return false
			}
			continue
		}
		if !floatcmp.Identical(math.Float64frombits(got[i]), math.Float64frombits(want[i])) {
			return false
		}
	}
	return true
}

// resultKind reports how result slot i of f is encoded. Unused slots are
// always zero and compare as integers.
func (f Func) resultKind(i int) ArgKind {
	if i < len(f.Results) {
		return f.Results[i]
	}
	return I32
}

func formatCall(f Func, args [3]uint64) string {
	s := f.Name + "("
	for i, k := range f.Args {
		if i > 0 {
			s += ", "
		}
		s += formatValue(k, args[i])
	}
	return s + ")"
}

func formatResult(f Func, r [2]uint64) string {
	s := formatValue(f.resultKind(0), r[0])
	if len(f.Results) > 1 {
		s += ", " + formatValue(f.resultKind(1), r[1])
	}
	return s
}

func formatValue(k ArgKind, u uint64) string {
	switch k {
	case F32:
		return fmt.Sprintf("%v [%#08x]", math.Float32frombits(uint32(u)), uint32(u))
	case I32:
		return fmt.Sprint(int32(uint32(u)))
	}
	return fmt.Sprintf("%v [%#016x]", math.Float64frombits(u), u)
}

// Fingerprint is the siphash-128 digest of one function's results.
type Fingerprint struct {
	Func   string
	Lo, Hi uint64
}

func (fp Fingerprint) String() string {
	return fmt.Sprintf("%016x%016x  %s", fp.Hi, fp.Lo, fp.Func)
}

// digest keys; changing them changes every fingerprint
const (
	k0 = 0x6c326d6174682d67
	k1 = 0x6f6c64656e2d7631
)

// Digest fingerprints the results of each function over the inputs Record
// would use. NaN results are canonicalized first, so digests agree across
// platforms that differ only in NaN payloads.
func Digest(pool *workerpool.Pool, funcs []Func, opts Options) []Fingerprint {
	fps := make([]Fingerprint, len(funcs))
	pool.ParallelForEach(len(funcs), func(j int) {
		f := funcs[j]
		inputs := Inputs(f, opts.Seed, opts.N)
		buf := make([]byte, 0, len(inputs)*16)
		for _, args := range inputs {
			r := f.Eval(args)
			for i := range f.Results {
				buf = binary.LittleEndian.AppendUint64(buf, canonical(f.Results[i], r[i]))
			}
		}
		lo, hi := siphash.Hash128(k0, k1, buf)
		fps[j] = Fingerprint{Func: f.Name, Lo: lo, Hi: hi}
	})
	return fps
}

// DigestVectors fingerprints recorded vectors the same way Digest
// fingerprints live results, preserving the order of first appearance.
func DigestVectors(vs []Vector) ([]Fingerprint, error) {
	var order []string
	bufs := make(map[string][]byte)
	for _, v := range vs {
		f, ok := Lookup(v.Func)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, v.Func)
		}
		buf, seen := bufs[v.Func]
		if !seen {
			order = append(order, v.Func)
		}
		for i := range f.Results {
			buf = binary.LittleEndian.AppendUint64(buf, canonical(f.Results[i], v.Result[i]))
		}
		bufs[v.Func] = buf
	}
	fps := make([]Fingerprint, len(order))
	for i, name := range order {
		lo, hi := siphash.Hash128(k0, k1, bufs[name])
		fps[i] = Fingerprint{Func: name, Lo: lo, Hi: hi}
	}
	return fps, nil
}

func canonical(k ArgKind, u uint64) uint64 {
	switch k {
	case F32:
		if floatcmp.IsNaN(math.Float32frombits(uint32(u))) {
			return 0x7fc00000
		}
	case F64:
		if floatcmp.IsNaN(math.Float64frombits(u)) {
			return 0x7ff8000000000000
		}
	}
	return u
}
