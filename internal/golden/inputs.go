// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

package golden

import (
	"math"

	"github.com/dchest/siphash"
)

// splitmix64 is the generator behind every recorded input, so files written
// on one platform can be regenerated on another from the seed alone.
type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

var edges64 = []float64{
	0, math.Copysign(0, -1),
	math.Inf(1), math.Inf(-1), math.NaN(),
	0x1p-1074, -0x1p-1074, 0x0.fffffffffffffp-1022, 0x1p-1022,
	math.MaxFloat64, -math.MaxFloat64,
	1, -1, 2, 3, -3, 10, 0.5, -0.5, 1.5, 2.5, -2.5,
	0.49999999999999994, 0x1p52, 0x1p52 + 0.5, 0x1p53 + 1,
	math.Pi, math.Pi / 2, 1e22, 709.782712893384, -745.1332191019411,
}

var edges32 = []float32{
	0, float32(math.Copysign(0, -1)),
	float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN()),
	0x1p-149, -0x1p-149, 0x0.fffffep-126, 0x1p-126,
	math.MaxFloat32, -math.MaxFloat32,
	1, -1, 2, 3, -3, 10, 0.5, -0.5, 1.5, 2.5, -2.5,
	0.49999997, 0x1p23, 0x1p23 + 0.5, 0x1p24 + 2,
	math.Pi, math.Pi / 2, 1e10, 88.72283, -103.97208,
}

var edgeInts = []int32{0, 1, -1, 2, -2, 3, 31, 1023, -1022, -1074, 1100, -1100}

// edgeBits returns the fixed edge values for one argument kind, encoded as
// argument bits. Integer edges outside [-limit, limit] are dropped.
func edgeBits(k ArgKind, limit int32) []uint64 {
	var out []uint64
	switch k {
	case F64:
		for _, x := range edges64 {
			out = append(out, math.Float64bits(x))
		}
	case F32:
		for _, x := range edges32 {
			out = append(out, uint64(math.Float32bits(x)))
		}
	case I32:
		for _, n := range edgeInts {
			if n >= -limit && n <= limit {
				out = append(out, bi(n))
			}
		}
	}
	return out
}

// randomBits draws one argument of kind k from raw generator output.
// Floats take any bit pattern; integers are folded into [-limit, limit].
func randomBits(k ArgKind, limit int32, r uint64) uint64 {
	switch k {
	case F32:
		return r >> 32
	case I32:
		span := uint64(2*int64(limit) + 1)
		return bi(int32(int64(r%span) - int64(limit)))
	}
	return r
}

// Inputs returns the argument tuples recorded for f: the cartesian product of
// the edge values followed by n seeded random tuples.
func Inputs(f Func, seed uint64, n int) [][3]uint64 {
	var out [][3]uint64
	var walk func(i int, cur [3]uint64)
	walk = func(i int, cur [3]uint64) {
		if i == len(f.Args) {
			out = append(out, cur)
			return
		}
		for _, b := range edgeBits(f.Args[i], f.Ints) {
			cur[i] = b
			walk(i+1, cur)
		}
	}
	walk(0, [3]uint64{})

	// mix the function name into the seed so that every function sees a
	// different stream
	rng := splitmix64{state: seed ^ siphash.Hash(seed, 0, []byte(f.Name))}
	for iter := 0; iter < n; iter++ {
		var args [3]uint64
		for i, k := range f.Args {
			args[i] = randomBits(k, f.Ints, rng.next())
		}
		out = append(out, args)
	}
	return out
}
