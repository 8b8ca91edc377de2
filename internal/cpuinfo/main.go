// Copyright 2025 The arc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main prints the floating point features detected by Go and the
// kernel profile they select.
package main

import (
	"fmt"
	"math"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/DranikiRobotics/arc/l2math"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("L2MATH_NATIVE: %q (requested: %v)\n", os.Getenv("L2MATH_NATIVE"), l2math.NativeEnv())
	fmt.Printf("l2math profile: %s\n", l2math.CurrentProfile())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	default:
		fmt.Println("no native profile on this architecture")
	}
	fmt.Println()
	printIntrinsicParity()
}

// printIntrinsicParity compares the kernel against the math intrinsics the
// native profile would route to. Any mismatch is a bug in one of them.
func printIntrinsicParity() {
	inputs := []float64{0, 0.5, 2, 1e-310, 123456.789, math.MaxFloat64, math.Inf(1)}
	checks := []struct {
		name   string
		kernel func(float64) float64
		intrin func(float64) float64
	}{
		{"Sqrt", l2math.Sqrt, math.Sqrt},
		{"Floor", l2math.Floor, math.Floor},
		{"Ceil", l2math.Ceil, math.Ceil},
		{"Trunc", l2math.Trunc, math.Trunc},
		{"Fma(x, x, -1)", func(x float64) float64 { return l2math.Fma(x, x, -1) }, func(x float64) float64 { return math.FMA(x, x, -1) }},
	}
	fmt.Println("=== kernel vs math intrinsics ===")
	for _, c := range checks {
		bad := 0
		for _, x := range inputs {
			for _, v := range []float64{x, -x} {
				if math.Float64bits(c.kernel(v)) != math.Float64bits(c.intrin(v)) && !(math.IsNaN(c.kernel(v)) && math.IsNaN(c.intrin(v))) {
					bad++
				}
			}
		}
		fmt.Printf("  %-14s %d/%d identical\n", c.name+":", 2*len(inputs)-bad, 2*len(inputs))
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasFP:      %v (scalar floating point, gates the native profile)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasASIMD:   %v\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFPHP:    %v (FP16 scalar)\n", cpu.ARM64.HasFPHP)
	fmt.Printf("  HasASIMDHP: %v\n", cpu.ARM64.HasASIMDHP)
	fmt.Printf("  HasSVE:     %v\n", cpu.ARM64.HasSVE)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasFMA:   %v (math.FMA in hardware, gates the native profile)\n", cpu.X86.HasFMA)
	fmt.Printf("  HasSSE41: %v (ROUNDSD for Floor/Ceil/Trunc, gates the native profile)\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasSSE2:  %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasAVX:   %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:  %v\n", cpu.X86.HasAVX2)
}
