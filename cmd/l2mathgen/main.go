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

// Command l2mathgen generates the C entry points of libl2math from an export
// manifest.
//
// Usage:
//
//	l2mathgen -manifest cmd/libl2math/exports.yaml -pkgdir l2math \
//	    -go-out cmd/libl2math/exports.gen.go -header-out include/l2math.h
//
// Or via go:generate in cmd/libl2math:
//
//	//go:generate go run ../l2mathgen -manifest exports.yaml -pkgdir ../../l2math -go-out exports.gen.go -header-out ../../include/l2math.h
//
// Every manifest entry is checked against the Go signature of the function it
// names before anything is written.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	manifest  = flag.String("manifest", "exports.yaml", "Export manifest (YAML)")
	pkgDir    = flag.String("pkgdir", "../../l2math", "Directory of the Go package implementing the exports")
	goOut     = flag.String("go-out", "exports.gen.go", "Generated cgo wrapper file")
	headerOut = flag.String("header-out", "../../include/l2math.h", "Generated C header")
	verbose   = flag.Bool("v", false, "Print progress to stderr")
)

func main() {
	flag.Parse()

	gen := &Generator{
		Manifest:  *manifest,
		PkgDir:    *pkgDir,
		GoOut:     *goOut,
		HeaderOut: *headerOut,
		Verbose:   *verbose,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %s and %s\n", *goOut, *headerOut)
}
