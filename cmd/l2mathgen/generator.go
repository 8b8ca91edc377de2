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

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// Generator turns an export manifest into the cgo wrappers and the header.
type Generator struct {
	Manifest  string
	PkgDir    string
	GoOut     string
	HeaderOut string
	Verbose   bool
}

// Run loads the manifest, checks it against the package sources and writes
// both outputs.
func (g *Generator) Run() error {
	m, err := LoadManifest(g.Manifest)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}
	syms := m.Symbols()
	g.logf("%s: %d symbols", g.Manifest, len(syms))

	sigs, err := ParseSignatures(g.PkgDir)
	if err != nil {
		return fmt.Errorf("parse %s: %w", g.PkgDir, err)
	}
	g.logf("%s: %d exported functions", g.PkgDir, len(sigs))
	if err := CheckSignatures(syms, sigs); err != nil {
		return err
	}

	src, err := EmitGo(m.Package, syms)
	if err != nil {
		return err
	}
	if err := writeFile(g.GoOut, src); err != nil {
		return err
	}
	g.logf("wrote %s", g.GoOut)

	if err := writeFile(g.HeaderOut, EmitHeader(syms)); err != nil {
		return err
	}
	g.logf("wrote %s", g.HeaderOut)
	return nil
}

func (g *Generator) logf(format string, args ...any) {
	if g.Verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
