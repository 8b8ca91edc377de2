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
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"sigs.k8s.io/yaml"
)

// Manifest is the parsed exports.yaml.
type Manifest struct {
	// Package is the import path of the Go package implementing the exports.
	Package string   `json:"package"`
	Exports []Export `json:"exports"`
}

// Export is one manifest entry, describing a float64 function and, unless
// NoFloat32 is set, its float32 sibling. An empty Go name defaults to the
// title-cased C name.
type Export struct {
	C         string  `json:"c"`
	Go        string  `json:"go,omitempty"`
	Params    []Param `json:"params"`
	Result    string  `json:"result"`
	Doc       string  `json:"doc"`
	C32       string  `json:"c32,omitempty"`
	Go32      string  `json:"go32,omitempty"`
	NoFloat32 bool    `json:"noFloat32,omitempty"`
}

// Param is one scalar parameter.
type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Symbol is a single exported entry point after float32 expansion.
type Symbol struct {
	C      string // without the __l2math_ prefix
	Go     string
	Params []Param
	Result string
	Doc    string
	Single bool // float32 variant
}

var errManifest = errors.New("invalid manifest")

var title = cases.Title(language.English)

var scalarKinds = map[string]bool{"f64": true, "f32": true, "i32": true}

var resultKinds = map[string]bool{
	"f64": true, "f32": true, "i32": true,
	"f64_i32": true, "f32_i32": true,
	"f64_f64": true, "f32_f32": true,
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}

// ParseManifest decodes manifest YAML and validates it.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.UnmarshalStrict(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if m.Package == "" {
		return nil, fmt.Errorf("%w: missing package", errManifest)
	}
	if len(m.Exports) == 0 {
		return nil, fmt.Errorf("%w: no exports", errManifest)
	}
	for i := range m.Exports {
		if e := &m.Exports[i]; e.Go == "" && e.C != "" {
			e.Go = title.String(e.C)
		}
	}
	seen := make(map[string]bool)
	for _, s := range m.Symbols() {
		if s.C == "" || s.Go == "" {
			return nil, fmt.Errorf("%w: entry with empty name (c=%q, go=%q)", errManifest, s.C, s.Go)
		}
		if seen[s.C] {
			return nil, fmt.Errorf("%w: duplicate symbol %q", errManifest, s.C)
		}
		seen[s.C] = true
		if !resultKinds[s.Result] {
			return nil, fmt.Errorf("%w: %s: unknown result kind %q", errManifest, s.C, s.Result)
		}
		for _, p := range s.Params {
			if !scalarKinds[p.Type] {
				return nil, fmt.Errorf("%w: %s: parameter %s has unknown type %q", errManifest, s.C, p.Name, p.Type)
			}
		}
	}
	return &m, nil
}

// Symbols expands every entry into its float64 symbol followed by its
// float32 sibling.
func (m *Manifest) Symbols() []Symbol {
	var out []Symbol
	for _, e := range m.Exports {
		out = append(out, Symbol{C: e.C, Go: e.Go, Params: e.Params, Result: e.Result, Doc: e.Doc})
		if e.NoFloat32 {
			continue
		}
		s := Symbol{C: e.C + "f", Go: e.Go + "f", Result: narrow(e.Result), Doc: e.Doc, Single: true}
		if e.C32 != "" {
			s.C = e.C32
		}
		if e.Go32 != "" {
			s.Go = e.Go32
		}
		for _, p := range e.Params {
			s.Params = append(s.Params, Param{Name: p.Name, Type: narrow(p.Type)})
		}
		out = append(out, s)
	}
	return out
}

// narrow maps a float64 kind to its float32 counterpart.
func narrow(kind string) string {
	return strings.ReplaceAll(kind, "f64", "f32")
}
