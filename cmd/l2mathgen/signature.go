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
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	errUnknownFunction   = errors.New("function not found in package")
	errSignatureMismatch = errors.New("signature mismatch")
)

// Signature is the flattened parameter and result types of a Go function.
type Signature struct {
	Params  []string
	Results []string
}

func (s Signature) String() string {
	return "func(" + strings.Join(s.Params, ", ") + ") (" + strings.Join(s.Results, ", ") + ")"
}

// ParseSignatures collects the signatures of the exported top-level
// functions in the non-test Go files of dir.
func ParseSignatures(dir string) (map[string]Signature, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	sigs := make(map[string]Signature)
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || !fn.Name.IsExported() || fn.Type.TypeParams != nil {
				continue
			}
			sigs[fn.Name.Name] = Signature{
				Params:  flatten(fn.Type.Params),
				Results: flatten(fn.Type.Results),
			}
		}
	}
	return sigs, nil
}

// flatten expands grouped fields (x, y float64) into one type per value.
func flatten(fields *ast.FieldList) []string {
	if fields == nil {
		return nil
	}
	var out []string
	for _, f := range fields.List {
		typ := typeString(f.Type)
		n := len(f.Names)
		if n == 0 {
			n = 1
		}
		for iter := 0; iter < n; iter++ {
			out = append(out, typ)
		}
	}
	return out
}

func typeString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return typeString(t.X) + "." + t.Sel.Name
	case *ast.StarExpr:
		return "*" + typeString(t.X)
	case *ast.ArrayType:
		return "[]" + typeString(t.Elt)
	}
	return fmt.Sprintf("%T", expr)
}

// expected returns the Go signature a symbol must have.
func (s Symbol) expected() Signature {
	var sig Signature
	for _, p := range s.Params {
		sig.Params = append(sig.Params, scalars[p.Type].goType)
	}
	for _, k := range strings.Split(s.Result, "_") {
		sig.Results = append(sig.Results, scalars[k].goType)
	}
	return sig
}

// CheckSignatures verifies that every symbol names a function of sigs with
// the declared parameter and result types.
func CheckSignatures(syms []Symbol, sigs map[string]Signature) error {
	var errs []error
	for _, s := range syms {
		got, ok := sigs[s.Go]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s (for %s)", errUnknownFunction, s.Go, s.C))
			continue
		}
		want := s.expected()
		if got.String() != want.String() {
			errs = append(errs, fmt.Errorf("%w: %s is %s, manifest declares %s", errSignatureMismatch, s.Go, got, want))
		}
	}
	return errors.Join(errs...)
}
