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
	"bytes"
	"fmt"
	"path"
	"strings"

	"golang.org/x/tools/imports"
)

const symbolPrefix = "__l2math_"

// scalar describes how one manifest kind appears on each side of the
// boundary.
type scalar struct {
	goType string // Go type in the kernel
	cgo    string // cgo type in the wrapper
	cType  string // C type in the header
	alias  string // header typedef name, without the prefix
}

var scalars = map[string]scalar{
	"f64": {"float64", "C.double", "double", "Float64"},
	"f32": {"float32", "C.float", "float", "Float32"},
	"i32": {"int32", "C.int", "int", "Int"},
}

// tupleName returns the struct name for a two-valued result kind, such as
// Tuple_Float64_Int for f64_i32.
func tupleName(kind string) string {
	parts := strings.Split(kind, "_")
	name := "Tuple"
	for _, p := range parts {
		name += "_" + scalars[p].alias
	}
	return name
}

// tupleFields returns the C field names of a tuple kind.
func tupleFields(kind string) (string, string) {
	parts := strings.Split(kind, "_")
	if parts[0] == parts[1] {
		return "f1", "f2"
	}
	return "f", "i"
}

var tupleKinds = []string{"f64_i32", "f32_i32", "f64_f64", "f32_f32"}

func isTuple(kind string) bool {
	return strings.Contains(kind, "_")
}

// EmitGo renders the cgo wrapper file for syms.
func EmitGo(pkg string, syms []Symbol) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by l2mathgen. DO NOT EDIT.\n\n")
	buf.WriteString("package main\n\n")
	buf.WriteString("/*\n")
	for _, k := range tupleKinds {
		a, b := tupleFields(k)
		parts := strings.Split(k, "_")
		name := symbolPrefix + tupleName(k)
		fmt.Fprintf(&buf, "typedef struct %s { %s %s; %s %s; } %s;\n",
			name, scalars[parts[0]].cType, a, scalars[parts[1]].cType, b, name)
	}
	buf.WriteString("*/\n")
	buf.WriteString("import \"C\"\n\n")
	fmt.Fprintf(&buf, "import %s %q\n", path.Base(pkg), pkg)

	alias := path.Base(pkg)
	for _, s := range syms {
		var params, args []string
		for _, p := range s.Params {
			sc := scalars[p.Type]
			params = append(params, p.Name+" "+sc.cgo)
			args = append(args, sc.goType+"("+p.Name+")")
		}
		call := fmt.Sprintf("%s.%s(%s)", alias, s.Go, strings.Join(args, ", "))
		fmt.Fprintf(&buf, "\n//export %s%s\n", symbolPrefix, s.C)
		if !isTuple(s.Result) {
			sc := scalars[s.Result]
			fmt.Fprintf(&buf, "func %s%s(%s) %s {\n", symbolPrefix, s.C, strings.Join(params, ", "), sc.cgo)
			fmt.Fprintf(&buf, "\treturn %s(%s)\n}\n", sc.cgo, call)
			continue
		}
		parts := strings.Split(s.Result, "_")
		a, b := tupleFields(s.Result)
		ctype := "C." + symbolPrefix + tupleName(s.Result)
		fmt.Fprintf(&buf, "func %s%s(%s) %s {\n", symbolPrefix, s.C, strings.Join(params, ", "), ctype)
		fmt.Fprintf(&buf, "\tr0, r1 := %s\n", call)
		fmt.Fprintf(&buf, "\treturn %s{%s: %s(r0), %s: %s(r1)}\n}\n",
			ctype, a, scalars[parts[0]].cgo, b, scalars[parts[1]].cgo)
	}

	out, err := imports.Process("exports.gen.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated Go: %w", err)
	}
	return out, nil
}

// EmitHeader renders the C header for syms.
func EmitHeader(syms []Symbol) []byte {
	var buf bytes.Buffer
	buf.WriteString(`/*
 * l2math.h: C interface to libl2math.
 *
 * Code generated by l2mathgen. DO NOT EDIT.
 *
 * Every function is pure and may be called from any thread.
 */

#ifndef L2MATH_H
#define L2MATH_H

#ifdef __cplusplus
extern "C" {
#endif

`)
	for _, k := range []string{"f64", "f32", "i32"} {
		sc := scalars[k]
		fmt.Fprintf(&buf, "typedef %s %s%s;\n", sc.cType, symbolPrefix, sc.alias)
	}
	buf.WriteString("\n")
	for _, k := range tupleKinds {
		parts := strings.Split(k, "_")
		a, b := tupleFields(k)
		name := symbolPrefix + tupleName(k)
		fmt.Fprintf(&buf, "/// Pair of %s and %s.\n", scalars[parts[0]].alias, scalars[parts[1]].alias)
		fmt.Fprintf(&buf, "typedef struct %s {\n", name)
		fmt.Fprintf(&buf, "    %s%s %s;\n", symbolPrefix, scalars[parts[0]].alias, a)
		fmt.Fprintf(&buf, "    %s%s %s;\n", symbolPrefix, scalars[parts[1]].alias, b)
		fmt.Fprintf(&buf, "} %s;\n\n", name)
	}
	for _, s := range syms {
		var params []string
		for _, p := range s.Params {
			params = append(params, symbolPrefix+scalars[p.Type].alias+" "+p.Name)
		}
		doc := s.Doc
		if s.Single {
			doc += " (" + scalars["f32"].alias + ")"
		}
		fmt.Fprintf(&buf, "/// %s\n", doc)
		fmt.Fprintf(&buf, "%s %s%s(%s);\n", cResult(s.Result), symbolPrefix, s.C, strings.Join(params, ", "))
	}
	buf.WriteString(`
#ifdef __cplusplus
} /* extern "C" */
#endif

#endif /* L2MATH_H */
`)
	return buf.Bytes()
}

func cResult(kind string) string {
	if isTuple(kind) {
		return symbolPrefix + tupleName(kind)
	}
	return symbolPrefix + scalars[kind].alias
}
