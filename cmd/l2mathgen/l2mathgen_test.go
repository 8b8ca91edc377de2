package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testManifest = `package: example.com/fake/kernel
exports:
  - c: sin
    params: [{name: "x", type: f64}]
    result: f64
    doc: Sine of x.
  - c: frexp
    go: Frexp
    params: [{name: "x", type: f64}]
    result: f64_i32
    doc: Splits x.
  - c: jn
    params: [{name: "n", type: i32}, {name: "x", type: f64}]
    result: f64
    doc: Bessel function of order n.
  - c: factorial
    go: Factorial
    params: [{name: "x", type: f64}]
    result: f64
    doc: Factorial.
    noFloat32: true
`

const testPackage = `package kernel

func Sin(x float64) float64 { return x }
func Sinf(x float32) float32 { return x }
func Frexp(x float64) (float64, int32) { return x, 0 }
func Frexpf(x float32) (frac float32, exp int32) { return x, 0 }
func Jn(n int32, x float64) float64 { return x }
func Jnf(n int32, x float32) float32 { return x }
func Factorial(x float64) float64 { return x }
func unexported(x float64) float64 { return x }
`

func writePackage(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "kernel.go"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "kernel_test.go"), []byte("package kernel\n\nfunc Ignored() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(testManifest))
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	syms := m.Symbols()
	var names []string
	for _, s := range syms {
		names = append(names, s.C+"="+s.Go)
	}
	want := "sin=Sin sinf=Sinf frexp=Frexp frexpf=Frexpf jn=Jn jnf=Jnf factorial=Factorial"
	if got := strings.Join(names, " "); got != want {
		t.Errorf("Symbols() = %s, want %s", got, want)
	}
	jnf := syms[5]
	if !jnf.Single || jnf.Params[0].Type != "i32" || jnf.Params[1].Type != "f32" || jnf.Result != "f32" {
		t.Errorf("jnf = %+v", jnf)
	}
	if syms[3].Result != "f32_i32" {
		t.Errorf("frexpf result = %q, want f32_i32", syms[3].Result)
	}
}

func TestParseManifestDefaultGoName(t *testing.T) {
	data := `package: p
exports:
  - c: log1p
    params: [{name: "x", type: f64}]
    result: f64
    doc: d.
  - c: atan2
    params: [{name: "y", type: f64}, {name: "x", type: f64}]
    result: f64
    doc: d.
  - c: lgamma_r
    go: LgammaR
    params: [{name: "x", type: f64}]
    result: f64_i32
    doc: d.
    noFloat32: true
`
	m, err := ParseManifest([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Log1p", "Atan2", "LgammaR"}
	for i, e := range m.Exports {
		if e.Go != want[i] {
			t.Errorf("Exports[%d].Go = %q, want %q", i, e.Go, want[i])
		}
	}
	if got := m.Symbols()[1].Go; got != "Log1pf" {
		t.Errorf("float32 sibling Go name = %q, want Log1pf", got)
	}
}

func TestParseManifestErrors(t *testing.T) {
	entry := func(c, typ, result string) string {
		return "  - c: " + c + "\n    go: F\n    params: [{name: \"x\", type: " + typ + "}]\n    result: " + result + "\n    doc: d.\n"
	}
	tests := []struct {
		name string
		data string
	}{
		{"MissingPackage", "exports:\n" + entry("a", "f64", "f64")},
		{"NoExports", "package: p\nexports: []\n"},
		{"Duplicate", "package: p\nexports:\n" + entry("a", "f64", "f64") + entry("a", "f64", "f64")},
		{"DuplicateAfterExpansion", "package: p\nexports:\n" + entry("a", "f64", "f64") + entry("af", "f64", "f64")},
		{"UnknownParam", "package: p\nexports:\n" + entry("a", "f16", "f64")},
		{"UnknownResult", "package: p\nexports:\n" + entry("a", "f64", "f64_f32")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.data))
			if !errors.Is(err, errManifest) {
				t.Errorf("ParseManifest error = %v, want %v", err, errManifest)
			}
		})
	}

	if _, err := ParseManifest([]byte("package: p\nbogus: 1\n")); err == nil {
		t.Error("ParseManifest accepted an unknown field")
	}
}

func TestParseSignatures(t *testing.T) {
	sigs, err := ParseSignatures(writePackage(t, testPackage))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		want string
	}{
		{"Sin", "func(float64) (float64)"},
		{"Frexp", "func(float64) (float64, int32)"},
		{"Frexpf", "func(float32) (float32, int32)"},
		{"Jn", "func(int32, float64) (float64)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sigs[tt.name].String(); got != tt.want {
				t.Errorf("signature of %s = %s, want %s", tt.name, got, tt.want)
			}
		})
	}
	for _, name := range []string{"unexported", "Ignored"} {
		if _, ok := sigs[name]; ok {
			t.Errorf("ParseSignatures returned %s", name)
		}
	}
}

func TestCheckSignatures(t *testing.T) {
	m, err := ParseManifest([]byte(testManifest))
	if err != nil {
		t.Fatal(err)
	}
	sigs, err := ParseSignatures(writePackage(t, testPackage))
	if err != nil {
		t.Fatal(err)
	}
	if err := CheckSignatures(m.Symbols(), sigs); err != nil {
		t.Fatalf("CheckSignatures: %v", err)
	}

	broken := strings.Replace(testPackage, "func Jnf(n int32, x float32)", "func Jnf(n int, x float32)", 1)
	broken = strings.Replace(broken, "func Sinf(x float32) float32 { return x }\n", "", 1)
	sigs, err = ParseSignatures(writePackage(t, broken))
	if err != nil {
		t.Fatal(err)
	}
	err = CheckSignatures(m.Symbols(), sigs)
	if !errors.Is(err, errUnknownFunction) {
		t.Errorf("CheckSignatures error = %v, want %v", err, errUnknownFunction)
	}
	if !errors.Is(err, errSignatureMismatch) {
		t.Errorf("CheckSignatures error = %v, want %v", err, errSignatureMismatch)
	}
}

func TestTupleName(t *testing.T) {
	tests := []struct {
		kind, want string
	}{
		{"f64_i32", "Tuple_Float64_Int"},
		{"f32_i32", "Tuple_Float32_Int"},
		{"f64_f64", "Tuple_Float64_Float64"},
		{"f32_f32", "Tuple_Float32_Float32"},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			if got := tupleName(tt.kind); got != tt.want {
				t.Errorf("tupleName(%q) = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestEmit(t *testing.T) {
	m, err := ParseManifest([]byte(testManifest))
	if err != nil {
		t.Fatal(err)
	}
	src, err := EmitGo(m.Package, m.Symbols())
	if err != nil {
		t.Fatalf("EmitGo: %v", err)
	}
	goWant := []string{
		"// Code generated by l2mathgen. DO NOT EDIT.",
		`import "C"`,
		`import kernel "example.com/fake/kernel"`,
		"//export __l2math_sinf\nfunc __l2math_sinf(x C.float) C.float {",
		"return C.double(kernel.Jn(int32(n), float64(x)))",
		"r0, r1 := kernel.Frexpf(float32(x))",
		"return C.__l2math_Tuple_Float32_Int{f: C.float(r0), i: C.int(r1)}",
	}
	for _, want := range goWant {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated Go missing %q:\n%s", want, src)
		}
	}
	if strings.Contains(string(src), "factorialf") {
		t.Error("generated Go exports factorialf")
	}

	hdr := string(EmitHeader(m.Symbols()))
	hdrWant := []string{
		"#ifndef L2MATH_H",
		"typedef int __l2math_Int;",
		"} __l2math_Tuple_Float64_Float64;",
		"/// Sine of x. (Float32)\n__l2math_Float32 __l2math_sinf(__l2math_Float32 x);",
		"__l2math_Tuple_Float64_Int __l2math_frexp(__l2math_Float64 x);",
		"__l2math_Float64 __l2math_jn(__l2math_Int n, __l2math_Float64 x);",
		"#endif /* L2MATH_H */",
	}
	for _, want := range hdrWant {
		if !strings.Contains(hdr, want) {
			t.Errorf("generated header missing %q", want)
		}
	}
}

func TestGeneratorRun(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "exports.yaml")
	if err := os.WriteFile(manifestPath, []byte(testManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	gen := &Generator{
		Manifest:  manifestPath,
		PkgDir:    writePackage(t, testPackage),
		GoOut:     filepath.Join(dir, "out", "exports.gen.go"),
		HeaderOut: filepath.Join(dir, "include", "l2math.h"),
	}
	if err := gen.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, name := range []string{gen.GoOut, gen.HeaderOut} {
		if _, err := os.Stat(name); err != nil {
			t.Errorf("output %s: %v", name, err)
		}
	}

	gen.PkgDir = writePackage(t, "package kernel\n")
	gen.GoOut = filepath.Join(dir, "never.go")
	if err := gen.Run(); !errors.Is(err, errUnknownFunction) {
		t.Errorf("Run error = %v, want %v", err, errUnknownFunction)
	}
	if _, err := os.Stat(gen.GoOut); !os.IsNotExist(err) {
		t.Errorf("Run wrote %s despite a failed check", gen.GoOut)
	}
}

// The checked-in manifest must match the kernel and the checked-in header.
func TestRepositoryManifest(t *testing.T) {
	m, err := LoadManifest("../libl2math/exports.yaml")
	if err != nil {
		t.Fatal(err)
	}
	syms := m.Symbols()
	if len(syms) != 120 {
		t.Errorf("manifest expands to %d symbols, want 120", len(syms))
	}
	sigs, err := ParseSignatures("../../l2math")
	if err != nil {
		t.Fatal(err)
	}
	if err := CheckSignatures(syms, sigs); err != nil {
		t.Fatal(err)
	}

	hdr, err := os.ReadFile("../../include/l2math.h")
	if err != nil {
		t.Fatal(err)
	}
	if got := string(EmitHeader(syms)); got != string(hdr) {
		t.Error("include/l2math.h is stale, run go generate ./cmd/libl2math")
	}
	gen, err := os.ReadFile("../libl2math/exports.gen.go")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range syms {
		if !strings.Contains(string(gen), "//export __l2math_"+s.C+"\n") {
			t.Errorf("exports.gen.go is missing %s", s.C)
		}
	}
}
