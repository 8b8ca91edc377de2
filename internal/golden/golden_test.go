package golden

import (
	"bytes"
	"errors"
	stdmath "math"
	"testing"

	"github.com/DranikiRobotics/arc/internal/workerpool"
)

func testPool(t *testing.T) *workerpool.Pool {
	pool := workerpool.New(4)
	t.Cleanup(pool.Close)
	return pool
}

func TestRegistry(t *testing.T) {
	names := Names()
	if len(names) != 120 {
		t.Errorf("len(Names()) = %d, want 120", len(names))
	}
	for _, name := range names {
		f, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}
		if len(f.Args) == 0 || len(f.Args) > 3 || len(f.Results) == 0 || len(f.Results) > 2 {
			t.Errorf("%s: %d args, %d results", name, len(f.Args), len(f.Results))
		}
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		list    string
		want    int
		wantErr error
	}{
		{"all", "all", 120, nil},
		{"empty", "", 120, nil},
		{"list", "sin, cosf,sin", 2, nil},
		{"unknown", "sin,sine", 0, ErrUnknownFunction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			funcs, err := Select(tt.list)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Select(%q) error = %v, want %v", tt.list, err, tt.wantErr)
			}
			if len(funcs) != tt.want {
				t.Errorf("Select(%q) returned %d functions, want %d", tt.list, len(funcs), tt.want)
			}
		})
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		args [3]uint64
		want [2]uint64
	}{
		{"sqrt", [3]uint64{stdmath.Float64bits(4)}, [2]uint64{stdmath.Float64bits(2)}},
		{"sqrtf", [3]uint64{uint64(stdmath.Float32bits(9))}, [2]uint64{uint64(stdmath.Float32bits(3))}},
		{"frexp", [3]uint64{stdmath.Float64bits(8)}, [2]uint64{stdmath.Float64bits(0.5), 4}},
		{"remquo", [3]uint64{stdmath.Float64bits(-5), stdmath.Float64bits(3)}, [2]uint64{stdmath.Float64bits(1), uint64(0xfffffffe)}},
		{"ldexp", [3]uint64{stdmath.Float64bits(1), uint64(0xffffffff)}, [2]uint64{stdmath.Float64bits(0.5)}},
		{"ilogbf", [3]uint64{uint64(stdmath.Float32bits(1024))}, [2]uint64{10}},
		{"jn", [3]uint64{0, 0}, [2]uint64{stdmath.Float64bits(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("Lookup(%q) failed", tt.name)
			}
			if got := f.Eval(tt.args); got != tt.want {
				t.Errorf("%s.Eval = %#x, want %#x", tt.name, got, tt.want)
			}
		})
	}
}

func TestInputs_Deterministic(t *testing.T) {
	f, _ := Lookup("pow")
	a := Inputs(f, 7, 100)
	b := Inputs(f, 7, 100)
	c := Inputs(f, 8, 100)
	if len(a) != len(edges64)*len(edges64)+100 {
		t.Fatalf("len(Inputs) = %d, want %d", len(a), len(edges64)*len(edges64)+100)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("input %d differs between runs with the same seed", i)
		}
	}
	if a[len(a)-1] == c[len(c)-1] {
		t.Errorf("different seeds produced the same last input")
	}
}

func TestInputs_IntegerRange(t *testing.T) {
	for _, name := range []string{"jn", "ynf", "ldexp", "scalbnf"} {
		f, _ := Lookup(name)
		slot := 0
		if f.Args[1] == I32 {
			slot = 1
		}
		for _, args := range Inputs(f, 1, 2000) {
			n := int32(uint32(args[slot]))
			if n < -f.Ints || n > f.Ints {
				t.Fatalf("%s: integer argument %d outside ±%d", name, n, f.Ints)
			}
		}
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	funcs, err := Select("sin,frexpf,fma,remquo,jnf,ilogb")
	if err != nil {
		t.Fatal(err)
	}
	vs := Record(testPool(t), funcs, Options{Seed: 1, N: 500})

	var buf bytes.Buffer
	if err := Write(&buf, vs); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != len(vs) {
		t.Fatalf("Read returned %d vectors, want %d", len(got), len(vs))
	}
	for i := range vs {
		if got[i] != vs[i] {
			t.Fatalf("vector %d = %+v, want %+v", i, got[i], vs[i])
		}
	}
}

func TestRead_Malformed(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if vs, err := Read(bytes.NewReader(buf.Bytes())); err != nil || len(vs) != 0 {
		t.Fatalf("Read(empty file) = %d vectors, %v", len(vs), err)
	}

	// a valid zstd frame around the wrong magic
	var bad bytes.Buffer
	if err := writeRaw(&bad, []byte("NOPE\x01\x00\x00\x00")); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(&bad); !errors.Is(err, ErrFormat) {
		t.Errorf("Read(bad magic) error = %v, want ErrFormat", err)
	}

	var short bytes.Buffer
	if err := writeRaw(&short, []byte("L2GV\x01\x00")); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(&short); !errors.Is(err, ErrFormat) {
		t.Errorf("Read(truncated) error = %v, want ErrFormat", err)
	}
}

func TestVerify(t *testing.T) {
	pool := testPool(t)
	funcs, err := Select("exp,logf,modf,lgamma_r")
	if err != nil {
		t.Fatal(err)
	}
	vs := Record(pool, funcs, Options{Seed: 3, N: 1000})
	if err := Verify(pool, vs); err != nil {
		t.Fatalf("Verify(fresh record) = %v", err)
	}

	tampered := append([]Vector(nil), vs...)
	tampered[0].Result[0] ^= 1 // exp(0)
	err = Verify(pool, tampered)
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("Verify(tampered) = %v, want ErrMismatch", err)
	}

	unknown := []Vector{{Func: "nope"}}
	if err := Verify(pool, unknown); !errors.Is(err, ErrUnknownFunction) {
		t.Errorf("Verify(unknown function) = %v, want ErrUnknownFunction", err)
	}
}

func TestVerify_NaNPayload(t *testing.T) {
	f, _ := Lookup("log")
	arg := stdmath.Float64bits(-1)
	v := Vector{Func: "log", Args: [3]uint64{arg}, Result: f.Eval([3]uint64{arg})}
	v.Result[0] = 0x7ff0000000000001
	if err := Verify(testPool(t), []Vector{v}); err != nil {
		t.Errorf("Verify with a different NaN payload = %v, want nil", err)
	}
}

func TestDigest(t *testing.T) {
	pool := testPool(t)
	funcs, err := Select("cos,tanf,sincos,remquof")
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Seed: 11, N: 300}
	fps := Digest(pool, funcs, opts)
	again := Digest(pool, funcs, opts)
	fromFile, err := DigestVectors(Record(pool, funcs, opts))
	if err != nil {
		t.Fatal(err)
	}
	for i := range fps {
		if fps[i] != again[i] {
			t.Errorf("%s: digest not stable", fps[i].Func)
		}
		if fps[i] != fromFile[i] {
			t.Errorf("%s: Digest %s, DigestVectors %s", fps[i].Func, fps[i], fromFile[i])
		}
	}
	other := Digest(pool, funcs, Options{Seed: 12, N: 300})
	if other[0] == fps[0] {
		t.Errorf("digest ignores the seed")
	}
}
