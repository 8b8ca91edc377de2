package l2math

import (
	stdmath "math"
	"sync"
	"testing"
)

// The kernel keeps no mutable state, so concurrent callers must observe
// exactly the single-threaded results.
func TestConcurrentCallers(t *testing.T) {
	xs := uniform(newRand(), 4096, -50, 50)
	fns := []func(float64) float64{Sin, Cos, Tan, Exp, Expm1, Erf, Lgamma, J0, Y1, Cbrt, Atan, Tanh}
	eval := func(out []float64) {
		for i, x := range xs {
			var acc float64
			for _, fn := range fns {
				acc += fn(x)
			}
			p, _ := Frexp(Fabs(x) + 1)
			s, c := Sincos(x)
			out[i] = acc + p + s*c + Pow(stdmath.Abs(x)+0.5, 1.5)
		}
	}
	want := make([]float64, len(xs))
	eval(want)

	const workers = 8
	results := make([][]float64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		results[w] = make([]float64, len(xs))
		wg.Add(1)
		go func() {
			defer wg.Done()
			eval(results[w])
		}()
	}
	wg.Wait()
	for w, got := range results {
		for i := range got {
			if stdmath.Float64bits(got[i]) != stdmath.Float64bits(want[i]) && !(stdmath.IsNaN(got[i]) && stdmath.IsNaN(want[i])) {
				t.Fatalf("worker %d: result %d = %v, want %v", w, i, got[i], want[i])
			}
		}
	}
}
