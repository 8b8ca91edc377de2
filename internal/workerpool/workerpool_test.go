package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"explicit", 4, 4},
		{"default", 0, runtime.GOMAXPROCS(0)},
		{"negative", -3, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := New(tt.n)
			defer pool.Close()
			if got := pool.NumWorkers(); got != tt.want {
				t.Errorf("NumWorkers() = %d, want %d", got, tt.want)
			}
		})
	}
}

// coverage checks that every index in [0, n) was visited exactly once.
func coverage(t *testing.T, visits []atomic.Int32) {
	t.Helper()
	for i := range visits {
		if got := visits[i].Load(); got != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, got)
		}
	}
}

func TestParallelFor(t *testing.T) {
	for _, n := range []int{1, 3, 100, 1001} {
		pool := New(4)
		visits := make([]atomic.Int32, n)
		pool.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				visits[i].Add(1)
			}
		})
		pool.Close()
		coverage(t, visits)
	}
}

func TestParallelForEach(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	n := 257
	visits := make([]atomic.Int32, n)
	pool.ParallelForEach(n, func(i int) {
		visits[i].Add(1)
	})
	coverage(t, visits)
}

func TestParallelForBatched(t *testing.T) {
	tests := []struct {
		name      string
		n, batch  int
		wantLarge int
	}{
		{"even", 100, 10, 10},
		{"ragged", 103, 10, 10},
		{"zero_batch", 20, 0, 1},
		{"single_batch", 5, 64, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := New(4)
			defer pool.Close()
			visits := make([]atomic.Int32, tt.n)
			var largest atomic.Int32
			pool.ParallelForBatched(tt.n, tt.batch, func(start, end int) {
				for {
					cur := largest.Load()
					if int32(end-start) <= cur || largest.CompareAndSwap(cur, int32(end-start)) {
						break
					}
				}
				for i := start; i < end; i++ {
					visits[i].Add(1)
				}
			})
			coverage(t, visits)
			if got := int(largest.Load()); got != tt.wantLarge {
				t.Errorf("largest batch = %d, want %d", got, tt.wantLarge)
			}
		})
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	var called bool
	pool.ParallelFor(0, func(start, end int) { called = true })
	pool.ParallelForBatched(-1, 8, func(start, end int) { called = true })
	if called {
		t.Error("fn called for an empty range")
	}
}

func TestAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	n := 50
	visits := make([]atomic.Int32, n)
	pool.ParallelForEach(n, func(i int) { visits[i].Add(1) })
	coverage(t, visits)
}

func BenchmarkParallelForBatched(b *testing.B) {
	pool := New(0)
	defer pool.Close()
	data := make([]float64, 1<<16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		pool.ParallelForBatched(len(data), 4096, func(start, end int) {
			for j := start; j < end; j++ {
				data[j] += 1
			}
		})
	}
}
