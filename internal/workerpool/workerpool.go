// Copyright 2025 The arc Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs index-range sweeps on a fixed set of goroutines.
//
// The golden-vector tools evaluate every kernel function over hundreds of
// thousands of inputs, one function after another. A Pool is started once
// per run and reused for every sweep:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, fn := range funcs {
//	    pool.ParallelForBatched(len(inputs), 4096, func(start, end int) {
//	        evaluate(fn, inputs[start:end], out[start:end])
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool owns a set of long-lived worker goroutines.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts numWorkers workers. If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for iter := 0; iter < numWorkers; iter++ {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued work has drained. It is safe to call
// Close more than once; sweeps started afterwards run on the caller's
// goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// split fans count tasks out to the workers and waits for all of them.
func (p *Pool) split(count int, run func(worker int)) {
	var wg sync.WaitGroup
	wg.Add(count)
	for w := 0; w < count; w++ {
		w := w
		p.tasks <- task{run: func() { run(w) }, done: &wg}
	}
	wg.Wait()
}

// ParallelFor calls fn over contiguous, equally sized chunks of [0, n), one
// chunk per worker, and returns when every chunk is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	p.split(workers, func(w int) {
		start := w * chunk
		if start >= n {
			return
		}
		fn(start, min(start+chunk, n))
	})
}

// ParallelForEach calls fn(i) for every i in [0, n). Workers claim indices
// one at a time, which balances uneven per-index cost.
func (p *Pool) ParallelForEach(n int, fn func(i int)) {
	p.ParallelForBatched(n, 1, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// ParallelForBatched calls fn over [0, n) in batches of at most batchSize
// indices. Workers claim the next batch with an atomic counter until the
// range is exhausted.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	batches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, batches)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	p.split(workers, func(int) {
		for {
			start := int(next.Add(1)-1) * batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	})
}
