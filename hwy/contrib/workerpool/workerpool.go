// Copyright 2025 go-highway Authors
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

// Package workerpool provides fork-join execution over a fixed number of
// workers.
//
// A call to Run (or one of its helpers) forks NumWorkers()-1 goroutines,
// runs worker 0 on the calling goroutine, and returns only after every
// worker has returned. There is no shared state between workers beyond
// what the callback captures; callers are expected to give each worker a
// disjoint region of any output they write.
package workerpool

import (
	"errors"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-lanes/hwy"
)

// ErrClosed is returned when work is submitted to a closed Pool.
var ErrClosed = errors.New("workerpool: pool is closed")

// Executor runs fork-join work on a fixed set of workers.
type Executor interface {
	// NumWorkers returns how many workers each call fans out to.
	NumWorkers() int

	// Run calls fn once per worker id in [0, NumWorkers()) concurrently and
	// waits for all of them. It returns the first non-nil error.
	Run(fn func(worker int) error) error

	// ParallelFor splits [0, n) into at most NumWorkers() contiguous chunks
	// and calls fn(start, end) for each non-empty chunk concurrently.
	ParallelFor(n int, fn func(start, end int))
}

// Pool is the default Executor.
type Pool struct {
	workers int
	closed  atomic.Bool
}

// New returns a pool that fans out to the given number of workers.
// Values below 1 are treated as 1.
func New(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// NumWorkers returns the worker count.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Run forks workers 1..NumWorkers()-1 onto new goroutines, runs worker 0 on
// the calling goroutine and joins.
func (p *Pool) Run(fn func(worker int) error) error {
	if p.closed.Load() {
		return ErrClosed
	}

	log := hwy.Logger()
	log.Debug("workerpool fork", "workers", p.workers)

	var g errgroup.Group
	for w := 1; w < p.workers; w++ {
		g.Go(func() error {
			return fn(w)
		})
	}
	err0 := fn(0)
	err := g.Wait()

	log.Debug("workerpool join", "workers", p.workers)
	if err0 != nil {
		return err0
	}
	return err
}

// ForEachWorker is Run for callbacks that cannot fail.
func (p *Pool) ForEachWorker(fn func(worker int)) error {
	return p.Run(func(worker int) error {
		fn(worker)
		return nil
	})
}

// ParallelFor splits [0, n) into contiguous chunks of ceil(n/NumWorkers())
// and processes them concurrently. Work submitted after Close runs serially
// on the caller.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	chunk := (n + p.workers - 1) / p.workers
	err := p.ForEachWorker(func(worker int) {
		start := worker * chunk
		end := min(start+chunk, n)
		if start < end {
			fn(start, end)
		}
	})
	if errors.Is(err, ErrClosed) {
		fn(0, n)
	}
}

// Close marks the pool closed. Subsequent calls to Run return ErrClosed.
func (p *Pool) Close() {
	p.closed.Store(true)
}
