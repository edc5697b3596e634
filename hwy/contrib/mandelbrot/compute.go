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

package mandelbrot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ajroetker/go-lanes/hwy"
	"github.com/ajroetker/go-lanes/hwy/contrib/workerpool"
)

// MaxWorkers is the largest worker count Compute accepts.
const MaxWorkers = 32

// Params describes one image: the viewport, its size in pixels and the
// iteration cap. Params are shared read-only by all workers.
type Params struct {
	View          Viewport
	Width         int
	Height        int
	MaxIterations int
}

// Pixels returns Width*Height.
func (p Params) Pixels() int {
	return p.Width * p.Height
}

// Validate reports ErrInvalidSize for a non-positive width or height or a
// negative iteration cap.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 || p.MaxIterations < 0 {
		return fmt.Errorf("%dx%d, max iterations %d: %w", p.Width, p.Height, p.MaxIterations, ErrInvalidSize)
	}
	return nil
}

func (p Params) validate(out []int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(out) < p.Pixels() {
		return fmt.Errorf("len %d < %d: %w", len(out), p.Pixels(), ErrShortBuffer)
	}
	return nil
}

// CheckWorkers reports ErrTooManyWorkers or ErrNoWorkers when n is outside
// [1, MaxWorkers].
func CheckWorkers(n int) error {
	if n > MaxWorkers {
		return fmt.Errorf("requested %d: %w", n, ErrTooManyWorkers)
	}
	if n < 1 {
		return fmt.Errorf("requested %d: %w", n, ErrNoWorkers)
	}
	return nil
}

// Worker is the per-worker descriptor for one Compute call. It exists
// only for the duration of that call.
type Worker struct {
	ID         int
	NumWorkers int
	Policy     Policy
	Params     *Params
	Output     []int
}

// Rows returns the rows this worker writes.
func (w *Worker) Rows() []int {
	return Rows(w.Policy, w.ID, w.NumWorkers, w.Params.Height)
}

// Run computes every row the worker owns.
func (w *Worker) Run() {
	p := *w.Params
	if w.Policy == Contiguous {
		start, end := blockRange(w.ID, w.NumWorkers, p.Height)
		Serial(p, start, end-start, w.Output)
		return
	}
	for row := w.ID; row < p.Height; row += w.NumWorkers {
		Serial(p, row, 1, w.Output)
	}
}

// Compute fills out[0:p.Width*p.Height] with escape-time counts using
// numWorkers workers and the given partitioning policy.
//
// numWorkers-1 goroutines are started and the calling goroutine acts as
// worker 0; Compute returns once all of them have finished. It returns
// ErrTooManyWorkers if numWorkers exceeds MaxWorkers.
func Compute(numWorkers int, policy Policy, p Params, out []int) error {
	if err := CheckWorkers(numWorkers); err != nil {
		return err
	}
	pool := workerpool.New(numWorkers)
	defer pool.Close()
	return ComputeWith(pool, policy, p, out)
}

// ComputeWith is Compute on an existing executor; the worker count is
// pool.NumWorkers().
func ComputeWith(pool workerpool.Executor, policy Policy, p Params, out []int) error {
	numWorkers := pool.NumWorkers()
	if err := CheckWorkers(numWorkers); err != nil {
		return err
	}
	if err := p.validate(out); err != nil {
		return err
	}

	log := hwy.Logger()
	workers := make([]Worker, numWorkers)
	for i := range workers {
		workers[i] = Worker{
			ID:         i,
			NumWorkers: numWorkers,
			Policy:     policy,
			Params:     &p,
			Output:     out,
		}
	}

	return pool.Run(func(id int) error {
		w := &workers[id]
		w.Run()
		if log.Enabled(context.Background(), slog.LevelDebug) {
			log.Debug("mandelbrot worker done", "worker", id, "policy", policy.String(), "rows", len(w.Rows()))
		}
		return nil
	})
}
