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

package workerpool

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNewClampsWorkers(t *testing.T) {
	for _, n := range []int{-3, 0, 1} {
		if got := New(n).NumWorkers(); got != 1 {
			t.Errorf("New(%d).NumWorkers() = %d, want 1", n, got)
		}
	}
	if got := New(7).NumWorkers(); got != 7 {
		t.Errorf("New(7).NumWorkers() = %d, want 7", got)
	}
}

func TestRunVisitsEveryWorkerOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 5, 32} {
		pool := New(workers)
		seen := make([]int32, workers)
		err := pool.Run(func(worker int) error {
			atomic.AddInt32(&seen[worker], 1)
			return nil
		})
		if err != nil {
			t.Fatalf("workers=%d: Run: %v", workers, err)
		}
		for w, n := range seen {
			if n != 1 {
				t.Errorf("workers=%d: worker %d ran %d times", workers, w, n)
			}
		}
		pool.Close()
	}
}

func TestRunJoinsBeforeReturning(t *testing.T) {
	pool := New(runtime.GOMAXPROCS(0) + 2)
	defer pool.Close()

	var done atomic.Int32
	_ = pool.ForEachWorker(func(worker int) {
		// Give the spawned workers a chance to still be running when
		// worker 0 returns.
		for range 1000 {
			runtime.Gosched()
		}
		done.Add(1)
	})
	if got := int(done.Load()); got != pool.NumWorkers() {
		t.Errorf("%d workers finished before Run returned, want %d", got, pool.NumWorkers())
	}
}

func TestRunReturnsWorkerError(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	boom := errors.New("boom")
	err := pool.Run(func(worker int) error {
		if worker == 3 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("Run error = %v, want %v", err, boom)
	}

	err = pool.Run(func(worker int) error {
		if worker == 0 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("Run error from worker 0 = %v, want %v", err, boom)
	}
}

func TestClosedPool(t *testing.T) {
	pool := New(3)
	pool.Close()
	if err := pool.Run(func(int) error { return nil }); !errors.Is(err, ErrClosed) {
		t.Errorf("Run on closed pool = %v, want ErrClosed", err)
	}

	var covered []int
	pool.ParallelFor(5, func(start, end int) {
		for i := start; i < end; i++ {
			covered = append(covered, i)
		}
	})
	if len(covered) != 5 {
		t.Errorf("ParallelFor on closed pool covered %v, want 0..4", covered)
	}
}

func TestParallelForCoversRange(t *testing.T) {
	for _, workers := range []int{1, 3, 8} {
		for _, n := range []int{0, 1, 2, 7, 8, 100} {
			pool := New(workers)
			hits := make([]int32, n)
			var mu sync.Mutex
			chunks := 0
			pool.ParallelFor(n, func(start, end int) {
				mu.Lock()
				chunks++
				mu.Unlock()
				for i := start; i < end; i++ {
					atomic.AddInt32(&hits[i], 1)
				}
			})
			for i, h := range hits {
				if h != 1 {
					t.Errorf("workers=%d n=%d: index %d visited %d times", workers, n, i, h)
				}
			}
			if chunks > workers {
				t.Errorf("workers=%d n=%d: %d chunks", workers, n, chunks)
			}
			pool.Close()
		}
	}
}

func BenchmarkForkJoin(b *testing.B) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()
	for range b.N {
		_ = pool.ForEachWorker(func(int) {})
	}
}
