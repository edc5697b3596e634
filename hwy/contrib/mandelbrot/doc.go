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

// Package mandelbrot computes escape-time images of the Mandelbrot set on a
// fixed number of workers using static row partitioning.
//
// Each worker owns a disjoint set of rows of the caller's output buffer, so
// the workers never synchronize with each other; Compute returns once all of
// them have joined. Two partitioning policies are provided:
//
//   - Contiguous: worker i owns one block of height/numWorkers rows and the
//     last worker also takes the remainder. Blocks near the set boundary cost
//     far more than blocks outside it, so this balances poorly.
//   - Interleaved: worker i owns rows i, i+numWorkers, i+2*numWorkers, ...
//     Neighboring rows have similar cost, so striping spreads the expensive
//     regions evenly across workers.
//
// # Example Usage
//
//	p := mandelbrot.Params{View: mandelbrot.View(1), Width: 1600, Height: 1200, MaxIterations: 256}
//	out := make([]int, p.Width*p.Height)
//	if err := mandelbrot.Compute(8, mandelbrot.Interleaved, p, out); err != nil {
//	    log.Fatal(err)
//	}
package mandelbrot
