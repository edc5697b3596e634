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

// Package kernels provides elementwise and reduction kernels written
// entirely in terms of masked hwy operations.
//
// Each kernel has a scalar reference (the *Serial functions) that defines
// its result; the vector version must match it lane for lane. Per-lane
// branches become complementary masks and per-lane loops become a masked
// while-loop that runs until no lane is still active:
//
//	loop := hwy.GreaterThan(count, zero, active)
//	for hwy.CountTrue(loop) > 0 {
//	    hwy.Mul(&result, result, x, loop)
//	    hwy.Sub(&count, count, one, loop)
//	    loop = hwy.GreaterThan(count, zero, loop)
//	}
//
// # Kernels
//
//   - ClampedPow: values[i]^exponents[i], clamped to ClampMax. Works for any n;
//     the last n mod hwy.VectorWidth elements use the scalar reference.
//   - ArraySum: sum of n values; n must be a multiple of hwy.VectorWidth.
//   - Abs: absolute value for any n, with the tail handled by a tail mask.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-lanes/hwy/contrib/kernels"
//
//	values := []float32{0.5, 2, -1, 3, 1.5}
//	exps := []int32{2, 0, 3, 4, 1}
//	out := make([]float32, len(values))
//	if err := kernels.ClampedPow(values, exps, out, len(values)); err != nil {
//	    return err
//	}
//	// out = [0.25, 1, -1, 9.999999, 1.5]
package kernels
