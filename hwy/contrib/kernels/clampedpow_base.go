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

package kernels

import (
	"fmt"

	"github.com/ajroetker/go-lanes/hwy"
)

// ClampedPow computes output[i] = min(values[i]^exponents[i], ClampMax) for
// i in [0, n). An exponent of 0 yields exactly 1, including 0^0.
//
// Full vectors are computed with masked operations: the exponent==0 branch
// and its complement are two masks, and the repeated multiplication is a
// masked loop that keeps running while any lane still has a positive
// counter. The last n mod hwy.VectorWidth elements are computed by
// ClampedPowSerial. Elements of output at or beyond n are never written.
func ClampedPow(values []float32, exponents []int32, output []float32, n int) error {
	if err := checkLength(n, len(values), len(exponents), len(output)); err != nil {
		return fmt.Errorf("kernels: ClampedPow: %w", err)
	}

	zeroI := hwy.Zero[int32]()
	oneI := hwy.Set[int32](1)
	oneF := hwy.Set[float32](1)
	clamp := hwy.Set(ClampMax)
	all := hwy.MaskAll()

	hwy.ProcessWithTail(n,
		func(offset int) {
			end := offset + hwy.VectorWidth
			var x, result hwy.Vec[float32]
			var y, count hwy.Vec[int32]

			hwy.Load(&x, values[offset:end], all)
			hwy.Load(&y, exponents[offset:end], all)

			isZero := hwy.Equal(y, zeroI, all)
			hwy.Move(&result, oneF, isZero)

			notZero := hwy.MaskNot(isZero)
			hwy.Move(&result, x, notZero)
			hwy.Sub(&count, y, oneI, notZero)

			loop := hwy.GreaterThan(count, zeroI, notZero)
			for hwy.CountTrue(loop) > 0 {
				hwy.Mul(&result, result, x, loop)
				hwy.Sub(&count, count, oneI, loop)
				loop = hwy.GreaterThan(count, zeroI, loop)
			}

			over := hwy.GreaterThan(result, clamp, notZero)
			hwy.Move(&result, clamp, over)

			hwy.Store(output[offset:end], result, all)
		},
		func(offset, count int) {
			hwy.Logger().Debug("clamped pow scalar tail", "offset", offset, "count", count)
			end := offset + count
			ClampedPowSerial(values[offset:end], exponents[offset:end], output[offset:end])
		},
	)
	return nil
}
