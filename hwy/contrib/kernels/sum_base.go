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

// ArraySum returns the sum of values[0:n].
//
// n must be a multiple of hwy.VectorWidth; otherwise ErrNotMultipleOfWidth
// is returned. Full vectors are accumulated lane-wise into a running sum,
// which is then folded to a scalar with log2(hwy.VectorWidth) rounds of
// horizontal add and interleave. The association order differs from
// ArraySumSerial, so results agree only up to float32 rounding.
func ArraySum(values []float32, n int) (float32, error) {
	if err := checkLength(n, len(values)); err != nil {
		return 0, fmt.Errorf("kernels: ArraySum: %w", err)
	}
	if n%hwy.VectorWidth != 0 {
		return 0, fmt.Errorf("kernels: ArraySum: n=%d, width=%d: %w", n, hwy.VectorWidth, ErrNotMultipleOfWidth)
	}

	all := hwy.MaskAll()
	sum := hwy.Zero[float32]()
	var chunk hwy.Vec[float32]
	for i := 0; i < n; i += hwy.VectorWidth {
		hwy.Load(&chunk, values[i:i+hwy.VectorWidth], all)
		hwy.Add(&sum, sum, chunk, all)
	}
	return hwy.ReduceSum(sum), nil
}
