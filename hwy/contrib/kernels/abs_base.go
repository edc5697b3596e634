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

// Abs computes output[i] = |values[i]| for i in [0, n).
//
// The last partial vector is processed under a tail mask, so n need not be
// a multiple of hwy.VectorWidth and nothing at or beyond n is read or
// written.
func Abs(values, output []float32, n int) error {
	if err := checkLength(n, len(values), len(output)); err != nil {
		return fmt.Errorf("kernels: Abs: %w", err)
	}

	zero := hwy.Zero[float32]()
	for i := 0; i < n; i += hwy.VectorWidth {
		active := hwy.TailMask(n - i)
		var x, result hwy.Vec[float32]

		hwy.Load(&x, values[i:], active)
		negative := hwy.LessThan(x, zero, active)
		hwy.Sub(&result, zero, x, negative)
		hwy.Move(&result, x, hwy.MaskAndNot(negative, active))

		hwy.Store(output[i:], result, active)
	}
	return nil
}
