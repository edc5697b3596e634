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
	"errors"
	"fmt"
)

var (
	// ErrNegativeLength is returned when the element count is negative.
	ErrNegativeLength = errors.New("kernels: negative element count")

	// ErrShortBuffer is returned when a slice holds fewer than n elements.
	ErrShortBuffer = errors.New("kernels: buffer shorter than element count")

	// ErrNotMultipleOfWidth is returned by ArraySum when n is not a
	// multiple of hwy.VectorWidth.
	ErrNotMultipleOfWidth = errors.New("kernels: element count is not a multiple of the vector width")
)

// checkLength verifies that n is usable with every buffer length in lens.
func checkLength(n int, lens ...int) error {
	if n < 0 {
		return fmt.Errorf("n=%d: %w", n, ErrNegativeLength)
	}
	for _, l := range lens {
		if l < n {
			return fmt.Errorf("n=%d, len=%d: %w", n, l, ErrShortBuffer)
		}
	}
	return nil
}
