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

package hwy

import "testing"

func TestTailMask(t *testing.T) {
	for count := 0; count <= VectorWidth; count++ {
		if got := CountTrue(TailMask(count)); got != count {
			t.Errorf("TailMask(%d) has %d active lanes", count, got)
		}
	}
}

func TestProcessWithTail(t *testing.T) {
	for _, size := range []int{0, 1, VectorWidth - 1, VectorWidth, 3*VectorWidth + 1} {
		var fullOffsets []int
		tailOffset, tailCount := -1, 0
		ProcessWithTail(size,
			func(offset int) { fullOffsets = append(fullOffsets, offset) },
			func(offset, count int) { tailOffset, tailCount = offset, count },
		)

		if want := size / VectorWidth; len(fullOffsets) != want {
			t.Errorf("size %d: %d full vectors, want %d", size, len(fullOffsets), want)
		}
		for i, off := range fullOffsets {
			if off != i*VectorWidth {
				t.Errorf("size %d: full offset %d = %d", size, i, off)
			}
		}
		covered := len(fullOffsets)*VectorWidth + tailCount
		if covered != size {
			t.Errorf("size %d: covered %d elements", size, covered)
		}
		if tailCount > 0 && tailOffset != len(fullOffsets)*VectorWidth {
			t.Errorf("size %d: tail offset %d", size, tailOffset)
		}
	}
}
