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

// TailMask creates a mask with the first count lanes active.
// It is the mask to use for the remainder of an array whose length is
// not a multiple of VectorWidth.
//
// Example:
//
//	remaining := len(data) % hwy.VectorWidth
//	if remaining > 0 {
//	    mask := hwy.TailMask(remaining)
//	    var v hwy.Vec[float32]
//	    hwy.Load(&v, data[len(data)-remaining:], mask)
//	    // ... process tail
//	    hwy.Store(output[len(output)-remaining:], v, mask)
//	}
func TailMask(count int) Mask {
	return FirstN(count)
}

// ProcessWithTail calls fullFn(offset) for each full vector of a size-element
// array and then, if size is not a multiple of VectorWidth, calls
// tailFn(offset, count) once for the remaining count elements.
//
// Example:
//
//	hwy.ProcessWithTail(n,
//	    func(offset int) {
//	        // full vector at data[offset:]
//	    },
//	    func(offset, count int) {
//	        // scalar or masked handling of data[offset:offset+count]
//	    },
//	)
func ProcessWithTail(size int, fullFn func(offset int), tailFn func(offset, count int)) {
	fullVectors := size / VectorWidth
	for i := range fullVectors {
		fullFn(i * VectorWidth)
	}

	remaining := size % VectorWidth
	if remaining > 0 && tailFn != nil {
		tailFn(fullVectors*VectorWidth, remaining)
	}
}
