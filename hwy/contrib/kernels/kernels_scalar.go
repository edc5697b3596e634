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

// ClampMax is the largest value ClampedPow produces.
const ClampMax float32 = 9.999999

// ClampedPowSerial is the scalar reference for ClampedPow. It processes
// min(len(values), len(exponents), len(output)) elements.
//
// An exponent of 0 yields exactly 1. Otherwise the value is multiplied by
// itself exponent-1 times and the result is clamped to ClampMax; a negative
// exponent therefore yields the value itself.
func ClampedPowSerial(values []float32, exponents []int32, output []float32) {
	n := min(len(values), len(exponents), len(output))
	for i := 0; i < n; i++ {
		x := values[i]
		y := exponents[i]
		if y == 0 {
			output[i] = 1
			continue
		}
		result := x
		for count := y - 1; count > 0; count-- {
			result *= x
		}
		if result > ClampMax {
			result = ClampMax
		}
		output[i] = result
	}
}

// AbsSerial is the scalar reference for Abs.
func AbsSerial(values, output []float32) {
	n := min(len(values), len(output))
	for i := 0; i < n; i++ {
		x := values[i]
		if x < 0 {
			output[i] = -x
		} else {
			output[i] = x
		}
	}
}

// ArraySumSerial is the scalar reference for ArraySum.
func ArraySumSerial(values []float32) float32 {
	var sum float32
	for _, v := range values {
		sum += v
	}
	return sum
}
