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

// This file provides the lane-by-lane implementations of all vector
// operations. Every operation that writes a destination vector takes a Mask
// and only touches the active lanes; inactive lanes keep whatever the
// destination held before the call.

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	var v Vec[T]
	for i := range v.data {
		v.data[i] = value
	}
	record("set", MaskAll())
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	record("set", MaskAll())
	return Vec[T]{}
}

// MaskAll returns a mask with every lane active.
func MaskAll() Mask {
	return FirstN(VectorWidth)
}

// MaskNone returns a mask with every lane inactive.
func MaskNone() Mask {
	return Mask{}
}

// FirstN returns a mask with lanes [0, n) active. n is clamped to
// [0, VectorWidth].
func FirstN(n int) Mask {
	var m Mask
	for i := 0; i < n && i < VectorWidth; i++ {
		m.bits[i] = true
	}
	return m
}

// Load copies src[i] into lane i of dst for every active lane i.
// Lanes at or beyond len(src) are never read and keep their old value.
func Load[T Lanes](dst *Vec[T], src []T, m Mask) {
	n := min(len(src), VectorWidth)
	for i := 0; i < n; i++ {
		if m.bits[i] {
			dst.data[i] = src[i]
		}
	}
	record("load", m)
}

// Store writes lane i of v to dst[i] for every active lane i.
// Elements of dst that are not selected by the mask are left untouched.
func Store[T Lanes](dst []T, v Vec[T], m Mask) {
	n := min(len(dst), VectorWidth)
	for i := 0; i < n; i++ {
		if m.bits[i] {
			dst[i] = v.data[i]
		}
	}
	record("store", m)
}

// Move copies the active lanes of src into dst.
func Move[T Lanes](dst *Vec[T], src Vec[T], m Mask) {
	for i := range dst.data {
		if m.bits[i] {
			dst.data[i] = src.data[i]
		}
	}
	record("move", m)
}

// Add computes dst = a + b on the active lanes.
func Add[T Lanes](dst *Vec[T], a, b Vec[T], m Mask) {
	for i := range dst.data {
		if m.bits[i] {
			dst.data[i] = a.data[i] + b.data[i]
		}
	}
	record("add", m)
}

// Sub computes dst = a - b on the active lanes.
func Sub[T Lanes](dst *Vec[T], a, b Vec[T], m Mask) {
	for i := range dst.data {
		if m.bits[i] {
			dst.data[i] = a.data[i] - b.data[i]
		}
	}
	record("sub", m)
}

// Mul computes dst = a * b on the active lanes.
func Mul[T Lanes](dst *Vec[T], a, b Vec[T], m Mask) {
	for i := range dst.data {
		if m.bits[i] {
			dst.data[i] = a.data[i] * b.data[i]
		}
	}
	record("mul", m)
}

// Div computes dst = a / b on the active lanes.
// Division by zero follows IEEE 754.
func Div[T Floats](dst *Vec[T], a, b Vec[T], m Mask) {
	for i := range dst.data {
		if m.bits[i] {
			dst.data[i] = a.data[i] / b.data[i]
		}
	}
	record("div", m)
}

// Abs computes dst = |v| on the active lanes.
func Abs[T Signed](dst *Vec[T], v Vec[T], m Mask) {
	for i := range dst.data {
		if m.bits[i] {
			val := v.data[i]
			if val < 0 {
				val = -val
			}
			dst.data[i] = val
		}
	}
	record("abs", m)
}

// Min computes the element-wise minimum on the active lanes.
func Min[T Lanes](dst *Vec[T], a, b Vec[T], m Mask) {
	for i := range dst.data {
		if m.bits[i] {
			dst.data[i] = min(a.data[i], b.data[i])
		}
	}
	record("min", m)
}

// Max computes the element-wise maximum on the active lanes.
func Max[T Lanes](dst *Vec[T], a, b Vec[T], m Mask) {
	for i := range dst.data {
		if m.bits[i] {
			dst.data[i] = max(a.data[i], b.data[i])
		}
	}
	record("max", m)
}

// Equal returns the lanes where a == b, restricted to the active lanes of m.
func Equal[T Lanes](a, b Vec[T], m Mask) Mask {
	var out Mask
	for i := range out.bits {
		out.bits[i] = m.bits[i] && a.data[i] == b.data[i]
	}
	record("eq", m)
	return out
}

// LessThan returns the lanes where a < b, restricted to the active lanes of m.
func LessThan[T Lanes](a, b Vec[T], m Mask) Mask {
	var out Mask
	for i := range out.bits {
		out.bits[i] = m.bits[i] && a.data[i] < b.data[i]
	}
	record("lt", m)
	return out
}

// GreaterThan returns the lanes where a > b, restricted to the active lanes of m.
func GreaterThan[T Lanes](a, b Vec[T], m Mask) Mask {
	var out Mask
	for i := range out.bits {
		out.bits[i] = m.bits[i] && a.data[i] > b.data[i]
	}
	record("gt", m)
	return out
}

// MaskNot complements every lane of m.
func MaskNot(m Mask) Mask {
	var out Mask
	for i := range out.bits {
		out.bits[i] = !m.bits[i]
	}
	record("masknot", MaskAll())
	return out
}

// MaskAnd returns the lanes active in both a and b.
func MaskAnd(a, b Mask) Mask {
	var out Mask
	for i := range out.bits {
		out.bits[i] = a.bits[i] && b.bits[i]
	}
	record("maskand", MaskAll())
	return out
}

// MaskOr returns the lanes active in either a or b.
func MaskOr(a, b Mask) Mask {
	var out Mask
	for i := range out.bits {
		out.bits[i] = a.bits[i] || b.bits[i]
	}
	record("maskor", MaskAll())
	return out
}

// MaskAndNot returns the lanes active in b but not in a.
func MaskAndNot(a, b Mask) Mask {
	var out Mask
	for i := range out.bits {
		out.bits[i] = !a.bits[i] && b.bits[i]
	}
	record("maskandnot", MaskAll())
	return out
}

// CountTrue returns the number of active lanes in m. A masked loop keeps
// running while CountTrue of its loop mask is non-zero.
func CountTrue(m Mask) int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// HAdd adds adjacent lane pairs and writes each sum to both lanes of the pair:
//
//	[a b c d] -> [a+b a+b c+d c+d]
func HAdd[T Lanes](dst *Vec[T], v Vec[T]) {
	var out Vec[T]
	for i := 0; i+1 < VectorWidth; i += 2 {
		s := v.data[i] + v.data[i+1]
		out.data[i] = s
		out.data[i+1] = s
	}
	dst.data = out.data
	record("hadd", MaskAll())
}

// Interleave moves the even lanes to the lower half and the odd lanes to
// the upper half:
//
//	[a b c d e f g h] -> [a c e g b d f h]
func Interleave[T Lanes](dst *Vec[T], v Vec[T]) {
	var out Vec[T]
	half := VectorWidth / 2
	for i := 0; i < half; i++ {
		out.data[i] = v.data[2*i]
		out.data[half+i] = v.data[2*i+1]
	}
	dst.data = out.data
	record("interleave", MaskAll())
}

// ReduceSum folds v to a scalar with log2(VectorWidth) rounds of HAdd and
// Interleave and returns lane 0 of the result.
func ReduceSum[T Lanes](v Vec[T]) T {
	for w := VectorWidth; w > 1; w /= 2 {
		HAdd(&v, v)
		Interleave(&v, v)
	}
	return v.data[0]
}
