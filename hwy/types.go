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

// Package hwy emulates a fixed-width SIMD unit with explicit per-lane masks.
//
// Every lane group (Vec) holds exactly VectorWidth scalars and every Mask
// holds VectorWidth booleans. Operations that write a destination take a
// Mask and leave the unmasked lanes of the destination untouched, which is
// what lets data-dependent control flow (per-lane if/else and per-lane loop
// trip counts) be expressed as mask composition:
//
//	var x, result hwy.Vec[float32]
//	zero := hwy.Zero[float32]()
//	all := hwy.MaskAll()
//	hwy.Load(&x, values[i:], all)                  // x = values[i]
//	neg := hwy.LessThan(x, zero, all)              // if x < 0 {
//	hwy.Sub(&result, zero, x, neg)                 //     result = -x
//	hwy.Move(&result, x, hwy.MaskNot(neg))         // } else { result = x }
//	hwy.Store(output[i:], result, all)
//
// The width is fixed at compile time. Build with -tags hwy_width8 or
// -tags hwy_width16 to change it from the default of 4.
package hwy

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Signed is a constraint for lane types that can be negated.
type Signed interface {
	Floats | SignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is one emulated vector register: VectorWidth lanes of T.
// Vec is a value; copying it copies every lane.
type Vec[T Lanes] struct {
	data [VectorWidth]T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return VectorWidth
}

// Lane returns the value held in lane i.
func (v Vec[T]) Lane(i int) T {
	return v.data[i]
}

// Data returns a copy of the lanes.
// This is primarily for testing and logging.
func (v Vec[T]) Data() [VectorWidth]T {
	return v.data
}

// FromArray builds a vector from explicit lane values.
func FromArray[T Lanes](lanes [VectorWidth]T) Vec[T] {
	return Vec[T]{data: lanes}
}

// Mask selects the lanes an operation is allowed to write.
// A mask is independent of the lane type, so a mask computed from an
// integer comparison can predicate a floating-point operation.
type Mask struct {
	bits [VectorWidth]bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask) NumLanes() int {
	return VectorWidth
}

// GetBit returns whether lane i is active.
func (m Mask) GetBit(i int) bool {
	if i < 0 || i >= VectorWidth {
		return false
	}
	return m.bits[i]
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// String renders the mask as a row of '*' (active) and '_' (inactive).
func (m Mask) String() string {
	var buf [VectorWidth]byte
	for i, bit := range m.bits {
		if bit {
			buf[i] = '*'
		} else {
			buf[i] = '_'
		}
	}
	return string(buf[:])
}

// MaskFromBits builds a mask from explicit lane flags.
func MaskFromBits(bits [VectorWidth]bool) Mask {
	return Mask{bits: bits}
}
