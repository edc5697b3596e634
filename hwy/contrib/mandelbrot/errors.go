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

package mandelbrot

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyWorkers is returned when more than MaxWorkers workers are
	// requested. It indicates a configuration bug in the caller.
	ErrTooManyWorkers = fmt.Errorf("mandelbrot: max allowed workers is %d", MaxWorkers)

	// ErrNoWorkers is returned when fewer than one worker is requested.
	ErrNoWorkers = errors.New("mandelbrot: at least one worker is required")

	// ErrInvalidSize is returned for non-positive image dimensions or a
	// negative iteration cap.
	ErrInvalidSize = errors.New("mandelbrot: invalid image size")

	// ErrShortBuffer is returned when the output buffer holds fewer than
	// width*height elements.
	ErrShortBuffer = errors.New("mandelbrot: output buffer too small")

	// ErrUnknownPolicy is returned by ParsePolicy for unrecognized names.
	ErrUnknownPolicy = errors.New("mandelbrot: unknown partition policy")

	// ErrUnknownFormat is returned by WriteFile for unsupported extensions.
	ErrUnknownFormat = errors.New("mandelbrot: unknown image format")
)

// MismatchError reports the first pixel at which two images differ.
type MismatchError struct {
	Row, Col  int
	Want, Got int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("mandelbrot: mismatch at [%d][%d], expected %d, actual %d", e.Row, e.Col, e.Want, e.Got)
}

// Verify compares got against gold pixel by pixel and returns a
// *MismatchError for the first difference.
func Verify(gold, got []int, width int) error {
	if len(gold) != len(got) {
		return fmt.Errorf("mandelbrot: verify: len %d vs %d: %w", len(gold), len(got), ErrShortBuffer)
	}
	for i := range gold {
		if gold[i] != got[i] {
			return &MismatchError{Row: i / width, Col: i % width, Want: gold[i], Got: got[i]}
		}
	}
	return nil
}
