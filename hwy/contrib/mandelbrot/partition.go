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
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Policy selects how image rows are assigned to workers.
type Policy int

const (
	// Interleaved assigns row r to worker r mod numWorkers.
	Interleaved Policy = iota
	// Contiguous assigns each worker one block of adjacent rows; the last
	// worker absorbs the rows left over by the floor division.
	Contiguous
)

// String returns the policy name accepted by ParsePolicy.
func (p Policy) String() string {
	switch p {
	case Interleaved:
		return "interleaved"
	case Contiguous:
		return "contiguous"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses "interleaved" (alias "striped") or "contiguous"
// (alias "block"), case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "interleaved", "striped":
		return Interleaved, nil
	case "contiguous", "block":
		return Contiguous, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownPolicy)
}

// blockRange returns the half-open row range of worker id under the
// Contiguous policy.
func blockRange(id, numWorkers, height int) (start, end int) {
	rowsPerWorker := height / numWorkers
	start = id * rowsPerWorker
	end = start + rowsPerWorker
	if id == numWorkers-1 {
		end = height
	}
	return start, end
}

// Rows returns, in ascending order, the rows worker id owns when height rows
// are split across numWorkers workers. For every policy the row sets of
// workers 0..numWorkers-1 are pairwise disjoint and together cover
// [0, height).
func Rows(policy Policy, id, numWorkers, height int) []int {
	if numWorkers < 1 || id < 0 || id >= numWorkers || height <= 0 {
		return nil
	}
	if policy == Contiguous {
		start, end := blockRange(id, numWorkers, height)
		return lo.RangeFrom(start, end-start)
	}
	return lo.RangeWithSteps(id, height, numWorkers)
}
