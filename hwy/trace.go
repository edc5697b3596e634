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

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Recorder observes every emulated vector instruction together with the
// mask it executed under.
type Recorder interface {
	Record(op string, m Mask)
}

var recorderPtr atomic.Pointer[Recorder]

// SetRecorder installs r as the instruction recorder and returns the
// previously installed one (nil if none). Pass nil to stop recording.
func SetRecorder(r Recorder) Recorder {
	var prev *Recorder
	if r == nil {
		prev = recorderPtr.Swap(nil)
	} else {
		prev = recorderPtr.Swap(&r)
	}
	if prev == nil {
		return nil
	}
	return *prev
}

func record(op string, m Mask) {
	if r := recorderPtr.Load(); r != nil {
		(*r).Record(op, m)
	}
}

// Instruction is one entry of an execution log.
type Instruction struct {
	Op   string
	Mask Mask
}

// ExecLog is a Recorder that keeps every instruction it sees.
// It is safe for concurrent use.
type ExecLog struct {
	mu      sync.Mutex
	entries []Instruction
}

// NewExecLog returns an empty execution log.
func NewExecLog() *ExecLog {
	return &ExecLog{}
}

// Record appends an instruction to the log.
func (l *ExecLog) Record(op string, m Mask) {
	l.mu.Lock()
	l.entries = append(l.entries, Instruction{Op: op, Mask: m})
	l.mu.Unlock()
}

// Entries returns a copy of the recorded instructions in execution order.
func (l *ExecLog) Entries() []Instruction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Instruction, len(l.entries))
	copy(out, l.entries)
	return out
}

// Reset discards all recorded instructions.
func (l *ExecLog) Reset() {
	l.mu.Lock()
	l.entries = l.entries[:0]
	l.mu.Unlock()
}

// Stats summarizes lane occupancy over the recorded instructions.
func (l *ExecLog) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := Stats{VectorWidth: VectorWidth, TotalInstructions: len(l.entries)}
	for _, e := range l.entries {
		s.UtilizedLanes += CountTrue(e.Mask)
	}
	s.TotalLanes = s.TotalInstructions * VectorWidth
	return s
}

// WriteLog prints one line per instruction showing which lanes were active.
func (l *ExecLog) WriteLog(w io.Writer) error {
	entries := l.Entries()
	if _, err := fmt.Fprintf(w, "***************** Printing Vector Unit Execution Log *****************\n"+
		" Instruction | Vector Lane Occupancy ('*' for active, '_' for inactive)\n"+
		"------------- --------------------------------------------------------\n"); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%12s | %s\n", e.Op, e.Mask); err != nil {
			return err
		}
	}
	return nil
}

// Stats is the lane-utilization summary of an ExecLog.
type Stats struct {
	VectorWidth       int
	TotalInstructions int
	UtilizedLanes     int
	TotalLanes        int
}

// Utilization returns the percentage of lanes that did useful work.
func (s Stats) Utilization() float64 {
	if s.TotalLanes == 0 {
		return 0
	}
	return 100 * float64(s.UtilizedLanes) / float64(s.TotalLanes)
}

// WriteTo prints the summary in a fixed human-readable layout.
func (s Stats) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "****************** Printing Vector Unit Statistics *******************\n"+
		"Vector Width:              %d\n"+
		"Total Vector Instructions: %d\n"+
		"Vector Utilization:        %.1f%%\n"+
		"Utilized Vector Lanes:     %d\n"+
		"Total Vector Lanes:        %d\n",
		s.VectorWidth, s.TotalInstructions, s.Utilization(), s.UtilizedLanes, s.TotalLanes)
	return int64(n), err
}
