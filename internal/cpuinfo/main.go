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

// Package main prints the host CPU's vector features detected by Go next to
// the emulated lane configuration, and suggests a worker count for the
// mandelbrot command.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-lanes/hwy"
	"github.com/ajroetker/go-lanes/hwy/contrib/mandelbrot"
)

type feature struct {
	name string
	has  bool
	note string
}

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Emulated vector width: %d lanes\n", hwy.VectorWidth)
	fmt.Printf("Native float32 lanes:  %d\n", nativeFloat32Lanes())
	fmt.Printf("Suggested threads:     %d (max %d)\n", suggestedThreads(runtime.NumCPU()), mandelbrot.MaxWorkers)
	fmt.Println()

	var features []feature
	switch runtime.GOARCH {
	case "arm64":
		fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
		features = []feature{
			{"HasASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
			{"HasFP", cpu.ARM64.HasFP, "Floating point"},
			{"HasSVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
			{"HasSVE2", cpu.ARM64.HasSVE2, "SVE2"},
		}
	case "amd64":
		fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
		features = []feature{
			{"HasSSE2", cpu.X86.HasSSE2, "baseline"},
			{"HasSSE41", cpu.X86.HasSSE41, ""},
			{"HasAVX", cpu.X86.HasAVX, ""},
			{"HasAVX2", cpu.X86.HasAVX2, "8 x float32"},
			{"HasFMA", cpu.X86.HasFMA, ""},
			{"HasAVX512F", cpu.X86.HasAVX512F, "16 x float32, mask registers"},
		}
	}
	for _, f := range features {
		if f.note != "" {
			fmt.Printf("  %-11s %v (%s)\n", f.name+":", f.has, f.note)
		} else {
			fmt.Printf("  %-11s %v\n", f.name+":", f.has)
		}
	}
}

// suggestedThreads caps the CPU count at the worker limit.
func suggestedThreads(numCPU int) int {
	return max(1, min(numCPU, mandelbrot.MaxWorkers))
}

// nativeFloat32Lanes reports how many float32 lanes the widest vector unit
// on this host holds.
func nativeFloat32Lanes() int {
	switch runtime.GOARCH {
	case "amd64":
		switch {
		case cpu.X86.HasAVX512F:
			return 16
		case cpu.X86.HasAVX2:
			return 8
		default:
			return 4
		}
	case "arm64":
		return 4
	}
	return 1
}
