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

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"

	"github.com/ajroetker/go-lanes/hwy"
	"github.com/ajroetker/go-lanes/hwy/contrib/kernels"
)

const (
	maxExponent  = 10
	elemEpsilon  = 1e-5
	sumTolerance = 0.2
)

var errVerification = errors.New("vecintrin: result verification failed")

// workload is the padded input/output set for one run. Every buffer holds
// Size+VectorWidth elements so that writes past Size are detectable.
type workload struct {
	n         int
	values    []float32
	exponents []int32
	output    []float32
	gold      []float32
}

func newWorkload(n int, seed uint64) *workload {
	r := rand.New(rand.NewPCG(seed, seed+1))
	padded := n + hwy.VectorWidth
	w := &workload{
		n:         n,
		values:    make([]float32, padded),
		exponents: make([]int32, padded),
		output:    make([]float32, padded),
		gold:      make([]float32, padded),
	}
	for i := range padded {
		w.values[i] = -1 + 4*r.Float32()
		w.exponents[i] = int32(r.IntN(maxExponent))
	}
	return w
}

// verify compares output to gold over the whole padded buffer and prints
// the inputs on the first mismatch.
func (w *workload) verify(out io.Writer) bool {
	incorrect := -1
	for i := range w.output {
		if math.Abs(float64(w.output[i]-w.gold[i])) > elemEpsilon {
			incorrect = i
			break
		}
	}
	if incorrect < 0 {
		fmt.Fprintln(out, "Results matched with answer!")
		return true
	}

	if incorrect >= w.n {
		fmt.Fprintln(out, "You have written to out of bound value!")
	}
	fmt.Fprintf(out, "Wrong calculation at value[%d]!\n", incorrect)
	row := func(label string, format string, at func(i int) any) {
		fmt.Fprintf(out, "%-7s= ", label)
		for i := 0; i < w.n; i++ {
			fmt.Fprintf(out, format, at(i))
		}
		fmt.Fprintln(out)
	}
	row("value", "% f ", func(i int) any { return w.values[i] })
	row("exp", "% 9d ", func(i int) any { return w.exponents[i] })
	row("output", "% f ", func(i int) any { return w.output[i] })
	row("gold", "% f ", func(i int) any { return w.gold[i] })
	return false
}

func run(cfg *Config, out io.Writer) error {
	w := newWorkload(cfg.Size, cfg.Seed)

	kernels.ClampedPowSerial(w.values[:w.n], w.exponents[:w.n], w.gold[:w.n])

	execLog := hwy.NewExecLog()
	prev := hwy.SetRecorder(execLog)
	err := kernels.ClampedPow(w.values, w.exponents, w.output, w.n)
	hwy.SetRecorder(prev)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "CLAMPED EXPONENT (required)")
	clampedCorrect := w.verify(out)
	if cfg.Log {
		if err := execLog.WriteLog(out); err != nil {
			return err
		}
	}
	if _, err := execLog.Stats().WriteTo(out); err != nil {
		return err
	}

	fmt.Fprintln(out, "************************ Result Verification *************************")
	if clampedCorrect {
		fmt.Fprintln(out, "Passed!!!")
	} else {
		fmt.Fprintln(out, "@@@ Failed!!!")
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "ARRAY SUM (bonus)")
	sumCorrect := true
	if w.n%hwy.VectorWidth == 0 {
		sumGold := kernels.ArraySumSerial(w.values[:w.n])
		sumOutput, err := kernels.ArraySum(w.values, w.n)
		if err != nil {
			return err
		}
		if math.Abs(float64(sumGold-sumOutput)) < sumTolerance {
			fmt.Fprintln(out, "Passed!!!")
		} else {
			sumCorrect = false
			fmt.Fprintf(out, "Expected %f, got %f\n", sumGold, sumOutput)
			fmt.Fprintln(out, "@@@ Failed!!!")
		}
	} else {
		fmt.Fprintf(out, "Must have N %% VECTOR_WIDTH == 0 for this problem (VECTOR_WIDTH is %d)\n", hwy.VectorWidth)
	}

	if !clampedCorrect || !sumCorrect {
		return errVerification
	}
	return nil
}
