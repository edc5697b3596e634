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

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-lanes/hwy"
)

const (
	elemEpsilon = 1e-5
	sentinel    = float32(-42)
)

// randomInputs mirrors the exercise driver: values in [-1, 3) and
// exponents in [0, 10), over buffers padded by one vector.
func randomInputs(seed uint64, n int) (values []float32, exps []int32) {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	values = make([]float32, n+hwy.VectorWidth)
	exps = make([]int32, n+hwy.VectorWidth)
	for i := range values {
		values[i] = -1 + 4*r.Float32()
		exps[i] = int32(r.IntN(10))
	}
	return values, exps
}

func filled(n int, v float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestClampedPowMatchesSerial(t *testing.T) {
	sizes := []int{0, 1, hwy.VectorWidth - 1, hwy.VectorWidth, hwy.VectorWidth + 1, 16, 17, 100, 1003}
	for _, n := range sizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			values, exps := randomInputs(uint64(n)+1, n)
			gold := filled(n+hwy.VectorWidth, sentinel)
			got := filled(n+hwy.VectorWidth, sentinel)

			ClampedPowSerial(values[:n], exps[:n], gold[:n])
			if err := ClampedPow(values, exps, got, n); err != nil {
				t.Fatalf("ClampedPow: %v", err)
			}

			for i := range got {
				if math.Abs(float64(got[i]-gold[i])) > elemEpsilon {
					if i >= n {
						t.Fatalf("wrote out of bounds: output[%d] = %v", i, got[i])
					}
					t.Fatalf("output[%d] = %v, want %v (value=%v exp=%d)", i, got[i], gold[i], values[i], exps[i])
				}
			}
		})
	}
}

func TestClampedPowTailIsScalarReference(t *testing.T) {
	n := 3*hwy.VectorWidth + hwy.VectorWidth - 1
	values, exps := randomInputs(7, n)
	gold := make([]float32, n)
	got := make([]float32, n)
	ClampedPowSerial(values[:n], exps[:n], gold)
	if err := ClampedPow(values, exps, got, n); err != nil {
		t.Fatal(err)
	}
	for i := n - n%hwy.VectorWidth; i < n; i++ {
		if math.Float32bits(got[i]) != math.Float32bits(gold[i]) {
			t.Errorf("tail output[%d] = %v, want exactly %v", i, got[i], gold[i])
		}
	}
}

func TestClampedPowDefinition(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	n := 64 * hwy.VectorWidth
	values := make([]float32, n)
	exps := make([]int32, n)
	for i := range values {
		values[i] = -1 + 2*r.Float32()
		exps[i] = int32(r.IntN(10))
	}
	out := make([]float32, n)
	if err := ClampedPow(values, exps, out, n); err != nil {
		t.Fatal(err)
	}
	for i := range out {
		want := float32(math.Min(math.Pow(float64(values[i]), float64(exps[i])), float64(ClampMax)))
		if exps[i] == 0 && out[i] != 1 {
			t.Errorf("output[%d] = %v for exponent 0, want exactly 1", i, out[i])
		}
		if math.Abs(float64(out[i]-want)) > elemEpsilon {
			t.Errorf("output[%d] = %v, want %v (%v^%d)", i, out[i], want, values[i], exps[i])
		}
	}
}

func TestClampedPowEdgeCases(t *testing.T) {
	w := hwy.VectorWidth
	values := make([]float32, w)
	exps := make([]int32, w)
	want := make([]float32, w)
	cases := []struct {
		x    float32
		y    int32
		want float32
	}{
		{0, 0, 1},         // 0^0
		{5, 0, 1},         // anything^0
		{3, 9, ClampMax},  // clamps
		{-2, 3, -8},       // negative results are never clamped
		{10, 1, ClampMax}, // exponent 1 still clamps
		{0.5, 1, 0.5},
		{-1, 2, 1},
		{2, -3, 2}, // negative exponent: no multiplications
	}
	for i := range w {
		c := cases[i%len(cases)]
		values[i], exps[i], want[i] = c.x, c.y, c.want
	}
	got := make([]float32, w)
	if err := ClampedPow(values, exps, got, w); err != nil {
		t.Fatal(err)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%v^%d = %v, want %v", values[i], exps[i], got[i], want[i])
		}
	}
}

func TestClampedPowLoopRunsMaxTripCount(t *testing.T) {
	w := hwy.VectorWidth
	values := filled(w, 1)
	exps := make([]int32, w)
	maxExp := int32(0)
	for i := range exps {
		exps[i] = int32(i*3) % 10
		maxExp = max(maxExp, exps[i])
	}

	log := hwy.NewExecLog()
	prev := hwy.SetRecorder(log)
	defer hwy.SetRecorder(prev)

	if err := ClampedPow(values, exps, make([]float32, w), w); err != nil {
		t.Fatal(err)
	}

	muls := 0
	for _, e := range log.Entries() {
		if e.Op == "mul" {
			muls++
		}
	}
	if want := int(max(maxExp-1, 0)); muls != want {
		t.Errorf("masked loop ran %d times, want %d (max exponent %d)", muls, want, maxExp)
	}
}

func TestClampedPowErrors(t *testing.T) {
	buf := make([]float32, 4)
	exps := make([]int32, 4)
	if err := ClampedPow(buf, exps, buf, -1); !errors.Is(err, ErrNegativeLength) {
		t.Errorf("n=-1: err = %v, want ErrNegativeLength", err)
	}
	if err := ClampedPow(buf, exps[:2], buf, 3); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("short exponents: err = %v, want ErrShortBuffer", err)
	}
}

func TestArraySum(t *testing.T) {
	ones := filled(hwy.VectorWidth, 1)
	got, err := ArraySum(ones, len(ones))
	if err != nil {
		t.Fatal(err)
	}
	if got != float32(hwy.VectorWidth) {
		t.Errorf("ArraySum(ones) = %v, want %d", got, hwy.VectorWidth)
	}

	for _, chunks := range []int{0, 1, 2, 5, 256} {
		n := chunks * hwy.VectorWidth
		values, _ := randomInputs(uint64(chunks)+11, n)
		want := ArraySumSerial(values[:n])
		got, err := ArraySum(values, n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if math.Abs(float64(got-want)) >= 0.2 {
			t.Errorf("n=%d: ArraySum = %v, want %v", n, got, want)
		}
	}
}

func TestArraySumRejectsPartialVector(t *testing.T) {
	if hwy.VectorWidth == 1 {
		t.Skip("every length is a multiple of width 1")
	}
	values := filled(2*hwy.VectorWidth, 1)
	_, err := ArraySum(values, hwy.VectorWidth+1)
	if !errors.Is(err, ErrNotMultipleOfWidth) {
		t.Errorf("err = %v, want ErrNotMultipleOfWidth", err)
	}
	if _, err := ArraySum(values, len(values)+hwy.VectorWidth); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("err = %v, want ErrShortBuffer", err)
	}
}

func TestAbsMatchesSerial(t *testing.T) {
	for _, n := range []int{0, 1, hwy.VectorWidth, 2*hwy.VectorWidth + 1, 77} {
		values, _ := randomInputs(uint64(n)+3, n)
		gold := filled(n+hwy.VectorWidth, sentinel)
		got := filled(n+hwy.VectorWidth, sentinel)
		AbsSerial(values[:n], gold[:n])
		if err := Abs(values, got, n); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		for i := range got {
			if got[i] != gold[i] {
				t.Errorf("n=%d: output[%d] = %v, want %v", n, i, got[i], gold[i])
			}
		}
	}
}

func BenchmarkClampedPow(b *testing.B) {
	for _, n := range []int{16, 1024, 65536} {
		values, exps := randomInputs(42, n)
		out := make([]float32, n)
		b.Run(fmt.Sprintf("vector/%d", n), func(b *testing.B) {
			for range b.N {
				_ = ClampedPow(values, exps, out, n)
			}
		})
		b.Run(fmt.Sprintf("serial/%d", n), func(b *testing.B) {
			for range b.N {
				ClampedPowSerial(values[:n], exps[:n], out)
			}
		})
	}
}

func BenchmarkArraySum(b *testing.B) {
	n := 4096
	values, _ := randomInputs(9, n)
	b.SetBytes(int64(n * 4))
	for range b.N {
		_, _ = ArraySum(values, n)
	}
}
