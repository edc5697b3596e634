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
	"fmt"
	"io"
	"math"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-lanes/hwy"
	"github.com/ajroetker/go-lanes/hwy/contrib/mandelbrot"
	"github.com/ajroetker/go-lanes/hwy/contrib/workerpool"
)

// minTime runs fn runs times and returns the fastest wall-clock duration.
func minTime(runs int, fn func() error) (time.Duration, error) {
	best := time.Duration(math.MaxInt64)
	for range runs {
		start := time.Now()
		if err := fn(); err != nil {
			return 0, err
		}
		best = min(best, time.Since(start))
	}
	return best, nil
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func run(cfg *Config, out io.Writer) error {
	policy, err := mandelbrot.ParsePolicy(cfg.Policy)
	if err != nil {
		return err
	}
	p := cfg.params()
	pool := workerpool.New(cfg.Threads)
	defer pool.Close()

	serial := make([]int, p.Pixels())
	threaded := make([]int, p.Pixels())

	serialTime, err := minTime(cfg.Runs, func() error {
		mandelbrot.Serial(p, 0, p.Height, serial)
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "[mandelbrot serial]:\t\t[%.3f] ms\n", millis(serialTime))
	if err := writeImage(cfg, pool, "serial", serial); err != nil {
		return err
	}

	threadTime, err := minTime(cfg.Runs, func() error {
		clear(threaded)
		return mandelbrot.Compute(cfg.Threads, policy, p, threaded)
	})
	if err != nil {
		return err
	}
	title := cases.Title(language.English).String(policy.String())
	fmt.Fprintf(out, "[mandelbrot thread]:\t\t[%.3f] ms (%s rows)\n", millis(threadTime), title)
	if err := writeImage(cfg, pool, "thread", threaded); err != nil {
		return err
	}

	if err := mandelbrot.Verify(serial, threaded, p.Width); err != nil {
		fmt.Fprintln(out, "Error : Output from threads does not match serial output")
		return err
	}

	speedup := float64(serialTime) / float64(max(threadTime, 1))
	fmt.Fprintf(out, "\t\t\t\t(%.2fx speedup from %d threads)\n", speedup, cfg.Threads)
	hwy.Logger().Info("mandelbrot run complete",
		"view", cfg.View, "policy", policy.String(), "threads", cfg.Threads,
		"serial_ms", millis(serialTime), "thread_ms", millis(threadTime))
	return nil
}

func writeImage(cfg *Config, pool workerpool.Executor, kind string, counts []int) error {
	if cfg.Out == "" {
		return nil
	}
	path := fmt.Sprintf("%s-%s-v%d.%s", cfg.Out, kind, cfg.View, cfg.Format)
	img := mandelbrot.GrayWith(pool, counts, cfg.Width, cfg.Height, cfg.MaxIterations)
	if err := mandelbrot.WriteFile(path, img); err != nil {
		return fmt.Errorf("write %s image: %w", kind, err)
	}
	hwy.Logger().Debug("wrote image", "path", path)
	return nil
}
