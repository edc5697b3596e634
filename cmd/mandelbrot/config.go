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

	"github.com/spf13/pflag"

	"github.com/ajroetker/go-lanes/hwy/contrib/mandelbrot"
)

// Config holds the mandelbrot command-line settings.
type Config struct {
	Threads       int
	View          int
	Policy        string
	Width         int
	Height        int
	MaxIterations int
	// Runs is how many times each version is timed; the fastest run is reported.
	Runs int
	// Out is the output file prefix; empty disables image output.
	Out string
	// Format is the image encoding, "ppm" or "bmp".
	Format  string
	Verbose bool
}

// DefaultConfig returns the default settings.
func DefaultConfig() *Config {
	return &Config{
		Threads:       2,
		View:          1,
		Policy:        mandelbrot.Interleaved.String(),
		Width:         1600,
		Height:        1200,
		MaxIterations: 256,
		Runs:          5,
		Out:           "mandelbrot",
		Format:        "ppm",
	}
}

func (c *Config) bindFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Threads, "threads", "t", c.Threads, "use N worker threads")
	fs.IntVarP(&c.View, "view", "v", c.View, "use specified view settings (1 or 2)")
	fs.StringVarP(&c.Policy, "policy", "p", c.Policy, "row partitioning policy: interleaved or contiguous")
	fs.IntVar(&c.Width, "width", c.Width, "image width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "image height in pixels")
	fs.IntVar(&c.MaxIterations, "max-iter", c.MaxIterations, "escape-time iteration cap")
	fs.IntVar(&c.Runs, "runs", c.Runs, "timing runs per version (fastest is reported)")
	fs.StringVarP(&c.Out, "out", "o", c.Out, "output image prefix (empty to skip writing images)")
	fs.StringVar(&c.Format, "format", c.Format, "output image format: ppm or bmp")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "enable debug logging")
}

// Validate checks the settings before any work starts. An out-of-range
// thread count is reported as mandelbrot.ErrTooManyWorkers or
// mandelbrot.ErrNoWorkers and a bad image size as mandelbrot.ErrInvalidSize.
func (c *Config) Validate() error {
	if err := mandelbrot.CheckWorkers(c.Threads); err != nil {
		return err
	}
	if c.View != 1 && c.View != 2 {
		return fmt.Errorf("view must be 1 or 2, got %d", c.View)
	}
	if err := c.params().Validate(); err != nil {
		return err
	}
	if c.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", c.Runs)
	}
	if c.Format != "ppm" && c.Format != "bmp" {
		return fmt.Errorf("format must be ppm or bmp, got %q", c.Format)
	}
	if _, err := mandelbrot.ParsePolicy(c.Policy); err != nil {
		return err
	}
	return nil
}

func (c *Config) params() mandelbrot.Params {
	return mandelbrot.Params{
		View:          mandelbrot.View(c.View),
		Width:         c.Width,
		Height:        c.Height,
		MaxIterations: c.MaxIterations,
	}
}
