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

// Command mandelbrot renders the Mandelbrot set serially and on a fixed
// number of worker goroutines, checks that both images agree and reports
// the speedup.
//
// Usage:
//
//	mandelbrot [--threads N] [--view 1|2] [--policy interleaved|contiguous] [--out prefix]
//
// Requesting more than 32 threads is a fatal configuration error.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lanes/hwy"
)

func newRootCmd(stdout io.Writer) *cobra.Command {
	cfg := DefaultConfig()
	cmd := &cobra.Command{
		Use:          "mandelbrot",
		Short:        "Render the Mandelbrot set on partitioned worker threads",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Verbose {
				hwy.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			return run(cfg, stdout)
		},
	}
	cfg.bindFlags(cmd.Flags())
	return cmd
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
