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
)

// Config holds the vecintrin command-line settings.
type Config struct {
	// Size is the number of elements processed by each kernel.
	Size int
	// Log prints the per-instruction lane occupancy log.
	Log bool
	// Seed seeds the input generator.
	Seed uint64
	// Verbose enables debug logging from the hwy packages.
	Verbose bool
}

// DefaultConfig returns the default settings.
func DefaultConfig() *Config {
	return &Config{
		Size: 16,
		Seed: 1,
	}
}

func (c *Config) bindFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Size, "size", "s", c.Size, "use workload size N")
	fs.BoolVarP(&c.Log, "log", "l", c.Log, "print vector unit execution log")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "seed for the random inputs")
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "enable debug logging")
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("workload size is set to %d (<=0)", c.Size)
	}
	return nil
}
