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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lanes/hwy/contrib/mandelbrot"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func smallArgs(t *testing.T, extra ...string) []string {
	prefix := filepath.Join(t.TempDir(), "m")
	args := []string{"--width", "64", "--height", "48", "--max-iter", "64", "--runs", "1", "--out", prefix}
	return append(args, extra...)
}

func TestRunInterleaved(t *testing.T) {
	args := smallArgs(t, "--threads", "4")
	out, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "[mandelbrot serial]")
	assert.Contains(t, out, "Interleaved rows")
	assert.Contains(t, out, "speedup from 4 threads")

	prefix := args[len(args)-3]
	for _, kind := range []string{"serial", "thread"} {
		_, err := os.Stat(prefix + "-" + kind + "-v1.ppm")
		assert.NoError(t, err, kind)
	}
}

func TestRunContiguousView2BMP(t *testing.T) {
	out, err := execute(t, smallArgs(t, "-t", "3", "-v", "2", "-p", "contiguous", "--format", "bmp")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Contiguous rows")
}

func TestRunTooManyThreadsIsFatal(t *testing.T) {
	args := smallArgs(t, "--threads", "33")
	out, err := execute(t, args...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mandelbrot.ErrTooManyWorkers), "got %v", err)

	// Rejected before the serial run, so nothing is timed or written.
	assert.Empty(t, out)
	prefix := args[len(args)-3]
	_, statErr := os.Stat(prefix + "-serial-v1.ppm")
	assert.True(t, os.IsNotExist(statErr), "serial image written: %v", statErr)
}

func TestRunValidation(t *testing.T) {
	tests := []struct {
		args []string
		want error
	}{
		{[]string{"--view", "3"}, nil},
		{[]string{"--runs", "0"}, nil},
		{[]string{"--format", "gif"}, nil},
		{[]string{"--policy", "diagonal"}, mandelbrot.ErrUnknownPolicy},
		{[]string{"--threads", "0"}, mandelbrot.ErrNoWorkers},
		{[]string{"--width", "-5"}, mandelbrot.ErrInvalidSize},
		{[]string{"--height", "0"}, mandelbrot.ErrInvalidSize},
		{[]string{"--max-iter", "-1"}, mandelbrot.ErrInvalidSize},
	}
	for _, tt := range tests {
		out, err := execute(t, smallArgs(t, tt.args...)...)
		require.Error(t, err, "%v", tt.args)
		assert.Empty(t, out, "%v", tt.args)
		if tt.want != nil {
			assert.True(t, errors.Is(err, tt.want), "%v: got %v", tt.args, err)
		}
	}
}

func TestRunWithoutImages(t *testing.T) {
	_, err := execute(t, "--width", "16", "--height", "16", "--runs", "1", "--out", "")
	require.NoError(t, err)
}
