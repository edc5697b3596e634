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
	"bufio"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/ajroetker/go-lanes/hwy/contrib/workerpool"
)

// Gray converts escape-time counts to an 8-bit grayscale image. Counts are
// capped at maxIterations, divided by 256 and passed through a square root
// so that the slow-escaping boundary stands out.
func Gray(counts []int, width, height, maxIterations int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	grayRows(img, counts, 0, height, maxIterations)
	return img
}

// GrayWith is Gray with the rows split across pool's workers.
func GrayWith(pool workerpool.Executor, counts []int, width, height, maxIterations int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	pool.ParallelFor(height, func(start, end int) {
		grayRows(img, counts, start, end, maxIterations)
	})
	return img
}

func grayRows(img *image.Gray, counts []int, startRow, endRow, maxIterations int) {
	width := img.Bounds().Dx()
	end := min(endRow*width, len(counts))
	for i := startRow * width; i < end; i++ {
		v := float64(min(counts[i], maxIterations)) / 256
		mapped := 255 * math.Sqrt(max(v, 0))
		img.Pix[i] = uint8(min(mapped, 255))
	}
}

// WritePPM encodes img as a binary (P6) PPM with equal RGB channels.
func WritePPM(w io.Writer, img *image.Gray) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := img.GrayAt(x, y).Y
			if _, err := bw.Write([]byte{g, g, g}); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteBMP encodes img as an uncompressed BMP.
func WriteBMP(w io.Writer, img *image.Gray) error {
	bw := bufio.NewWriter(w)
	if err := bmp.Encode(bw, img); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteFile writes img to path, choosing the encoding from the extension
// (".ppm" or ".bmp").
func WriteFile(path string, img *image.Gray) (err error) {
	var encode func(io.Writer, *image.Gray) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		encode = WritePPM
	case ".bmp":
		encode = WriteBMP
	default:
		return fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f, img)
}
