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

// escapeTime returns the number of z <- z^2 + c steps, starting from z = c,
// taken before |z|^2 exceeds 4, or maxIterations if it never does.
func escapeTime(cRe, cIm float32, maxIterations int) int {
	zRe, zIm := cRe, cIm
	i := 0
	for ; i < maxIterations; i++ {
		if zRe*zRe+zIm*zIm > 4 {
			break
		}
		newRe := zRe*zRe - zIm*zIm
		newIm := 2 * zRe * zIm
		zRe = cRe + newRe
		zIm = cIm + newIm
	}
	return i
}

// Serial computes rows [startRow, startRow+numRows) of the image described
// by p into out, which is indexed as out[row*p.Width+col]. It is the
// reference every partitioned computation must reproduce.
func Serial(p Params, startRow, numRows int, out []int) {
	dx := (p.View.X1 - p.View.X0) / float32(p.Width)
	dy := (p.View.Y1 - p.View.Y0) / float32(p.Height)

	endRow := startRow + numRows
	for j := startRow; j < endRow; j++ {
		y := p.View.Y0 + float32(j)*dy
		row := out[j*p.Width : (j+1)*p.Width]
		for i := range row {
			x := p.View.X0 + float32(i)*dx
			row[i] = escapeTime(x, y, p.MaxIterations)
		}
	}
}
