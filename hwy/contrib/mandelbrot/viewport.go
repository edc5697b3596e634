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

// Viewport is the rectangle of the complex plane mapped onto the image.
// (X0, Y0) maps to the top-left pixel.
type Viewport struct {
	X0, Y0 float32
	X1, Y1 float32
}

// ScaleAndShift scales every coordinate by scale and then translates the
// rectangle by (shiftX, shiftY).
func (v Viewport) ScaleAndShift(scale, shiftX, shiftY float32) Viewport {
	return Viewport{
		X0: v.X0*scale + shiftX,
		Y0: v.Y0*scale + shiftY,
		X1: v.X1*scale + shiftX,
		Y1: v.Y1*scale + shiftY,
	}
}

// View returns one of the preset viewports. View 1 frames the whole set;
// view 2 zooms into a detailed region near the boundary. Any other index
// returns view 1.
func View(index int) Viewport {
	base := Viewport{X0: -2, Y0: -1, X1: 1, Y1: 1}
	if index == 2 {
		return base.ScaleAndShift(0.015, -0.986, 0.30)
	}
	return base
}
