// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package hsv converts between the HSV and RGB color models. It backs
// the rainbow demo generators and test fixtures.
package hsv

import (
	"math"

	"github.com/ostafen/gifmaker/pkg/gif"
)

// Color is an HSV triple: hue in degrees [0, 360), saturation and value
// in [0, 1].
type Color struct {
	H, S, V float64
}

// New normalizes the hue into [0, 360) and returns the color.
func New(h, s, v float64) Color {
	h = math.Mod(h, 360.0)
	if h < 0 {
		h += 360.0
	}
	return Color{H: h, S: s, V: v}
}

// RGB converts the color to floating point RGB channels in [0, 1].
func (c Color) RGB() (r, g, b float64) {
	chroma := c.V * c.S
	hPrime := c.H / 60.0
	x := chroma * (1 - math.Abs(math.Mod(hPrime, 2.0)-1.0))

	switch {
	case hPrime < 1:
		r, g, b = chroma, x, 0
	case hPrime < 2:
		r, g, b = x, chroma, 0
	case hPrime < 3:
		r, g, b = 0, chroma, x
	case hPrime < 4:
		r, g, b = 0, x, chroma
	case hPrime < 5:
		r, g, b = x, 0, chroma
	case hPrime < 6:
		r, g, b = chroma, 0, x
	}

	m := c.V - chroma
	return r + m, g + m, b + m
}

// Pixel converts the color to an 8-bit RGB pixel.
func (c Color) Pixel() gif.Pixel {
	r, g, b := c.RGB()
	return gif.Pixel{
		R: uint8(r * 255.0),
		G: uint8(g * 255.0),
		B: uint8(b * 255.0),
	}
}

// FromRGB converts floating point RGB channels in [0, 1] to HSV.
func FromRGB(r, g, b float64) Color {
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))

	var h float64
	switch {
	case maxC == minC:
		h = 0
	case maxC == r:
		h = 60.0 * ((g - b) / (maxC - minC))
	case maxC == g:
		h = 60.0 * (2.0 + (b-r)/(maxC-minC))
	default:
		h = 60.0 * (4.0 + (r-g)/(maxC-minC))
	}
	if h < 0 {
		h += 360.0
	}

	var s float64
	if maxC > 0 {
		s = (maxC - minC) / maxC
	}

	return Color{H: h, S: s, V: maxC}
}
