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
package gif

import "sort"

// Palettize reduces pixels to a color table of exactly n entries using
// median-cut bucketing. n must be a power of two in [1, 256].
//
// Each recursion level splits the bucket at the median of the channel
// with the widest range (ties resolve R, then G, then B) and quantizes
// both halves to n/2 entries, lower half first. A bucket that runs out
// of pixels fills its quota with zero pixels, so oversized tables are
// zero-padded rather than truncated.
func Palettize(pixels []Pixel, n int) Palette {
	if n == 1 {
		if len(pixels) == 0 {
			return Palette{{}}
		}
		return Palette{average(pixels)}
	}

	lower, upper := medianCut(pixels)

	table := Palettize(lower, n/2)
	return append(table, Palettize(upper, n/2)...)
}

// medianCut sorts a copy of the bucket along its widest channel and
// splits it at the midpoint.
func medianCut(pixels []Pixel) ([]Pixel, []Pixel) {
	if len(pixels) == 0 {
		return nil, nil
	}

	bucket := make([]Pixel, len(pixels))
	copy(bucket, pixels)

	var (
		rMin, gMin, bMin uint8 = 255, 255, 255
		rMax, gMax, bMax uint8
	)
	for _, p := range bucket {
		rMin, rMax = min(rMin, p.R), max(rMax, p.R)
		gMin, gMax = min(gMin, p.G), max(gMax, p.G)
		bMin, bMax = min(bMin, p.B), max(bMax, p.B)
	}

	rRange := int(rMax) - int(rMin)
	gRange := int(gMax) - int(gMin)
	bRange := int(bMax) - int(bMin)

	// The first channel whose range equals the maximum wins.
	widest := max(rRange, gRange, bRange)

	switch widest {
	case rRange:
		sort.SliceStable(bucket, func(i, j int) bool { return bucket[i].R < bucket[j].R })
	case gRange:
		sort.SliceStable(bucket, func(i, j int) bool { return bucket[i].G < bucket[j].G })
	default:
		sort.SliceStable(bucket, func(i, j int) bool { return bucket[i].B < bucket[j].B })
	}

	mid := len(bucket) / 2
	return bucket[:mid], bucket[mid:]
}

// average returns the pixel whose channels are the integer means of the
// input channels, accumulated in 32 bits.
func average(pixels []Pixel) Pixel {
	var sum Pixel32
	for _, p := range pixels {
		sum = sum.Add(p)
	}

	n := uint32(len(pixels))
	return Pixel{
		R: uint8(sum.R / n),
		G: uint8(sum.G / n),
		B: uint8(sum.B / n),
	}
}
