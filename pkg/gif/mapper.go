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

// MapPixels assigns every source pixel the index of its nearest table
// entry under squared Euclidean RGB distance. Ties go to the lowest
// index. Output order matches input order.
func MapPixels(pixels []Pixel, table Palette) []byte {
	indices := make([]byte, len(pixels))
	for i, p := range pixels {
		indices[i] = nearestIndex(p, table)
	}
	return indices
}

func nearestIndex(p Pixel, table Palette) byte {
	best := 0
	bestDist := int32(1) << 30

	for i, c := range table {
		dr := int32(p.R) - int32(c.R)
		dg := int32(p.G) - int32(c.G)
		db := int32(p.B) - int32(c.B)

		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return byte(best)
}
