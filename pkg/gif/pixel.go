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

// Pixel is a 24-bit RGB color. On the wire each channel is a single
// byte, written in R, G, B order.
type Pixel struct {
	R, G, B uint8
}

// Pixel32 widens each channel to 32 bits. It exists only as an
// accumulator for channel averaging and is never serialized.
type Pixel32 struct {
	R, G, B uint32
}

// Add returns the componentwise sum of p and q.
func (p Pixel32) Add(q Pixel) Pixel32 {
	return Pixel32{
		R: p.R + uint32(q.R),
		G: p.G + uint32(q.G),
		B: p.B + uint32(q.B),
	}
}

// AppendBytes appends the three channel bytes of p to buf.
func (p Pixel) AppendBytes(buf []byte) []byte {
	return append(buf, p.R, p.G, p.B)
}

// Palette is an ordered color table. A valid table has a power-of-two
// length in [4, 256]; the index of an entry is its position.
type Palette []Pixel

// BitsNeeded returns the smallest b >= 2 such that 1<<b covers the
// table length.
func (p Palette) BitsNeeded() int {
	bits := 2
	for 1<<bits < len(p) {
		bits++
	}
	return bits
}

// AppendBytes appends the raw R,G,B entries of the table to buf.
func (p Palette) AppendBytes(buf []byte) []byte {
	for _, px := range p {
		buf = px.AppendBytes(buf)
	}
	return buf
}
