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

// maxLZWCode is the largest code a GIF stream may carry; entries past it
// require a dictionary reset.
const maxLZWCode = 0xFFF

// lzwDict maps (prefix code, successor byte) pairs to dictionary codes.
// The root entries 0..clear-1 are implicit: a single byte is its own
// code, so only multi-byte sequences need a slot.
type lzwDict struct {
	codes    map[uint32]uint16
	clear    uint16
	eoi      uint16
	nextCode uint16
}

func newLZWDict(minCodeSize int) *lzwDict {
	clear := uint16(1) << minCodeSize
	return &lzwDict{
		codes:    make(map[uint32]uint16),
		clear:    clear,
		eoi:      clear + 1,
		nextCode: clear + 2,
	}
}

func (d *lzwDict) key(prefix uint16, k byte) uint32 {
	return uint32(prefix)<<8 | uint32(k)
}

func (d *lzwDict) lookup(prefix uint16, k byte) (uint16, bool) {
	code, ok := d.codes[d.key(prefix, k)]
	return code, ok
}

// insert registers prefix+k at the next free code. The caller must have
// checked full() first.
func (d *lzwDict) insert(prefix uint16, k byte) {
	d.codes[d.key(prefix, k)] = d.nextCode
	d.nextCode++
}

func (d *lzwDict) full() bool {
	return d.nextCode > maxLZWCode
}

func (d *lzwDict) reset() {
	clear(d.codes)
	d.nextCode = d.eoi + 1
}

// Compress runs the GIF flavor of LZW over an indexed pixel stream and
// returns the emitted code sequence, clear and end-of-information codes
// included. minCodeSize must be in [2, 8] and every index must be below
// 1<<minCodeSize.
//
// The coder is the textbook greedy matcher: the current sequence W grows
// while W+K is a known entry; on a miss the code for W is emitted and
// W+K registered. Once the table would outgrow 12-bit codes, a clear
// code is emitted and the table reseeded, which keeps the stream
// decodable by any conforming reader.
func Compress(indices []byte, minCodeSize int) []uint16 {
	d := newLZWDict(minCodeSize)

	codes := make([]uint16, 0, len(indices)/2+8)
	codes = append(codes, d.clear)

	if len(indices) == 0 {
		return append(codes, d.eoi)
	}

	cur := uint16(indices[0])
	for _, k := range indices[1:] {
		if code, ok := d.lookup(cur, k); ok {
			cur = code
			continue
		}

		codes = append(codes, cur)
		if d.full() {
			codes = append(codes, d.clear)
			d.reset()
		} else {
			d.insert(cur, k)
		}
		cur = uint16(k)
	}

	return append(codes, cur, d.eoi)
}
