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

// bitWriter packs code values into bytes LSB-first: the low bit of a
// code lands in the lowest free bit of the current byte, spilling into
// following bytes as needed.
type bitWriter struct {
	buf   []byte
	acc   uint32
	nbits uint
}

func (w *bitWriter) writeBits(code uint16, width uint) {
	if code > maxLZWCode {
		panic("gif: lzw code exceeds 12 bits")
	}

	w.acc |= uint32(code) << w.nbits
	w.nbits += width

	for w.nbits >= 8 {
		w.buf = append(w.buf, byte(w.acc))
		w.acc >>= 8
		w.nbits -= 8
	}
}

// flush drains any partial trailing byte, zero-padded in the high bits.
func (w *bitWriter) flush() []byte {
	if w.nbits > 0 {
		w.buf = append(w.buf, byte(w.acc))
		w.acc = 0
		w.nbits = 0
	}
	return w.buf
}

// PackBits packs every code at a fixed width, LSB-first. It uses the
// same bit writer as the variable-width schedule in packCodes.
func PackBits(codes []uint16, width uint) []byte {
	var w bitWriter
	for _, c := range codes {
		w.writeBits(c, width)
	}
	return w.flush()
}

// packCodes serializes an LZW code stream using the GIF width schedule.
//
// The width starts at minCodeSize+1 and resets there after every clear
// code. In between, the packer replays the table growth a decoder will
// perform: one new entry per data code, except the first code after a
// clear. When the decoder's next free slot reaches 1<<w the following
// code must be one bit wider, up to the 12-bit ceiling.
func packCodes(codes []uint16, minCodeSize int) []byte {
	clearCode := uint16(1) << minCodeSize
	eoi := clearCode + 1

	width := uint(minCodeSize) + 1
	nextCode := eoi + 1
	firstAfterClear := true

	var w bitWriter
	for _, c := range codes {
		w.writeBits(c, width)

		switch {
		case c == clearCode:
			width = uint(minCodeSize) + 1
			nextCode = eoi + 1
			firstAfterClear = true
		case c == eoi:
		case firstAfterClear:
			firstAfterClear = false
		default:
			nextCode++
			if nextCode == 1<<width && width < 12 {
				width++
			}
		}
	}
	return w.flush()
}

// appendSubBlocks frames data as a chain of length-prefixed sub-blocks
// of at most 255 bytes each, closed by a zero length byte.
func appendSubBlocks(dst, data []byte) []byte {
	for len(data) > 0 {
		n := min(len(data), 255)
		dst = append(dst, byte(n))
		dst = append(dst, data[:n]...)
		data = data[n:]
	}
	return append(dst, 0x00)
}

// CompressImageData produces a complete table-based image data section
// for an indexed pixel stream: the minimum-code-size lead byte followed
// by the sub-block framed, bit-packed LZW payload.
func CompressImageData(indices []byte, minCodeSize int) []byte {
	packed := packCodes(Compress(indices, minCodeSize), minCodeSize)

	out := make([]byte, 0, len(packed)+len(packed)/255+3)
	out = append(out, byte(minCodeSize))
	return appendSubBlocks(out, packed)
}
