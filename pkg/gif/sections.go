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

// Header is the six-byte GIF89a signature opening every stream.
const Header = "GIF89a"

// Section indicators.
const (
	sExtension       = 0x21
	sImageDescriptor = 0x2C
	sTrailer         = 0x3B
)

// Extensions.
const (
	eApplication = 0xFF // Application
)

// Logical screen descriptor packed fields.
const (
	fGlobalColorTable = 1 << 7
	fColorResolution  = 7 << 4 // 8 bits per primary, stored as 7
)

const netscapeIdent = "NETSCAPE2.0"

func appendUint16(buf []byte, v uint16) []byte {
	return append(buf, byte(v), byte(v>>8))
}

// appendScreenDescriptor writes the 7-byte logical screen descriptor.
// tableBits is the stored GCT size: the real table holds
// 1<<(tableBits+1) entries.
func appendScreenDescriptor(buf []byte, width, height uint16, tableBits int) []byte {
	buf = appendUint16(buf, width)
	buf = appendUint16(buf, height)

	packed := byte(fGlobalColorTable | fColorResolution | tableBits)

	return append(buf, packed,
		0x00, // background color index
		0x00, // pixel aspect ratio
	)
}

// appendLoopExtension writes the NETSCAPE2.0 application extension. A
// loop count of zero repeats forever.
func appendLoopExtension(buf []byte, loopCount uint16) []byte {
	buf = append(buf, sExtension, eApplication, byte(len(netscapeIdent)))
	buf = append(buf, netscapeIdent...)
	buf = append(buf,
		0x03, // sub-block size
		0x01, // loop sub-block index
	)
	buf = appendUint16(buf, loopCount)
	return append(buf, 0x00)
}

// appendImageDescriptor writes a 10-byte image descriptor placed at the
// screen origin with no local color table and no interlacing.
func appendImageDescriptor(buf []byte, width, height uint16) []byte {
	buf = append(buf, sImageDescriptor)
	buf = appendUint16(buf, 0) // left
	buf = appendUint16(buf, 0) // top
	buf = appendUint16(buf, width)
	buf = appendUint16(buf, height)
	return append(buf, 0x00)
}

func appendTrailer(buf []byte) []byte {
	return append(buf, sTrailer)
}
