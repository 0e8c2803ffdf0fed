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

// Package gif encodes raster RGB frames into a self-contained GIF89a
// byte stream. The pipeline is strictly sequential: a median-cut
// palette is derived from the first frame, every frame is mapped onto
// it, and each indexed frame is LZW compressed and packed into the GIF
// sub-block framing.
package gif

import (
	"errors"
	"fmt"
)

// gctSize is the fixed global color table size used by the encoder.
const gctSize = 256

// ErrNoFrames is returned when an encode is requested without any
// frame data.
var ErrNoFrames = errors.New("gif: must provide at least one frame")

// Encoder assembles one or more same-sized RGB frames into a GIF89a
// stream. The zero LoopCount repeats an animation forever; a negative
// LoopCount suppresses the NETSCAPE2.0 extension entirely.
type Encoder struct {
	Width  uint16
	Height uint16
	Frames [][]Pixel

	LoopCount int
}

// EncodeSingle encodes a single frame. pixels must hold exactly
// width*height entries in row-major order.
func EncodeSingle(width, height uint16, pixels []Pixel) ([]byte, error) {
	e := Encoder{
		Width:     width,
		Height:    height,
		Frames:    [][]Pixel{pixels},
		LoopCount: -1,
	}
	return e.Encode()
}

// EncodeAnimated encodes an ordered frame sequence. All frames must
// have exactly width*height pixels. When looping is set the stream
// carries an infinite-loop NETSCAPE2.0 record.
func EncodeAnimated(width, height uint16, frames [][]Pixel, looping bool) ([]byte, error) {
	loopCount := -1
	if looping {
		loopCount = 0
	}

	e := Encoder{
		Width:     width,
		Height:    height,
		Frames:    frames,
		LoopCount: loopCount,
	}
	return e.Encode()
}

// Encode serializes the full stream: header, logical screen descriptor,
// global color table, optional loop extension, one image section per
// frame, trailer. The color table is derived from the first frame only;
// later frames are mapped onto it.
func (e *Encoder) Encode() ([]byte, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}

	table := Palettize(e.Frames[0], gctSize)

	buf := make([]byte, 0, 1024)
	buf = append(buf, Header...)
	buf = appendScreenDescriptor(buf, e.Width, e.Height, table.BitsNeeded()-1)
	buf = table.AppendBytes(buf)

	if len(e.Frames) > 1 && e.LoopCount >= 0 {
		buf = appendLoopExtension(buf, uint16(e.LoopCount))
	}

	minCodeSize := max(2, table.BitsNeeded())

	for _, frame := range e.Frames {
		buf = appendImageDescriptor(buf, e.Width, e.Height)

		indices := MapPixels(frame, table)
		buf = append(buf, CompressImageData(indices, minCodeSize)...)
	}

	return appendTrailer(buf), nil
}

func (e *Encoder) validate() error {
	if e.Width == 0 || e.Height == 0 {
		return fmt.Errorf("gif: invalid dimensions %dx%d", e.Width, e.Height)
	}
	if len(e.Frames) == 0 {
		return ErrNoFrames
	}
	if e.LoopCount > 0xFFFF {
		return fmt.Errorf("gif: loop count %d out of range", e.LoopCount)
	}

	want := int(e.Width) * int(e.Height)
	for i, frame := range e.Frames {
		if len(frame) != want {
			return fmt.Errorf("gif: frame %d has %d pixels, want %d", i, len(frame), want)
		}
	}
	return nil
}
