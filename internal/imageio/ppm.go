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

// Package imageio decodes portable pixmap (PPM) files into the raw
// pixel grids the encoder consumes. Other raster formats enter through
// the stdlib image decoders in the pipeline layer.
package imageio

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"github.com/ostafen/gifmaker/pkg/gif"
)

// Image is a decoded RGB raster.
type Image struct {
	Width, Height int
	Pixels        []gif.Pixel
}

// RGBA copies the raster into a stdlib image, opaque alpha.
func (img *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i, p := range img.Pixels {
		out.Pix[4*i+0] = p.R
		out.Pix[4*i+1] = p.G
		out.Pix[4*i+2] = p.B
		out.Pix[4*i+3] = 0xFF
	}
	return out
}

// DecodePPM reads a binary (P6) or plain (P3) pixmap with an 8-bit
// channel depth.
func DecodePPM(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)

	magic, err := nextToken(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: reading magic: %v", err)
	}
	if magic != "P6" && magic != "P3" {
		return nil, fmt.Errorf("ppm: unsupported magic %q", magic)
	}

	width, err := nextInt(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: reading width: %v", err)
	}
	height, err := nextInt(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: reading height: %v", err)
	}
	maxVal, err := nextInt(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: reading max value: %v", err)
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ppm: invalid dimensions %dx%d", width, height)
	}
	if maxVal != 255 {
		return nil, fmt.Errorf("ppm: unsupported max value %d", maxVal)
	}

	img := &Image{
		Width:  width,
		Height: height,
		Pixels: make([]gif.Pixel, width*height),
	}

	if magic == "P3" {
		for i := range img.Pixels {
			r, err := nextInt(br)
			if err != nil {
				return nil, fmt.Errorf("ppm: reading pixel %d: %v", i, err)
			}
			g, err := nextInt(br)
			if err != nil {
				return nil, fmt.Errorf("ppm: reading pixel %d: %v", i, err)
			}
			b, err := nextInt(br)
			if err != nil {
				return nil, fmt.Errorf("ppm: reading pixel %d: %v", i, err)
			}
			if r > 255 || g > 255 || b > 255 {
				return nil, fmt.Errorf("ppm: sample out of range at pixel %d", i)
			}
			img.Pixels[i] = gif.Pixel{R: uint8(r), G: uint8(g), B: uint8(b)}
		}
		return img, nil
	}

	raw := make([]byte, 3*width*height)
	if _, err := io.ReadFull(br, raw); err != nil {
		return nil, fmt.Errorf("ppm: reading raster: %v", err)
	}
	for i := range img.Pixels {
		img.Pixels[i] = gif.Pixel{R: raw[3*i], G: raw[3*i+1], B: raw[3*i+2]}
	}
	return img, nil
}

// EncodePPM writes the image as a binary P6 pixmap.
func EncodePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width, img.Height)
	for _, p := range img.Pixels {
		bw.WriteByte(p.R)
		bw.WriteByte(p.G)
		bw.WriteByte(p.B)
	}
	return bw.Flush()
}

// nextToken skips whitespace and # comments and returns the following
// whitespace-delimited token. The single whitespace byte terminating
// the token is consumed, which is exactly what the P6 raster needs.
func nextToken(r *bufio.Reader) (string, error) {
	var tok []byte
	inComment := false

	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}

		switch {
		case inComment:
			if b == '\n' {
				inComment = false
			}
		case b == '#':
			if len(tok) > 0 {
				return string(tok), nil
			}
			inComment = true
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func nextInt(r *bufio.Reader) (int, error) {
	tok, err := nextToken(r)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid integer %q", tok)
		}
		n = n*10 + int(c-'0')
		if n > 1<<20 {
			return 0, fmt.Errorf("value %q out of range", tok)
		}
	}
	if len(tok) == 0 {
		return 0, fmt.Errorf("empty integer token")
	}
	return n, nil
}
