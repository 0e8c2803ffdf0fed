package gif_test

import (
	"bytes"
	stdgif "image/gif"
	"math/rand"
	"testing"

	"github.com/ostafen/gifmaker/pkg/gif"
	"github.com/ostafen/gifmaker/pkg/hsv"
	"github.com/stretchr/testify/require"
)

func requireFraming(t *testing.T, data []byte) {
	t.Helper()

	require.GreaterOrEqual(t, len(data), 7)
	require.Equal(t, []byte(gif.Header), data[:6])
	require.Equal(t, byte(0x3B), data[len(data)-1])
}

func TestEncodeSingle_OnePixel(t *testing.T) {
	red := gif.Pixel{R: 255, G: 0, B: 0}

	data, err := gif.EncodeSingle(1, 1, []gif.Pixel{red})
	require.NoError(t, err)
	requireFraming(t, data)

	img, err := stdgif.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	r, g, b, _ := img.At(0, 0).RGBA()
	require.Equal(t, uint32(0xFFFF), r)
	require.Equal(t, uint32(0), g)
	require.Equal(t, uint32(0), b)
}

func TestEncodeSingle_ExactColors(t *testing.T) {
	data, err := gif.EncodeSingle(4, 2, eightGrays)
	require.NoError(t, err)
	requireFraming(t, data)

	img, err := stdgif.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	for i, want := range eightGrays {
		r, g, b, _ := img.At(i%4, i/4).RGBA()
		got := gif.Pixel{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
		require.Equal(t, want, got, "pixel %d", i)
	}
}

func TestEncodeSingle_Noise(t *testing.T) {
	const width, height = 64, 64

	rnd := rand.New(rand.NewSource(5))
	pixels := make([]gif.Pixel, width*height)
	for i := range pixels {
		pixels[i] = gif.Pixel{
			R: uint8(rnd.Intn(256)),
			G: uint8(rnd.Intn(256)),
			B: uint8(rnd.Intn(256)),
		}
	}

	data, err := gif.EncodeSingle(width, height, pixels)
	require.NoError(t, err)
	requireFraming(t, data)

	cfg, err := stdgif.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, width, cfg.Width)
	require.Equal(t, height, cfg.Height)

	_, err = stdgif.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}

func TestEncodeAnimated_Rainbow(t *testing.T) {
	const size = 32
	const frameCount = 36

	frames := make([][]gif.Pixel, frameCount)
	for f := range frames {
		pixels := make([]gif.Pixel, size*size)
		for i := range pixels {
			h := 360.0*float64(f)/frameCount + 360.0*float64(i)/float64(len(pixels))
			pixels[i] = hsv.New(h, 1, 1).Pixel()
		}
		frames[f] = pixels
	}

	data, err := gif.EncodeAnimated(size, size, frames, true)
	require.NoError(t, err)
	requireFraming(t, data)

	require.True(t, bytes.Contains(data, []byte("NETSCAPE2.0")))

	decoded, err := stdgif.DecodeAll(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, decoded.Image, frameCount)
	require.Equal(t, 0, decoded.LoopCount)
	require.Equal(t, size, decoded.Config.Width)
	require.Equal(t, size, decoded.Config.Height)
}

func TestEncodeAnimated_NoLoopRecord(t *testing.T) {
	frame := []gif.Pixel{{R: 1, G: 2, B: 3}}

	data, err := gif.EncodeAnimated(1, 1, [][]gif.Pixel{frame, frame}, false)
	require.NoError(t, err)
	require.False(t, bytes.Contains(data, []byte("NETSCAPE2.0")))

	decoded, err := stdgif.DecodeAll(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, decoded.Image, 2)
}

func TestEncodeSingle_NoLoopRecordForStill(t *testing.T) {
	data, err := gif.EncodeSingle(1, 1, []gif.Pixel{{R: 9, G: 9, B: 9}})
	require.NoError(t, err)
	require.False(t, bytes.Contains(data, []byte("NETSCAPE2.0")))
}

func TestEncoder_CallerErrors(t *testing.T) {
	_, err := gif.EncodeSingle(0, 1, nil)
	require.Error(t, err)

	_, err = gif.EncodeSingle(2, 2, make([]gif.Pixel, 3))
	require.Error(t, err)

	_, err = gif.EncodeAnimated(2, 2, nil, true)
	require.ErrorIs(t, err, gif.ErrNoFrames)

	_, err = gif.EncodeAnimated(2, 2, [][]gif.Pixel{
		make([]gif.Pixel, 4),
		make([]gif.Pixel, 5),
	}, true)
	require.Error(t, err)
}

func TestEncoder_LoopCount(t *testing.T) {
	frame := make([]gif.Pixel, 4)

	e := gif.Encoder{
		Width:     2,
		Height:    2,
		Frames:    [][]gif.Pixel{frame, frame},
		LoopCount: 5,
	}

	data, err := e.Encode()
	require.NoError(t, err)

	decoded, err := stdgif.DecodeAll(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 5, decoded.LoopCount)
}
