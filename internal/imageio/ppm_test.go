package imageio_test

import (
	"bytes"
	"testing"

	"github.com/ostafen/gifmaker/internal/imageio"
	"github.com/ostafen/gifmaker/pkg/gif"
	"github.com/stretchr/testify/require"
)

func TestDecodePPM_Binary(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("P6\n# a comment\n2 1\n255\n")
	buf.Write([]byte{255, 0, 0, 0, 0, 255})

	img, err := imageio.DecodePPM(&buf)
	require.NoError(t, err)

	require.Equal(t, 2, img.Width)
	require.Equal(t, 1, img.Height)
	require.Equal(t, []gif.Pixel{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 0, B: 255},
	}, img.Pixels)
}

func TestDecodePPM_Plain(t *testing.T) {
	src := "P3\n2 2\n255\n255 0 0  0 255 0\n0 0 255  10 20 30\n"

	img, err := imageio.DecodePPM(bytes.NewReader([]byte(src)))
	require.NoError(t, err)

	require.Equal(t, []gif.Pixel{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 10, G: 20, B: 30},
	}, img.Pixels)
}

func TestDecodePPM_Errors(t *testing.T) {
	for name, src := range map[string]string{
		"bad magic":       "P5\n2 2\n255\n",
		"bad max value":   "P6\n2 2\n65535\n",
		"zero dimensions": "P6\n0 2\n255\n",
		"truncated":       "P6\n2 2\n255\nxx",
		"bad sample":      "P3\n1 1\n255\n300 0 0\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := imageio.DecodePPM(bytes.NewReader([]byte(src)))
			require.Error(t, err)
		})
	}
}

func TestPPM_RoundTrip(t *testing.T) {
	img := &imageio.Image{
		Width:  3,
		Height: 2,
		Pixels: []gif.Pixel{
			{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}, {R: 7, G: 8, B: 9},
			{R: 10, G: 11, B: 12}, {R: 13, G: 14, B: 15}, {R: 16, G: 17, B: 18},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, imageio.EncodePPM(&buf, img))

	got, err := imageio.DecodePPM(&buf)
	require.NoError(t, err)
	require.Equal(t, img, got)
}

func TestImage_RGBA(t *testing.T) {
	img := &imageio.Image{
		Width:  1,
		Height: 2,
		Pixels: []gif.Pixel{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}},
	}

	rgba := img.RGBA()
	require.Equal(t, []byte{1, 2, 3, 255, 4, 5, 6, 255}, rgba.Pix)
}
