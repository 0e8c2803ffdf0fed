package gif_test

import (
	"testing"

	"github.com/ostafen/gifmaker/pkg/gif"
	"github.com/stretchr/testify/require"
)

var eightGrays = []gif.Pixel{
	{R: 10, G: 20, B: 30},
	{R: 40, G: 50, B: 60},
	{R: 70, G: 80, B: 90},
	{R: 100, G: 110, B: 120},
	{R: 130, G: 140, B: 150},
	{R: 160, G: 170, B: 180},
	{R: 190, G: 200, B: 210},
	{R: 220, G: 230, B: 240},
}

func TestPalettize_ExactFit(t *testing.T) {
	table := gif.Palettize(eightGrays, 8)
	require.Equal(t, gif.Palette(eightGrays), table)
}

func TestPalettize_Oversized(t *testing.T) {
	table := gif.Palettize(eightGrays, 256)
	require.Len(t, table, 256)

	// padding pushes the source colors out of the leading entries
	require.NotEqual(t, gif.Palette(eightGrays), table[:8])

	for _, p := range eightGrays {
		require.Contains(t, table, p)
	}
	require.Contains(t, table, gif.Pixel{})
}

func TestPalettize_Sizes(t *testing.T) {
	for n := 1; n <= 256; n *= 2 {
		table := gif.Palettize(eightGrays, n)
		require.Len(t, table, n, "n=%d", n)
	}
}

func TestPalettize_SinglePixelAverage(t *testing.T) {
	pixels := []gif.Pixel{
		{R: 0, G: 10, B: 255},
		{R: 100, G: 20, B: 0},
		{R: 200, G: 31, B: 1},
	}

	table := gif.Palettize(pixels, 1)
	require.Equal(t, gif.Palette{{R: 100, G: 20, B: 85}}, table)
}

func TestPalettize_EmptyInput(t *testing.T) {
	require.Equal(t, gif.Palette{{}}, gif.Palettize(nil, 1))

	table := gif.Palettize(nil, 16)
	require.Len(t, table, 16)
	for _, p := range table {
		require.Equal(t, gif.Pixel{}, p)
	}
}

func TestPalettize_EmptyBuckets(t *testing.T) {
	pixels := []gif.Pixel{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	}

	table := gif.Palettize(pixels, 16)
	require.Len(t, table, 16)
	require.Contains(t, table, gif.Pixel{})

	for _, p := range pixels {
		require.Contains(t, table, p)
	}
}

func TestPalettize_WidestChannelTieBreak(t *testing.T) {
	// equal ranges on all channels: the red channel must drive the sort
	pixels := []gif.Pixel{
		{R: 200, G: 0, B: 100},
		{R: 0, G: 200, B: 0},
		{R: 100, G: 100, B: 200},
		{R: 50, G: 50, B: 50},
	}

	table := gif.Palettize(pixels, 2)
	require.Equal(t, gif.Palette{
		{R: 25, G: 125, B: 25},  // mean of the two lowest-red pixels
		{R: 150, G: 50, B: 150}, // mean of the two highest-red pixels
	}, table)
}
