package gif_test

import (
	"math/rand"
	"testing"

	"github.com/ostafen/gifmaker/pkg/gif"
	"github.com/stretchr/testify/require"
)

func TestMapPixels_Exact(t *testing.T) {
	table := gif.Palettize(eightGrays, 8)

	indices := gif.MapPixels(eightGrays, table)
	require.Len(t, indices, len(eightGrays))

	for i, idx := range indices {
		require.Equal(t, eightGrays[i], table[idx])
	}
}

func TestMapPixels_RoundTrip(t *testing.T) {
	table := gif.Palettize(eightGrays, 8)

	rnd := rand.New(rand.NewSource(7))
	pixels := make([]gif.Pixel, 500)
	for i := range pixels {
		pixels[i] = table[rnd.Intn(len(table))]
	}

	indices := gif.MapPixels(pixels, table)
	for i, idx := range indices {
		require.Equal(t, pixels[i], table[idx])
	}
}

func TestMapPixels_Argmin(t *testing.T) {
	table := gif.Palette{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 255, G: 255, B: 255},
	}

	dist := func(p, c gif.Pixel) int32 {
		dr := int32(p.R) - int32(c.R)
		dg := int32(p.G) - int32(c.G)
		db := int32(p.B) - int32(c.B)
		return dr*dr + dg*dg + db*db
	}

	rnd := rand.New(rand.NewSource(42))
	pixels := make([]gif.Pixel, 1000)
	for i := range pixels {
		pixels[i] = gif.Pixel{
			R: uint8(rnd.Intn(256)),
			G: uint8(rnd.Intn(256)),
			B: uint8(rnd.Intn(256)),
		}
	}

	indices := gif.MapPixels(pixels, table)
	for i, idx := range indices {
		require.Less(t, int(idx), len(table))

		got := dist(pixels[i], table[idx])
		for j, c := range table {
			d := dist(pixels[i], c)
			require.GreaterOrEqual(t, d, got, "entry %d beats chosen %d for %v", j, idx, pixels[i])
			if d == got {
				// ties must resolve to the lowest index
				require.LessOrEqual(t, int(idx), j)
				break
			}
		}
	}
}

func TestMapPixels_TieLowestIndex(t *testing.T) {
	table := gif.Palette{
		{R: 10, G: 10, B: 10},
		{R: 10, G: 10, B: 10},
		{R: 20, G: 20, B: 20},
	}

	indices := gif.MapPixels([]gif.Pixel{{R: 10, G: 10, B: 10}, {R: 20, G: 20, B: 20}}, table)
	require.Equal(t, []byte{0, 2}, indices)
}
