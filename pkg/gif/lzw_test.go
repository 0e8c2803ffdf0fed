package gif_test

import (
	"math/rand"
	"testing"

	"github.com/ostafen/gifmaker/pkg/gif"
	"github.com/stretchr/testify/require"
)

func TestCompress_ReferenceStream(t *testing.T) {
	indices := []byte{
		0x28, 0xFF, 0xFF, 0xFF, 0x28, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}

	codes := gif.Compress(indices, 8)
	require.Equal(t, []uint16{256, 0x28, 0xFF, 259, 258, 259, 262, 263, 257}, codes)
}

func TestCompress_LeadingClearAndEOI(t *testing.T) {
	codes := gif.Compress([]byte{3}, 2)
	require.Equal(t, []uint16{4, 3, 5}, codes)

	codes = gif.Compress(nil, 2)
	require.Equal(t, []uint16{4, 5}, codes)
}

func TestCompress_SingleRun(t *testing.T) {
	indices := make([]byte, 100)

	codes := gif.Compress(indices, 2)

	require.Equal(t, uint16(4), codes[0])
	require.Equal(t, uint16(5), codes[len(codes)-1])

	// a run of equal bytes grows one dictionary entry per emission, so
	// the stream must shrink well below the input length
	require.Less(t, len(codes), 20)
}

func TestCompress_CodesWithin12Bits(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	indices := make([]byte, 64*1024)
	for i := range indices {
		indices[i] = byte(rnd.Intn(256))
	}

	codes := gif.Compress(indices, 8)

	clears := 0
	for _, c := range codes {
		require.LessOrEqual(t, c, uint16(0xFFF))
		if c == 256 {
			clears++
		}
	}

	// random input exhausts the 4096-entry dictionary several times
	require.Greater(t, clears, 1)
}

func TestCompress_Deterministic(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	indices := make([]byte, 4096)
	for i := range indices {
		indices[i] = byte(rnd.Intn(16))
	}

	require.Equal(t, gif.Compress(indices, 4), gif.Compress(indices, 4))
}
