package blindmark

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDCTPairEmbedExtractRoundTrip(t *testing.T) {
	// 256x256 gives 32*32 = 1024 blocks, which isn't quite enough for the
	// full bit stream, so use a larger plane.
	y := randomPlane(512, 512, 7)
	cfg := DefaultConfig()

	bits := make([]byte, BitStreamLen)
	r := rand.New(rand.NewSource(9))
	for i := range bits {
		bits[i] = byte(r.Intn(2))
	}

	embedded, err := embedDCTPair(y, bits, cfg)
	require.NoError(t, err)

	extracted, err := extractDCTPair(embedded, BitStreamLen, cfg)
	require.NoError(t, err)
	assert.Equal(t, bits, extracted)
}

func TestDCTPairTooSmallImage(t *testing.T) {
	y := randomPlane(16, 16, 3)
	cfg := DefaultConfig()
	bits := make([]byte, BitStreamLen)
	_, err := embedDCTPair(y, bits, cfg)
	require.Error(t, err)
	assert.Equal(t, ErrImageTooSmall, KindOf(err))
}
