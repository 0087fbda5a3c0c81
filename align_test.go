package blindmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignImagesIdentityIsNearNoOp(t *testing.T) {
	img := randomImage(128, 128, 41)
	cfg := DefaultAlignConfig()
	cfg.FASTThreshold = 10

	warped, err := alignImages(img, img, cfg)
	require.NoError(t, err)

	var diff float64
	for i := range img.BGR {
		d := int(img.BGR[i]) - int(warped.BGR[i])
		if d < 0 {
			d = -d
		}
		diff += float64(d)
	}
	assert.Less(t, diff/float64(len(img.BGR)), 5.0)
}

func TestAlignImagesFailsOnFeaturelessFlatImages(t *testing.T) {
	flat := NewImage(64, 64)
	for i := range flat.BGR {
		flat.BGR[i] = 128
	}
	cfg := DefaultAlignConfig()
	_, err := alignImages(flat, flat, cfg)
	require.Error(t, err)
	assert.Equal(t, ErrAlignmentFailed, KindOf(err))
}

func TestClampByteBounds(t *testing.T) {
	assert.Equal(t, byte(0), clampByte(-10))
	assert.Equal(t, byte(255), clampByte(300))
	assert.Equal(t, byte(128), clampByte(127.6))
}
