package blindmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeQualityIdenticalImagesIsPerfect(t *testing.T) {
	img := randomImage(32, 32, 11)
	q := computeQuality(img, img)
	assert.Equal(t, 100.0, q.PSNR)
	assert.InDelta(t, 1.0, q.SSIM, 1e-9)
}

func TestComputeQualityDropsWithNoise(t *testing.T) {
	a := randomImage(32, 32, 12)
	b := a.Clone()
	for i := range b.BGR {
		if i%5 == 0 {
			b.BGR[i] = byte((int(b.BGR[i]) + 40) % 256)
		}
	}
	q := computeQuality(a, b)
	assert.Less(t, q.PSNR, 100.0)
	assert.Less(t, q.SSIM, 1.0)
}
