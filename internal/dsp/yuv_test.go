package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBGRYUVRoundTripApprox(t *testing.T) {
	cases := [][3]uint8{{10, 20, 30}, {255, 255, 255}, {0, 0, 0}, {128, 64, 200}}
	for _, c := range cases {
		y, u, v := BGRToYUV(c[0], c[1], c[2])
		b, g, r := YUVToBGR(y, u, v)
		assert.InDelta(t, int(c[0]), int(b), 2)
		assert.InDelta(t, int(c[1]), int(g), 2)
		assert.InDelta(t, int(c[2]), int(r), 2)
	}
}

func TestClip8(t *testing.T) {
	assert.Equal(t, uint8(0), Clip8(-5))
	assert.Equal(t, uint8(255), Clip8(300))
	assert.Equal(t, uint8(100), Clip8(100))
}
