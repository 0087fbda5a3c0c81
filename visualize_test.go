package blindmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifferenceHeatmapMatchesDimensions(t *testing.T) {
	a := randomImage(16, 16, 21)
	b := randomImage(16, 16, 22)
	out := DifferenceHeatmap(a, b)
	assert.Equal(t, a.Width, out.Width)
	assert.Equal(t, a.Height, out.Height)
	assert.Len(t, out.BGR, a.Width*a.Height*3)
}
