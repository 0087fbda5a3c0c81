package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSameSizeAsInput(t *testing.T) {
	w, h := 4, 4
	a := make([]byte, w*h*3)
	b := make([]byte, w*h*3)
	for i := range b {
		b[i] = byte(i % 255)
	}
	out := Generate(a, b, w, h)
	assert.Len(t, out, w*h*3)
}

func TestGenerateIdenticalImagesIsUniform(t *testing.T) {
	w, h := 4, 4
	a := make([]byte, w*h*3)
	for i := range a {
		a[i] = 100
	}
	out := Generate(a, a, w, h)
	// Zero difference everywhere means every pixel normalizes to the same
	// value, so every output pixel should match the first.
	for i := 3; i < len(out); i += 3 {
		assert.Equal(t, out[0:3], out[i:i+3])
	}
}

func TestJetRGBClampsRange(t *testing.T) {
	r0, g0, b0 := jetRGB(-1)
	r1, g1, b1 := jetRGB(2)
	assert.Equal(t, jetColormap[0], [3]byte{r0, g0, b0})
	assert.Equal(t, jetColormap[len(jetColormap)-1], [3]byte{r1, g1, b1})
}
