package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHVSMaskPreservesShape(t *testing.T) {
	p := NewPlane(12, 9)
	for i := range p.Data {
		p.Data[i] = float64(i % 255)
	}
	mask := HVSMask(p, 1.0)
	assert.Equal(t, p.Rows, mask.Rows)
	assert.Equal(t, p.Cols, mask.Cols)
}

func TestHVSMaskFlatRegionIsBaseAlpha(t *testing.T) {
	p := NewPlane(10, 10)
	for i := range p.Data {
		p.Data[i] = 128
	}
	mask := HVSMask(p, 2.0)
	for _, v := range mask.Data {
		assert.InDelta(t, 2.0, v, 1e-9)
	}
}
