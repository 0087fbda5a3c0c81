package dsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDCTRoundTrip(t *testing.T) {
	var block, freq, back [BlockSize * BlockSize]float64
	for i := range block {
		block[i] = float64(i%251) - 120
	}
	DCT8x8(&block, &freq)
	IDCT8x8(&freq, &back)
	for i := range block {
		assert.InDelta(t, block[i], back[i], 1e-6)
	}
}

func TestExtractStoreBlockRoundTrip(t *testing.T) {
	plane := NewPlane(16, 16)
	for i := range plane.Data {
		plane.Data[i] = float64(i)
	}
	var block [BlockSize * BlockSize]float64
	ExtractBlock(plane.Data, plane.Cols, 8, 8, &block)
	assert.Equal(t, plane.At(8, 8), block[0])

	for i := range block {
		block[i] = 99
	}
	StoreBlock(plane.Data, plane.Cols, 0, 0, &block)
	assert.Equal(t, 99.0, plane.At(0, 0))
	assert.Equal(t, 99.0, plane.At(7, 7))
	assert.Equal(t, float64(8*plane.Cols), plane.At(8, 0))
}

func TestHaarRoundTrip(t *testing.T) {
	p := NewPlane(8, 8)
	for i := range p.Data {
		p.Data[i] = math.Sin(float64(i))
	}
	ll, lh, hl, hh := Haar2D(p)
	back := InverseHaar2D(ll, lh, hl, hh, p.Rows, p.Cols)
	for i := range p.Data {
		assert.InDelta(t, p.Data[i], back.Data[i], 1e-9)
	}
}

func TestHaarOddDimensionsCropBack(t *testing.T) {
	p := NewPlane(7, 9)
	for i := range p.Data {
		p.Data[i] = float64(i)
	}
	ll, lh, hl, hh := Haar2D(p)
	back := InverseHaar2D(ll, lh, hl, hh, p.Rows, p.Cols)
	assert.Equal(t, p.Rows, back.Rows)
	assert.Equal(t, p.Cols, back.Cols)
}
