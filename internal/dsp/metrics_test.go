package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPSNRIdenticalIsCapped(t *testing.T) {
	a := []byte{10, 20, 30, 40}
	assert.Equal(t, 100.0, PSNR(a, a))
}

func TestPSNRDecreasesWithMoreError(t *testing.T) {
	a := []byte{100, 100, 100, 100}
	small := []byte{101, 100, 100, 100}
	large := []byte{150, 100, 100, 100}
	assert.Greater(t, PSNR(a, small), PSNR(a, large))
}

func TestSSIMIdenticalIsOne(t *testing.T) {
	p := NewPlane(16, 16)
	for i := range p.Data {
		p.Data[i] = float64(i % 255)
	}
	assert.InDelta(t, 1.0, SSIM(p, p), 1e-9)
}

func TestSSIMDropsWithNoise(t *testing.T) {
	a := NewPlane(16, 16)
	b := NewPlane(16, 16)
	for i := range a.Data {
		a.Data[i] = float64(i % 255)
		b.Data[i] = float64((i * 7) % 255)
	}
	assert.Less(t, SSIM(a, b), 1.0)
}
