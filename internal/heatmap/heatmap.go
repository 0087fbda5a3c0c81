// Package heatmap produces an amplified-difference visualization between
// an original and a watermarked image, for human inspection of where the
// embedder placed signal.
package heatmap

import "math"

// jetColormap is a fixed sample of the standard "jet" colormap (as used
// by cv2.applyColorMap(..., COLORMAP_JET)), 32 RGB control points
// interpolated linearly across the [0,255] input range.
var jetColormap = [32][3]byte{
	{0, 0, 128}, {0, 0, 144}, {0, 0, 160}, {0, 0, 176}, {0, 0, 192}, {0, 0, 208}, {0, 0, 224}, {0, 0, 240},
	{0, 0, 255}, {0, 16, 255}, {0, 64, 255}, {0, 112, 255}, {0, 160, 255}, {0, 208, 255}, {0, 255, 255}, {48, 255, 208},
	{96, 255, 160}, {144, 255, 112}, {192, 255, 64}, {240, 255, 16}, {255, 240, 0}, {255, 192, 0}, {255, 144, 0}, {255, 96, 0},
	{255, 48, 0}, {255, 0, 0}, {240, 0, 0}, {208, 0, 0}, {176, 0, 0}, {144, 0, 0}, {112, 0, 0}, {80, 0, 0},
}

// jetRGB maps a normalized value in [0,1] to an (R,G,B) triple.
func jetRGB(t float64) (byte, byte, byte) {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	pos := t * float64(len(jetColormap)-1)
	i := int(pos)
	if i >= len(jetColormap)-1 {
		c := jetColormap[len(jetColormap)-1]
		return c[0], c[1], c[2]
	}
	frac := pos - float64(i)
	c0, c1 := jetColormap[i], jetColormap[i+1]
	lerp := func(a, b byte) byte {
		return byte(float64(a) + frac*(float64(b)-float64(a)))
	}
	return lerp(c0[0], c1[0]), lerp(c0[1], c1[1]), lerp(c0[2], c1[2])
}

// Generate builds a BGR difference heatmap: |original-watermarked| per
// pixel, min-max normalized, colorized with the jet colormap, and blended
// 0.3*heatmap + 0.7*original. original and watermarked are packed BGR
// buffers of the same width*height*3 length.
func Generate(original, watermarked []byte, width, height int) []byte {
	n := width * height
	gray := make([]float64, n)
	minV, maxV := math.MaxFloat64, -math.MaxFloat64
	for i := 0; i < n; i++ {
		off := i * 3
		sum := 0.0
		for k := 0; k < 3; k++ {
			d := float64(original[off+k]) - float64(watermarked[off+k])
			if d < 0 {
				d = -d
			}
			sum += d
		}
		v := sum / 3
		gray[i] = v
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	span := maxV - minV
	out := make([]byte, n*3)
	for i := 0; i < n; i++ {
		norm := 0.0
		if span > 0 {
			norm = (gray[i] - minV) / span
		}
		r, g, b := jetRGB(norm)
		off := i * 3
		origB, origG, origR := original[off], original[off+1], original[off+2]
		out[off] = blend(b, origB)
		out[off+1] = blend(g, origG)
		out[off+2] = blend(r, origR)
	}
	return out
}

func blend(heat, orig byte) byte {
	v := 0.3*float64(heat) + 0.7*float64(orig)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return byte(v + 0.5)
}
