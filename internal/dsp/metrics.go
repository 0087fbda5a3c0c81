package dsp

import "math"

// PSNR and SSIM quality metrics, computed on luminance per this repo's
// resolution of spec.md §9's Open Question (the original Python computed
// PSNR over RGB and SSIM over luminance; here both use the same plane so
// the two numbers are directly comparable).

// PSNR returns the peak signal-to-noise ratio between two equal-length
// sample slices (luminance bytes), in dB. A perfect match is reported as
// 100, matching the spec's cap at MSE=0.
func PSNR(a, b []byte) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var sumSq float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sumSq += d * d
	}
	mse := sumSq / float64(len(a))
	if mse == 0 {
		return 100
	}
	return 20 * math.Log10(255/math.Sqrt(mse))
}

// gaussianKernel1D builds a normalized 1-D Gaussian kernel of the given
// size and standard deviation, matching the window used by Wang et al.
// 2004 ("Image Quality Assessment: From Error Visibility to Structural
// Similarity"), size=11, sigma=1.5.
func gaussianKernel1D(size int, sigma float64) []float64 {
	k := make([]float64, size)
	center := float64(size-1) / 2
	sum := 0.0
	for i := range k {
		x := float64(i) - center
		k[i] = math.Exp(-(x * x) / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// ssimFilter applies a separable Gaussian filter to a plane, matching
// scipy/skimage's default SSIM window convolution (reflect-like edge
// handling via clamped indices, consistent with the rest of this package).
func ssimFilter(p *Plane, kernel []float64) *Plane {
	r := len(kernel) / 2
	tmp := NewPlane(p.Rows, p.Cols)
	for y := 0; y < p.Rows; y++ {
		for x := 0; x < p.Cols; x++ {
			sum := 0.0
			for k := -r; k <= r; k++ {
				xx := clampIndex(x+k, p.Cols)
				sum += p.At(y, xx) * kernel[k+r]
			}
			tmp.Set(y, x, sum)
		}
	}
	out := NewPlane(p.Rows, p.Cols)
	for y := 0; y < p.Rows; y++ {
		for x := 0; x < p.Cols; x++ {
			sum := 0.0
			for k := -r; k <= r; k++ {
				yy := clampIndex(y+k, p.Rows)
				sum += tmp.At(yy, x) * kernel[k+r]
			}
			out.Set(y, x, sum)
		}
	}
	return out
}

// SSIM computes the mean structural similarity index between two
// same-sized luminance planes using the standard Wang 2004 formulation:
// an 11x11 Gaussian window, sigma=1.5, K1=0.01, K2=0.03, dynamic range 255.
func SSIM(a, b *Plane) float64 {
	const (
		k1, k2 = 0.01, 0.03
		l      = 255.0
	)
	c1 := (k1 * l) * (k1 * l)
	c2 := (k2 * l) * (k2 * l)

	kernel := gaussianKernel1D(11, 1.5)

	muA := ssimFilter(a, kernel)
	muB := ssimFilter(b, kernel)

	aa := elementMul(a, a)
	bb := elementMul(b, b)
	ab := elementMul(a, b)

	sigmaAA := ssimFilter(aa, kernel)
	sigmaBB := ssimFilter(bb, kernel)
	sigmaAB := ssimFilter(ab, kernel)

	n := len(a.Data)
	sum := 0.0
	for i := 0; i < n; i++ {
		muAi, muBi := muA.Data[i], muB.Data[i]
		muAA := muAi * muAi
		muBB := muBi * muBi
		muAB := muAi * muBi

		varA := sigmaAA.Data[i] - muAA
		varB := sigmaBB.Data[i] - muBB
		covAB := sigmaAB.Data[i] - muAB

		num := (2*muAB + c1) * (2*covAB + c2)
		den := (muAA + muBB + c1) * (varA + varB + c2)
		sum += num / den
	}
	return sum / float64(n)
}

func elementMul(a, b *Plane) *Plane {
	out := NewPlane(a.Rows, a.Cols)
	for i := range a.Data {
		out.Data[i] = a.Data[i] * b.Data[i]
	}
	return out
}
