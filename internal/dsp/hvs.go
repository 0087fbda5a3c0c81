package dsp

// HVS mask: a 3x3 Gaussian blur followed by an absolute Laplacian response,
// min-max normalized to [0,1]. Higher values mark texture-rich regions that
// can tolerate a stronger watermark signal without becoming visible.

// gaussian3x3 is a normalized 3x3 Gaussian kernel (sigma ~ 1, matching
// OpenCV's default cv2.GaussianBlur(img, (3,3), 0) kernel).
var gaussian3x3 = [3][3]float64{
	{1.0 / 16, 2.0 / 16, 1.0 / 16},
	{2.0 / 16, 4.0 / 16, 2.0 / 16},
	{1.0 / 16, 2.0 / 16, 1.0 / 16},
}

// laplacian3x3 is the standard 4-neighbor Laplacian kernel used by
// cv2.Laplacian with the default aperture size of 1.
var laplacian3x3 = [3][3]float64{
	{0, 1, 0},
	{1, -4, 1},
	{0, 1, 0},
}

func convolve3x3(src *Plane, kernel [3][3]float64) *Plane {
	out := NewPlane(src.Rows, src.Cols)
	for r := 0; r < src.Rows; r++ {
		for c := 0; c < src.Cols; c++ {
			sum := 0.0
			for kr := -1; kr <= 1; kr++ {
				rr := clampIndex(r+kr, src.Rows)
				for kc := -1; kc <= 1; kc++ {
					cc := clampIndex(c+kc, src.Cols)
					sum += src.At(rr, cc) * kernel[kr+1][kc+1]
				}
			}
			out.Set(r, c, sum)
		}
	}
	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// HVSMask produces a per-pixel perceptual strength map from y (a luminance
// plane). baseAlpha is the caller's requested embedding strength; the
// returned plane is baseAlpha * (1 + 2*normalizedLaplacian), matching the
// original generate_log_mask's k=2.0 scaling factor.
func HVSMask(y *Plane, baseAlpha float64) *Plane {
	blurred := convolve3x3(y, gaussian3x3)
	lap := convolve3x3(blurred, laplacian3x3)

	absLap := NewPlane(lap.Rows, lap.Cols)
	minV, maxV := lap.Data[0], lap.Data[0]
	for i, v := range lap.Data {
		av := v
		if av < 0 {
			av = -av
		}
		absLap.Data[i] = av
		if i == 0 {
			minV, maxV = av, av
		} else {
			if av < minV {
				minV = av
			}
			if av > maxV {
				maxV = av
			}
		}
	}

	out := NewPlane(y.Rows, y.Cols)
	span := maxV - minV
	for i, v := range absLap.Data {
		norm := 0.0
		if span > 0 {
			norm = (v - minV) / span
		}
		out.Data[i] = baseAlpha * (1 + 2*norm)
	}
	return out
}
