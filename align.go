package blindmark

import "github.com/blindmark/blindmark/internal/align"

func toAlignConfig(c AlignConfig) align.Config {
	return align.Config{
		MaxFeatures:       c.MaxFeatures,
		ScaleFactor:       c.ScaleFactor,
		Levels:            c.Levels,
		PatchSize:         c.PatchSize,
		FASTThreshold:     c.FASTThreshold,
		ReprojectionPixel: c.ReprojectionPixel,
	}
}

func toAlignPlane(y []byte, width, height int) *align.Plane {
	p := align.NewPlane(height, width)
	for i, b := range y {
		p.Data[i] = float64(b)
	}
	return p
}

// alignImages warps suspect onto original's geometry using ORB-style
// feature matching and RANSAC homography estimation (spec §4.7). It
// returns the warped suspect image, or ErrAlignmentFailed when too few
// matches survive or RANSAC cannot find a consensus homography.
func alignImages(original, suspect *Image, cfg AlignConfig) (*Image, error) {
	origY := original.yBytes()
	suspY := suspect.yBytes()

	origPlane := toAlignPlane(origY, original.Width, original.Height)
	suspPlane := toAlignPlane(suspY, suspect.Width, suspect.Height)

	acfg := toAlignConfig(cfg)
	origKps, origDescs := align.DetectFeatures(origPlane, acfg)
	suspKps, suspDescs := align.DetectFeatures(suspPlane, acfg)

	matches := align.MatchDescriptors(origDescs, suspDescs)
	filtered, err := align.FilterMatches(matches)
	if err != nil {
		return nil, newError(ErrAlignmentFailed, "too few feature matches", err)
	}

	h, err := align.EstimateHomography(filtered, origKps, suspKps, cfg.ReprojectionPixel)
	if err != nil {
		return nil, newError(ErrAlignmentFailed, "RANSAC homography estimation failed", err)
	}

	// Re-project suspect's BGR channels through the same geometry by
	// warping each channel plane independently, then repack.
	out := NewImage(original.Width, original.Height)
	channel := make([]float64, suspect.Width*suspect.Height)
	for ch := 0; ch < 3; ch++ {
		for i := 0; i < len(channel); i++ {
			channel[i] = float64(suspect.BGR[i*3+ch])
		}
		srcPlane := &align.Plane{Data: channel, Rows: suspect.Height, Cols: suspect.Width}
		warpedCh := align.WarpPerspective(srcPlane, h, original.Width, original.Height)
		for i, v := range warpedCh.Data {
			out.BGR[i*3+ch] = clampByte(v)
		}
	}
	return out, nil
}

func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v + 0.5)
}
