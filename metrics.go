package blindmark

import "github.com/blindmark/blindmark/internal/dsp"

// Quality holds the per-embed quality metrics reported alongside the
// watermarked image.
type Quality struct {
	PSNR float64
	SSIM float64
}

// computeQuality measures PSNR and SSIM between two images on luminance,
// per this implementation's resolution of spec §4.10's PSNR-basis
// ambiguity (both metrics share the same plane for direct comparability).
func computeQuality(original, watermarked *Image) Quality {
	origY := original.yBytes()
	markY := watermarked.yBytes()

	psnr := dsp.PSNR(origY, markY)

	origPlane := dsp.NewPlane(original.Height, original.Width)
	markPlane := dsp.NewPlane(watermarked.Height, watermarked.Width)
	for i, b := range origY {
		origPlane.Data[i] = float64(b)
	}
	for i, b := range markY {
		markPlane.Data[i] = float64(b)
	}
	ssim := dsp.SSIM(origPlane, markPlane)

	return Quality{PSNR: psnr, SSIM: ssim}
}
