package blindmark

import "github.com/blindmark/blindmark/internal/heatmap"

// DifferenceHeatmap renders the amplified-difference visualization
// between original and watermarked (spec §4.9): per-pixel absolute
// difference, normalized, colorized with the jet colormap, and blended
// 0.3*heatmap + 0.7*original.
func DifferenceHeatmap(original, watermarked *Image) *Image {
	out := heatmap.Generate(original.BGR, watermarked.BGR, original.Width, original.Height)
	return &Image{BGR: out, Width: original.Width, Height: original.Height}
}
