package blindmark

import "github.com/blindmark/blindmark/internal/dsp"

// Image is a decoded 3-channel BGR 8-bit pixel matrix, the boundary type
// between this package's numerical core and whatever image codec the
// host uses (see internal/imageio for the adapter that produces one from
// PNG/JPEG/BMP/WebP bytes).
type Image struct {
	BGR           []byte // packed BGR, stride Width*3, row-major
	Width, Height int
}

// NewImage allocates a zeroed Image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{BGR: make([]byte, width*height*3), Width: width, Height: height}
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	out := &Image{BGR: append([]byte(nil), img.BGR...), Width: img.Width, Height: img.Height}
	return out
}

// luminancePlane converts the image to a YUV-family representation and
// returns its Y channel as a dsp.Plane of float64 samples, along with the
// U and V byte planes needed to reconstruct BGR later.
func (img *Image) luminancePlane() (y *dsp.Plane, u, v []byte) {
	yb, ub, vb := dsp.BGRPlanesToYUV(img.BGR, img.Width, img.Height)
	plane := dsp.NewPlane(img.Height, img.Width)
	for i, b := range yb {
		plane.Data[i] = float64(b)
	}
	return plane, ub, vb
}

// withLuminance rebuilds a BGR image from a modified Y plane plus the U/V
// byte planes carried through unchanged, clipping samples back to [0,255].
func withLuminance(y *dsp.Plane, u, v []byte, width, height int) *Image {
	yb := make([]byte, width*height)
	for i, f := range y.Data {
		yb[i] = dsp.Clip8(int(f + 0.5))
	}
	bgr := dsp.YUVPlanesToBGR(yb, u, v, width, height)
	return &Image{BGR: bgr, Width: width, Height: height}
}

// yBytes returns just the Y channel as bytes, without reconstructing BGR.
func (img *Image) yBytes() []byte {
	yb, _, _ := dsp.BGRPlanesToYUV(img.BGR, img.Width, img.Height)
	return yb
}
