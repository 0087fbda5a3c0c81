// Package imageio adapts between encoded image bytes (PNG, JPEG, BMP,
// WebP) and the packed BGR pixel matrices the watermark codec's core
// operates on. Image decode/encode is explicitly out of scope for the
// core (spec §1); this package is the external collaborator that
// satisfies it for the CLI.
package imageio

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// Pixels is a decoded packed-BGR 8-bit image.
type Pixels struct {
	BGR           []byte
	Width, Height int
}

// Decode sniffs the format from the stream's magic bytes and decodes it
// into a Pixels buffer.
func Decode(r io.Reader) (*Pixels, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: read: %w", err)
	}

	var img image.Image
	switch {
	case bytes.HasPrefix(raw, []byte("\x89PNG")):
		img, err = png.Decode(bytes.NewReader(raw))
	case bytes.HasPrefix(raw, []byte{0xFF, 0xD8}):
		img, err = jpeg.Decode(bytes.NewReader(raw))
	case bytes.HasPrefix(raw, []byte("BM")):
		img, err = bmp.Decode(bytes.NewReader(raw))
	case bytes.HasPrefix(raw, []byte("RIFF")):
		img, err = webp.Decode(bytes.NewReader(raw))
	default:
		return nil, fmt.Errorf("imageio: unrecognized image format")
	}
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}

	return fromImage(img), nil
}

func fromImage(img image.Image) *Pixels {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := &Pixels{BGR: make([]byte, w*h*3), Width: w, Height: h}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			out.BGR[i] = byte(b >> 8)
			out.BGR[i+1] = byte(g >> 8)
			out.BGR[i+2] = byte(r >> 8)
			i += 3
		}
	}
	return out
}

func (p *Pixels) toRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			off := (y*p.Width + x) * 3
			i := img.PixOffset(x, y)
			img.Pix[i] = p.BGR[off+2]
			img.Pix[i+1] = p.BGR[off+1]
			img.Pix[i+2] = p.BGR[off+0]
			img.Pix[i+3] = 255
		}
	}
	return img
}

// EncodePNG writes p to w as a lossless PNG, the format the watermark
// output MUST use since JPEG recompression would destroy the embedded
// carrier signal.
func EncodePNG(w io.Writer, p *Pixels) error {
	if err := png.Encode(w, p.toRGBA()); err != nil {
		return fmt.Errorf("imageio: encode png: %w", err)
	}
	return nil
}

// Resize performs nearest-neighbor resampling to targetW x targetH, a
// convenience mirroring the original tool's batch preprocessing step;
// neither the codec's core nor the CLI calls this.
func Resize(p *Pixels, targetW, targetH int) *Pixels {
	out := &Pixels{BGR: make([]byte, targetW*targetH*3), Width: targetW, Height: targetH}
	for y := 0; y < targetH; y++ {
		sy := y * p.Height / targetH
		for x := 0; x < targetW; x++ {
			sx := x * p.Width / targetW
			srcOff := (sy*p.Width + sx) * 3
			dstOff := (y*targetW + x) * 3
			copy(out.BGR[dstOff:dstOff+3], p.BGR[srcOff:srcOff+3])
		}
	}
	return out
}
