package synctpl

import "math"

// Config mirrors the watermark codec's sync template parameters: peak
// frequency, base angle, amplification strength, and patch radius.
type Config struct {
	Frequency    float64
	AngleDegrees float64
	Strength     float64
	PatchRadius  int
}

// Plane is a minimal row-major float64 matrix, independent of the root
// package's internal/dsp.Plane so this package has no dependency on it.
type Plane struct {
	Data       []float64
	Rows, Cols int
}

// NewPlane allocates a zeroed Plane.
func NewPlane(rows, cols int) *Plane {
	return &Plane{Data: make([]float64, rows*cols), Rows: rows, Cols: cols}
}

func (p *Plane) At(r, c int) float64    { return p.Data[r*p.Cols+c] }
func (p *Plane) Set(r, c int, v float64) { p.Data[r*p.Cols+c] = v }

func toGrid(p *Plane) *Grid {
	g := NewGrid(p.Rows, p.Cols)
	for i, v := range p.Data {
		g.Data[i] = complex(v, 0)
	}
	return g
}

func clip8f(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// peakLocations returns the four symmetric peak coordinates for a W x H
// spectrum centered at (cx, cy).
func peakLocations(cfg Config, w, h, cx, cy int) [4][2]int {
	var pts [4][2]int
	for i := 0; i < 4; i++ {
		theta := (cfg.AngleDegrees + float64(i)*90) * math.Pi / 180
		dx := int(math.Round(cfg.Frequency * float64(w) * math.Cos(theta)))
		dy := int(math.Round(cfg.Frequency * float64(h) * math.Sin(theta)))
		pts[i] = [2]int{cx + dx, cy + dy}
	}
	return pts
}

// Embed inserts the four-peak sync template into y's DFT magnitude
// spectrum and returns the modified luminance plane, clipped to [0,255].
func Embed(y *Plane, cfg Config) *Plane {
	spectrum := FFTShift(FFT2D(toGrid(y), false))
	cx, cy := y.Cols/2, y.Rows/2
	peaks := peakLocations(cfg, y.Cols, y.Rows, cx, cy)

	for _, p := range peaks {
		for dr := -cfg.PatchRadius; dr <= cfg.PatchRadius; dr++ {
			r := p[1] + dr
			if r < 0 || r >= spectrum.Rows {
				continue
			}
			for dc := -cfg.PatchRadius; dc <= cfg.PatchRadius; dc++ {
				c := p[0] + dc
				if c < 0 || c >= spectrum.Cols {
					continue
				}
				spectrum.Set(r, c, spectrum.At(r, c)*complex(cfg.Strength, 0))
			}
		}
	}

	back := FFT2D(IFFTShift(spectrum), true)
	out := NewPlane(y.Rows, y.Cols)
	for i, v := range back.Data {
		out.Data[i] = clip8f(real(v))
	}
	return out
}

// Detection is the result of Detect: the estimated rotation (degrees,
// normalized into [-45,45]) and scale factor needed to invert the
// geometric distortion the suspect image underwent.
type Detection struct {
	RotationDegrees float64
	Scale           float64
	PeakFound       bool
}

// Detect locates the displaced sync peak in y's DFT magnitude spectrum
// and estimates the rotation/scale that produced the displacement. When
// no usable peak is found (magnitude at the global max is zero after the
// DC disk is zeroed out), it reports PeakFound=false and the identity
// transform, matching the spec's SyncPeakMissing recovery.
func Detect(y *Plane, cfg Config) Detection {
	spectrum := FFTShift(FFT2D(toGrid(y), false))
	cx, cy := y.Cols/2, y.Rows/2

	mag := NewPlane(spectrum.Rows, spectrum.Cols)
	for i, v := range spectrum.Data {
		mag.Data[i] = cAbs(v)
	}

	const dcRadius = 10
	for r := 0; r < mag.Rows; r++ {
		for c := 0; c < mag.Cols; c++ {
			dr, dc := r-cy, c-cx
			if dr*dr+dc*dc <= dcRadius*dcRadius {
				mag.Set(r, c, 0)
			}
		}
	}

	px, py, maxV := 0, 0, 0.0
	for r := 0; r < mag.Rows; r++ {
		for c := 0; c < mag.Cols; c++ {
			v := mag.At(r, c)
			if v > maxV {
				maxV, px, py = v, c, r
			}
		}
	}

	if maxV == 0 {
		return Detection{RotationDegrees: 0, Scale: 1, PeakFound: false}
	}

	dx, dy := float64(px-cx), float64(py-cy)
	fd := math.Sqrt((dx/float64(y.Cols))*(dx/float64(y.Cols)) + (dy/float64(y.Rows))*(dy/float64(y.Rows)))
	if fd == 0 {
		return Detection{RotationDegrees: 0, Scale: 1, PeakFound: false}
	}
	thetaD := math.Atan2(dy, dx) * 180 / math.Pi

	scale := cfg.Frequency / fd
	rotation := normalizeRotation(thetaD - cfg.AngleDegrees)

	return Detection{RotationDegrees: rotation, Scale: scale, PeakFound: true}
}

// normalizeRotation folds a rotation estimate into [-45, 45) modulo 90,
// reflecting the template's 90-degree symmetry.
func normalizeRotation(deg float64) float64 {
	deg = math.Mod(deg, 90)
	if deg < 0 {
		deg += 90
	}
	if deg >= 45 {
		deg -= 90
	}
	return deg
}

func cAbs(v complex128) float64 {
	return math.Hypot(real(v), imag(v))
}

// Correct applies the inverse geometric attack to y: it rotates y's
// content by rotationDegrees about the image center and rescales by
// 1/scale, via bilinear sampling. rotationDegrees and scale are meant to
// be passed straight through from Detect's output.
//
// Sign convention: a physical attack that rotates an image's content by
// +phi degrees (the same sense cv2.getRotationMatrix2D/warpAffine call
// "counter-clockwise", row axis pointing down) shifts the DFT sync
// peaks by -phi, so Detect reports rotationDegrees == -phi. Correct then
// rotates its input by that same reported value, which lands back on
// +phi applied in the opposite direction of the attack, undoing it:
// Correct(Attack(y, phi), Detect(Attack(y, phi)).RotationDegrees) == y.
func Correct(y *Plane, rotationDegrees, scale float64) *Plane {
	out := NewPlane(y.Rows, y.Cols)
	cx, cy := float64(y.Cols)/2, float64(y.Rows)/2
	theta := rotationDegrees * math.Pi / 180
	// Sampling y at offset*scale shrinks the content by 1/scale.
	sampleScale := 1.0
	if scale != 0 {
		sampleScale = scale
	}
	cosT, sinT := math.Cos(theta), math.Sin(theta)

	for r := 0; r < y.Rows; r++ {
		for c := 0; c < y.Cols; c++ {
			// Rotate the output grid by +rotationDegrees about the
			// center and sample y there, mirroring the same forward
			// rotation convention a geometric attack would use.
			dx, dy := float64(c)-cx, float64(r)-cy
			sx := (dx*cosT - dy*sinT) * sampleScale
			sy := (dx*sinT + dy*cosT) * sampleScale
			sx += cx
			sy += cy
			out.Set(r, c, bilinear(y, sx, sy))
		}
	}
	return out
}

func bilinear(p *Plane, x, y float64) float64 {
	if x < 0 || y < 0 || x > float64(p.Cols-1) || y > float64(p.Rows-1) {
		return 0
	}
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := x0+1, y0+1
	if x1 > p.Cols-1 {
		x1 = p.Cols - 1
	}
	if y1 > p.Rows-1 {
		y1 = p.Rows - 1
	}
	fx, fy := x-float64(x0), y-float64(y0)

	v00 := p.At(y0, x0)
	v01 := p.At(y0, x1)
	v10 := p.At(y1, x0)
	v11 := p.At(y1, x1)

	top := v00*(1-fx) + v01*fx
	bottom := v10*(1-fx) + v11*fx
	return top*(1-fy) + bottom*fy
}
