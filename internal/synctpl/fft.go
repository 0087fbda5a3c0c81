// Package synctpl implements the DFT-spectrum synchronization template:
// embedding four symmetric peaks into the magnitude spectrum of a
// luminance plane, and later detecting their displaced position to infer
// rotation and scale.
package synctpl

import "math"

// dft1D computes the discrete Fourier transform of x by direct
// summation. O(n^2); used as the fallback for sizes that are not a power
// of two, since most real image dimensions are not.
func dft1D(x []complex128, inverse bool) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	sign := -1.0
	if inverse {
		sign = 1.0
	}
	for k := 0; k < n; k++ {
		var sum complex128
		for t := 0; t < n; t++ {
			angle := sign * 2 * math.Pi * float64(k) * float64(t) / float64(n)
			sum += x[t] * complex(math.Cos(angle), math.Sin(angle))
		}
		if inverse {
			sum /= complex(float64(n), 0)
		}
		out[k] = sum
	}
	return out
}

// fft1D computes the FFT via the Cooley-Tukey radix-2 algorithm when n is
// a power of two, otherwise it falls back to dft1D.
func fft1D(x []complex128, inverse bool) []complex128 {
	n := len(x)
	if n <= 1 {
		return append([]complex128(nil), x...)
	}
	if n&(n-1) != 0 {
		return dft1D(x, inverse)
	}

	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}
	fe := fft1D(even, inverse)
	fo := fft1D(odd, inverse)

	sign := -1.0
	if inverse {
		sign = 1.0
	}
	out := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		angle := sign * 2 * math.Pi * float64(k) / float64(n)
		twiddle := complex(math.Cos(angle), math.Sin(angle)) * fo[k]
		out[k] = fe[k] + twiddle
		out[k+n/2] = fe[k] - twiddle
	}
	if inverse {
		for i := range out {
			out[i] /= 2
		}
	}
	return out
}

// transform1D dispatches to fft1D (which itself falls back to dft1D for
// non-power-of-two lengths).
func transform1D(x []complex128, inverse bool) []complex128 {
	return fft1D(x, inverse)
}

// Grid is a row-major complex-valued 2D array, the working representation
// for the spectral embed/detect pipeline.
type Grid struct {
	Data       []complex128
	Rows, Cols int
}

// NewGrid allocates a zeroed Grid.
func NewGrid(rows, cols int) *Grid {
	return &Grid{Data: make([]complex128, rows*cols), Rows: rows, Cols: cols}
}

func (g *Grid) At(r, c int) complex128    { return g.Data[r*g.Cols+c] }
func (g *Grid) Set(r, c int, v complex128) { g.Data[r*g.Cols+c] = v }

// FFT2D computes (or inverts) the 2D Fourier transform of g by applying
// transform1D along rows then columns (the standard separable approach).
func FFT2D(g *Grid, inverse bool) *Grid {
	out := NewGrid(g.Rows, g.Cols)
	row := make([]complex128, g.Cols)
	for r := 0; r < g.Rows; r++ {
		copy(row, g.Data[r*g.Cols:(r+1)*g.Cols])
		tr := transform1D(row, inverse)
		copy(out.Data[r*g.Cols:(r+1)*g.Cols], tr)
	}
	col := make([]complex128, out.Rows)
	for c := 0; c < out.Cols; c++ {
		for r := 0; r < out.Rows; r++ {
			col[r] = out.At(r, c)
		}
		tc := transform1D(col, inverse)
		for r := 0; r < out.Rows; r++ {
			out.Set(r, c, tc[r])
		}
	}
	return out
}

// FFTShift swaps quadrants so that the zero-frequency (DC) term moves to
// the center of the grid, matching numpy.fft.fftshift's convention.
func FFTShift(g *Grid) *Grid {
	out := NewGrid(g.Rows, g.Cols)
	cr, cc := g.Rows/2, g.Cols/2
	for r := 0; r < g.Rows; r++ {
		sr := (r + cr) % g.Rows
		for c := 0; c < g.Cols; c++ {
			sc := (c + cc) % g.Cols
			out.Set(sr, sc, g.At(r, c))
		}
	}
	return out
}

// IFFTShift is the inverse of FFTShift (identical for even dimensions,
// differs by one for odd dimensions).
func IFFTShift(g *Grid) *Grid {
	out := NewGrid(g.Rows, g.Cols)
	cr, cc := (g.Rows+1)/2, (g.Cols+1)/2
	for r := 0; r < g.Rows; r++ {
		sr := (r + cr) % g.Rows
		for c := 0; c < g.Cols; c++ {
			sc := (c + cc) % g.Cols
			out.Set(sr, sc, g.At(r, c))
		}
	}
	return out
}
