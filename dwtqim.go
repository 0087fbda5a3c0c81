package blindmark

import (
	"math"

	"github.com/blindmark/blindmark/internal/dsp"
)

// embedDWTQIM embeds bits (length BitStreamLen, values 0/1) into the
// Haar LL subband of y using quantization-index-modulation with step
// delta, writing to the first len(bits) coefficients in row-major order.
// It returns the reconstructed Y plane (same dimensions as y, cropped or
// padded back per the inverse-DWT contract).
func embedDWTQIM(y *dsp.Plane, bits []byte, delta float64) (*dsp.Plane, error) {
	ll, lh, hl, hh := dsp.Haar2D(y)
	if len(ll.Data) < len(bits) {
		return nil, newError(ErrImageTooSmall, "LL subband smaller than bit stream", nil)
	}
	for i, b := range bits {
		ll.Data[i] = qimWrite(ll.Data[i], delta, b)
	}
	return dsp.InverseHaar2D(ll, lh, hl, hh, y.Rows, y.Cols), nil
}

// extractDWTQIM reads n bits back out of y's Haar LL subband using the
// same quantization step delta.
func extractDWTQIM(y *dsp.Plane, n int, delta float64) ([]byte, error) {
	ll, _, _, _ := dsp.Haar2D(y)
	if len(ll.Data) < n {
		return nil, newError(ErrImageTooSmall, "LL subband smaller than requested bit count", nil)
	}
	bits := make([]byte, n)
	for i := 0; i < n; i++ {
		bits[i] = qimRead(ll.Data[i], delta)
	}
	return bits, nil
}

// qimWrite implements the spec's quantization-index-modulation rule:
// q = round(c/delta); nudge q to the parity matching b; write q*delta.
func qimWrite(c, delta float64, b byte) float64 {
	q := math.Round(c / delta)
	qi := int64(q)
	odd := qi%2 != 0
	if b == 0 && odd {
		qi--
	} else if b == 1 && !odd {
		qi++
	}
	return float64(qi) * delta
}

// qimRead extracts the bit written by qimWrite: 0 if round(c/delta) is
// even, 1 if odd.
func qimRead(c, delta float64) byte {
	q := int64(math.Round(c / delta))
	if q%2 == 0 {
		return 0
	}
	return 1
}
