// Package fec implements a classical Reed-Solomon RS(255, 255-K) codec over
// GF(2^8), the byte-error-correcting code used to protect the watermark
// payload packet.
//
// This is hand-rolled rather than built on a third-party erasure-coding
// library (github.com/klauspost/reedsolomon, which appears widely across
// the retrieval pack's manifests): that package reconstructs shards whose
// positions are already known to be missing, whereas this codec must find
// and correct corrupted bytes whose positions are unknown, which requires
// the classical syndrome / error-locator-polynomial decode implemented
// below. The GF(256) log/antilog table construction mirrors the field
// arithmetic style of the pack's vendored Leopard RS implementation
// (exponent/log tables built once at init time), generalized from its
// butterfly-based GF(2^8) field to the textbook generator-polynomial field
// (primitive polynomial 0x11d, generator element 2) used by most classical
// RS codes (also the field QR codes and most datamatrix/PDF417 readers use).
package fec

const (
	fieldSize = 256
	gfPoly    = 0x11d // x^8 + x^4 + x^3 + x^2 + 1
)

var expTable [fieldSize * 2]byte
var logTable [fieldSize]int

func init() {
	x := 1
	for i := 0; i < fieldSize-1; i++ {
		expTable[i] = byte(x)
		logTable[x] = i
		x <<= 1
		if x >= fieldSize {
			x ^= gfPoly
		}
	}
	for i := fieldSize - 1; i < len(expTable); i++ {
		expTable[i] = expTable[i-(fieldSize-1)]
	}
}

func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[logTable[a]+logTable[b]]
}

func gfDiv(a, b byte) byte {
	if a == 0 {
		return 0
	}
	if b == 0 {
		panic("fec: division by zero in GF(256)")
	}
	return expTable[(logTable[a]+fieldSize-1-logTable[b])%(fieldSize-1)]
}

func gfPow(a byte, n int) byte {
	if a == 0 {
		if n == 0 {
			return 1
		}
		return 0
	}
	e := (logTable[a] * n) % (fieldSize - 1)
	if e < 0 {
		e += fieldSize - 1
	}
	return expTable[e]
}

func gfInv(a byte) byte {
	return expTable[(fieldSize-1-logTable[a])%(fieldSize-1)]
}

// polyEval evaluates polynomial p (coefficients in descending order, p[0] is
// the highest-degree term) at x using Horner's method over GF(256).
func polyEval(p []byte, x byte) byte {
	y := p[0]
	for i := 1; i < len(p); i++ {
		y = gfMul(y, x) ^ p[i]
	}
	return y
}

// polyMul multiplies two polynomials (descending-order coefficients) over
// GF(256).
func polyMul(a, b []byte) []byte {
	out := make([]byte, len(a)+len(b)-1)
	for i, ac := range a {
		if ac == 0 {
			continue
		}
		for j, bc := range b {
			out[i+j] ^= gfMul(ac, bc)
		}
	}
	return out
}
