package fec

import "errors"

// N is the fixed Reed-Solomon block size, GF(2^8)'s largest non-trivial
// codeword length.
const N = 255

// generator is the primitive field element used as the root of the code's
// generator polynomial (the conventional choice for RS(255, k) codes).
const generator = 2

// ErrTooManyErrors is returned by Decode when the received codeword has
// more byte errors than the code's ECC symbol count can correct.
var ErrTooManyErrors = errors.New("fec: too many errors to correct")

// Codec is an RS(255, 255-K) codec over GF(2^8): K ECC symbols appended to
// a 255-K byte message, correcting up to floor(K/2) corrupted bytes without
// knowing their positions. A Codec is immutable after construction and safe
// for concurrent use.
type Codec struct {
	k   int    // ECC symbol count
	gen []byte // generator polynomial, descending order (gen[0] = 1, leading term)
}

// DataLen returns the number of message bytes a codeword carries
// (255 - K).
func (c *Codec) DataLen() int { return N - c.k }

// ECCLen returns the configured ECC symbol count K.
func (c *Codec) ECCLen() int { return c.k }

// NewCodec builds a Codec for the given ECC symbol count, which must
// satisfy 0 < K < 255. An odd K is accepted and corrects floor(K/2) errors.
func NewCodec(k int) (*Codec, error) {
	if k <= 0 || k >= N {
		return nil, errors.New("fec: ECC symbol count out of range")
	}
	gen := []byte{1}
	for i := 0; i < k; i++ {
		// Multiply gen by (x - alpha^i), i.e. the descending-order
		// polynomial [1, alpha^i] (subtraction is XOR in GF(2^m)).
		gen = polyMul(gen, []byte{1, gfPow(generator, i)})
	}
	return &Codec{k: k, gen: gen}, nil
}

// Encode appends K Reed-Solomon ECC symbols to data (which must be exactly
// DataLen() bytes), returning the full N-byte systematic codeword:
// codeword[:DataLen()] == data, codeword[DataLen():] == the ECC remainder.
func (c *Codec) Encode(data []byte) ([]byte, error) {
	if len(data) != c.DataLen() {
		return nil, errors.New("fec: wrong data length for Encode")
	}
	codeword := make([]byte, N)
	copy(codeword, data)

	// Systematic encoding via synthetic polynomial division: codeword is
	// data followed by K zero bytes, then repeatedly eliminated against
	// the generator polynomial starting at each of the first DataLen
	// positions; what remains in the last K bytes is codeword mod gen.
	work := make([]byte, N)
	copy(work, data)
	for i := 0; i < c.DataLen(); i++ {
		coef := work[i]
		if coef == 0 {
			continue
		}
		for j, gc := range c.gen {
			work[i+j] ^= gfMul(gc, coef)
		}
	}
	copy(codeword[c.DataLen():], work[c.DataLen():])
	return codeword, nil
}

// Decode corrects up to floor(K/2) byte errors in a received N-byte
// codeword and returns the recovered DataLen()-byte message along with the
// number of errors that were corrected. It returns ErrTooManyErrors when
// the error-locator search or the post-correction syndrome check fails,
// which is the usual outcome when the error count exceeds the code's
// correction capacity; a received word that lies within floor(K/2) bytes
// of a different codeword is decoded to that codeword without an error.
func (c *Codec) Decode(received []byte) ([]byte, int, error) {
	if len(received) != N {
		return nil, 0, errors.New("fec: wrong codeword length for Decode")
	}

	syndromes := make([]byte, c.k)
	allZero := true
	for j := 0; j < c.k; j++ {
		syndromes[j] = polyEval(received, gfPow(generator, j))
		if syndromes[j] != 0 {
			allZero = false
		}
	}
	if allZero {
		out := make([]byte, c.DataLen())
		copy(out, received[:c.DataLen()])
		return out, 0, nil
	}

	locator, errCount, err := berlekampMassey(syndromes, c.k)
	if err != nil {
		return nil, 0, err
	}

	positions, err := chienSearch(locator, errCount)
	if err != nil {
		return nil, 0, err
	}

	corrected := append([]byte(nil), received...)
	if err := forneyCorrect(corrected, syndromes, locator, positions, c.k); err != nil {
		return nil, 0, err
	}

	// Re-verify: a genuine decode success drives syndromes back to zero.
	for j := 0; j < c.k; j++ {
		if polyEval(corrected, gfPow(generator, j)) != 0 {
			return nil, 0, ErrTooManyErrors
		}
	}

	out := make([]byte, c.DataLen())
	copy(out, corrected[:c.DataLen()])
	return out, errCount, nil
}

// berlekampMassey finds the error-locator polynomial Lambda(x) (ascending
// coefficient order, Lambda[0] = 1) from the syndrome sequence, using the
// standard iterative algorithm. Returns the polynomial and the number of
// errors (its degree).
func berlekampMassey(synd []byte, nsym int) (lambda []byte, errCount int, err error) {
	c := []byte{1}
	b := []byte{1}
	lVal := 0
	bCoef := byte(1)
	m := 1

	for n := 0; n < nsym; n++ {
		delta := synd[n]
		for i := 1; i <= lVal; i++ {
			if i < len(c) {
				delta ^= gfMul(c[i], synd[n-i])
			}
		}
		if delta == 0 {
			m++
			continue
		}
		if 2*lVal <= n {
			t := append([]byte(nil), c...)
			coef := gfDiv(delta, bCoef)
			needed := m + len(b)
			if needed > len(c) {
				c = append(c, make([]byte, needed-len(c))...)
			}
			for i := range b {
				c[i+m] ^= gfMul(coef, b[i])
			}
			lVal = n + 1 - lVal
			b = t
			bCoef = delta
			m = 1
		} else {
			coef := gfDiv(delta, bCoef)
			needed := m + len(b)
			if needed > len(c) {
				c = append(c, make([]byte, needed-len(c))...)
			}
			for i := range b {
				c[i+m] ^= gfMul(coef, b[i])
			}
			m++
		}
	}

	if 2*lVal > nsym {
		return nil, 0, ErrTooManyErrors
	}
	return c, lVal, nil
}

// chienSearch locates the roots of Lambda(x) among the inverses of all
// field powers, returning the corresponding codeword array indices (0 =
// first/highest-degree byte of the received codeword).
func chienSearch(lambda []byte, errCount int) ([]int, error) {
	if errCount == 0 {
		return nil, nil
	}
	positions := make([]int, 0, errCount)
	for mPos := 0; mPos < N; mPos++ {
		x := gfInv(gfPow(generator, mPos))
		if polyEvalAsc(lambda, x) == 0 {
			positions = append(positions, N-1-mPos)
		}
	}
	if len(positions) != errCount {
		return nil, ErrTooManyErrors
	}
	return positions, nil
}

// polyEvalAsc evaluates an ascending-order polynomial (p[i] is the
// coefficient of x^i) at x.
func polyEvalAsc(p []byte, x byte) byte {
	y := byte(0)
	for i := len(p) - 1; i >= 0; i-- {
		y = gfMul(y, x) ^ p[i]
	}
	return y
}

// lambdaDerivative computes the formal derivative of an ascending-order
// polynomial over GF(2^m): since scalar multiplication by an even integer
// vanishes in characteristic 2, only odd-degree terms survive.
func lambdaDerivative(lambda []byte) []byte {
	if len(lambda) <= 1 {
		return []byte{0}
	}
	out := make([]byte, len(lambda)-1)
	for i := 1; i < len(lambda); i++ {
		if i%2 == 1 {
			out[i-1] = lambda[i]
		}
	}
	return out
}

// forneyCorrect computes error magnitudes via the Forney algorithm and
// XORs them into codeword in place.
func forneyCorrect(codeword, syndromes, lambda []byte, positions []int, nsym int) error {
	// Omega(x) = (S(x) * Lambda(x)) mod x^nsym, both ascending order.
	product := polyMul(syndromes, lambda)
	omega := product
	if len(omega) > nsym {
		omega = omega[:nsym]
	}
	deriv := lambdaDerivative(lambda)

	for _, arrIdx := range positions {
		iL := N - 1 - arrIdx
		xl := gfPow(generator, iL)
		xlInv := gfInv(xl)

		omegaVal := polyEvalAsc(omega, xlInv)
		derivVal := polyEvalAsc(deriv, xlInv)
		if derivVal == 0 {
			return ErrTooManyErrors
		}
		magnitude := gfMul(xl, gfDiv(omegaVal, derivVal))
		if arrIdx < 0 || arrIdx >= len(codeword) {
			return ErrTooManyErrors
		}
		codeword[arrIdx] ^= magnitude
	}
	return nil
}
