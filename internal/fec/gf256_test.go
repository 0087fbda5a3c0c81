package fec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGFMulDivInverse(t *testing.T) {
	for a := 1; a < 256; a++ {
		inv := gfInv(byte(a))
		assert.Equal(t, byte(1), gfMul(byte(a), inv), "a=%d", a)
	}
}

func TestGFMulZero(t *testing.T) {
	assert.Equal(t, byte(0), gfMul(0, 200))
	assert.Equal(t, byte(0), gfMul(200, 0))
}

func TestGFPow(t *testing.T) {
	assert.Equal(t, byte(1), gfPow(5, 0))
	assert.Equal(t, gfMul(5, gfMul(5, 5)), gfPow(5, 3))
}

func TestPolyEvalConstant(t *testing.T) {
	assert.Equal(t, byte(7), polyEval([]byte{7}, 200))
}
