package blindmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarrierForSelectsDCTPair(t *testing.T) {
	c := carrierFor(CarrierDCTPair)
	_, ok := c.(dctPairCarrier)
	assert.True(t, ok)
}

func TestCarrierForDefaultsToDWTQIM(t *testing.T) {
	c := carrierFor(CarrierKind(99))
	_, ok := c.(dwtqimCarrier)
	assert.True(t, ok)
}
