package blindmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitsFromPacketRoundTrip(t *testing.T) {
	var packet [PacketSize]byte
	for i := range packet {
		packet[i] = byte(i * 37)
	}
	bits := bitsFromPacket(packet)
	assert.Len(t, bits, BitStreamLen)

	back := packetFromBits(bits)
	assert.Equal(t, packet, back)
}

func TestBitsFromPacketMSBFirst(t *testing.T) {
	var packet [PacketSize]byte
	packet[0] = 0b10110000
	bits := bitsFromPacket(packet)
	assert.Equal(t, []byte{1, 0, 1, 1, 0, 0, 0, 0}, bits[:8])
}
