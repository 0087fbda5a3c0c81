package blindmark

import (
	"testing"

	"github.com/blindmark/blindmark/internal/fec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodePacketRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	for _, text := range []string{"", "hello world", "TEST"} {
		packet, err := EncodePacket(cfg, text)
		require.NoError(t, err)
		assert.Len(t, packet, PacketSize)

		decoded, err := DecodePacket(cfg, packet)
		require.NoError(t, err)
		assert.Equal(t, text, decoded.Text)
		assert.False(t, decoded.Utf8Lossy)
	}
}

func TestEncodePacketRejectsOversizeText(t *testing.T) {
	cfg := DefaultConfig()
	max := cfg.MaxTextLen()

	ok := make([]byte, max)
	for i := range ok {
		ok[i] = 'a'
	}
	_, err := EncodePacket(cfg, string(ok))
	require.NoError(t, err)

	tooLong := make([]byte, max+1)
	for i := range tooLong {
		tooLong[i] = 'a'
	}
	_, err = EncodePacket(cfg, string(tooLong))
	require.Error(t, err)
	assert.Equal(t, ErrPayloadTooLong, KindOf(err))
}

func TestDecodePacketRejectsBadMagic(t *testing.T) {
	cfg := DefaultConfig()
	codec, err := fec.NewCodec(cfg.K)
	require.NoError(t, err)
	data := make([]byte, codec.DataLen())
	copy(data, "BAD")
	codeword, err := codec.Encode(data)
	require.NoError(t, err)
	var packet [PacketSize]byte
	copy(packet[:], codeword)

	_, err = DecodePacket(cfg, packet)
	require.Error(t, err)
	// The packet is a valid RS codeword, so FEC passes and only the
	// header check can reject it.
	assert.Equal(t, ErrBadMagic, KindOf(err))
}

func TestPacketFramingExactSize(t *testing.T) {
	cfg := DefaultConfig()
	packet, err := EncodePacket(cfg, "framing")
	require.NoError(t, err)
	assert.Equal(t, PacketSize, len(packet))
}
