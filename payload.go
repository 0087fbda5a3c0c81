package blindmark

import (
	"unicode/utf8"

	"github.com/blindmark/blindmark/internal/fec"
)

// EncodePacket frames text into a fixed PacketSize-byte packet: magic
// header, length byte, UTF-8 text, zero padding, and cfg.K Reed-Solomon
// ECC symbols. It fails with ErrPayloadTooLong when the UTF-8 encoding of
// text does not fit within cfg.MaxTextLen() bytes.
func EncodePacket(cfg Config, text string) ([PacketSize]byte, error) {
	var packet [PacketSize]byte

	textBytes := []byte(text)
	maxLen := cfg.MaxTextLen()
	if len(textBytes) > maxLen {
		return packet, newError(ErrPayloadTooLong, "message exceeds max text length", nil)
	}

	codec, err := fec.NewCodec(cfg.K)
	if err != nil {
		return packet, newError(ErrPayloadTooLong, "invalid ECC configuration", err)
	}

	data := make([]byte, codec.DataLen())
	copy(data[:3], Magic[:])
	data[3] = byte(len(textBytes))
	copy(data[4:], textBytes)
	// The remainder of data is already zero (Go zero-initializes slices),
	// satisfying the zero-padding requirement.

	codeword, err := codec.Encode(data)
	if err != nil {
		return packet, newError(ErrPayloadTooLong, "reed-solomon encode failed", err)
	}
	copy(packet[:], codeword)
	return packet, nil
}

// DecodedPacket is the result of a successful or partially-successful
// DecodePacket call.
type DecodedPacket struct {
	Text        string
	ErrorsFixed int
	// Utf8Lossy is true when the message bytes were not valid UTF-8 and
	// had to be sanitized via utf8.ToValid-style replacement; this is a
	// warning, not a failure.
	Utf8Lossy bool
}

// DecodePacket reverses EncodePacket: it runs Reed-Solomon decode first
// (failing with ErrFecExhausted if more than floor(K/2) byte errors are
// present), then validates the header (ErrBadMagic) and length
// (ErrBadLength) before extracting the message text.
func DecodePacket(cfg Config, packet [PacketSize]byte) (DecodedPacket, error) {
	codec, err := fec.NewCodec(cfg.K)
	if err != nil {
		return DecodedPacket{}, newError(ErrPayloadTooLong, "invalid ECC configuration", err)
	}

	data, fixed, err := codec.Decode(packet[:])
	if err != nil {
		return DecodedPacket{}, newError(ErrFecExhausted, "reed-solomon decode exceeded correction capacity", err)
	}

	if len(data) < HeaderLen || data[0] != Magic[0] || data[1] != Magic[1] || data[2] != Magic[2] {
		return DecodedPacket{}, newError(ErrBadMagic, "packet header did not match INV", nil)
	}

	length := int(data[3])
	maxLen := cfg.MaxTextLen()
	if length > maxLen || HeaderLen+length > len(data) {
		return DecodedPacket{}, newError(ErrBadLength, "declared message length out of bounds", nil)
	}

	raw := data[HeaderLen : HeaderLen+length]
	lossy := !utf8.Valid(raw)
	text := string(raw)
	if lossy {
		text = toValidUTF8(raw)
	}

	return DecodedPacket{Text: text, ErrorsFixed: fixed, Utf8Lossy: lossy}, nil
}

// toValidUTF8 replaces invalid UTF-8 byte sequences with the Unicode
// replacement character, matching the spec's "lossy fallback permitted
// but reported" decode contract.
func toValidUTF8(raw []byte) string {
	out := make([]rune, 0, len(raw))
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		out = append(out, r)
		raw = raw[size:]
	}
	return string(out)
}
