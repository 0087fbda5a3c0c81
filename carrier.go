package blindmark

import "github.com/blindmark/blindmark/internal/dsp"

// carrier is the abstract capability shared by the DWT-QIM and DCT-pair
// embedders: write a bit stream into a luminance plane, and read it back.
// The orchestrator treats both as interchangeable, trying DCT-pair as a
// fallback when DWT-QIM's decode fails (per spec §4.8's DECODE_DWT ->
// FAIL_PAYLOAD -> DECODE_DCT state machine).
type carrier interface {
	embed(y *dsp.Plane, bits []byte, cfg Config) (*dsp.Plane, error)
	extract(y *dsp.Plane, n int, cfg Config) ([]byte, error)
}

type dwtqimCarrier struct{}

func (dwtqimCarrier) embed(y *dsp.Plane, bits []byte, cfg Config) (*dsp.Plane, error) {
	return embedDWTQIM(y, bits, cfg.Delta)
}

func (dwtqimCarrier) extract(y *dsp.Plane, n int, cfg Config) ([]byte, error) {
	return extractDWTQIM(y, n, cfg.Delta)
}

type dctPairCarrier struct{}

func (dctPairCarrier) embed(y *dsp.Plane, bits []byte, cfg Config) (*dsp.Plane, error) {
	return embedDCTPair(y, bits, cfg)
}

func (dctPairCarrier) extract(y *dsp.Plane, n int, cfg Config) ([]byte, error) {
	return extractDCTPair(y, n, cfg)
}

func carrierFor(kind CarrierKind) carrier {
	switch kind {
	case CarrierDCTPair:
		return dctPairCarrier{}
	default:
		return dwtqimCarrier{}
	}
}
