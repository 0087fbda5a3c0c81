package blindmark

import (
	"github.com/blindmark/blindmark/internal/dsp"
	"github.com/blindmark/blindmark/internal/logging"
)

// ExtractStatus tags how an Extract call obtained its result.
type ExtractStatus string

const (
	StatusAligned         ExtractStatus = "aligned"
	StatusAlignmentFailed ExtractStatus = "alignment_failed"
	StatusDCTFallback     ExtractStatus = "dct_fallback"
)

// EmbedResult is the outcome of a successful Embed call.
type EmbedResult struct {
	Image   *Image
	Heatmap *Image
	Quality Quality
}

// EmbedOptions controls one Embed call.
type EmbedOptions struct {
	Text        string
	Alpha       float64
	Carrier     CarrierKind
	EmbedSync   bool
	WithHeatmap bool
}

// Embedder runs the embed pipeline (spec §4.8): encode payload, embed via
// the configured carrier, optionally embed the sync template, then
// compute quality metrics and an optional heatmap. It is a pure function
// of its inputs plus its immutable Config and is safe for concurrent use.
type Embedder struct {
	Config Config
	Log    *logging.Logger
}

// NewEmbedder builds an Embedder; a nil logger gets a quiet default.
func NewEmbedder(cfg Config, log *logging.Logger) *Embedder {
	if log == nil {
		log = logging.New(logging.Config{Level: "error"})
	}
	return &Embedder{Config: cfg, Log: log.WithComponent("embed")}
}

// Embed runs the full embed pipeline against original.
func (e *Embedder) Embed(original *Image, opts EmbedOptions) (EmbedResult, error) {
	cfg := e.Config
	if opts.Alpha > 0 {
		cfg.Alpha = opts.Alpha
	}

	packet, err := EncodePacket(cfg, opts.Text)
	if err != nil {
		e.Log.Warn("payload encode failed", logging.Err(err))
		return EmbedResult{}, err
	}
	bits := bitsFromPacket(packet)

	y, u, v := original.luminancePlane()

	c := carrierFor(opts.Carrier)
	newY, err := c.embed(y, bits, cfg)
	if err != nil {
		e.Log.Warn("carrier embed failed", logging.Err(err))
		return EmbedResult{}, err
	}

	if opts.EmbedSync {
		newY = embedSyncTemplate(newY, cfg.Sync)
	}

	watermarked := withLuminance(newY, u, v, original.Width, original.Height)

	quality := computeQuality(original, watermarked)
	e.Log.Info("embed complete", logging.Float64("psnr", quality.PSNR), logging.Float64("ssim", quality.SSIM))

	result := EmbedResult{Image: watermarked, Quality: quality}
	if opts.WithHeatmap {
		result.Heatmap = DifferenceHeatmap(original, watermarked)
	}
	return result, nil
}

// ExtractResult is the outcome of an Extract call.
type ExtractResult struct {
	Text   string
	Status ExtractStatus
}

// Extractor runs the extract-with-reference pipeline (spec §4.8).
type Extractor struct {
	Config Config
	Log    *logging.Logger
}

func NewExtractor(cfg Config, log *logging.Logger) *Extractor {
	if log == nil {
		log = logging.New(logging.Config{Level: "error"})
	}
	return &Extractor{Config: cfg, Log: log.WithComponent("extract")}
}

// Extract aligns suspect to original (falling back to the raw suspect on
// alignment failure), runs the DWT-QIM extractor, and retries with the
// DCT-pair carrier if that decode fails.
func (x *Extractor) Extract(original, suspect *Image) ExtractResult {
	status := StatusAligned
	working := suspect
	if warped, err := alignImages(original, suspect, x.Config.Align); err != nil {
		x.Log.Warn("alignment failed, extracting from raw suspect", logging.Err(err))
		status = StatusAlignmentFailed
	} else {
		working = warped
	}

	y, _, _ := working.luminancePlane()

	if text, ok := x.decodeWith(CarrierDWTQIM, y); ok {
		return ExtractResult{Text: text, Status: status}
	}
	if text, ok := x.decodeWith(CarrierDCTPair, y); ok {
		return ExtractResult{Text: text, Status: StatusDCTFallback}
	}
	return ExtractResult{Text: "", Status: status}
}

// decodeWith runs one carrier's extractor over y and attempts packet
// decode, reporting success only when the packet header, length, and FEC
// all validate (spec §4.8 step 2: BadMagic/FecExhausted/BadLength all
// trigger the DCT-pair fallback).
func (x *Extractor) decodeWith(kind CarrierKind, y *dsp.Plane) (string, bool) {
	bits, err := carrierFor(kind).extract(y, BitStreamLen, x.Config)
	if err != nil {
		return "", false
	}
	packet := packetFromBits(bits)
	decoded, err := DecodePacket(x.Config, packet)
	if err != nil {
		return "", false
	}
	return decoded.Text, true
}

// VerifyResult is the outcome of a blind verify call.
type VerifyResult struct {
	Verified   bool
	Text       string
	Confidence float64
	Geometry   GeometryReport
}

// Verifier runs the blind-verify pipeline (spec §4.8): detect sync,
// geometrically correct, run the DWT-QIM-only extractor.
type Verifier struct {
	Config Config
	Log    *logging.Logger
}

func NewVerifier(cfg Config, log *logging.Logger) *Verifier {
	if log == nil {
		log = logging.New(logging.Config{Level: "error"})
	}
	return &Verifier{Config: cfg, Log: log.WithComponent("verify")}
}

// Verify runs blind detection and DWT-QIM-only decode against suspect.
// Per this implementation's resolution of the source's dead-code
// ambiguity (spec §9), the blind path never falls back to the DCT-pair
// carrier.
func (v *Verifier) Verify(suspect *Image) VerifyResult {
	y, _, _ := suspect.luminancePlane()
	corrected, geometry := detectAndCorrectSync(y, v.Config.Sync)

	bits, err := carrierFor(CarrierDWTQIM).extract(corrected, BitStreamLen, v.Config)
	if err != nil {
		v.Log.Warn("dwt-qim extract failed", logging.Err(err))
		return VerifyResult{Geometry: geometry}
	}
	packet := packetFromBits(bits)
	decoded, err := DecodePacket(v.Config, packet)
	if err != nil {
		v.Log.Warn("packet decode failed", logging.Err(err))
		return VerifyResult{Geometry: geometry}
	}

	confidence := 1.0
	if decoded.Utf8Lossy {
		confidence = 0.5
	}
	if decoded.ErrorsFixed > 0 {
		confidence -= float64(decoded.ErrorsFixed) / float64(v.Config.K)
		if confidence < 0 {
			confidence = 0
		}
	}

	return VerifyResult{
		Verified:   decoded.Text != "",
		Text:       decoded.Text,
		Confidence: confidence,
		Geometry:   geometry,
	}
}
