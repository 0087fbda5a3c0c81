package blindmark

import "fmt"

// PacketSize is the fixed wire size of a payload packet in bytes.
const PacketSize = 255

// HeaderLen is the number of bytes consumed by the magic tag plus the
// length byte, before the message text begins.
const HeaderLen = 4

// BitStreamLen is the number of bits carried by one packet (255*8), and
// therefore the number of LL coefficients or DCT blocks a carrier must
// touch per embed.
const BitStreamLen = PacketSize * 8

// Magic is the three-byte literal ASCII header every packet starts with.
var Magic = [3]byte{'I', 'N', 'V'}

// CarrierKind selects which frequency-domain carrier an Embed/Extract call
// uses.
type CarrierKind int

const (
	// CarrierDWTQIM is the primary carrier: QIM parity embedding in the
	// Haar LL subband.
	CarrierDWTQIM CarrierKind = iota
	// CarrierDCTPair is the fallback carrier: an enforced coefficient
	// ordering gap per 8x8 DCT block.
	CarrierDCTPair
)

// SyncConfig holds the DFT synchronization template's parameters.
type SyncConfig struct {
	// Frequency is the normalized peak radius, f in (0, 0.5).
	Frequency float64
	// AngleDegrees is the base angle theta0 of the first peak; the other
	// three sit at 90-degree symmetric offsets.
	AngleDegrees float64
	// Strength is the multiplicative amplification g applied to the
	// magnitude spectrum patch around each peak, g >= 1.
	Strength float64
	// PatchRadius is the half-width r of the (2r+1)^2 patch multiplied
	// around each peak.
	PatchRadius int
}

// DefaultSyncConfig matches the values exercised by the spec's sync
// invariance and rotation/scale recovery scenarios.
func DefaultSyncConfig() SyncConfig {
	return SyncConfig{
		Frequency:    0.25,
		AngleDegrees: 15,
		Strength:     2.0,
		PatchRadius:  2,
	}
}

// AlignConfig holds the ORB-style feature aligner's parameters.
type AlignConfig struct {
	MaxFeatures       int
	ScaleFactor       float64
	Levels            int
	PatchSize         int
	FASTThreshold     int
	ReprojectionPixel float64
}

// DefaultAlignConfig matches spec §4.7.
func DefaultAlignConfig() AlignConfig {
	return AlignConfig{
		MaxFeatures:       5000,
		ScaleFactor:       1.2,
		Levels:            8,
		PatchSize:         31,
		FASTThreshold:     20,
		ReprojectionPixel: 5.0,
	}
}

// Config is the immutable set of algorithm constants that MUST agree
// between an embed call and any later extract/verify call against the
// same image. It is constructed once (e.g. via DefaultConfig) and
// never mutated; every core function takes a Config by value or pointer
// and never consults process-wide state, so embedders and extractors
// built from different Configs may run concurrently without interfering.
type Config struct {
	// K is the Reed-Solomon ECC symbol count. K=30 is the canonical
	// value this codec was validated against.
	K int
	// Delta is the DWT-QIM quantization step.
	Delta float64
	// Alpha is the default embedding strength, scaling the DCT-pair gap
	// and (when parameterized) Delta.
	Alpha float64
	// DCTPairRow, DCTPairCol select the two mid-frequency coefficients
	// compared by the DCT-pair carrier: c1 = block[DCTPairRow][DCTPairCol],
	// c2 = block[DCTPairCol][DCTPairRow].
	DCTPairRow, DCTPairCol int
	Sync                   SyncConfig
	Align                  AlignConfig
}

// MaxTextLen returns 255 - K - 4, the largest UTF-8 byte length a message
// may have.
func (c Config) MaxTextLen() int {
	return PacketSize - c.K - HeaderLen
}

// Validate enforces the spec's start-up consistency check: K must be even
// and leave room for the header, Delta and Alpha must be positive, the DCT
// coefficient pair indices must lie inside an 8x8 block (any such pair is
// accepted, not only the default (3,1)/(1,3)), Sync.Frequency must lie in
// (0, 0.5), and Sync.Strength must be at least 1.
func (c Config) Validate() error {
	if c.K <= 0 || c.K >= PacketSize-HeaderLen {
		return fmt.Errorf("blindmark: invalid K=%d, must satisfy 0 < K < %d", c.K, PacketSize-HeaderLen)
	}
	if c.K%2 != 0 {
		return fmt.Errorf("blindmark: K=%d must be even", c.K)
	}
	if c.Delta <= 0 {
		return fmt.Errorf("blindmark: Delta must be positive, got %v", c.Delta)
	}
	if c.Alpha <= 0 {
		return fmt.Errorf("blindmark: Alpha must be positive, got %v", c.Alpha)
	}
	if c.DCTPairRow < 0 || c.DCTPairRow >= 8 || c.DCTPairCol < 0 || c.DCTPairCol >= 8 {
		return fmt.Errorf("blindmark: DCT pair indices out of range: (%d,%d)", c.DCTPairRow, c.DCTPairCol)
	}
	if c.Sync.Frequency <= 0 || c.Sync.Frequency >= 0.5 {
		return fmt.Errorf("blindmark: Sync.Frequency out of (0, 0.5): %v", c.Sync.Frequency)
	}
	if c.Sync.Strength < 1 {
		return fmt.Errorf("blindmark: Sync.Strength must be >= 1, got %v", c.Sync.Strength)
	}
	return nil
}

// DefaultConfig returns the canonical constant set this implementation
// was built and tested against: K=30, Delta=10.0, DCT pair (3,1)/(1,3).
func DefaultConfig() Config {
	return Config{
		K:          30,
		Delta:      10.0,
		Alpha:      1.0,
		DCTPairRow: 3,
		DCTPairCol: 1,
		Sync:       DefaultSyncConfig(),
		Align:      DefaultAlignConfig(),
	}
}

// MustValidate panics if cfg is inconsistent. Intended for package-level
// var initialization (e.g. a process's single shared default Config),
// matching the spec's recommendation of a start-up consistency check
// rather than a runtime check on every call.
func (c Config) MustValidate() Config {
	if err := c.Validate(); err != nil {
		panic(err)
	}
	return c
}
