package blindmark

import (
	"testing"

	"github.com/blindmark/blindmark/internal/dsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedAndDetectSyncTemplateRoundTrip(t *testing.T) {
	y := randomPlane(256, 256, 31)
	cfg := DefaultSyncConfig()
	cfg.Strength = 8

	embedded := embedSyncTemplate(y, cfg)
	require.NotNil(t, embedded)

	_, report := detectAndCorrectSync(embedded, cfg)
	assert.Less(t, report.RotationDetected, 10.0)
	assert.InDelta(t, 1.0, report.ScaleDetected, 0.2)
}

func TestDetectAndCorrectSyncMissingPeakReturnsUncorrected(t *testing.T) {
	y := dsp.NewPlane(64, 64)
	for i := range y.Data {
		y.Data[i] = 128
	}
	cfg := DefaultSyncConfig()
	out, report := detectAndCorrectSync(y, cfg)
	assert.False(t, report.Corrected)
	assert.Equal(t, y.Data, out.Data)
}
