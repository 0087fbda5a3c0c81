package blindmark

import (
	"github.com/blindmark/blindmark/internal/dsp"
	"github.com/blindmark/blindmark/internal/synctpl"
)

func toSyncConfig(c SyncConfig) synctpl.Config {
	return synctpl.Config{
		Frequency:    c.Frequency,
		AngleDegrees: c.AngleDegrees,
		Strength:     c.Strength,
		PatchRadius:  c.PatchRadius,
	}
}

func toSyncPlane(p *dsp.Plane) *synctpl.Plane {
	out := synctpl.NewPlane(p.Rows, p.Cols)
	copy(out.Data, p.Data)
	return out
}

func fromSyncPlane(p *synctpl.Plane) *dsp.Plane {
	out := dsp.NewPlane(p.Rows, p.Cols)
	copy(out.Data, p.Data)
	return out
}

// embedSyncTemplate inserts the four-peak DFT sync template into y.
func embedSyncTemplate(y *dsp.Plane, cfg SyncConfig) *dsp.Plane {
	return fromSyncPlane(synctpl.Embed(toSyncPlane(y), toSyncConfig(cfg)))
}

// GeometryReport is the rotation/scale estimate returned by detectAndCorrectSync,
// and whether geometric correction was applied.
type GeometryReport struct {
	RotationDetected float64
	ScaleDetected    float64
	Corrected        bool
}

// detectAndCorrectSync runs blind sync detection on y and, if a peak was
// found, applies the inverse affine correction. It always returns a
// usable plane (uncorrected, with Corrected=false, when no peak is
// found), matching the spec's SyncPeakMissing best-effort contract.
func detectAndCorrectSync(y *dsp.Plane, cfg SyncConfig) (*dsp.Plane, GeometryReport) {
	detection := synctpl.Detect(toSyncPlane(y), toSyncConfig(cfg))
	report := GeometryReport{
		RotationDetected: detection.RotationDegrees,
		ScaleDetected:    detection.Scale,
	}
	if !detection.PeakFound {
		return y, report
	}
	corrected := synctpl.Correct(toSyncPlane(y), detection.RotationDegrees, detection.Scale)
	report.Corrected = true
	return fromSyncPlane(corrected), report
}
