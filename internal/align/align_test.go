package align

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkerboardPlane(rows, cols int) *Plane {
	p := NewPlane(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := 50.0
			if (r/8+c/8)%2 == 0 {
				v = 200.0
			}
			p.Set(r, c, v)
		}
	}
	return p
}

func TestDetectFeaturesFindsCorners(t *testing.T) {
	p := checkerboardPlane(128, 128)
	cfg := Config{MaxFeatures: 500, PatchSize: 31, FASTThreshold: 10}
	kps, descs := DetectFeatures(p, cfg)
	assert.NotEmpty(t, kps)
	assert.Equal(t, len(kps), len(descs))
}

func TestMatchDescriptorsSelfMatchIsIdentity(t *testing.T) {
	p := checkerboardPlane(128, 128)
	cfg := Config{MaxFeatures: 200, PatchSize: 31, FASTThreshold: 10}
	kps, descs := DetectFeatures(p, cfg)
	require.NotEmpty(t, kps)

	matches := MatchDescriptors(descs, descs)
	require.NotEmpty(t, matches)
	for _, m := range matches {
		assert.Equal(t, m.QueryIdx, m.TrainIdx)
		assert.Equal(t, 0, m.Distance)
	}
}

func TestFilterMatchesRejectsTooFew(t *testing.T) {
	_, err := FilterMatches([]Match{{0, 0, 1}, {1, 1, 2}})
	assert.ErrorIs(t, err, ErrNoAlignment)
}

func TestEstimateHomographyIdentity(t *testing.T) {
	kps := []Keypoint{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}, {X: 100, Y: 100},
		{X: 50, Y: 50}, {X: 20, Y: 80}, {X: 80, Y: 20}, {X: 60, Y: 30},
		{X: 10, Y: 90}, {X: 90, Y: 10},
	}
	var matches []Match
	for i := range kps {
		matches = append(matches, Match{QueryIdx: i, TrainIdx: i, Distance: 0})
	}
	h, err := EstimateHomography(matches, kps, kps, 5.0)
	require.NoError(t, err)

	x, y := applyHomography(h, 42, 17)
	assert.InDelta(t, 42, x, 1.0)
	assert.InDelta(t, 17, y, 1.0)
}

func TestWarpPerspectiveIdentity(t *testing.T) {
	p := NewPlane(16, 16)
	r := rand.New(rand.NewSource(1))
	for i := range p.Data {
		p.Data[i] = float64(r.Intn(256))
	}
	identity := Homography{1, 0, 0, 0, 1, 0, 0, 0, 1}
	warped := WarpPerspective(p, identity, 16, 16)
	for i := range p.Data {
		assert.InDelta(t, p.Data[i], warped.Data[i], 1.0)
	}
}
