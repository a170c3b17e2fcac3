package district

import (
	"math"
	"testing"

	"github.com/agrovision/cropadvisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionBoundsContains(t *testing.T) {
	assert.True(t, RegionBounds.Contains(17.385, 78.487))  // Hyderabad
	assert.False(t, RegionBounds.Contains(28.613, 77.209)) // Delhi
	assert.False(t, RegionBounds.Contains(17.385, 72.8))   // west of region
}

func TestNearestWithinMatchesOwnCenter(t *testing.T) {
	for _, rp := range ReferencePoints {
		got, ok := NearestWithin(rp.Lat, rp.Lon)
		require.True(t, ok, "district %q", rp.District)
		assert.Equal(t, rp.District, got)
	}
}

// A match is only valid within the matched district's own radius; the
// nearest neighbor alone is never enough.
func TestNearestWithinRespectsRadius(t *testing.T) {
	probes := []struct{ lat, lon float64 }{
		{15.85, 81.30}, // inside bbox, far from every center
		{19.90, 77.25},
		{16.00, 80.90},
	}

	for _, p := range probes {
		got, ok := NearestWithin(p.lat, p.lon)
		if !ok {
			continue
		}

		var matched ReferencePoint
		for _, rp := range ReferencePoints {
			if rp.District == got {
				matched = rp
				break
			}
		}
		dist := math.Hypot(p.lat-matched.Lat, p.lon-matched.Lon)
		assert.LessOrEqual(t, dist, matched.Radius,
			"district %q matched outside its radius", got)
	}
}

func TestNearestWithinUnmatched(t *testing.T) {
	// A corner of the bounding box with no reference point nearby.
	got, ok := NearestWithin(15.81, 81.34)
	assert.False(t, ok)
	assert.Equal(t, domain.DistrictUnsupported, got)
}

func TestReferencePointsCoverMasterList(t *testing.T) {
	byName := make(map[domain.District]bool, len(ReferencePoints))
	for _, rp := range ReferencePoints {
		byName[rp.District] = true
		assert.True(t, RegionBounds.Contains(rp.Lat, rp.Lon),
			"reference point for %q outside region bounds", rp.District)
	}

	for _, d := range Names {
		assert.True(t, byName[d], "district %q has no reference point", d)
	}
}

func TestFromCity(t *testing.T) {
	got, ok := FromCity("Hyderabad")
	require.True(t, ok)
	assert.Equal(t, domain.District("Hyderabad"), got)

	got, ok = FromCity("ramagundam")
	require.True(t, ok)
	assert.Equal(t, domain.District("Peddapalli"), got)

	_, ok = FromCity("Chennai")
	assert.False(t, ok)
}
