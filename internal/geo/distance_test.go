package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/field-checkin/internal/models"
)

func ptr(v float64) *float64 { return &v }

func TestDistanceSymmetric(t *testing.T) {
	points := [][2]float64{
		{28.5, 77.0},
		{28.6139, 77.2090},
		{19.0760, 72.8777},
		{-33.8688, 151.2093},
		{51.5074, -0.1278},
	}
	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, Distance(a[0], a[1], b[0], b[1]), Distance(b[0], b[1], a[0], a[1]))
		}
		assert.Zero(t, Distance(a[0], a[1], a[0], a[1]))
	}
}

func TestDistanceNearbyPointIsSmall(t *testing.T) {
	d := Distance(28.5, 77.0, 28.5001, 77.0001)
	assert.Less(t, d, 0.02)
}

func TestDistanceKnownCities(t *testing.T) {
	// Delhi to Mumbai is roughly 1150 km along the great circle.
	d := Distance(28.6139, 77.2090, 19.0760, 72.8777)
	assert.InDelta(t, 1150, d, 10)
	assert.Equal(t, Round2(d), d)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.235001))
	assert.Equal(t, 0.0, Round2(0.004))
}

func TestDistanceToSite(t *testing.T) {
	site := models.Client{Latitude: ptr(28.5), Longitude: ptr(77.0)}

	d := DistanceToSite(ptr(28.5001), ptr(77.0001), site)
	require.NotNil(t, d)
	assert.Less(t, *d, 0.02)

	assert.Nil(t, DistanceToSite(ptr(28.5), ptr(77.0), models.Client{}))
	assert.Nil(t, DistanceToSite(nil, ptr(77.0), site))
}

func TestWarning(t *testing.T) {
	assert.Empty(t, Warning(nil))
	assert.Empty(t, Warning(ptr(0)))
	assert.Empty(t, Warning(ptr(FarThresholdKm)))
	assert.Contains(t, Warning(ptr(0.51)), "0.51 km")
	assert.Contains(t, Warning(ptr(12.3)), "12.30 km")
}
