package geo

import (
	"testing"

	"rencontre/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	assert.Zero(t, DistanceKm(48.8566, 2.3522, 48.8566, 2.3522))
	assert.Zero(t, DistanceKm(0, 0, 0, 0))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	d1 := DistanceKm(48.8566, 2.3522, 45.7640, 4.8357) // Paris <-> Lyon
	d2 := DistanceKm(45.7640, 4.8357, 48.8566, 2.3522)

	assert.InDelta(t, d1, d2, 1e-9)
	// Paris to Lyon is a bit under 400 km as the crow flies.
	assert.InDelta(t, 392, d1, 5)
}

func TestDistanceKm_KnownEquatorialArc(t *testing.T) {
	// 0.449 degrees of longitude on the equator is roughly 50 km.
	d := DistanceKm(0, 0, 0, 0.449)
	assert.InDelta(t, 50, d, 0.5)
}

func TestProfileDistanceKm(t *testing.T) {
	complete := &entity.Profile{Latitude: floatPtr(0), Longitude: floatPtr(0)}
	other := &entity.Profile{Latitude: floatPtr(0), Longitude: floatPtr(0.449)}
	missing := &entity.Profile{Latitude: floatPtr(0)}

	d := ProfileDistanceKm(complete, other)
	require.NotNil(t, d)
	assert.InDelta(t, 50, *d, 0.5)

	assert.Nil(t, ProfileDistanceKm(complete, missing))
	assert.Nil(t, ProfileDistanceKm(missing, other))
	assert.Nil(t, ProfileDistanceKm(nil, other))
	assert.Nil(t, ProfileDistanceKm(complete, nil))
}
