// Package geo provides great-circle distance helpers for profile ranking.
package geo

import (
	"math"

	"rencontre/internal/domain/entity"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the haversine distance in kilometers between two
// coordinates on a sphere of radius 6371 km.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lng1Rad := lng1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lng2Rad := lng2 * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}

// ProfileDistanceKm returns the distance between two profiles, or nil when
// either side lacks a complete coordinate pair.
func ProfileDistanceKm(from, to *entity.Profile) *float64 {
	if from == nil || to == nil || !from.HasLocation() || !to.HasLocation() {
		return nil
	}

	d := DistanceKm(*from.Latitude, *from.Longitude, *to.Latitude, *to.Longitude)

	return &d
}
