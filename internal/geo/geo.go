// Package geo holds the pure geospatial primitives of the service: the
// great-circle distance used by the nearby search and the coordinate
// validity checks shared by the store and delivery layers.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean Earth radius used by the Haversine formula.
const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometers between two
// points. Symmetric, zero exactly for identical points, and monotonically
// increasing with angular separation. The intermediate term is clamped to
// [0, 1] so floating-point overshoot near identical or antipodal points
// cannot feed sqrt/atan2 a value outside their domain.
func HaversineKm(a, b orb.Point) float64 {
	lat1Rad := a.Lat() * math.Pi / 180
	lng1Rad := a.Lon() * math.Pi / 180
	lat2Rad := b.Lat() * math.Pi / 180
	lng2Rad := b.Lon() * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	// Clamp against rounding drift before the inverse step.
	if h < 0 {
		h = 0
	}
	if h > 1 {
		h = 1
	}

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// IsValidCoordinate reports whether a point is a finite coordinate inside
// the valid lat/lng ranges.
func IsValidCoordinate(p orb.Point) bool {
	if math.IsNaN(p.Lat()) || math.IsNaN(p.Lon()) ||
		math.IsInf(p.Lat(), 0) || math.IsInf(p.Lon(), 0) {
		return false
	}

	return p.Lat() >= -90 && p.Lat() <= 90 && p.Lon() >= -180 && p.Lon() <= 180
}

// IsPlaceholder reports whether a point carries the (0,0) "awaiting
// geocoding" sentinel rather than a real position.
func IsPlaceholder(p orb.Point) bool {
	return p.Lat() == 0 && p.Lon() == 0
}
