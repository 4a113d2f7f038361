package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

var (
	hanoi = orb.Point{105.8542, 21.0285}
	hcmc  = orb.Point{106.6297, 10.8231}
	hue   = orb.Point{107.5909, 16.4637}
)

func TestHaversineKm_IdenticalPointsAreZero(t *testing.T) {
	for _, p := range []orb.Point{hanoi, hcmc, {0, 0}, {180, 90}, {-180, -90}} {
		assert.Zero(t, HaversineKm(p, p), "point %v", p)
	}
}

func TestHaversineKm_Symmetry(t *testing.T) {
	assert.Equal(t, HaversineKm(hanoi, hcmc), HaversineKm(hcmc, hanoi))
	assert.Equal(t, HaversineKm(hanoi, hue), HaversineKm(hue, hanoi))
}

func TestHaversineKm_HanoiToHoChiMinhCity(t *testing.T) {
	distance := HaversineKm(hanoi, hcmc)
	// The straight-line distance between the two cities is ~1138 km.
	assert.InDelta(t, 1138.5, distance, 5.0)
}

func TestHaversineKm_MonotonicWithSeparation(t *testing.T) {
	near := HaversineKm(hanoi, hue)
	far := HaversineKm(hanoi, hcmc)
	assert.Less(t, near, far)
}

func TestHaversineKm_NearAntipodalStaysFinite(t *testing.T) {
	a := orb.Point{0, 0}
	b := orb.Point{179.9999999, 0.0000001}
	distance := HaversineKm(a, b)
	assert.False(t, distance != distance, "distance must not be NaN")
	// Half the Earth's mean circumference.
	assert.InDelta(t, 20015, distance, 10)
}

func TestHaversineKm_NearIdenticalStaysFinite(t *testing.T) {
	a := orb.Point{105.8542, 21.0285}
	b := orb.Point{105.8542 + 1e-13, 21.0285 + 1e-13}
	distance := HaversineKm(a, b)
	assert.False(t, distance != distance, "distance must not be NaN")
	assert.GreaterOrEqual(t, distance, 0.0)
}

func TestIsValidCoordinate(t *testing.T) {
	assert.True(t, IsValidCoordinate(hanoi))
	assert.True(t, IsValidCoordinate(orb.Point{0, 0}))
	assert.False(t, IsValidCoordinate(orb.Point{181, 0}))
	assert.False(t, IsValidCoordinate(orb.Point{0, 91}))
	assert.False(t, IsValidCoordinate(orb.Point{math.NaN(), 0}))
	assert.False(t, IsValidCoordinate(orb.Point{0, math.Inf(1)}))
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, IsPlaceholder(orb.Point{0, 0}))
	assert.False(t, IsPlaceholder(hanoi))
	assert.False(t, IsPlaceholder(orb.Point{0, 21.0285}))
}
