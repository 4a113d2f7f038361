package geo

import (
	"github.com/paulmach/orb"

	"reliefmap/internal/domain/entity"
)

// FilterNearby returns the stable-ordered subsequence of points within
// radiusKm of origin, preserving input order. Points whose status is Full
// and points still carrying the (0,0) placeholder are excluded first; the
// two exclusions and the radius predicate are independent of each other.
//
// The function is pure and applies no radius contract: callers own the
// [5,100] km API restriction, which keeps degenerate radii (0, effectively
// unbounded) usable from tests and internal tooling.
func FilterNearby(points []*entity.ReliefPoint, origin orb.Point, radiusKm float64) []*entity.ReliefPoint {
	result := make([]*entity.ReliefPoint, 0, len(points))
	for _, point := range points {
		if point.Status == entity.StatusFull {
			continue
		}
		if !point.HasLocation() {
			continue
		}
		if HaversineKm(origin, orb.Point{point.Lng, point.Lat}) <= radiusKm {
			result = append(result, point)
		}
	}

	return result
}

// FilterByProvince returns the stable-ordered subsequence of points whose
// City equals provinceName. Pure equality match; composes freely with
// FilterNearby even though the UI only ever applies one of the two.
func FilterByProvince(points []*entity.ReliefPoint, provinceName string) []*entity.ReliefPoint {
	result := make([]*entity.ReliefPoint, 0, len(points))
	for _, point := range points {
		if point.City == provinceName {
			result = append(result, point)
		}
	}

	return result
}
