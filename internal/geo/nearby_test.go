package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"reliefmap/internal/domain/entity"
)

func point(name, city string, lat, lng float64, status entity.PointStatus) *entity.ReliefPoint {
	return &entity.ReliefPoint{
		LocationName: name,
		City:         city,
		Lat:          lat,
		Lng:          lng,
		Status:       status,
	}
}

func TestFilterNearby_ZeroRadiusExactMatch(t *testing.T) {
	origin := orb.Point{107.5909, 16.4637}
	points := []*entity.ReliefPoint{
		point("tại chỗ", "Thành phố Huế", 16.4637, 107.5909, entity.StatusOpen),
		point("cách 1km", "Thành phố Huế", 16.4727, 107.5909, entity.StatusOpen),
	}

	got := FilterNearby(points, origin, 0)
	assert.Len(t, got, 1)
	assert.Equal(t, "tại chỗ", got[0].LocationName)
}

func TestFilterNearby_HugeRadiusReturnsAllExceptFull(t *testing.T) {
	origin := orb.Point{105.8542, 21.0285}
	points := []*entity.ReliefPoint{
		point("a", "Hà Nội", 21.0, 105.8, entity.StatusOpen),
		point("b", "Thành phố Huế", 16.46, 107.59, entity.StatusClosed),
		point("c", "Đà Nẵng", 16.05, 108.2, entity.StatusFull),
		point("d", "Cần Thơ", 10.04, 105.78, entity.StatusOpen),
	}

	got := FilterNearby(points, origin, 20000)
	assert.Len(t, got, 3)
	for _, p := range got {
		assert.NotEqual(t, entity.StatusFull, p.Status)
	}
}

func TestFilterNearby_ExcludesPlaceholderCoordinates(t *testing.T) {
	origin := orb.Point{0, 0}
	points := []*entity.ReliefPoint{
		point("chưa định vị", "Vietnam", 0, 0, entity.StatusOpen),
		point("gần gốc", "Ghana", 0.01, 0.01, entity.StatusOpen),
	}

	// Even with the origin at (0,0), the placeholder row never matches.
	got := FilterNearby(points, origin, 100)
	assert.Len(t, got, 1)
	assert.Equal(t, "gần gốc", got[0].LocationName)
}

func TestFilterNearby_PreservesInputOrder(t *testing.T) {
	origin := orb.Point{105.8542, 21.0285}
	points := []*entity.ReliefPoint{
		point("xa hơn", "Hà Nội", 21.2, 105.9, entity.StatusOpen),
		point("gần hơn", "Hà Nội", 21.03, 105.86, entity.StatusOpen),
	}

	// Output order follows input order (verified_at desc upstream), not distance.
	got := FilterNearby(points, origin, 50)
	assert.Len(t, got, 2)
	assert.Equal(t, "xa hơn", got[0].LocationName)
	assert.Equal(t, "gần hơn", got[1].LocationName)
}

func TestFilterByProvince(t *testing.T) {
	points := []*entity.ReliefPoint{
		point("a", "Thừa Thiên Huế", 16.46, 107.59, entity.StatusOpen),
		point("b", "Đà Nẵng", 16.05, 108.2, entity.StatusOpen),
		point("c", "Thừa Thiên Huế", 16.3, 107.7, entity.StatusFull),
	}

	got := FilterByProvince(points, "Thừa Thiên Huế")
	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].LocationName)
	assert.Equal(t, "c", got[1].LocationName)

	assert.Empty(t, FilterByProvince(points, "Quảng Trị"))
}

func TestFilterNearby_ComposesWithProvinceFilter(t *testing.T) {
	origin := orb.Point{107.5909, 16.4637}
	points := []*entity.ReliefPoint{
		point("a", "Thừa Thiên Huế", 16.47, 107.6, entity.StatusOpen),
		point("b", "Đà Nẵng", 16.05, 108.2, entity.StatusOpen),
	}

	// The engine itself has no exclusivity restriction between the two modes.
	got := FilterNearby(FilterByProvince(points, "Thừa Thiên Huế"), origin, 10)
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].LocationName)
}
