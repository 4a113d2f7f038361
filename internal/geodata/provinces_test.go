package geodata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reliefmap/internal/domain/entity"
)

func TestAll_ReturnsCopy(t *testing.T) {
	a := All()
	require.NotEmpty(t, a)
	a[0].Name = "mutated"

	b := All()
	assert.NotEqual(t, "mutated", b[0].Name)
}

func TestCount(t *testing.T) {
	stats := Count()
	assert.Equal(t, 34, stats.All)
	assert.Equal(t, 6, stats.City)
	assert.Equal(t, 28, stats.Province)
	assert.Equal(t, stats.All, stats.City+stats.Province)
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	got := Search("huế", TypeFilterAll)
	require.Len(t, got, 1)
	assert.Equal(t, "Huế", got[0].Name)

	// Matching against the full name also works.
	got = Search("thành phố", TypeFilterAll)
	assert.Len(t, got, 6)
}

func TestSearch_TypeNarrowing(t *testing.T) {
	cities := Search("", string(entity.ProvinceTypeCity))
	assert.Len(t, cities, 6)
	for _, p := range cities {
		assert.True(t, p.IsCentral)
	}

	provinces := Search("quảng", string(entity.ProvinceTypeProvince))
	require.Len(t, provinces, 3)
	assert.Equal(t, "Quảng Ninh", provinces[0].Name)
	assert.Equal(t, "Quảng Trị", provinces[1].Name)
	assert.Equal(t, "Quảng Ngãi", provinces[2].Name)
}

func TestSearch_EmptyQueryMatchesAll(t *testing.T) {
	assert.Len(t, Search("", TypeFilterAll), 34)
	assert.Len(t, Search("", ""), 34)
}

func TestSearch_NoResults(t *testing.T) {
	assert.Empty(t, Search("Sài Gòn cũ", TypeFilterAll))
}

func TestFindByName(t *testing.T) {
	p, ok := FindByName("Đà Nẵng")
	require.True(t, ok)
	assert.Equal(t, "48", p.Code)
	assert.Equal(t, entity.ProvinceTypeCity, p.Type)

	_, ok = FindByName("Hà Tây")
	assert.False(t, ok)
}
