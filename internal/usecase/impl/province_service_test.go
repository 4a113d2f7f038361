package impl

import (
	"testing"

	"reliefmap/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvinceService_SearchProvinces(t *testing.T) {
	t.Parallel()

	svc := NewProvinceService()

	results := svc.SearchProvinces("hà nội", "all")
	require.Len(t, results, 1)
	assert.Equal(t, "Hà Nội", results[0].Name)

	cities := svc.SearchProvinces("", string(entity.ProvinceTypeCity))
	for _, p := range cities {
		assert.Equal(t, entity.ProvinceTypeCity, p.Type)
	}

	assert.Empty(t, svc.SearchProvinces("Atlantis", "all"))
}

func TestProvinceService_ProvinceStats(t *testing.T) {
	t.Parallel()

	svc := NewProvinceService()

	stats := svc.ProvinceStats()
	assert.Equal(t, 34, stats.All)
	assert.Equal(t, stats.All, stats.City+stats.Province)
}
