package impl

import (
	"reliefmap/internal/domain/entity"
	"reliefmap/internal/geodata"
	"reliefmap/internal/usecase"
)

type provinceService struct{}

// NewProvinceService creates a new province service instance.
func NewProvinceService() usecase.ProvinceUsecase {
	return &provinceService{}
}

// SearchProvinces matches the query against the compiled province table.
func (s *provinceService) SearchProvinces(query, typeFilter string) []entity.Province {
	return geodata.Search(query, typeFilter)
}

// ProvinceStats tallies the table per unit type.
func (s *provinceService) ProvinceStats() geodata.Stats {
	return geodata.Count()
}
