package usecase

import (
	"reliefmap/internal/domain/entity"
	"reliefmap/internal/geodata"
)

// ProvinceUsecase serves the static province table: search and the per-type
// counts the filter UI displays. Pure and synchronous, no I/O.
type ProvinceUsecase interface {
	// SearchProvinces matches query case-insensitively against name and full
	// name, narrowed by unit type unless typeFilter is "all" or empty.
	SearchProvinces(query, typeFilter string) []entity.Province

	// ProvinceStats tallies the table per unit type.
	ProvinceStats() geodata.Stats
}
