// Package geodata holds the static administrative reference data of Vietnam
// used by the province filter. The table mirrors the 34 first-level units in
// force since the 2025 administrative merger and is compiled into the binary:
// it changes by legislation, not at runtime.
package geodata

import (
	"strings"

	"reliefmap/internal/domain/entity"
)

// provinces is ordered by official unit code.
var provinces = []entity.Province{
	{Code: "01", Name: "Hà Nội", FullName: "Thành phố Hà Nội", Type: entity.ProvinceTypeCity, IsCentral: true},
	{Code: "04", Name: "Cao Bằng", FullName: "Tỉnh Cao Bằng", Type: entity.ProvinceTypeProvince},
	{Code: "08", Name: "Tuyên Quang", FullName: "Tỉnh Tuyên Quang", Type: entity.ProvinceTypeProvince},
	{Code: "11", Name: "Điện Biên", FullName: "Tỉnh Điện Biên", Type: entity.ProvinceTypeProvince},
	{Code: "12", Name: "Lai Châu", FullName: "Tỉnh Lai Châu", Type: entity.ProvinceTypeProvince},
	{Code: "14", Name: "Sơn La", FullName: "Tỉnh Sơn La", Type: entity.ProvinceTypeProvince},
	{Code: "15", Name: "Lào Cai", FullName: "Tỉnh Lào Cai", Type: entity.ProvinceTypeProvince},
	{Code: "19", Name: "Thái Nguyên", FullName: "Tỉnh Thái Nguyên", Type: entity.ProvinceTypeProvince},
	{Code: "20", Name: "Lạng Sơn", FullName: "Tỉnh Lạng Sơn", Type: entity.ProvinceTypeProvince},
	{Code: "22", Name: "Quảng Ninh", FullName: "Tỉnh Quảng Ninh", Type: entity.ProvinceTypeProvince},
	{Code: "24", Name: "Bắc Ninh", FullName: "Tỉnh Bắc Ninh", Type: entity.ProvinceTypeProvince},
	{Code: "25", Name: "Phú Thọ", FullName: "Tỉnh Phú Thọ", Type: entity.ProvinceTypeProvince},
	{Code: "31", Name: "Hải Phòng", FullName: "Thành phố Hải Phòng", Type: entity.ProvinceTypeCity, IsCentral: true},
	{Code: "33", Name: "Hưng Yên", FullName: "Tỉnh Hưng Yên", Type: entity.ProvinceTypeProvince},
	{Code: "37", Name: "Ninh Bình", FullName: "Tỉnh Ninh Bình", Type: entity.ProvinceTypeProvince},
	{Code: "38", Name: "Thanh Hóa", FullName: "Tỉnh Thanh Hóa", Type: entity.ProvinceTypeProvince},
	{Code: "40", Name: "Nghệ An", FullName: "Tỉnh Nghệ An", Type: entity.ProvinceTypeProvince},
	{Code: "42", Name: "Hà Tĩnh", FullName: "Tỉnh Hà Tĩnh", Type: entity.ProvinceTypeProvince},
	{Code: "44", Name: "Quảng Trị", FullName: "Tỉnh Quảng Trị", Type: entity.ProvinceTypeProvince},
	{Code: "46", Name: "Huế", FullName: "Thành phố Huế", Type: entity.ProvinceTypeCity, IsCentral: true},
	{Code: "48", Name: "Đà Nẵng", FullName: "Thành phố Đà Nẵng", Type: entity.ProvinceTypeCity, IsCentral: true},
	{Code: "51", Name: "Quảng Ngãi", FullName: "Tỉnh Quảng Ngãi", Type: entity.ProvinceTypeProvince},
	{Code: "52", Name: "Gia Lai", FullName: "Tỉnh Gia Lai", Type: entity.ProvinceTypeProvince},
	{Code: "56", Name: "Khánh Hòa", FullName: "Tỉnh Khánh Hòa", Type: entity.ProvinceTypeProvince},
	{Code: "66", Name: "Đắk Lắk", FullName: "Tỉnh Đắk Lắk", Type: entity.ProvinceTypeProvince},
	{Code: "68", Name: "Lâm Đồng", FullName: "Tỉnh Lâm Đồng", Type: entity.ProvinceTypeProvince},
	{Code: "72", Name: "Tây Ninh", FullName: "Tỉnh Tây Ninh", Type: entity.ProvinceTypeProvince},
	{Code: "75", Name: "Đồng Nai", FullName: "Tỉnh Đồng Nai", Type: entity.ProvinceTypeProvince},
	{Code: "79", Name: "Hồ Chí Minh", FullName: "Thành phố Hồ Chí Minh", Type: entity.ProvinceTypeCity, IsCentral: true},
	{Code: "86", Name: "Vĩnh Long", FullName: "Tỉnh Vĩnh Long", Type: entity.ProvinceTypeProvince},
	{Code: "87", Name: "Đồng Tháp", FullName: "Tỉnh Đồng Tháp", Type: entity.ProvinceTypeProvince},
	{Code: "91", Name: "An Giang", FullName: "Tỉnh An Giang", Type: entity.ProvinceTypeProvince},
	{Code: "92", Name: "Cần Thơ", FullName: "Thành phố Cần Thơ", Type: entity.ProvinceTypeCity, IsCentral: true},
	{Code: "96", Name: "Cà Mau", FullName: "Tỉnh Cà Mau", Type: entity.ProvinceTypeProvince},
}

// All returns the full province table in official code order. The returned
// slice is a copy; callers may reorder it freely.
func All() []entity.Province {
	out := make([]entity.Province, len(provinces))
	copy(out, provinces)

	return out
}

// TypeFilterAll disables the type narrowing in Search.
const TypeFilterAll = "all"

// Search returns provinces whose name or full name contains query
// (case-insensitive), narrowed by unit type unless typeFilter is "all".
// Pure and synchronous; an empty query matches everything.
func Search(query string, typeFilter string) []entity.Province {
	needle := strings.ToLower(strings.TrimSpace(query))

	result := make([]entity.Province, 0, len(provinces))
	for _, p := range provinces {
		if typeFilter != TypeFilterAll && typeFilter != "" && string(p.Type) != typeFilter {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.FullName), needle) {
			continue
		}
		result = append(result, p)
	}

	return result
}

// Stats holds per-type counts displayed alongside the filter.
type Stats struct {
	All      int `json:"all"`
	City     int `json:"city"`
	Province int `json:"province"`
}

// Count tallies the province table per unit type.
func Count() Stats {
	stats := Stats{All: len(provinces)}
	for _, p := range provinces {
		switch p.Type {
		case entity.ProvinceTypeCity:
			stats.City++
		case entity.ProvinceTypeProvince:
			stats.Province++
		}
	}

	return stats
}

// FindByName returns the province whose short name matches exactly.
func FindByName(name string) (entity.Province, bool) {
	for _, p := range provinces {
		if p.Name == name {
			return p, true
		}
	}

	return entity.Province{}, false
}
