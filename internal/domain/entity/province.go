package entity

// ProvinceType distinguishes centrally-run cities from provinces.
type ProvinceType string

const (
	// ProvinceTypeCity is a centrally-run city ("Thành phố").
	ProvinceTypeCity ProvinceType = "city"
	// ProvinceTypeProvince is a regular province ("Tỉnh").
	ProvinceTypeProvince ProvinceType = "province"
)

// Province is a static administrative unit used only as a filter predicate
// against ReliefPoint.City. The table is compiled into the binary; it is
// reference data, not persisted state.
type Province struct {
	Code      string       `json:"code"`
	Name      string       `json:"name"`
	FullName  string       `json:"fullName"`
	Type      ProvinceType `json:"type"`
	IsCentral bool         `json:"isCentral"`
}
