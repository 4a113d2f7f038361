package entity

// PointType is the category of a relief point. The values are the Vietnamese
// labels used across the public map and the moderation dashboard.
type PointType string

const (
	// PointTypeCollection is a collection/staging point ("Điểm tập kết").
	PointTypeCollection PointType = "Điểm tập kết"
	// PointTypeReceiving is a receiving point for donated goods ("Điểm tiếp nhận").
	PointTypeReceiving PointType = "Điểm tiếp nhận"
	// PointTypeReliefCenter is an organized relief center ("Trung tâm cứu trợ").
	PointTypeReliefCenter PointType = "Trung tâm cứu trợ"
	// PointTypeShelter is an emergency shelter ("Nơi trú ẩn").
	PointTypeShelter PointType = "Nơi trú ẩn"
	// PointTypeMedical is a medical aid point ("Y tế").
	PointTypeMedical PointType = "Y tế"
	// PointTypeFood distributes food ("Thực phẩm").
	PointTypeFood PointType = "Thực phẩm"
	// PointTypeWater distributes drinking water ("Nước uống").
	PointTypeWater PointType = "Nước uống"
	// PointTypeFreeRepair offers free vehicle repair ("Sửa xe miễn phí").
	PointTypeFreeRepair PointType = "Sửa xe miễn phí"
)

// String returns the string representation of the PointType.
func (t PointType) String() string {
	return string(t)
}

// IsValid checks if the PointType is one of the enumerated categories.
func (t PointType) IsValid() bool {
	switch t {
	case PointTypeCollection, PointTypeReceiving, PointTypeReliefCenter,
		PointTypeShelter, PointTypeMedical, PointTypeFood,
		PointTypeWater, PointTypeFreeRepair:
		return true
	default:
		return false
	}
}

// PointTypes lists every valid category, in the order the dashboard offers them.
func PointTypes() []PointType {
	return []PointType{
		PointTypeCollection,
		PointTypeReceiving,
		PointTypeReliefCenter,
		PointTypeShelter,
		PointTypeMedical,
		PointTypeFood,
		PointTypeWater,
		PointTypeFreeRepair,
	}
}
