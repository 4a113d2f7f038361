package entity

import "github.com/paulmach/orb"

// FilterKind discriminates the listing filter union.
type FilterKind int

const (
	// FilterNone lists without narrowing.
	FilterNone FilterKind = iota
	// FilterByProvince narrows to points whose City equals a province name.
	FilterByProvince
	// FilterByRadius narrows to points within a radius of an origin.
	FilterByRadius
)

// Filter is an explicit tagged union of the listing modes. The original UI
// kept "province selected" and "nearby active" as mutually exclusive global
// state; modelling the choice as a value passed per query removes that
// coupling. Callers may still only express one mode at a time, which is the
// exclusivity the UI wants.
type Filter struct {
	kind     FilterKind
	province string
	origin   orb.Point
	radiusKm float64
}

// NoFilter lists everything visible.
func NoFilter() Filter {
	return Filter{kind: FilterNone}
}

// ByProvince narrows a listing to one province name.
func ByProvince(name string) Filter {
	return Filter{kind: FilterByProvince, province: name}
}

// ByRadius narrows a listing to points within radiusKm of origin.
func ByRadius(origin orb.Point, radiusKm float64) Filter {
	return Filter{kind: FilterByRadius, origin: origin, radiusKm: radiusKm}
}

// Kind returns the discriminant.
func (f Filter) Kind() FilterKind {
	return f.kind
}

// Province returns the province name of a FilterByProvince value.
func (f Filter) Province() string {
	return f.province
}

// Origin returns the origin of a FilterByRadius value.
func (f Filter) Origin() orb.Point {
	return f.origin
}

// RadiusKm returns the radius of a FilterByRadius value.
func (f Filter) RadiusKm() float64 {
	return f.radiusKm
}
