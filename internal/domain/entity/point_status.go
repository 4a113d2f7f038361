package entity

import "strings"

// PointStatus is the operational availability of a relief point. It is
// orthogonal to the moderation state carried by VerifiedAt.
type PointStatus string

const (
	// StatusOpen means the point is actively operating.
	StatusOpen PointStatus = "Open"
	// StatusClosed means the point has stopped operating.
	StatusClosed PointStatus = "Closed"
	// StatusFull means the point cannot take more aid or people. Full points
	// stay out of default public listings but remain in administrative views.
	StatusFull PointStatus = "Full"
)

// String returns the string representation of the PointStatus.
func (s PointStatus) String() string {
	return string(s)
}

// IsValid checks if the PointStatus is a valid value.
func (s PointStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusClosed, StatusFull:
		return true
	default:
		return false
	}
}

// ParsePointStatus normalizes a raw status string to the canonical enum.
// Matching is case-insensitive: historical writers stored both "open" and
// "Open" for the same state.
func ParsePointStatus(raw string) (PointStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "open":
		return StatusOpen, true
	case "closed":
		return StatusClosed, true
	case "full":
		return StatusFull, true
	default:
		return "", false
	}
}

// Toggle flips Open to Closed and anything else to Open. Used by the
// status toggle action on the moderation dashboard.
func (s PointStatus) Toggle() PointStatus {
	if s == StatusOpen {
		return StatusClosed
	}

	return StatusOpen
}
