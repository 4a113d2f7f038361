// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReliefPoint is the central entity of the system: a single aid/relief
// location shown on the public map once it has been verified.
type ReliefPoint struct {
	ID              uuid.UUID     // The unique identifier, assigned at creation and never changed.
	LocationName    string        // Short human label, e.g. "Nhà văn hóa thôn Mỹ Thành".
	Address         string        // Full free-text address as submitted.
	City            string        // Province/city segment used by the province filter.
	Lat             float64       // Latitude in decimal degrees. (0,0) together with Lng means "not yet geocoded".
	Lng             float64       // Longitude in decimal degrees.
	Type            PointType     // Category of the point (collection, shelter, medical, ...).
	Status          PointStatus   // Operational availability, independent of moderation state.
	Description     string        // Optional free text.
	SourceURL       string        // Optional originating link, usually a social-media post.
	ContentFacebook string        // Optional verbatim text copied from the source post.
	Contact         *ContactInfo  // Optional structured contact details.
	AlbumPreview    []AlbumImage  // Optional ordered image references, normalized at the store boundary.
	ReactionCount   int           // External engagement metric from the source post, never negative.
	Timestamp       *time.Time    // Creation time of the source post, distinct from CreatedAt.
	VerifiedAt      *time.Time    // The moderation gate. Nil means pending review and not publicly visible.
	CreatedAt       time.Time     // Record creation timestamp, immutable.
	UpdatedAt       time.Time     // Timestamp of the last modification.
}

// ContactInfo holds optional contact details for a relief point.
type ContactInfo struct {
	Name         string `json:"name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	FacebookLink string `json:"facebook_link,omitempty"`
}

// AlbumImage is the normalized shape of an album_preview entry. Upstream
// sources mix bare URL strings with {image_file_uri, url} objects; the store
// boundary folds both into this single form so consumers never branch on type.
type AlbumImage struct {
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url,omitempty"`
}

// IsVerified reports whether the point has passed moderation and is publicly
// listable.
func (p *ReliefPoint) IsVerified() bool {
	return p.VerifiedAt != nil
}

// HasLocation reports whether the point carries a real mappable coordinate.
// (0,0) is the distinguished "awaiting geocoding" placeholder, not a position.
func (p *ReliefPoint) HasLocation() bool {
	return p.Lat != 0 || p.Lng != 0
}
