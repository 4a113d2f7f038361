// Package usecase defines the application-level interfaces and their input
// shapes. Implementations live in usecase/impl.
package usecase

import (
	"context"

	"reliefmap/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitPointInput is the crowdsourced submission form: address is the only
// required field, the rest is optional context for the reviewer.
type SubmitPointInput struct {
	Address     string `json:"address"`
	FacebookURL string `json:"facebook_url,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// CreatePointInput is the administrative creation form. Coordinates, name and
// city are caller-supplied and required.
type CreatePointInput struct {
	LocationName    string               `json:"location_name"`
	Address         string               `json:"address"`
	City            string               `json:"city"`
	Lat             float64              `json:"lat"`
	Lng             float64              `json:"lng"`
	Type            entity.PointType     `json:"type"`
	Status          entity.PointStatus   `json:"status,omitempty"`
	Description     string               `json:"description,omitempty"`
	SourceURL       string               `json:"source_url,omitempty"`
	ContentFacebook string               `json:"content_facebook,omitempty"`
	Contact         *entity.ContactInfo  `json:"contact_info,omitempty"`
	AlbumPreview    []entity.AlbumImage  `json:"album_preview,omitempty"`
}

// UpdatePointInput is a partial administrative edit. Nil fields stay untouched.
type UpdatePointInput struct {
	LocationName    *string              `json:"location_name,omitempty"`
	Address         *string              `json:"address,omitempty"`
	City            *string              `json:"city,omitempty"`
	Lat             *float64             `json:"lat,omitempty"`
	Lng             *float64             `json:"lng,omitempty"`
	Type            *entity.PointType    `json:"type,omitempty"`
	Status          *entity.PointStatus  `json:"status,omitempty"`
	Description     *string              `json:"description,omitempty"`
	SourceURL       *string              `json:"source_url,omitempty"`
	ContentFacebook *string              `json:"content_facebook,omitempty"`
	Contact         *entity.ContactInfo  `json:"contact_info,omitempty"`
	AlbumPreview    *[]entity.AlbumImage `json:"album_preview,omitempty"`
	ReactionCount   *int                 `json:"reaction_count,omitempty"`
}

// ListAllInput narrows the administrative listing.
type ListAllInput struct {
	PendingOnly bool
	City        string
}

// PointUsecase is the relief-point store façade: the public read and submit
// paths plus the gated administrative mutations.
type PointUsecase interface {
	// SubmitPoint creates an unverified point from a crowdsourced submission.
	// No actor identity is required; the result always starts (Pending, Open)
	// with placeholder coordinates.
	SubmitPoint(ctx context.Context, input *SubmitPointInput) (*entity.ReliefPoint, error)

	// CreatePoint creates a verified point on behalf of an administrator.
	CreatePoint(ctx context.Context, actorID uuid.UUID, input *CreatePointInput) (*entity.ReliefPoint, error)

	// ListVisible is the default public read path: verified, non-Full points,
	// most recently approved first, narrowed by the filter union.
	ListVisible(ctx context.Context, filter entity.Filter) ([]*entity.ReliefPoint, error)

	// ListAll is the administrative read path over every point.
	ListAll(ctx context.Context, actorID uuid.UUID, input ListAllInput) ([]*entity.ReliefPoint, error)

	// UpdatePoint applies a partial administrative edit.
	UpdatePoint(ctx context.Context, actorID, pointID uuid.UUID, input *UpdatePointInput) (*entity.ReliefPoint, error)

	// DeletePoint irreversibly removes a point. Requires the admin role.
	DeletePoint(ctx context.Context, actorID, pointID uuid.UUID) error
}
