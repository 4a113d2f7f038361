// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"reliefmap/internal/domain/entity"
	"reliefmap/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for relief point persistence.
var (
	// ErrPointNotFound is returned when a relief point is not found.
	ErrPointNotFound = errors.New("relief point not found")
)

// ReliefPointPatch is a partial update applied by id. Nil fields are left
// untouched; last-writer-wins applies per field.
type ReliefPointPatch struct {
	LocationName    *string
	Address         *string
	City            *string
	Lat             *float64
	Lng             *float64
	Type            *entity.PointType
	Status          *entity.PointStatus
	Description     *string
	SourceURL       *string
	ContentFacebook *string
	Contact         *entity.ContactInfo
	AlbumPreview    *[]entity.AlbumImage
	ReactionCount   *int
}

// ReliefPointRepository defines the interface for relief-point database
// operations. Listing methods return snapshot reads; they tolerate concurrent
// mutation and never mutate state themselves.
type ReliefPointRepository interface {
	// CreatePoint persists a new relief point and fills in generated values.
	CreatePoint(ctx context.Context, point *entity.ReliefPoint) error

	// FindPointByID retrieves a relief point by its unique ID.
	// Returns ErrPointNotFound if no such row exists.
	FindPointByID(ctx context.Context, id uuid.UUID) (*entity.ReliefPoint, error)

	// ListVisible returns points with verified_at set and status other than
	// Full, ordered by verified_at descending (most recently approved first).
	// An optional city narrows the listing to one province.
	ListVisible(ctx context.Context, city string) ([]*entity.ReliefPoint, error)

	// ListAll returns every point regardless of verification state, ordered
	// by created_at descending. verifiedOnly/pendingOnly views are expressed
	// through ListOptions.
	ListAll(ctx context.Context, opts ListOptions) ([]*entity.ReliefPoint, error)

	// UpdatePoint applies a partial update by id.
	// Returns ErrPointNotFound if no such row exists.
	UpdatePoint(ctx context.Context, id uuid.UUID, patch ReliefPointPatch) error

	// SetVerified sets verified_at to the given value (nil clears it).
	// Returns ErrPointNotFound if no such row exists.
	SetVerified(ctx context.Context, id uuid.UUID, verifiedAt *time.Time) error

	// SetStatus updates only the status column.
	// Returns ErrPointNotFound if no such row exists.
	SetStatus(ctx context.Context, id uuid.UUID, status entity.PointStatus) error

	// DeletePoint removes a point by its ID. Irreversible.
	// Returns ErrPointNotFound if no such row exists.
	DeletePoint(ctx context.Context, id uuid.UUID) error
}

// ListOptions narrows the administrative listing.
type ListOptions struct {
	// PendingOnly restricts the listing to points awaiting review.
	PendingOnly bool
	// City, when non-empty, restricts the listing to one province name.
	City string
}
