package repository

import (
	"context"

	"reliefmap/internal/domain/entity"
	"reliefmap/internal/errors"

	"github.com/google/uuid"
)

// ErrAdminNotFound is returned when no admin_users row exists for an identity.
// It is the ONLY condition that may be read as "authenticated but not staff";
// any other lookup failure must surface as an error and never as a role.
var ErrAdminNotFound = errors.New("admin user not found")

// AdminUserRepository defines the interface for administrative identity lookups.
type AdminUserRepository interface {
	// FindByUserID retrieves an admin account by its stable user identifier.
	// Returns ErrAdminNotFound if the identity has no administrative role.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.AdminUser, error)

	// FindByEmail retrieves an admin account by login email.
	// Returns ErrAdminNotFound if no such account exists.
	FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error)

	// CreateAdmin persists a new administrative account.
	CreateAdmin(ctx context.Context, admin *entity.AdminUser) error
}
