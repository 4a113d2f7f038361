package usecase

import (
	"context"

	"reliefmap/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginResult carries the issued token pair and the resolved role.
type LoginResult struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	UserID       uuid.UUID   `json:"user_id"`
	Role         entity.Role `json:"role"`
}

// RegisterAdminInput creates a new administrative account.
type RegisterAdminInput struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
}

// AdminUsecase is the authorization gate and the administrative account flows.
type AdminUsecase interface {
	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// ResolveRole returns the administrative role of an identity. A missing
	// admin_users row yields ErrForbidden; any backend failure yields
	// ErrBackendUnavailable and never a granted role.
	ResolveRole(ctx context.Context, userID uuid.UUID) (entity.Role, error)

	// RegisterAdmin creates a new administrative account. Only callers
	// holding the admin role may do this.
	RegisterAdmin(ctx context.Context, actorID uuid.UUID, input *RegisterAdminInput) (*entity.AdminUser, error)
}
