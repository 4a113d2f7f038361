// Package impl contains the concrete use-case services.
package impl

import (
	"context"

	"reliefmap/internal/domain/entity"
	domainerrors "reliefmap/internal/domain/errors"
	"reliefmap/internal/domain/repository"
	"reliefmap/internal/errors"

	"github.com/google/uuid"
)

// resolveActorRole is the authorization gate every mutating operation passes
// through. A missing admin_users row means no privilege; so does any lookup
// failure. A backend error must never be downgraded to a granted role.
func resolveActorRole(ctx context.Context, adminRepo repository.AdminUserRepository, actorID uuid.UUID) (entity.Role, error) {
	admin, err := adminRepo.FindByUserID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return "", domainerrors.ErrForbidden
		}

		return "", domainerrors.ErrBackendUnavailable.WrapMessage("resolve role")
	}

	if !admin.Role.IsValid() {
		return "", domainerrors.ErrForbidden
	}

	return admin.Role, nil
}
