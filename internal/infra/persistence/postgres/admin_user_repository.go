package postgres

import (
	"context"

	"reliefmap/internal/domain/entity"
	domainerrors "reliefmap/internal/domain/errors"
	"reliefmap/internal/domain/repository"
	"reliefmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminUserRepository implements the repository.AdminUserRepository interface.
type adminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository is the constructor for adminUserRepository.
func NewAdminUserRepository(db *gorm.DB) repository.AdminUserRepository {
	return &adminUserRepository{db: db}
}

// FindByUserID retrieves an admin account by its stable user identifier.
func (repo *adminUserRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.AdminUser, error) {
	var adminM model.AdminUserModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by user ID")
	}

	return toAdminUserDomain(&adminM), nil
}

// FindByEmail retrieves an admin account by login email.
func (repo *adminUserRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	var adminM model.AdminUserModel
	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	return toAdminUserDomain(&adminM), nil
}

// CreateAdmin persists a new administrative account.
func (repo *adminUserRepository) CreateAdmin(ctx context.Context, admin *entity.AdminUser) error {
	adminM := &model.AdminUserModel{
		UserID:       admin.UserID,
		Email:        admin.Email,
		Role:         string(admin.Role),
		PasswordHash: admin.PasswordHash,
		CreatedAt:    admin.CreatedAt,
		UpdatedAt:    admin.UpdatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("admin email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	admin.UserID = adminM.UserID
	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

func toAdminUserDomain(adminM *model.AdminUserModel) *entity.AdminUser {
	return &entity.AdminUser{
		UserID:       adminM.UserID,
		Email:        adminM.Email,
		Role:         entity.Role(adminM.Role),
		PasswordHash: adminM.PasswordHash,
		CreatedAt:    adminM.CreatedAt,
		UpdatedAt:    adminM.UpdatedAt,
	}
}
