package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"reliefmap/internal/domain/entity"
	domainerrors "reliefmap/internal/domain/errors"
	"reliefmap/internal/domain/repository"
	"reliefmap/internal/domain/service"
	"reliefmap/internal/errors"
	"reliefmap/internal/usecase"

	"github.com/google/uuid"
)

const adminUsersTable = "admin_users"

type adminService struct {
	adminRepo repository.AdminUserRepository
	tokenSvc  service.TokenService
	hasher    service.PasswordHasher
	audit     service.AuditPublisher
	logger    *slog.Logger
}

// NewAdminService creates a new admin service instance.
func NewAdminService(
	adminRepo repository.AdminUserRepository,
	tokenSvc service.TokenService,
	hasher service.PasswordHasher,
	audit service.AuditPublisher,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		adminRepo: adminRepo,
		tokenSvc:  tokenSvc,
		hasher:    hasher,
		audit:     audit,
		logger:    logger,
	}
}

// Login verifies credentials and issues a token pair. A missing account and a
// wrong password produce the same error so the endpoint cannot be used to
// enumerate staff emails.
func (s *adminService) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, domainerrors.ErrBackendUnavailable.WrapMessage("find admin by email")
	}

	if !s.hasher.Check(password, admin.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokenSvc.GenerateTokens(admin.UserID, admin.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       admin.UserID,
		Role:         admin.Role,
	}, nil
}

// ResolveRole returns the administrative role of an identity.
func (s *adminService) ResolveRole(ctx context.Context, userID uuid.UUID) (entity.Role, error) {
	return resolveActorRole(ctx, s.adminRepo, userID)
}

// RegisterAdmin creates a new administrative account. Only existing admins
// may grant roles.
func (s *adminService) RegisterAdmin(ctx context.Context, actorID uuid.UUID, input *usecase.RegisterAdminInput) (*entity.AdminUser, error) {
	role, err := resolveActorRole(ctx, s.adminRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !role.CanDelete() {
		return nil, domainerrors.ErrForbidden
	}

	if input == nil {
		return nil, domainerrors.ErrValidation.WithDetails("thiếu dữ liệu đầu vào")
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" {
		return nil, domainerrors.ErrValidation.WithDetails("email là bắt buộc")
	}
	if len(input.Password) < 8 {
		return nil, domainerrors.ErrValidation.WithDetails("mật khẩu phải có ít nhất 8 ký tự")
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidation.WithDetails("role không hợp lệ")
	}

	if _, err := s.adminRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrConflict
	} else if !errors.Is(err, repository.ErrAdminNotFound) {
		return nil, domainerrors.ErrBackendUnavailable.WrapMessage("check existing admin")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := time.Now()
	admin := &entity.AdminUser{
		UserID:       uuid.New(),
		Email:        email,
		Role:         input.Role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.adminRepo.CreateAdmin(ctx, admin); err != nil {
		return nil, errors.Wrap(err, "failed to create admin")
	}

	// The snapshot deliberately omits the password hash.
	event := &service.AuditEvent{
		ActorID:  actorID.String(),
		Action:   service.AuditInsert,
		Table:    adminUsersTable,
		RecordID: admin.UserID.String(),
		After: map[string]any{
			"email": admin.Email,
			"role":  admin.Role.String(),
		},
		Timestamp: time.Now(),
	}
	if err := s.audit.PublishAuditEvent(ctx, event); err != nil {
		s.logger.Warn("audit publish failed",
			slog.String("action", string(service.AuditInsert)),
			slog.String("record_id", admin.UserID.String()),
			slog.Any("error", err),
		)
	}

	return admin, nil
}
