package impl

import (
	"context"
	"log/slog"
	"testing"

	"reliefmap/internal/domain/entity"
	domainerrors "reliefmap/internal/domain/errors"
	"reliefmap/internal/domain/repository"
	mockRepo "reliefmap/internal/mocks/repository"
	mockSvc "reliefmap/internal/mocks/service"
	"reliefmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminService(t *testing.T) (usecase.AdminUsecase, *mockRepo.MockAdminUserRepository, *mockSvc.MockTokenService, *mockSvc.MockPasswordHasher, *mockSvc.MockAuditPublisher) {
	adminRepo := mockRepo.NewMockAdminUserRepository(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	audit := mockSvc.NewMockAuditPublisher(t)
	logger := slog.New(slog.DiscardHandler)

	return NewAdminService(adminRepo, tokenSvc, hasher, audit, logger), adminRepo, tokenSvc, hasher, audit
}

func TestAdminService_Login_Success(t *testing.T) {
	svc, adminRepo, tokenSvc, hasher, _ := newAdminService(t)
	ctx := context.Background()
	userID := uuid.New()

	admin := &entity.AdminUser{
		UserID:       userID,
		Email:        "mod@reliefmap.vn",
		Role:         entity.RoleAdmin,
		PasswordHash: "$2a$10$hash",
	}

	adminRepo.EXPECT().
		FindByEmail(ctx, "mod@reliefmap.vn").
		Return(admin, nil)
	hasher.EXPECT().
		Check("s3cret-pass", "$2a$10$hash").
		Return(true)
	tokenSvc.EXPECT().
		GenerateTokens(userID, "admin").
		Return("access-token", "refresh-token", nil)

	result, err := svc.Login(ctx, "mod@reliefmap.vn", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.Equal(t, "refresh-token", result.RefreshToken)
	assert.Equal(t, userID, result.UserID)
	assert.Equal(t, entity.RoleAdmin, result.Role)
}

func TestAdminService_Login_NormalizesEmail(t *testing.T) {
	svc, adminRepo, tokenSvc, hasher, _ := newAdminService(t)
	ctx := context.Background()
	userID := uuid.New()

	admin := &entity.AdminUser{UserID: userID, Role: entity.RoleReviewer, PasswordHash: "h"}

	adminRepo.EXPECT().
		FindByEmail(ctx, "mod@reliefmap.vn").
		Return(admin, nil)
	hasher.EXPECT().
		Check("pw-reviewer", "h").
		Return(true)
	tokenSvc.EXPECT().
		GenerateTokens(userID, "reviewer").
		Return("a", "r", nil)

	_, err := svc.Login(ctx, "  MOD@ReliefMap.VN  ", "pw-reviewer")
	require.NoError(t, err)
}

func TestAdminService_Login_UnknownEmail(t *testing.T) {
	svc, adminRepo, _, _, _ := newAdminService(t)
	ctx := context.Background()

	adminRepo.EXPECT().
		FindByEmail(ctx, "nobody@reliefmap.vn").
		Return(nil, repository.ErrAdminNotFound)

	result, err := svc.Login(ctx, "nobody@reliefmap.vn", "whatever")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	svc, adminRepo, _, hasher, _ := newAdminService(t)
	ctx := context.Background()

	admin := &entity.AdminUser{UserID: uuid.New(), Role: entity.RoleAdmin, PasswordHash: "h"}
	adminRepo.EXPECT().
		FindByEmail(ctx, "mod@reliefmap.vn").
		Return(admin, nil)
	hasher.EXPECT().
		Check("wrong", "h").
		Return(false)

	result, err := svc.Login(ctx, "mod@reliefmap.vn", "wrong")
	assert.Nil(t, result)
	// Same error as unknown email: the endpoint must not leak which exists.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminService_Login_BackendFailure(t *testing.T) {
	svc, adminRepo, _, _, _ := newAdminService(t)
	ctx := context.Background()

	adminRepo.EXPECT().
		FindByEmail(ctx, "mod@reliefmap.vn").
		Return(nil, assert.AnError)

	result, err := svc.Login(ctx, "mod@reliefmap.vn", "pw-any")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminService_Login_EmptyInput(t *testing.T) {
	svc, _, _, _, _ := newAdminService(t)
	ctx := context.Background()

	for _, pair := range [][2]string{{"", "pw"}, {"a@b.c", ""}, {"", ""}} {
		result, err := svc.Login(ctx, pair[0], pair[1])
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}
}

func TestAdminService_ResolveRole(t *testing.T) {
	svc, adminRepo, _, _, _ := newAdminService(t)
	ctx := context.Background()
	userID := uuid.New()

	adminRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.AdminUser{UserID: userID, Role: entity.RoleReviewer}, nil)

	role, err := svc.ResolveRole(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleReviewer, role)
}

func TestAdminService_ResolveRole_MissingRowIsForbidden(t *testing.T) {
	svc, adminRepo, _, _, _ := newAdminService(t)
	ctx := context.Background()
	userID := uuid.New()

	adminRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrAdminNotFound)

	role, err := svc.ResolveRole(ctx, userID)
	assert.Empty(t, role)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAdminService_ResolveRole_BackendFailureGrantsNothing(t *testing.T) {
	svc, adminRepo, _, _, _ := newAdminService(t)
	ctx := context.Background()
	userID := uuid.New()

	adminRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, assert.AnError)

	role, err := svc.ResolveRole(ctx, userID)
	assert.Empty(t, role)
	assert.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)
}

func TestAdminService_RegisterAdmin_Success(t *testing.T) {
	svc, adminRepo, _, hasher, audit := newAdminService(t)
	ctx := context.Background()
	actorID := uuid.New()

	expectAdmin(adminRepo, ctx, actorID, entity.RoleAdmin)
	adminRepo.EXPECT().
		FindByEmail(ctx, "new@reliefmap.vn").
		Return(nil, repository.ErrAdminNotFound)
	hasher.EXPECT().
		Hash("long-enough-password").
		Return("hashed", nil)
	adminRepo.EXPECT().
		CreateAdmin(ctx, mock.MatchedBy(func(admin *entity.AdminUser) bool {
			return admin.Email == "new@reliefmap.vn" &&
				admin.Role == entity.RoleReviewer &&
				admin.PasswordHash == "hashed"
		})).
		Return(nil)
	audit.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil)

	admin, err := svc.RegisterAdmin(ctx, actorID, &usecase.RegisterAdminInput{
		Email:    "New@ReliefMap.VN",
		Password: "long-enough-password",
		Role:     entity.RoleReviewer,
	})
	require.NoError(t, err)
	assert.Equal(t, "new@reliefmap.vn", admin.Email)
}

func TestAdminService_RegisterAdmin_ReviewerForbidden(t *testing.T) {
	svc, adminRepo, _, _, _ := newAdminService(t)
	ctx := context.Background()
	actorID := uuid.New()

	expectAdmin(adminRepo, ctx, actorID, entity.RoleReviewer)

	admin, err := svc.RegisterAdmin(ctx, actorID, &usecase.RegisterAdminInput{
		Email:    "new@reliefmap.vn",
		Password: "long-enough-password",
		Role:     entity.RoleReviewer,
	})
	assert.Nil(t, admin)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAdminService_RegisterAdmin_DuplicateEmail(t *testing.T) {
	svc, adminRepo, _, _, _ := newAdminService(t)
	ctx := context.Background()
	actorID := uuid.New()

	expectAdmin(adminRepo, ctx, actorID, entity.RoleAdmin)
	adminRepo.EXPECT().
		FindByEmail(ctx, "dup@reliefmap.vn").
		Return(&entity.AdminUser{Email: "dup@reliefmap.vn"}, nil)

	admin, err := svc.RegisterAdmin(ctx, actorID, &usecase.RegisterAdminInput{
		Email:    "dup@reliefmap.vn",
		Password: "long-enough-password",
		Role:     entity.RoleReviewer,
	})
	assert.Nil(t, admin)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestAdminService_RegisterAdmin_ShortPassword(t *testing.T) {
	svc, adminRepo, _, _, _ := newAdminService(t)
	ctx := context.Background()
	actorID := uuid.New()

	expectAdmin(adminRepo, ctx, actorID, entity.RoleAdmin)

	admin, err := svc.RegisterAdmin(ctx, actorID, &usecase.RegisterAdminInput{
		Email:    "new@reliefmap.vn",
		Password: "short",
		Role:     entity.RoleReviewer,
	})
	assert.Nil(t, admin)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestAdminService_RegisterAdmin_NilInput(t *testing.T) {
	svc, adminRepo, _, _, _ := newAdminService(t)
	ctx := context.Background()
	actorID := uuid.New()

	adminRepo.EXPECT().
		FindByUserID(ctx, actorID).
		Return(&entity.AdminUser{UserID: actorID, Role: entity.RoleAdmin}, nil)

	admin, err := svc.RegisterAdmin(ctx, actorID, nil)
	assert.Nil(t, admin)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}
