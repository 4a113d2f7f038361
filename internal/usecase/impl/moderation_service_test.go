package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"reliefmap/internal/domain/entity"
	domainerrors "reliefmap/internal/domain/errors"
	"reliefmap/internal/domain/repository"
	"reliefmap/internal/domain/service"
	mockRepo "reliefmap/internal/mocks/repository"
	mockSvc "reliefmap/internal/mocks/service"
	"reliefmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newModerationService(t *testing.T) (usecase.ModerationUsecase, *mockRepo.MockReliefPointRepository, *mockRepo.MockAdminUserRepository, *mockSvc.MockAuditPublisher) {
	pointRepo := mockRepo.NewMockReliefPointRepository(t)
	adminRepo := mockRepo.NewMockAdminUserRepository(t)
	audit := mockSvc.NewMockAuditPublisher(t)
	logger := slog.New(slog.DiscardHandler)

	return NewModerationService(pointRepo, adminRepo, audit, logger), pointRepo, adminRepo, audit
}

func TestModerationService_SetVerified_Approve(t *testing.T) {
	svc, pointRepo, adminRepo, audit := newModerationService(t)
	ctx := context.Background()
	actorID := uuid.New()
	pointID := uuid.New()

	expectAdmin(adminRepo, ctx, actorID, entity.RoleReviewer)
	pending := &entity.ReliefPoint{ID: pointID, Status: entity.StatusOpen}
	now := time.Now()
	verified := &entity.ReliefPoint{ID: pointID, Status: entity.StatusOpen, VerifiedAt: &now}

	pointRepo.EXPECT().
		FindPointByID(ctx, pointID).
		Return(pending, nil).
		Once()
	pointRepo.EXPECT().
		SetVerified(ctx, pointID, mock.MatchedBy(func(verifiedAt *time.Time) bool {
			return verifiedAt != nil
		})).
		Return(nil)
	pointRepo.EXPECT().
		FindPointByID(ctx, pointID).
		Return(verified, nil).
		Once()
	audit.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil)

	point, err := svc.SetVerified(ctx, actorID, pointID, true)
	require.NoError(t, err)
	assert.True(t, point.IsVerified())
}

func TestModerationService_SetVerified_Revoke(t *testing.T) {
	svc, pointRepo, adminRepo, audit := newModerationService(t)
	ctx := context.Background()
	actorID := uuid.New()
	pointID := uuid.New()

	expectAdmin(adminRepo, ctx, actorID, entity.RoleAdmin)
	now := time.Now()
	verified := &entity.ReliefPoint{ID: pointID, VerifiedAt: &now}
	pending := &entity.ReliefPoint{ID: pointID}

	pointRepo.EXPECT().
		FindPointByID(ctx, pointID).
		Return(verified, nil).
		Once()
	pointRepo.EXPECT().
		SetVerified(ctx, pointID, (*time.Time)(nil)).
		Return(nil)
	pointRepo.EXPECT().
		FindPointByID(ctx, pointID).
		Return(pending, nil).
		Once()
	audit.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil)

	point, err := svc.SetVerified(ctx, actorID, pointID, false)
	require.NoError(t, err)
	assert.False(t, point.IsVerified())
}

func TestModerationService_SetVerified_NotStaff(t *testing.T) {
	svc, _, adminRepo, _ := newModerationService(t)
	ctx := context.Background()
	actorID := uuid.New()

	adminRepo.EXPECT().
		FindByUserID(ctx, actorID).
		Return(nil, repository.ErrAdminNotFound)

	point, err := svc.SetVerified(ctx, actorID, uuid.New(), true)
	assert.Nil(t, point)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestModerationService_ToggleStatus(t *testing.T) {
	tests := []struct {
		name string
		from entity.PointStatus
		want entity.PointStatus
	}{
		{name: "open closes", from: entity.StatusOpen, want: entity.StatusClosed},
		{name: "closed opens", from: entity.StatusClosed, want: entity.StatusOpen},
		{name: "full opens", from: entity.StatusFull, want: entity.StatusOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, pointRepo, adminRepo, audit := newModerationService(t)
			ctx := context.Background()
			actorID := uuid.New()
			pointID := uuid.New()

			expectAdmin(adminRepo, ctx, actorID, entity.RoleReviewer)
			pointRepo.EXPECT().
				FindPointByID(ctx, pointID).
				Return(&entity.ReliefPoint{ID: pointID, Status: tt.from}, nil).
				Once()
			pointRepo.EXPECT().
				SetStatus(ctx, pointID, tt.want).
				Return(nil)
			pointRepo.EXPECT().
				FindPointByID(ctx, pointID).
				Return(&entity.ReliefPoint{ID: pointID, Status: tt.want}, nil).
				Once()
			audit.EXPECT().
				PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
				Return(nil)

			point, err := svc.ToggleStatus(ctx, actorID, pointID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, point.Status)
		})
	}
}

func TestModerationService_SetStatus_FullRequiresAdmin(t *testing.T) {
	svc, _, adminRepo, _ := newModerationService(t)
	ctx := context.Background()
	actorID := uuid.New()

	expectAdmin(adminRepo, ctx, actorID, entity.RoleReviewer)

	point, err := svc.SetStatus(ctx, actorID, uuid.New(), entity.StatusFull)
	assert.Nil(t, point)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestModerationService_SetStatus_FullAsAdmin(t *testing.T) {
	svc, pointRepo, adminRepo, audit := newModerationService(t)
	ctx := context.Background()
	actorID := uuid.New()
	pointID := uuid.New()

	expectAdmin(adminRepo, ctx, actorID, entity.RoleAdmin)
	pointRepo.EXPECT().
		FindPointByID(ctx, pointID).
		Return(&entity.ReliefPoint{ID: pointID, Status: entity.StatusOpen}, nil).
		Once()
	pointRepo.EXPECT().
		SetStatus(ctx, pointID, entity.StatusFull).
		Return(nil)
	pointRepo.EXPECT().
		FindPointByID(ctx, pointID).
		Return(&entity.ReliefPoint{ID: pointID, Status: entity.StatusFull}, nil).
		Once()
	audit.EXPECT().
		PublishAuditEvent(ctx, mock.MatchedBy(func(event *service.AuditEvent) bool {
			return event.Action == service.AuditUpdate
		})).
		Return(nil)

	point, err := svc.SetStatus(ctx, actorID, pointID, entity.StatusFull)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusFull, point.Status)
}

func TestModerationService_SetStatus_InvalidStatus(t *testing.T) {
	svc, _, _, _ := newModerationService(t)
	ctx := context.Background()

	point, err := svc.SetStatus(ctx, uuid.New(), uuid.New(), entity.PointStatus("Busy"))
	assert.Nil(t, point)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestModerationService_SetStatus_PointNotFound(t *testing.T) {
	svc, pointRepo, adminRepo, _ := newModerationService(t)
	ctx := context.Background()
	actorID := uuid.New()
	pointID := uuid.New()

	expectAdmin(adminRepo, ctx, actorID, entity.RoleReviewer)
	pointRepo.EXPECT().
		FindPointByID(ctx, pointID).
		Return(nil, repository.ErrPointNotFound)

	point, err := svc.SetStatus(ctx, actorID, pointID, entity.StatusClosed)
	assert.Nil(t, point)
	assert.ErrorIs(t, err, domainerrors.ErrPointNotFound)
}
