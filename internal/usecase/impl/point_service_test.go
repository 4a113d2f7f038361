package impl

import (
	"context"
	"log/slog"
	"testing"

	"reliefmap/config"
	"reliefmap/internal/domain/entity"
	"reliefmap/internal/domain/repository"
	"reliefmap/internal/domain/service"
	mockRepo "reliefmap/internal/mocks/repository"
	mockSvc "reliefmap/internal/mocks/service"
	"reliefmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPointService(t *testing.T) (usecase.PointUsecase, *mockRepo.MockReliefPointRepository, *mockRepo.MockAdminUserRepository, *mockSvc.MockAuditPublisher) {
	pointRepo := mockRepo.NewMockReliefPointRepository(t)
	adminRepo := mockRepo.NewMockAdminUserRepository(t)
	audit := mockSvc.NewMockAuditPublisher(t)
	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{}

	return NewPointService(pointRepo, adminRepo, audit, logger, cfg), pointRepo, adminRepo, audit
}

func expectAdmin(adminRepo *mockRepo.MockAdminUserRepository, ctx context.Context, actorID uuid.UUID, role entity.Role) {
	adminRepo.EXPECT().
		FindByUserID(ctx, actorID).
		Return(&entity.AdminUser{UserID: actorID, Role: role}, nil)
}

func TestPointService_SubmitPoint_Success(t *testing.T) {
	svc, pointRepo, _, audit := newPointService(t)
	ctx := context.Background()

	pointRepo.EXPECT().
		CreatePoint(ctx, mock.AnythingOfType("*entity.ReliefPoint")).
		Return(nil)
	audit.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil)

	point, err := svc.SubmitPoint(ctx, &usecase.SubmitPointInput{
		Address: "Trường THCS Quang Trung, Phường Đống Đa, Hà Nội",
		Phone:   "0901234567",
	})
	require.NoError(t, err)

	assert.Equal(t, "Trường THCS Quang Trung", point.LocationName)
	assert.Equal(t, "Hà Nội", point.City)
	assert.Equal(t, entity.PointTypeCollection, point.Type)
	assert.Equal(t, entity.StatusOpen, point.Status)
	assert.Nil(t, point.VerifiedAt)
	assert.False(t, point.HasLocation())
	require.NotNil(t, point.Contact)
	assert.Equal(t, "0901234567", point.Contact.Phone)
}

func TestPointService_SubmitPoint_NoCommaFallbacks(t *testing.T) {
	svc, pointRepo, _, audit := newPointService(t)
	ctx := context.Background()

	pointRepo.EXPECT().
		CreatePoint(ctx, mock.AnythingOfType("*entity.ReliefPoint")).
		Return(nil)
	audit.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil)

	point, err := svc.SubmitPoint(ctx, &usecase.SubmitPointInput{Address: "ngã ba chợ Vinh"})
	require.NoError(t, err)

	// Single segment serves as both name and city source.
	assert.Equal(t, "ngã ba chợ Vinh", point.LocationName)
	assert.Equal(t, "ngã ba chợ Vinh", point.City)
}

func TestPointService_SubmitPoint_EmptySegmentsUseDefaults(t *testing.T) {
	svc, pointRepo, _, audit := newPointService(t)
	ctx := context.Background()

	pointRepo.EXPECT().
		CreatePoint(ctx, mock.AnythingOfType("*entity.ReliefPoint")).
		Return(nil)
	audit.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil)

	point, err := svc.SubmitPoint(ctx, &usecase.SubmitPointInput{Address: ", giữa ,"})
	require.NoError(t, err)

	assert.Equal(t, "Điểm cứu trợ", point.LocationName)
	assert.Equal(t, "Vietnam", point.City)
}

func TestPointService_SubmitPoint_AuditFailureDoesNotFail(t *testing.T) {
	svc, pointRepo, _, audit := newPointService(t)
	ctx := context.Background()

	pointRepo.EXPECT().
		CreatePoint(ctx, mock.AnythingOfType("*entity.ReliefPoint")).
		Return(nil)
	audit.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(assert.AnError)

	point, err := svc.SubmitPoint(ctx, &usecase.SubmitPointInput{Address: "Chợ Hàn, Đà Nẵng"})
	require.NoError(t, err)
	assert.NotNil(t, point)
}

func TestPointService_CreatePoint_Success(t *testing.T) {
	svc, pointRepo, adminRepo, audit := newPointService(t)
	ctx := context.Background()
	actorID := uuid.New()

	expectAdmin(adminRepo, ctx, actorID, entity.RoleReviewer)
	pointRepo.EXPECT().
		CreatePoint(ctx, mock.AnythingOfType("*entity.ReliefPoint")).
		Return(nil)
	audit.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil)

	point, err := svc.CreatePoint(ctx, actorID, &usecase.CreatePointInput{
		LocationName: "Nhà văn hóa thôn 3",
		Address:      "Thôn 3, Xã Trà Leng, Quảng Ngãi",
		City:         "Quảng Ngãi",
		Lat:          15.1205,
		Lng:          108.0527,
		SourceURL:    "https://facebook.com/groups/cuutro/posts/123",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PointTypeReceiving, point.Type)
	assert.Equal(t, entity.StatusOpen, point.Status)
	assert.True(t, point.IsVerified())
	assert.Equal(t, "Được thêm từ Facebook: https://facebook.com/groups/cuutro/posts/123", point.Description)
}

func TestPointService_ListVisible_NoFilter(t *testing.T) {
	svc, pointRepo, _, _ := newPointService(t)
	ctx := context.Background()

	expected := []*entity.ReliefPoint{{ID: uuid.New()}}
	pointRepo.EXPECT().
		ListVisible(ctx, "").
		Return(expected, nil)

	points, err := svc.ListVisible(ctx, entity.NoFilter())
	require.NoError(t, err)
	assert.Equal(t, expected, points)
}

func TestPointService_ListVisible_ProvinceFilter(t *testing.T) {
	svc, pointRepo, _, _ := newPointService(t)
	ctx := context.Background()

	expected := []*entity.ReliefPoint{{ID: uuid.New(), City: "Huế"}}
	pointRepo.EXPECT().
		ListVisible(ctx, "Huế").
		Return(expected, nil)

	points, err := svc.ListVisible(ctx, entity.ByProvince("Huế"))
	require.NoError(t, err)
	assert.Equal(t, expected, points)
}

func TestPointService_ListVisible_RadiusFilter(t *testing.T) {
	svc, pointRepo, _, _ := newPointService(t)
	ctx := context.Background()

	hanoi := orb.Point{105.8542, 21.0285}
	near := &entity.ReliefPoint{ID: uuid.New(), Lat: 21.03, Lng: 105.85, Status: entity.StatusOpen}
	far := &entity.ReliefPoint{ID: uuid.New(), Lat: 10.8231, Lng: 106.6297, Status: entity.StatusOpen}
	pointRepo.EXPECT().
		ListVisible(ctx, "").
		Return([]*entity.ReliefPoint{near, far}, nil)

	points, err := svc.ListVisible(ctx, entity.ByRadius(hanoi, 10))
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, near.ID, points[0].ID)
}

func TestPointService_ListAll_PendingOnly(t *testing.T) {
	svc, pointRepo, adminRepo, _ := newPointService(t)
	ctx := context.Background()
	actorID := uuid.New()

	expectAdmin(adminRepo, ctx, actorID, entity.RoleAdmin)
	expected := []*entity.ReliefPoint{{ID: uuid.New()}}
	pointRepo.EXPECT().
		ListAll(ctx, repository.ListOptions{PendingOnly: true}).
		Return(expected, nil)

	points, err := svc.ListAll(ctx, actorID, usecase.ListAllInput{PendingOnly: true})
	require.NoError(t, err)
	assert.Equal(t, expected, points)
}

func TestPointService_UpdatePoint_Success(t *testing.T) {
	svc, pointRepo, adminRepo, audit := newPointService(t)
	ctx := context.Background()
	actorID := uuid.New()
	pointID := uuid.New()
	newName := "Điểm phát cơm từ thiện"

	expectAdmin(adminRepo, ctx, actorID, entity.RoleReviewer)
	before := &entity.ReliefPoint{ID: pointID, LocationName: "Điểm cũ"}
	after := &entity.ReliefPoint{ID: pointID, LocationName: newName}
	pointRepo.EXPECT().
		FindPointByID(ctx, pointID).
		Return(before, nil).
		Once()
	pointRepo.EXPECT().
		UpdatePoint(ctx, pointID, mock.AnythingOfType("repository.ReliefPointPatch")).
		Return(nil)
	pointRepo.EXPECT().
		FindPointByID(ctx, pointID).
		Return(after, nil).
		Once()
	audit.EXPECT().
		PublishAuditEvent(ctx, mock.MatchedBy(func(event *service.AuditEvent) bool {
			return event.Action == service.AuditUpdate && event.RecordID == pointID.String()
		})).
		Return(nil)

	updated, err := svc.UpdatePoint(ctx, actorID, pointID, &usecase.UpdatePointInput{
		LocationName: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.LocationName)
}

func TestPointService_DeletePoint_AdminSuccess(t *testing.T) {
	svc, pointRepo, adminRepo, audit := newPointService(t)
	ctx := context.Background()
	actorID := uuid.New()
	pointID := uuid.New()

	expectAdmin(adminRepo, ctx, actorID, entity.RoleAdmin)
	pointRepo.EXPECT().
		FindPointByID(ctx, pointID).
		Return(&entity.ReliefPoint{ID: pointID}, nil)
	pointRepo.EXPECT().
		DeletePoint(ctx, pointID).
		Return(nil)
	audit.EXPECT().
		PublishAuditEvent(ctx, mock.MatchedBy(func(event *service.AuditEvent) bool {
			return event.Action == service.AuditDelete && event.After == nil
		})).
		Return(nil)

	err := svc.DeletePoint(ctx, actorID, pointID)
	require.NoError(t, err)
}

func TestPointService_RadiusValidation(t *testing.T) {
	pointRepo := mockRepo.NewMockReliefPointRepository(t)
	adminRepo := mockRepo.NewMockAdminUserRepository(t)
	audit := mockSvc.NewMockAuditPublisher(t)
	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{
		Nearby: &config.NearbyConfig{MinRadiusKm: 5, MaxRadiusKm: 100, RadiusStepKm: 5},
	}
	svc := NewPointService(pointRepo, adminRepo, audit, logger, cfg)

	ctx := context.Background()
	origin := orb.Point{105.8542, 21.0285}

	pointRepo.EXPECT().
		ListVisible(ctx, "").
		Return(nil, nil).
		Times(3)

	for _, radius := range []float64{5, 50, 100} {
		_, err := svc.ListVisible(ctx, entity.ByRadius(origin, radius))
		require.NoError(t, err, "radius %v", radius)
	}
}
