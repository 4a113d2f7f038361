package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"reliefmap/config"
	"reliefmap/internal/domain/entity"
	domainerrors "reliefmap/internal/domain/errors"
	"reliefmap/internal/domain/repository"
	"reliefmap/internal/domain/service"
	"reliefmap/internal/errors"
	"reliefmap/internal/geo"
	"reliefmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

const (
	// Fallback literals when a submitted address has no usable segments.
	defaultLocationName = "Điểm cứu trợ"
	defaultCity         = "Vietnam"

	reliefPointsTable = "relief_points"

	// Actor recorded for anonymous self-service submissions.
	anonymousActor = "anonymous"
)

type pointService struct {
	pointRepo repository.ReliefPointRepository
	adminRepo repository.AdminUserRepository
	audit     service.AuditPublisher
	logger    *slog.Logger
	nearby    *config.NearbyConfig
}

// NewPointService creates a new relief-point service instance.
func NewPointService(
	pointRepo repository.ReliefPointRepository,
	adminRepo repository.AdminUserRepository,
	audit service.AuditPublisher,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.PointUsecase {
	nearby := cfg.Nearby
	if nearby == nil {
		nearby = &config.NearbyConfig{
			MinRadiusKm:  5,
			MaxRadiusKm:  100,
			RadiusStepKm: 5,
		}
	}

	return &pointService{
		pointRepo: pointRepo,
		adminRepo: adminRepo,
		audit:     audit,
		logger:    logger,
		nearby:    nearby,
	}
}

// SubmitPoint creates an unverified point from a crowdsourced submission.
// The point always enters the moderation queue: placeholder coordinates,
// verified_at unset, regardless of what the caller sends.
func (s *pointService) SubmitPoint(ctx context.Context, input *usecase.SubmitPointInput) (*entity.ReliefPoint, error) {
	if input == nil {
		return nil, domainerrors.ErrAddressRequired
	}

	address := strings.TrimSpace(input.Address)
	if address == "" {
		return nil, domainerrors.ErrAddressRequired
	}

	locationName, city := splitAddress(address)

	point := &entity.ReliefPoint{
		ID:           uuid.New(),
		LocationName: locationName,
		Address:      address,
		City:         city,
		Lat:          0, // awaiting geocoding by a reviewer
		Lng:          0,
		Type:         entity.PointTypeCollection,
		Status:       entity.StatusOpen,
		SourceURL:    strings.TrimSpace(input.FacebookURL),
		VerifiedAt:   nil,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		point.Contact = &entity.ContactInfo{Phone: phone}
	}

	if err := s.pointRepo.CreatePoint(ctx, point); err != nil {
		return nil, errors.Wrap(err, "failed to create submitted point")
	}

	s.publishAudit(ctx, anonymousActor, service.AuditInsert, point.ID, nil, point)

	return point, nil
}

// CreatePoint creates a verified point on behalf of an administrator.
func (s *pointService) CreatePoint(ctx context.Context, actorID uuid.UUID, input *usecase.CreatePointInput) (*entity.ReliefPoint, error) {
	role, err := resolveActorRole(ctx, s.adminRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !role.CanModerate() {
		return nil, domainerrors.ErrForbidden
	}

	if input == nil {
		return nil, domainerrors.ErrValidation.WithDetails("thiếu dữ liệu đầu vào")
	}

	address := strings.TrimSpace(input.Address)
	if address == "" {
		return nil, domainerrors.ErrAddressRequired
	}
	if strings.TrimSpace(input.LocationName) == "" || strings.TrimSpace(input.City) == "" {
		return nil, domainerrors.ErrValidation.WithDetails("location_name và city là bắt buộc")
	}

	coord := orb.Point{input.Lng, input.Lat}
	if !geo.IsValidCoordinate(coord) || geo.IsPlaceholder(coord) {
		return nil, domainerrors.ErrCoordinatesRequired
	}

	pointType := input.Type
	if pointType == "" {
		pointType = entity.PointTypeReceiving
	}
	if !pointType.IsValid() {
		return nil, domainerrors.ErrInvalidPointType
	}

	status := input.Status
	if status == "" {
		status = entity.StatusOpen
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	description := strings.TrimSpace(input.Description)
	if description == "" && input.SourceURL != "" {
		description = fmt.Sprintf("Được thêm từ Facebook: %s", input.SourceURL)
	}

	now := time.Now()
	point := &entity.ReliefPoint{
		ID:              uuid.New(),
		LocationName:    strings.TrimSpace(input.LocationName),
		Address:         address,
		City:            strings.TrimSpace(input.City),
		Lat:             input.Lat,
		Lng:             input.Lng,
		Type:            pointType,
		Status:          status,
		Description:     description,
		SourceURL:       strings.TrimSpace(input.SourceURL),
		ContentFacebook: input.ContentFacebook,
		Contact:         input.Contact,
		AlbumPreview:    input.AlbumPreview,
		VerifiedAt:      &now, // administrative creations are approved on the spot
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.pointRepo.CreatePoint(ctx, point); err != nil {
		return nil, errors.Wrap(err, "failed to create point")
	}

	s.publishAudit(ctx, actorID.String(), service.AuditInsert, point.ID, nil, point)

	return point, nil
}

// ListVisible is the default public read path.
func (s *pointService) ListVisible(ctx context.Context, filter entity.Filter) ([]*entity.ReliefPoint, error) {
	switch filter.Kind() {
	case entity.FilterByProvince:
		points, err := s.pointRepo.ListVisible(ctx, filter.Province())
		if err != nil {
			return nil, errors.Wrap(err, "failed to list visible points by province")
		}

		return points, nil

	case entity.FilterByRadius:
		if err := s.validateRadius(filter.RadiusKm()); err != nil {
			return nil, err
		}
		if !geo.IsValidCoordinate(filter.Origin()) {
			return nil, domainerrors.ErrCoordinatesRequired
		}

		points, err := s.pointRepo.ListVisible(ctx, "")
		if err != nil {
			return nil, errors.Wrap(err, "failed to list visible points for nearby search")
		}

		return geo.FilterNearby(points, filter.Origin(), filter.RadiusKm()), nil

	default:
		points, err := s.pointRepo.ListVisible(ctx, "")
		if err != nil {
			return nil, errors.Wrap(err, "failed to list visible points")
		}

		return points, nil
	}
}

// ListAll is the administrative read path over every point.
func (s *pointService) ListAll(ctx context.Context, actorID uuid.UUID, input usecase.ListAllInput) ([]*entity.ReliefPoint, error) {
	role, err := resolveActorRole(ctx, s.adminRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !role.CanModerate() {
		return nil, domainerrors.ErrForbidden
	}

	points, err := s.pointRepo.ListAll(ctx, repository.ListOptions{
		PendingOnly: input.PendingOnly,
		City:        input.City,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all points")
	}

	return points, nil
}

// UpdatePoint applies a partial administrative edit.
func (s *pointService) UpdatePoint(ctx context.Context, actorID, pointID uuid.UUID, input *usecase.UpdatePointInput) (*entity.ReliefPoint, error) {
	role, err := resolveActorRole(ctx, s.adminRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !role.CanModerate() {
		return nil, domainerrors.ErrForbidden
	}

	if err := validatePatch(input); err != nil {
		return nil, err
	}

	before, err := s.findPoint(ctx, pointID)
	if err != nil {
		return nil, err
	}

	patch := repository.ReliefPointPatch{
		LocationName:    input.LocationName,
		Address:         input.Address,
		City:            input.City,
		Lat:             input.Lat,
		Lng:             input.Lng,
		Type:            input.Type,
		Status:          input.Status,
		Description:     input.Description,
		SourceURL:       input.SourceURL,
		ContentFacebook: input.ContentFacebook,
		Contact:         input.Contact,
		AlbumPreview:    input.AlbumPreview,
		ReactionCount:   input.ReactionCount,
	}

	if err := s.pointRepo.UpdatePoint(ctx, pointID, patch); err != nil {
		if errors.Is(err, repository.ErrPointNotFound) {
			return nil, domainerrors.ErrPointNotFound
		}

		return nil, errors.Wrap(err, "failed to update point")
	}

	after, err := s.findPoint(ctx, pointID)
	if err != nil {
		return nil, err
	}

	s.publishAudit(ctx, actorID.String(), service.AuditUpdate, pointID, before, after)

	return after, nil
}

// DeletePoint irreversibly removes a point. Only the admin role may delete.
func (s *pointService) DeletePoint(ctx context.Context, actorID, pointID uuid.UUID) error {
	role, err := resolveActorRole(ctx, s.adminRepo, actorID)
	if err != nil {
		return err
	}
	if !role.CanDelete() {
		return domainerrors.ErrDeleteRequiresAdmin
	}

	before, err := s.findPoint(ctx, pointID)
	if err != nil {
		return err
	}

	if err := s.pointRepo.DeletePoint(ctx, pointID); err != nil {
		if errors.Is(err, repository.ErrPointNotFound) {
			return domainerrors.ErrPointNotFound
		}

		return errors.Wrap(err, "failed to delete point")
	}

	s.publishAudit(ctx, actorID.String(), service.AuditDelete, pointID, before, nil)

	return nil
}

func (s *pointService) findPoint(ctx context.Context, pointID uuid.UUID) (*entity.ReliefPoint, error) {
	point, err := s.pointRepo.FindPointByID(ctx, pointID)
	if err != nil {
		if errors.Is(err, repository.ErrPointNotFound) {
			return nil, domainerrors.ErrPointNotFound
		}

		return nil, errors.Wrap(err, "failed to find point by ID")
	}

	return point, nil
}

// validateRadius enforces the caller contract: [min,max] km in fixed steps.
// Out-of-contract radii are rejected rather than clamped, so a caller always
// gets an answer to the exact question it asked.
func (s *pointService) validateRadius(radiusKm float64) error {
	if radiusKm < s.nearby.MinRadiusKm || radiusKm > s.nearby.MaxRadiusKm {
		return domainerrors.ErrInvalidRadius
	}

	step := s.nearby.RadiusStepKm
	if step > 0 {
		steps := radiusKm / step
		if steps != float64(int(steps)) {
			return domainerrors.ErrInvalidRadius
		}
	}

	return nil
}

func validatePatch(input *usecase.UpdatePointInput) error {
	if input == nil {
		return domainerrors.ErrValidation.WithDetails("thiếu dữ liệu đầu vào")
	}
	if input.Status != nil && !input.Status.IsValid() {
		return domainerrors.ErrInvalidStatus
	}
	if input.Type != nil && !input.Type.IsValid() {
		return domainerrors.ErrInvalidPointType
	}
	if input.Lat != nil || input.Lng != nil {
		if input.Lat == nil || input.Lng == nil {
			return domainerrors.ErrCoordinatesRequired
		}
		if !geo.IsValidCoordinate(orb.Point{*input.Lng, *input.Lat}) {
			return domainerrors.ErrCoordinatesRequired
		}
	}
	if input.ReactionCount != nil && *input.ReactionCount < 0 {
		return domainerrors.ErrValidation.WithDetails("reaction_count không được âm")
	}

	return nil
}

// splitAddress derives a display name and a city from a free-text address:
// first comma segment and last comma segment, with fixed fallbacks when a
// segment comes out empty.
func splitAddress(address string) (locationName, city string) {
	parts := strings.Split(address, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	locationName = parts[0]
	if locationName == "" {
		locationName = defaultLocationName
	}

	city = parts[len(parts)-1]
	if city == "" {
		city = defaultCity
	}

	return locationName, city
}

// publishAudit sends a fire-and-forget audit event. A failed publish is
// logged and never fails the originating mutation.
func (s *pointService) publishAudit(ctx context.Context, actor string, action service.AuditAction, recordID uuid.UUID, before, after any) {
	event := &service.AuditEvent{
		ActorID:   actor,
		Action:    action,
		Table:     reliefPointsTable,
		RecordID:  recordID.String(),
		Before:    before,
		After:     after,
		Timestamp: time.Now(),
	}

	if err := s.audit.PublishAuditEvent(ctx, event); err != nil {
		s.logger.Warn("audit publish failed",
			slog.String("action", string(action)),
			slog.String("record_id", recordID.String()),
			slog.Any("error", err),
		)
	}
}
