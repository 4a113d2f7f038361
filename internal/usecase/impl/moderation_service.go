package impl

import (
	"context"
	"log/slog"
	"time"

	"reliefmap/internal/domain/entity"
	domainerrors "reliefmap/internal/domain/errors"
	"reliefmap/internal/domain/repository"
	"reliefmap/internal/domain/service"
	"reliefmap/internal/errors"
	"reliefmap/internal/usecase"

	"github.com/google/uuid"
)

type moderationService struct {
	pointRepo repository.ReliefPointRepository
	adminRepo repository.AdminUserRepository
	audit     service.AuditPublisher
	logger    *slog.Logger
}

// NewModerationService creates a new moderation service instance.
func NewModerationService(
	pointRepo repository.ReliefPointRepository,
	adminRepo repository.AdminUserRepository,
	audit service.AuditPublisher,
	logger *slog.Logger,
) usecase.ModerationUsecase {
	return &moderationService{
		pointRepo: pointRepo,
		adminRepo: adminRepo,
		audit:     audit,
		logger:    logger,
	}
}

// SetVerified moves a point between Pending and Verified.
func (s *moderationService) SetVerified(ctx context.Context, actorID, pointID uuid.UUID, verified bool) (*entity.ReliefPoint, error) {
	role, err := resolveActorRole(ctx, s.adminRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !role.CanModerate() {
		return nil, domainerrors.ErrForbidden
	}

	before, err := s.findPoint(ctx, pointID)
	if err != nil {
		return nil, err
	}

	var verifiedAt *time.Time
	if verified {
		now := time.Now()
		verifiedAt = &now
	}

	if err := s.pointRepo.SetVerified(ctx, pointID, verifiedAt); err != nil {
		if errors.Is(err, repository.ErrPointNotFound) {
			return nil, domainerrors.ErrPointNotFound
		}

		return nil, errors.Wrap(err, "failed to set verified")
	}

	after, err := s.findPoint(ctx, pointID)
	if err != nil {
		return nil, err
	}

	s.publishAudit(ctx, actorID, before, after)

	return after, nil
}

// ToggleStatus flips Open to Closed and anything else to Open.
func (s *moderationService) ToggleStatus(ctx context.Context, actorID, pointID uuid.UUID) (*entity.ReliefPoint, error) {
	role, err := resolveActorRole(ctx, s.adminRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !role.CanModerate() {
		return nil, domainerrors.ErrForbidden
	}

	before, err := s.findPoint(ctx, pointID)
	if err != nil {
		return nil, err
	}

	next := before.Status.Toggle()
	if err := s.pointRepo.SetStatus(ctx, pointID, next); err != nil {
		if errors.Is(err, repository.ErrPointNotFound) {
			return nil, domainerrors.ErrPointNotFound
		}

		return nil, errors.Wrap(err, "failed to toggle status")
	}

	after, err := s.findPoint(ctx, pointID)
	if err != nil {
		return nil, err
	}

	s.publishAudit(ctx, actorID, before, after)

	return after, nil
}

// SetStatus sets an explicit status. Marking a point Full is reserved for
// the admin role since it hides the point from public listings.
func (s *moderationService) SetStatus(ctx context.Context, actorID, pointID uuid.UUID, status entity.PointStatus) (*entity.ReliefPoint, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	role, err := resolveActorRole(ctx, s.adminRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !role.CanModerate() {
		return nil, domainerrors.ErrForbidden
	}
	if status == entity.StatusFull && !role.CanDelete() {
		return nil, domainerrors.ErrForbidden
	}

	before, err := s.findPoint(ctx, pointID)
	if err != nil {
		return nil, err
	}

	if err := s.pointRepo.SetStatus(ctx, pointID, status); err != nil {
		if errors.Is(err, repository.ErrPointNotFound) {
			return nil, domainerrors.ErrPointNotFound
		}

		return nil, errors.Wrap(err, "failed to set status")
	}

	after, err := s.findPoint(ctx, pointID)
	if err != nil {
		return nil, err
	}

	s.publishAudit(ctx, actorID, before, after)

	return after, nil
}

func (s *moderationService) findPoint(ctx context.Context, pointID uuid.UUID) (*entity.ReliefPoint, error) {
	point, err := s.pointRepo.FindPointByID(ctx, pointID)
	if err != nil {
		if errors.Is(err, repository.ErrPointNotFound) {
			return nil, domainerrors.ErrPointNotFound
		}

		return nil, errors.Wrap(err, "failed to find point by ID")
	}

	return point, nil
}

func (s *moderationService) publishAudit(ctx context.Context, actorID uuid.UUID, before, after *entity.ReliefPoint) {
	event := &service.AuditEvent{
		ActorID:   actorID.String(),
		Action:    service.AuditUpdate,
		Table:     reliefPointsTable,
		RecordID:  before.ID.String(),
		Before:    before,
		After:     after,
		Timestamp: time.Now(),
	}

	if err := s.audit.PublishAuditEvent(ctx, event); err != nil {
		s.logger.Warn("audit publish failed",
			slog.String("action", string(service.AuditUpdate)),
			slog.String("record_id", before.ID.String()),
			slog.Any("error", err),
		)
	}
}
