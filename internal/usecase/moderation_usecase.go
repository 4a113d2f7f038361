package usecase

import (
	"context"

	"reliefmap/internal/domain/entity"

	"github.com/google/uuid"
)

// ModerationUsecase drives the verification/status lifecycle of a point.
// The two axes are independent: verification (Pending/Verified) controls
// public visibility, status (Open/Closed/Full) controls operational state.
// Every transition is gated on the caller's administrative role and none of
// them is terminal.
type ModerationUsecase interface {
	// SetVerified moves a point between Pending and Verified. Idempotent:
	// verifying a verified point refreshes nothing and clearing a pending
	// point is a no-op on visibility.
	SetVerified(ctx context.Context, actorID, pointID uuid.UUID, verified bool) (*entity.ReliefPoint, error)

	// ToggleStatus flips Open to Closed and back. Either administrative role.
	ToggleStatus(ctx context.Context, actorID, pointID uuid.UUID) (*entity.ReliefPoint, error)

	// SetStatus sets an explicit status. Marking a point Full requires the
	// admin role; Open and Closed accept either role.
	SetStatus(ctx context.Context, actorID, pointID uuid.UUID, status entity.PointStatus) (*entity.ReliefPoint, error)
}
