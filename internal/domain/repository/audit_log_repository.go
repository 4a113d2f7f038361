package repository

import (
	"context"

	"reliefmap/internal/domain/entity"
)

// AuditLogRepository reads the persisted audit trail. Writes go through the
// audit publisher, never through this interface.
type AuditLogRepository interface {
	// ListRecent returns the newest audit rows first, capped at limit. A
	// non-empty action narrows to rows with that action.
	ListRecent(ctx context.Context, limit int, action string) ([]*entity.AuditLog, error)
}
