package postgres

import (
	"context"
	"encoding/json"

	"reliefmap/internal/domain/entity"
	"reliefmap/internal/domain/repository"
	"reliefmap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultAuditListLimit = 100

// auditLogRepository implements the repository.AuditLogRepository interface.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

// ListRecent returns the newest audit rows first, capped at limit.
func (repo *auditLogRepository) ListRecent(ctx context.Context, limit int, action string) ([]*entity.AuditLog, error) {
	if limit <= 0 || limit > defaultAuditListLimit {
		limit = defaultAuditListLimit
	}

	query := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit)
	if action != "" {
		query = query.Where("action = ?", action)
	}

	var logModels []*model.AdminActivityLogModel
	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list audit logs")
	}

	logs := make([]*entity.AuditLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, &entity.AuditLog{
			ID:        logM.ID,
			ActorID:   logM.ActorID,
			Action:    logM.Action,
			TableName: logM.Table,
			RecordID:  logM.RecordID,
			Before:    json.RawMessage(logM.Before),
			After:     json.RawMessage(logM.After),
			CreatedAt: logM.CreatedAt,
		})
	}

	return logs, nil
}
