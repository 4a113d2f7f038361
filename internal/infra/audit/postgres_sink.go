package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"reliefmap/internal/domain/service"
	"reliefmap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// postgresSink implements AuditPublisher by appending rows to the
// admin_activity_logs table in the same database as the data it audits.
type postgresSink struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewPostgresSink creates an audit publisher backed by the admin_activity_logs table
func NewPostgresSink(db *gorm.DB, logger *slog.Logger) service.AuditPublisher {
	return &postgresSink{db: db, logger: logger}
}

// PublishAuditEvent appends one audit row. Snapshots are serialized to JSONB.
func (p *postgresSink) PublishAuditEvent(ctx context.Context, event *service.AuditEvent) error {
	row := &model.AdminActivityLogModel{
		ActorID:   event.ActorID,
		Action:    string(event.Action),
		Table:     event.Table,
		RecordID:  event.RecordID,
		CreatedAt: event.Timestamp,
	}

	if event.Before != nil {
		data, err := json.Marshal(event.Before)
		if err != nil {
			return errors.WithStack(err)
		}
		row.Before = datatypes.JSON(data)
	}
	if event.After != nil {
		data, err := json.Marshal(event.After)
		if err != nil {
			return errors.WithStack(err)
		}
		row.After = datatypes.JSON(data)
	}

	if err := p.db.WithContext(ctx).Create(row).Error; err != nil {
		return errors.WithStack(err)
	}

	p.logger.Debug("[PostgresAudit] Event recorded",
		slog.String("action", row.Action),
		slog.String("record_id", row.RecordID),
	)

	return nil
}

// Close releases resources (no-op, the shared DB handle is closed elsewhere)
func (p *postgresSink) Close() error {
	return nil
}
