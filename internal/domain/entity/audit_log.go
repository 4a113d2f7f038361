package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditLog is one persisted audit event: who did what to which row, with
// before/after snapshots. Rows are append-only.
type AuditLog struct {
	ID        uuid.UUID       `json:"id"`
	ActorID   string          `json:"actor_id"`
	Action    string          `json:"action"`
	TableName string          `json:"table_name"`
	RecordID  string          `json:"record_id"`
	Before    json.RawMessage `json:"before,omitempty"`
	After     json.RawMessage `json:"after,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
