package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AdminActivityLogModel is the GORM-specific struct for the 'admin_activity_logs' table.
// Rows are append-only; there is no update or delete path.
type AdminActivityLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ActorID   string    `gorm:"type:text;not null;index"`
	Action    string    `gorm:"type:text;not null"`
	Table     string    `gorm:"column:table_name;type:text;not null"`
	RecordID  string    `gorm:"type:text;not null;index"`
	Before    datatypes.JSON
	After     datatypes.JSON
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AdminActivityLogModel) TableName() string {
	return "admin_activity_logs"
}
