// Package model holds the GORM-specific structs mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReliefPointModel is the GORM-specific struct for the 'relief_points' table.
type ReliefPointModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LocationName    string    `gorm:"type:text;not null"`
	Address         string    `gorm:"type:text;not null"`
	City            string    `gorm:"type:text;not null;index"`
	Lat             float64   `gorm:"type:decimal(10,8);not null;default:0"`
	Lng             float64   `gorm:"type:decimal(11,8);not null;default:0"`
	Type            string    `gorm:"type:text;not null"`
	Status          string    `gorm:"type:text;not null;default:'Open'"`
	Description     string    `gorm:"type:text"`
	SourceURL       string    `gorm:"type:text"`
	ContentFacebook string    `gorm:"type:text"`
	ContactInfo     datatypes.JSON
	AlbumPreview    datatypes.JSON
	ReactionCount   int `gorm:"not null;default:0"`
	Timestamp       *time.Time
	VerifiedAt      *time.Time `gorm:"index"`
	CreatedAt       time.Time  `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReliefPointModel) TableName() string {
	return "relief_points"
}
