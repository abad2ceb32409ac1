package models

import (
	"time"

	"daywise/internal/uuid"

	"gorm.io/gorm"
)

// Base carries the columns shared by every table: a UUIDv7 primary key,
// timestamps, and soft-delete support.
type Base struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate assigns a UUIDv7 when the record has no ID yet. Time-ordered
// IDs keep insertion order visible in the primary key.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
