package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is the base model for all entities. ID is the internal row key; every
// entity additionally carries its own external UUID column (blog_id, type_id,
// ...) so API identifiers stay stable independent of the storage engine.
type Base struct {
	ID        string    `json:"-"         gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// SoftDelete marks a row hidden instead of removing it. Deleted rows stay
// queryable for idempotent re-creation checks, so this is an explicit flag
// rather than gorm.DeletedAt.
type SoftDelete struct {
	IsDeleted bool       `json:"isDeleted" gorm:"default:false;index"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// MarkDeleted flips the soft-delete flag and stamps the deletion time.
func (s *SoftDelete) MarkDeleted(at time.Time) {
	s.IsDeleted = true
	s.DeletedAt = &at
}

// NumberItem is a headline figure shown on landing-style pages.
type NumberItem struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
