package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment references exactly one content item (post or message).
// Comments are immutable after creation.
type Comment struct {
	ID              uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	ItemID          uuid.UUID  `json:"item_id" gorm:"type:char(36);not null;index"`
	Content         string     `json:"content" gorm:"type:text;not null"`
	Username        string     `json:"username" gorm:"size:255;not null;index"` // author
	ParentCommentID *uuid.UUID `json:"parent_comment_id,omitempty" gorm:"type:char(36);index"`
	ItemKind        string     `json:"item_kind" gorm:"size:16"` // "post" or "message"
	CreatedAt       time.Time  `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
