package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentRef is one element of an item's comment reference set. The
// composite primary key makes inserting a ref an atomic set-add: inserting
// the same (item, comment) pair twice is a no-op, never a duplicate.
type CommentRef struct {
	ItemID    uuid.UUID `json:"item_id" gorm:"type:char(36);primaryKey"`
	CommentID uuid.UUID `json:"comment_id" gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}
