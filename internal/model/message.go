package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a direct message between two users. It is a comment-bearing
// item just like Post.
type Message struct {
	Item

	Sender    string `json:"sender" gorm:"size:255;not null;index"`
	Recipient string `json:"recipient" gorm:"size:255;not null;index"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
