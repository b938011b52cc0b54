package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a public content item authored by a user.
type Post struct {
	Item

	Title    string     `json:"title" gorm:"size:255;index"`
	Username string     `json:"username" gorm:"size:255;index"` // author
	Tags     StringList `json:"tags" gorm:"type:json"`
	ImageURL string     `json:"image_url,omitempty" gorm:"size:512"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
