package models

import (
	"time"
)

// Image is an uploaded file attached to exactly one post or one user
// profile. Exactly one of PostID/UserID is set. FilePath is relative to the
// configured upload directory.
type Image struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FileName  string    `gorm:"not null" json:"file_name"`
	FilePath  string    `gorm:"not null" json:"file_path"`
	PostID    *uint     `gorm:"index" json:"post_id,omitempty"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
