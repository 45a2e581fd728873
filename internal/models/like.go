package models

import (
	"time"
)

// Like records that a user likes a post; the row's existence is the signal.
// At most one row per (user_id, post_id) pair. The pair is checked in the
// service layer before insert; there is deliberately no database uniqueness
// constraint backing it.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
