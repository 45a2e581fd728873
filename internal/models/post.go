package models

import (
	"time"
)

// Post represents a bulletin-board post.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"size:100;not null" json:"title"`
	Content string `gorm:"type:text" json:"content"`
	// Likes is a denormalized counter kept in sync with the likes table by
	// explicit increment/decrement calls, not recomputed on read.
	Likes    uint      `gorm:"not null;default:0" json:"likes"`
	Views    uint      `gorm:"not null;default:0" json:"views"`
	AuthorID uint      `gorm:"not null;index" json:"author_id"`
	Author   *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Image    *Image    `gorm:"foreignKey:PostID" json:"image,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	// CreatedAt is set once on creation and never updated.
	CreatedAt time.Time `json:"created_at"`
}
