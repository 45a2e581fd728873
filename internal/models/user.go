// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// RoleUser is the role encoded into access tokens for regular accounts.
const RoleUser = "user"

// User represents a registered account on the board.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Nickname string `gorm:"uniqueIndex;size:10;not null" json:"nickname"`
	Role     string `gorm:"default:user" json:"role"`
	// ProfileImage is the at-most-one image attached to this account.
	ProfileImage *Image `gorm:"foreignKey:UserID" json:"profile_image,omitempty"`
	// ProfileImageData carries the base64-inlined profile image on enriched
	// post listings. Not persisted.
	ProfileImageData string    `gorm:"-" json:"profile_image_data,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
