// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// MaxCommentRunes bounds guestbook comment content, matching the 4096-unit
// column width of the comments table.
const MaxCommentRunes = 4096

// Comment is a single guestbook entry. Posted is always stored in UTC and is
// stamped by the store at creation time. CommenterID is nullable: legacy rows
// predate the login requirement, while every new comment carries the
// authenticated poster. Comments are append-only; no update or delete exists.
type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Content     string    `gorm:"type:varchar(4096);not null" json:"content"`
	Posted      time.Time `gorm:"not null" json:"posted"`
	CommenterID *uint     `gorm:"index" json:"commenter_id,omitempty"`
	Commenter   *User     `gorm:"foreignKey:CommenterID" json:"commenter,omitempty"`
}
