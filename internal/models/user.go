// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a seeded account that may log in and post guestbook comments.
// The surrogate ID is the session identity; the username is the display name
// and login key. Accounts are created by seeding only and never updated or
// deleted through any exposed route.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
