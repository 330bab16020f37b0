// Package seed provides the fixed user set the site ships with.
package seed

import (
	"fmt"
	"log"

	"homepage/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Credential is a username/password pair to be hashed and stored at seed time.
type Credential struct {
	Username string
	Password string
}

// DefaultUsers is the site's fixed account set. There is no registration
// flow; deployments with real credentials seed them through cmd/seed instead.
var DefaultUsers = []Credential{
	{Username: "admin", Password: "secret"},
	{Username: "bob", Password: "less-secret"},
	{Username: "caroline", Password: "completely-secret"},
}

// Users seeds the given credentials, hashing each password with bcrypt.
// Seeding is idempotent: usernames that already exist are left untouched,
// so an existing password hash is never overwritten.
func Users(db *gorm.DB, creds []Credential) error {
	created := 0
	for _, cred := range creds {
		var count int64
		if err := db.Model(&models.User{}).Where("username = ?", cred.Username).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check for user %q: %w", cred.Username, err)
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(cred.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %q: %w", cred.Username, err)
		}

		user := models.User{
			Username:     cred.Username,
			PasswordHash: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %q: %w", cred.Username, err)
		}
		created++
	}

	log.Printf("✓ seeded %d of %d users", created, len(creds))
	return nil
}

// UsersIfEmpty seeds the default set only when the users table has no rows.
// Used at startup in non-production so a fresh database is usable immediately.
func UsersIfEmpty(db *gorm.DB, creds []Credential) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}
	return Users(db, creds)
}
