// Package service holds the application's business logic between handlers and repositories.
package service

import (
	"context"

	"homepage/internal/models"
	"homepage/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies presented credentials against stored bcrypt hashes.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService returns a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Authenticate verifies a username/password pair and returns the matching
// user. Unknown usernames and wrong passwords both yield the same generic
// authentication error, so responses never reveal which field was wrong.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewAuthenticationError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, models.NewAuthenticationError("Invalid credentials")
	}

	return user, nil
}
