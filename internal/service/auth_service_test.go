package service

import (
	"context"
	"testing"

	"homepage/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthenticate_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewAuthService(mockRepo)

	stored := &models.User{ID: 1, Username: "admin", PasswordHash: hashFor(t, "secret")}
	mockRepo.On("GetByUsername", mock.Anything, "admin").Return(stored, nil)

	user, err := svc.Authenticate(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "admin", user.Username)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewAuthService(mockRepo)

	stored := &models.User{ID: 1, Username: "admin", PasswordHash: hashFor(t, "secret")}
	mockRepo.On("GetByUsername", mock.Anything, "admin").Return(stored, nil)

	user, err := svc.Authenticate(context.Background(), "admin", "wrong")
	assert.Nil(t, user)
	assert.True(t, models.HasCode(err, "AUTHENTICATION"))
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewAuthService(mockRepo)

	mockRepo.On("GetByUsername", mock.Anything, "nobody").Return(nil, nil)

	user, err := svc.Authenticate(context.Background(), "nobody", "whatever")
	assert.Nil(t, user)
	assert.True(t, models.HasCode(err, "AUTHENTICATION"),
		"unknown user must fail the same way as a wrong password")
}

func TestAuthenticate_StorageErrorPassesThrough(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewAuthService(mockRepo)

	storageErr := models.NewStorageError(assert.AnError)
	mockRepo.On("GetByUsername", mock.Anything, "admin").Return(nil, storageErr)

	user, err := svc.Authenticate(context.Background(), "admin", "secret")
	assert.Nil(t, user)
	assert.True(t, models.IsStorageError(err))
}
