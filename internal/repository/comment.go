package repository

import (
	"context"

	"homepage/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for guestbook comments.
// The store is append-only: comments are never updated or deleted.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	List(ctx context.Context) ([]models.Comment, error)
	Count(ctx context.Context) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create appends a single comment. The insert is all-or-nothing: on failure
// the caller gets a storage error and no partial record is visible to List.
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

// List returns all comments in insertion order (ascending surrogate id),
// with the commenter preloaded for display.
func (r *commentRepository) List(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).Preload("Commenter").Order("id asc").Find(&comments).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return comments, nil
}

func (r *commentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).Count(&count).Error; err != nil {
		return 0, models.NewStorageError(err)
	}
	return count, nil
}
