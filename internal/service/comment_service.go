package service

import (
	"context"
	"time"
	"unicode/utf8"

	"homepage/internal/models"
	"homepage/internal/repository"
)

// CommentService validates and persists guestbook comments and prepares them
// for display.
type CommentService struct {
	commentRepo repository.CommentRepository
}

// CommentView is a presentation copy of a comment. Posted has been converted
// to the display timezone; the persisted record keeps its UTC value.
type CommentView struct {
	ID       uint
	Content  string
	Posted   time.Time
	Username string
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// CreateComment validates content, stamps the current UTC time, and appends
// one comment authored by the given user. Content is stored verbatim: empty
// or over-limit input is rejected outright rather than truncated.
func (s *CommentService) CreateComment(ctx context.Context, content string, author *models.User) (*models.Comment, error) {
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	if utf8.RuneCountInString(content) > models.MaxCommentRunes {
		return nil, models.NewValidationError("Comment too long (max 4096 characters)")
	}

	comment := &models.Comment{
		Content: content,
		Posted:  time.Now().UTC(),
	}
	if author != nil {
		id := author.ID
		comment.CommenterID = &id
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns all comments in insertion order with their stored
// UTC timestamps.
func (s *CommentService) ListComments(ctx context.Context) ([]models.Comment, error) {
	return s.commentRepo.List(ctx)
}

// ListForDisplay returns comment views in insertion order with timestamps
// converted to loc. The conversion happens on copies only; fetched records
// are never mutated.
func (s *CommentService) ListForDisplay(ctx context.Context, loc *time.Location) ([]CommentView, error) {
	comments, err := s.commentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		view := CommentView{
			ID:      comment.ID,
			Content: comment.Content,
			Posted:  comment.Posted.In(loc),
		}
		if comment.Commenter != nil {
			view.Username = comment.Commenter.Username
		}
		views = append(views, view)
	}
	return views, nil
}
