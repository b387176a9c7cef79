package commentservice

import (
	"context"
	"mediaportal/internal/models"
)

type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	CommentByID(ctx context.Context, id string) (*models.Comment, error)
	ListComments(ctx context.Context, filter models.CommentFilter) ([]*models.Comment, error)
	UpdateComment(ctx context.Context, id string, content string) (*models.Comment, error)
	Delete(ctx context.Context, id string) error
}
