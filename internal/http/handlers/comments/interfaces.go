package comments

import (
	"context"
	"mediaportal/internal/models"
)

const pkg = "commentsHandler/"

type CommentCreator interface {
	CreateComment(ctx context.Context, content string, authorID string, documentID string, audioID string) (*models.Comment, error)
}

type CommentProvider interface {
	ListComments(ctx context.Context, filter models.CommentFilter) ([]*models.Comment, error)
}

type CommentUpdater interface {
	UpdateComment(ctx context.Context, commentID string, content string, actor *models.User) (*models.Comment, error)
}

type CommentDeleter interface {
	DeleteComment(ctx context.Context, commentID string, actor *models.User) error
}
