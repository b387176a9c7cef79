package server

import (
	"context"
	"mediaportal/internal/models"
)

type AuthService interface {
	Register(ctx context.Context, email string, name string, password string) (*models.User, string, error)
	Login(ctx context.Context, email string, password string) (*models.User, string, error)
	UserByToken(ctx context.Context, token string) (*models.User, error)
}

type DocumentService interface {
	UploadDocument(ctx context.Context, upload models.FileUpload, title string, description string, owner *models.User) (*models.Document, error)
	DocumentByID(ctx context.Context, docID string) (*models.Document, error)
	ListDocuments(ctx context.Context) ([]*models.Document, error)
	UpdateDocument(ctx context.Context, docID string, patch models.DocumentPatch, actor *models.User) (*models.Document, error)
	DeleteDocument(ctx context.Context, docID string, actor *models.User) error
}

type AudioService interface {
	UploadAudio(ctx context.Context, upload models.FileUpload, title string, description string, duration *float64, owner *models.User) (*models.Audio, error)
	AudioByID(ctx context.Context, audioID string) (*models.Audio, error)
	ListAudios(ctx context.Context) ([]*models.Audio, error)
	UpdateAudio(ctx context.Context, audioID string, patch models.AudioPatch, actor *models.User) (*models.Audio, error)
	DeleteAudio(ctx context.Context, audioID string, actor *models.User) error
}

type CommentService interface {
	CreateComment(ctx context.Context, content string, authorID string, documentID string, audioID string) (*models.Comment, error)
	ListComments(ctx context.Context, filter models.CommentFilter) ([]*models.Comment, error)
	UpdateComment(ctx context.Context, commentID string, content string, actor *models.User) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID string, actor *models.User) error
}
