package documents

import (
	"context"
	"mediaportal/internal/models"
)

const pkg = "documentsHandler/"

type DocumentUploader interface {
	UploadDocument(ctx context.Context, upload models.FileUpload, title string, description string, owner *models.User) (*models.Document, error)
}

type DocumentProvider interface {
	ListDocuments(ctx context.Context) ([]*models.Document, error)
	DocumentByID(ctx context.Context, docID string) (*models.Document, error)
}

type DocumentUpdater interface {
	UpdateDocument(ctx context.Context, docID string, patch models.DocumentPatch, actor *models.User) (*models.Document, error)
}

type DocumentDeleter interface {
	DeleteDocument(ctx context.Context, docID string, actor *models.User) error
}
