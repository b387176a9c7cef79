package documentservice

import (
	"context"
	"io"
	"mediaportal/internal/models"
	"mediaportal/internal/repositories/storage"
)

type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc *models.Document) error
	DocumentByID(ctx context.Context, id string) (*models.Document, error)
	ListDocuments(ctx context.Context) ([]*models.Document, error)
	UpdateDocument(ctx context.Context, id string, patch models.DocumentPatch) (*models.Document, error)
	Delete(ctx context.Context, id string) error
}

type FileStorage interface {
	Save(subdir string, origName string, reader io.Reader) (*storage.StoredFile, error)
	Delete(path string) error
}

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}) error
	Del(ctx context.Context, keys ...string) error
}
