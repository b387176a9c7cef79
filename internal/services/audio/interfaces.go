package audioservice

import (
	"context"
	"io"
	"mediaportal/internal/models"
	"mediaportal/internal/repositories/storage"
)

type AudioRepository interface {
	CreateAudio(ctx context.Context, audio *models.Audio) error
	AudioByID(ctx context.Context, id string) (*models.Audio, error)
	ListAudios(ctx context.Context) ([]*models.Audio, error)
	UpdateAudio(ctx context.Context, id string, patch models.AudioPatch) (*models.Audio, error)
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
