package audios

import (
	"context"
	"mediaportal/internal/models"
)

const pkg = "audiosHandler/"

type AudioUploader interface {
	UploadAudio(ctx context.Context, upload models.FileUpload, title string, description string, duration *float64, owner *models.User) (*models.Audio, error)
}

type AudioProvider interface {
	ListAudios(ctx context.Context) ([]*models.Audio, error)
	AudioByID(ctx context.Context, audioID string) (*models.Audio, error)
}

type AudioUpdater interface {
	UpdateAudio(ctx context.Context, audioID string, patch models.AudioPatch, actor *models.User) (*models.Audio, error)
}

type AudioDeleter interface {
	DeleteAudio(ctx context.Context, audioID string, actor *models.User) error
}
