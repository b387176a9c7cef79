package audioservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mediaportal/internal/models"
	"mediaportal/internal/validator"
	"time"

	uuid "github.com/satori/go.uuid"
)

const pkg = "audioService/"

const (
	storageSubdir = "audios"
	listCacheKey  = "audios:all"
)

func idCacheKey(id string) string {
	return "audios:" + id
}

type AudioService struct {
	log         *slog.Logger
	audioRepo   AudioRepository
	cache       Cache
	fileStorage FileStorage
}

func New(
	log *slog.Logger,
	audioRepo AudioRepository,
	cache Cache,
	fileStorage FileStorage,
) *AudioService {
	return &AudioService{
		log:         log,
		audioRepo:   audioRepo,
		cache:       cache,
		fileStorage: fileStorage,
	}
}

func (as *AudioService) UploadAudio(ctx context.Context, upload models.FileUpload, title string, description string, duration *float64, owner *models.User) (*models.Audio, error) {
	op := pkg + "UploadAudio"

	log := as.log.With(slog.String("op", op))

	log.Debug("attempting to upload audio", slog.String("title", title), slog.String("mime", upload.Mime))

	if !validator.IsAllowedMime(upload.Mime, models.AllowedAudioMimes) {
		log.Warn("disallowed audio mime", slog.String("mime", upload.Mime))
		return nil, models.ErrDisallowedFileType
	}

	if !validator.IsAllowedSize(upload.Size, models.MaxAudioSize) {
		log.Warn("audio exceeds size limit", slog.Int64("size", upload.Size))
		return nil, models.ErrFileTooLarge
	}

	stored, err := as.fileStorage.Save(storageSubdir, upload.FileName, upload.Content)
	if err != nil {
		log.Error("failed to save file", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	now := time.Now()

	audio := &models.Audio{
		ID:          uuid.NewV4().String(),
		Title:       title,
		Description: description,
		FileName:    upload.FileName,
		FilePath:    stored.Path,
		FileSize:    stored.Size,
		Duration:    duration,
		Mime:        upload.Mime,
		UploadedBy:  owner.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := as.audioRepo.CreateAudio(ctx, audio); err != nil {
		log.Error("failed to save audio metadata", slog.String("error", err.Error()))
		_ = as.fileStorage.Delete(stored.Path)
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if err := as.cache.Del(ctx, listCacheKey); err != nil {
		log.Error("failed to invalidate list cache", slog.String("error", err.Error()))
	}

	log.Debug("audio uploaded successfully", slog.String("audio_id", audio.ID), slog.String("owner_id", audio.UploadedBy))

	return audio, nil
}

func (as *AudioService) AudioByID(ctx context.Context, audioID string) (*models.Audio, error) {
	op := pkg + "AudioByID"

	log := as.log.With(slog.String("op", op))

	log.Debug("attempting to get audio by id", slog.String("audio_id", audioID))

	audio, err := as.audioMetaByID(ctx, audioID)
	if err != nil {
		return nil, err
	}

	log.Debug("audio found successfully", slog.String("audio_id", audioID))

	return audio, nil
}

// ListAudios returns all audios, newest first.
func (as *AudioService) ListAudios(ctx context.Context) ([]*models.Audio, error) {
	op := pkg + "ListAudios"

	log := as.log.With(slog.String("op", op))

	log.Debug("attempting to list audios")

	audiosJSON, err := as.cache.Get(ctx, listCacheKey)
	if err != nil || audiosJSON == "" {
		audios, err := as.audioRepo.ListAudios(ctx)
		if err != nil {
			log.Error("failed to list audios", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}

		audiosJSON, err = audiosToJSON(audios)
		if err != nil {
			log.Error("failed to convert audios to json", slog.String("error", err.Error()))
		} else {
			if err := as.cache.Set(ctx, listCacheKey, audiosJSON); err != nil {
				log.Error("failed to set audios in cache", slog.String("error", err.Error()))
			}
		}

		return audios, nil
	}

	audios, err := jsonToAudios(audiosJSON)
	if err != nil {
		log.Error("failed to parse json to audios", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	log.Debug("audios listed successfully", slog.Int("count", len(audios)))

	return audios, nil
}

func (as *AudioService) UpdateAudio(ctx context.Context, audioID string, patch models.AudioPatch, actor *models.User) (*models.Audio, error) {
	op := pkg + "UpdateAudio"

	log := as.log.With(slog.String("op", op))

	log.Debug("attempting to update audio", slog.String("audio_id", audioID), slog.String("user_id", actor.ID))

	audio, err := as.audioMetaByID(ctx, audioID)
	if err != nil {
		log.Warn("failed to get audio by id", slog.String("error", err.Error()))
		return nil, err
	}

	if !models.CanEdit(actor, audio.UploadedBy) {
		log.Warn("user doesn't have access for update operation", slog.String("audio_id", audioID), slog.String("user_id", actor.ID))
		return nil, models.ErrForbidden
	}

	updated, err := as.audioRepo.UpdateAudio(ctx, audioID, patch)
	if err != nil {
		if errors.Is(err, models.ErrAudioNotFound) {
			log.Warn("audio not found", slog.String("audio_id", audioID))
			return nil, models.ErrAudioNotFound
		}
		log.Error("failed to update audio", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	if err := as.cache.Del(ctx, idCacheKey(audioID), listCacheKey); err != nil {
		log.Error("failed to invalidate audio cache", slog.String("error", err.Error()))
	}

	log.Debug("audio updated successfully", slog.String("audio_id", audioID))

	return updated, nil
}

// DeleteAudio removes the record first; a failed file removal afterwards is
// logged as an orphan and does not fail the call.
func (as *AudioService) DeleteAudio(ctx context.Context, audioID string, actor *models.User) error {
	op := pkg + "DeleteAudio"

	log := as.log.With(slog.String("op", op))

	log.Debug("attempting to delete audio", slog.String("audio_id", audioID), slog.String("user_id", actor.ID))

	audio, err := as.audioMetaByID(ctx, audioID)
	if err != nil {
		log.Warn("failed to get audio by id", slog.String("error", err.Error()))
		return err
	}

	if !models.CanEdit(actor, audio.UploadedBy) {
		log.Warn("user doesn't have access for delete operation", slog.String("audio_id", audioID), slog.String("user_id", actor.ID))
		return models.ErrForbidden
	}

	if err := as.audioRepo.Delete(ctx, audioID); err != nil {
		if errors.Is(err, models.ErrAudioNotFound) {
			log.Warn("audio already deleted", slog.String("audio_id", audioID))
			return models.ErrAudioNotFound
		}
		log.Error("failed to delete audio meta", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	if err := as.cache.Del(ctx, idCacheKey(audioID), listCacheKey); err != nil {
		log.Error("failed to invalidate audio cache", slog.String("error", err.Error()))
	}

	if err := as.fileStorage.Delete(audio.FilePath); err != nil {
		if errors.Is(err, models.ErrFileNotFound) {
			log.Warn("backing file already absent", slog.String("path", audio.FilePath))
		} else {
			log.Warn("orphan file left behind", slog.String("path", audio.FilePath), slog.String("error", err.Error()))
		}
	}

	log.Debug("audio deleted successfully", slog.String("audio_id", audioID), slog.String("user_id", actor.ID))

	return nil
}

func (as *AudioService) audioMetaByID(ctx context.Context, audioID string) (*models.Audio, error) {
	op := pkg + "audioMetaByID"

	log := as.log.With(slog.String("op", op))

	audioJSON, err := as.cache.Get(ctx, idCacheKey(audioID))
	if err != nil || audioJSON == "" {
		log.Debug("audio cache miss", slog.String("audio_id", audioID))

		audio, err := as.audioRepo.AudioByID(ctx, audioID)
		if err != nil {
			if errors.Is(err, models.ErrAudioNotFound) {
				log.Warn("audio not found", slog.String("audio_id", audioID))
				return nil, models.ErrAudioNotFound
			}
			log.Error("failed to get audio by id", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}

		audioJSON, err := audioToJSON(audio)
		if err != nil {
			log.Error("failed to parse audio to json", slog.String("error", err.Error()))
		} else {
			if err := as.cache.Set(ctx, idCacheKey(audioID), audioJSON); err != nil {
				log.Warn("failed to set audio to cache", slog.String("error", err.Error()))
			}
		}

		return audio, nil
	}

	audio, err := jsonToAudio(audioJSON)
	if err != nil {
		log.Error("failed to parse json to audio", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	return audio, nil
}

func audiosToJSON(audios []*models.Audio) (string, error) {
	res, err := json.Marshal(audios)
	if err != nil {
		return "", err
	}

	return string(res), nil
}

func jsonToAudios(s string) ([]*models.Audio, error) {
	if len(s) == 0 {
		return nil, errors.New("empty json string")
	}

	var audios []*models.Audio

	if err := json.Unmarshal([]byte(s), &audios); err != nil {
		return nil, err
	}

	return audios, nil
}

func audioToJSON(audio *models.Audio) (string, error) {
	res, err := json.Marshal(audio)
	if err != nil {
		return "", err
	}

	return string(res), nil
}

func jsonToAudio(s string) (*models.Audio, error) {
	if len(s) == 0 {
		return nil, errors.New("empty json string")
	}

	var audio models.Audio
	if err := json.Unmarshal([]byte(s), &audio); err != nil {
		return nil, err
	}

	return &audio, nil
}
