package audiorepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mediaportal/internal/entities"
	"mediaportal/internal/models"

	"github.com/jmoiron/sqlx"
)

const pkg = "audioRepo/"

const selectColumns = `
	a.id AS id,
	a.title AS title,
	a.description AS description,
	a.file_name AS file_name,
	a.file_path AS file_path,
	a.file_size AS file_size,
	a.duration AS duration,
	a.mime AS mime,
	a.uploaded_by AS uploaded_by,
	a.created_at AS created_at,
	a.updated_at AS updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) CreateAudio(ctx context.Context, audio *models.Audio) error {
	op := pkg + "CreateAudio"

	var description any
	if audio.Description != "" {
		description = audio.Description
	}

	var duration any
	if audio.Duration != nil {
		duration = *audio.Duration
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audios (id, title, description, file_name, file_path, file_size, duration, mime, uploaded_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		audio.ID, audio.Title, description, audio.FileName, audio.FilePath, audio.FileSize, duration, audio.Mime, audio.UploadedBy, audio.CreatedAt, audio.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) AudioByID(ctx context.Context, id string) (*models.Audio, error) {
	op := pkg + "AudioByID"

	rawAudio := entities.Audio{}

	err := r.db.GetContext(ctx, &rawAudio,
		`SELECT`+selectColumns+`
		FROM audios a
		WHERE a.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrAudioNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return audioFromRow(rawAudio), nil
}

// ListAudios returns every audio, newest first.
func (r *repository) ListAudios(ctx context.Context) ([]*models.Audio, error) {
	op := pkg + "ListAudios"

	rawAudios := make([]entities.Audio, 0)

	err := r.db.SelectContext(ctx, &rawAudios,
		`SELECT`+selectColumns+`
		FROM audios a
		ORDER BY a.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	audios := make([]*models.Audio, 0, len(rawAudios))

	for _, rawAudio := range rawAudios {
		audios = append(audios, audioFromRow(rawAudio))
	}

	return audios, nil
}

func (r *repository) UpdateAudio(ctx context.Context, id string, patch models.AudioPatch) (*models.Audio, error) {
	op := pkg + "UpdateAudio"

	rawAudio := entities.Audio{}

	err := r.db.GetContext(ctx, &rawAudio,
		`UPDATE audios a SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			duration = COALESCE($4, duration),
			updated_at = NOW()
		WHERE a.id = $1
		RETURNING`+selectColumns,
		id, patch.Title, patch.Description, patch.Duration)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrAudioNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return audioFromRow(rawAudio), nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	op := pkg + "Delete"

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM audios WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return models.ErrAudioNotFound
	}

	return nil
}

func audioFromRow(raw entities.Audio) *models.Audio {
	audio := &models.Audio{
		ID:          raw.ID,
		Title:       raw.Title,
		Description: raw.Description.String,
		FileName:    raw.FileName,
		FilePath:    raw.FilePath,
		FileSize:    raw.FileSize,
		Mime:        raw.Mime,
		UploadedBy:  raw.UploadedBy,
		CreatedAt:   raw.CreatedAt,
		UpdatedAt:   raw.UpdatedAt,
	}

	if raw.Duration.Valid {
		duration := raw.Duration.Float64
		audio.Duration = &duration
	}

	return audio
}
