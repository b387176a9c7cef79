package dto

import (
	"mediaportal/internal/models"
	"time"
)

type AudioResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	FileName    string    `json:"file_name"`
	FileURL     string    `json:"file_url"`
	FileSize    int64     `json:"file_size"`
	Duration    *float64  `json:"duration,omitempty"`
	Mime        string    `json:"mime_type"`
	UploadedBy  string    `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpdateAudioRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Duration    *float64 `json:"duration"`
}

func NewAudioResponse(a *models.Audio, fileURL string) AudioResponse {
	return AudioResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		FileName:    a.FileName,
		FileURL:     fileURL,
		FileSize:    a.FileSize,
		Duration:    a.Duration,
		Mime:        a.Mime,
		UploadedBy:  a.UploadedBy,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
