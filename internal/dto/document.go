package dto

import (
	"mediaportal/internal/models"
	"time"
)

type DocumentResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	FileName    string    `json:"file_name"`
	FileURL     string    `json:"file_url"`
	FileSize    int64     `json:"file_size"`
	Mime        string    `json:"mime_type"`
	UploadedBy  string    `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpdateDocumentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func NewDocumentResponse(d *models.Document, fileURL string) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		FileName:    d.FileName,
		FileURL:     fileURL,
		FileSize:    d.FileSize,
		Mime:        d.Mime,
		UploadedBy:  d.UploadedBy,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
