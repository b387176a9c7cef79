package models

import "time"

const (
	MimePDF = "application/pdf"

	MaxDocumentSize = 10 << 20
)

var AllowedDocumentMimes = []string{MimePDF}

type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	FileName    string    `json:"file_name"`
	FilePath    string    `json:"file_path"`
	FileSize    int64     `json:"file_size"`
	Mime        string    `json:"mime_type"`
	UploadedBy  string    `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DocumentPatch struct {
	Title       *string
	Description *string
}
