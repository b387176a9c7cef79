package models

import "time"

const (
	MimeMPEG = "audio/mpeg"
	MimeMP3  = "audio/mp3"

	MaxAudioSize = 50 << 20
)

var AllowedAudioMimes = []string{MimeMPEG, MimeMP3}

type Audio struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	FileName    string    `json:"file_name"`
	FilePath    string    `json:"file_path"`
	FileSize    int64     `json:"file_size"`
	Duration    *float64  `json:"duration,omitempty"`
	Mime        string    `json:"mime_type"`
	UploadedBy  string    `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AudioPatch struct {
	Title       *string
	Description *string
	Duration    *float64
}
