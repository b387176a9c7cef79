package models

import "time"

type Comment struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"author_id"`
	DocumentID string    `json:"document_id,omitempty"`
	AudioID    string    `json:"audio_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// A comment references exactly one parent: a document or an audio, never both.
func (c Comment) HasValidTarget() bool {
	return (c.DocumentID != "") != (c.AudioID != "")
}

type CommentFilter struct {
	DocumentID string
	AudioID    string
	AuthorID   string
}
