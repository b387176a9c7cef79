package dto

type CreateCommentRequest struct {
	Content    string `json:"content"`
	DocumentID string `json:"document_id,omitempty"`
	AudioID    string `json:"audio_id,omitempty"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}
