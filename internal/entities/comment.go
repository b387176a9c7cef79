package entities

import (
	"database/sql"
	"time"
)

type Comment struct {
	ID         string         `db:"id"`
	Content    string         `db:"content"`
	AuthorID   string         `db:"author_id"`
	DocumentID sql.NullString `db:"document_id"`
	AudioID    sql.NullString `db:"audio_id"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}
