package entities

import (
	"database/sql"
	"time"
)

type Audio struct {
	ID          string          `db:"id"`
	Title       string          `db:"title"`
	Description sql.NullString  `db:"description"`
	FileName    string          `db:"file_name"`
	FilePath    string          `db:"file_path"`
	FileSize    int64           `db:"file_size"`
	Duration    sql.NullFloat64 `db:"duration"`
	Mime        string          `db:"mime"`
	UploadedBy  string          `db:"uploaded_by"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}
