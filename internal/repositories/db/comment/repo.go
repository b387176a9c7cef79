package commentrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mediaportal/internal/entities"
	"mediaportal/internal/models"

	"github.com/jmoiron/sqlx"
)

const pkg = "commentRepo/"

const selectColumns = `
	c.id AS id,
	c.content AS content,
	c.author_id AS author_id,
	c.document_id AS document_id,
	c.audio_id AS audio_id,
	c.created_at AS created_at,
	c.updated_at AS updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) CreateComment(ctx context.Context, comment *models.Comment) error {
	op := pkg + "CreateComment"

	var documentID, audioID any
	if comment.DocumentID != "" {
		documentID = comment.DocumentID
	}
	if comment.AudioID != "" {
		audioID = comment.AudioID
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (id, content, author_id, document_id, audio_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		comment.ID, comment.Content, comment.AuthorID, documentID, audioID, comment.CreatedAt, comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) CommentByID(ctx context.Context, id string) (*models.Comment, error) {
	op := pkg + "CommentByID"

	rawComment := entities.Comment{}

	err := r.db.GetContext(ctx, &rawComment,
		`SELECT`+selectColumns+`
		FROM comments c
		WHERE c.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrCommentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return commentFromRow(rawComment), nil
}

// ListComments returns comments matching the filter in creation order, oldest first.
func (r *repository) ListComments(ctx context.Context, filter models.CommentFilter) ([]*models.Comment, error) {
	op := pkg + "ListComments"

	query := `SELECT` + selectColumns + `
		FROM comments c
		WHERE 1=1`

	args := make([]any, 0, 3)

	if filter.DocumentID != "" {
		args = append(args, filter.DocumentID)
		query += fmt.Sprintf(" AND c.document_id = $%d", len(args))
	}
	if filter.AudioID != "" {
		args = append(args, filter.AudioID)
		query += fmt.Sprintf(" AND c.audio_id = $%d", len(args))
	}
	if filter.AuthorID != "" {
		args = append(args, filter.AuthorID)
		query += fmt.Sprintf(" AND c.author_id = $%d", len(args))
	}

	query += " ORDER BY c.created_at ASC"

	rawComments := make([]entities.Comment, 0)

	err := r.db.SelectContext(ctx, &rawComments, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	comments := make([]*models.Comment, 0, len(rawComments))

	for _, rawComment := range rawComments {
		comments = append(comments, commentFromRow(rawComment))
	}

	return comments, nil
}

func (r *repository) UpdateComment(ctx context.Context, id string, content string) (*models.Comment, error) {
	op := pkg + "UpdateComment"

	rawComment := entities.Comment{}

	err := r.db.GetContext(ctx, &rawComment,
		`UPDATE comments c SET
			content = $2,
			updated_at = NOW()
		WHERE c.id = $1
		RETURNING`+selectColumns,
		id, content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrCommentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return commentFromRow(rawComment), nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	op := pkg + "Delete"

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM comments WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return models.ErrCommentNotFound
	}

	return nil
}

func commentFromRow(raw entities.Comment) *models.Comment {
	return &models.Comment{
		ID:         raw.ID,
		Content:    raw.Content,
		AuthorID:   raw.AuthorID,
		DocumentID: raw.DocumentID.String,
		AudioID:    raw.AudioID.String,
		CreatedAt:  raw.CreatedAt,
		UpdatedAt:  raw.UpdatedAt,
	}
}
