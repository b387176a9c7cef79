package documentrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mediaportal/internal/entities"
	"mediaportal/internal/models"

	"github.com/jmoiron/sqlx"
)

const pkg = "documentRepo/"

const selectColumns = `
	d.id AS id,
	d.title AS title,
	d.description AS description,
	d.file_name AS file_name,
	d.file_path AS file_path,
	d.file_size AS file_size,
	d.mime AS mime,
	d.uploaded_by AS uploaded_by,
	d.created_at AS created_at,
	d.updated_at AS updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) CreateDocument(ctx context.Context, doc *models.Document) error {
	op := pkg + "CreateDocument"

	var description any
	if doc.Description != "" {
		description = doc.Description
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (id, title, description, file_name, file_path, file_size, mime, uploaded_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		doc.ID, doc.Title, description, doc.FileName, doc.FilePath, doc.FileSize, doc.Mime, doc.UploadedBy, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) DocumentByID(ctx context.Context, id string) (*models.Document, error) {
	op := pkg + "DocumentByID"

	rawDoc := entities.Document{}

	err := r.db.GetContext(ctx, &rawDoc,
		`SELECT`+selectColumns+`
		FROM documents d
		WHERE d.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return documentFromRow(rawDoc), nil
}

// ListDocuments returns every document, newest first.
func (r *repository) ListDocuments(ctx context.Context) ([]*models.Document, error) {
	op := pkg + "ListDocuments"

	rawDocs := make([]entities.Document, 0)

	err := r.db.SelectContext(ctx, &rawDocs,
		`SELECT`+selectColumns+`
		FROM documents d
		ORDER BY d.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	docs := make([]*models.Document, 0, len(rawDocs))

	for _, rawDoc := range rawDocs {
		docs = append(docs, documentFromRow(rawDoc))
	}

	return docs, nil
}

func (r *repository) UpdateDocument(ctx context.Context, id string, patch models.DocumentPatch) (*models.Document, error) {
	op := pkg + "UpdateDocument"

	rawDoc := entities.Document{}

	err := r.db.GetContext(ctx, &rawDoc,
		`UPDATE documents d SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			updated_at = NOW()
		WHERE d.id = $1
		RETURNING`+selectColumns,
		id, patch.Title, patch.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return documentFromRow(rawDoc), nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	op := pkg + "Delete"

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM documents WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return models.ErrDocumentNotFound
	}

	return nil
}

func documentFromRow(raw entities.Document) *models.Document {
	return &models.Document{
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
}
