package documentservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mediaportal/internal/models"
	"mediaportal/internal/validator"
	"time"

	uuid "github.com/satori/go.uuid"
)

const pkg = "documentService/"

const (
	storageSubdir = "documents"
	listCacheKey  = "documents:all"
)

func idCacheKey(id string) string {
	return "documents:" + id
}

type DocumentService struct {
	log         *slog.Logger
	docRepo     DocumentRepository
	cache       Cache
	fileStorage FileStorage
}

func New(
	log *slog.Logger,
	docRepo DocumentRepository,
	cache Cache,
	fileStorage FileStorage,
) *DocumentService {
	return &DocumentService{
		log:         log,
		docRepo:     docRepo,
		cache:       cache,
		fileStorage: fileStorage,
	}
}

func (ds *DocumentService) UploadDocument(ctx context.Context, upload models.FileUpload, title string, description string, owner *models.User) (*models.Document, error) {
	op := pkg + "UploadDocument"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to upload document", slog.String("title", title), slog.String("mime", upload.Mime))

	if !validator.IsAllowedMime(upload.Mime, models.AllowedDocumentMimes) {
		log.Warn("disallowed document mime", slog.String("mime", upload.Mime))
		return nil, models.ErrDisallowedFileType
	}

	if !validator.IsAllowedSize(upload.Size, models.MaxDocumentSize) {
		log.Warn("document exceeds size limit", slog.Int64("size", upload.Size))
		return nil, models.ErrFileTooLarge
	}

	stored, err := ds.fileStorage.Save(storageSubdir, upload.FileName, upload.Content)
	if err != nil {
		log.Error("failed to save file", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	now := time.Now()

	doc := &models.Document{
		ID:          uuid.NewV4().String(),
		Title:       title,
		Description: description,
		FileName:    upload.FileName,
		FilePath:    stored.Path,
		FileSize:    stored.Size,
		Mime:        upload.Mime,
		UploadedBy:  owner.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := ds.docRepo.CreateDocument(ctx, doc); err != nil {
		log.Error("failed to save document metadata", slog.String("error", err.Error()))
		_ = ds.fileStorage.Delete(stored.Path)
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if err := ds.cache.Del(ctx, listCacheKey); err != nil {
		log.Error("failed to invalidate list cache", slog.String("error", err.Error()))
	}

	log.Debug("document uploaded successfully", slog.String("doc_id", doc.ID), slog.String("owner_id", doc.UploadedBy))

	return doc, nil
}

func (ds *DocumentService) DocumentByID(ctx context.Context, docID string) (*models.Document, error) {
	op := pkg + "DocumentByID"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to get document by id", slog.String("doc_id", docID))

	doc, err := ds.documentMetaByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	log.Debug("document found successfully", slog.String("doc_id", docID))

	return doc, nil
}

// ListDocuments returns all documents, newest first.
func (ds *DocumentService) ListDocuments(ctx context.Context) ([]*models.Document, error) {
	op := pkg + "ListDocuments"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to list documents")

	docsJSON, err := ds.cache.Get(ctx, listCacheKey)
	if err != nil || docsJSON == "" {
		docs, err := ds.docRepo.ListDocuments(ctx)
		if err != nil {
			log.Error("failed to list documents", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}

		docsJSON, err = docsToJSON(docs)
		if err != nil {
			log.Error("failed to convert docs to json", slog.String("error", err.Error()))
		} else {
			if err := ds.cache.Set(ctx, listCacheKey, docsJSON); err != nil {
				log.Error("failed to set docs in cache", slog.String("error", err.Error()))
			}
		}

		return docs, nil
	}

	docs, err := jsonToDocs(docsJSON)
	if err != nil {
		log.Error("failed to parse json to docs", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	log.Debug("documents listed successfully", slog.Int("count", len(docs)))

	return docs, nil
}

func (ds *DocumentService) UpdateDocument(ctx context.Context, docID string, patch models.DocumentPatch, actor *models.User) (*models.Document, error) {
	op := pkg + "UpdateDocument"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to update document", slog.String("doc_id", docID), slog.String("user_id", actor.ID))

	doc, err := ds.documentMetaByID(ctx, docID)
	if err != nil {
		log.Warn("failed to get document by id", slog.String("error", err.Error()))
		return nil, err
	}

	if !models.CanEdit(actor, doc.UploadedBy) {
		log.Warn("user doesn't have access for update operation", slog.String("doc_id", docID), slog.String("user_id", actor.ID))
		return nil, models.ErrForbidden
	}

	updated, err := ds.docRepo.UpdateDocument(ctx, docID, patch)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.String("doc_id", docID))
			return nil, models.ErrDocumentNotFound
		}
		log.Error("failed to update document", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	if err := ds.cache.Del(ctx, idCacheKey(docID), listCacheKey); err != nil {
		log.Error("failed to invalidate document cache", slog.String("error", err.Error()))
	}

	log.Debug("document updated successfully", slog.String("doc_id", docID))

	return updated, nil
}

// DeleteDocument removes the record first; a failed file removal afterwards is
// logged as an orphan and does not fail the call.
func (ds *DocumentService) DeleteDocument(ctx context.Context, docID string, actor *models.User) error {
	op := pkg + "DeleteDocument"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to delete document", slog.String("doc_id", docID), slog.String("user_id", actor.ID))

	doc, err := ds.documentMetaByID(ctx, docID)
	if err != nil {
		log.Warn("failed to get document by id", slog.String("error", err.Error()))
		return err
	}

	if !models.CanEdit(actor, doc.UploadedBy) {
		log.Warn("user doesn't have access for delete operation", slog.String("doc_id", docID), slog.String("user_id", actor.ID))
		return models.ErrForbidden
	}

	if err := ds.docRepo.Delete(ctx, docID); err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document already deleted", slog.String("doc_id", docID))
			return models.ErrDocumentNotFound
		}
		log.Error("failed to delete document meta", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	if err := ds.cache.Del(ctx, idCacheKey(docID), listCacheKey); err != nil {
		log.Error("failed to invalidate document cache", slog.String("error", err.Error()))
	}

	if err := ds.fileStorage.Delete(doc.FilePath); err != nil {
		if errors.Is(err, models.ErrFileNotFound) {
			log.Warn("backing file already absent", slog.String("path", doc.FilePath))
		} else {
			log.Warn("orphan file left behind", slog.String("path", doc.FilePath), slog.String("error", err.Error()))
		}
	}

	log.Debug("document deleted successfully", slog.String("doc_id", docID), slog.String("user_id", actor.ID))

	return nil
}

func (ds *DocumentService) documentMetaByID(ctx context.Context, docID string) (*models.Document, error) {
	op := pkg + "documentMetaByID"

	log := ds.log.With(slog.String("op", op))

	docJSON, err := ds.cache.Get(ctx, idCacheKey(docID))
	if err != nil || docJSON == "" {
		log.Debug("document cache miss", slog.String("doc_id", docID))

		doc, err := ds.docRepo.DocumentByID(ctx, docID)
		if err != nil {
			if errors.Is(err, models.ErrDocumentNotFound) {
				log.Warn("document not found", slog.String("doc_id", docID))
				return nil, models.ErrDocumentNotFound
			}
			log.Error("failed to get document by id", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}

		docJSON, err := docToJSON(doc)
		if err != nil {
			log.Error("failed to parse doc to json", slog.String("error", err.Error()))
		} else {
			if err := ds.cache.Set(ctx, idCacheKey(docID), docJSON); err != nil {
				log.Warn("failed to set doc to cache", slog.String("error", err.Error()))
			}
		}

		return doc, nil
	}

	doc, err := jsonToDoc(docJSON)
	if err != nil {
		log.Error("failed to parse json to doc", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	return doc, nil
}

func docsToJSON(docs []*models.Document) (string, error) {
	res, err := json.Marshal(docs)
	if err != nil {
		return "", err
	}

	return string(res), nil
}

func jsonToDocs(s string) ([]*models.Document, error) {
	if len(s) == 0 {
		return nil, errors.New("empty json string")
	}

	var docs []*models.Document

	if err := json.Unmarshal([]byte(s), &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

func docToJSON(doc *models.Document) (string, error) {
	res, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	return string(res), nil
}

func jsonToDoc(s string) (*models.Document, error) {
	if len(s) == 0 {
		return nil, errors.New("empty json string")
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}
