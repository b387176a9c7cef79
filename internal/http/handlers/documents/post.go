package documents

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mediaportal/internal/dto"
	"mediaportal/internal/models"
	utils "mediaportal/internal/utils/httperr"
	"net/http"
)

const maxMultipartMemory = 32 << 20

func Upload(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, du DocumentUploader) {
	op := pkg + "Upload"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		log.Warn("failed to parse multipart form", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	title := r.FormValue("title")
	if title == "" {
		log.Warn("missing title")
		utils.WriteJSONError(w, http.StatusBadRequest, "title is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Warn("missing file part", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	upload := models.FileUpload{
		FileName: header.Filename,
		Mime:     header.Header.Get("Content-Type"),
		Size:     header.Size,
		Content:  file,
	}

	doc, err := du.UploadDocument(ctx, upload, title, r.FormValue("description"), requester)
	if err != nil {
		if errors.Is(err, models.ErrDisallowedFileType) || errors.Is(err, models.ErrFileTooLarge) {
			log.Warn("upload rejected", slog.String("error", err.Error()))
			utils.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error("failed to upload document", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(dto.NewDocumentResponse(doc, dto.FileURL(doc.FilePath))); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
