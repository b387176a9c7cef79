package audios

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"mediaportal/internal/dto"
	"mediaportal/internal/models"
	utils "mediaportal/internal/utils/httperr"
	"net/http"
	"strconv"
)

const maxMultipartMemory = 32 << 20

// Duration must be finite and non-negative; NaN/Inf are not representable in JSON.
func validDuration(d float64) bool {
	return !math.IsNaN(d) && !math.IsInf(d, 0) && d >= 0
}

func Upload(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, au AudioUploader) {
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

	var duration *float64

	if raw := r.FormValue("duration"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || !validDuration(parsed) {
			log.Warn("invalid duration", slog.String("duration", raw))
			utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		duration = &parsed
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

	audio, err := au.UploadAudio(ctx, upload, title, r.FormValue("description"), duration, requester)
	if err != nil {
		if errors.Is(err, models.ErrDisallowedFileType) || errors.Is(err, models.ErrFileTooLarge) {
			log.Warn("upload rejected", slog.String("error", err.Error()))
			utils.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error("failed to upload audio", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(dto.NewAudioResponse(audio, dto.FileURL(audio.FilePath))); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
