package audios

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

func Update(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, audioID string, au AudioUpdater) {
	op := pkg + "Update"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	var req dto.UpdateAudioRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode body", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}
	defer r.Body.Close()

	if req.Duration != nil && !validDuration(*req.Duration) {
		log.Warn("invalid duration", slog.Float64("duration", *req.Duration))
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	patch := models.AudioPatch{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
	}

	audio, err := au.UpdateAudio(ctx, audioID, patch, requester)
	if err != nil {
		if errors.Is(err, models.ErrAudioNotFound) {
			log.Warn("audio not found", slog.String("audio_id", audioID))
			utils.WriteJSONError(w, http.StatusNotFound, models.ErrAudioNotFound.Error())
			return
		}
		if errors.Is(err, models.ErrForbidden) {
			log.Warn("update forbidden", slog.String("audio_id", audioID))
			utils.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
			return
		}
		log.Error("failed to update audio", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.NewAudioResponse(audio, dto.FileURL(audio.FilePath))); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
