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

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, ap AudioProvider) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	audios, err := ap.ListAudios(ctx)
	if err != nil {
		log.Error("failed to list audios", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := make([]dto.AudioResponse, 0, len(audios))

	for _, audio := range audios {
		response = append(response, dto.NewAudioResponse(audio, dto.FileURL(audio.FilePath)))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func GetByID(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, audioID string, ap AudioProvider) {
	op := pkg + "GetByID"

	log = log.With(slog.String("op", op))

	audio, err := ap.AudioByID(ctx, audioID)
	if err != nil {
		if errors.Is(err, models.ErrAudioNotFound) {
			log.Warn("audio not found", slog.String("audio_id", audioID))
			utils.WriteJSONError(w, http.StatusNotFound, models.ErrAudioNotFound.Error())
			return
		}
		log.Error("failed to get audio by id", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.NewAudioResponse(audio, dto.FileURL(audio.FilePath))); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
