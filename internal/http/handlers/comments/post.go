package comments

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

func Create(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, cc CommentCreator) {
	op := pkg + "Create"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	var req dto.CreateCommentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode body", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}
	defer r.Body.Close()

	comment, err := cc.CreateComment(ctx, req.Content, requester.ID, req.DocumentID, req.AudioID)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCommentTarget) || errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid comment", slog.String("error", err.Error()))
			utils.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error("failed to create comment", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(comment); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
