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

func Update(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, commentID string, cu CommentUpdater) {
	op := pkg + "Update"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	var req dto.UpdateCommentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode body", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}
	defer r.Body.Close()

	comment, err := cu.UpdateComment(ctx, commentID, req.Content, requester)
	if err != nil {
		if errors.Is(err, models.ErrCommentNotFound) {
			log.Warn("comment not found", slog.String("comment_id", commentID))
			utils.WriteJSONError(w, http.StatusNotFound, models.ErrCommentNotFound.Error())
			return
		}
		if errors.Is(err, models.ErrForbidden) {
			log.Warn("update forbidden", slog.String("comment_id", commentID))
			utils.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
			return
		}
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid comment content")
			utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		log.Error("failed to update comment", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(comment); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
