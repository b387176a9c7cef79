package comments

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mediaportal/internal/models"
	utils "mediaportal/internal/utils/httperr"
	"net/http"
)

func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, commentID string, cd CommentDeleter) {
	op := pkg + "Delete"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	if err := cd.DeleteComment(ctx, commentID, requester); err != nil {
		if errors.Is(err, models.ErrCommentNotFound) {
			log.Warn("comment not found", slog.String("comment_id", commentID))
			utils.WriteJSONError(w, http.StatusNotFound, models.ErrCommentNotFound.Error())
			return
		}
		if errors.Is(err, models.ErrForbidden) {
			log.Warn("delete forbidden", slog.String("comment_id", commentID))
			utils.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
			return
		}
		log.Error("failed to delete comment", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]string{"message": "comment deleted"}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
