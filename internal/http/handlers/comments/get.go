package comments

import (
	"context"
	"encoding/json"
	"log/slog"
	"mediaportal/internal/models"
	utils "mediaportal/internal/utils/httperr"
	"net/http"
)

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, cp CommentProvider) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	filter := models.CommentFilter{
		DocumentID: r.URL.Query().Get("documentId"),
		AudioID:    r.URL.Query().Get("audioId"),
		AuthorID:   r.URL.Query().Get("authorId"),
	}

	comments, err := cp.ListComments(ctx, filter)
	if err != nil {
		log.Error("failed to list comments", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(comments); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
