package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"mediaportal/internal/dto"
	"mediaportal/internal/models"
	utils "mediaportal/internal/utils/httperr"
	"net/http"
)

// Me returns the authenticated user resolved by the auth middleware.
func Me(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request) {
	op := pkg + "Me"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.NewUserResponse(requester)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
