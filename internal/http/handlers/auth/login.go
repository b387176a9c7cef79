package auth

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

func Login(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, lm LoginManager) {
	op := pkg + "Login"

	log = log.With(slog.String("op", op))

	var req dto.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode body", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}
	defer r.Body.Close()

	user, token, err := lm.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) || errors.Is(err, models.ErrInvalidCredentials) {
			log.Warn("failed to login user", slog.String("error", err.Error()))
			utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
			return
		}
		log.Error("failed to login user", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := dto.AuthResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
