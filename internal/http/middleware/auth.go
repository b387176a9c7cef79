package middleware

import (
	"context"
	"log/slog"
	"mediaportal/internal/models"
	utils "mediaportal/internal/utils/httperr"
	"net/http"
	"strings"
)

// Auth resolves the bearer token to the current stored user and puts it on
// the request context. Missing or invalid tokens get a 401.
func Auth(log *slog.Logger, provider UserProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			op := pkg + "Auth"

			log := log.With(slog.String("op", op))

			token := bearerToken(r)
			if token == "" {
				log.Warn("missing bearer token")
				utils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			requester, err := provider.UserByToken(r.Context(), token)
			if err != nil {
				log.Warn("failed to get user by token", slog.String("error", err.Error()))
				utils.WriteJSONError(w, http.StatusUnauthorized, "token is invalid")
				return
			}

			ctx := context.WithValue(r.Context(), models.UserContextKey, requester)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return parts[1]
}
