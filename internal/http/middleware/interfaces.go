package middleware

import (
	"context"
	"mediaportal/internal/models"
)

const pkg = "middleware/"

type UserProvider interface {
	UserByToken(ctx context.Context, token string) (*models.User, error)
}
