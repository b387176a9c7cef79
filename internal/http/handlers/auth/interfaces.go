package auth

import (
	"context"
	"mediaportal/internal/models"
)

const pkg = "authHandler/"

type Registrar interface {
	Register(ctx context.Context, email string, name string, password string) (*models.User, string, error)
}

type LoginManager interface {
	Login(ctx context.Context, email string, password string) (*models.User, string, error)
}
