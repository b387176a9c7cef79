package authservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mediaportal/internal/models"
	"mediaportal/internal/validator"
	"time"

	uuid "github.com/satori/go.uuid"
	"golang.org/x/crypto/bcrypt"
)

const pkg = "authService/"

type AuthService struct {
	log          *slog.Logger
	userAdder    UserAdder
	userProvider UserProvider
	jwtSecret    []byte
	tokenTTL     time.Duration
}

func New(
	log *slog.Logger,
	userAdder UserAdder,
	userProvider UserProvider,
	jwtSecret string,
	tokenTTL time.Duration,
) *AuthService {
	return &AuthService{
		log:          log,
		userAdder:    userAdder,
		userProvider: userProvider,
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
	}
}

func (a *AuthService) Register(ctx context.Context, email string, name string, password string) (*models.User, string, error) {
	op := pkg + "Register"

	log := a.log.With(slog.String("op", op))

	log.Debug("attempting to register user")

	if !validator.IsValidEmail(email) || !validator.IsValidName(name) || !validator.IsValidPassword(password) {
		log.Warn("invalid email, name or password format")
		return nil, "", models.ErrInvalidParams
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", slog.String("error", err.Error()))
		return nil, "", models.ErrInternal
	}

	now := time.Now()

	user := models.User{
		ID:        uuid.NewV4().String(),
		Email:     email,
		Name:      name,
		PassHash:  passHash,
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = a.userAdder.AddUser(ctx, user)
	if err != nil {
		if errors.Is(err, models.ErrUserExists) {
			log.Warn("user already exists", slog.String("email", user.Email))
			return nil, "", models.ErrUserExists
		}

		log.Error("failed to add user", slog.String("error", err.Error()))
		return nil, "", models.ErrInternal
	}

	token, err := a.generateToken(&user)
	if err != nil {
		log.Error("failed to generate token", slog.String("error", err.Error()))
		return nil, "", models.ErrInternal
	}

	log.Debug("user registered successfully")

	return &user, token, nil
}

func (a *AuthService) Login(ctx context.Context, email string, password string) (*models.User, string, error) {
	op := pkg + "Login"

	log := a.log.With(slog.String("op", op))

	log.Debug("attempting to login user")

	user, err := a.userProvider.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Info("user not found", slog.String("error", models.ErrUserNotFound.Error()))
			return nil, "", fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
		}

		log.Error("failed to get user", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if err := bcrypt.CompareHashAndPassword(user.PassHash, []byte(password)); err != nil {
		log.Info("invalid credentials", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}

	token, err := a.generateToken(user)
	if err != nil {
		log.Error("failed to generate token", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("user logged in successfully")

	return user, token, nil
}

// UserByToken verifies the token and re-fetches the authoritative user record.
// Token claims are never trusted as the user object.
func (a *AuthService) UserByToken(ctx context.Context, token string) (*models.User, error) {
	op := pkg + "UserByToken"

	log := a.log.With(slog.String("op", op))

	log.Debug("attempting to get user by token")

	userID, err := a.verifyToken(token)
	if err != nil {
		log.Warn("failed to verify token", slog.String("error", err.Error()))
		return nil, models.ErrInvalidCredentials
	}

	user, err := a.userProvider.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Warn("token references a vanished user", slog.String("user_id", userID))
			return nil, models.ErrInvalidCredentials
		}
		log.Error("failed to get user by id", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	log.Debug("user found successfully")

	return user, nil
}
