package app

import (
	"context"
	"fmt"
	"log/slog"
	"mediaportal/internal/cache/redis"
	"mediaportal/internal/config"
	"mediaportal/internal/dbs/postgres"
	cachecontentrepo "mediaportal/internal/repositories/cache/content"
	audiorepo "mediaportal/internal/repositories/db/audio"
	commentrepo "mediaportal/internal/repositories/db/comment"
	documentrepo "mediaportal/internal/repositories/db/document"
	userrepo "mediaportal/internal/repositories/db/user"
	filerepo "mediaportal/internal/repositories/storage/file"
	audioservice "mediaportal/internal/services/audio"
	authservice "mediaportal/internal/services/auth"
	commentservice "mediaportal/internal/services/comment"
	documentservice "mediaportal/internal/services/document"
	userservice "mediaportal/internal/services/user"
)

type App struct {
	AuthService     AuthService
	DocumentService DocumentService
	AudioService    AudioService
	CommentService  CommentService
}

func NewApp(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	db, err := postgres.New(ctx, postgres.Config{
		Addr:     cfg.DB.Addr,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		DB:       cfg.DB.DB})
	if err != nil {
		log.Error("failed connect to db", "err", err)
		return nil, fmt.Errorf("failed connect to db: %w", err)
	}

	cache, err := redis.New(ctx, redis.Config{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB})
	if err != nil {
		log.Error("failed connect to cache", "err", err)
		return nil, fmt.Errorf("failed connect to cache: %w", err)
	}

	userRepo := userrepo.NewRepository(db)

	userService := userservice.New(log, userRepo, userRepo)

	authService := authservice.New(log, userService, userService, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	contentCacheRepo := cachecontentrepo.New(cache, cfg.Cache.ContentTTL)

	fileStorage := filerepo.NewRepository(cfg.FileStorage.Path)

	docRepo := documentrepo.NewRepository(db)

	documentService := documentservice.New(log, docRepo, contentCacheRepo, fileStorage)

	audioRepo := audiorepo.NewRepository(db)

	audioService := audioservice.New(log, audioRepo, contentCacheRepo, fileStorage)

	commentRepo := commentrepo.NewRepository(db)

	commentService := commentservice.New(log, commentRepo)

	return &App{
		AuthService:     authService,
		DocumentService: documentService,
		AudioService:    audioService,
		CommentService:  commentService,
	}, nil
}
