// Seeds the bootstrap admin account. Safe to re-run: an existing email wins.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"mediaportal/internal/config"
	"mediaportal/internal/dbs/postgres"
	"mediaportal/internal/models"
	userrepo "mediaportal/internal/repositories/db/user"
	"os"
	"time"

	uuid "github.com/satori/go.uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	var (
		email    = flag.String("email", "admin@example.com", "admin email")
		name     = flag.String("name", "Admin User", "admin display name")
		password = flag.String("password", "", "admin password (required)")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if *password == "" {
		log.Error("password flag is required")
		os.Exit(1)
	}

	cfg := config.MustLoad()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := postgres.New(ctx, postgres.Config{
		Addr:     cfg.DB.Addr,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		DB:       cfg.DB.DB})
	if err != nil {
		log.Error("failed connect to db", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	passHash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	now := time.Now()

	admin := models.User{
		ID:        uuid.NewV4().String(),
		Email:     *email,
		Name:      *name,
		PassHash:  passHash,
		Role:      models.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	repo := userrepo.NewRepository(db)

	if err := repo.AddUser(ctx, admin); err != nil {
		var uce *models.UniqueConstraintError
		if errors.As(err, &uce) {
			log.Info("admin already exists", slog.String("email", admin.Email))
			return
		}
		log.Error("failed to seed admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("admin seeded", slog.String("email", admin.Email))
}
