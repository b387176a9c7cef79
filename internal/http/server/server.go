package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mediaportal/internal/config"
	"mediaportal/internal/http/handlers/audios"
	"mediaportal/internal/http/handlers/auth"
	"mediaportal/internal/http/handlers/comments"
	"mediaportal/internal/http/handlers/documents"
	"mediaportal/internal/http/middleware"
	"mediaportal/internal/models"
	utils "mediaportal/internal/utils/httperr"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

func StartServer(
	ctx context.Context,
	cfg *config.Config,
	log *slog.Logger,
	authService AuthService,
	documentService DocumentService,
	audioService AudioService,
	commentService CommentService,
) error {
	r := mux.NewRouter()

	r.Use(middleware.Logger(log))

	setupRoutes(r, log, cfg.FileStorage.Path, authService, documentService, audioService, commentService)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
		Handler:      r,
	}

	errChan := make(chan error, 1)

	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("server closed gracefully")
			} else {
				log.Error("could not start server:", "error", err)
				errChan <- err
			}
		}
	}()
	select {
	case <-ctx.Done():
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("error shutting down server", "error", err)
			return err
		}
		log.Info("server exited gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func setupRoutes(
	r *mux.Router,
	log *slog.Logger,
	fileStoragePath string,
	authService AuthService,
	documentService DocumentService,
	audioService AudioService,
	commentService CommentService,
) {
	// GET health
	r.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// POST register
	r.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		auth.Register(ctx, log, w, r, authService)
	}).Methods(http.MethodPost)

	// POST login
	r.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		auth.Login(ctx, log, w, r, authService)
	}).Methods(http.MethodPost)

	// GET documents
	r.HandleFunc("/api/documents", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		documents.Get(ctx, log, w, r, documentService)
	}).Methods(http.MethodGet)

	// GET document by id
	r.HandleFunc("/api/documents/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docID := mux.Vars(r)["id"]
		documents.GetByID(ctx, log, w, r, docID, documentService)
	}).Methods(http.MethodGet)

	// GET audios
	r.HandleFunc("/api/audios", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		audios.Get(ctx, log, w, r, audioService)
	}).Methods(http.MethodGet)

	// GET audio by id
	r.HandleFunc("/api/audios/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		audioID := mux.Vars(r)["id"]
		audios.GetByID(ctx, log, w, r, audioID, audioService)
	}).Methods(http.MethodGet)

	// GET comments
	r.HandleFunc("/api/comments", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		comments.Get(ctx, log, w, r, commentService)
	}).Methods(http.MethodGet)

	// Uploaded binaries, content type inferred from extension.
	r.PathPrefix("/files/").Handler(
		http.StripPrefix("/files/", http.FileServer(http.Dir(fileStoragePath))))

	protected := r.NewRoute().Subrouter()

	protected.Use(middleware.Auth(log, authService))

	// GET current user
	protected.HandleFunc("/api/auth", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		auth.Me(ctx, log, w, r)
	}).Methods(http.MethodGet)

	// POST document
	protected.HandleFunc("/api/documents", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		documents.Upload(ctx, log, w, r, documentService)
	}).Methods(http.MethodPost)

	// PUT document
	protected.HandleFunc("/api/documents/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docID := mux.Vars(r)["id"]
		documents.Update(ctx, log, w, r, docID, documentService)
	}).Methods(http.MethodPut)

	// DELETE document
	protected.HandleFunc("/api/documents/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docID := mux.Vars(r)["id"]
		documents.Delete(ctx, log, w, r, docID, documentService)
	}).Methods(http.MethodDelete)

	// POST audio
	protected.HandleFunc("/api/audios", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		audios.Upload(ctx, log, w, r, audioService)
	}).Methods(http.MethodPost)

	// PUT audio
	protected.HandleFunc("/api/audios/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		audioID := mux.Vars(r)["id"]
		audios.Update(ctx, log, w, r, audioID, audioService)
	}).Methods(http.MethodPut)

	// DELETE audio
	protected.HandleFunc("/api/audios/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		audioID := mux.Vars(r)["id"]
		audios.Delete(ctx, log, w, r, audioID, audioService)
	}).Methods(http.MethodDelete)

	// POST comment
	protected.HandleFunc("/api/comments", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		comments.Create(ctx, log, w, r, commentService)
	}).Methods(http.MethodPost)

	// PUT comment
	protected.HandleFunc("/api/comments/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		commentID := mux.Vars(r)["id"]
		comments.Update(ctx, log, w, r, commentID, commentService)
	}).Methods(http.MethodPut)

	// DELETE comment
	protected.HandleFunc("/api/comments/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		commentID := mux.Vars(r)["id"]
		comments.Delete(ctx, log, w, r, commentID, commentService)
	}).Methods(http.MethodDelete)

	// Not allowed
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, http.StatusMethodNotAllowed, models.ErrMethodNotAllowed.Error())
	})
}
