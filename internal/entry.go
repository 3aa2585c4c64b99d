// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/smilesofhope/hopecms/internal/admin"
	"github.com/smilesofhope/hopecms/internal/api"
	"github.com/smilesofhope/hopecms/internal/assistant"
	"github.com/smilesofhope/hopecms/internal/content"
	"github.com/smilesofhope/hopecms/internal/kvstore"
	"github.com/smilesofhope/hopecms/internal/mailer"
	"github.com/smilesofhope/hopecms/internal/media"
	"github.com/smilesofhope/hopecms/internal/scratch"
	"github.com/smilesofhope/hopecms/internal/sse"
	"github.com/smilesofhope/hopecms/internal/web"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("store_path", cfg.Store.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Embedded store. Unavailability is non-fatal: the repository falls back
	// to the bundled defaults and runs memory-only for this session.
	var blobStore content.BlobStore
	if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
		logger.Warn("create data dir failed, running memory-only", slog.String("error", err.Error()))
	} else if store, err := kvstore.Open(cfg.Store.Path); err != nil {
		logger.Warn("open store failed, running memory-only", slog.String("error", err.Error()))
	} else {
		blobStore = store
		defer store.Close()
	}

	// Draft scratch slot, likewise non-fatal.
	var scratchStore *scratch.Store
	if sc, err := scratch.New(cfg.Store.ScratchDir); err != nil {
		logger.Warn("open scratch dir failed, draft recovery disabled", slog.String("error", err.Error()))
	} else {
		scratchStore = sc
	}

	// SSE broker for live content updates.
	broker := sse.NewBroker()
	defer broker.Close()

	// Content repository: seed, then overlay persisted posts.
	repo := content.NewRepository(blobStore, broker, logger)
	repo.Initialize(ctx)

	// Admin session components.
	auth := admin.NewAuthenticator(cfg.Admin.Username, cfg.Admin.PasswordHash,
		[]byte(cfg.Admin.JWTSecret), time.Duration(cfg.Admin.SessionTTL))
	manager := admin.NewManager(repo, scratchStore, logger)

	// Optional media library.
	var lib *media.Library
	if cfg.Media.Enabled {
		l, err := media.NewLibrary(cfg.Media.Dir)
		if err != nil {
			logger.Warn("media library unavailable", slog.String("error", err.Error()))
		} else {
			lib = l
		}
	}

	// Boundary collaborators.
	var mail *mailer.Client
	if cfg.Mail.Enabled() {
		mail = mailer.NewClient(cfg.Mail, logger)
	}
	asst := assistant.New(cfg.Assistant, logger)

	apiRouter := api.NewRouter(api.Deps{
		Repo:      repo,
		Manager:   manager,
		Auth:      auth,
		Media:     lib,
		Mail:      mail,
		Assistant: asst,
		Events:    broker,
		Logger:    logger,
	})

	pages, err := web.NewServer(repo, logger)
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Mount("/api", apiRouter)

	if lib != nil {
		mh := api.NewMediaHandler(lib, logger)
		r.Get("/assets/{name}", mh.ServeAsset)
	}

	r.Mount("/", pages.Routes())

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the assets directory for out-of-band changes.
	if lib != nil {
		g.Go(func() error {
			if err := lib.Watch(gCtx, logger, broker.PublishAssetEvent); err != nil {
				logger.Warn("media watcher failed", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
