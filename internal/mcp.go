package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/smilesofhope/hopecms/internal/admin"
	"github.com/smilesofhope/hopecms/internal/content"
	"github.com/smilesofhope/hopecms/internal/kvstore"
	"github.com/smilesofhope/hopecms/internal/mcpserver"
	"github.com/smilesofhope/hopecms/internal/scratch"
)

// RunMCP starts the MCP stdio server over the same content store the HTTP
// server uses. Logs go to stderr so stdout stays clean for the protocol.
func RunMCP(ctx context.Context, opts ...Option) error {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := app.config

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	var blobStore content.BlobStore
	if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
		logger.Warn("create data dir failed, running memory-only", slog.String("error", err.Error()))
	} else if store, err := kvstore.Open(cfg.Store.Path); err != nil {
		logger.Warn("open store failed, running memory-only", slog.String("error", err.Error()))
	} else {
		blobStore = store
		defer store.Close()
	}

	var scratchStore *scratch.Store
	if sc, err := scratch.New(cfg.Store.ScratchDir); err != nil {
		logger.Warn("open scratch dir failed, draft recovery disabled", slog.String("error", err.Error()))
	} else {
		scratchStore = sc
	}

	repo := content.NewRepository(blobStore, nil, logger)
	repo.Initialize(ctx)
	manager := admin.NewManager(repo, scratchStore, logger)

	logger.Info("MCP server starting on stdio")
	return mcpserver.New(repo, manager).ServeStdio()
}
