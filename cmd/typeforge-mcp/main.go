package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/typeforge/typeforge-mcp/internal/cache"
	"github.com/typeforge/typeforge-mcp/internal/config"
	"github.com/typeforge/typeforge-mcp/internal/logging"
	"github.com/typeforge/typeforge-mcp/internal/mcp"
	"github.com/typeforge/typeforge-mcp/internal/mcp/tools"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Configuration is loaded from environment variables:
	// - LOG_LEVEL: debug, info, warn, error (default: info)
	// - LOG_FILE: path to log file (default: stderr only)
	// - TYPEFORGE_CACHE_MAX_ITEMS, TYPEFORGE_MAX_INPUT_BYTES, etc.
	// (see internal/config for all options)
	cfg := config.Load()

	cleanup, err := logging.Setup(logging.Config{
		Level:      cfg.LogLevel,
		FilePath:   cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	resultCache, err := cache.New(cfg.CacheMaxItems)
	if err != nil {
		slog.Error("failed to create result cache", "error", err)
		os.Exit(1)
	}

	server, err := mcp.NewServer(
		&tools.Deps{Config: cfg, Cache: resultCache},
		mcp.WithBuiltinTools(),
	)
	if err != nil {
		slog.Error("failed to create MCP server", "error", err)
		os.Exit(1)
	}

	slog.Info("starting typeforge MCP server on stdio")
	if err := server.Run(ctx); err != nil && err != context.Canceled {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
