package main

import (
	"context"
	"log"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/honeycarbs/vacancy-search/internal/app"
	"github.com/honeycarbs/vacancy-search/internal/config"
	"github.com/honeycarbs/vacancy-search/internal/mcp"
	"github.com/honeycarbs/vacancy-search/pkg/logging"
	"github.com/honeycarbs/vacancy-search/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	res, cleanup, err := app.InitializeResources(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		os.Exit(1)
	}
	defer cleanup()

	logger.Info("vacancy store ready", "path", res.Store.Path(), "sheets_export", cfg.SheetsEnabled())

	srv := mcp.NewServer(logger, cfg, res.Service)

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		10*time.Second,
		logger,
	)

	logger.Info("MCP server initialized and starting", "addr", net.JoinHostPort(cfg.Host, cfg.Port))

	if err := srv.Run(); err != nil {
		logger.Error("MCP server exited with error", "err", err)
	} else {
		logger.Info("MCP server stopped")
	}
}
