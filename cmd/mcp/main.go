package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/holmes89/qaa/lib/config"
	"github.com/holmes89/qaa/lib/logging"
	"github.com/holmes89/qaa/lib/repo"
	"github.com/holmes89/qaa/lib/service/answer"
	"github.com/holmes89/qaa/lib/service/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// stdout carries the protocol; zap writes to stderr.
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	conn, err := repo.NewDatabase(cfg.Database.URL, logger, repo.WithMigrate(cfg.Database.Migrate))
	if err != nil {
		return fmt.Errorf("failed to connect to db: %w", err)
	}
	defer conn.Close()

	qaaRepo := &repo.QAARepo{Conn: conn}
	server := NewMCPServer(
		store.NewStoreService(qaaRepo, logger),
		answer.NewAnswerService(qaaRepo, cfg.Provider, logger),
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return server.Run(ctx, &mcp.StdioTransport{})
}
