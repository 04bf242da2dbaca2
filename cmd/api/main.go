package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/holmes89/qaa/lib/config"
	"github.com/holmes89/qaa/lib/handlers/rest"
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
	logger.Info("created store")

	qaaRepo := &repo.QAARepo{Conn: conn}
	handler := rest.NewRestHandler(
		store.NewStoreService(qaaRepo, logger),
		answer.NewAnswerService(qaaRepo, cfg.Provider, logger),
		logger,
	)

	srv := &http.Server{
		Addr: ":" + cfg.HTTP.Port,
		// Use h2c so we can serve HTTP/2 without TLS.
		Handler: h2c.NewHandler(
			otelhttp.NewHandler(withCORS(handler.SetupRoutes()), "qaa"),
			&http2.Server{},
		),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      writeTimeout(cfg.Provider.Timeout),
		IdleTimeout:       2 * time.Minute,
	}

	errs := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		return fmt.Errorf("server failed: %w", err)
	case s := <-sig:
		logger.Info("terminating", zap.String("signal", s.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// writeTimeout leaves room for the provider call behind an ai answer. With no
// provider timeout the write is not bounded either.
func writeTimeout(provider time.Duration) time.Duration {
	if provider <= 0 {
		return 0
	}
	return provider + 30*time.Second
}

// withCORS adds CORS support to the router.
func withCORS(h http.Handler) http.Handler {
	middleware := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	return middleware.Handler(h)
}
