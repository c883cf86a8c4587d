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

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/promptlab/internal/config"
	logpkg "github.com/kailas-cloud/promptlab/internal/logger"
	"github.com/kailas-cloud/promptlab/internal/metrics"
	collectionrepo "github.com/kailas-cloud/promptlab/internal/repository/collection"
	promptrepo "github.com/kailas-cloud/promptlab/internal/repository/prompt"
	"github.com/kailas-cloud/promptlab/internal/storage"
	chiTransport "github.com/kailas-cloud/promptlab/internal/transport/chi"
	collectionuc "github.com/kailas-cloud/promptlab/internal/usecase/collection"
	healthuc "github.com/kailas-cloud/promptlab/internal/usecase/health"
	promptuc "github.com/kailas-cloud/promptlab/internal/usecase/prompt"
	"github.com/kailas-cloud/promptlab/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting promptlab API server",
		zap.String("build", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Bool("auth_enabled", len(cfg.Auth.APIKeys) > 0),
	)

	// In-memory store shared by all repositories
	store := storage.New()
	if cfg.Storage.SeedUncategorized {
		col := store.UncategorizedCollection()
		logger.Info("Seeded default collection", zap.String("collection_id", col.ID()))
	}

	if err := metrics.RegisterStorage(prometheus.DefaultRegisterer, store); err != nil {
		logger.Fatal("Failed to register storage metrics", zap.Error(err))
	}

	// Repositories
	promptRepo := promptrepo.New(store)
	collRepo := collectionrepo.New(store)

	// Use case services
	promptSvc := promptuc.New(promptRepo, collRepo)
	collSvc := collectionuc.New(collRepo, promptRepo)
	healthSvc := healthuc.New(store, store)

	server := chiTransport.NewServer(promptSvc, collSvc, healthSvc).
		WithPagination(cfg.Pagination.DefaultPageSize, cfg.Pagination.MaxPageSize)

	r := chi.NewRouter()
	r.Use(chiTransport.Middlewares(logger, cfg.Auth.APIKeys)...)
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	st := store.Stats()
	logger.Info("Server stopped gracefully",
		zap.Int("prompts_discarded", st.Prompts),
		zap.Int("collections_discarded", st.Collections),
	)
}
