package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"insightd/internal/config"
	"insightd/internal/controllers"
	"insightd/internal/logging"
	"insightd/internal/middleware"
	"insightd/internal/models"
	"insightd/internal/services"
	"insightd/migrations"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg)
		},
	}
}

func runServer(ctx context.Context, cfg config.Config) error {
	logger := logging.New(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The history store is optional; without DATABASE_URL the service
	// runs fully in-memory.
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		logger.Info("connecting to database")
		var err error
		pool, err = models.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := models.MigrateFS(cfg.DatabaseURL, migrations.FS, "."); err != nil {
			return err
		}
		logger.Info("database ready")
	} else {
		logger.Info("no DATABASE_URL set, history disabled")
	}

	router := newRouter(cfg, pool, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("address", cfg.Server.Address))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func newRouter(cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) http.Handler {
	tracker := services.NewUsageTracker()
	classifier := services.NewHuggingFaceClient(cfg.HuggingFace.Token, cfg.HuggingFace.BaseURL, cfg.HuggingFace.Timeout)
	resolver := services.NewMoodResolver(cfg.Tunables)
	analyzer := services.NewAnalyzer(
		classifier,
		tracker,
		resolver,
		cfg.HuggingFace.SentimentModel,
		cfg.HuggingFace.EmotionModel,
		logger,
	)

	var history *models.HistoryService
	if pool != nil {
		history = models.NewHistoryService(pool)
	}

	analyzeCtrl := controllers.NewAnalyzeController(analyzer, tracker, history, logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Post("/analyze", analyzeCtrl.PostAnalyze)
	r.Get("/status", analyzeCtrl.GetStatus)
	r.Get("/history", analyzeCtrl.GetHistory)
	r.Get("/history/{id}", analyzeCtrl.GetHistoryEntry)
	r.Get("/healthz", analyzeCtrl.GetHealthz)

	return r
}
