// d_brain bot - Telegram front-end for the hypothesis processor service.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/akravets/dbrain-bot/internal/api"
	"github.com/akravets/dbrain-bot/internal/config"
	"github.com/akravets/dbrain-bot/internal/orchestrator"
	"github.com/akravets/dbrain-bot/internal/processor"
	"github.com/akravets/dbrain-bot/internal/session"
	"github.com/akravets/dbrain-bot/internal/store"
	"github.com/akravets/dbrain-bot/internal/telegram"
	"github.com/akravets/dbrain-bot/internal/vault"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting bot", "port", cfg.Port, "processor_addr", cfg.ProcessorAddr, "allow_all_users", cfg.AllowAllUsers)

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	grpcClient, err := processor.NewGrpcClient(cfg.ProcessorAddr, logger)
	if err != nil {
		slog.Error("Failed to connect to processor service", "error", err)
		os.Exit(1)
	}
	defer grpcClient.Close()
	slog.Info("Processor service connected", "addr", cfg.ProcessorAddr)

	tgClient, err := telegram.NewClient(cfg.BotToken)
	if err != nil {
		slog.Error("Failed to initialize Telegram client", "error", err)
		os.Exit(1)
	}

	// Initialize services.
	sessions := session.NewStore()
	vaultGit := vault.NewGit(cfg.VaultPath, logger)

	orch := orchestrator.New(orchestrator.Config{
		HeartbeatInterval: cfg.HeartbeatInterval,
		CancelInFlight:    cfg.CancelInFlight,
		CommitMessage:     "feat: create hypothesis map",
	}, sessions, grpcClient, tgClient, vaultGit, repo, logger)

	poller := telegram.NewPoller(telegram.PollerConfig{
		PollTimeout:    cfg.PollTimeout,
		AllowedUserIDs: cfg.AllowedUserIDs,
		AllowAllUsers:  cfg.AllowAllUsers,
	}, tgClient, orch, repo, logger)

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	handler := api.NewHandler(repo, sessions, grpcClient)
	handler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start update poller.
	pollerDone := make(chan struct{})
	go func() {
		defer close(pollerDone)
		if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("Poller stopped", "error", err)
			stop()
		}
	}()

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	<-pollerDone
	slog.Info("Bot stopped successfully")
}
