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

	"github.com/diegoclair/daily-report-bot/internal/config"
	"github.com/diegoclair/daily-report-bot/internal/credential"
	"github.com/diegoclair/daily-report-bot/internal/database"
	"github.com/diegoclair/daily-report-bot/internal/domain/service"
	"github.com/diegoclair/daily-report-bot/internal/handlers"
	"github.com/diegoclair/daily-report-bot/internal/logger"
	"github.com/diegoclair/daily-report-bot/internal/messenger"
	"github.com/diegoclair/daily-report-bot/migrator/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		logger.Error("bot stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	closeLog := logger.Init(cfg.Log)
	defer closeLog()
	if envErr != nil {
		logger.Warn(".env file not found")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	logger.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("migrations completed successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	credentials := newCredentials(ctx, cfg.Slack)
	slackMessenger := messenger.NewSlack(credentials, cfg.Slack.ReportChannelID)

	svc, err := service.NewInstance(database.NewInstance(db), slackMessenger, service.Options{
		Location:     cfg.Schedule.Location,
		ReminderTime: cfg.Schedule.ReminderTime,
		AuditTime:    cfg.Schedule.AuditTime,
		RemindOnce:   cfg.Schedule.RemindOnce,
		Roster:       cfg.Roster,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	svc.Scheduler.Start()
	defer svc.Scheduler.Stop()

	handler := handlers.New(slackMessenger, svc.Report, cfg.Slack.SigningSecret)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /slack/events", handler.HandleEvents)
	mux.HandleFunc("GET /health", handlers.HandleHealth)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "members", len(cfg.Roster))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
	case err := <-serveErr:
		return fmt.Errorf("http server error: %w", err)
	}
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("server stopped gracefully")
	return nil
}

// newCredentials uses the static bot token unless an OAuth client is
// configured, in which case the token is refreshed in the background.
func newCredentials(ctx context.Context, cfg config.SlackConfig) *credential.Provider {
	if !cfg.RotatesToken() {
		if cfg.BotToken == "" {
			logger.Warn("SLACK_BOT_TOKEN is empty, outbound messages will fail")
		}
		return credential.NewStatic(cfg.BotToken)
	}

	provider := credential.NewProvider(credential.NewSlackRefresher(nil, cfg.ClientID, cfg.ClientSecret, cfg.RefreshToken))
	if cfg.BotToken != "" {
		provider.Set(cfg.BotToken)
	}
	go provider.Run(ctx, cfg.TokenRefreshInterval)
	return provider
}
