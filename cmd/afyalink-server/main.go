package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/afyalink/afyalink/internal/config"
	"github.com/afyalink/afyalink/internal/domain/anomaly"
	"github.com/afyalink/afyalink/internal/domain/catalog"
	"github.com/afyalink/afyalink/internal/domain/cohort"
	"github.com/afyalink/afyalink/internal/domain/monitor"
	"github.com/afyalink/afyalink/internal/platform/auth"
	"github.com/afyalink/afyalink/internal/platform/db"
	"github.com/afyalink/afyalink/internal/platform/middleware"
	"github.com/afyalink/afyalink/internal/platform/notification"
	"github.com/afyalink/afyalink/internal/platform/scheduling"
	"github.com/afyalink/afyalink/internal/platform/tablestore"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "afyalink-server",
		Short: "Synthetic NCD cohort and health dashboard API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(detectCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "" || os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a dataset snapshot and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			_, cohortSvc, _, err := buildCore(cfg, nil, logger)
			if err != nil {
				return err
			}
			summary, err := cohortSvc.Regenerate(cmd.Context(), cohortSvc.Defaults())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		},
	}
}

func detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Classify the current snapshot and print anomalies as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			_, cohortSvc, _, err := buildCore(cfg, nil, logger)
			if err != nil {
				return err
			}
			if err := cohortSvc.Bootstrap(cmd.Context()); err != nil {
				return err
			}

			svc := anomaly.NewService(cohortSvc, anomaly.NewDetector(anomaly.DefaultThresholds(), logger))
			found, err := svc.Anomalies(anomaly.Filter{})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(found)
		},
	}
}

func migrateCmd() *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Mirror database migrations",
	}
	migrate.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending mirror migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is not set")
			}

			ctx := cmd.Context()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			return db.NewMigrator(pool, logger).Up(ctx)
		},
	})
	return migrate
}

// buildCore wires the table store, roster, and cohort service shared by
// every command. The pool is optional; without it the snapshot is not
// mirrored.
func buildCore(cfg *config.Config, pool *pgxpool.Pool, logger zerolog.Logger) (*catalog.Service, *cohort.Service, *tablestore.Store, error) {
	store, err := tablestore.New(cfg.DataDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open table store: %w", err)
	}

	catalogSvc := catalog.NewService(store)
	if err := catalogSvc.Bootstrap(); err != nil {
		return nil, nil, nil, fmt.Errorf("bootstrap roster: %w", err)
	}

	defaults := cohort.DefaultGenerationConfig()
	defaults.NumPatients = cfg.NumPatients
	defaults.Frequency = cfg.Frequency
	defaults.AnomalyRate = cfg.AnomalyRate
	defaults.RepeatRate = cfg.RepeatRate
	defaults.Seed = cfg.Seed
	if cfg.Days > 0 {
		defaults.End = time.Now().UTC().Truncate(time.Hour)
		defaults.Start = defaults.End.AddDate(0, 0, -cfg.Days)
	}

	var mirror cohort.Mirror
	if pool != nil {
		mirror = cohort.NewPGMirror(pool, logger)
	}
	cohortSvc := cohort.NewService(store, catalogSvc, defaults, mirror, logger)
	return catalogSvc, cohortSvc, store, nil
}

func runServer() error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()

	// The Postgres mirror is optional: without DATABASE_URL the CSV
	// snapshot is the only store.
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pool, err = db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to mirror database")
		}
		defer pool.Close()
		if err := db.NewMigrator(pool, logger).Up(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to migrate mirror database")
		}
		logger.Info().Msg("mirror database ready")
	}

	catalogSvc, cohortSvc, store, err := buildCore(cfg, pool, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build services")
	}
	if err := cohortSvc.Bootstrap(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to bootstrap dataset")
	}

	// Notification channels: real providers when keys are configured,
	// in-memory mocks otherwise.
	var smsSender notification.SMSSender = &notification.MockSMSSender{}
	if cfg.SMSAPIKey != "" {
		smsSender = notification.NewAfricasTalkingSender(
			"https://api.africastalking.com", cfg.SMSUsername, cfg.SMSAPIKey, cfg.SMSSenderID, logger)
	}
	var emailSender notification.EmailSender = &notification.MockEmailSender{}
	if cfg.EmailAPIKey != "" {
		emailSender = notification.NewBrevoSender(
			"https://api.brevo.com", cfg.EmailAPIKey, "AfyaLink Alerts", cfg.EmailFrom, logger)
	}
	notifier := notification.NewManager(emailSender, smsSender, notification.NewTemplateEngine())

	anomalySvc := anomaly.NewService(cohortSvc, anomaly.NewDetector(anomaly.DefaultThresholds(), logger))

	recipients := monitor.Recipients{}
	if cfg.AlertPhoneTo != "" {
		recipients.SMS = []string{cfg.AlertPhoneTo}
	}
	if cfg.AlertEmailTo != "" {
		recipients.Email = []string{cfg.AlertEmailTo}
	}
	monitorSvc := monitor.NewService(store, catalogSvc, cohortSvc, notifier, recipients, logger)

	issuer := auth.NewTokenIssuer([]byte(cfg.JWTSecret), "afyalink", 24*time.Hour)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	api := e.Group("/api/v1")
	auth.NewHandler(catalogSvc, issuer, logger).RegisterRoutes(api)

	protected := e.Group("/api/v1", auth.Middleware(issuer, cfg.IsDev()))
	catalog.NewHandler(catalogSvc).RegisterRoutes(protected)
	cohort.NewHandler(cohortSvc).RegisterRoutes(protected)
	anomaly.NewHandler(anomalySvc).RegisterRoutes(protected)
	monitor.NewHandler(monitorSvc).RegisterRoutes(protected)
	notification.NewHandler(notifier).RegisterRoutes(protected)

	// Background monitors
	runner := scheduling.NewRunner(cfg.MonitorInterval(), logger)
	runner.Register(scheduling.Job{Name: "monitors", Run: monitorSvc.RunChecks})
	runner.Start(ctx)
	defer runner.Stop()

	// Start server
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("server listening")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
		return err
	}
	return nil
}
