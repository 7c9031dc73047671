package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"

	"healthcare-file-viewer/internal/config"
	"healthcare-file-viewer/internal/models"
	"healthcare-file-viewer/internal/observability"
	"healthcare-file-viewer/internal/routes"
)

const shutdownTimeout = 10 * time.Second

var envFile string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP preview service",
	Long: `Start the preview service. Configuration comes from environment variables,
optionally loaded from a .env file:

  PORT, ORIGIN, APP_ENV, LOG_LEVEL, MAX_UPLOAD_MB, METRICS_PATH,
  DB_HOST, DB_PORT, DB_USERNAME, DB_PASSWORD, DB_NAME (or DB_DSN), DB_LOGS

The server runs until interrupted and then drains in-flight requests.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&envFile, "env-file", ".env", "Environment file to load if present")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	log := observability.NewLogger("file-viewer", cfg.LogLevel, os.Stdout)

	dbLogLevel := logger.Warn
	if cfg.EnableDBLogs {
		dbLogLevel = logger.Info
	}
	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN, LogLevel: dbLogLevel})
	if err != nil {
		log.Error(err, "connect to database")
		return fmt.Errorf("connect to database: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := routes.NewRouter(cfg, routes.Dependencies{
		Store:   models.NewGormRecordStore(db),
		Log:     log,
		Metrics: observability.NewMetrics(registry),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening on :" + cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-cmd.Context().Done():
	}

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
