package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/logger"
	messagingadapter "github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/messaging"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "finance-records",
		Usage: "Personal finance records API",
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
		},
		DefaultCommand: "serve",
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "skip-migrations", Usage: "do not migrate the schema on startup"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runServer(ctx, c.Bool("skip-migrations"))
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Bring the database schema to the current version and exit",
		Action: func(ctx context.Context, _ *cli.Command) error {
			env, err := setup()
			if err != nil {
				return err
			}
			defer env.close()

			if _, err := env.db.Connect(ctx); err != nil {
				return err
			}
			migrations := env.db.MigrationManager()
			if err := migrations.MigrateAll(ctx); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			version, err := migrations.GetCurrentVersion(ctx)
			if err != nil {
				return err
			}
			env.logger.Info("Schema is up to date", map[string]any{"version": version})
			return nil
		},
	}
}

// environment holds what every command needs
type environment struct {
	cfg    *config.Config
	logger core.Logger
	clock  core.TimeProvider
	db     *database.Manager
}

func (e *environment) close() {
	if err := e.db.Close(); err != nil {
		e.logger.Warn("Failed to close database", map[string]any{"error": err.Error()})
	}
	_ = e.logger.Flush()
}

func setup() (*environment, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	production := cfg.Environment == config.Production
	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: production || strings.EqualFold(cfg.Logger.Format, "json"),
		Level:      core.ParseLogLevel(cfg.Logger.Level),
		Service:    "finance-records",
	})
	if err != nil {
		return nil, err
	}

	tp := timeProvider.NewRealTimeProvider()
	dbConfig := database.CreateConfigFromViperConfig(cfg)
	if err := dbConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	return &environment{
		cfg:    cfg,
		logger: appLogger,
		clock:  tp,
		db:     database.NewManager(dbConfig, appLogger, tp),
	}, nil
}

func newPublisher(cfg config.EventsConfig, appLogger core.Logger) messaging.EventPublisher {
	if !cfg.Enabled {
		return messagingadapter.NewLogPublisher(appLogger)
	}
	return messagingadapter.NewKafkaPublisher(cfg, appLogger)
}

func runServer(ctx context.Context, skipMigrations bool) error {
	env, err := setup()
	if err != nil {
		return err
	}
	defer env.close()
	cfg, appLogger := env.cfg, env.logger

	db, err := env.db.Connect(ctx)
	if err != nil {
		return err
	}
	if !skipMigrations {
		if err := env.db.MigrationManager().MigrateAll(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	tokens, err := security.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, env.clock)
	if err != nil {
		return err
	}
	verifier, err := security.NewGoogleVerifier(ctx, cfg.Auth.GoogleClientID, appLogger)
	if err != nil {
		return err
	}

	publisher := newPublisher(cfg.Events, appLogger)
	defer func() {
		if err := publisher.Close(); err != nil {
			appLogger.Warn("Failed to close event publisher", map[string]any{"error": err.Error()})
		}
	}()

	router := buildRouter(dependencies{
		db:           db,
		probe:        env.db,
		uow:          env.db.CreateUnitOfWork(),
		verifier:     verifier,
		tokens:       tokens,
		publisher:    publisher,
		timeProvider: env.clock,
		logger:       appLogger,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal to gracefully shut down the server
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
		return err
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

func shutdownTimeout(configured time.Duration) time.Duration {
	if configured <= 0 {
		return 10 * time.Second
	}
	return configured
}
