package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/adapters/database/pgsql"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/editor"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/events"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/services"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/handlers"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/middleware"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/platform/config"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/utils"
	"github.com/aRTxaRTx/sambapos_entity_editor/pkg/database"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Entity Editor API
// @version 1.0
// @description Edits entities, provisions their accounts and announces the results to subscribers.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer, err := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool))
	if err != nil {
		logger.Error("Failed to create services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Outbound notifications go to the per-user outbox and to analytics.
	bus := events.NewBus()
	outbox := events.NewOutbox(cfg.OutboxSize)
	bus.SubscribeAll(outbox.Handle)
	analytics := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer analytics.Close()
	if analytics.IsInitialized() {
		bus.SubscribeAll(analytics.HandleNotification)
	}

	registry := editor.NewRegistry(editor.Deps{
		Cache:       serviceContainer.Cache,
		Entities:    serviceContainer.Entity,
		Accounts:    serviceContainer.Account,
		Permissions: serviceContainer.Permission,
		Tickets:     serviceContainer.Ticket,
		AppState:    serviceContainer.AppState,
		Publisher:   bus,
	})
	dispatcher := editor.NewDispatcher(bus, registry)
	dispatcher.Start()
	defer dispatcher.Stop()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.EditorComponents{
		Sessions:   registry,
		Dispatcher: dispatcher,
		Outbox:     outbox,
	})

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations through a temporary database/sql
// connection using the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
