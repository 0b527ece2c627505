package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"subcommerce/internal/infrastructure/database"
	"subcommerce/internal/infrastructure/migration"
	"subcommerce/internal/interfaces/cli/bootstrap"
	"subcommerce/internal/interfaces/dto"
	httpRouter "subcommerce/internal/interfaces/http"
	"subcommerce/internal/shared/constants"
	"subcommerce/internal/shared/logger"
)

const shutdownTimeout = 30 * time.Second

var (
	env                string
	configPath         string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Subcommerce HTTP API and the subscription expiry scheduler.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	env = bootstrap.ResolveEnv(env)

	cfg, log, err := bootstrap.Init(env, configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	cfg.Server.Mode = mapEnvToGinMode(env)

	log.Infow("starting server",
		"environment", env,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := dto.RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	if err := handleMigrations(env, log); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	router, err := httpRouter.NewRouter(database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	defer router.Shutdown()

	router.SetupRoutes()
	router.StartScheduler()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(environment string, log logger.Interface) error {
	if skipMigrationCheck {
		log.Infow("skipping migration check")
		return nil
	}

	if autoMigrate {
		if environment == constants.EnvProduction {
			log.Warnw("auto-migration is enabled in production environment - this is not recommended!")
		}

		if err := migration.NewManager(environment, log).Migrate(database.Get()); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		return nil
	}

	version, err := migration.NewGooseStrategy(log).Version(database.Get())
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	log.Infow("current migration version", "version", version)
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
