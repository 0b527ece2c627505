// Package bootstrap loads configuration and opens the database for the CLI
// commands.
package bootstrap

import (
	"fmt"
	"os"

	"subcommerce/internal/infrastructure/config"
	"subcommerce/internal/infrastructure/database"
	"subcommerce/internal/shared/logger"
)

// ResolveEnv lets the ENV variable override the --env flag.
func ResolveEnv(flagEnv string) string {
	if envVar := os.Getenv("ENV"); envVar != "" {
		return envVar
	}
	return flagEnv
}

// Init loads config, sets up the global logger and connects to the database.
// Callers must call database.Close.
func Init(env, configPath string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, log, nil
}
