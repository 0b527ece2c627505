// Package migration manages the database schema.
package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"subcommerce/internal/shared/constants"
	"subcommerce/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks AutoMigrate for development and goose scripts elsewhere.
func NewManager(environment string, log logger.Interface) *Manager {
	var strategy Strategy
	switch strings.ToLower(environment) {
	case constants.EnvDevelopment:
		strategy = NewGormAutoMigrateStrategy(log)
	default:
		strategy = NewGooseStrategy(log)
	}
	return NewManagerWithStrategy(strategy, log)
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}
