package migration

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"subcommerce/internal/shared/logger"
)

//go:embed scripts/*.sql
var scripts embed.FS

const scriptsDir = "scripts"

// Strategy defines the interface for different migration strategies
type Strategy interface {
	Migrate(db *gorm.DB) error
	GetName() string
}

// GooseStrategy applies the versioned SQL scripts embedded in the binary.
type GooseStrategy struct {
	logger logger.Interface
}

func NewGooseStrategy(log logger.Interface) *GooseStrategy {
	goose.SetBaseFS(scripts)
	return &GooseStrategy{
		logger: log.With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	s.logger.Infow("current migration status", "version", currentVersion)

	if err := goose.Up(sqlDB, scriptsDir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)
	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, scriptsDir); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Status(sqlDB, scriptsDir); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}

// Version returns the applied schema version.
func (s *GooseStrategy) Version(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := goose.SetDialect("mysql"); err != nil {
		return 0, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.GetDBVersion(sqlDB)
}

// Create writes a new SQL migration into dir on disk. The embedded set only
// picks it up after a rebuild.
func (s *GooseStrategy) Create(dir, name string) error {
	// goose resolves paths through the base FS; point it at disk while creating.
	goose.SetBaseFS(nil)
	defer goose.SetBaseFS(scripts)
	goose.SetSequential(true)

	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Infow("migration created successfully", "name", name, "dir", dir)
	return nil
}

// GormAutoMigrateStrategy builds the schema from the gorm models. It backs
// development databases and the SQLite test store.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: log.With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		s.logger.Errorw("auto migrate failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	s.logger.Infow("auto migrate completed", "models_count", len(AutoMigrateModels()))
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
