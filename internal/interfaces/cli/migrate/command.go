package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"subcommerce/internal/infrastructure/database"
	"subcommerce/internal/infrastructure/migration"
	"subcommerce/internal/interfaces/cli/bootstrap"
	"subcommerce/internal/shared/logger"
)

const defaultScriptsDir = "./internal/infrastructure/migration/scripts"

var (
	env        string
	configPath string
	name       string
	dir        string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new SQL migration",
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVarP(&dir, "dir", "d", defaultScriptsDir, "Directory to write the migration into")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (logger.Interface, error) {
	_, log, err := bootstrap.Init(bootstrap.ResolveEnv(env), configPath)
	if err != nil {
		return nil, err
	}
	return log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env)

	if err := migration.NewGooseStrategy(log).Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := migration.NewGooseStrategy(log).MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("checking migration status", "environment", env)

	if err := migration.NewGooseStrategy(log).Status(database.Get()); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	return nil
}

// runCreate only touches the filesystem, so it skips config and database.
func runCreate(cmd *cobra.Command, args []string) error {
	log := logger.NewLogger()

	if err := migration.NewGooseStrategy(log).Create(dir, name); err != nil {
		return err
	}

	fmt.Printf("Migration '%s' created in %s\n", name, dir)
	return nil
}
