// Package expire runs the subscription expiry sweep once, for cron or manual use.
package expire

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"subcommerce/internal/application/subscription/usecases"
	"subcommerce/internal/infrastructure/database"
	"subcommerce/internal/infrastructure/repository"
	"subcommerce/internal/interfaces/cli/bootstrap"
)

var (
	env        string
	configPath string
	timeout    time.Duration
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expire",
		Short: "Expire subscriptions past their end date",
		Long:  `Run the expiry sweep once. The server runs the same sweep on a schedule.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "Maximum run time")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.Init(bootstrap.ResolveEnv(env), configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	subscriptionRepo := repository.NewSubscriptionRepository(database.Get(), log)
	uc := usecases.NewExpireSubscriptionsUseCase(subscriptionRepo, log.Named("subscription"))

	count, err := uc.Execute(ctx)
	if err != nil {
		return fmt.Errorf("failed to expire subscriptions: %w", err)
	}

	log.Infow("expiry sweep finished", "expired", count)
	return nil
}
