// @title Subcommerce API
// @version 1.0
// @description Subscription commerce backend with Stripe checkout.
// @BasePath /api
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
package main

import (
	"os"

	"github.com/spf13/cobra"

	"subcommerce/internal/interfaces/cli/expire"
	"subcommerce/internal/interfaces/cli/migrate"
	"subcommerce/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "subcommerce",
		Short: "Subcommerce - subscriptions sold through Stripe checkout",
		Long:  `Subcommerce runs the HTTP API, the database migrations and the subscription maintenance jobs.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		expire.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
