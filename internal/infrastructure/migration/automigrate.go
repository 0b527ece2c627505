package migration

import (
	"subcommerce/internal/infrastructure/persistence/models"
)

// AutoMigrateModels returns the catalog and billing models for GORM
// AutoMigrate. Users and products come before the subscriptions and payments
// that reference them.
func AutoMigrateModels() []any {
	return []any{
		&models.UserModel{},
		&models.ProductModel{},
		&models.SubscriptionModel{},
		&models.PaymentModel{},
	}
}
