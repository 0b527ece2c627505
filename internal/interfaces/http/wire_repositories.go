package http

import (
	"subcommerce/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo         *repository.UserRepository
	productRepo      *repository.ProductRepository
	subscriptionRepo *repository.SubscriptionRepository
	paymentRepo      *repository.PaymentRepository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		userRepo:         repository.NewUserRepository(c.db),
		productRepo:      repository.NewProductRepository(c.db),
		subscriptionRepo: repository.NewSubscriptionRepository(c.db, c.log),
		paymentRepo:      repository.NewPaymentRepository(c.db),
	}
}
