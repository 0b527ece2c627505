package handlers

import (
	"context"

	"subcommerce/internal/application/subscription/usecases"
	"subcommerce/internal/domain/subscription"
)

type createPendingSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePendingSubscriptionCommand) (*subscription.Subscription, error)
}

type listUserSubscriptionsUseCase interface {
	Execute(ctx context.Context, query usecases.ListUserSubscriptionsQuery) ([]*usecases.SubscriptionView, error)
}

type getSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.GetSubscriptionCommand) (*usecases.SubscriptionView, error)
}

type cancelSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.CancelSubscriptionCommand) (*subscription.Subscription, error)
}

type getSubscriptionStatisticsUseCase interface {
	Execute(ctx context.Context, userID uint) (*usecases.SubscriptionStatistics, error)
}
