package usecases

import (
	"context"
	"fmt"

	"subcommerce/internal/domain/authorization"
	"subcommerce/internal/domain/payment"
	"subcommerce/internal/domain/product"
	"subcommerce/internal/domain/subscription"
	vo "subcommerce/internal/domain/subscription/valueobjects"
	apperrors "subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
)

// SubscriptionView is a subscription with the records the API renders alongside it.
type SubscriptionView struct {
	Subscription *subscription.Subscription
	Product      *product.Product
	Payments     []*payment.Payment
}

type ListUserSubscriptionsQuery struct {
	UserID    uint
	Status    string
	ProductID *uint
}

type ListUserSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	productRepo      product.Repository
	paymentRepo      payment.Repository
	logger           logger.Interface
}

func NewListUserSubscriptionsUseCase(
	subscriptionRepo subscription.Repository,
	productRepo product.Repository,
	paymentRepo payment.Repository,
	logger logger.Interface,
) *ListUserSubscriptionsUseCase {
	return &ListUserSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
		paymentRepo:      paymentRepo,
		logger:           logger,
	}
}

func (uc *ListUserSubscriptionsUseCase) Execute(ctx context.Context, query ListUserSubscriptionsQuery) ([]*SubscriptionView, error) {
	filter := subscription.ListFilter{
		UserID:    query.UserID,
		ProductID: query.ProductID,
	}
	if query.Status != "" {
		status := vo.SubscriptionStatus(query.Status)
		if !vo.ValidStatuses[status] {
			return nil, apperrors.NewValidationError("Invalid status filter", query.Status)
		}
		filter.Status = &status
	}

	subs, err := uc.subscriptionRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	products := make(map[uint]*product.Product)
	views := make([]*SubscriptionView, 0, len(subs))
	for _, sub := range subs {
		view, err := loadView(ctx, uc.productRepo, uc.paymentRepo, sub, products)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

type GetSubscriptionCommand struct {
	SubscriptionID uint
	Actor          authorization.Actor
}

// GetSubscriptionUseCase returns one subscription to its owner or an admin.
type GetSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	productRepo      product.Repository
	paymentRepo      payment.Repository
	authorizer       Authorizer
	logger           logger.Interface
}

func NewGetSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	productRepo product.Repository,
	paymentRepo payment.Repository,
	authorizer Authorizer,
	logger logger.Interface,
) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
		paymentRepo:      paymentRepo,
		authorizer:       authorizer,
		logger:           logger,
	}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, cmd GetSubscriptionCommand) (*SubscriptionView, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("Subscription not found")
	}

	allowed, err := uc.authorizer.Authorize(ctx, cmd.Actor, authorization.ActionView, subscriptionResource(sub.ID(), sub.UserID()))
	if err != nil {
		return nil, fmt.Errorf("failed to authorize view: %w", err)
	}
	if !allowed {
		return nil, apperrors.NewForbiddenError("Unauthorized access to subscription")
	}

	return loadView(ctx, uc.productRepo, uc.paymentRepo, sub, nil)
}

func loadView(
	ctx context.Context,
	productRepo product.Repository,
	paymentRepo payment.Repository,
	sub *subscription.Subscription,
	cache map[uint]*product.Product,
) (*SubscriptionView, error) {
	prod, ok := cache[sub.ProductID()]
	if !ok {
		var err error
		prod, err = productRepo.GetByIDWithDeleted(ctx, sub.ProductID())
		if err != nil {
			return nil, fmt.Errorf("failed to get product: %w", err)
		}
		if cache != nil {
			cache[sub.ProductID()] = prod
		}
	}

	payments, err := paymentRepo.ListBySubscriptionID(ctx, sub.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return &SubscriptionView{
		Subscription: sub,
		Product:      prod,
		Payments:     payments,
	}, nil
}
