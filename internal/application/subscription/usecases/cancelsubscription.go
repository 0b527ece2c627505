package usecases

import (
	"context"
	"fmt"

	"subcommerce/internal/domain/authorization"
	"subcommerce/internal/domain/subscription"
	apperrors "subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
)

type CancelSubscriptionCommand struct {
	SubscriptionID uint
	Actor          authorization.Actor
}

// CancelSubscriptionUseCase cancels a subscription locally. Cancelling twice
// is allowed and leaves the record cancelled.
type CancelSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	authorizer       Authorizer
	txMgr            TransactionManager
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	authorizer Authorizer,
	txMgr TransactionManager,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		authorizer:       authorizer,
		txMgr:            txMgr,
		logger:           logger,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) (*subscription.Subscription, error) {
	var cancelled *subscription.Subscription

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		sub, err := uc.subscriptionRepo.GetByIDForUpdate(txCtx, cmd.SubscriptionID)
		if err != nil {
			return fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil {
			return apperrors.NewNotFoundError("Subscription not found")
		}

		allowed, err := uc.authorizer.Authorize(txCtx, cmd.Actor, authorization.ActionCancel, subscriptionResource(sub.ID(), sub.UserID()))
		if err != nil {
			return fmt.Errorf("failed to authorize cancel: %w", err)
		}
		if !allowed {
			return apperrors.NewForbiddenError("Unauthorized access to subscription")
		}

		sub.Cancel()
		if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}
		cancelled = sub
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("subscription cancelled", "subscription_id", cancelled.ID(), "actor_id", cmd.Actor.UserID)
	return cancelled, nil
}
