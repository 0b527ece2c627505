package usecases

import (
	"context"
	"fmt"

	"subcommerce/internal/domain/subscription"
	"subcommerce/internal/shared/biztime"
	"subcommerce/internal/shared/logger"
)

// ExpireSubscriptionsUseCase moves every active subscription past its expiry
// to expired.
type ExpireSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewExpireSubscriptionsUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *ExpireSubscriptionsUseCase {
	return &ExpireSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ExpireSubscriptionsUseCase) Execute(ctx context.Context) (int64, error) {
	count, err := uc.subscriptionRepo.ExpireDue(ctx, biztime.NowUTC())
	if err != nil {
		uc.logger.Errorw("failed to expire subscriptions", "error", err)
		return 0, fmt.Errorf("failed to expire subscriptions: %w", err)
	}

	if count > 0 {
		uc.logger.Infow("expired subscriptions", "count", count)
	} else {
		uc.logger.Debugw("no subscriptions to expire")
	}
	return count, nil
}
