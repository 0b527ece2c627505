package usecases

import (
	"context"
	"fmt"

	"subcommerce/internal/domain/payment"
	"subcommerce/internal/domain/subscription"
	"subcommerce/internal/shared/logger"
)

type SubscriptionStatistics struct {
	TotalSubscriptions   int64
	ActiveSubscriptions  int64
	ExpiredSubscriptions int64
	// TotalSpentMinor sums paid payments in minor units.
	TotalSpentMinor int64
	PendingPayments int64
}

type GetSubscriptionStatisticsUseCase struct {
	subscriptionRepo subscription.Repository
	paymentRepo      payment.Repository
	logger           logger.Interface
}

func NewGetSubscriptionStatisticsUseCase(
	subscriptionRepo subscription.Repository,
	paymentRepo payment.Repository,
	logger logger.Interface,
) *GetSubscriptionStatisticsUseCase {
	return &GetSubscriptionStatisticsUseCase{
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		logger:           logger,
	}
}

func (uc *GetSubscriptionStatisticsUseCase) Execute(ctx context.Context, userID uint) (*SubscriptionStatistics, error) {
	total, active, expired, err := uc.subscriptionRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	spent, err := uc.paymentRepo.SumPaidByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}

	pending, err := uc.paymentRepo.CountUnpaidByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending payments: %w", err)
	}

	return &SubscriptionStatistics{
		TotalSubscriptions:   total,
		ActiveSubscriptions:  active,
		ExpiredSubscriptions: expired,
		TotalSpentMinor:      spent,
		PendingPayments:      pending,
	}, nil
}
