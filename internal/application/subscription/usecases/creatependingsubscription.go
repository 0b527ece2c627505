package usecases

import (
	"context"
	"fmt"

	"subcommerce/internal/domain/product"
	"subcommerce/internal/domain/subscription"
	"subcommerce/internal/shared/biztime"
	apperrors "subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
)

type CreatePendingSubscriptionCommand struct {
	UserID    uint
	ProductID uint
}

// CreatePendingSubscriptionUseCase opens a subscription awaiting payment.
type CreatePendingSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	productRepo      product.Repository
	txMgr            TransactionManager
	logger           logger.Interface
}

func NewCreatePendingSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	productRepo product.Repository,
	txMgr TransactionManager,
	logger logger.Interface,
) *CreatePendingSubscriptionUseCase {
	return &CreatePendingSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
		txMgr:            txMgr,
		logger:           logger,
	}
}

func (uc *CreatePendingSubscriptionUseCase) Execute(ctx context.Context, cmd CreatePendingSubscriptionCommand) (*subscription.Subscription, error) {
	var created *subscription.Subscription

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		prod, err := uc.productRepo.GetByID(txCtx, cmd.ProductID)
		if err != nil {
			return fmt.Errorf("failed to get product: %w", err)
		}
		if prod == nil {
			return apperrors.NewNotFoundError("Product not found")
		}

		hasActive, err := uc.subscriptionRepo.HasActiveForProduct(txCtx, cmd.UserID, cmd.ProductID, biztime.NowUTC())
		if err != nil {
			return fmt.Errorf("failed to check active subscriptions: %w", err)
		}
		if hasActive {
			return apperrors.NewDuplicateActiveSubscriptionError()
		}

		sub, err := subscription.NewPendingSubscription(cmd.UserID, cmd.ProductID)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := uc.subscriptionRepo.Create(txCtx, sub); err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}
		created = sub
		return nil
	})
	if err != nil {
		if !apperrors.IsAppError(err) {
			uc.logger.Errorw("failed to create pending subscription",
				"user_id", cmd.UserID,
				"product_id", cmd.ProductID,
				"error", err,
			)
		}
		return nil, err
	}

	uc.logger.Infow("pending subscription created",
		"subscription_id", created.ID(),
		"user_id", cmd.UserID,
		"product_id", cmd.ProductID,
	)
	return created, nil
}
