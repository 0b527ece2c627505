package usecases

import (
	"context"
	"fmt"

	"subcommerce/internal/domain/subscription"
	vo "subcommerce/internal/domain/subscription/valueobjects"
	apperrors "subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
)

// ReconcileRemoteStatusChangeUseCase mirrors the processor's view of a
// subscription onto the local record.
type ReconcileRemoteStatusChangeUseCase struct {
	subscriptionRepo subscription.Repository
	txMgr            TransactionManager
	logger           logger.Interface
}

func NewReconcileRemoteStatusChangeUseCase(
	subscriptionRepo subscription.Repository,
	txMgr TransactionManager,
	logger logger.Interface,
) *ReconcileRemoteStatusChangeUseCase {
	return &ReconcileRemoteStatusChangeUseCase{
		subscriptionRepo: subscriptionRepo,
		txMgr:            txMgr,
		logger:           logger,
	}
}

func (uc *ReconcileRemoteStatusChangeUseCase) Execute(ctx context.Context, remoteSubscriptionID, remoteStatus string) error {
	local := vo.MapRemoteStatus(remoteStatus)
	return applyRemoteStatus(ctx, uc.subscriptionRepo, uc.txMgr, uc.logger, remoteSubscriptionID, local, remoteStatus)
}

// ReconcileRemoteCancellationUseCase cancels the local subscription when the
// processor deletes its counterpart.
type ReconcileRemoteCancellationUseCase struct {
	subscriptionRepo subscription.Repository
	txMgr            TransactionManager
	logger           logger.Interface
}

func NewReconcileRemoteCancellationUseCase(
	subscriptionRepo subscription.Repository,
	txMgr TransactionManager,
	logger logger.Interface,
) *ReconcileRemoteCancellationUseCase {
	return &ReconcileRemoteCancellationUseCase{
		subscriptionRepo: subscriptionRepo,
		txMgr:            txMgr,
		logger:           logger,
	}
}

func (uc *ReconcileRemoteCancellationUseCase) Execute(ctx context.Context, remoteSubscriptionID string) error {
	return applyRemoteStatus(ctx, uc.subscriptionRepo, uc.txMgr, uc.logger, remoteSubscriptionID, vo.StatusCancelled, "deleted")
}

func applyRemoteStatus(
	ctx context.Context,
	repo subscription.Repository,
	txMgr TransactionManager,
	log logger.Interface,
	remoteSubscriptionID string,
	status vo.SubscriptionStatus,
	remoteStatus string,
) error {
	if remoteSubscriptionID == "" {
		return nil
	}

	err := txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		sub, err := repo.GetByStripeSubscriptionIDForUpdate(txCtx, remoteSubscriptionID)
		if err != nil {
			return fmt.Errorf("failed to lock subscription: %w", err)
		}
		if sub == nil {
			log.Warnw("no subscription for remote id", "remote_subscription_id", remoteSubscriptionID)
			return nil
		}

		previous := sub.Status()
		if err := sub.ApplyRemoteStatus(status); err != nil {
			return err
		}
		if err := repo.Update(txCtx, sub); err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}

		log.Infow("subscription status synced",
			"subscription_id", sub.ID(),
			"remote_status", remoteStatus,
			"from", previous,
			"to", status,
		)
		return nil
	})
	if err != nil {
		log.Errorw("failed to sync subscription status",
			"remote_subscription_id", remoteSubscriptionID,
			"error", err,
		)
		return apperrors.NewReconciliationFailedError(err)
	}
	return nil
}
