package usecases

import (
	"context"
	"fmt"

	"subcommerce/internal/domain/payment"
	"subcommerce/internal/domain/product"
	"subcommerce/internal/domain/shared/money"
	"subcommerce/internal/domain/subscription"
	"subcommerce/internal/shared/biztime"
	apperrors "subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
)

type ReconcileRecurringInvoiceCommand struct {
	InvoiceID            string
	RemoteSubscriptionID string
	AmountPaidMinor      int64
	Currency             string
	PaymentIntentID      string
}

// ReconcileRecurringInvoiceUseCase records a renewal payment and pushes the
// subscription's expiry forward by one period.
type ReconcileRecurringInvoiceUseCase struct {
	paymentRepo      payment.Repository
	subscriptionRepo subscription.Repository
	productRepo      product.Repository
	txMgr            TransactionManager
	logger           logger.Interface
}

func NewReconcileRecurringInvoiceUseCase(
	paymentRepo payment.Repository,
	subscriptionRepo subscription.Repository,
	productRepo product.Repository,
	txMgr TransactionManager,
	logger logger.Interface,
) *ReconcileRecurringInvoiceUseCase {
	return &ReconcileRecurringInvoiceUseCase{
		paymentRepo:      paymentRepo,
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
		txMgr:            txMgr,
		logger:           logger,
	}
}

func (uc *ReconcileRecurringInvoiceUseCase) Execute(ctx context.Context, cmd ReconcileRecurringInvoiceCommand) error {
	if cmd.RemoteSubscriptionID == "" {
		uc.logger.Infow("invoice has no subscription, ignoring", "invoice_id", cmd.InvoiceID)
		return nil
	}

	matched := true
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		sub, err := uc.subscriptionRepo.GetByStripeSubscriptionIDForUpdate(txCtx, cmd.RemoteSubscriptionID)
		if err != nil {
			return fmt.Errorf("failed to lock subscription: %w", err)
		}
		if sub == nil {
			matched = false
			return nil
		}

		if cmd.InvoiceID != "" {
			existing, err := uc.paymentRepo.GetByInvoiceID(txCtx, cmd.InvoiceID)
			if err != nil {
				return fmt.Errorf("failed to check invoice: %w", err)
			}
			if existing != nil {
				uc.logger.Infow("invoice already recorded", "invoice_id", cmd.InvoiceID, "payment_id", existing.ID())
				return nil
			}
		}

		pay, err := payment.NewRecurringPayment(
			sub.ID(),
			sub.UserID(),
			money.NewMoney(cmd.AmountPaidMinor, cmd.Currency),
			cmd.InvoiceID,
			cmd.PaymentIntentID,
		)
		if err != nil {
			return err
		}
		if err := uc.paymentRepo.Create(txCtx, pay); err != nil {
			return fmt.Errorf("failed to create recurring payment: %w", err)
		}

		prod, err := uc.productRepo.GetByIDWithDeleted(txCtx, sub.ProductID())
		if err != nil {
			return fmt.Errorf("failed to get product: %w", err)
		}
		durationDays := 0
		if prod != nil {
			durationDays = prod.DurationDays()
		}

		sub.Extend(biztime.NowUTC(), durationDays)
		if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}

		uc.logger.Infow("subscription renewed",
			"subscription_id", sub.ID(),
			"payment_id", pay.ID(),
			"invoice_id", cmd.InvoiceID,
			"amount", pay.Amount().Decimal(),
			"expires_at", sub.ExpiresAt(),
		)
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to reconcile recurring invoice",
			"invoice_id", cmd.InvoiceID,
			"remote_subscription_id", cmd.RemoteSubscriptionID,
			"error", err,
		)
		return apperrors.NewReconciliationFailedError(err)
	}

	if !matched {
		uc.logger.Warnw("no subscription for invoice", "invoice_id", cmd.InvoiceID, "remote_subscription_id", cmd.RemoteSubscriptionID)
	}
	return nil
}
