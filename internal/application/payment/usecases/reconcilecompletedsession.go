package usecases

import (
	"context"
	"fmt"

	"subcommerce/internal/application/payment/paymentgateway"
	"subcommerce/internal/domain/payment"
	"subcommerce/internal/domain/product"
	"subcommerce/internal/domain/subscription"
	"subcommerce/internal/domain/user"
	"subcommerce/internal/shared/biztime"
	apperrors "subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/goroutine"
	"subcommerce/internal/shared/logger"
)

type ReconcileCompletedSessionCommand struct {
	SessionID            string
	PaymentIntentID      string
	RemoteSubscriptionID string
}

// ReconcileCompletedSessionUseCase marks the payment behind a completed
// checkout session paid and activates its subscription in one transaction.
type ReconcileCompletedSessionUseCase struct {
	paymentRepo      payment.Repository
	subscriptionRepo subscription.Repository
	productRepo      product.Repository
	userRepo         user.Repository
	gateway          paymentgateway.CheckoutGateway
	txMgr            TransactionManager
	notifier         SubscriptionNotifier
	logger           logger.Interface
}

func NewReconcileCompletedSessionUseCase(
	paymentRepo payment.Repository,
	subscriptionRepo subscription.Repository,
	productRepo product.Repository,
	userRepo user.Repository,
	gateway paymentgateway.CheckoutGateway,
	txMgr TransactionManager,
	logger logger.Interface,
) *ReconcileCompletedSessionUseCase {
	return &ReconcileCompletedSessionUseCase{
		paymentRepo:      paymentRepo,
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
		userRepo:         userRepo,
		gateway:          gateway,
		txMgr:            txMgr,
		logger:           logger,
	}
}

// SetNotifier enables the activation mail. Nil disables it.
func (uc *ReconcileCompletedSessionUseCase) SetNotifier(n SubscriptionNotifier) {
	uc.notifier = n
}

func (uc *ReconcileCompletedSessionUseCase) Execute(ctx context.Context, cmd ReconcileCompletedSessionCommand) error {
	pay, err := uc.paymentRepo.GetBySessionID(ctx, cmd.SessionID)
	if err != nil {
		return apperrors.NewReconciliationFailedError(fmt.Errorf("failed to get payment: %w", err))
	}
	if pay == nil {
		uc.logger.Warnw("payment not found for completed session", "session_id", cmd.SessionID)
		return nil
	}
	if pay.IsPaid() {
		uc.logger.Infow("payment already processed", "payment_id", pay.ID(), "session_id", cmd.SessionID)
		return nil
	}

	paymentIntentID := cmd.PaymentIntentID
	remoteSubscriptionID := cmd.RemoteSubscriptionID
	if paymentIntentID == "" {
		session, err := uc.gateway.RetrieveSession(ctx, cmd.SessionID)
		if err != nil {
			uc.logger.Errorw("failed to retrieve checkout session", "session_id", cmd.SessionID, "error", err)
			return apperrors.NewReconciliationFailedError(err)
		}
		if !session.Settled() {
			uc.logger.Warnw("checkout session not paid, leaving payment unpaid",
				"session_id", cmd.SessionID,
				"payment_id", pay.ID(),
				"payment_status", session.PaymentStatus,
			)
			return nil
		}
		paymentIntentID = session.PaymentIntentID
		if remoteSubscriptionID == "" {
			remoteSubscriptionID = session.SubscriptionID
		}
	}

	var (
		activated *subscription.Subscription
		paid      *payment.Payment
		prod      *product.Product
	)
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		locked, err := uc.paymentRepo.GetBySessionIDForUpdate(txCtx, cmd.SessionID)
		if err != nil {
			return fmt.Errorf("failed to lock payment: %w", err)
		}
		if locked == nil {
			return payment.ErrPaymentNotFound
		}
		if locked.IsPaid() {
			// a concurrent delivery won the race
			return nil
		}

		sub, err := uc.subscriptionRepo.GetByIDForUpdate(txCtx, locked.SubscriptionID())
		if err != nil {
			return fmt.Errorf("failed to lock subscription: %w", err)
		}
		if sub == nil {
			uc.logger.Warnw("subscription missing or deleted, leaving payment unpaid",
				"session_id", cmd.SessionID,
				"payment_id", locked.ID(),
				"subscription_id", locked.SubscriptionID(),
			)
			return nil
		}

		if err := locked.MarkAsPaid(paymentIntentID); err != nil {
			return err
		}
		if err := uc.paymentRepo.Update(txCtx, locked); err != nil {
			return fmt.Errorf("failed to update payment: %w", err)
		}

		p, err := uc.productRepo.GetByIDWithDeleted(txCtx, sub.ProductID())
		if err != nil {
			return fmt.Errorf("failed to get product: %w", err)
		}
		durationDays := 0
		if p != nil {
			durationDays = p.DurationDays()
		}

		if err := sub.Activate(biztime.NowUTC(), durationDays, remoteSubscriptionID); err != nil {
			return err
		}
		if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}

		activated, paid, prod = sub, locked, p
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to reconcile completed session",
			"session_id", cmd.SessionID,
			"payment_id", pay.ID(),
			"error", err,
		)
		return apperrors.NewReconciliationFailedError(err)
	}

	if activated == nil {
		return nil
	}

	uc.logger.Infow("subscription activated",
		"subscription_id", activated.ID(),
		"payment_id", paid.ID(),
		"session_id", cmd.SessionID,
		"expires_at", activated.ExpiresAt(),
	)

	uc.notifyActivated(ctx, activated, paid, prod)
	return nil
}

func (uc *ReconcileCompletedSessionUseCase) notifyActivated(ctx context.Context, sub *subscription.Subscription, pay *payment.Payment, prod *product.Product) {
	if uc.notifier == nil || uc.userRepo == nil {
		return
	}

	owner, err := uc.userRepo.GetByID(ctx, sub.UserID())
	if err != nil || owner == nil {
		uc.logger.Warnw("skipping activation mail, user lookup failed", "subscription_id", sub.ID(), "error", err)
		return
	}

	n := SubscriptionActivatedNotification{
		SubscriptionID: sub.ID(),
		UserName:       owner.Name(),
		UserEmail:      owner.Email(),
		Amount:         pay.Amount().Decimal(),
		Currency:       pay.Amount().Currency(),
	}
	if prod != nil {
		n.ProductTitle = prod.Title()
	}
	if sub.ExpiresAt() != nil {
		n.ExpiresAt = *sub.ExpiresAt()
	}

	notifyCtx := context.WithoutCancel(ctx)
	goroutine.Go(uc.logger.With("subscription_id", n.SubscriptionID), "subscription-activated-mail", func() error {
		return uc.notifier.NotifySubscriptionActivated(notifyCtx, n)
	})
}
