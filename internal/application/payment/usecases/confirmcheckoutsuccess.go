package usecases

import (
	"context"
	"fmt"

	"subcommerce/internal/domain/payment"
	"subcommerce/internal/domain/product"
	"subcommerce/internal/domain/subscription"
	apperrors "subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
)

type CheckoutSuccessResult struct {
	Payment      *payment.Payment
	Subscription *subscription.Subscription
	Product      *product.Product
}

// ConfirmCheckoutSuccessUseCase backs the browser redirect after checkout. It
// reconciles the session itself when the webhook has not arrived yet.
type ConfirmCheckoutSuccessUseCase struct {
	paymentRepo      payment.Repository
	subscriptionRepo subscription.Repository
	productRepo      product.Repository
	reconciler       completedSessionReconciler
	logger           logger.Interface
}

func NewConfirmCheckoutSuccessUseCase(
	paymentRepo payment.Repository,
	subscriptionRepo subscription.Repository,
	productRepo product.Repository,
	reconciler completedSessionReconciler,
	logger logger.Interface,
) *ConfirmCheckoutSuccessUseCase {
	return &ConfirmCheckoutSuccessUseCase{
		paymentRepo:      paymentRepo,
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
		reconciler:       reconciler,
		logger:           logger,
	}
}

func (uc *ConfirmCheckoutSuccessUseCase) Execute(ctx context.Context, sessionID string) (*CheckoutSuccessResult, error) {
	if sessionID == "" {
		return nil, apperrors.NewBadRequestError("Session ID is required")
	}

	pay, err := uc.paymentRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	if pay == nil {
		return nil, apperrors.NewNotFoundError("Payment not found")
	}

	if !pay.IsPaid() {
		if err := uc.reconciler.Execute(ctx, ReconcileCompletedSessionCommand{SessionID: sessionID}); err != nil {
			return nil, err
		}
		if pay, err = uc.paymentRepo.GetBySessionID(ctx, sessionID); err != nil {
			return nil, fmt.Errorf("failed to reload payment: %w", err)
		}
		if pay == nil {
			return nil, apperrors.NewNotFoundError("Payment not found")
		}
	}

	sub, err := uc.subscriptionRepo.GetByID(ctx, pay.SubscriptionID())
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	result := &CheckoutSuccessResult{Payment: pay, Subscription: sub}
	if sub != nil {
		prod, err := uc.productRepo.GetByIDWithDeleted(ctx, sub.ProductID())
		if err != nil {
			return nil, fmt.Errorf("failed to get product: %w", err)
		}
		result.Product = prod
	}

	uc.logger.Infow("checkout success confirmed", "session_id", sessionID, "payment_id", pay.ID(), "status", pay.Status())
	return result, nil
}
