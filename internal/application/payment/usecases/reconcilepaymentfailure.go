package usecases

import (
	"context"
	"errors"
	"fmt"

	"subcommerce/internal/domain/payment"
	apperrors "subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
)

type ReconcilePaymentFailureUseCase struct {
	paymentRepo payment.Repository
	logger      logger.Interface
}

func NewReconcilePaymentFailureUseCase(paymentRepo payment.Repository, logger logger.Interface) *ReconcilePaymentFailureUseCase {
	return &ReconcilePaymentFailureUseCase{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

func (uc *ReconcilePaymentFailureUseCase) Execute(ctx context.Context, paymentIntentID, reason string) error {
	if paymentIntentID == "" {
		return nil
	}

	pay, err := uc.paymentRepo.GetByPaymentIntentID(ctx, paymentIntentID)
	if err != nil {
		return apperrors.NewReconciliationFailedError(fmt.Errorf("failed to get payment: %w", err))
	}
	if pay == nil {
		uc.logger.Warnw("payment not found for failed intent", "payment_intent_id", paymentIntentID)
		return nil
	}

	if err := pay.MarkAsFailed(reason); err != nil {
		if errors.Is(err, payment.ErrInvalidStatusTransition) {
			// a late failure notice must not undo a settled payment
			uc.logger.Warnw("ignoring failure for settled payment",
				"payment_id", pay.ID(),
				"status", pay.Status(),
			)
			return nil
		}
		return apperrors.NewReconciliationFailedError(err)
	}

	if err := uc.paymentRepo.Update(ctx, pay); err != nil {
		uc.logger.Errorw("failed to mark payment failed", "payment_id", pay.ID(), "error", err)
		return apperrors.NewReconciliationFailedError(err)
	}

	uc.logger.Infow("payment marked failed", "payment_id", pay.ID(), "payment_intent_id", paymentIntentID)
	return nil
}
