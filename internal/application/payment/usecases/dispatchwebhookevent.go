package usecases

import (
	"context"

	"subcommerce/internal/application/payment/paymentgateway"
	"subcommerce/internal/shared/logger"
)

type completedSessionReconciler interface {
	Execute(ctx context.Context, cmd ReconcileCompletedSessionCommand) error
}

type recurringInvoiceReconciler interface {
	Execute(ctx context.Context, cmd ReconcileRecurringInvoiceCommand) error
}

type remoteStatusReconciler interface {
	Execute(ctx context.Context, remoteSubscriptionID, remoteStatus string) error
}

type remoteCancellationReconciler interface {
	Execute(ctx context.Context, remoteSubscriptionID string) error
}

type paymentFailureReconciler interface {
	Execute(ctx context.Context, paymentIntentID, reason string) error
}

type DispatchResult struct {
	EventType string `json:"event_type"`
	EventID   string `json:"event_id"`
	Processed bool   `json:"processed"`
}

// DispatchWebhookEventUseCase routes a verified event to its reconciler.
type DispatchWebhookEventUseCase struct {
	completedSession   completedSessionReconciler
	recurringInvoice   recurringInvoiceReconciler
	remoteStatus       remoteStatusReconciler
	remoteCancellation remoteCancellationReconciler
	paymentFailure     paymentFailureReconciler
	logger             logger.Interface
}

func NewDispatchWebhookEventUseCase(
	completedSession completedSessionReconciler,
	recurringInvoice recurringInvoiceReconciler,
	remoteStatus remoteStatusReconciler,
	remoteCancellation remoteCancellationReconciler,
	paymentFailure paymentFailureReconciler,
	logger logger.Interface,
) *DispatchWebhookEventUseCase {
	return &DispatchWebhookEventUseCase{
		completedSession:   completedSession,
		recurringInvoice:   recurringInvoice,
		remoteStatus:       remoteStatus,
		remoteCancellation: remoteCancellation,
		paymentFailure:     paymentFailure,
		logger:             logger,
	}
}

func (uc *DispatchWebhookEventUseCase) Execute(ctx context.Context, event paymentgateway.Event) (*DispatchResult, error) {
	uc.logger.Infow("dispatching webhook event", "event_id", event.EventID(), "event_type", event.EventType())

	var err error
	switch e := event.(type) {
	case paymentgateway.CheckoutSessionCompleted:
		err = uc.completedSession.Execute(ctx, ReconcileCompletedSessionCommand{
			SessionID:            e.SessionID,
			PaymentIntentID:      e.PaymentIntentID,
			RemoteSubscriptionID: e.RemoteSubscriptionID,
		})
	case paymentgateway.InvoicePaymentSucceeded:
		err = uc.recurringInvoice.Execute(ctx, ReconcileRecurringInvoiceCommand{
			InvoiceID:            e.InvoiceID,
			RemoteSubscriptionID: e.RemoteSubscriptionID,
			AmountPaidMinor:      e.AmountPaidMinor,
			Currency:             e.Currency,
			PaymentIntentID:      e.PaymentIntentID,
		})
	case paymentgateway.SubscriptionUpdated:
		err = uc.remoteStatus.Execute(ctx, e.RemoteSubscriptionID, e.RemoteStatus)
	case paymentgateway.SubscriptionDeleted:
		err = uc.remoteCancellation.Execute(ctx, e.RemoteSubscriptionID)
	case paymentgateway.PaymentIntentFailed:
		err = uc.paymentFailure.Execute(ctx, e.PaymentIntentID, e.FailureMessage)
	case paymentgateway.Unhandled:
		uc.logger.Infow("unhandled webhook event type", "event_id", e.ID, "event_type", e.Type)
	default:
		uc.logger.Warnw("unknown webhook event variant", "event_id", event.EventID(), "event_type", event.EventType())
	}
	if err != nil {
		return nil, err
	}

	return &DispatchResult{
		EventType: event.EventType(),
		EventID:   event.EventID(),
		Processed: true,
	}, nil
}
