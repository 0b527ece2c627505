package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"subcommerce/internal/application/payment/paymentgateway"
	subusecases "subcommerce/internal/application/subscription/usecases"
	vo "subcommerce/internal/domain/payment/valueobjects"
	subvo "subcommerce/internal/domain/subscription/valueobjects"
	"subcommerce/internal/shared/biztime"
	apperrors "subcommerce/internal/shared/errors"
)

// TestPurchaseLifecycle walks a subscription from creation through checkout,
// webhook reconciliation, renewal and expiry.
func TestPurchaseLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.seedUser(t)
	p := e.seedProduct(t, 1999, 30)

	create := subusecases.NewCreatePendingSubscriptionUseCase(e.subscriptions, e.products, e.txMgr, e.log)
	sub, err := create.Execute(ctx, subusecases.CreatePendingSubscriptionCommand{UserID: u.ID(), ProductID: p.ID()})
	require.NoError(t, err)
	assert.Equal(t, subvo.StatusPending, sub.Status())

	e.gateway.On("CreateSession", mock.Anything, mock.Anything).
		Return(&paymentgateway.Session{ID: "cs_life", URL: "https://checkout.stripe.com/c/pay/cs_life"}, nil).Once()
	checkout, err := e.checkout().Execute(ctx, InitiateCheckoutCommand{SubscriptionID: sub.ID(), Actor: actorFor(u.ID())})
	require.NoError(t, err)

	dispatcher := NewDispatchWebhookEventUseCase(
		e.completedSession(),
		e.recurringInvoice(),
		NewReconcileRemoteStatusChangeUseCase(e.subscriptions, e.txMgr, e.log),
		NewReconcileRemoteCancellationUseCase(e.subscriptions, e.txMgr, e.log),
		NewReconcilePaymentFailureUseCase(e.payments, e.log),
		e.log,
	)

	before := biztime.NowUTC()
	_, err = dispatcher.Execute(ctx, paymentgateway.CheckoutSessionCompleted{
		EventMeta:            paymentgateway.EventMeta{ID: "evt_1", Type: paymentgateway.EventTypeCheckoutSessionCompleted},
		SessionID:            "cs_life",
		PaymentIntentID:      "pi_life",
		RemoteSubscriptionID: "sub_life",
	})
	require.NoError(t, err)

	activated := e.reloadSubscription(t, sub.ID())
	assert.Equal(t, subvo.StatusActive, activated.Status())
	approxDays(t, before, activated.ExpiresAt(), 30)
	assert.Equal(t, vo.PaymentStatusPaid, e.reloadPayment(t, checkout.PaymentID).Status())

	_, err = create.Execute(ctx, subusecases.CreatePendingSubscriptionCommand{UserID: u.ID(), ProductID: p.ID()})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeDuplicateActiveSubscription))

	_, err = dispatcher.Execute(ctx, paymentgateway.InvoicePaymentSucceeded{
		EventMeta:            paymentgateway.EventMeta{ID: "evt_2", Type: paymentgateway.EventTypeInvoicePaymentSucceeded},
		InvoiceID:            "in_life",
		RemoteSubscriptionID: "sub_life",
		AmountPaidMinor:      1999,
		Currency:             "usd",
	})
	require.NoError(t, err)
	approxDays(t, *activated.ExpiresAt(), e.reloadSubscription(t, sub.ID()).ExpiresAt(), 30)

	_, err = dispatcher.Execute(ctx, paymentgateway.SubscriptionUpdated{
		EventMeta:            paymentgateway.EventMeta{ID: "evt_3", Type: paymentgateway.EventTypeSubscriptionUpdated},
		RemoteSubscriptionID: "sub_life",
		RemoteStatus:         "past_due",
	})
	require.NoError(t, err)
	assert.Equal(t, subvo.StatusActive, e.reloadSubscription(t, sub.ID()).Status())

	_, err = dispatcher.Execute(ctx, paymentgateway.SubscriptionDeleted{
		EventMeta:            paymentgateway.EventMeta{ID: "evt_4", Type: paymentgateway.EventTypeSubscriptionDeleted},
		RemoteSubscriptionID: "sub_life",
	})
	require.NoError(t, err)
	assert.Equal(t, subvo.StatusCancelled, e.reloadSubscription(t, sub.ID()).Status())

	count, err := subusecases.NewExpireSubscriptionsUseCase(e.subscriptions, e.log).Execute(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "cancelled subscriptions are not swept")
}
