package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subcommerce/internal/domain/subscription"
	vo "subcommerce/internal/domain/subscription/valueobjects"
)

// activeRemote returns a subscription activated through a completed checkout
// and linked to remoteID.
func activeRemote(t *testing.T, e *env, remoteID string) *subscription.Subscription {
	t.Helper()
	_, sub, _ := e.seedCheckout(t, "cs_"+remoteID)
	require.NoError(t, e.completedSession().Execute(context.Background(), ReconcileCompletedSessionCommand{
		SessionID:            "cs_" + remoteID,
		PaymentIntentID:      "pi_" + remoteID,
		RemoteSubscriptionID: remoteID,
	}))
	return e.reloadSubscription(t, sub.ID())
}

func TestReconcileRecurringInvoice_ExtendsAndRecords(t *testing.T) {
	e := newEnv(t)
	sub := activeRemote(t, e, "sub_r1")
	previous := *sub.ExpiresAt()

	err := e.recurringInvoice().Execute(context.Background(), ReconcileRecurringInvoiceCommand{
		InvoiceID:            "in_1",
		RemoteSubscriptionID: "sub_r1",
		AmountPaidMinor:      9999,
		Currency:             "usd",
		PaymentIntentID:      "pi_renew",
	})
	require.NoError(t, err)

	renewed := e.reloadSubscription(t, sub.ID())
	approxDays(t, previous, renewed.ExpiresAt(), 30)

	pay, err := e.payments.GetByInvoiceID(context.Background(), "in_1")
	require.NoError(t, err)
	require.NotNil(t, pay)
	assert.True(t, pay.IsPaid())
	assert.Equal(t, "99.99", pay.Amount().Decimal())
	assert.Equal(t, sub.ID(), pay.SubscriptionID())
}

func TestReconcileRecurringInvoice_RedeliveryDoesNotExtendTwice(t *testing.T) {
	e := newEnv(t)
	sub := activeRemote(t, e, "sub_r1")
	cmd := ReconcileRecurringInvoiceCommand{InvoiceID: "in_1", RemoteSubscriptionID: "sub_r1", AmountPaidMinor: 999, Currency: "usd"}

	require.NoError(t, e.recurringInvoice().Execute(context.Background(), cmd))
	once := *e.reloadSubscription(t, sub.ID()).ExpiresAt()

	require.NoError(t, e.recurringInvoice().Execute(context.Background(), cmd))
	assert.True(t, once.Equal(*e.reloadSubscription(t, sub.ID()).ExpiresAt()))

	payments, err := e.payments.ListBySubscriptionID(context.Background(), sub.ID())
	require.NoError(t, err)
	assert.Len(t, payments, 2, "checkout payment plus one renewal")
}

func TestReconcileRecurringInvoice_IgnoresUnknownOrMissingSubscription(t *testing.T) {
	e := newEnv(t)

	assert.NoError(t, e.recurringInvoice().Execute(context.Background(), ReconcileRecurringInvoiceCommand{InvoiceID: "in_1"}))
	assert.NoError(t, e.recurringInvoice().Execute(context.Background(), ReconcileRecurringInvoiceCommand{
		InvoiceID:            "in_2",
		RemoteSubscriptionID: "sub_unknown",
		AmountPaidMinor:      100,
	}))

	pay, err := e.payments.GetByInvoiceID(context.Background(), "in_2")
	require.NoError(t, err)
	assert.Nil(t, pay)
}

func TestReconcileRecurringInvoice_AfterSweepKeepsExpiredStatus(t *testing.T) {
	e := newEnv(t)
	sub := activeRemote(t, e, "sub_r1")
	previous := *sub.ExpiresAt()

	n, err := e.subscriptions.ExpireDue(context.Background(), previous.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	require.NoError(t, e.recurringInvoice().Execute(context.Background(), ReconcileRecurringInvoiceCommand{
		InvoiceID:            "in_late",
		RemoteSubscriptionID: "sub_r1",
		AmountPaidMinor:      999,
		Currency:             "usd",
	}))

	after := e.reloadSubscription(t, sub.ID())
	assert.Equal(t, vo.StatusExpired, after.Status())
	approxDays(t, previous, after.ExpiresAt(), 30)
}
