package payment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "subcommerce/internal/domain/payment/valueobjects"
	"subcommerce/internal/domain/shared/money"
)

func newUnpaid(t *testing.T) *Payment {
	t.Helper()
	p, err := NewPayment(1, 2, money.NewMoney(9999, "usd"))
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	p := newUnpaid(t)

	assert.Equal(t, vo.PaymentStatusUnpaid, p.Status())
	assert.True(t, strings.HasPrefix(p.TransactionID(), "TXN-"))
	assert.Len(t, p.TransactionID(), 20)
	assert.Nil(t, p.PaidAt())
	assert.Nil(t, p.StripeSessionID())
	assert.NotNil(t, p.Metadata())
}

func TestNewPayment_InvalidInput(t *testing.T) {
	_, err := NewPayment(0, 1, money.NewMoney(100, "usd"))
	assert.Error(t, err)

	_, err = NewPayment(1, 0, money.NewMoney(100, "usd"))
	assert.Error(t, err)

	_, err = NewPayment(1, 1, money.NewMoney(-1, "usd"))
	assert.Error(t, err)
}

func TestMarkAsPaid_IsIdempotent(t *testing.T) {
	p := newUnpaid(t)

	require.NoError(t, p.MarkAsPaid("pi_1"))
	firstPaidAt := *p.PaidAt()

	time.Sleep(time.Millisecond)
	require.NoError(t, p.MarkAsPaid("pi_2"))

	assert.Equal(t, vo.PaymentStatusPaid, p.Status())
	assert.Equal(t, "pi_1", *p.StripePaymentIntentID())
	assert.Equal(t, firstPaidAt, *p.PaidAt())
}

func TestMarkAsPaid_FromFailed(t *testing.T) {
	p := newUnpaid(t)
	require.NoError(t, p.MarkAsFailed("card_declined"))

	require.NoError(t, p.MarkAsPaid("pi_1"))
	assert.True(t, p.IsPaid())
}

func TestMarkAsFailed(t *testing.T) {
	p := newUnpaid(t)
	require.NoError(t, p.MarkAsFailed("card_declined"))
	assert.Equal(t, vo.PaymentStatusFailed, p.Status())
	assert.Equal(t, "card_declined", p.Metadata()[MetadataFailureReason])

	paid := newUnpaid(t)
	require.NoError(t, paid.MarkAsPaid("pi_1"))
	assert.ErrorIs(t, paid.MarkAsFailed("late"), ErrInvalidStatusTransition)
}

func TestMarkAsRefunded(t *testing.T) {
	p := newUnpaid(t)
	assert.ErrorIs(t, p.MarkAsRefunded(), ErrInvalidStatusTransition)

	require.NoError(t, p.MarkAsPaid("pi_1"))
	require.NoError(t, p.MarkAsRefunded())
	assert.Equal(t, vo.PaymentStatusRefunded, p.Status())

	assert.ErrorIs(t, p.MarkAsPaid("pi_1"), ErrInvalidStatusTransition)
}

func TestAttachSession(t *testing.T) {
	p := newUnpaid(t)
	require.NoError(t, p.AttachSession("cs_test_1"))
	require.NoError(t, p.AttachSession("cs_test_1"))
	assert.ErrorIs(t, p.AttachSession("cs_test_2"), ErrSessionAlreadyAttached)
	assert.Error(t, newUnpaid(t).AttachSession(""))
}

func TestNewRecurringPayment(t *testing.T) {
	p, err := NewRecurringPayment(1, 2, money.NewMoney(9999, "usd"), "in_1", "pi_9")
	require.NoError(t, err)

	assert.True(t, p.IsPaid())
	assert.NotNil(t, p.PaidAt())
	assert.Equal(t, "99.99", p.Amount().Decimal())
	assert.Equal(t, "in_1", p.Metadata()[MetadataInvoiceID])
	assert.Equal(t, "in_1", *p.StripeInvoiceID())
	assert.Equal(t, MetadataTypeRecurring, p.Metadata()[MetadataType])
}
