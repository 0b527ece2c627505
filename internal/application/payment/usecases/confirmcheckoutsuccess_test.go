package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"subcommerce/internal/application/payment/paymentgateway"
	subvo "subcommerce/internal/domain/subscription/valueobjects"
	apperrors "subcommerce/internal/shared/errors"
)

func TestConfirmCheckoutSuccess_ReconcilesWhenWebhookIsLate(t *testing.T) {
	e := newEnv(t)
	_, sub, _ := e.seedCheckout(t, "cs_1")
	e.gateway.On("RetrieveSession", mock.Anything, "cs_1").
		Return(&paymentgateway.Session{ID: "cs_1", PaymentIntentID: "pi_1", PaymentStatus: "paid"}, nil)

	uc := NewConfirmCheckoutSuccessUseCase(e.payments, e.subscriptions, e.products, e.completedSession(), e.log)
	res, err := uc.Execute(context.Background(), "cs_1")
	require.NoError(t, err)

	assert.True(t, res.Payment.IsPaid())
	require.NotNil(t, res.Subscription)
	assert.Equal(t, sub.ID(), res.Subscription.ID())
	assert.Equal(t, subvo.StatusActive, res.Subscription.Status())
	require.NotNil(t, res.Product)
	assert.Equal(t, "Pro Plan", res.Product.Title())
}

func TestConfirmCheckoutSuccess_UnpaidSessionDoesNotActivate(t *testing.T) {
	e := newEnv(t)
	_, sub, _ := e.seedCheckout(t, "cs_unpaid")
	e.gateway.On("RetrieveSession", mock.Anything, "cs_unpaid").
		Return(&paymentgateway.Session{ID: "cs_unpaid", PaymentStatus: paymentgateway.PaymentStatusUnpaid}, nil)

	uc := NewConfirmCheckoutSuccessUseCase(e.payments, e.subscriptions, e.products, e.completedSession(), e.log)
	res, err := uc.Execute(context.Background(), "cs_unpaid")
	require.NoError(t, err)

	assert.False(t, res.Payment.IsPaid())
	require.NotNil(t, res.Subscription)
	assert.Equal(t, sub.ID(), res.Subscription.ID())
	assert.Equal(t, subvo.StatusPending, res.Subscription.Status())
}

func TestConfirmCheckoutSuccess_Errors(t *testing.T) {
	e := newEnv(t)
	uc := NewConfirmCheckoutSuccessUseCase(e.payments, e.subscriptions, e.products, e.completedSession(), e.log)

	_, err := uc.Execute(context.Background(), "")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeBadRequest))

	_, err = uc.Execute(context.Background(), "cs_unknown")
	assert.True(t, apperrors.IsNotFoundError(err))
}
