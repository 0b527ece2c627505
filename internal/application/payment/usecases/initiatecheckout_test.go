package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"subcommerce/internal/application/payment/paymentgateway"
	"subcommerce/internal/domain/authorization"
	"subcommerce/internal/domain/payment"
	vo "subcommerce/internal/domain/payment/valueobjects"
	"subcommerce/internal/shared/biztime"
	apperrors "subcommerce/internal/shared/errors"
)

func TestInitiateCheckoutUseCase_Success(t *testing.T) {
	e := newEnv(t)
	u := e.seedUser(t)
	p := e.seedProduct(t, 2999, 30)
	sub := e.seedPending(t, u.ID(), p.ID())

	e.gateway.On("CreateSession", mock.Anything, mock.MatchedBy(func(req paymentgateway.CreateSessionRequest) bool {
		return req.Currency == "usd" &&
			req.LineItem.UnitAmountMinor == 2999 &&
			req.LineItem.Quantity == 1 &&
			req.CustomerEmail == "jane@example.com" &&
			req.SuccessURL == "http://localhost:8080/api/payment/success?session_id={CHECKOUT_SESSION_ID}"
	})).Return(&paymentgateway.Session{ID: "cs_test_a1", URL: "https://checkout.stripe.com/c/pay/cs_test_a1"}, nil)

	res, err := e.checkout().Execute(context.Background(), InitiateCheckoutCommand{
		SubscriptionID: sub.ID(),
		Actor:          authorization.Actor{UserID: u.ID(), Role: "user"},
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_a1", res.SessionID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_a1", res.SessionURL)

	pay := e.reloadPayment(t, res.PaymentID)
	assert.Equal(t, vo.PaymentStatusUnpaid, pay.Status())
	require.NotNil(t, pay.StripeSessionID())
	assert.Equal(t, "cs_test_a1", *pay.StripeSessionID())
	assert.Equal(t, "29.99", pay.Amount().Decimal())
	assert.Equal(t, "Pro Plan", pay.Metadata()[payment.MetadataProductName])
	e.gateway.AssertExpectations(t)
}

func TestInitiateCheckoutUseCase_NotOwner(t *testing.T) {
	e := newEnv(t)
	u := e.seedUser(t)
	p := e.seedProduct(t, 999, 30)
	sub := e.seedPending(t, u.ID(), p.ID())

	_, err := e.checkout().Execute(context.Background(), InitiateCheckoutCommand{
		SubscriptionID: sub.ID(),
		Actor:          authorization.Actor{UserID: u.ID() + 1, Role: "user"},
	})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeForbidden))
	e.gateway.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestInitiateCheckoutUseCase_AlreadyActive(t *testing.T) {
	e := newEnv(t)
	u := e.seedUser(t)
	p := e.seedProduct(t, 999, 30)
	sub := e.seedPending(t, u.ID(), p.ID())
	require.NoError(t, sub.Activate(biztime.NowUTC(), 30, ""))
	require.NoError(t, e.subscriptions.Update(context.Background(), sub))

	_, err := e.checkout().Execute(context.Background(), InitiateCheckoutCommand{
		SubscriptionID: sub.ID(),
		Actor:          authorization.Actor{UserID: u.ID(), Role: "user"},
	})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeSubscriptionAlreadyActive))
}

func TestInitiateCheckoutUseCase_UnknownSubscription(t *testing.T) {
	e := newEnv(t)

	_, err := e.checkout().Execute(context.Background(), InitiateCheckoutCommand{
		SubscriptionID: 42,
		Actor:          authorization.Actor{UserID: 1, Role: "user"},
	})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestInitiateCheckoutUseCase_GatewayFailure(t *testing.T) {
	e := newEnv(t)
	u := e.seedUser(t)
	p := e.seedProduct(t, 999, 30)
	sub := e.seedPending(t, u.ID(), p.ID())

	e.gateway.On("CreateSession", mock.Anything, mock.Anything).Return(nil, errors.New("stripe unavailable"))

	_, err := e.checkout().Execute(context.Background(), InitiateCheckoutCommand{
		SubscriptionID: sub.ID(),
		Actor:          authorization.Actor{UserID: u.ID(), Role: "user"},
	})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeCheckoutCreationFailed, appErr.Type)
	assert.NotContains(t, appErr.Message, "stripe unavailable")
}
