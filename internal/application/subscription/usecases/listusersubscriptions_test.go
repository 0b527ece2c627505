package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subcommerce/internal/domain/authorization"
	"subcommerce/internal/domain/payment"
	"subcommerce/internal/domain/shared/money"
	"subcommerce/internal/shared/biztime"
	apperrors "subcommerce/internal/shared/errors"
)

func TestListUserSubscriptions(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "jane@example.com")
	p := f.product(t)
	sub := f.active(t, u.ID(), p.ID(), biztime.NowUTC())
	pay, err := payment.NewRecurringPayment(sub.ID(), u.ID(), money.NewMoney(999, "usd"), "in_1", "pi_1")
	require.NoError(t, err)
	require.NoError(t, f.payments.Create(context.Background(), pay))

	uc := NewListUserSubscriptionsUseCase(f.subscriptions, f.products, f.payments, f.log)
	views, err := uc.Execute(context.Background(), ListUserSubscriptionsQuery{UserID: u.ID()})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, sub.ID(), views[0].Subscription.ID())
	require.NotNil(t, views[0].Product)
	assert.Equal(t, "Pro Plan", views[0].Product.Title())
	assert.Len(t, views[0].Payments, 1)

	expired, err := uc.Execute(context.Background(), ListUserSubscriptionsQuery{UserID: u.ID(), Status: "expired"})
	require.NoError(t, err)
	assert.Empty(t, expired)

	_, err = uc.Execute(context.Background(), ListUserSubscriptionsQuery{UserID: u.ID(), Status: "bogus"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestGetSubscription_Ownership(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "jane@example.com")
	p := f.product(t)
	sub := f.active(t, owner.ID(), p.ID(), biztime.NowUTC())
	uc := NewGetSubscriptionUseCase(f.subscriptions, f.products, f.payments, ownerAuthorizer{}, f.log)

	view, err := uc.Execute(context.Background(), GetSubscriptionCommand{SubscriptionID: sub.ID(), Actor: authorization.Actor{UserID: owner.ID(), Role: "user"}})
	require.NoError(t, err)
	assert.Equal(t, sub.ID(), view.Subscription.ID())

	_, err = uc.Execute(context.Background(), GetSubscriptionCommand{SubscriptionID: sub.ID(), Actor: authorization.Actor{UserID: owner.ID() + 1, Role: "user"}})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeForbidden))

	adminView, err := uc.Execute(context.Background(), GetSubscriptionCommand{SubscriptionID: sub.ID(), Actor: authorization.Actor{UserID: 99, Role: "admin"}})
	require.NoError(t, err)
	assert.Equal(t, sub.ID(), adminView.Subscription.ID())
}
