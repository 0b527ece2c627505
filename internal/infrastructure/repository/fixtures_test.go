package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"subcommerce/internal/domain/payment"
	"subcommerce/internal/domain/product"
	"subcommerce/internal/domain/shared/money"
	"subcommerce/internal/domain/subscription"
	"subcommerce/internal/domain/user"
	"subcommerce/internal/infrastructure/persistence/testdb"
	"subcommerce/internal/shared/logger"
)

type repos struct {
	db            *gorm.DB
	users         *UserRepository
	products      *ProductRepository
	subscriptions *SubscriptionRepository
	payments      *PaymentRepository
}

func newRepos(t *testing.T) repos {
	db := testdb.New(t)
	return repos{
		db:            db,
		users:         NewUserRepository(db),
		products:      NewProductRepository(db),
		subscriptions: NewSubscriptionRepository(db, logger.NewNop()),
		payments:      NewPaymentRepository(db),
	}
}

func (r repos) createUser(t *testing.T, email string) *user.User {
	t.Helper()
	u, err := user.NewUser("test user", email, "hash")
	require.NoError(t, err)
	require.NoError(t, r.users.Create(context.Background(), u))
	return u
}

func (r repos) createProduct(t *testing.T, title string, priceMinor int64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(title, nil, priceMinor, 30)
	require.NoError(t, err)
	require.NoError(t, r.products.Create(context.Background(), p))
	return p
}

func (r repos) createPending(t *testing.T, userID, productID uint) *subscription.Subscription {
	t.Helper()
	s, err := subscription.NewPendingSubscription(userID, productID)
	require.NoError(t, err)
	require.NoError(t, r.subscriptions.Create(context.Background(), s))
	return s
}

// createActive stores a subscription activated at startedAt for days.
func (r repos) createActive(t *testing.T, userID, productID uint, startedAt time.Time, days int) *subscription.Subscription {
	t.Helper()
	s := r.createPending(t, userID, productID)
	require.NoError(t, s.Activate(startedAt, days, ""))
	require.NoError(t, r.subscriptions.Update(context.Background(), s))
	return s
}

func (r repos) createPayment(t *testing.T, sub *subscription.Subscription, amountMinor int64, sessionID string) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(sub.ID(), sub.UserID(), money.NewMoney(amountMinor, "usd"))
	require.NoError(t, err)
	if sessionID != "" {
		require.NoError(t, p.AttachSession(sessionID))
	}
	require.NoError(t, r.payments.Create(context.Background(), p))
	return p
}

func email(n int) string {
	return fmt.Sprintf("user%d@example.com", n)
}
