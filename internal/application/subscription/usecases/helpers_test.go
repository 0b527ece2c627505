package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"subcommerce/internal/domain/authorization"
	"subcommerce/internal/domain/product"
	"subcommerce/internal/domain/subscription"
	"subcommerce/internal/domain/user"
	"subcommerce/internal/infrastructure/persistence/testdb"
	"subcommerce/internal/infrastructure/repository"
	"subcommerce/internal/shared/db"
	"subcommerce/internal/shared/logger"
)

type ownerAuthorizer struct{}

func (ownerAuthorizer) Authorize(_ context.Context, actor authorization.Actor, _ authorization.Action, resource authorization.Resource) (bool, error) {
	return actor.IsAdmin() || resource.OwnerID == actor.UserID, nil
}

type fixture struct {
	subscriptions *repository.SubscriptionRepository
	products      *repository.ProductRepository
	payments      *repository.PaymentRepository
	users         *repository.UserRepository
	txMgr         *db.TransactionManager
	log           logger.Interface
}

func newFixture(t *testing.T) *fixture {
	gdb := testdb.New(t)
	log := logger.NewNop()
	return &fixture{
		subscriptions: repository.NewSubscriptionRepository(gdb, log),
		products:      repository.NewProductRepository(gdb),
		payments:      repository.NewPaymentRepository(gdb),
		users:         repository.NewUserRepository(gdb),
		txMgr:         db.NewTransactionManager(gdb),
		log:           log,
	}
}

func (f *fixture) user(t *testing.T, email string) *user.User {
	t.Helper()
	u, err := user.NewUser("Test User", email, "hash")
	require.NoError(t, err)
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *fixture) product(t *testing.T) *product.Product {
	t.Helper()
	p, err := product.NewProduct("Pro Plan", nil, 999, 30)
	require.NoError(t, err)
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func (f *fixture) active(t *testing.T, userID, productID uint, startedAt time.Time) *subscription.Subscription {
	t.Helper()
	s, err := subscription.NewPendingSubscription(userID, productID)
	require.NoError(t, err)
	require.NoError(t, f.subscriptions.Create(context.Background(), s))
	require.NoError(t, s.Activate(startedAt, 30, ""))
	require.NoError(t, f.subscriptions.Update(context.Background(), s))
	return s
}

func (f *fixture) reload(t *testing.T, id uint) *subscription.Subscription {
	t.Helper()
	s, err := f.subscriptions.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, s)
	return s
}
