package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"subcommerce/internal/application/payment/paymentgateway"
	"subcommerce/internal/domain/authorization"
	"subcommerce/internal/domain/payment"
	"subcommerce/internal/domain/product"
	"subcommerce/internal/domain/subscription"
	"subcommerce/internal/domain/user"
	"subcommerce/internal/infrastructure/persistence/testdb"
	"subcommerce/internal/infrastructure/repository"
	"subcommerce/internal/shared/db"
	"subcommerce/internal/shared/logger"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateSession(ctx context.Context, req paymentgateway.CreateSessionRequest) (*paymentgateway.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentgateway.Session), args.Error(1)
}

func (m *mockGateway) RetrieveSession(ctx context.Context, sessionID string) (*paymentgateway.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentgateway.Session), args.Error(1)
}

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) ConstructEvent(payload []byte, signatureHeader string) (paymentgateway.Event, error) {
	args := m.Called(payload, signatureHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(paymentgateway.Event), args.Error(1)
}

// ownerAuthorizer allows admins and resource owners.
type ownerAuthorizer struct{}

func (ownerAuthorizer) Authorize(_ context.Context, actor authorization.Actor, _ authorization.Action, resource authorization.Resource) (bool, error) {
	return actor.IsAdmin() || resource.OwnerID == actor.UserID, nil
}

type notifierFunc func(ctx context.Context, n SubscriptionActivatedNotification) error

func (f notifierFunc) NotifySubscriptionActivated(ctx context.Context, n SubscriptionActivatedNotification) error {
	return f(ctx, n)
}

// env wires the use cases against an in-memory database.
type env struct {
	db            *gorm.DB
	payments      *repository.PaymentRepository
	subscriptions *repository.SubscriptionRepository
	products      *repository.ProductRepository
	users         *repository.UserRepository
	txMgr         *db.TransactionManager
	gateway       *mockGateway
	log           logger.Interface
}

func newEnv(t *testing.T) *env {
	gdb := testdb.New(t)
	log := logger.NewNop()
	return &env{
		db:            gdb,
		payments:      repository.NewPaymentRepository(gdb),
		subscriptions: repository.NewSubscriptionRepository(gdb, log),
		products:      repository.NewProductRepository(gdb),
		users:         repository.NewUserRepository(gdb),
		txMgr:         db.NewTransactionManager(gdb),
		gateway:       new(mockGateway),
		log:           log,
	}
}

func (e *env) checkout() *InitiateCheckoutUseCase {
	return NewInitiateCheckoutUseCase(e.subscriptions, e.products, e.users, e.payments, e.gateway,
		ownerAuthorizer{}, DefaultCheckoutURLs("http://localhost:8080"), "usd", e.log)
}

func (e *env) completedSession() *ReconcileCompletedSessionUseCase {
	return NewReconcileCompletedSessionUseCase(e.payments, e.subscriptions, e.products, e.users, e.gateway, e.txMgr, e.log)
}

func (e *env) recurringInvoice() *ReconcileRecurringInvoiceUseCase {
	return NewReconcileRecurringInvoiceUseCase(e.payments, e.subscriptions, e.products, e.txMgr, e.log)
}

func (e *env) seedUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("Jane Doe", "jane@example.com", "hash")
	require.NoError(t, err)
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

func (e *env) seedProduct(t *testing.T, priceMinor int64, days int) *product.Product {
	t.Helper()
	p, err := product.NewProduct("Pro Plan", nil, priceMinor, days)
	require.NoError(t, err)
	require.NoError(t, e.products.Create(context.Background(), p))
	return p
}

func (e *env) seedPending(t *testing.T, userID, productID uint) *subscription.Subscription {
	t.Helper()
	s, err := subscription.NewPendingSubscription(userID, productID)
	require.NoError(t, err)
	require.NoError(t, e.subscriptions.Create(context.Background(), s))
	return s
}

// seedCheckout stores a pending subscription and an unpaid payment bound to sessionID.
func (e *env) seedCheckout(t *testing.T, sessionID string) (*user.User, *subscription.Subscription, *payment.Payment) {
	t.Helper()
	u := e.seedUser(t)
	p := e.seedProduct(t, 999, 30)
	sub := e.seedPending(t, u.ID(), p.ID())

	e.gateway.On("CreateSession", mock.Anything, mock.Anything).
		Return(&paymentgateway.Session{ID: sessionID, URL: "https://checkout.stripe.com/c/pay/" + sessionID}, nil).Once()

	res, err := e.checkout().Execute(context.Background(), InitiateCheckoutCommand{
		SubscriptionID: sub.ID(),
		Actor:          authorization.Actor{UserID: u.ID(), Role: "user"},
	})
	require.NoError(t, err)

	pay, err := e.payments.GetByID(context.Background(), res.PaymentID)
	require.NoError(t, err)
	require.NotNil(t, pay)
	return u, sub, pay
}

func (e *env) reloadSubscription(t *testing.T, id uint) *subscription.Subscription {
	t.Helper()
	s, err := e.subscriptions.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, s)
	return s
}

func (e *env) reloadPayment(t *testing.T, id uint) *payment.Payment {
	t.Helper()
	p, err := e.payments.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func approxDays(t *testing.T, from time.Time, to *time.Time, days int) {
	t.Helper()
	require.NotNil(t, to)
	want := from.AddDate(0, 0, days)
	require.WithinDuration(t, want, *to, time.Minute)
}

func actorFor(userID uint) authorization.Actor {
	return authorization.Actor{UserID: userID, Role: "user"}
}
