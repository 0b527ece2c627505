package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subcommerce/internal/domain/subscription"
	vo "subcommerce/internal/domain/subscription/valueobjects"
	"subcommerce/internal/shared/biztime"
	"subcommerce/internal/shared/db"
)

func TestSubscriptionRepository_CreateAndGet(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	u := r.createUser(t, email(1))
	p := r.createProduct(t, "Pro", 999)

	sub := r.createPending(t, u.ID(), p.ID())
	require.NotZero(t, sub.ID())

	found, err := r.subscriptions.GetByID(ctx, sub.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, vo.StatusPending, found.Status())
	assert.Nil(t, found.StartsAt())
	assert.Nil(t, found.ExpiresAt())

	missing, err := r.subscriptions.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSubscriptionRepository_ExpireDue(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	u := r.createUser(t, email(1))
	p := r.createProduct(t, "Pro", 999)
	now := biztime.NowUTC()

	pastDue := r.createActive(t, u.ID(), p.ID(), now.AddDate(0, 0, -40), 30)
	current := r.createActive(t, u.ID(), p.ID(), now.AddDate(0, 0, -5), 30)
	pending := r.createPending(t, u.ID(), p.ID())

	cancelled := r.createActive(t, u.ID(), p.ID(), now.AddDate(0, 0, -40), 30)
	cancelled.Cancel()
	require.NoError(t, r.subscriptions.Update(ctx, cancelled))

	count, err := r.subscriptions.ExpireDue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	statusOf := func(s *subscription.Subscription) vo.SubscriptionStatus {
		found, err := r.subscriptions.GetByID(ctx, s.ID())
		require.NoError(t, err)
		return found.Status()
	}
	assert.Equal(t, vo.StatusExpired, statusOf(pastDue))
	assert.Equal(t, vo.StatusActive, statusOf(current))
	assert.Equal(t, vo.StatusPending, statusOf(pending))
	assert.Equal(t, vo.StatusCancelled, statusOf(cancelled))

	again, err := r.subscriptions.ExpireDue(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, again)
}

func TestSubscriptionRepository_HasActiveForProduct(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	u := r.createUser(t, email(1))
	p := r.createProduct(t, "Pro", 999)
	other := r.createProduct(t, "Basic", 499)
	now := biztime.NowUTC()

	r.createPending(t, u.ID(), p.ID())
	has, err := r.subscriptions.HasActiveForProduct(ctx, u.ID(), p.ID(), now)
	require.NoError(t, err)
	assert.False(t, has, "pending does not count")

	r.createActive(t, u.ID(), p.ID(), now.AddDate(0, 0, -40), 30)
	has, err = r.subscriptions.HasActiveForProduct(ctx, u.ID(), p.ID(), now)
	require.NoError(t, err)
	assert.False(t, has, "lapsed window does not count")

	r.createActive(t, u.ID(), p.ID(), now, 30)
	has, err = r.subscriptions.HasActiveForProduct(ctx, u.ID(), p.ID(), now)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = r.subscriptions.HasActiveForProduct(ctx, u.ID(), other.ID(), now)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestSubscriptionRepository_ListFilters(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	u := r.createUser(t, email(1))
	stranger := r.createUser(t, email(2))
	p := r.createProduct(t, "Pro", 999)
	basic := r.createProduct(t, "Basic", 499)
	now := biztime.NowUTC()

	first := r.createPending(t, u.ID(), p.ID())
	second := r.createActive(t, u.ID(), basic.ID(), now, 30)
	r.createPending(t, stranger.ID(), p.ID())

	all, err := r.subscriptions.List(ctx, subscription.ListFilter{UserID: u.ID()})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID(), all[0].ID(), "newest first")
	assert.Equal(t, first.ID(), all[1].ID())

	active := vo.StatusActive
	byStatus, err := r.subscriptions.List(ctx, subscription.ListFilter{UserID: u.ID(), Status: &active})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, second.ID(), byStatus[0].ID())

	productID := p.ID()
	byProduct, err := r.subscriptions.List(ctx, subscription.ListFilter{UserID: u.ID(), ProductID: &productID})
	require.NoError(t, err)
	require.Len(t, byProduct, 1)
	assert.Equal(t, first.ID(), byProduct[0].ID())
}

func TestSubscriptionRepository_SoftDeletedRowsHidden(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	u := r.createUser(t, email(1))
	p := r.createProduct(t, "Pro", 999)
	sub := r.createPending(t, u.ID(), p.ID())

	deletedAt := biztime.NowUTC()
	require.NoError(t, r.db.Table("subscriptions").Where("id = ?", sub.ID()).Update("deleted_at", deletedAt).Error)

	found, err := r.subscriptions.GetByID(ctx, sub.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	list, err := r.subscriptions.List(ctx, subscription.ListFilter{UserID: u.ID()})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSubscriptionRepository_CountByUser(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	u := r.createUser(t, email(1))
	p := r.createProduct(t, "Pro", 999)
	now := biztime.NowUTC()

	r.createPending(t, u.ID(), p.ID())
	r.createActive(t, u.ID(), p.ID(), now, 30)
	r.createActive(t, u.ID(), p.ID(), now.AddDate(0, 0, -40), 30)
	_, err := r.subscriptions.ExpireDue(ctx, now)
	require.NoError(t, err)

	total, active, expired, err := r.subscriptions.CountByUser(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, int64(1), active)
	assert.Equal(t, int64(1), expired)
}

func TestSubscriptionRepository_ForUpdateInsideTransaction(t *testing.T) {
	r := newRepos(t)
	u := r.createUser(t, email(1))
	p := r.createProduct(t, "Pro", 999)
	sub := r.createPending(t, u.ID(), p.ID())
	tm := db.NewTransactionManager(r.db)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		locked, err := r.subscriptions.GetByIDForUpdate(ctx, sub.ID())
		require.NoError(t, err)
		require.NotNil(t, locked)
		require.NoError(t, locked.Activate(time.Now().UTC(), 30, "sub_remote_1"))
		return r.subscriptions.Update(ctx, locked)
	})
	require.NoError(t, err)

	byRemote, err := r.subscriptions.GetByStripeSubscriptionID(context.Background(), "sub_remote_1")
	require.NoError(t, err)
	require.NotNil(t, byRemote)
	assert.Equal(t, sub.ID(), byRemote.ID())
	assert.Equal(t, vo.StatusActive, byRemote.Status())
}
