package subscription

import (
	"context"
	"time"

	vo "subcommerce/internal/domain/subscription/valueobjects"
)

type ListFilter struct {
	UserID    uint
	Status    *vo.SubscriptionStatus
	ProductID *uint
}

// Repository persists subscriptions. Lookups return (nil, nil) when nothing
// matches; soft-deleted rows are never returned.
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id uint) (*Subscription, error)
	GetByStripeSubscriptionID(ctx context.Context, remoteID string) (*Subscription, error)
	GetByStripeSubscriptionIDForUpdate(ctx context.Context, remoteID string) (*Subscription, error)
	List(ctx context.Context, filter ListFilter) ([]*Subscription, error)
	// HasActiveForProduct reports whether the user holds an active subscription
	// to the product expiring after now.
	HasActiveForProduct(ctx context.Context, userID, productID uint, now time.Time) (bool, error)
	// ExpireDue moves every active subscription with expires_at <= now to
	// expired in a single statement and returns the number of rows changed.
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
	CountByUser(ctx context.Context, userID uint) (total, active, expired int64, err error)
}
