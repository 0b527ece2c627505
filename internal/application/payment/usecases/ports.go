package usecases

import (
	"context"
	"time"

	"subcommerce/internal/domain/authorization"
)

// TransactionManager runs fn in a single database transaction carried by ctx.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Authorizer interface {
	Authorize(ctx context.Context, actor authorization.Actor, action authorization.Action, resource authorization.Resource) (bool, error)
}

// SubscriptionNotifier tells a user their subscription went live.
type SubscriptionNotifier interface {
	NotifySubscriptionActivated(ctx context.Context, n SubscriptionActivatedNotification) error
}

type SubscriptionActivatedNotification struct {
	SubscriptionID uint
	UserName       string
	UserEmail      string
	ProductTitle   string
	Amount         string
	Currency       string
	ExpiresAt      time.Time
}
