package usecases

import (
	"context"

	"subcommerce/internal/domain/authorization"
)

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Authorizer interface {
	Authorize(ctx context.Context, actor authorization.Actor, action authorization.Action, resource authorization.Resource) (bool, error)
}

func subscriptionResource(id, ownerID uint) authorization.Resource {
	return authorization.Resource{
		Type:    authorization.ResourceSubscriptions,
		ID:      id,
		OwnerID: ownerID,
	}
}
