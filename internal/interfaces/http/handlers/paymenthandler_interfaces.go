package handlers

import (
	"context"

	"subcommerce/internal/application/payment/paymentgateway"
	"subcommerce/internal/application/payment/usecases"
)

type initiateCheckoutUseCase interface {
	Execute(ctx context.Context, cmd usecases.InitiateCheckoutCommand) (*usecases.InitiateCheckoutResult, error)
}

type confirmCheckoutSuccessUseCase interface {
	Execute(ctx context.Context, sessionID string) (*usecases.CheckoutSuccessResult, error)
}

type listUserPaymentsUseCase interface {
	Execute(ctx context.Context, query usecases.ListUserPaymentsQuery) (*usecases.ListUserPaymentsResult, error)
}

type verifyWebhookUseCase interface {
	Execute(ctx context.Context, payload []byte, signatureHeader string) (paymentgateway.Event, error)
}

type dispatchWebhookEventUseCase interface {
	Execute(ctx context.Context, event paymentgateway.Event) (*usecases.DispatchResult, error)
}
