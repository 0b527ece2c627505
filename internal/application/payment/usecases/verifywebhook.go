package usecases

import (
	"context"
	"errors"

	"subcommerce/internal/application/payment/paymentgateway"
	apperrors "subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
)

// VerifyWebhookUseCase authenticates a raw webhook delivery and decodes it
// into a typed event.
type VerifyWebhookUseCase struct {
	verifier paymentgateway.WebhookVerifier
	logger   logger.Interface
}

func NewVerifyWebhookUseCase(verifier paymentgateway.WebhookVerifier, logger logger.Interface) *VerifyWebhookUseCase {
	return &VerifyWebhookUseCase{
		verifier: verifier,
		logger:   logger,
	}
}

func (uc *VerifyWebhookUseCase) Execute(_ context.Context, payload []byte, signatureHeader string) (paymentgateway.Event, error) {
	if signatureHeader == "" {
		uc.logger.Warnw("webhook rejected, missing signature")
		return nil, apperrors.NewMissingSignatureError()
	}

	event, err := uc.verifier.ConstructEvent(payload, signatureHeader)
	if err != nil {
		switch {
		case errors.Is(err, paymentgateway.ErrMalformedPayload):
			uc.logger.Warnw("webhook rejected, malformed payload", "error", err)
			return nil, apperrors.NewMalformedPayloadError()
		default:
			uc.logger.Warnw("webhook rejected, invalid signature", "error", err)
			return nil, apperrors.NewInvalidSignatureError()
		}
	}
	return event, nil
}
