package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"subcommerce/internal/shared/constants"
	"subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
	"subcommerce/internal/shared/utils"
)

// maxWebhookBodyBytes caps the webhook body read.
const maxWebhookBodyBytes = 64 << 10

// WebhookHandler is the unauthenticated ingress for gateway events.
// Authenticity comes from the signature header alone.
type WebhookHandler struct {
	verifyUseCase   verifyWebhookUseCase
	dispatchUseCase dispatchWebhookEventUseCase
	logger          logger.Interface
}

func NewWebhookHandler(verifyUC verifyWebhookUseCase, dispatchUC dispatchWebhookEventUseCase, logger logger.Interface) *WebhookHandler {
	return &WebhookHandler{
		verifyUseCase:   verifyUC,
		dispatchUseCase: dispatchUC,
		logger:          logger,
	}
}

// HandleStripe godoc
// @Summary Stripe webhook
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Signature header"
// @Success 200 {object} utils.APIResponse{data=usecases.DispatchResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /webhook/stripe [post]
func (h *WebhookHandler) HandleStripe(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes+1))
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("failed to read request body"))
		return
	}
	if len(payload) > maxWebhookBodyBytes {
		utils.ErrorResponseWithError(c, errors.NewMalformedPayloadError())
		return
	}

	event, err := h.verifyUseCase.Execute(c.Request.Context(), payload, c.GetHeader(constants.HeaderStripeSignature))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.dispatchUseCase.Execute(c.Request.Context(), event)
	if err != nil {
		h.logger.Errorw("webhook reconciliation failed",
			"error", err,
			"event_id", event.EventID(),
			"event_type", event.EventType(),
		)
		// Anything but 2xx makes the gateway redeliver.
		if appErr := errors.GetAppError(err); appErr != nil && appErr.Code >= http.StatusInternalServerError {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.ErrorResponseWithError(c, errors.NewReconciliationFailedError(err))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Webhook processed", result)
}
