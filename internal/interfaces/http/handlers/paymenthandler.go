package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"subcommerce/internal/application/payment/usecases"
	"subcommerce/internal/interfaces/dto"
	"subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
	"subcommerce/internal/shared/utils"
)

type PaymentHandler struct {
	checkoutUseCase initiateCheckoutUseCase
	successUseCase  confirmCheckoutSuccessUseCase
	listUseCase     listUserPaymentsUseCase
	logger          logger.Interface
}

func NewPaymentHandler(
	checkoutUC initiateCheckoutUseCase,
	successUC confirmCheckoutSuccessUseCase,
	listUC listUserPaymentsUseCase,
	logger logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		checkoutUseCase: checkoutUC,
		successUseCase:  successUC,
		listUseCase:     listUC,
		logger:          logger,
	}
}

// ListPayments godoc
// @Summary List own payments
// @Tags Payments
// @Produce json
// @Security Bearer
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse{items=[]dto.PaymentResponse}}
// @Failure 401 {object} utils.APIResponse
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)
	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListUserPaymentsQuery{
		UserID:  actor.UserID,
		Page:    pagination.Page,
		PerPage: pagination.PerPage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.ToPaymentResponses(result.Payments), result.Total, result.Page, result.PerPage)
}

// Checkout godoc
// @Summary Start a hosted checkout for a pending subscription
// @Tags Payments
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CheckoutRequest true "Subscription to pay for"
// @Success 201 {object} utils.APIResponse{data=dto.CheckoutResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /payments/checkout [post]
func (h *PaymentHandler) Checkout(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, bindingError(err))
		return
	}

	result, err := h.checkoutUseCase.Execute(c.Request.Context(), usecases.InitiateCheckoutCommand{
		SubscriptionID: req.SubscriptionID,
		Actor:          actor,
		Currency:       req.Currency,
	})
	if err != nil {
		h.logger.Warnw("checkout failed", "error", err, "subscription_id", req.SubscriptionID, "user_id", actor.UserID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ToCheckoutResponse(result), "Checkout session created")
}

// CheckoutSuccess godoc
// @Summary Checkout success landing
// @Description Reconciles the session if the webhook has not arrived yet.
// @Tags Payments
// @Produce json
// @Param session_id query string true "Checkout session ID"
// @Success 200 {object} utils.APIResponse{data=dto.PaymentResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /payment/success [get]
func (h *PaymentHandler) CheckoutSuccess(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("session_id is required"))
		return
	}

	result, err := h.successUseCase.Execute(c.Request.Context(), sessionID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payment completed successfully", dto.ToCheckoutSuccessResponse(result))
}

// CheckoutCancel godoc
// @Summary Checkout cancel landing
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.CheckoutCancelResponse}
// @Router /payment/cancel [get]
func (h *PaymentHandler) CheckoutCancel(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Payment was cancelled", dto.CheckoutCancelResponse{Status: "cancelled"})
}
