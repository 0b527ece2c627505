package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"subcommerce/internal/application/subscription/usecases"
	"subcommerce/internal/interfaces/dto"
	"subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
	"subcommerce/internal/shared/services/markdown"
	"subcommerce/internal/shared/utils"
)

// SubscriptionHandler serves the authenticated user's own subscriptions.
type SubscriptionHandler struct {
	createUseCase     createPendingSubscriptionUseCase
	listUseCase       listUserSubscriptionsUseCase
	getUseCase        getSubscriptionUseCase
	cancelUseCase     cancelSubscriptionUseCase
	statisticsUseCase getSubscriptionStatisticsUseCase
	markdown          markdown.MarkdownService
	logger            logger.Interface
}

func NewSubscriptionHandler(
	createUC createPendingSubscriptionUseCase,
	listUC listUserSubscriptionsUseCase,
	getUC getSubscriptionUseCase,
	cancelUC cancelSubscriptionUseCase,
	statisticsUC getSubscriptionStatisticsUseCase,
	md markdown.MarkdownService,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createUseCase:     createUC,
		listUseCase:       listUC,
		getUseCase:        getUC,
		cancelUseCase:     cancelUC,
		statisticsUseCase: statisticsUC,
		markdown:          md,
		logger:            logger,
	}
}

// ListSubscriptions godoc
// @Summary List own subscriptions
// @Tags Subscriptions
// @Produce json
// @Security Bearer
// @Param status query string false "Filter by status"
// @Param product_id query int false "Filter by product"
// @Success 200 {object} utils.APIResponse{data=[]dto.SubscriptionResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListUserSubscriptionsQuery{
		UserID: actor.UserID,
		Status: c.Query("status"),
	}
	if raw := c.Query("product_id"); raw != "" {
		productID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || productID == 0 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid product_id", raw))
			return
		}
		pid := uint(productID)
		query.ProductID = &pid
	}

	views, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToSubscriptionViewResponses(views, h.markdown))
}

// CreateSubscription godoc
// @Summary Create a pending subscription
// @Description The subscription becomes active once its checkout is paid.
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateSubscriptionRequest true "Product to subscribe to"
// @Success 201 {object} utils.APIResponse{data=dto.SubscriptionResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, bindingError(err))
		return
	}

	sub, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreatePendingSubscriptionCommand{
		UserID:    actor.UserID,
		ProductID: req.ProductID,
	})
	if err != nil {
		h.logger.Warnw("failed to create subscription", "error", err, "user_id", actor.UserID, "product_id", req.ProductID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ToSubscriptionResponse(sub), "Subscription created successfully. Please proceed to payment.")
}

// GetStatistics godoc
// @Summary Own subscription statistics
// @Tags Subscriptions
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=dto.SubscriptionStatisticsResponse}
// @Router /subscriptions/statistics [get]
func (h *SubscriptionHandler) GetStatistics(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	stats, err := h.statisticsUseCase.Execute(c.Request.Context(), actor.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToSubscriptionStatisticsResponse(stats))
}

// GetSubscription godoc
// @Summary Show a subscription
// @Tags Subscriptions
// @Produce json
// @Security Bearer
// @Param id path int true "Subscription ID"
// @Success 200 {object} utils.APIResponse{data=dto.SubscriptionResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /subscriptions/{id} [get]
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	subscriptionID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetSubscriptionCommand{
		SubscriptionID: subscriptionID,
		Actor:          actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToSubscriptionViewResponse(view, h.markdown))
}

// CancelSubscription godoc
// @Summary Cancel a subscription
// @Tags Subscriptions
// @Produce json
// @Security Bearer
// @Param id path int true "Subscription ID"
// @Success 200 {object} utils.APIResponse{data=dto.SubscriptionResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /subscriptions/{id}/cancel [post]
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	subscriptionID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	sub, err := h.cancelUseCase.Execute(c.Request.Context(), usecases.CancelSubscriptionCommand{
		SubscriptionID: subscriptionID,
		Actor:          actor,
	})
	if err != nil {
		h.logger.Warnw("failed to cancel subscription", "error", err, "subscription_id", subscriptionID, "user_id", actor.UserID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription cancelled successfully", dto.ToSubscriptionResponse(sub))
}
