package http

import (
	"subcommerce/internal/interfaces/http/handlers"
	"subcommerce/internal/shared/services/markdown"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler         *handlers.AuthHandler
	productHandler      *handlers.ProductHandler
	subscriptionHandler *handlers.SubscriptionHandler
	paymentHandler      *handlers.PaymentHandler
	webhookHandler      *handlers.WebhookHandler
}

func (c *Container) initHandlers() {
	ucs := c.ucs
	md := markdown.NewMarkdownService()

	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(ucs.registerUC, ucs.loginUC, ucs.logoutUC, c.log.Named("auth")),
		productHandler: handlers.NewProductHandler(
			ucs.createProductUC, ucs.getProductUC, ucs.listProductsUC, ucs.updateProductUC, ucs.deleteProductUC,
			md, c.log.Named("product"),
		),
		subscriptionHandler: handlers.NewSubscriptionHandler(
			ucs.createPendingSubscriptionUC, ucs.listUserSubscriptionsUC, ucs.getSubscriptionUC,
			ucs.cancelSubscriptionUC, ucs.subscriptionStatisticsUC,
			md, c.log.Named("subscription"),
		),
		paymentHandler: handlers.NewPaymentHandler(
			ucs.initiateCheckoutUC, ucs.confirmCheckoutSuccessUC, ucs.listUserPaymentsUC,
			c.log.Named("payment"),
		),
		webhookHandler: handlers.NewWebhookHandler(ucs.verifyWebhookUC, ucs.dispatchWebhookEventUC, c.log.Named("webhook")),
	}
}
