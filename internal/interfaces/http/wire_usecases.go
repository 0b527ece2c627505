package http

import (
	paymentUsecases "subcommerce/internal/application/payment/usecases"
	productUsecases "subcommerce/internal/application/product/usecases"
	subscriptionUsecases "subcommerce/internal/application/subscription/usecases"
	"subcommerce/internal/application/user/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User / Auth
	registerUC *usecases.RegisterWithPasswordUseCase
	loginUC    *usecases.LoginWithPasswordUseCase
	logoutUC   *usecases.LogoutUseCase

	// Product
	createProductUC *productUsecases.CreateProductUseCase
	getProductUC    *productUsecases.GetProductUseCase
	listProductsUC  *productUsecases.ListProductsUseCase
	updateProductUC *productUsecases.UpdateProductUseCase
	deleteProductUC *productUsecases.DeleteProductUseCase

	// Subscription
	createPendingSubscriptionUC *subscriptionUsecases.CreatePendingSubscriptionUseCase
	listUserSubscriptionsUC     *subscriptionUsecases.ListUserSubscriptionsUseCase
	getSubscriptionUC           *subscriptionUsecases.GetSubscriptionUseCase
	cancelSubscriptionUC        *subscriptionUsecases.CancelSubscriptionUseCase
	subscriptionStatisticsUC    *subscriptionUsecases.GetSubscriptionStatisticsUseCase
	expireSubscriptionsUC       *subscriptionUsecases.ExpireSubscriptionsUseCase

	// Payment
	initiateCheckoutUC       *paymentUsecases.InitiateCheckoutUseCase
	confirmCheckoutSuccessUC *paymentUsecases.ConfirmCheckoutSuccessUseCase
	listUserPaymentsUC       *paymentUsecases.ListUserPaymentsUseCase

	// Reconciliation
	reconcileCompletedSessionUC   *paymentUsecases.ReconcileCompletedSessionUseCase
	reconcileRecurringInvoiceUC   *paymentUsecases.ReconcileRecurringInvoiceUseCase
	reconcileRemoteStatusUC       *paymentUsecases.ReconcileRemoteStatusChangeUseCase
	reconcileRemoteCancellationUC *paymentUsecases.ReconcileRemoteCancellationUseCase
	reconcilePaymentFailureUC     *paymentUsecases.ReconcilePaymentFailureUseCase
	verifyWebhookUC               *paymentUsecases.VerifyWebhookUseCase
	dispatchWebhookEventUC        *paymentUsecases.DispatchWebhookEventUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	ucs := &allUseCases{}

	ucs.registerUC = usecases.NewRegisterWithPasswordUseCase(
		r.userRepo, c.hasher, c.jwtService, c.sessionStore, newSessionID,
		c.log.Named("auth"),
	)
	ucs.loginUC = usecases.NewLoginWithPasswordUseCase(
		r.userRepo, c.hasher, c.jwtService, c.sessionStore, newSessionID, c.loginLimiter,
		c.log.Named("auth"),
	)
	ucs.logoutUC = usecases.NewLogoutUseCase(c.sessionStore, c.log.Named("auth"))

	productLog := c.log.Named("product")
	ucs.createProductUC = productUsecases.NewCreateProductUseCase(r.productRepo, productLog)
	ucs.getProductUC = productUsecases.NewGetProductUseCase(r.productRepo, productLog)
	ucs.listProductsUC = productUsecases.NewListProductsUseCase(r.productRepo, productLog)
	ucs.updateProductUC = productUsecases.NewUpdateProductUseCase(r.productRepo, productLog)
	ucs.deleteProductUC = productUsecases.NewDeleteProductUseCase(r.productRepo, productLog)

	subLog := c.log.Named("subscription")
	ucs.createPendingSubscriptionUC = subscriptionUsecases.NewCreatePendingSubscriptionUseCase(r.subscriptionRepo, r.productRepo, c.txMgr, subLog)
	ucs.listUserSubscriptionsUC = subscriptionUsecases.NewListUserSubscriptionsUseCase(r.subscriptionRepo, r.productRepo, r.paymentRepo, subLog)
	ucs.getSubscriptionUC = subscriptionUsecases.NewGetSubscriptionUseCase(r.subscriptionRepo, r.productRepo, r.paymentRepo, c.policy, subLog)
	ucs.cancelSubscriptionUC = subscriptionUsecases.NewCancelSubscriptionUseCase(r.subscriptionRepo, c.policy, c.txMgr, subLog)
	ucs.subscriptionStatisticsUC = subscriptionUsecases.NewGetSubscriptionStatisticsUseCase(r.subscriptionRepo, r.paymentRepo, subLog)
	ucs.expireSubscriptionsUC = subscriptionUsecases.NewExpireSubscriptionsUseCase(r.subscriptionRepo, subLog)

	payLog := c.log.Named("payment")
	ucs.reconcileCompletedSessionUC = paymentUsecases.NewReconcileCompletedSessionUseCase(
		r.paymentRepo, r.subscriptionRepo, r.productRepo, r.userRepo, c.gateway, c.txMgr, payLog,
	)
	if c.notifier != nil {
		ucs.reconcileCompletedSessionUC.SetNotifier(c.notifier)
	}
	ucs.reconcileRecurringInvoiceUC = paymentUsecases.NewReconcileRecurringInvoiceUseCase(
		r.paymentRepo, r.subscriptionRepo, r.productRepo, c.txMgr, payLog,
	)
	ucs.reconcileRemoteStatusUC = paymentUsecases.NewReconcileRemoteStatusChangeUseCase(r.subscriptionRepo, c.txMgr, payLog)
	ucs.reconcileRemoteCancellationUC = paymentUsecases.NewReconcileRemoteCancellationUseCase(r.subscriptionRepo, c.txMgr, payLog)
	ucs.reconcilePaymentFailureUC = paymentUsecases.NewReconcilePaymentFailureUseCase(r.paymentRepo, payLog)

	ucs.verifyWebhookUC = paymentUsecases.NewVerifyWebhookUseCase(c.webhookVerifier, payLog.Named("webhook"))
	ucs.dispatchWebhookEventUC = paymentUsecases.NewDispatchWebhookEventUseCase(
		ucs.reconcileCompletedSessionUC,
		ucs.reconcileRecurringInvoiceUC,
		ucs.reconcileRemoteStatusUC,
		ucs.reconcileRemoteCancellationUC,
		ucs.reconcilePaymentFailureUC,
		payLog.Named("webhook"),
	)

	ucs.initiateCheckoutUC = paymentUsecases.NewInitiateCheckoutUseCase(
		r.subscriptionRepo, r.productRepo, r.userRepo, r.paymentRepo,
		c.gateway, c.policy,
		paymentUsecases.DefaultCheckoutURLs(c.cfg.Server.BaseURL),
		c.cfg.Payment.Stripe.DefaultCurrency,
		payLog,
	)
	ucs.confirmCheckoutSuccessUC = paymentUsecases.NewConfirmCheckoutSuccessUseCase(
		r.paymentRepo, r.subscriptionRepo, r.productRepo, ucs.reconcileCompletedSessionUC, payLog,
	)
	ucs.listUserPaymentsUC = paymentUsecases.NewListUserPaymentsUseCase(r.paymentRepo, payLog)

	c.ucs = ucs
}
