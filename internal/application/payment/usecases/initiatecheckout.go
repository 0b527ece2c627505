package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"subcommerce/internal/application/payment/paymentgateway"
	"subcommerce/internal/domain/authorization"
	"subcommerce/internal/domain/payment"
	"subcommerce/internal/domain/product"
	"subcommerce/internal/domain/shared/money"
	"subcommerce/internal/domain/subscription"
	"subcommerce/internal/domain/user"
	"subcommerce/internal/shared/biztime"
	apperrors "subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
)

// CheckoutURLs are the redirect targets used when the caller supplies none.
type CheckoutURLs struct {
	SuccessURL string
	CancelURL  string
}

// DefaultCheckoutURLs points the processor back at this API's success and
// cancel endpoints. {CHECKOUT_SESSION_ID} is substituted by the processor.
func DefaultCheckoutURLs(baseURL string) CheckoutURLs {
	base := strings.TrimRight(baseURL, "/")
	return CheckoutURLs{
		SuccessURL: base + "/api/payment/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  base + "/api/payment/cancel",
	}
}

type InitiateCheckoutCommand struct {
	SubscriptionID uint
	Actor          authorization.Actor
	Currency       string
	SuccessURL     string
	CancelURL      string
}

type InitiateCheckoutResult struct {
	SessionID  string
	SessionURL string
	PaymentID  uint
}

type InitiateCheckoutUseCase struct {
	subscriptionRepo subscription.Repository
	productRepo      product.Repository
	userRepo         user.Repository
	paymentRepo      payment.Repository
	gateway          paymentgateway.CheckoutGateway
	authorizer       Authorizer
	urls             CheckoutURLs
	defaultCurrency  string
	logger           logger.Interface
}

func NewInitiateCheckoutUseCase(
	subscriptionRepo subscription.Repository,
	productRepo product.Repository,
	userRepo user.Repository,
	paymentRepo payment.Repository,
	gateway paymentgateway.CheckoutGateway,
	authorizer Authorizer,
	urls CheckoutURLs,
	defaultCurrency string,
	logger logger.Interface,
) *InitiateCheckoutUseCase {
	if defaultCurrency == "" {
		defaultCurrency = money.DefaultCurrency
	}
	return &InitiateCheckoutUseCase{
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
		userRepo:         userRepo,
		paymentRepo:      paymentRepo,
		gateway:          gateway,
		authorizer:       authorizer,
		urls:             urls,
		defaultCurrency:  strings.ToLower(defaultCurrency),
		logger:           logger,
	}
}

func (uc *InitiateCheckoutUseCase) Execute(ctx context.Context, cmd InitiateCheckoutCommand) (*InitiateCheckoutResult, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("Subscription not found")
	}

	allowed, err := uc.authorizer.Authorize(ctx, cmd.Actor, authorization.ActionCheckout, authorization.Resource{
		Type:    authorization.ResourceSubscriptions,
		ID:      sub.ID(),
		OwnerID: sub.UserID(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to authorize checkout: %w", err)
	}
	if !allowed {
		return nil, apperrors.NewForbiddenError("Unauthorized access to subscription")
	}

	if sub.IsActiveAt(biztime.NowUTC()) {
		return nil, apperrors.NewSubscriptionAlreadyActiveError()
	}

	prod, err := uc.productRepo.GetByID(ctx, sub.ProductID())
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if prod == nil {
		return nil, apperrors.NewNotFoundError("Product not found")
	}

	owner, err := uc.userRepo.GetByID(ctx, sub.UserID())
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if owner == nil {
		return nil, apperrors.NewNotFoundError("User not found")
	}

	currency := strings.ToLower(cmd.Currency)
	if currency == "" {
		currency = uc.defaultCurrency
	}

	pay, err := payment.NewPayment(sub.ID(), owner.ID(), money.NewMoney(prod.PriceMinor(), currency))
	if err != nil {
		return nil, apperrors.NewCheckoutCreationFailedError(err)
	}
	pay.SetMetadata(payment.MetadataProductName, prod.Title())
	pay.SetMetadata(payment.MetadataUserEmail, owner.Email())

	if err := uc.paymentRepo.Create(ctx, pay); err != nil {
		uc.logger.Errorw("failed to create payment", "subscription_id", sub.ID(), "error", err)
		return nil, apperrors.NewCheckoutCreationFailedError(err)
	}

	description := ""
	if prod.Description() != nil {
		description = *prod.Description()
	}

	session, err := uc.gateway.CreateSession(ctx, paymentgateway.CreateSessionRequest{
		Currency: currency,
		LineItem: paymentgateway.LineItem{
			Name:            prod.Title(),
			Description:     description,
			UnitAmountMinor: prod.PriceMinor(),
			Quantity:        1,
		},
		SuccessURL:        firstNonEmpty(cmd.SuccessURL, uc.urls.SuccessURL),
		CancelURL:         firstNonEmpty(cmd.CancelURL, uc.urls.CancelURL),
		ClientReferenceID: strconv.FormatUint(uint64(sub.ID()), 10),
		CustomerEmail:     owner.Email(),
		Metadata: map[string]string{
			"subscription_id": strconv.FormatUint(uint64(sub.ID()), 10),
			"payment_id":      strconv.FormatUint(uint64(pay.ID()), 10),
			"user_id":         strconv.FormatUint(uint64(owner.ID()), 10),
		},
	})
	if err != nil {
		// the unpaid payment stays behind without a session; a retry creates a new one
		uc.logger.Errorw("failed to create checkout session",
			"subscription_id", sub.ID(),
			"payment_id", pay.ID(),
			"error", err,
		)
		return nil, apperrors.NewCheckoutCreationFailedError(err)
	}

	if err := pay.AttachSession(session.ID); err != nil {
		return nil, apperrors.NewCheckoutCreationFailedError(err)
	}
	if err := uc.paymentRepo.Update(ctx, pay); err != nil {
		uc.logger.Errorw("failed to persist checkout session id",
			"payment_id", pay.ID(),
			"session_id", session.ID,
			"error", err,
		)
		return nil, apperrors.NewCheckoutCreationFailedError(err)
	}

	uc.logger.Infow("checkout session created",
		"session_id", session.ID,
		"subscription_id", sub.ID(),
		"payment_id", pay.ID(),
	)

	return &InitiateCheckoutResult{
		SessionID:  session.ID,
		SessionURL: session.URL,
		PaymentID:  pay.ID(),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
