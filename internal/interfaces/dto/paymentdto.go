package dto

import (
	"time"

	"subcommerce/internal/application/payment/usecases"
	"subcommerce/internal/domain/payment"
)

type CheckoutRequest struct {
	SubscriptionID uint   `json:"subscription_id" binding:"required,min=1"`
	Currency       string `json:"currency" binding:"omitempty,currency"`
}

type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
	PaymentID   uint   `json:"payment_id"`
}

type PaymentResponse struct {
	ID                    uint                  `json:"id"`
	SubscriptionID        uint                  `json:"subscription_id"`
	UserID                uint                  `json:"user_id"`
	TransactionID         string                `json:"transaction_id"`
	StripeSessionID       *string               `json:"stripe_session_id"`
	StripePaymentIntentID *string               `json:"stripe_payment_intent_id"`
	Amount                string                `json:"amount"`
	Currency              string                `json:"currency"`
	Status                string                `json:"status"`
	PaidAt                *time.Time            `json:"paid_at"`
	CreatedAt             time.Time             `json:"created_at"`
	UpdatedAt             time.Time             `json:"updated_at"`
	Subscription          *SubscriptionResponse `json:"subscription,omitempty"`
}

type CheckoutCancelResponse struct {
	Status string `json:"status"`
}

func ToPaymentResponse(p *payment.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
		ID:                    p.ID(),
		SubscriptionID:        p.SubscriptionID(),
		UserID:                p.UserID(),
		TransactionID:         p.TransactionID(),
		StripeSessionID:       p.StripeSessionID(),
		StripePaymentIntentID: p.StripePaymentIntentID(),
		Amount:                p.Amount().Decimal(),
		Currency:              p.Amount().Currency(),
		Status:                string(p.Status()),
		PaidAt:                p.PaidAt(),
		CreatedAt:             p.CreatedAt(),
		UpdatedAt:             p.UpdatedAt(),
	}
}

func ToPaymentResponses(payments []*payment.Payment) []*PaymentResponse {
	out := make([]*PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, ToPaymentResponse(p))
	}
	return out
}

func ToCheckoutResponse(r *usecases.InitiateCheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		SessionID:   r.SessionID,
		CheckoutURL: r.SessionURL,
		PaymentID:   r.PaymentID,
	}
}

// ToCheckoutSuccessResponse nests the subscription and its product under the payment.
func ToCheckoutSuccessResponse(r *usecases.CheckoutSuccessResult) *PaymentResponse {
	resp := ToPaymentResponse(r.Payment)
	if resp == nil {
		return nil
	}
	if r.Subscription != nil {
		resp.Subscription = ToSubscriptionResponse(r.Subscription)
		resp.Subscription.Product = ToProductResponse(r.Product, nil)
	}
	return resp
}
