package dto

import (
	"time"

	"subcommerce/internal/application/subscription/usecases"
	"subcommerce/internal/domain/shared/money"
	"subcommerce/internal/domain/subscription"
	"subcommerce/internal/shared/services/markdown"
)

type CreateSubscriptionRequest struct {
	ProductID uint `json:"product_id" binding:"required,min=1"`
}

type SubscriptionResponse struct {
	ID                   uint               `json:"id"`
	UserID               uint               `json:"user_id"`
	ProductID            uint               `json:"product_id"`
	Status               string             `json:"status"`
	StartsAt             *time.Time         `json:"starts_at"`
	ExpiresAt            *time.Time         `json:"expires_at"`
	StripeSubscriptionID *string            `json:"stripe_subscription_id"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
	Product              *ProductResponse   `json:"product,omitempty"`
	Payments             []*PaymentResponse `json:"payments,omitempty"`
}

type SubscriptionStatisticsResponse struct {
	TotalSubscriptions   int64  `json:"total_subscriptions"`
	ActiveSubscriptions  int64  `json:"active_subscriptions"`
	ExpiredSubscriptions int64  `json:"expired_subscriptions"`
	TotalSpent           string `json:"total_spent"`
	PendingPayments      int64  `json:"pending_payments"`
}

func ToSubscriptionResponse(s *subscription.Subscription) *SubscriptionResponse {
	if s == nil {
		return nil
	}
	return &SubscriptionResponse{
		ID:                   s.ID(),
		UserID:               s.UserID(),
		ProductID:            s.ProductID(),
		Status:               string(s.Status()),
		StartsAt:             s.StartsAt(),
		ExpiresAt:            s.ExpiresAt(),
		StripeSubscriptionID: s.StripeSubscriptionID(),
		CreatedAt:            s.CreatedAt(),
		UpdatedAt:            s.UpdatedAt(),
	}
}

func ToSubscriptionViewResponse(v *usecases.SubscriptionView, md markdown.MarkdownService) *SubscriptionResponse {
	if v == nil {
		return nil
	}
	resp := ToSubscriptionResponse(v.Subscription)
	resp.Product = ToProductResponse(v.Product, md)
	if len(v.Payments) > 0 {
		resp.Payments = ToPaymentResponses(v.Payments)
	}
	return resp
}

func ToSubscriptionViewResponses(views []*usecases.SubscriptionView, md markdown.MarkdownService) []*SubscriptionResponse {
	out := make([]*SubscriptionResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ToSubscriptionViewResponse(v, md))
	}
	return out
}

func ToSubscriptionStatisticsResponse(s *usecases.SubscriptionStatistics) *SubscriptionStatisticsResponse {
	return &SubscriptionStatisticsResponse{
		TotalSubscriptions:   s.TotalSubscriptions,
		ActiveSubscriptions:  s.ActiveSubscriptions,
		ExpiredSubscriptions: s.ExpiredSubscriptions,
		TotalSpent:           money.FormatMinor(s.TotalSpentMinor),
		PendingPayments:      s.PendingPayments,
	}
}
