package payment

import (
	"context"
)

// ListFilter selects a page of a user's payments, newest first.
type ListFilter struct {
	UserID  uint
	Page    int
	PerPage int
}

// Repository persists payments. Lookups return (nil, nil) when nothing matches.
type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	Update(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, id uint) (*Payment, error)
	GetBySessionID(ctx context.Context, sessionID string) (*Payment, error)
	// GetBySessionIDForUpdate locks the row until the surrounding transaction ends.
	GetBySessionIDForUpdate(ctx context.Context, sessionID string) (*Payment, error)
	GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*Payment, error)
	GetByInvoiceID(ctx context.Context, invoiceID string) (*Payment, error)
	ListBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*Payment, error)
	ListByUser(ctx context.Context, filter ListFilter) ([]*Payment, int64, error)
	SumPaidByUser(ctx context.Context, userID uint) (int64, error)
	CountUnpaidByUser(ctx context.Context, userID uint) (int64, error)
}
