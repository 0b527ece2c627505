// Package paymentgateway defines the contract the reconciliation engine
// holds with the hosted-checkout payment processor.
package paymentgateway

import (
	"context"
	"errors"
)

var (
	// ErrInvalidSignature is returned when a webhook signature does not verify.
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrMalformedPayload is returned when a verified payload cannot be parsed.
	ErrMalformedPayload = errors.New("malformed webhook payload")
)

// CheckoutGateway creates and reads hosted checkout sessions.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, req CreateSessionRequest) (*Session, error)
	RetrieveSession(ctx context.Context, sessionID string) (*Session, error)
}

// WebhookVerifier authenticates a raw webhook delivery and decodes it.
type WebhookVerifier interface {
	ConstructEvent(payload []byte, signatureHeader string) (Event, error)
}

// LineItem is a single priced line. UnitAmountMinor is in the smallest
// currency unit (cents).
type LineItem struct {
	Name            string
	Description     string
	UnitAmountMinor int64
	Quantity        int64
}

type CreateSessionRequest struct {
	Currency          string
	LineItem          LineItem
	SuccessURL        string
	CancelURL         string
	ClientReferenceID string
	CustomerEmail     string
	Metadata          map[string]string
}

// Checkout session payment states reported by the processor.
const (
	PaymentStatusPaid              = "paid"
	PaymentStatusUnpaid            = "unpaid"
	PaymentStatusNoPaymentRequired = "no_payment_required"
)

// Session is the gateway's view of a checkout session. PaymentIntentID and
// SubscriptionID are empty until the processor assigns them.
type Session struct {
	ID              string
	URL             string
	PaymentIntentID string
	SubscriptionID  string
	PaymentStatus   string
}

// Settled reports whether the processor considers the session paid for.
func (s *Session) Settled() bool {
	return s.PaymentStatus == PaymentStatusPaid || s.PaymentStatus == PaymentStatusNoPaymentRequired
}
