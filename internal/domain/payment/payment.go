package payment

import (
	"fmt"
	"time"

	vo "subcommerce/internal/domain/payment/valueobjects"
	"subcommerce/internal/domain/shared/money"
	"subcommerce/internal/shared/biztime"
	"subcommerce/internal/shared/id"
)

// Metadata keys written by the reconciliation engine.
const (
	MetadataProductName   = "product_name"
	MetadataUserEmail     = "user_email"
	MetadataInvoiceID     = "invoice_id"
	MetadataType          = "type"
	MetadataTypeRecurring = "recurring"
	MetadataFailureReason = "failure_reason"
)

// Payment is one attempt, or one completion, of paying for a subscription.
type Payment struct {
	id                    uint
	subscriptionID        uint
	userID                uint
	transactionID         string
	stripeSessionID       *string
	stripePaymentIntentID *string
	stripeInvoiceID       *string
	amount                money.Money
	status                vo.PaymentStatus
	metadata              map[string]interface{}
	paidAt                *time.Time
	createdAt             time.Time
	updatedAt             time.Time
}

// NewPayment creates an unpaid payment with a fresh transaction reference.
func NewPayment(subscriptionID, userID uint, amount money.Money) (*Payment, error) {
	if subscriptionID == 0 {
		return nil, fmt.Errorf("subscription ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative")
	}

	txn, err := id.NewTransactionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate transaction id: %w", err)
	}

	now := biztime.NowUTC()
	return &Payment{
		subscriptionID: subscriptionID,
		userID:         userID,
		transactionID:  txn,
		amount:         amount,
		status:         vo.PaymentStatusUnpaid,
		metadata:       make(map[string]interface{}),
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// NewRecurringPayment records a renewal charge collected by the gateway.
// The payment is born paid.
func NewRecurringPayment(subscriptionID, userID uint, amount money.Money, invoiceID, paymentIntentID string) (*Payment, error) {
	p, err := NewPayment(subscriptionID, userID, amount)
	if err != nil {
		return nil, err
	}
	if invoiceID != "" {
		p.stripeInvoiceID = &invoiceID
	}
	p.metadata[MetadataInvoiceID] = invoiceID
	p.metadata[MetadataType] = MetadataTypeRecurring
	if err := p.MarkAsPaid(paymentIntentID); err != nil {
		return nil, err
	}
	return p, nil
}

// AttachSession records the remote checkout session created for this payment.
func (p *Payment) AttachSession(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session ID is required")
	}
	if p.stripeSessionID != nil && *p.stripeSessionID != sessionID {
		return ErrSessionAlreadyAttached
	}
	p.stripeSessionID = &sessionID
	p.updatedAt = biztime.NowUTC()
	return nil
}

// MarkAsPaid is a no-op on a paid payment, which is what makes completion
// events idempotent.
func (p *Payment) MarkAsPaid(paymentIntentID string) error {
	if p.status == vo.PaymentStatusPaid {
		return nil
	}
	if p.status == vo.PaymentStatusRefunded {
		return errInvalidTransition(p.status.String(), vo.PaymentStatusPaid.String())
	}

	now := biztime.NowUTC()
	p.status = vo.PaymentStatusPaid
	if paymentIntentID != "" {
		p.stripePaymentIntentID = &paymentIntentID
	}
	p.paidAt = &now
	p.updatedAt = now
	return nil
}

func (p *Payment) MarkAsFailed(reason string) error {
	if p.status == vo.PaymentStatusFailed {
		return nil
	}
	if p.status.IsFinal() {
		return errInvalidTransition(p.status.String(), vo.PaymentStatusFailed.String())
	}

	p.status = vo.PaymentStatusFailed
	if reason != "" {
		if p.metadata == nil {
			p.metadata = make(map[string]interface{})
		}
		p.metadata[MetadataFailureReason] = reason
	}
	p.updatedAt = biztime.NowUTC()
	return nil
}

// MarkAsRefunded is an administrative transition; no gateway event drives it.
func (p *Payment) MarkAsRefunded() error {
	if p.status != vo.PaymentStatusPaid {
		return errInvalidTransition(p.status.String(), vo.PaymentStatusRefunded.String())
	}
	p.status = vo.PaymentStatusRefunded
	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Payment) SetMetadata(key string, value interface{}) {
	if p.metadata == nil {
		p.metadata = make(map[string]interface{})
	}
	p.metadata[key] = value
	p.updatedAt = biztime.NowUTC()
}

func (p *Payment) IsPaid() bool {
	return p.status.IsPaid()
}

func (p *Payment) ID() uint { return p.id }
func (p *Payment) SubscriptionID() uint { return p.subscriptionID }
func (p *Payment) UserID() uint { return p.userID }
func (p *Payment) TransactionID() string { return p.transactionID }
func (p *Payment) StripeSessionID() *string { return p.stripeSessionID }
func (p *Payment) StripePaymentIntentID() *string { return p.stripePaymentIntentID }
func (p *Payment) StripeInvoiceID() *string { return p.stripeInvoiceID }
func (p *Payment) Amount() money.Money { return p.amount }
func (p *Payment) Status() vo.PaymentStatus { return p.status }
func (p *Payment) Metadata() map[string]interface{} { return p.metadata }
func (p *Payment) PaidAt() *time.Time { return p.paidAt }
func (p *Payment) CreatedAt() time.Time { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time { return p.updatedAt }

// SetID sets the ID assigned by the store after Create.
func (p *Payment) SetID(id uint) {
	p.id = id
}

type PaymentReconstructParams struct {
	ID                    uint
	SubscriptionID        uint
	UserID                uint
	TransactionID         string
	StripeSessionID       *string
	StripePaymentIntentID *string
	StripeInvoiceID       *string
	Amount                money.Money
	Status                vo.PaymentStatus
	Metadata              map[string]interface{}
	PaidAt                *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ReconstructPaymentWithParams rebuilds a Payment from persistence.
func ReconstructPaymentWithParams(p PaymentReconstructParams) *Payment {
	metadata := p.Metadata
	if metadata == nil {
		metadata = make(map[string]interface{})
	}
	return &Payment{
		id:                    p.ID,
		subscriptionID:        p.SubscriptionID,
		userID:                p.UserID,
		transactionID:         p.TransactionID,
		stripeSessionID:       p.StripeSessionID,
		stripePaymentIntentID: p.StripePaymentIntentID,
		stripeInvoiceID:       p.StripeInvoiceID,
		amount:                p.Amount,
		status:                p.Status,
		metadata:              metadata,
		paidAt:                p.PaidAt,
		createdAt:             p.CreatedAt,
		updatedAt:             p.UpdatedAt,
	}
}
