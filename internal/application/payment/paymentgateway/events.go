package paymentgateway

// Webhook event types dispatched by the reconciliation engine.
const (
	EventTypeCheckoutSessionCompleted = "checkout.session.completed"
	EventTypeInvoicePaymentSucceeded  = "invoice.payment_succeeded"
	EventTypeSubscriptionUpdated      = "customer.subscription.updated"
	EventTypeSubscriptionDeleted      = "customer.subscription.deleted"
	EventTypePaymentIntentFailed      = "payment_intent.payment_failed"
)

// Event is a verified webhook event. The set of implementations is closed:
// only the types in this file satisfy it.
type Event interface {
	EventID() string
	EventType() string
	sealed()
}

// EventMeta carries the identity shared by every event.
type EventMeta struct {
	ID   string
	Type string
}

func (m EventMeta) EventID() string { return m.ID }
func (m EventMeta) EventType() string { return m.Type }
func (EventMeta) sealed() {}

type CheckoutSessionCompleted struct {
	EventMeta
	SessionID            string
	PaymentIntentID      string
	RemoteSubscriptionID string
}

type InvoicePaymentSucceeded struct {
	EventMeta
	InvoiceID            string
	RemoteSubscriptionID string
	AmountPaidMinor      int64
	Currency             string
	PaymentIntentID      string
}

type SubscriptionUpdated struct {
	EventMeta
	RemoteSubscriptionID string
	RemoteStatus         string
}

type SubscriptionDeleted struct {
	EventMeta
	RemoteSubscriptionID string
}

type PaymentIntentFailed struct {
	EventMeta
	PaymentIntentID string
	FailureMessage  string
}

// Unhandled is any verified event outside the dispatch table.
type Unhandled struct {
	EventMeta
}
