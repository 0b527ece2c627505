package stripe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	stripego "github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/webhook"

	"subcommerce/internal/application/payment/paymentgateway"
)

// WebhookVerifier checks Stripe-Signature headers and decodes the events
// the reconciliation engine dispatches on.
type WebhookVerifier struct {
	secret    string
	tolerance time.Duration
}

func NewWebhookVerifier(secret string, tolerance time.Duration) *WebhookVerifier {
	if tolerance <= 0 {
		tolerance = webhook.DefaultTolerance
	}
	return &WebhookVerifier{secret: secret, tolerance: tolerance}
}

var signatureErrors = []error{
	webhook.ErrNotSigned,
	webhook.ErrInvalidHeader,
	webhook.ErrNoValidSignature,
	webhook.ErrTooOld,
}

func (v *WebhookVerifier) ConstructEvent(payload []byte, signatureHeader string) (paymentgateway.Event, error) {
	if v.secret == "" {
		return nil, fmt.Errorf("%w: webhook secret not configured", paymentgateway.ErrInvalidSignature)
	}

	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		for _, sigErr := range signatureErrors {
			if errors.Is(err, sigErr) {
				return nil, fmt.Errorf("%w: %v", paymentgateway.ErrInvalidSignature, err)
			}
		}
		return nil, fmt.Errorf("%w: %v", paymentgateway.ErrMalformedPayload, err)
	}

	return decodeEvent(event)
}

// ref is an expandable Stripe field: either an id string or an object with an id.
type ref string

func (r *ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = ref(id)
		return nil
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = ref(obj.ID)
	return nil
}

type checkoutSessionObject struct {
	ID            string `json:"id"`
	PaymentIntent ref    `json:"payment_intent"`
	Subscription  ref    `json:"subscription"`
}

// invoiceObject accepts both the legacy top-level subscription field and the
// parent.subscription_details shape of newer API versions.
type invoiceObject struct {
	ID            string `json:"id"`
	AmountPaid    int64  `json:"amount_paid"`
	Currency      string `json:"currency"`
	Subscription  ref    `json:"subscription"`
	PaymentIntent ref    `json:"payment_intent"`
	Parent        *struct {
		SubscriptionDetails *struct {
			Subscription ref `json:"subscription"`
		} `json:"subscription_details"`
	} `json:"parent"`
}

func (i invoiceObject) subscriptionID() string {
	if i.Subscription != "" {
		return string(i.Subscription)
	}
	if i.Parent != nil && i.Parent.SubscriptionDetails != nil {
		return string(i.Parent.SubscriptionDetails.Subscription)
	}
	return ""
}

type subscriptionObject struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type paymentIntentObject struct {
	ID               string `json:"id"`
	LastPaymentError *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"last_payment_error"`
}

func (p paymentIntentObject) failureMessage() string {
	if p.LastPaymentError == nil {
		return ""
	}
	if p.LastPaymentError.Message != "" {
		return p.LastPaymentError.Message
	}
	return p.LastPaymentError.Code
}

func decodeEvent(event stripego.Event) (paymentgateway.Event, error) {
	meta := paymentgateway.EventMeta{ID: event.ID, Type: string(event.Type)}

	var raw json.RawMessage
	if event.Data != nil {
		raw = event.Data.Raw
	}
	decode := func(v interface{}) error {
		if len(raw) == 0 {
			return fmt.Errorf("%w: event %s has no data object", paymentgateway.ErrMalformedPayload, event.ID)
		}
		if err := json.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("%w: %v", paymentgateway.ErrMalformedPayload, err)
		}
		return nil
	}

	switch meta.Type {
	case paymentgateway.EventTypeCheckoutSessionCompleted:
		var obj checkoutSessionObject
		if err := decode(&obj); err != nil {
			return nil, err
		}
		return paymentgateway.CheckoutSessionCompleted{
			EventMeta:            meta,
			SessionID:            obj.ID,
			PaymentIntentID:      string(obj.PaymentIntent),
			RemoteSubscriptionID: string(obj.Subscription),
		}, nil

	case paymentgateway.EventTypeInvoicePaymentSucceeded:
		var obj invoiceObject
		if err := decode(&obj); err != nil {
			return nil, err
		}
		return paymentgateway.InvoicePaymentSucceeded{
			EventMeta:            meta,
			InvoiceID:            obj.ID,
			RemoteSubscriptionID: obj.subscriptionID(),
			AmountPaidMinor:      obj.AmountPaid,
			Currency:             obj.Currency,
			PaymentIntentID:      string(obj.PaymentIntent),
		}, nil

	case paymentgateway.EventTypeSubscriptionUpdated:
		var obj subscriptionObject
		if err := decode(&obj); err != nil {
			return nil, err
		}
		return paymentgateway.SubscriptionUpdated{
			EventMeta:            meta,
			RemoteSubscriptionID: obj.ID,
			RemoteStatus:         obj.Status,
		}, nil

	case paymentgateway.EventTypeSubscriptionDeleted:
		var obj subscriptionObject
		if err := decode(&obj); err != nil {
			return nil, err
		}
		return paymentgateway.SubscriptionDeleted{
			EventMeta:            meta,
			RemoteSubscriptionID: obj.ID,
		}, nil

	case paymentgateway.EventTypePaymentIntentFailed:
		var obj paymentIntentObject
		if err := decode(&obj); err != nil {
			return nil, err
		}
		return paymentgateway.PaymentIntentFailed{
			EventMeta:       meta,
			PaymentIntentID: obj.ID,
			FailureMessage:  obj.failureMessage(),
		}, nil
	}

	return paymentgateway.Unhandled{EventMeta: meta}, nil
}

var _ paymentgateway.WebhookVerifier = (*WebhookVerifier)(nil)
