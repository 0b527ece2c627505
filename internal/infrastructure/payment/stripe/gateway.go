// Package stripe adapts the Stripe API to the payment gateway contract.
package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	stripego "github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"

	"subcommerce/internal/application/payment/paymentgateway"
	"subcommerce/internal/shared/config"
	"subcommerce/internal/shared/logger"
)

const defaultTimeout = 10 * time.Second

// ErrCircuitOpen is returned while the breaker rejects calls to Stripe.
var ErrCircuitOpen = errors.New("stripe circuit breaker open")

// Gateway creates and reads hosted checkout sessions.
type Gateway struct {
	sessions session.Client
	breaker  *gobreaker.CircuitBreaker[*stripego.CheckoutSession]
	logger   logger.Interface
}

// Option adjusts the Stripe backend, mainly for tests.
type Option func(*stripego.BackendConfig)

// WithAPIURL points the client at another API host.
func WithAPIURL(url string) Option {
	return func(c *stripego.BackendConfig) {
		c.URL = stripego.String(url)
	}
}

func NewGateway(cfg config.StripeConfig, log logger.Interface, opts ...Option) *Gateway {
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	backendCfg := &stripego.BackendConfig{
		HTTPClient:        &http.Client{Timeout: timeout},
		MaxNetworkRetries: stripego.Int64(0),
	}
	for _, opt := range opts {
		opt(backendCfg)
	}

	return &Gateway{
		sessions: session.Client{
			B:   stripego.GetBackendWithConfig(stripego.APIBackend, backendCfg),
			Key: cfg.SecretKey,
		},
		breaker: gobreaker.NewCircuitBreaker[*stripego.CheckoutSession](breakerSettings(cfg.Breaker, log)),
		logger:  log,
	}
}

func breakerSettings(cfg config.BreakerConfig, log logger.Interface) gobreaker.Settings {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	return gobreaker.Settings{
		Name:        "stripe",
		MaxRequests: cfg.MaxRequests,
		Interval:    time.Duration(cfg.IntervalSeconds) * time.Second,
		Timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			// card and validation errors are the caller's problem, not an outage
			var stripeErr *stripego.Error
			if errors.As(err, &stripeErr) {
				return stripeErr.HTTPStatusCode < http.StatusInternalServerError
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnw("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}
}

func (g *Gateway) CreateSession(ctx context.Context, req paymentgateway.CreateSessionRequest) (*paymentgateway.Session, error) {
	params := &stripego.CheckoutSessionParams{
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
		Mode:               stripego.String(string(stripego.CheckoutSessionModePayment)),
		LineItems: []*stripego.CheckoutSessionLineItemParams{
			{
				PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripego.String(req.Currency),
					UnitAmount: stripego.Int64(req.LineItem.UnitAmountMinor),
					ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripego.String(req.LineItem.Name),
					},
				},
				Quantity: stripego.Int64(req.LineItem.Quantity),
			},
		},
		SuccessURL: stripego.String(req.SuccessURL),
		CancelURL:  stripego.String(req.CancelURL),
	}
	params.Context = ctx
	if req.LineItem.Description != "" {
		params.LineItems[0].PriceData.ProductData.Description = stripego.String(req.LineItem.Description)
	}
	if req.ClientReferenceID != "" {
		params.ClientReferenceID = stripego.String(req.ClientReferenceID)
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripego.String(req.CustomerEmail)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	s, err := g.call(ctx, "create_session", func() (*stripego.CheckoutSession, error) {
		return g.sessions.New(params)
	})
	if err != nil {
		return nil, err
	}
	return toSession(s), nil
}

func (g *Gateway) RetrieveSession(ctx context.Context, sessionID string) (*paymentgateway.Session, error) {
	params := &stripego.CheckoutSessionParams{}
	params.Context = ctx
	s, err := g.call(ctx, "retrieve_session", func() (*stripego.CheckoutSession, error) {
		return g.sessions.Get(sessionID, params)
	})
	if err != nil {
		return nil, err
	}
	return toSession(s), nil
}

func (g *Gateway) call(ctx context.Context, op string, fn func() (*stripego.CheckoutSession, error)) (*stripego.CheckoutSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := g.breaker.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			g.logger.Warnw("stripe call rejected", "operation", op, "error", err)
			return nil, ErrCircuitOpen
		}
		g.logger.Errorw("stripe call failed", "operation", op, "error", err)
		return nil, fmt.Errorf("stripe %s: %w", op, err)
	}
	return s, nil
}

func toSession(s *stripego.CheckoutSession) *paymentgateway.Session {
	out := &paymentgateway.Session{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
	}
	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}
	if s.Subscription != nil {
		out.SubscriptionID = s.Subscription.ID
	}
	return out
}

var _ paymentgateway.CheckoutGateway = (*Gateway)(nil)
