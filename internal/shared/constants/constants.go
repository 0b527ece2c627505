package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	DefaultPage     = 1
	DefaultPageSize = 15
	MaxPageSize     = 100

	HeaderAuthorization   = "Authorization"
	HeaderXRequestID      = "X-Request-ID"
	HeaderStripeSignature = "Stripe-Signature"

	// gin context keys set by the auth middleware
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyUserEmail = "user_email"
	ContextKeySessionID = "session_id"
	ContextKeyRequestID = "request_id"

	DefaultCurrency     = "usd"
	DefaultDurationDays = 30

	ErrMsgInternalServerError = "Internal server error occurred"
)

// Table names.
const (
	TableUsers         = "users"
	TableProducts      = "products"
	TableSubscriptions = "subscriptions"
	TablePayments      = "payments"
)
