package subscription

import (
	"fmt"
	"time"

	vo "subcommerce/internal/domain/subscription/valueobjects"
	"subcommerce/internal/shared/biztime"
)

// DefaultDurationDays applies when a product carries no duration.
const DefaultDurationDays = 30

// Subscription is a user's entitlement to a product over a time window.
type Subscription struct {
	id                   uint
	userID               uint
	productID            uint
	status               vo.SubscriptionStatus
	startsAt             *time.Time
	expiresAt            *time.Time
	stripeSubscriptionID *string
	deletedAt            *time.Time
	createdAt            time.Time
	updatedAt            time.Time
}

// NewPendingSubscription creates a subscription awaiting payment, with no
// start or expiry.
func NewPendingSubscription(userID, productID uint) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}

	now := biztime.NowUTC()
	return &Subscription{
		userID:    userID,
		productID: productID,
		status:    vo.StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func normalizeDuration(days int) int {
	if days <= 0 {
		return DefaultDurationDays
	}
	return days
}

// Activate starts a fresh window of durationDays from now and records the
// remote recurring subscription id when one is given.
func (s *Subscription) Activate(now time.Time, durationDays int, remoteSubscriptionID string) error {
	if !s.status.CanTransitionTo(vo.StatusActive) {
		return ErrInvalidTransition(s.status.String(), vo.StatusActive.String())
	}

	expires := biztime.AddDays(now, normalizeDuration(durationDays))
	s.status = vo.StatusActive
	s.startsAt = &now
	s.expiresAt = &expires
	if remoteSubscriptionID != "" {
		s.stripeSubscriptionID = &remoteSubscriptionID
	}
	s.updatedAt = now
	return nil
}

// Extend adds durationDays to the current expiry so remaining time is kept.
// A subscription with no expiry is extended from now.
func (s *Subscription) Extend(now time.Time, durationDays int) {
	base := now
	if s.expiresAt != nil {
		base = *s.expiresAt
	}
	expires := biztime.AddDays(base, normalizeDuration(durationDays))
	s.expiresAt = &expires
	s.updatedAt = now
}

// Cancel sets the subscription cancelled whatever its current status.
func (s *Subscription) Cancel() {
	s.status = vo.StatusCancelled
	s.updatedAt = biztime.NowUTC()
}

// MarkAsExpired expires an active subscription whose window has closed.
func (s *Subscription) MarkAsExpired(now time.Time) error {
	if s.status != vo.StatusActive {
		return ErrInvalidTransition(s.status.String(), vo.StatusExpired.String())
	}
	if s.expiresAt == nil || s.expiresAt.After(now) {
		return fmt.Errorf("subscription %d has not reached its expiry", s.id)
	}
	s.status = vo.StatusExpired
	s.updatedAt = now
	return nil
}

// ApplyRemoteStatus mirrors a gateway-side status onto the local subscription.
func (s *Subscription) ApplyRemoteStatus(status vo.SubscriptionStatus) error {
	if !vo.ValidStatuses[status] {
		return fmt.Errorf("invalid subscription status: %s", status)
	}
	s.status = status
	s.updatedAt = biztime.NowUTC()
	return nil
}

// IsActiveAt reports whether the subscription is active with an expiry after now.
func (s *Subscription) IsActiveAt(now time.Time) bool {
	return s.status == vo.StatusActive && s.expiresAt != nil && s.expiresAt.After(now)
}

func (s *Subscription) IsOwnedBy(userID uint) bool {
	return userID != 0 && s.userID == userID
}

func (s *Subscription) IsDeleted() bool {
	return s.deletedAt != nil
}

func (s *Subscription) ID() uint {
	return s.id
}

func (s *Subscription) UserID() uint {
	return s.userID
}

func (s *Subscription) ProductID() uint {
	return s.productID
}

func (s *Subscription) Status() vo.SubscriptionStatus {
	return s.status
}

func (s *Subscription) StartsAt() *time.Time {
	return s.startsAt
}

func (s *Subscription) ExpiresAt() *time.Time {
	return s.expiresAt
}

func (s *Subscription) StripeSubscriptionID() *string {
	return s.stripeSubscriptionID
}

func (s *Subscription) DeletedAt() *time.Time {
	return s.deletedAt
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Subscription) SetID(id uint) {
	s.id = id
}

type ReconstructParams struct {
	ID                   uint
	UserID               uint
	ProductID            uint
	Status               vo.SubscriptionStatus
	StartsAt             *time.Time
	ExpiresAt            *time.Time
	StripeSubscriptionID *string
	DeletedAt            *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(p ReconstructParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if !vo.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid subscription status: %s", p.Status)
	}
	return &Subscription{
		id:                   p.ID,
		userID:               p.UserID,
		productID:            p.ProductID,
		status:               p.Status,
		startsAt:             p.StartsAt,
		expiresAt:            p.ExpiresAt,
		stripeSubscriptionID: p.StripeSubscriptionID,
		deletedAt:            p.DeletedAt,
		createdAt:            p.CreatedAt,
		updatedAt:            p.UpdatedAt,
	}, nil
}
