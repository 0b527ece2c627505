package valueobjects

type SubscriptionStatus string

const (
	StatusPending   SubscriptionStatus = "pending"
	StatusActive    SubscriptionStatus = "active"
	StatusExpired   SubscriptionStatus = "expired"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusSuspended SubscriptionStatus = "suspended"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

func (s SubscriptionStatus) IsActive() bool {
	return s == StatusActive
}

// CanTransitionTo covers the transitions the local lifecycle drives.
// Cancellation and mirrored remote statuses are applied unconditionally.
func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	transitions := map[SubscriptionStatus][]SubscriptionStatus{
		StatusPending:   {StatusActive, StatusCancelled, StatusExpired, StatusSuspended},
		StatusActive:    {StatusActive, StatusExpired, StatusCancelled, StatusSuspended, StatusPending},
		StatusExpired:   {StatusActive, StatusCancelled},
		StatusCancelled: {StatusActive, StatusCancelled},
		StatusSuspended: {StatusActive, StatusCancelled, StatusExpired, StatusPending},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}
	for _, a := range allowed {
		if a == target {
			return true
		}
	}
	return false
}

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusPending:   true,
	StatusActive:    true,
	StatusExpired:   true,
	StatusCancelled: true,
	StatusSuspended: true,
}

// remoteStatusMapping translates Stripe subscription statuses.
var remoteStatusMapping = map[string]SubscriptionStatus{
	"active":             StatusActive,
	"past_due":           StatusActive,
	"canceled":           StatusCancelled,
	"unpaid":             StatusSuspended,
	"incomplete":         StatusPending,
	"incomplete_expired": StatusExpired,
	"trialing":           StatusActive,
	"paused":             StatusSuspended,
}

// MapRemoteStatus returns the local status for a gateway subscription
// status. Unknown statuses map to pending.
func MapRemoteStatus(remote string) SubscriptionStatus {
	if s, ok := remoteStatusMapping[remote]; ok {
		return s
	}
	return StatusPending
}
