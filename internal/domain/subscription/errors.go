package subscription

import (
	"errors"
	"fmt"
)

var (
	ErrSubscriptionNotFound    = errors.New("subscription not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidDuration         = errors.New("duration days must be positive")
)

func ErrInvalidTransition(from, to string) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}
