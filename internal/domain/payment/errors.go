package payment

import (
	"errors"
	"fmt"
)

var (
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrInvalidStatusTransition = errors.New("invalid payment status transition")
	ErrSessionAlreadyAttached  = errors.New("checkout session already attached")
)

func errInvalidTransition(from, to string) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}
