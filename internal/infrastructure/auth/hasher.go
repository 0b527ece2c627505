package auth

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var ErrPasswordMismatch = errors.New("password verification failed")

// unknownAccountSecret is hashed once per hasher so a login for an email with
// no account costs one bcrypt comparison, like a real one.
const unknownAccountSecret = "subcommerce:no-such-account"

// BcryptPasswordHasher stores customer passwords for the register and login flows.
type BcryptPasswordHasher struct {
	cost int

	placeholderOnce sync.Once
	placeholder     []byte
}

// NewBcryptPasswordHasher uses auth.password.bcrypt_cost, or bcrypt.DefaultCost when it is out of range.
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify checks password against a stored hash. An empty hash means the
// account does not exist; it still runs a comparison and always mismatches.
func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(h.placeholderHash(), []byte(password))
		return ErrPasswordMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

func (h *BcryptPasswordHasher) placeholderHash() []byte {
	h.placeholderOnce.Do(func() {
		h.placeholder, _ = bcrypt.GenerateFromPassword([]byte(unknownAccountSecret), h.cost)
	})
	return h.placeholder
}
