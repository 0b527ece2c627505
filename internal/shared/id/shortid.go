// Package id generates random, URL-safe identifiers.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// upper-case alphanumerics used for transaction references
	upperAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	DefaultLength = 12

	// TransactionPrefix prefixes every payment transaction reference.
	TransactionPrefix       = "TXN-"
	TransactionRandomLength = 16
)

// Generate creates a cryptographically random Base62 ID of the given length.
func Generate(length int) (string, error) {
	return generateFrom(alphabet, length)
}

// MustGenerate is Generate that panics on error.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// NewTransactionID returns a payment transaction reference of the form
// TXN-XXXXXXXXXXXXXXXX (16 upper-case alphanumerics).
func NewTransactionID() (string, error) {
	s, err := generateFrom(upperAlphabet, TransactionRandomLength)
	if err != nil {
		return "", err
	}
	return TransactionPrefix + s, nil
}

// IsTransactionID reports whether s has the transaction reference shape.
func IsTransactionID(s string) bool {
	rest, ok := strings.CutPrefix(s, TransactionPrefix)
	if !ok || len(rest) != TransactionRandomLength {
		return false
	}
	for i := 0; i < len(rest); i++ {
		if !strings.ContainsRune(upperAlphabet, rune(rest[i])) {
			return false
		}
	}
	return true
}

func generateFrom(chars string, length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	max := big.NewInt(int64(len(chars)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = chars[num.Int64()]
	}

	return string(result), nil
}
